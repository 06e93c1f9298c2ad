package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestProductGetByIDScopesVendor(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	rows := sqlmock.NewRows([]string{"id", "vendor_id", "name", "net_weight"}).
		AddRow("p1", "v1", "Gold Ring", "4.250")
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 AND vendor_id = \$2 AND "products"\."deleted_at" IS NULL`).
		WillReturnRows(rows)

	product, err := repo.GetByID(context.Background(), "v1", "p1")
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Gold Ring", product.Name)
	assert.True(t, product.NetWeight.Equal(decimal.RequireFromString("4.250")))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	product, err := repo.GetByID(context.Background(), "v1", "missing")
	require.NoError(t, err, "missing rows are not an error")
	assert.Nil(t, product)
}

func TestProductGetWeightBearing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	rows := sqlmock.NewRows([]string{"id", "vendor_id", "name", "net_weight"}).
		AddRow("p1", "v1", "Ring", "2.000").
		AddRow("p2", "v1", "Chain", "8.500")
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE vendor_id = \$1 AND \(net_weight > 0 OR gross_weight > 0\) AND "products"\."deleted_at" IS NULL`).
		WithArgs("v1").
		WillReturnRows(rows)

	products, err := repo.GetWeightBearing(context.Background(), "v1", "")
	require.NoError(t, err)
	assert.Len(t, products, 2)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductGetWeightBearingMetalFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE vendor_id = \$1 AND \(net_weight > 0 OR gross_weight > 0\) AND LOWER\(metal_type\) = LOWER\(\$2\)`).
		WithArgs("v1", "gold").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetWeightBearing(context.Background(), "v1", "gold")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductUpdatePrice(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "products" SET .*"cost_price".*"metal_rate".*"retail_price".* WHERE id = \$\d+ AND vendor_id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdatePrice(context.Background(), "v1", "p1", PriceUpdate{
		CostPrice:   decimal.NewFromInt(24100),
		RetailPrice: decimal.NewFromInt(24100),
		MetalRate:   decimal.NewFromInt(6500),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductSoftDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	// Soft delete is an UPDATE setting deleted_at, never a DELETE.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "products" SET "deleted_at"=\$1 WHERE id = \$2 AND vendor_id = \$3`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.SoftDelete(context.Background(), "v1", "p1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductUpdateFieldsEmptyIsNoop(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	// No expectations: an empty field map must not touch the database.
	err := repo.UpdateFields(context.Background(), "v1", "p1", map[string]interface{}{})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
