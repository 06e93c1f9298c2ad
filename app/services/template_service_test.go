package services

import (
	"bytes"
	"testing"

	"github.com/cataleon/cataleon/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestGenerateImportTemplate(t *testing.T) {
	for _, productType := range []models.ProductType{
		models.TypeJewellery,
		models.TypeLooseDiamonds,
		models.TypeGemstones,
	} {
		t.Run(string(productType), func(t *testing.T) {
			data, err := GenerateImportTemplate(productType)
			require.NoError(t, err)
			require.NotEmpty(t, data)

			f, err := excelize.OpenReader(bytes.NewReader(data))
			require.NoError(t, err)
			defer f.Close()

			assert.Contains(t, f.GetSheetList(), "Instructions")
			assert.Contains(t, f.GetSheetList(), "Sample Data")

			header, err := f.GetCellValue("Sample Data", "A1")
			require.NoError(t, err)
			assert.Equal(t, "Name", header)
		})
	}
}

func TestGenerateImportTemplateUnknownType(t *testing.T) {
	_, err := GenerateImportTemplate("Watches")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
