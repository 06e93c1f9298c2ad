package repositories

import (
	"context"

	"github.com/cataleon/cataleon/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RewardRepositoryImpl interface {
	Create(ctx context.Context, reward *models.Reward) error
	GetByVendor(ctx context.Context, vendorID string) ([]models.Reward, error)
	CustomerBalance(ctx context.Context, vendorID, customerEmail string) (int64, error)
}

type rewardRepository struct {
	db *gorm.DB
}

func NewRewardRepository(db *gorm.DB) RewardRepositoryImpl {
	return &rewardRepository{db}
}

func (r *rewardRepository) Create(ctx context.Context, reward *models.Reward) error {
	if reward.ID == "" {
		reward.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(reward).Error
}

func (r *rewardRepository) GetByVendor(ctx context.Context, vendorID string) ([]models.Reward, error) {
	var rewards []models.Reward
	err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&rewards).Error
	return rewards, err
}

func (r *rewardRepository) CustomerBalance(ctx context.Context, vendorID, customerEmail string) (int64, error) {
	var balance int64
	err := r.db.WithContext(ctx).Model(&models.Reward{}).
		Where("vendor_id = ? AND customer_email = ?", vendorID, customerEmail).
		Select("COALESCE(SUM(points), 0)").
		Scan(&balance).Error
	return balance, err
}
