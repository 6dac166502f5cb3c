package repository

import (
	"context"

	"inventory-backend/internal/models"

	"gorm.io/gorm"
)

type PriceRepo interface {
	Create(ctx context.Context, p *models.ProductPrice) error
	ListByProductIDs(ctx context.Context, productIDs []int64) ([]models.ProductPrice, error)
	DeleteByProductIDs(ctx context.Context, productIDs []int64) error
}

type priceRepo struct{ db *gorm.DB }

func NewPriceRepo(db *gorm.DB) PriceRepo { return &priceRepo{db: db} }

func (r *priceRepo) Create(ctx context.Context, p *models.ProductPrice) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *priceRepo) ListByProductIDs(ctx context.Context, productIDs []int64) ([]models.ProductPrice, error) {
	// Пустой список ID — пустой результат, без запроса с IN ().
	if len(productIDs) == 0 {
		return []models.ProductPrice{}, nil
	}
	var list []models.ProductPrice
	err := r.db.WithContext(ctx).Where("product_id IN ?", productIDs).Find(&list).Error
	return list, err
}

func (r *priceRepo) DeleteByProductIDs(ctx context.Context, productIDs []int64) error {
	if len(productIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Delete(&models.ProductPrice{}).Error
}
