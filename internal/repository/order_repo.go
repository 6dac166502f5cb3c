package repository

import (
	"context"
	"errors"

	"inventory-backend/internal/models"

	"gorm.io/gorm"
)

type OrderRepo interface {
	GetByIncomingGroup(ctx context.Context, group string) (*models.Order, error)
	Create(ctx context.Context, o *models.Order) error

	// Связки order_products.
	Link(ctx context.Context, orderID, productID int64) error
	UnlinkProducts(ctx context.Context, productIDs []int64) error
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) OrderRepo { return &orderRepo{db: db} }

func (r *orderRepo) GetByIncomingGroup(ctx context.Context, group string) (*models.Order, error) {
	var o models.Order
	err := r.db.WithContext(ctx).Where("incoming_group = ?", group).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) Create(ctx context.Context, o *models.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) Link(ctx context.Context, orderID, productID int64) error {
	return r.db.WithContext(ctx).Create(&models.OrderProduct{
		OrderID:   orderID,
		ProductID: productID,
	}).Error
}

func (r *orderRepo) UnlinkProducts(ctx context.Context, productIDs []int64) error {
	if len(productIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Delete(&models.OrderProduct{}).Error
}
