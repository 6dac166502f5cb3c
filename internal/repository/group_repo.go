package repository

import (
	"context"

	"inventory-backend/internal/models"

	"gorm.io/gorm"
)

// IncomingGroupRow — агрегат по одной партии прихода.
// types/specifications приходят из GROUP_CONCAT одной строкой.
type IncomingGroupRow struct {
	IncomingGroup  string `gorm:"column:incoming_group"`
	ItemCount      int64  `gorm:"column:item_count"`
	EarliestDate   string `gorm:"column:earliest_date"`
	LatestDate     string `gorm:"column:latest_date"`
	Types          string `gorm:"column:types"`
	Specifications string `gorm:"column:specifications"`
}

// GroupPriceRow — суммы и количества цен по валютам для одной группы.
type GroupPriceRow struct {
	Key      string  `gorm:"column:group_key"`
	TotalUSD float64 `gorm:"column:total_usd"`
	TotalUAH float64 `gorm:"column:total_uah"`
	USDCount int64   `gorm:"column:usd_count"`
	UAHCount int64   `gorm:"column:uah_count"`
}

// TypeGroupRow — агрегат по типу товара.
type TypeGroupRow struct {
	Type           string `gorm:"column:type"`
	ItemCount      int64  `gorm:"column:item_count"`
	EarliestDate   string `gorm:"column:earliest_date"`
	LatestDate     string `gorm:"column:latest_date"`
	Specifications string `gorm:"column:specifications"`
}

type GroupRepo interface {
	ListIncomingGroups(ctx context.Context, limit, offset int) ([]IncomingGroupRow, int64, error)
	PriceTotalsByGroups(ctx context.Context, groups []string) ([]GroupPriceRow, error)

	ListTypeGroups(ctx context.Context, limit, offset int) ([]TypeGroupRow, int64, error)
	PriceTotalsByTypes(ctx context.Context, types []string) ([]GroupPriceRow, error)
}

type groupRepo struct{ db *gorm.DB }

func NewGroupRepo(db *gorm.DB) GroupRepo { return &groupRepo{db: db} }

const nonEmptyGroup = `incoming_group IS NOT NULL AND incoming_group <> ''`

func (r *groupRepo) ListIncomingGroups(ctx context.Context, limit, offset int) ([]IncomingGroupRow, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Where(nonEmptyGroup).
		Distinct("incoming_group").
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var rows []IncomingGroupRow
	err = r.db.WithContext(ctx).Model(&models.Product{}).
		Select(`incoming_group,
			COUNT(*) AS item_count,
			MIN(date) AS earliest_date,
			MAX(date) AS latest_date,
			GROUP_CONCAT(DISTINCT type) AS types,
			GROUP_CONCAT(DISTINCT COALESCE(specification, '')) AS specifications`).
		Where(nonEmptyGroup).
		Group("incoming_group").
		Order("MAX(date) DESC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *groupRepo) PriceTotalsByGroups(ctx context.Context, groups []string) ([]GroupPriceRow, error) {
	if len(groups) == 0 {
		return []GroupPriceRow{}, nil
	}
	var rows []GroupPriceRow
	err := r.db.WithContext(ctx).
		Table("products p").
		Select(`p.incoming_group AS group_key,
			SUM(CASE WHEN pp.symbol = 'USD' THEN pp.value ELSE 0 END) AS total_usd,
			SUM(CASE WHEN pp.symbol = 'UAH' THEN pp.value ELSE 0 END) AS total_uah,
			COUNT(CASE WHEN pp.symbol = 'USD' THEN 1 END) AS usd_count,
			COUNT(CASE WHEN pp.symbol = 'UAH' THEN 1 END) AS uah_count`).
		Joins("LEFT JOIN product_prices pp ON p.id = pp.product_id").
		Where("p.incoming_group IN ?", groups).
		Group("p.incoming_group").
		Scan(&rows).Error
	return rows, err
}

func (r *groupRepo) ListTypeGroups(ctx context.Context, limit, offset int) ([]TypeGroupRow, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Distinct("type").
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var rows []TypeGroupRow
	err = r.db.WithContext(ctx).Model(&models.Product{}).
		Select(`type,
			COUNT(*) AS item_count,
			MIN(date) AS earliest_date,
			MAX(date) AS latest_date,
			GROUP_CONCAT(DISTINCT COALESCE(specification, '')) AS specifications`).
		Group("type").
		Order("COUNT(*) DESC, type ASC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *groupRepo) PriceTotalsByTypes(ctx context.Context, types []string) ([]GroupPriceRow, error) {
	if len(types) == 0 {
		return []GroupPriceRow{}, nil
	}
	var rows []GroupPriceRow
	err := r.db.WithContext(ctx).
		Table("products p").
		Select(`p.type AS group_key,
			SUM(CASE WHEN pp.symbol = 'USD' THEN pp.value ELSE 0 END) AS total_usd,
			SUM(CASE WHEN pp.symbol = 'UAH' THEN pp.value ELSE 0 END) AS total_uah,
			COUNT(CASE WHEN pp.symbol = 'USD' THEN 1 END) AS usd_count,
			COUNT(CASE WHEN pp.symbol = 'UAH' THEN 1 END) AS uah_count`).
		Joins("LEFT JOIN product_prices pp ON p.id = pp.product_id").
		Where("p.type IN ?", types).
		Group("p.type").
		Scan(&rows).Error
	return rows, err
}
