package repository

import (
	"context"
	"errors"

	"inventory-backend/internal/models"

	"gorm.io/gorm"
)

type ProductListFilter struct {
	Type          string // "" — без фильтра
	Specification string // "" — без фильтра
	Limit         int
	Offset        int
}

// ProductView — строка списка товаров с присоединёнными
// именем владельца и заголовком заказа.
type ProductView struct {
	ID             int64   `gorm:"column:id"`
	Title          string  `gorm:"column:title"`
	Type           string  `gorm:"column:type"`
	Specification  *string `gorm:"column:specification"`
	SerialNumber   int64   `gorm:"column:serial_number"`
	UserID         int64   `gorm:"column:user_id"`
	IsNew          int     `gorm:"column:is_new"`
	Status         string  `gorm:"column:status"`
	Date           string  `gorm:"column:date"`
	GuaranteeStart *string `gorm:"column:guarantee_start"`
	GuaranteeEnd   *string `gorm:"column:guarantee_end"`
	IncomingGroup  string  `gorm:"column:incoming_group"`
	Photo          *string `gorm:"column:photo"`
	OrderID        int64   `gorm:"column:order_id"`
	Username       *string `gorm:"column:username"`
	OrderTitle     *string `gorm:"column:order_title"`
}

type ProductRepo interface {
	List(ctx context.Context, f ProductListFilter) ([]ProductView, int64, error)
	GetViewByID(ctx context.Context, id int64) (*ProductView, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	GetBySerialNumber(ctx context.Context, serial int64) (*models.Product, error)
	ListByIncomingGroup(ctx context.Context, group string) ([]models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)

	DistinctTypes(ctx context.Context) ([]string, error)
	DistinctSpecifications(ctx context.Context) ([]string, error)
	DistinctGroupNames(ctx context.Context) ([]string, error)
}

type productRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) ProductRepo { return &productRepo{db: db} }

const productViewSelect = `
	p.id, p.title, p.type, p.specification, p.serial_number, p.user_id,
	p.is_new, p.status, p.date, p.guarantee_start, p.guarantee_end,
	p.incoming_group, p.photo, p.order_id,
	u.username AS username, o.title AS order_title`

func (r *productRepo) viewQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("products p").
		Select(productViewSelect).
		Joins("LEFT JOIN users u ON p.user_id = u.id").
		Joins("LEFT JOIN orders o ON p.order_id = o.id")
}

func (r *productRepo) List(ctx context.Context, f ProductListFilter) ([]ProductView, int64, error) {
	countQ := r.db.WithContext(ctx).Model(&models.Product{})
	listQ := r.viewQuery(ctx)

	if f.Type != "" {
		countQ = countQ.Where("type = ?", f.Type)
		listQ = listQ.Where("p.type = ?", f.Type)
	}
	if f.Specification != "" {
		countQ = countQ.Where("specification = ?", f.Specification)
		listQ = listQ.Where("p.specification = ?", f.Specification)
	}

	// Итог считается по тем же условиям, но без LIMIT/OFFSET.
	var total int64
	if err := countQ.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []ProductView
	err := listQ.Order("p.id DESC").Limit(f.Limit).Offset(f.Offset).Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *productRepo) GetViewByID(ctx context.Context, id int64) (*ProductView, error) {
	var rows []ProductView
	err := r.viewQuery(ctx).Where("p.id = ?", id).Limit(1).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) GetBySerialNumber(ctx context.Context, serial int64) (*models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).Where("serial_number = ?", serial).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) ListByIncomingGroup(ctx context.Context, group string) ([]models.Product, error) {
	var list []models.Product
	err := r.db.WithContext(ctx).Where("incoming_group = ?", group).Find(&list).Error
	return list, err
}

func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	err := r.db.WithContext(ctx).Create(p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateSerial
	}
	return err
}

func (r *productRepo) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tx := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Product{})
	return tx.RowsAffected, tx.Error
}

func (r *productRepo) DistinctTypes(ctx context.Context) ([]string, error) {
	var vals []string
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Distinct("type").
		Where("type IS NOT NULL").
		Order("type").
		Pluck("type", &vals).Error
	return vals, err
}

func (r *productRepo) DistinctSpecifications(ctx context.Context) ([]string, error) {
	var vals []string
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Distinct("specification").
		Where("specification IS NOT NULL").
		Order("specification").
		Pluck("specification", &vals).Error
	return vals, err
}

// DistinctGroupNames возвращает отображаемые имена групп
// "{incoming_group} - {type}"; имя не хранится, а вычисляется.
func (r *productRepo) DistinctGroupNames(ctx context.Context) ([]string, error) {
	var vals []string
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Distinct(`CONCAT(incoming_group, ' - ', type)`).
		Where("incoming_group IS NOT NULL AND incoming_group <> ''").
		Order(`CONCAT(incoming_group, ' - ', type)`).
		Pluck(`CONCAT(incoming_group, ' - ', type)`, &vals).Error
	return vals, err
}
