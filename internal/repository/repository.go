package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrDuplicateSerial возвращается из ProductRepo.Create при нарушении
// уникального ключа по serial_number.
var ErrDuplicateSerial = errors.New("serial number already exists")

type Repository interface {
	Users() UserRepo
	Orders() OrderRepo
	Products() ProductRepo
	Prices() PriceRepo
	Groups() GroupRepo

	// WithTx выполняет fn в одной транзакции: все репозитории внутри fn
	// работают через неё, ошибка из fn откатывает всё.
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}

type gormRepository struct {
	db       *gorm.DB
	users    UserRepo
	orders   OrderRepo
	products ProductRepo
	prices   PriceRepo
	groups   GroupRepo
}

func New(db *gorm.DB) Repository {
	return &gormRepository{
		db:       db,
		users:    NewUserRepo(db),
		orders:   NewOrderRepo(db),
		products: NewProductRepo(db),
		prices:   NewPriceRepo(db),
		groups:   NewGroupRepo(db),
	}
}

func (r *gormRepository) Users() UserRepo       { return r.users }
func (r *gormRepository) Orders() OrderRepo     { return r.orders }
func (r *gormRepository) Products() ProductRepo { return r.products }
func (r *gormRepository) Prices() PriceRepo     { return r.prices }
func (r *gormRepository) Groups() GroupRepo     { return r.groups }

func (r *gormRepository) WithTx(ctx context.Context, fn func(tx Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}
