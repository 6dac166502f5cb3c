package models

import "time"

// User — владелец/ответственный за товар. Создаётся лениво при первом
// упоминании username в создании товара, никогда не обновляется и не удаляется.
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"size:255;not null;uniqueIndex:ux_users_username" json:"username"`
}

func (User) TableName() string { return "users" }

// Order — контейнер для всех товаров одной партии прихода.
// incoming_group уникален: заказ создаётся один раз на группу (get-or-create).
type Order struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title         string    `gorm:"size:512;not null" json:"title"`
	Date          time.Time `gorm:"not null" json:"date"`
	IncomingGroup string    `gorm:"size:255;not null;uniqueIndex:ux_orders_incoming_group" json:"incomingGroup"`
}

func (Order) TableName() string { return "orders" }

// Product хранит date и гарантийные даты строками в формате ISO (YYYY-MM-DD...),
// как их присылает и ожидает клиент; MIN/MAX по таким строкам корректны.
type Product struct {
	ID             int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title          string  `gorm:"size:512;not null" json:"title"`
	Type           string  `gorm:"size:255;not null;index:ix_products_type" json:"type"`
	Specification  *string `gorm:"size:512" json:"specification"`
	SerialNumber   int64   `gorm:"not null;uniqueIndex:ux_products_serial_number" json:"serialNumber"`
	UserID         int64   `gorm:"not null;index:ix_products_user" json:"userId"`
	IsNew          int     `gorm:"not null;default:0" json:"isNew"`
	Status         string  `gorm:"size:255" json:"status"`
	Date           string  `gorm:"size:64;not null" json:"date"`
	GuaranteeStart *string `gorm:"size:64" json:"guaranteeStart"`
	GuaranteeEnd   *string `gorm:"size:64" json:"guaranteeEnd"`
	IncomingGroup  string  `gorm:"size:255;not null;index:ix_products_incoming_group" json:"incomingGroup"`
	Photo          *string `gorm:"size:1024" json:"photo"`
	OrderID        int64   `gorm:"not null;index:ix_products_order" json:"orderId"`
}

func (Product) TableName() string { return "products" }

// GroupName — отображаемое имя группы, вычисляется, а не хранится.
func (p *Product) GroupName() string {
	return p.IncomingGroup + " - " + p.Type
}

// ProductPrice — цена товара в одной из валют. У товара может быть несколько
// цен; is_default не ограничен уникальностью (см. DESIGN.md).
type ProductPrice struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64   `gorm:"not null;index:ix_product_prices_product" json:"productId"`
	Value     float64 `gorm:"type:decimal(12,2);not null" json:"value"`
	Symbol    string  `gorm:"size:8;not null" json:"symbol"`
	IsDefault bool    `gorm:"not null;default:false" json:"isDefault"`
}

func (ProductPrice) TableName() string { return "product_prices" }

// OrderProduct — связка заказ-товар.
type OrderProduct struct {
	OrderID   int64 `gorm:"primaryKey;autoIncrement:false" json:"orderId"`
	ProductID int64 `gorm:"primaryKey;autoIncrement:false" json:"productId"`
}

func (OrderProduct) TableName() string { return "order_products" }
