package service

import "context"

type PriceInput struct {
	Value     float64
	Symbol    string
	IsDefault bool
}

type ProductInput struct {
	Title          string
	Type           string
	Specification  *string
	SerialNumber   int64
	Username       string
	IsNew          int
	Status         string
	Date           string
	GuaranteeStart *string
	GuaranteeEnd   *string
	IncomingGroup  string
	Photo          *string
	Prices         []PriceInput
}

type ProductListFilter struct {
	Type          string // "" или "all" — без фильтра
	Specification string
	Page          int
	Limit         int
}

// Page — метаданные пагинации; TotalPages всегда считается
// от полного количества строк, не от размера страницы.
type Page struct {
	CurrentPage  int
	TotalPages   int
	TotalItems   int64
	ItemsPerPage int
}

type Price struct {
	Value     float64
	Symbol    string
	IsDefault bool
}

type Guarantee struct {
	Start *string
	End   *string
}

// Product — полное представление товара для выдачи наружу.
type Product struct {
	ID             int64
	Title          string
	Type           string
	Specification  *string
	SerialNumber   int64
	IsNew          int
	Status         string
	Date           string
	Guarantee      Guarantee
	IncomingGroup  string
	GroupName      string
	Photo          *string
	OrderID        int64
	OrderTitle     *string
	Username       *string
	Prices         []Price
}

type FilterOptions struct {
	Types          []string
	Specifications []string
	Groups         []string
}

type PriceTotals struct {
	TotalUSD float64
	TotalUAH float64
	USDCount int64
	UAHCount int64
}

type IncomingGroup struct {
	IncomingGroup  string
	ItemCount      int64
	EarliestDate   string
	LatestDate     string
	Types          string
	Specifications string
	Prices         PriceTotals
}

type TypeGroup struct {
	Type           string
	ItemCount      int64
	EarliestDate   string
	LatestDate     string
	Specifications []string
	Prices         PriceTotals
}

type DeletedProduct struct {
	ID           int64
	Title        string
	SerialNumber int64
}

type DeletedGroup struct {
	GroupName            string
	DeletedProductsCount int
	DeletedProducts      []DeletedProduct
}

type InventoryService interface {
	ListProducts(ctx context.Context, f ProductListFilter) ([]Product, Page, error)
	GetFilterOptions(ctx context.Context) (*FilterOptions, error)
	CreateProduct(ctx context.Context, in ProductInput) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) (*DeletedProduct, error)

	ListIncomingGroups(ctx context.Context, page, limit int) ([]IncomingGroup, Page, error)
	DeleteIncomingGroup(ctx context.Context, groupName string) (*DeletedGroup, error)

	ListTypeGroups(ctx context.Context, page, limit int) ([]TypeGroup, Page, error)
}
