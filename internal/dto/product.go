package dto

import "inventory-backend/internal/service"

type Price struct {
	Value     float64 `json:"value"`
	Symbol    string  `json:"symbol"`
	IsDefault bool    `json:"isDefault"`
}

type Guarantee struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

type Product struct {
	ID            int64     `json:"id"`
	SerialNumber  int64     `json:"serialNumber"`
	IsNew         int       `json:"isNew"`
	Status        string    `json:"status"`
	Photo         *string   `json:"photo"`
	Title         string    `json:"title"`
	Type          string    `json:"type"`
	Specification *string   `json:"specification"`
	GroupName     string    `json:"groupName"`
	IncomingGroup string    `json:"incomingGroup"`
	Guarantee     Guarantee `json:"guarantee"`
	Date          string    `json:"date"`
	OrderID       int64     `json:"orderId"`
	Username      *string   `json:"username"`
	OrderTitle    *string   `json:"orderTitle"`
	Price         []Price   `json:"price"`
}

func ProductFromService(p service.Product) Product {
	prices := make([]Price, 0, len(p.Prices))
	for _, pr := range p.Prices {
		prices = append(prices, Price{Value: pr.Value, Symbol: pr.Symbol, IsDefault: pr.IsDefault})
	}
	return Product{
		ID:            p.ID,
		SerialNumber:  p.SerialNumber,
		IsNew:         p.IsNew,
		Status:        p.Status,
		Photo:         p.Photo,
		Title:         p.Title,
		Type:          p.Type,
		Specification: p.Specification,
		GroupName:     p.GroupName,
		IncomingGroup: p.IncomingGroup,
		Guarantee:     Guarantee{Start: p.Guarantee.Start, End: p.Guarantee.End},
		Date:          p.Date,
		OrderID:       p.OrderID,
		Username:      p.Username,
		OrderTitle:    p.OrderTitle,
		Price:         prices,
	}
}

func ProductsFromService(list []service.Product) []Product {
	out := make([]Product, 0, len(list))
	for _, p := range list {
		out = append(out, ProductFromService(p))
	}
	return out
}

type PriceEntry struct {
	Value     float64 `json:"value"`
	Symbol    string  `json:"symbol"`
	IsDefault bool    `json:"isDefault"`
}

type CreateProductRequest struct {
	Title          string       `json:"title"`
	Type           string       `json:"type"`
	Specification  *string      `json:"specification"`
	SerialNumber   int64        `json:"serialNumber"`
	Username       string       `json:"username"`
	IsNew          int          `json:"isNew"`
	Status         string       `json:"status"`
	Date           string       `json:"date"`
	GuaranteeStart *string      `json:"guaranteeStart"`
	GuaranteeEnd   *string      `json:"guaranteeEnd"`
	IncomingGroup  string       `json:"incomingGroup"`
	Photo          *string      `json:"photo"`
	Prices         []PriceEntry `json:"prices"`
}

func (r CreateProductRequest) ToInput() service.ProductInput {
	prices := make([]service.PriceInput, 0, len(r.Prices))
	for _, p := range r.Prices {
		prices = append(prices, service.PriceInput{Value: p.Value, Symbol: p.Symbol, IsDefault: p.IsDefault})
	}
	return service.ProductInput{
		Title:          r.Title,
		Type:           r.Type,
		Specification:  r.Specification,
		SerialNumber:   r.SerialNumber,
		Username:       r.Username,
		IsNew:          r.IsNew,
		Status:         r.Status,
		Date:           r.Date,
		GuaranteeStart: r.GuaranteeStart,
		GuaranteeEnd:   r.GuaranteeEnd,
		IncomingGroup:  r.IncomingGroup,
		Photo:          r.Photo,
		Prices:         prices,
	}
}

type DeletedProduct struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	SerialNumber int64  `json:"serialNumber"`
}

type FilterOptions struct {
	Types          []string `json:"types"`
	Specifications []string `json:"specifications"`
	Groups         []string `json:"groups"`
}
