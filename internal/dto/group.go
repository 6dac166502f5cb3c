package dto

import "inventory-backend/internal/service"

type PriceTotals struct {
	TotalUSD float64 `json:"totalUSD"`
	TotalUAH float64 `json:"totalUAH"`
	USDCount int64   `json:"usdCount"`
	UAHCount int64   `json:"uahCount"`
}

type IncomingGroup struct {
	IncomingGroup  string      `json:"incomingGroup"`
	ItemCount      int64       `json:"itemCount"`
	EarliestDate   string      `json:"earliestDate"`
	LatestDate     string      `json:"latestDate"`
	Types          string      `json:"types"`
	Specifications string      `json:"specifications"`
	Prices         PriceTotals `json:"prices"`
}

func IncomingGroupsFromService(list []service.IncomingGroup) []IncomingGroup {
	out := make([]IncomingGroup, 0, len(list))
	for _, g := range list {
		out = append(out, IncomingGroup{
			IncomingGroup:  g.IncomingGroup,
			ItemCount:      g.ItemCount,
			EarliestDate:   g.EarliestDate,
			LatestDate:     g.LatestDate,
			Types:          g.Types,
			Specifications: g.Specifications,
			Prices: PriceTotals{
				TotalUSD: g.Prices.TotalUSD,
				TotalUAH: g.Prices.TotalUAH,
				USDCount: g.Prices.USDCount,
				UAHCount: g.Prices.UAHCount,
			},
		})
	}
	return out
}

type TypeGroup struct {
	Type           string      `json:"type"`
	ItemCount      int64       `json:"itemCount"`
	EarliestDate   string      `json:"earliestDate"`
	LatestDate     string      `json:"latestDate"`
	Specifications []string    `json:"specifications"`
	Prices         PriceTotals `json:"prices"`
}

func TypeGroupsFromService(list []service.TypeGroup) []TypeGroup {
	out := make([]TypeGroup, 0, len(list))
	for _, g := range list {
		out = append(out, TypeGroup{
			Type:           g.Type,
			ItemCount:      g.ItemCount,
			EarliestDate:   g.EarliestDate,
			LatestDate:     g.LatestDate,
			Specifications: g.Specifications,
			Prices: PriceTotals{
				TotalUSD: g.Prices.TotalUSD,
				TotalUAH: g.Prices.TotalUAH,
				USDCount: g.Prices.USDCount,
				UAHCount: g.Prices.UAHCount,
			},
		})
	}
	return out
}

type DeletedGroup struct {
	GroupName            string           `json:"groupName"`
	DeletedProductsCount int              `json:"deletedProductsCount"`
	DeletedProducts      []DeletedProduct `json:"deletedProducts"`
}
