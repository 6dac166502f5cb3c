package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"inventory-backend/internal/models"
	"inventory-backend/internal/repository"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type inventoryService struct {
	repo repository.Repository
	now  func() time.Time
}

func NewInventoryService(repo repository.Repository) *inventoryService {
	return &inventoryService{
		repo: repo,
		now:  time.Now,
	}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

func makePage(page, limit int, total int64) Page {
	return Page{
		CurrentPage:  page,
		TotalPages:   int(math.Ceil(float64(total) / float64(limit))),
		TotalItems:   total,
		ItemsPerPage: limit,
	}
}

func noFilter(v string) bool {
	return v == "" || v == "all"
}

func (s *inventoryService) ListProducts(ctx context.Context, f ProductListFilter) ([]Product, Page, error) {
	page, limit := normalizePage(f.Page, f.Limit)

	rf := repository.ProductListFilter{
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
	if !noFilter(f.Type) {
		rf.Type = f.Type
	}
	if !noFilter(f.Specification) {
		rf.Specification = f.Specification
	}

	rows, total, err := s.repo.Products().List(ctx, rf)
	if err != nil {
		return nil, Page{}, err
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	// Цены отдельным запросом по собранным ID: join размножил бы строки товаров.
	prices, err := s.repo.Prices().ListByProductIDs(ctx, ids)
	if err != nil {
		return nil, Page{}, err
	}
	byProduct := make(map[int64][]Price, len(rows))
	for _, p := range prices {
		byProduct[p.ProductID] = append(byProduct[p.ProductID], Price{
			Value:     p.Value,
			Symbol:    p.Symbol,
			IsDefault: p.IsDefault,
		})
	}

	out := make([]Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, viewToProduct(row, byProduct[row.ID]))
	}
	return out, makePage(page, limit, total), nil
}

func viewToProduct(row repository.ProductView, prices []Price) Product {
	if prices == nil {
		prices = []Price{}
	}
	return Product{
		ID:            row.ID,
		Title:         row.Title,
		Type:          row.Type,
		Specification: row.Specification,
		SerialNumber:  row.SerialNumber,
		IsNew:         row.IsNew,
		Status:        row.Status,
		Date:          row.Date,
		Guarantee: Guarantee{
			Start: row.GuaranteeStart,
			End:   row.GuaranteeEnd,
		},
		IncomingGroup: row.IncomingGroup,
		GroupName:     row.IncomingGroup + " - " + row.Type,
		Photo:         row.Photo,
		OrderID:       row.OrderID,
		OrderTitle:    row.OrderTitle,
		Username:      row.Username,
		Prices:        prices,
	}
}

func (s *inventoryService) GetFilterOptions(ctx context.Context) (*FilterOptions, error) {
	types, err := s.repo.Products().DistinctTypes(ctx)
	if err != nil {
		return nil, err
	}
	specs, err := s.repo.Products().DistinctSpecifications(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := s.repo.Products().DistinctGroupNames(ctx)
	if err != nil {
		return nil, err
	}
	return &FilterOptions{
		Types:          types,
		Specifications: specs,
		Groups:         groups,
	}, nil
}

func (in *ProductInput) validate() error {
	if in.Title == "" || in.Type == "" || in.SerialNumber == 0 ||
		in.Date == "" || in.IncomingGroup == "" || in.Username == "" {
		return ErrMissingFields
	}
	hasPositive := false
	for _, p := range in.Prices {
		if p.Value > 0 {
			hasPositive = true
			break
		}
	}
	if !hasPositive {
		return ErrNoPositivePrice
	}
	return nil
}

func (s *inventoryService) CreateProduct(ctx context.Context, in ProductInput) (*Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var created *Product
	err := s.repo.WithTx(ctx, func(tx repository.Repository) error {
		// Предварительная проверка даёт понятный ответ в обычном случае;
		// источник истины — UNIQUE KEY по serial_number (гонка двух вставок
		// заканчивается ErrDuplicateSerial у проигравшей).
		if existing, err := tx.Products().GetBySerialNumber(ctx, in.SerialNumber); err != nil {
			return err
		} else if existing != nil {
			return ErrSerialNumberTaken
		}

		user, err := tx.Users().GetByUsername(ctx, in.Username)
		if err != nil {
			return err
		}
		if user == nil {
			user = &models.User{Username: in.Username}
			if err := tx.Users().Create(ctx, user); err != nil {
				return err
			}
		}

		order, err := tx.Orders().GetByIncomingGroup(ctx, in.IncomingGroup)
		if err != nil {
			return err
		}
		if order == nil {
			order = &models.Order{
				Title:         fmt.Sprintf("Заказ для группы: %s", in.IncomingGroup),
				Date:          s.now(),
				IncomingGroup: in.IncomingGroup,
			}
			if err := tx.Orders().Create(ctx, order); err != nil {
				return err
			}
		}

		product := &models.Product{
			Title:          in.Title,
			Type:           in.Type,
			Specification:  in.Specification,
			SerialNumber:   in.SerialNumber,
			UserID:         user.ID,
			IsNew:          in.IsNew,
			Status:         in.Status,
			Date:           in.Date,
			GuaranteeStart: in.GuaranteeStart,
			GuaranteeEnd:   in.GuaranteeEnd,
			IncomingGroup:  in.IncomingGroup,
			Photo:          in.Photo,
			OrderID:        order.ID,
		}
		if err := tx.Products().Create(ctx, product); err != nil {
			if errors.Is(err, repository.ErrDuplicateSerial) {
				return ErrSerialNumberTaken
			}
			return err
		}

		// Нулевые и отрицательные цены молча отбрасываются.
		for _, p := range in.Prices {
			if p.Value <= 0 {
				continue
			}
			price := &models.ProductPrice{
				ProductID: product.ID,
				Value:     p.Value,
				Symbol:    p.Symbol,
				IsDefault: p.IsDefault,
			}
			if err := tx.Prices().Create(ctx, price); err != nil {
				return err
			}
		}

		if err := tx.Orders().Link(ctx, order.ID, product.ID); err != nil {
			return err
		}

		view, err := tx.Products().GetViewByID(ctx, product.ID)
		if err != nil {
			return err
		}
		if view == nil {
			return errors.New("created product not found")
		}
		priceRows, err := tx.Prices().ListByProductIDs(ctx, []int64{product.ID})
		if err != nil {
			return err
		}
		prices := make([]Price, 0, len(priceRows))
		for _, p := range priceRows {
			prices = append(prices, Price{Value: p.Value, Symbol: p.Symbol, IsDefault: p.IsDefault})
		}
		full := viewToProduct(*view, prices)
		created = &full
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *inventoryService) DeleteProduct(ctx context.Context, id int64) (*DeletedProduct, error) {
	var deleted *DeletedProduct
	err := s.repo.WithTx(ctx, func(tx repository.Repository) error {
		product, err := tx.Products().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}

		// Сначала дочерние строки, затем сам товар — в одной транзакции.
		ids := []int64{product.ID}
		if err := tx.Orders().UnlinkProducts(ctx, ids); err != nil {
			return err
		}
		if err := tx.Prices().DeleteByProductIDs(ctx, ids); err != nil {
			return err
		}
		if _, err := tx.Products().DeleteByIDs(ctx, ids); err != nil {
			return err
		}

		deleted = &DeletedProduct{
			ID:           product.ID,
			Title:        product.Title,
			SerialNumber: product.SerialNumber,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (s *inventoryService) ListIncomingGroups(ctx context.Context, page, limit int) ([]IncomingGroup, Page, error) {
	page, limit = normalizePage(page, limit)

	rows, total, err := s.repo.Groups().ListIncomingGroups(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, Page{}, err
	}

	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.IncomingGroup)
	}
	priceRows, err := s.repo.Groups().PriceTotalsByGroups(ctx, names)
	if err != nil {
		return nil, Page{}, err
	}
	totals := make(map[string]PriceTotals, len(priceRows))
	for _, pr := range priceRows {
		totals[pr.Key] = PriceTotals{
			TotalUSD: pr.TotalUSD,
			TotalUAH: pr.TotalUAH,
			USDCount: pr.USDCount,
			UAHCount: pr.UAHCount,
		}
	}

	out := make([]IncomingGroup, 0, len(rows))
	for _, row := range rows {
		// Группа без строк цен получает нулевые суммы.
		out = append(out, IncomingGroup{
			IncomingGroup:  row.IncomingGroup,
			ItemCount:      row.ItemCount,
			EarliestDate:   row.EarliestDate,
			LatestDate:     row.LatestDate,
			Types:          row.Types,
			Specifications: row.Specifications,
			Prices:         totals[row.IncomingGroup],
		})
	}
	return out, makePage(page, limit, total), nil
}

func (s *inventoryService) DeleteIncomingGroup(ctx context.Context, groupName string) (*DeletedGroup, error) {
	var result *DeletedGroup
	err := s.repo.WithTx(ctx, func(tx repository.Repository) error {
		products, err := tx.Products().ListByIncomingGroup(ctx, groupName)
		if err != nil {
			return err
		}
		if len(products) == 0 {
			return ErrGroupNotFound
		}

		ids := make([]int64, 0, len(products))
		deleted := make([]DeletedProduct, 0, len(products))
		for _, p := range products {
			ids = append(ids, p.ID)
			deleted = append(deleted, DeletedProduct{
				ID:           p.ID,
				Title:        p.Title,
				SerialNumber: p.SerialNumber,
			})
		}

		if err := tx.Orders().UnlinkProducts(ctx, ids); err != nil {
			return err
		}
		if err := tx.Prices().DeleteByProductIDs(ctx, ids); err != nil {
			return err
		}
		if _, err := tx.Products().DeleteByIDs(ctx, ids); err != nil {
			return err
		}

		result = &DeletedGroup{
			GroupName:            groupName,
			DeletedProductsCount: len(deleted),
			DeletedProducts:      deleted,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *inventoryService) ListTypeGroups(ctx context.Context, page, limit int) ([]TypeGroup, Page, error) {
	page, limit = normalizePage(page, limit)

	rows, total, err := s.repo.Groups().ListTypeGroups(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, Page{}, err
	}

	types := make([]string, 0, len(rows))
	for _, row := range rows {
		types = append(types, row.Type)
	}
	priceRows, err := s.repo.Groups().PriceTotalsByTypes(ctx, types)
	if err != nil {
		return nil, Page{}, err
	}
	totals := make(map[string]PriceTotals, len(priceRows))
	for _, pr := range priceRows {
		totals[pr.Key] = PriceTotals{
			TotalUSD: pr.TotalUSD,
			TotalUAH: pr.TotalUAH,
			USDCount: pr.USDCount,
			UAHCount: pr.UAHCount,
		}
	}

	out := make([]TypeGroup, 0, len(rows))
	for _, row := range rows {
		out = append(out, TypeGroup{
			Type:           row.Type,
			ItemCount:      row.ItemCount,
			EarliestDate:   row.EarliestDate,
			LatestDate:     row.LatestDate,
			Specifications: splitDistinct(row.Specifications),
			Prices:         totals[row.Type],
		})
	}
	return out, makePage(page, limit, total), nil
}

// splitDistinct разбирает результат GROUP_CONCAT, отбрасывая пустые значения.
func splitDistinct(concat string) []string {
	parts := strings.Split(concat, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
