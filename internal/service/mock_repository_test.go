package service_test

import (
	"context"
	"sort"
	"strings"

	"inventory-backend/internal/models"
	"inventory-backend/internal/repository"
)

// mockRepository — репозиторий на map-ах, повторяющий контракт SQL-слоя:
// уникальный serial_number, join-ы и групповые агрегаты считаются из state.
type mockRepository struct {
	users    map[int64]*models.User
	orders   map[int64]*models.Order
	products map[int64]*models.Product
	prices   map[int64]*models.ProductPrice
	links    []models.OrderProduct
	nextID   int64
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		users:    make(map[int64]*models.User),
		orders:   make(map[int64]*models.Order),
		products: make(map[int64]*models.Product),
		prices:   make(map[int64]*models.ProductPrice),
	}
}

func (m *mockRepository) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *mockRepository) Users() repository.UserRepo       { return (*mockUserRepo)(m) }
func (m *mockRepository) Orders() repository.OrderRepo     { return (*mockOrderRepo)(m) }
func (m *mockRepository) Products() repository.ProductRepo { return (*mockProductRepo)(m) }
func (m *mockRepository) Prices() repository.PriceRepo     { return (*mockPriceRepo)(m) }
func (m *mockRepository) Groups() repository.GroupRepo     { return (*mockGroupRepo)(m) }

func (m *mockRepository) WithTx(ctx context.Context, fn func(tx repository.Repository) error) error {
	return fn(m)
}

type mockUserRepo mockRepository

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) Create(_ context.Context, u *models.User) error {
	u.ID = (*mockRepository)(m).id()
	m.users[u.ID] = u
	return nil
}

type mockOrderRepo mockRepository

func (m *mockOrderRepo) GetByIncomingGroup(_ context.Context, group string) (*models.Order, error) {
	for _, o := range m.orders {
		if o.IncomingGroup == group {
			return o, nil
		}
	}
	return nil, nil
}

func (m *mockOrderRepo) Create(_ context.Context, o *models.Order) error {
	o.ID = (*mockRepository)(m).id()
	m.orders[o.ID] = o
	return nil
}

func (m *mockOrderRepo) Link(_ context.Context, orderID, productID int64) error {
	m.links = append(m.links, models.OrderProduct{OrderID: orderID, ProductID: productID})
	return nil
}

func (m *mockOrderRepo) UnlinkProducts(_ context.Context, productIDs []int64) error {
	keep := m.links[:0]
	for _, l := range m.links {
		if !containsID(productIDs, l.ProductID) {
			keep = append(keep, l)
		}
	}
	m.links = keep
	return nil
}

type mockProductRepo mockRepository

func (m *mockProductRepo) view(p *models.Product) repository.ProductView {
	v := repository.ProductView{
		ID:             p.ID,
		Title:          p.Title,
		Type:           p.Type,
		Specification:  p.Specification,
		SerialNumber:   p.SerialNumber,
		UserID:         p.UserID,
		IsNew:          p.IsNew,
		Status:         p.Status,
		Date:           p.Date,
		GuaranteeStart: p.GuaranteeStart,
		GuaranteeEnd:   p.GuaranteeEnd,
		IncomingGroup:  p.IncomingGroup,
		Photo:          p.Photo,
		OrderID:        p.OrderID,
	}
	if u, ok := m.users[p.UserID]; ok {
		username := u.Username
		v.Username = &username
	}
	if o, ok := m.orders[p.OrderID]; ok {
		title := o.Title
		v.OrderTitle = &title
	}
	return v
}

func (m *mockProductRepo) sorted() []*models.Product {
	out := make([]*models.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (m *mockProductRepo) List(_ context.Context, f repository.ProductListFilter) ([]repository.ProductView, int64, error) {
	matched := make([]*models.Product, 0)
	for _, p := range m.sorted() {
		if f.Type != "" && p.Type != f.Type {
			continue
		}
		if f.Specification != "" && (p.Specification == nil || *p.Specification != f.Specification) {
			continue
		}
		matched = append(matched, p)
	}
	total := int64(len(matched))

	if f.Offset >= len(matched) {
		return []repository.ProductView{}, total, nil
	}
	matched = matched[f.Offset:]
	if f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}

	views := make([]repository.ProductView, 0, len(matched))
	for _, p := range matched {
		views = append(views, m.view(p))
	}
	return views, total, nil
}

func (m *mockProductRepo) GetViewByID(_ context.Context, id int64) (*repository.ProductView, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	v := m.view(p)
	return &v, nil
}

func (m *mockProductRepo) GetByID(_ context.Context, id int64) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (m *mockProductRepo) GetBySerialNumber(_ context.Context, serial int64) (*models.Product, error) {
	for _, p := range m.products {
		if p.SerialNumber == serial {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockProductRepo) ListByIncomingGroup(_ context.Context, group string) ([]models.Product, error) {
	out := make([]models.Product, 0)
	for _, p := range m.sorted() {
		if p.IncomingGroup == group {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProductRepo) Create(_ context.Context, p *models.Product) error {
	for _, existing := range m.products {
		if existing.SerialNumber == p.SerialNumber {
			return repository.ErrDuplicateSerial
		}
	}
	p.ID = (*mockRepository)(m).id()
	m.products[p.ID] = p
	return nil
}

func (m *mockProductRepo) DeleteByIDs(_ context.Context, ids []int64) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, ok := m.products[id]; ok {
			delete(m.products, id)
			n++
		}
	}
	return n, nil
}

func (m *mockProductRepo) DistinctTypes(_ context.Context) ([]string, error) {
	return m.distinct(func(p *models.Product) (string, bool) { return p.Type, p.Type != "" }), nil
}

func (m *mockProductRepo) DistinctSpecifications(_ context.Context) ([]string, error) {
	return m.distinct(func(p *models.Product) (string, bool) {
		if p.Specification == nil {
			return "", false
		}
		return *p.Specification, true
	}), nil
}

func (m *mockProductRepo) DistinctGroupNames(_ context.Context) ([]string, error) {
	return m.distinct(func(p *models.Product) (string, bool) {
		return p.IncomingGroup + " - " + p.Type, p.IncomingGroup != ""
	}), nil
}

func (m *mockProductRepo) distinct(key func(*models.Product) (string, bool)) []string {
	seen := make(map[string]bool)
	for _, p := range m.products {
		if v, ok := key(p); ok {
			seen[v] = true
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

type mockPriceRepo mockRepository

func (m *mockPriceRepo) Create(_ context.Context, p *models.ProductPrice) error {
	p.ID = (*mockRepository)(m).id()
	m.prices[p.ID] = p
	return nil
}

func (m *mockPriceRepo) ListByProductIDs(_ context.Context, productIDs []int64) ([]models.ProductPrice, error) {
	if len(productIDs) == 0 {
		return []models.ProductPrice{}, nil
	}
	out := make([]models.ProductPrice, 0)
	for _, id := range sortedKeys(m.prices) {
		p := m.prices[id]
		if containsID(productIDs, p.ProductID) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockPriceRepo) DeleteByProductIDs(_ context.Context, productIDs []int64) error {
	for id, p := range m.prices {
		if containsID(productIDs, p.ProductID) {
			delete(m.prices, id)
		}
	}
	return nil
}

type mockGroupRepo mockRepository

type groupAgg struct {
	key      string
	products []*models.Product
}

func (m *mockGroupRepo) aggregate(key func(*models.Product) (string, bool)) []groupAgg {
	byKey := make(map[string][]*models.Product)
	for _, id := range sortedKeys(m.products) {
		p := m.products[id]
		if k, ok := key(p); ok {
			byKey[k] = append(byKey[k], p)
		}
	}
	out := make([]groupAgg, 0, len(byKey))
	for k, list := range byKey {
		out = append(out, groupAgg{key: k, products: list})
	}
	return out
}

func minMaxDates(list []*models.Product) (string, string) {
	earliest, latest := list[0].Date, list[0].Date
	for _, p := range list[1:] {
		if p.Date < earliest {
			earliest = p.Date
		}
		if p.Date > latest {
			latest = p.Date
		}
	}
	return earliest, latest
}

func (m *mockGroupRepo) ListIncomingGroups(_ context.Context, limit, offset int) ([]repository.IncomingGroupRow, int64, error) {
	aggs := m.aggregate(func(p *models.Product) (string, bool) {
		return p.IncomingGroup, p.IncomingGroup != ""
	})

	rows := make([]repository.IncomingGroupRow, 0, len(aggs))
	for _, agg := range aggs {
		earliest, latest := minMaxDates(agg.products)
		types := make(map[string]bool)
		specs := make(map[string]bool)
		for _, p := range agg.products {
			types[p.Type] = true
			if p.Specification != nil {
				specs[*p.Specification] = true
			} else {
				specs[""] = true
			}
		}
		rows = append(rows, repository.IncomingGroupRow{
			IncomingGroup:  agg.key,
			ItemCount:      int64(len(agg.products)),
			EarliestDate:   earliest,
			LatestDate:     latest,
			Types:          strings.Join(sortedSet(types), ","),
			Specifications: strings.Join(sortedSet(specs), ","),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].LatestDate != rows[j].LatestDate {
			return rows[i].LatestDate > rows[j].LatestDate
		}
		return rows[i].IncomingGroup < rows[j].IncomingGroup
	})

	total := int64(len(rows))
	return pageRows(rows, limit, offset), total, nil
}

func (m *mockGroupRepo) PriceTotalsByGroups(_ context.Context, groups []string) ([]repository.GroupPriceRow, error) {
	if len(groups) == 0 {
		return []repository.GroupPriceRow{}, nil
	}
	return m.priceTotals(groups, func(p *models.Product) string { return p.IncomingGroup }), nil
}

func (m *mockGroupRepo) ListTypeGroups(_ context.Context, limit, offset int) ([]repository.TypeGroupRow, int64, error) {
	aggs := m.aggregate(func(p *models.Product) (string, bool) { return p.Type, true })

	rows := make([]repository.TypeGroupRow, 0, len(aggs))
	for _, agg := range aggs {
		earliest, latest := minMaxDates(agg.products)
		specs := make(map[string]bool)
		for _, p := range agg.products {
			if p.Specification != nil {
				specs[*p.Specification] = true
			} else {
				specs[""] = true
			}
		}
		rows = append(rows, repository.TypeGroupRow{
			Type:           agg.key,
			ItemCount:      int64(len(agg.products)),
			EarliestDate:   earliest,
			LatestDate:     latest,
			Specifications: strings.Join(sortedSet(specs), ","),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ItemCount != rows[j].ItemCount {
			return rows[i].ItemCount > rows[j].ItemCount
		}
		return rows[i].Type < rows[j].Type
	})

	total := int64(len(rows))
	return pageRows(rows, limit, offset), total, nil
}

func (m *mockGroupRepo) PriceTotalsByTypes(_ context.Context, types []string) ([]repository.GroupPriceRow, error) {
	if len(types) == 0 {
		return []repository.GroupPriceRow{}, nil
	}
	return m.priceTotals(types, func(p *models.Product) string { return p.Type }), nil
}

func (m *mockGroupRepo) priceTotals(keys []string, key func(*models.Product) string) []repository.GroupPriceRow {
	byKey := make(map[string]*repository.GroupPriceRow)
	for _, k := range keys {
		byKey[k] = &repository.GroupPriceRow{Key: k}
	}
	for _, p := range m.products {
		row, ok := byKey[key(p)]
		if !ok {
			continue
		}
		for _, price := range m.prices {
			if price.ProductID != p.ID {
				continue
			}
			switch price.Symbol {
			case "USD":
				row.TotalUSD += price.Value
				row.USDCount++
			case "UAH":
				row.TotalUAH += price.Value
				row.UAHCount++
			}
		}
	}
	out := make([]repository.GroupPriceRow, 0, len(byKey))
	for _, k := range keys {
		out = append(out, *byKey[k])
	}
	return out
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func sortedSet(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func pageRows[T any](rows []T, limit, offset int) []T {
	if offset >= len(rows) {
		return []T{}
	}
	rows = rows[offset:]
	if limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}
