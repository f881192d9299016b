package repository

import (
	"context"
	"sort"
	"strings"

	"shoppa/internal/domain/model"
	repo "shoppa/internal/repository"
	"shoppa/internal/validator"
)

// 固定カタログ（組み込み / YAMLファイル）。読み込み後は変更しない。
type ProductMemoryRepository struct {
	products []model.Product
	byID     map[string]int
}

// DI
func NewProductMemoryRepository(products []model.Product) (*ProductMemoryRepository, error) {
	if err := validator.ValidateCatalog(products); err != nil {
		return nil, err
	}

	r := &ProductMemoryRepository{
		products: append([]model.Product(nil), products...),
		byID:     make(map[string]int, len(products)),
	}
	for i, p := range r.products {
		r.byID[p.ID] = i
	}
	return r, nil
}

func (r *ProductMemoryRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	keyword := strings.ToLower(strings.TrimSpace(q.Q))

	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if keyword != "" && !strings.Contains(strings.ToLower(p.Name), keyword) {
			continue
		}
		if q.MinPrice != nil && p.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && p.Price > *q.MaxPrice {
			continue
		}
		out = append(out, p)
	}

	//sort（指定なしはカタログ順）
	switch q.Sort {
	case "price_asc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "price_desc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case "name":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	}

	return out, nil
}

func (r *ProductMemoryRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return r.products[i], nil
}
