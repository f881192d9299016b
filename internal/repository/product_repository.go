package repository

import (
	"context"
	"errors"

	"shoppa/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type ProductListQuery struct {
	Q        string
	MinPrice *int64
	MaxPrice *int64
	Sort     string
}

// カタログの取得だけを約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (model.Product, error)
}
