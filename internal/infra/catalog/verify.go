package catalog

import (
	"context"
	"fmt"

	"shoppa/internal/repository"
	"shoppa/internal/validator"
)

// Verify は保存済みの全商品を読み直して検証し、件数を返す（postgres起動時）。
func Verify(ctx context.Context, products repository.ProductRepository) (int, error) {
	all, err := products.List(ctx, repository.ProductListQuery{})
	if err != nil {
		return 0, fmt.Errorf("list catalog: %w", err)
	}
	if err := validator.ValidateCatalog(all); err != nil {
		return 0, fmt.Errorf("catalog: %w", err)
	}
	return len(all), nil
}
