package validator

import (
	"errors"
	"fmt"
	"strings"

	"shoppa/internal/domain/model"
)

var (
	// 商品定義が不正
	ErrInvalidProduct = errors.New("invalid product")

	// 同じIDの商品が複数ある
	ErrDuplicateProduct = errors.New("duplicate product id")

	// 商品が1件も無い
	ErrEmptyCatalog = errors.New("empty catalog")
)

// 読み込んだカタログを検証
func ValidateCatalog(products []model.Product) error {
	if len(products) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[string]struct{}, len(products))
	for i, p := range products {
		if err := ValidateProduct(p); err != nil {
			return fmt.Errorf("products[%d]: %w", i, err)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("products[%d] %q: %w", i, p.ID, ErrDuplicateProduct)
		}
		seen[p.ID] = struct{}{}
	}

	return nil
}

// 商品1件を検証
func ValidateProduct(p model.Product) error {
	// 必須チェック
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidProduct)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required (id=%s)", ErrInvalidProduct, p.ID)
	}

	// 価格は0以上
	if p.Price < 0 {
		return fmt.Errorf("%w: price must be >= 0 (id=%s)", ErrInvalidProduct, p.ID)
	}
	if p.Price > model.MaxPrice {
		return fmt.Errorf("%w: price must be <= %d (id=%s)", ErrInvalidProduct, model.MaxPrice, p.ID)
	}

	return nil
}
