package repository

import (
	"context"
	"errors"
	"strings"

	"shoppa/internal/domain/model"
	repo "shoppa/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 検索/価格帯/ソート付きで返す。
func (r *ProductGormRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	var products []model.Product

	if err := listQuery(r.db.WithContext(ctx), q).Find(&products).Error; err != nil {
		return []model.Product{}, err
	}

	return products, nil
}

// Listの条件を組み立てる
func listQuery(tx *gorm.DB, q repo.ProductListQuery) *gorm.DB {
	tx = tx.Model(&model.Product{})

	// q nameを対象
	if strings.TrimSpace(q.Q) != "" {
		like := "%" + strings.TrimSpace(q.Q) + "%"
		tx = tx.Where("name ILIKE ?", like)
	}

	//価格帯
	if q.MinPrice != nil {
		tx = tx.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		tx = tx.Where("price <= ?", *q.MaxPrice)
	}

	//sort
	switch q.Sort {
	case "price_asc":
		tx = tx.Order("price asc").Order("id asc")
	case "price_desc":
		tx = tx.Order("price desc").Order("id asc")
	case "name":
		tx = tx.Order("name asc").Order("id asc")
	default:
		tx = tx.Order("id asc")
	}

	return tx
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// テーブルが空なら初期商品を入れる
func (r *ProductGormRepository) SeedIfEmpty(ctx context.Context, products []model.Product) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Product{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 || len(products) == 0 {
			return nil
		}
		return tx.Create(&products).Error
	})
	if err != nil {
		return false, err
	}
	return count == 0 && len(products) > 0, nil
}
