package catalog

import (
	"fmt"
	"os"

	"shoppa/internal/domain/model"
	"shoppa/internal/validator"

	"gopkg.in/yaml.v2"
)

// カタログファイルの形式
//
//	products:
//	  - id: p1
//	    name: Classic Tee
//	    price: 999
type fileFormat struct {
	Products []model.Product `yaml:"products"`
}

// LoadFile はYAMLファイルから商品一覧を読み込む（CATALOG_SOURCE=file）。
func LoadFile(path string) ([]model.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	products, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return products, nil
}

// Parse はYAMLを読んで検証する
func Parse(data []byte) ([]model.Product, error) {
	var f fileFormat
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if err := validator.ValidateCatalog(f.Products); err != nil {
		return nil, err
	}
	return f.Products, nil
}
