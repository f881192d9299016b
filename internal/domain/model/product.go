package model

// カタログの商品。price は最小通貨単位（cent）。
type Product struct {
	ID          string `gorm:"primaryKey;type:varchar(64)" json:"id" yaml:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name" yaml:"name"`
	Description string `gorm:"type:text" json:"description" yaml:"description"`
	Image       string `gorm:"type:text" json:"image" yaml:"image"`
	Price       int64  `gorm:"not null" json:"price" yaml:"price"`
}
