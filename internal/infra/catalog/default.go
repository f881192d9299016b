package catalog

import "shoppa/internal/domain/model"

// DefaultProducts は組み込みの商品一覧（CATALOG_SOURCE=static）。
func DefaultProducts() []model.Product {
	return []model.Product{
		{
			ID:          "p1",
			Name:        "Classic Tee",
			Description: "Soft cotton t-shirt in black.",
			Image:       "https://picsum.photos/seed/shoppa-p1/300/300",
			Price:       999,
		},
		{
			ID:          "p2",
			Name:        "Canvas Tote",
			Description: "Heavy canvas tote bag with inner pocket.",
			Image:       "https://picsum.photos/seed/shoppa-p2/300/300",
			Price:       1299,
		},
		{
			ID:          "p3",
			Name:        "Wireless Earbuds",
			Description: "Bluetooth earbuds with charging case.",
			Image:       "https://picsum.photos/seed/shoppa-p3/300/300",
			Price:       4999,
		},
		{
			ID:          "p4",
			Name:        "Steel Water Bottle",
			Description: "Insulated 750ml bottle, keeps drinks cold for 24h.",
			Image:       "https://picsum.photos/seed/shoppa-p4/300/300",
			Price:       1850,
		},
		{
			ID:          "p5",
			Name:        "Sticker Pack",
			Description: "Ten vinyl stickers.",
			Image:       "https://picsum.photos/seed/shoppa-p5/300/300",
			Price:       350,
		},
	}
}
