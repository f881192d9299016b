package model

// 1明細・1カートの上限。price*quantity とその合計が int64 に収まる範囲。
const (
	MaxQuantity    int64 = 999
	MaxPrice       int64 = 100_000_000 // 1,000,000.00
	MaxCartEntries       = 100
)

// カートの明細
// 追加時点の商品情報（価格含む）をそのまま保持する。
type CartEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Price       int64  `json:"price"`
	Quantity    int64  `json:"quantity"`
}

// price * quantity
func (e CartEntry) LineTotal() int64 {
	return e.Price * e.Quantity
}

// 商品から数量つきの明細を作る
func NewCartEntry(p Product, quantity int64) CartEntry {
	return CartEntry{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
		Price:       p.Price,
		Quantity:    quantity,
	}
}
