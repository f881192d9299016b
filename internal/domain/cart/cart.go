// Package cart はセッションが所有するカートの状態を管理する。
//
// 明細は商品IDでユニーク、追加順を保持する。数量は常に1以上で、
// 0になる明細は残さず削除する。合計は読むたびに計算する。
package cart

import (
	"errors"
	"sync"

	"shoppa/internal/domain/model"
)

var (
	// idが空、またはpriceが範囲外
	ErrInvalidItem = errors.New("invalid item")

	// 数量が1未満、または上限超え
	ErrInvalidQuantity = errors.New("invalid quantity")

	// 明細数が上限
	ErrCartFull = errors.New("cart is full")

	// 数量変更の対象がカートに無い
	ErrNotInCart = errors.New("item not in cart")
)

// Snapshot は一度のロックで読んだカートの状態。
type Snapshot struct {
	Entries    []model.CartEntry
	ItemCount  int64
	GrandTotal int64
}

// IsEmpty は明細が無いか
func (s Snapshot) IsEmpty() bool {
	return len(s.Entries) == 0
}

// Cart は1セッション分のカート。並行呼び出しに安全。
type Cart struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]*model.CartEntry
}

// New は空のカートを返す
func New() *Cart {
	return &Cart{
		entries: make(map[string]*model.CartEntry),
	}
}

// AddItem は商品を1つ追加する。
func (c *Cart) AddItem(p model.Product) (model.CartEntry, error) {
	return c.AddItemQuantity(p, 1)
}

// AddItemQuantity は商品をquantity個追加する（同一商品は数量加算）。
// 既存明細の表示項目と価格は上書きしない。
func (c *Cart) AddItemQuantity(p model.Product, quantity int64) (model.CartEntry, error) {
	if p.ID == "" || p.Price < 0 || p.Price > model.MaxPrice {
		return model.CartEntry{}, ErrInvalidItem
	}
	if quantity < 1 || quantity > model.MaxQuantity {
		return model.CartEntry{}, ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[p.ID]; ok {
		if quantity > model.MaxQuantity-e.Quantity {
			return model.CartEntry{}, ErrInvalidQuantity
		}
		e.Quantity += quantity
		return *e, nil
	}
	if len(c.order) >= model.MaxCartEntries {
		return model.CartEntry{}, ErrCartFull
	}

	e := model.NewCartEntry(p, quantity)
	c.entries[p.ID] = &e
	c.order = append(c.order, p.ID)
	return e, nil
}

// AdjustQuantity は既存明細の数量をdelta分変える。
// 0以下になったら明細を削除し removed=true を返す（返す明細のquantityは0）。
// 上限を超える増加は ErrInvalidQuantity で、明細は変わらない。
func (c *Cart) AdjustQuantity(id string, delta int64) (entry model.CartEntry, removed bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[id]
	if !ok {
		return model.CartEntry{}, false, ErrNotInCart
	}

	if delta > 0 && delta > model.MaxQuantity-e.Quantity {
		return model.CartEntry{}, false, ErrInvalidQuantity
	}

	// e.Quantity >= 1 なので負のdeltaでも溢れない
	next := e.Quantity + delta
	if next <= 0 {
		out := *e
		out.Quantity = 0
		c.removeLocked(id)
		return out, true, nil
	}

	e.Quantity = next
	return *e, false, nil
}

// RemoveItem は明細を削除する。無くてもエラーにしない。
func (c *Cart) RemoveItem(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[id]; !ok {
		return false
	}
	c.removeLocked(id)
	return true
}

// Clear は全明細を削除する
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clearLocked()
}

// Drain は現在の状態を返してから空にする（チェックアウト確定用）。
func (c *Cart) Drain() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.snapshotLocked()
	c.clearLocked()
	return s
}

// Entry はidの明細のコピー
func (c *Cart) Entry(id string) (model.CartEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[id]
	if !ok {
		return model.CartEntry{}, false
	}
	return *e, true
}

// Entries は追加順のコピーを返す
func (c *Cart) Entries() []model.CartEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.entriesLocked()
}

// Len は明細の数（数量ではない）
func (c *Cart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.order)
}

// ItemCount は数量の合計
func (c *Cart) ItemCount() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var n int64
	for _, e := range c.entries {
		n += e.Quantity
	}
	return n
}

// GrandTotal は price * quantity の合計
func (c *Cart) GrandTotal() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var total int64
	for _, e := range c.entries {
		total += e.LineTotal()
	}
	return total
}

// Snapshot は明細と合計を同じロックで読む。
func (c *Cart) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.snapshotLocked()
}

func (c *Cart) snapshotLocked() Snapshot {
	entries := c.entriesLocked()

	var count, total int64
	for _, e := range entries {
		count += e.Quantity
		total += e.LineTotal()
	}

	return Snapshot{Entries: entries, ItemCount: count, GrandTotal: total}
}

func (c *Cart) entriesLocked() []model.CartEntry {
	out := make([]model.CartEntry, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.entries[id])
	}
	return out
}

func (c *Cart) removeLocked(id string) {
	delete(c.entries, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Cart) clearLocked() {
	c.entries = make(map[string]*model.CartEntry)
	c.order = nil
}
