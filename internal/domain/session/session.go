package session

import (
	"time"

	"shoppa/internal/domain/cart"
)

// Session は1クライアント分の利用期間。カートの唯一の持ち主。
type Session struct {
	ID        string
	StartedAt time.Time
	// ゼロ値なら期限なし
	ExpiresAt time.Time
	Cart      *cart.Cart
}

// 空のカートで開始する
func New(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		StartedAt: now,
		Cart:      cart.New(),
	}
}

// Expired は now 時点で期限切れか
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
