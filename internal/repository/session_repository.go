package repository

import (
	"context"
	"errors"

	"shoppa/internal/domain/session"
)

// 同じIDのセッションが既にある
var ErrAlreadyExists = errors.New("already exists")

// セッション（とその持つカート）の保管を約束。
type SessionRepository interface {
	// 同じIDがあれば ErrAlreadyExists
	Create(ctx context.Context, s *session.Session) error
	// 無ければ ErrNotFound
	FindByID(ctx context.Context, id string) (*session.Session, error)
	// 無くてもエラーにしない
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
