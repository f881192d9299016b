package repository

import (
	"context"
	"sync"
	"time"

	"shoppa/internal/domain/session"
	repo "shoppa/internal/repository"
)

// プロセス内のセッション置き場（カートは永続化しない）
// 期限切れのセッションは見つからない扱いにして捨てる。
type SessionMemoryRepository struct {
	mu       sync.Mutex
	now      func() time.Time
	sessions map[string]*session.Session
}

// DI
func NewSessionMemoryRepository() *SessionMemoryRepository {
	return NewSessionMemoryRepositoryWithClock(time.Now)
}

// テストで時刻を固定する用
func NewSessionMemoryRepositoryWithClock(now func() time.Time) *SessionMemoryRepository {
	return &SessionMemoryRepository{
		now:      now,
		sessions: make(map[string]*session.Session),
	}
}

// 作成のたびに期限切れを掃除する
func (r *SessionMemoryRepository) Create(ctx context.Context, s *session.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweepLocked()
	if _, ok := r.sessions[s.ID]; ok {
		return repo.ErrAlreadyExists
	}
	r.sessions[s.ID] = s
	return nil
}

func (r *SessionMemoryRepository) FindByID(ctx context.Context, id string) (*session.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	if s.Expired(r.now()) {
		delete(r.sessions, id)
		return nil, repo.ErrNotFound
	}
	return s, nil
}

func (r *SessionMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}

// 有効なセッション数
func (r *SessionMemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweepLocked()
	return len(r.sessions), nil
}

func (r *SessionMemoryRepository) sweepLocked() {
	now := r.now()
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
		}
	}
}
