package repository_test

import (
	"context"
	"testing"
	"time"

	"shoppa/internal/domain/session"
	infraRepo "shoppa/internal/infra/repository"
	repo "shoppa/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ repo.SessionRepository = (*infraRepo.SessionMemoryRepository)(nil)

func TestSessionMemoryRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	r := infraRepo.NewSessionMemoryRepository()

	s := session.New("s-1", time.Unix(100, 0))
	require.NoError(t, r.Create(ctx, s))
	assert.ErrorIs(t, r.Create(ctx, session.New("s-1", time.Unix(200, 0))), repo.ErrAlreadyExists)

	got, err := r.FindByID(ctx, "s-1")
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Same(t, s.Cart, got.Cart)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, r.Delete(ctx, "s-1"))
	require.NoError(t, r.Delete(ctx, "s-1"))

	_, err = r.FindByID(ctx, "s-1")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

type fakeNow struct{ t time.Time }

func (f *fakeNow) Now() time.Time { return f.t }

func TestSessionMemoryRepository_Expiry(t *testing.T) {
	ctx := context.Background()
	clock := &fakeNow{t: time.Unix(1000, 0)}
	r := infraRepo.NewSessionMemoryRepositoryWithClock(clock.Now)

	short := session.New("short", clock.t)
	short.ExpiresAt = clock.t.Add(time.Minute)
	long := session.New("long", clock.t)
	long.ExpiresAt = clock.t.Add(time.Hour)
	forever := session.New("forever", clock.t)

	for _, s := range []*session.Session{short, long, forever} {
		require.NoError(t, r.Create(ctx, s))
	}

	_, err := r.FindByID(ctx, "short")
	require.NoError(t, err)

	clock.t = clock.t.Add(time.Minute)

	// 期限ちょうどで見つからない
	_, err = r.FindByID(ctx, "short")
	assert.ErrorIs(t, err, repo.ErrNotFound)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Createで他の期限切れも掃除される
	clock.t = clock.t.Add(time.Hour)
	require.NoError(t, r.Create(ctx, session.New("next", clock.t)))

	n, err = r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = r.FindByID(ctx, "long")
	assert.ErrorIs(t, err, repo.ErrNotFound)
	_, err = r.FindByID(ctx, "forever")
	assert.NoError(t, err)
}

func TestSessionMemoryRepository_ExpiredIDCanBeReused(t *testing.T) {
	ctx := context.Background()
	clock := &fakeNow{t: time.Unix(1000, 0)}
	r := infraRepo.NewSessionMemoryRepositoryWithClock(clock.Now)

	s := session.New("s-1", clock.t)
	s.ExpiresAt = clock.t.Add(time.Second)
	require.NoError(t, r.Create(ctx, s))

	clock.t = clock.t.Add(time.Second)
	assert.NoError(t, r.Create(ctx, session.New("s-1", clock.t)))
}
