package usecase_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"shoppa/internal/domain/model"
	"shoppa/internal/domain/session"
	repo "shoppa/internal/repository"
	"shoppa/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =====================
// Mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

var _ repo.ProductRepository = (*ProductRepoMock)(nil)

type SessionRepoMock struct{ mock.Mock }

func (m *SessionRepoMock) Create(ctx context.Context, s *session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *SessionRepoMock) FindByID(ctx context.Context, id string) (*session.Session, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*session.Session)
	return s, args.Error(1)
}

func (m *SessionRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *SessionRepoMock) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

var _ repo.SessionRepository = (*SessionRepoMock)(nil)

type IssuerMock struct{ mock.Mock }

func (m *IssuerMock) Issue(sessionID string, now time.Time) (string, time.Time, error) {
	args := m.Called(sessionID, now)
	exp, _ := args.Get(1).(time.Time)
	return args.String(0), exp, args.Error(2)
}

// =====================
// helper
// =====================

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type seqIDGen struct {
	prefix string
	n      int
}

func (g *seqIDGen) NewID() string {
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n)
}

var testNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

var (
	p1 = model.Product{ID: "p1", Name: "Classic Tee", Description: "black", Image: "https://img/p1", Price: 999}
	p2 = model.Product{ID: "p2", Name: "Canvas Tote", Price: 1299}
)

// セッション＋カタログのモックを用意
func withSession(t *testing.T, id string) (*SessionRepoMock, *session.Session) {
	t.Helper()

	s := session.New(id, testNow)
	sessions := new(SessionRepoMock)
	sessions.On("FindByID", mock.Anything, id).Return(s, nil)
	return sessions, s
}

func assertHTTPError(t *testing.T, err error, status int, msg string) {
	t.Helper()

	require.Error(t, err)
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok, "expected HTTPError, got %T: %v", err, err)
	assert.Equal(t, status, he.Status)
	if msg != "" {
		assert.Equal(t, msg, he.Message)
	}
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	assertHTTPError(t, err, http.StatusUnauthorized, "unauthorized")
}
