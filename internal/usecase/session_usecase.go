package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"shoppa/internal/domain/session"
	repo "shoppa/internal/repository"

	"go.uber.org/zap"
)

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// セッショントークンを発行する約束
type SessionTokenIssuer interface {
	Issue(sessionID string, now time.Time) (token string, expiresAt time.Time, err error)
}

// SessionUsecase はセッション（カートの持ち主）の開始と終了。
type SessionUsecase struct {
	sessions repo.SessionRepository
	issuer   SessionTokenIssuer
	idGen    IDGenerator
	clock    Clock
	logger   *zap.Logger
}

// DI
func NewSessionUsecase(
	sessions repo.SessionRepository,
	issuer SessionTokenIssuer,
	idGen IDGenerator,
	clock Clock,
	logger *zap.Logger,
) *SessionUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionUsecase{
		sessions: sessions,
		issuer:   issuer,
		idGen:    idGen,
		clock:    clock,
		logger:   logger,
	}
}

// handlerがJSONにして返す
type StartSessionOutput struct {
	SessionID   string    `json:"session_id"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// StartSession は空のカートを持つセッションを作ってトークンを返す。
// セッションはトークンと同時に期限切れになる。
func (u *SessionUsecase) StartSession(ctx context.Context) (StartSessionOutput, error) {
	now := u.clock.Now()
	s := session.New(u.idGen.NewID(), now)

	tok, exp, err := u.issuer.Issue(s.ID, now)
	if err != nil {
		u.logger.Error("issue token failed", zap.String("session_id", s.ID), zap.Error(err))
		return StartSessionOutput{}, NewHTTPError(http.StatusInternalServerError, "token error")
	}
	s.ExpiresAt = exp

	if err := u.sessions.Create(ctx, s); err != nil {
		u.logger.Error("create session failed", zap.String("session_id", s.ID), zap.Error(err))
		return StartSessionOutput{}, NewHTTPError(http.StatusInternalServerError, "session error")
	}

	u.logger.Info("session started",
		zap.String("session_id", s.ID),
		zap.Time("expires_at", exp),
		u.activeSessions(ctx),
	)

	return StartSessionOutput{
		SessionID:   s.ID,
		AccessToken: tok,
		ExpiresAt:   exp,
	}, nil
}

// EndSession はセッションとカートを破棄する（無くてもOK）。
func (u *SessionUsecase) EndSession(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if err := u.sessions.Delete(ctx, sessionID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "session error")
	}

	u.logger.Info("session ended", zap.String("session_id", sessionID), u.activeSessions(ctx))
	return nil
}

// ログ用。数えられなければ -1
func (u *SessionUsecase) activeSessions(ctx context.Context) zap.Field {
	n, err := u.sessions.Count(ctx)
	if err != nil {
		n = -1
	}
	return zap.Int("active_sessions", n)
}

// sessionIDからセッションを取得（無ければ401）
func findSession(ctx context.Context, sessions repo.SessionRepository, sessionID string) (*session.Session, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	s, err := sessions.FindByID(ctx, sessionID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "session error")
	}
	return s, nil
}
