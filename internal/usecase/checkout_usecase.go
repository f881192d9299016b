package usecase

import (
	"context"
	"net/http"
	"time"

	repo "shoppa/internal/repository"

	"go.uber.org/zap"
)

// CheckoutUsecase は確認画面。決済はしない（確定＝カートを空にする）。
type CheckoutUsecase struct {
	sessions repo.SessionRepository
	idGen    IDGenerator
	clock    Clock
	logger   *zap.Logger
}

// DI
func NewCheckoutUsecase(
	sessions repo.SessionRepository,
	idGen IDGenerator,
	clock Clock,
	logger *zap.Logger,
) *CheckoutUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutUsecase{
		sessions: sessions,
		idGen:    idGen,
		clock:    clock,
		logger:   logger,
	}
}

// 確定結果
type CheckoutConfirmation struct {
	ConfirmationID string             `json:"confirmation_id"`
	Items          []CartItemResponse `json:"items"`
	ItemCount      int64              `json:"item_count"`
	Total          int64              `json:"total"`
	ConfirmedAt    time.Time          `json:"confirmed_at"`
}

// Preview はライブのカートをそのまま返す
func (u *CheckoutUsecase) Preview(ctx context.Context, sessionID string) (CartResponse, error) {
	s, err := findSession(ctx, u.sessions, sessionID)
	if err != nil {
		return CartResponse{}, err
	}

	return buildCartResponse(s.Cart.Snapshot()), nil
}

// Confirm は内容を確定してカートを空にする。空のカートは400。
func (u *CheckoutUsecase) Confirm(ctx context.Context, sessionID string) (CheckoutConfirmation, error) {
	s, err := findSession(ctx, u.sessions, sessionID)
	if err != nil {
		return CheckoutConfirmation{}, err
	}

	// 取り出しと削除は同じロックで行う
	snap := s.Cart.Drain()
	if snap.IsEmpty() {
		return CheckoutConfirmation{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}

	resp := buildCartResponse(snap)
	out := CheckoutConfirmation{
		ConfirmationID: u.idGen.NewID(),
		Items:          resp.Items,
		ItemCount:      resp.ItemCount,
		Total:          resp.Total,
		ConfirmedAt:    u.clock.Now(),
	}

	u.logger.Info("checkout confirmed",
		zap.String("session_id", s.ID),
		zap.String("confirmation_id", out.ConfirmationID),
		zap.Int64("item_count", out.ItemCount),
		zap.Int64("total", out.Total),
	)

	return out, nil
}
