package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"shoppa/internal/domain/cart"
	"shoppa/internal/domain/model"
	repo "shoppa/internal/repository"

	"go.uber.org/zap"
)

// CartUsecase は /cart（カート画面）の業務ロジックです。
// カートはセッション経由でのみ触る。価格と表示項目は必ずカタログから取る。
type CartUsecase struct {
	sessions    repo.SessionRepository
	productRepo repo.ProductRepository
	logger      *zap.Logger
}

func NewCartUsecase(
	sessions repo.SessionRepository,
	productRepo repo.ProductRepository,
	logger *zap.Logger,
) *CartUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartUsecase{
		sessions:    sessions,
		productRepo: productRepo,
		logger:      logger,
	}
}

// CartItemResponse はカートの1明細。
// price は追加時点の価格を返します。
type CartItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Price       int64  `json:"price"`
	Quantity    int64  `json:"quantity"`
	LineTotal   int64  `json:"line_total"`
}

type CartResponse struct {
	Items     []CartItemResponse `json:"items"`
	ItemCount int64              `json:"item_count"`
	Total     int64              `json:"total"`
}

// POST /cart
type AddCartInput struct {
	ProductID string
	Quantity  int64 // 0は1扱い、上限は model.MaxQuantity
}

// PATCH /cart/{id}
type AdjustQuantityInput struct {
	Delta int64
}

// GetCart は現在のカートを返す。
func (u *CartUsecase) GetCart(ctx context.Context, sessionID string) (CartResponse, error) {
	s, err := findSession(ctx, u.sessions, sessionID)
	if err != nil {
		return CartResponse{}, err
	}

	return buildCartResponse(s.Cart.Snapshot()), nil
}

// AddToCart はカートに追加（同一商品は数量加算）。
func (u *CartUsecase) AddToCart(ctx context.Context, sessionID string, in AddCartInput) (CartResponse, error) {
	s, err := findSession(ctx, u.sessions, sessionID)
	if err != nil {
		return CartResponse{}, err
	}
	if strings.TrimSpace(in.ProductID) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	qty := in.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 1 || qty > model.MaxQuantity {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	// 商品チェック
	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
	}

	if _, err := s.Cart.AddItemQuantity(p, qty); err != nil {
		return CartResponse{}, cartError(err)
	}

	u.logger.Debug("cart item added",
		zap.String("session_id", s.ID),
		zap.String("product_id", p.ID),
		zap.Int64("quantity", qty),
	)

	return buildCartResponse(s.Cart.Snapshot()), nil
}

// 数量を±deltaする。0以下になった明細は削除。
func (u *CartUsecase) AdjustQuantity(ctx context.Context, sessionID string, productID string, in AdjustQuantityInput) (CartResponse, error) {
	s, err := findSession(ctx, u.sessions, sessionID)
	if err != nil {
		return CartResponse{}, err
	}
	if strings.TrimSpace(productID) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.Delta == 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid delta")
	}

	_, removed, err := s.Cart.AdjustQuantity(productID, in.Delta)
	if err != nil {
		return CartResponse{}, cartError(err)
	}

	u.logger.Debug("cart quantity adjusted",
		zap.String("session_id", s.ID),
		zap.String("product_id", productID),
		zap.Int64("delta", in.Delta),
		zap.Bool("removed", removed),
	)

	return buildCartResponse(s.Cart.Snapshot()), nil
}

// 明細削除（無くても200）
func (u *CartUsecase) RemoveItem(ctx context.Context, sessionID string, productID string) (CartResponse, error) {
	s, err := findSession(ctx, u.sessions, sessionID)
	if err != nil {
		return CartResponse{}, err
	}
	if strings.TrimSpace(productID) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	s.Cart.RemoveItem(productID)

	return buildCartResponse(s.Cart.Snapshot()), nil
}

// 全明細削除
func (u *CartUsecase) ClearCart(ctx context.Context, sessionID string) (CartResponse, error) {
	s, err := findSession(ctx, u.sessions, sessionID)
	if err != nil {
		return CartResponse{}, err
	}

	s.Cart.Clear()

	return buildCartResponse(s.Cart.Snapshot()), nil
}

// cartのエラーをHTTPに寄せる
func cartError(err error) error {
	switch {
	case errors.Is(err, cart.ErrInvalidQuantity):
		return NewHTTPError(http.StatusBadRequest, "invalid quantity")
	case errors.Is(err, cart.ErrInvalidItem):
		return NewHTTPError(http.StatusBadRequest, "invalid product")
	case errors.Is(err, cart.ErrCartFull):
		return NewHTTPError(http.StatusBadRequest, "cart is full")
	case errors.Is(err, cart.ErrNotInCart):
		return NewHTTPError(http.StatusNotFound, "not found")
	default:
		return NewHTTPError(http.StatusInternalServerError, "cart error")
	}
}

// スナップショットからCartResponseを作る。
func buildCartResponse(s cart.Snapshot) CartResponse {
	items := make([]CartItemResponse, 0, len(s.Entries))
	for _, e := range s.Entries {
		items = append(items, CartItemResponse{
			ID:          e.ID,
			Name:        e.Name,
			Description: e.Description,
			Image:       e.Image,
			Price:       e.Price,
			Quantity:    e.Quantity,
			LineTotal:   e.LineTotal(),
		})
	}

	return CartResponse{
		Items:     items,
		ItemCount: s.ItemCount,
		Total:     s.GrandTotal,
	}
}
