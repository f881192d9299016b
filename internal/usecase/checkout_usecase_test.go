package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"shoppa/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutUsecase_Preview_IsLive(t *testing.T) {
	ctx := context.Background()
	sessions, s := withSession(t, "s1")
	uc := usecase.NewCheckoutUsecase(sessions, &seqIDGen{prefix: "conf"}, fixedClock{now: testNow}, nil)

	_, _ = s.Cart.AddItem(p1)
	out, err := uc.Preview(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(999), out.Total)

	// カート画面での変更がそのまま見える
	_, _ = s.Cart.AddItem(p2)
	out, err = uc.Preview(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(2298), out.Total)
	assert.Equal(t, int64(2), out.ItemCount)
}

func TestCheckoutUsecase_Confirm_ClearsCart(t *testing.T) {
	ctx := context.Background()
	sessions, s := withSession(t, "s1")
	uc := usecase.NewCheckoutUsecase(sessions, &seqIDGen{prefix: "conf"}, fixedClock{now: testNow}, nil)

	_, _ = s.Cart.AddItemQuantity(p1, 2)
	_, _ = s.Cart.AddItem(p2)

	out, err := uc.Confirm(ctx, "s1")
	require.NoError(t, err)

	assert.Equal(t, "conf-1", out.ConfirmationID)
	assert.Equal(t, testNow, out.ConfirmedAt)
	assert.Equal(t, int64(3), out.ItemCount)
	assert.Equal(t, int64(999*2+1299), out.Total)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "p1", out.Items[0].ID)
	assert.Equal(t, int64(1998), out.Items[0].LineTotal)

	assert.Equal(t, 0, s.Cart.Len())
	assert.Equal(t, int64(0), s.Cart.ItemCount())
}

func TestCheckoutUsecase_Confirm_EmptyCart(t *testing.T) {
	ctx := context.Background()
	sessions, _ := withSession(t, "s1")
	ids := &seqIDGen{prefix: "conf"}
	uc := usecase.NewCheckoutUsecase(sessions, ids, fixedClock{now: testNow}, nil)

	_, err := uc.Confirm(ctx, "s1")
	assertHTTPError(t, err, http.StatusBadRequest, "cart is empty")
	assert.Equal(t, 0, ids.n)
}

func TestCheckoutUsecase_Confirm_Twice(t *testing.T) {
	ctx := context.Background()
	sessions, s := withSession(t, "s1")
	uc := usecase.NewCheckoutUsecase(sessions, &seqIDGen{prefix: "conf"}, fixedClock{now: testNow}, nil)
	_, _ = s.Cart.AddItem(p1)

	_, err := uc.Confirm(ctx, "s1")
	require.NoError(t, err)

	_, err = uc.Confirm(ctx, "s1")
	assertHTTPError(t, err, http.StatusBadRequest, "cart is empty")
}

func TestCheckoutUsecase_UnknownSession(t *testing.T) {
	uc := usecase.NewCheckoutUsecase(new(SessionRepoMock), &seqIDGen{}, fixedClock{now: testNow}, nil)

	_, err := uc.Confirm(context.Background(), "")
	assertUnauthorized(t, err)

	_, err = uc.Preview(context.Background(), "")
	assertUnauthorized(t, err)
}
