package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/finvo/transferd/internal/domain"
	"github.com/finvo/transferd/internal/usecase"
	"github.com/finvo/transferd/internal/usecase/mocks"
)

func TestCurrencyNormalizerIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	rates := mocks.NewMockRateProvider(ctrl)
	// No EXPECT: a settlement-currency amount must not trigger a rate
	// lookup at all.

	n := usecase.NewCurrencyNormalizer(rates, "EUR")

	in := domain.MustParseMoney("EUR 12.3456789")
	out, err := n.Convert(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCurrencyNormalizerConverts(t *testing.T) {
	ctrl := gomock.NewController(t)
	rates := mocks.NewMockRateProvider(ctrl)
	rates.EXPECT().
		Rate(gomock.Any(), "USD", "EUR").
		Return(decimal.RequireFromString("0.92"), nil)

	n := usecase.NewCurrencyNormalizer(rates, "EUR")

	out, err := n.Convert(context.Background(), domain.MustParseMoney("USD 1.00"))
	require.NoError(t, err)
	assert.Equal(t, "EUR", out.Currency)
	assert.True(t, out.Amount.Equal(decimal.RequireFromString("0.92")), "got %s", out.Amount)
}

func TestCurrencyNormalizerKeepsPrecision(t *testing.T) {
	ctrl := gomock.NewController(t)
	rates := mocks.NewMockRateProvider(ctrl)
	rates.EXPECT().
		Rate(gomock.Any(), "GBP", "EUR").
		Return(decimal.RequireFromString("1.16665"), nil)

	n := usecase.NewCurrencyNormalizer(rates, "EUR")

	// 3.33 * 1.16665 = 3.8849445; no rounding here, that is the
	// storage layer's job.
	out, err := n.Convert(context.Background(), domain.MustParseMoney("GBP 3.33"))
	require.NoError(t, err)
	assert.True(t, out.Amount.Equal(decimal.RequireFromString("3.8849445")), "got %s", out.Amount)
}

func TestCurrencyNormalizerRateUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	rates := mocks.NewMockRateProvider(ctrl)
	rates.EXPECT().
		Rate(gomock.Any(), "USD", "EUR").
		Return(decimal.Decimal{}, errors.New("provider down"))

	n := usecase.NewCurrencyNormalizer(rates, "EUR")

	_, err := n.Convert(context.Background(), domain.MustParseMoney("USD 1.00"))
	assert.ErrorIs(t, err, domain.ErrRateUnavailable)
}
