package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finvo/transferd/internal/domain"
)

var supported = map[string]bool{"EUR": true, "USD": true, "GBP": true}

func TestTransferIntentValidate(t *testing.T) {
	tests := []struct {
		name    string
		intent  domain.TransferIntent
		wantErr error
	}{
		{
			name: "valid intent",
			intent: domain.TransferIntent{
				FromAccountID: "acc-1",
				ToAccountID:   "acc-2",
				Amount:        domain.MustParseMoney("EUR 1.00"),
			},
		},
		{
			name: "missing from account",
			intent: domain.TransferIntent{
				ToAccountID: "acc-2",
				Amount:      domain.MustParseMoney("EUR 1.00"),
			},
			wantErr: domain.ErrMissingField,
		},
		{
			name: "missing to account",
			intent: domain.TransferIntent{
				FromAccountID: "acc-1",
				Amount:        domain.MustParseMoney("EUR 1.00"),
			},
			wantErr: domain.ErrMissingField,
		},
		{
			name: "missing amount",
			intent: domain.TransferIntent{
				FromAccountID: "acc-1",
				ToAccountID:   "acc-2",
			},
			wantErr: domain.ErrMissingField,
		},
		{
			name: "zero amount",
			intent: domain.TransferIntent{
				FromAccountID: "acc-1",
				ToAccountID:   "acc-2",
				Amount:        domain.MustParseMoney("EUR 0"),
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "negative amount",
			intent: domain.TransferIntent{
				FromAccountID: "acc-1",
				ToAccountID:   "acc-2",
				Amount:        domain.MustParseMoney("EUR -3"),
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "unsupported currency",
			intent: domain.TransferIntent{
				FromAccountID: "acc-1",
				ToAccountID:   "acc-2",
				Amount:        domain.MustParseMoney("XXX 1.00"),
			},
			wantErr: domain.ErrUnsupportedCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.intent.Validate(supported)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
