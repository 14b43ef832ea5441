package inventory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CaseForge_Go/internal/domain"
)

func TestWallet_TryDeduct(t *testing.T) {
	tests := []struct {
		name        string
		balance     int
		amount      int
		wantErr     error
		wantBalance int
	}{
		{name: "exact amount", balance: 100, amount: 100, wantBalance: 0},
		{name: "partial", balance: 100, amount: 30, wantBalance: 70},
		{name: "zero", balance: 10, amount: 0, wantBalance: 10},
		{name: "insufficient leaves balance", balance: 10, amount: 11, wantErr: domain.ErrInsufficientFunds, wantBalance: 10},
		{name: "negative rejected", balance: 10, amount: -1, wantErr: domain.ErrInvalidInput, wantBalance: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWallet(tt.balance)
			err := w.TryDeduct(tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantBalance, w.Balance())
		})
	}
}

func TestWallet_Credit(t *testing.T) {
	w := NewWallet(5)
	require.NoError(t, w.Credit(10))
	assert.Equal(t, 15, w.Balance())

	assert.ErrorIs(t, w.Credit(0), domain.ErrInvalidInput)
	assert.ErrorIs(t, w.Credit(-3), domain.ErrInvalidInput)
	assert.Equal(t, 15, w.Balance())
}

func TestWallet_CreditOverflowLeavesBalance(t *testing.T) {
	tests := []struct {
		name    string
		balance int
		amount  int
		wantErr bool
	}{
		{name: "max int onto funded wallet", balance: 500, amount: math.MaxInt, wantErr: true},
		{name: "one past the limit", balance: math.MaxInt - 10, amount: 11, wantErr: true},
		{name: "exactly to the limit", balance: math.MaxInt - 10, amount: 10},
		{name: "max int onto empty wallet", balance: 0, amount: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWallet(tt.balance)
			err := w.Credit(tt.amount)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				assert.Equal(t, tt.balance, w.Balance())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.balance+tt.amount, w.Balance())
			assert.GreaterOrEqual(t, w.Balance(), 0)
		})
	}
}

func TestNewWallet_ClampsNegative(t *testing.T) {
	assert.Equal(t, 0, NewWallet(-50).Balance())
}
