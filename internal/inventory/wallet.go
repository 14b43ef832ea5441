package inventory

import (
	"fmt"
	"math"

	"github.com/osse101/CaseForge_Go/internal/domain"
)

// Wallet is a non-negative integer balance.
type Wallet struct {
	balance int
}

// NewWallet creates a wallet with an opening balance. Negative balances are clamped to zero.
func NewWallet(balance int) *Wallet {
	if balance < 0 {
		balance = 0
	}
	return &Wallet{balance: balance}
}

// Balance returns the current balance.
func (w *Wallet) Balance() int {
	return w.balance
}

// Credit adds a positive amount. A credit that would overflow the balance is
// rejected and leaves the wallet unchanged.
func (w *Wallet) Credit(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: credit amount must be positive (got %d)", domain.ErrInvalidInput, amount)
	}
	if amount > math.MaxInt-w.balance {
		return fmt.Errorf("%w: credit of %d overflows balance %d", domain.ErrInvalidInput, amount, w.balance)
	}
	w.balance += amount
	return nil
}

// TryDeduct removes the full amount or nothing.
func (w *Wallet) TryDeduct(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: deduct amount must not be negative (got %d)", domain.ErrInvalidInput, amount)
	}
	if amount > w.balance {
		return fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, amount, w.balance)
	}
	w.balance -= amount
	return nil
}
