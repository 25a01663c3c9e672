// Package bank splits the player's money into a reserved part that
// automation must not touch and the spendable rest.
package bank

import (
	"context"
	"errors"
	"fmt"
)

// ErrNegativeAmount is returned by Reserve for amounts below zero.
var ErrNegativeAmount = errors.New("bank: negative amount")

// Wallet reports the money the player holds.
type Wallet interface {
	Money(ctx context.Context) (float64, error)
}

// Vault persists the reserved amount.
type Vault interface {
	MoneyReserve() (float64, error)
	SaveMoneyReserve(amount float64) error
}

// Balance is a point-in-time view of the player's money.
type Balance struct {
	Available float64
	Reserved  float64
}

// Spendable is what remains after the reserve, never below zero.
func (b Balance) Spendable() float64 {
	return max(b.Available-b.Reserved, 0)
}

// Check reads the current Balance.
func Check(ctx context.Context, w Wallet, v Vault) (Balance, error) {
	available, err := w.Money(ctx)
	if err != nil {
		return Balance{}, fmt.Errorf("bank: money: %w", err)
	}
	reserved, err := v.MoneyReserve()
	if err != nil {
		return Balance{}, fmt.Errorf("bank: reserve: %w", err)
	}
	return Balance{Available: available, Reserved: reserved}, nil
}

// Reserve adds amount to the saved reserve and returns the new total. An
// amount of zero resets the reserve.
func Reserve(v Vault, amount float64) (float64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: %v", ErrNegativeAmount, amount)
	}
	total := 0.0
	if amount > 0 {
		cur, err := v.MoneyReserve()
		if err != nil {
			return 0, fmt.Errorf("bank: reserve: %w", err)
		}
		total = cur + amount
	}
	if err := v.SaveMoneyReserve(total); err != nil {
		return 0, fmt.Errorf("bank: reserve: %w", err)
	}
	return total, nil
}
