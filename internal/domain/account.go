package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInsufficientFunds is returned when a savings account would go negative
var ErrInsufficientFunds = errors.New("insufficient funds")

// Account is a balance that transactions are debited from.
type Account interface {
	Name() string
	Balance() decimal.Decimal
	ApplyTransaction(t Transaction) error
}

// CheckingAccount debits every transaction, allowing the balance to go negative.
type CheckingAccount struct {
	name    string
	balance decimal.Decimal
}

// NewCheckingAccount creates a checking account with an opening balance
func NewCheckingAccount(name string, initial decimal.Decimal) *CheckingAccount {
	return &CheckingAccount{name: name, balance: initial}
}

func (a *CheckingAccount) Name() string             { return a.name }
func (a *CheckingAccount) Balance() decimal.Decimal { return a.balance }

// ApplyTransaction debits the transaction amount
func (a *CheckingAccount) ApplyTransaction(t Transaction) error {
	a.balance = a.balance.Sub(t.Amount)
	return nil
}

// SavingsAccount refuses transactions that would overdraw it.
type SavingsAccount struct {
	name    string
	balance decimal.Decimal
}

// NewSavingsAccount creates a savings account with an opening balance
func NewSavingsAccount(name string, initial decimal.Decimal) *SavingsAccount {
	return &SavingsAccount{name: name, balance: initial}
}

func (a *SavingsAccount) Name() string             { return a.name }
func (a *SavingsAccount) Balance() decimal.Decimal { return a.balance }

// ApplyTransaction debits the transaction amount unless the balance would
// drop below zero, in which case the balance is left unchanged.
func (a *SavingsAccount) ApplyTransaction(t Transaction) error {
	next := a.balance.Sub(t.Amount)
	if next.IsNegative() {
		return fmt.Errorf("transaction %d of %s against balance %s: %w", t.ID, t.Amount, a.balance, ErrInsufficientFunds)
	}
	a.balance = next
	return nil
}
