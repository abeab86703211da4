package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jbweber/homelab/recordbook/internal/codec"
	"github.com/jbweber/homelab/recordbook/internal/domain"
	"github.com/jbweber/homelab/recordbook/internal/repository"
)

// TransactionProcessor announces a transaction through a payment channel
type TransactionProcessor interface {
	Process(w io.Writer, t domain.Transaction)
}

// BankTransferProcessor pays by bank transfer.
type BankTransferProcessor struct{}

func (BankTransferProcessor) Process(w io.Writer, t domain.Transaction) {
	fmt.Fprintf(w, "Processing bank transfer of %s for category %s on %s.\n", t.Amount.StringFixed(2), t.Category, t.Date.Format(time.DateOnly))
}

// MobileMoneyProcessor pays from a mobile money wallet.
type MobileMoneyProcessor struct{}

func (MobileMoneyProcessor) Process(w io.Writer, t domain.Transaction) {
	fmt.Fprintf(w, "Processing mobile money transfer of %s for category %s on %s.\n", t.Amount.StringFixed(2), t.Category, t.Date.Format(time.DateOnly))
}

// CryptoWalletProcessor pays from a crypto wallet.
type CryptoWalletProcessor struct{}

func (CryptoWalletProcessor) Process(w io.Writer, t domain.Transaction) {
	fmt.Fprintf(w, "Processing crypto transaction of %s for category %s on %s.\n", t.Amount.StringFixed(2), t.Category, t.Date.Format(time.DateOnly))
}

// Payment pairs a transaction with the channel that processes it
type Payment struct {
	Transaction domain.Transaction
	Via         TransactionProcessor
}

// DefaultPayments returns the sample payments, all dated now.
func DefaultPayments(now time.Time) []Payment {
	return []Payment{
		{
			Transaction: domain.Transaction{ID: 1, Date: now, Amount: decimal.NewFromInt(150), Category: "Groceries"},
			Via:         BankTransferProcessor{},
		},
		{
			Transaction: domain.Transaction{ID: 2, Date: now, Amount: decimal.NewFromInt(200), Category: "Utilities"},
			Via:         MobileMoneyProcessor{},
		},
		{
			Transaction: domain.Transaction{ID: 3, Date: now, Amount: decimal.NewFromInt(300), Category: "Entertainment"},
			Via:         CryptoWalletProcessor{},
		},
	}
}

// DefaultSavingsBalance is the opening balance of the sample savings account
var DefaultSavingsBalance = decimal.NewFromInt(10000)

// Finance records payments and applies them to an account.
type Finance struct {
	Out    io.Writer
	Logger *log.Logger
	Now    func() time.Time

	// Account defaults to a savings account named "My Savings"
	Account domain.Account
	// Payments defaults to DefaultPayments
	Payments []Payment
	// TransactionLog, when set, receives every recorded transaction
	TransactionLog repository.LineStore
}

// Run processes every payment, reporting rejected ones and continuing. A
// failure to save the transaction log is reported the same way.
func (f *Finance) Run(ctx context.Context) error {
	out := output(f.Out)
	account := f.Account
	if account == nil {
		account = domain.NewSavingsAccount("My Savings", DefaultSavingsBalance)
	}
	payments := f.Payments
	if payments == nil {
		payments = DefaultPayments(clock(f.Now))
	}

	transactions := repository.NewMemoryRepository("transaction", domain.Transaction.Key,
		storeOptions[domain.Transaction](f.Logger, f.TransactionLog, codec.Transaction{}, repository.LoadStrict, nil)...)

	for _, p := range payments {
		if err := transactions.Insert(p.Transaction); err != nil {
			report(out, err)
			continue
		}
		p.Via.Process(out, p.Transaction)
	}

	for _, t := range transactions.FindAll() {
		if err := account.ApplyTransaction(t); err != nil {
			if errors.Is(err, domain.ErrInsufficientFunds) {
				fmt.Fprintln(out, "Insufficient funds for this transaction.")
				logger(f.Logger).Printf("rejected transaction: %v", err)
				continue
			}
			report(out, err)
			continue
		}
		fmt.Fprintf(out, "%s '%s' new balance: %s\n", accountKind(account), account.Name(), account.Balance().StringFixed(2))
	}

	if f.TransactionLog != nil && !saveAll(ctx, out, transactions.Save) {
		logger(f.Logger).Printf("transaction log was not saved")
	}

	fmt.Fprintln(out, "All transactions processed successfully.")
	return nil
}

func accountKind(a domain.Account) string {
	switch a.(type) {
	case *domain.SavingsAccount:
		return "SavingsAccount"
	case *domain.CheckingAccount:
		return "CheckingAccount"
	default:
		return "Account"
	}
}
