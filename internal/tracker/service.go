// Package tracker implements the finance operations exposed to the
// assistant: recording expenses and income, checking the balance, and
// generating filtered transaction reports.
package tracker

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/moneymind-dev/moneymind/internal/ledger"
	"github.com/moneymind-dev/moneymind/internal/model"
)

// Service provides the transaction operations over a ledger store. Each
// operation returns a human-readable summary because the caller is an LLM
// consuming natural language, not raw data.
type Service struct {
	store  *ledger.Store
	fmt    Formatter
	logger zerolog.Logger
	now    func() time.Time // overridable in tests
}

// NewService creates a Service over the given store. Amounts in output
// strings are prefixed with currencyPrefix.
func NewService(store *ledger.Store, currencyPrefix string, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		fmt:    Formatter{Prefix: currencyPrefix},
		logger: logger,
		now:    time.Now,
	}
}

// RecordExpense appends an expense dated today and returns a confirmation.
func (s *Service) RecordExpense(amount decimal.Decimal, category, description string) (string, error) {
	tx, err := s.record(model.KindExpense, amount, category, description)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("An expense of %s for %s (%s) on %s has been recorded.",
		s.fmt.Amount(tx.Amount), tx.Category, tx.Description, tx.DateString()), nil
}

// RecordIncome appends an income entry dated today and returns a confirmation.
func (s *Service) RecordIncome(amount decimal.Decimal, category, description string) (string, error) {
	tx, err := s.record(model.KindIncome, amount, category, description)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Income of %s from %s (%s) on %s has been recorded.",
		s.fmt.Amount(tx.Amount), tx.Category, tx.Description, tx.DateString()), nil
}

func (s *Service) record(kind model.Kind, amount decimal.Decimal, category, description string) (model.Transaction, error) {
	if !amount.IsPositive() {
		return model.Transaction{}, model.ErrNonPositiveAmount
	}

	tx := s.store.Append(model.NewTransaction(kind, amount, category, description, s.now()))

	s.logger.Debug().
		Str("id", tx.ID).
		Str("kind", string(tx.Kind)).
		Str("category", tx.Category).
		Str("amount", tx.Amount.String()).
		Msg("transaction recorded")

	return tx, nil
}

// CheckBalance returns the formatted balance: total income minus total
// expense over the whole ledger. An empty ledger yields a zero balance.
func (s *Service) CheckBalance() string {
	balance := decimal.Zero
	for _, tx := range s.store.All() {
		switch tx.Kind {
		case model.KindIncome:
			balance = balance.Add(tx.Amount)
		case model.KindExpense:
			balance = balance.Sub(tx.Amount)
		}
	}

	s.logger.Debug().Str("balance", balance.String()).Msg("balance calculated")

	return fmt.Sprintf("Your current balance is %s.", s.fmt.Amount(balance))
}
