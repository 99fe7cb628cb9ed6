package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind distinguishes money coming in from money going out.
type Kind string

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

// Transaction is a single recorded ledger entry. Immutable once appended.
type Transaction struct {
	ID          string // ULID assigned by the store
	Kind        Kind
	Amount      decimal.Decimal // always > 0; Kind carries the sign
	Category    string          // lower-cased at construction
	Description string
	Date        time.Time // date only, midnight UTC
}

// NewTransaction builds a transaction for the given calendar day.
// The category is normalized to lower case and the time-of-day is dropped.
func NewTransaction(kind Kind, amount decimal.Decimal, category, description string, day time.Time) Transaction {
	return Transaction{
		Kind:        kind,
		Amount:      amount,
		Category:    strings.ToLower(category),
		Description: description,
		Date:        time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
	}
}

// DateString renders the transaction date as YYYY-MM-DD.
func (t Transaction) DateString() string {
	return t.Date.Format("2006-01-02")
}
