package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneymind-dev/moneymind/internal/model"
)

// Filter selects transactions for a report. Empty fields impose no
// constraint; supplied criteria are combined with AND.
type Filter struct {
	Category string // case-insensitive category match
	Period   string // today | this week | this month | YYYY-MM | YYYY
	Type     string // income | expense
}

// Report renders a transaction report for the given filter. Transactions
// appear in insertion order, followed by income/expense/net totals. An empty
// result produces a single "no transactions found" sentence instead of an
// empty report body.
func (s *Service) Report(f Filter) string {
	inPeriod := s.periodPredicate(f.Period, s.now())

	var matched []model.Transaction
	for _, tx := range s.store.All() {
		if f.Type != "" && !strings.EqualFold(f.Type, string(tx.Kind)) {
			continue
		}
		if f.Category != "" && strings.ToLower(f.Category) != tx.Category {
			continue
		}
		if !inPeriod(tx) {
			continue
		}
		matched = append(matched, tx)
	}

	if len(matched) == 0 {
		return emptyReportMessage(f)
	}
	return s.renderReport(f, matched)
}

// periodPredicate classifies a period token into a transaction predicate.
// Unrecognized tokens impose no constraint; the leniency is deliberate (an
// LLM-supplied near-miss should not fail the whole report) but logged.
func (s *Service) periodPredicate(period string, now time.Time) func(model.Transaction) bool {
	p := strings.ToLower(period)
	today := now.Format("2006-01-02")

	switch {
	case p == "":
		return func(model.Transaction) bool { return true }
	case p == "today":
		return func(tx model.Transaction) bool { return tx.DateString() == today }
	case p == "this week":
		current := startOfWeek(now)
		return func(tx model.Transaction) bool { return startOfWeek(tx.Date).Equal(current) }
	case p == "this month":
		return func(tx model.Transaction) bool {
			return tx.Date.Month() == now.Month() && tx.Date.Year() == now.Year()
		}
	case len(p) == 7 && strings.Contains(p, "-"): // YYYY-MM
		return func(tx model.Transaction) bool { return strings.HasPrefix(tx.DateString(), p) }
	case len(p) == 4: // YYYY
		return func(tx model.Transaction) bool { return strings.HasPrefix(tx.DateString(), p) }
	default:
		s.logger.Warn().Str("period", period).Msg("unrecognized report period, ignoring filter")
		return func(model.Transaction) bool { return true }
	}
}

// startOfWeek returns the date of the Monday of t's week (ISO weeks).
func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0 ... Sunday = 6
	return day.AddDate(0, 0, -offset)
}

func (s *Service) renderReport(f Filter, txs []model.Transaction) string {
	category := f.Category
	if category == "" {
		category = "All Categories"
	}
	period := f.Period
	if period == "" {
		period = "All Time"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Transaction Report for %s in Period %s:", category, period)

	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	for _, tx := range txs {
		fmt.Fprintf(&b, "\n- %s: %s %s (%s) - %s",
			tx.DateString(), title(string(tx.Kind)), s.fmt.Amount(tx.Amount), tx.Category, tx.Description)

		switch tx.Kind {
		case model.KindIncome:
			totalIncome = totalIncome.Add(tx.Amount)
		case model.KindExpense:
			totalExpense = totalExpense.Add(tx.Amount)
		}
	}

	b.WriteString("\n--- Summary ---")
	fmt.Fprintf(&b, "\nTotal Income: %s", s.fmt.Amount(totalIncome))
	fmt.Fprintf(&b, "\nTotal Expense: %s", s.fmt.Amount(totalExpense))
	fmt.Fprintf(&b, "\nNet Change: %s", s.fmt.Amount(totalIncome.Sub(totalExpense)))

	return b.String()
}

// emptyReportMessage names the scope (type, category, or generic) and the
// period when no transactions match.
func emptyReportMessage(f Filter) string {
	scope := "transactions"
	switch {
	case f.Type != "":
		scope = strings.ToLower(f.Type) + "s"
	case f.Category != "":
		scope = strings.ToLower(f.Category) + " transactions"
	}

	if f.Period != "" {
		return fmt.Sprintf("No %s found during the period '%s'.", scope, f.Period)
	}
	return fmt.Sprintf("No %s found.", scope)
}
