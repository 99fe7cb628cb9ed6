package tracker

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneymind-dev/moneymind/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReport_EmptyLedger(t *testing.T) {
	svc, _ := newTestService(t, testNow)
	assert.Equal(t, "No transactions found.", svc.Report(Filter{}))
}

func TestReport_EmptyScopeMessages(t *testing.T) {
	svc, _ := newTestService(t, testNow)

	tests := []struct {
		name     string
		filter   Filter
		expected string
	}{
		{"type scope", Filter{Type: "expense"}, "No expenses found."},
		{"category scope", Filter{Category: "food"}, "No food transactions found."},
		{"type wins over category", Filter{Type: "income", Category: "food"}, "No incomes found."},
		{"period suffix", Filter{Type: "expense", Period: "2023"}, "No expenses found during the period '2023'."},
		{"generic with period", Filter{Period: "2023-01"}, "No transactions found during the period '2023-01'."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, svc.Report(tc.filter))
		})
	}
}

func TestReport_NoFiltersReturnsEntireLedger(t *testing.T) {
	svc, store := newTestService(t, testNow)
	seed(store, model.KindIncome, "1000000", "salary", "may pay", day(2024, 5, 1))
	seed(store, model.KindExpense, "200000", "food", "groceries", day(2024, 5, 2))
	seed(store, model.KindExpense, "30000", "transport", "fuel", day(2023, 12, 24))

	out := svc.Report(Filter{})

	assert.True(t, strings.HasPrefix(out, "Transaction Report for All Categories in Period All Time:"), out)
	assert.Contains(t, out, "- 2024-05-01: Income Rp 1,000,000 (salary) - may pay")
	assert.Contains(t, out, "- 2024-05-02: Expense Rp 200,000 (food) - groceries")
	assert.Contains(t, out, "- 2023-12-24: Expense Rp 30,000 (transport) - fuel")
}

func TestReport_MonthPrefix(t *testing.T) {
	svc, store := newTestService(t, testNow)
	seed(store, model.KindIncome, "1000000", "salary", "may pay", day(2024, 5, 1))
	seed(store, model.KindExpense, "200000", "food", "groceries", day(2024, 5, 20))
	seed(store, model.KindExpense, "99000", "food", "out of range", day(2024, 6, 3))

	out := svc.Report(Filter{Period: "2024-05"})

	expected := strings.Join([]string{
		"Transaction Report for All Categories in Period 2024-05:",
		"- 2024-05-01: Income Rp 1,000,000 (salary) - may pay",
		"- 2024-05-20: Expense Rp 200,000 (food) - groceries",
		"--- Summary ---",
		"Total Income: Rp 1,000,000",
		"Total Expense: Rp 200,000",
		"Net Change: Rp 800,000",
	}, "\n")
	assert.Equal(t, expected, out)
}

func TestReport_YearPrefix(t *testing.T) {
	svc, store := newTestService(t, testNow)
	seed(store, model.KindExpense, "100", "food", "", day(2023, 2, 10))
	seed(store, model.KindExpense, "200", "food", "", day(2024, 2, 10))

	out := svc.Report(Filter{Period: "2023"})

	assert.Contains(t, out, "2023-02-10")
	assert.NotContains(t, out, "2024-02-10")
}

func TestReport_Today(t *testing.T) {
	svc, store := newTestService(t, testNow)
	seed(store, model.KindExpense, "100", "food", "today", day(2024, 5, 15))
	seed(store, model.KindExpense, "200", "food", "yesterday", day(2024, 5, 14))

	out := svc.Report(Filter{Period: "today"})

	assert.Contains(t, out, "2024-05-15")
	assert.NotContains(t, out, "2024-05-14")
}

func TestReport_ThisWeek(t *testing.T) {
	svc, store := newTestService(t, testNow)
	seed(store, model.KindExpense, "100", "food", "monday", day(2024, 5, 13))
	seed(store, model.KindExpense, "200", "food", "sunday this week", day(2024, 5, 19))
	seed(store, model.KindExpense, "300", "food", "sunday last week", day(2024, 5, 12))
	seed(store, model.KindExpense, "400", "food", "next monday", day(2024, 5, 20))

	out := svc.Report(Filter{Period: "this week"})

	assert.Contains(t, out, "monday")
	assert.Contains(t, out, "sunday this week")
	assert.NotContains(t, out, "sunday last week")
	assert.NotContains(t, out, "next monday")
}

func TestReport_ThisMonth(t *testing.T) {
	svc, store := newTestService(t, testNow)
	seed(store, model.KindExpense, "100", "food", "in month", day(2024, 5, 2))
	seed(store, model.KindExpense, "200", "food", "prior month", day(2024, 4, 30))
	seed(store, model.KindExpense, "300", "food", "prior year", day(2023, 5, 10))

	out := svc.Report(Filter{Period: "this month"})

	assert.Contains(t, out, "in month")
	assert.NotContains(t, out, "prior month")
	assert.NotContains(t, out, "prior year")
}

func TestReport_CategoryCaseInsensitive(t *testing.T) {
	svc, store := newTestService(t, testNow)
	seed(store, model.KindExpense, "100", "Food", "", day(2024, 5, 1))
	seed(store, model.KindExpense, "200", "transport", "", day(2024, 5, 1))

	out := svc.Report(Filter{Category: "FOOD"})

	assert.Contains(t, out, "(food)")
	assert.NotContains(t, out, "transport")
}

func TestReport_TypeCaseInsensitive(t *testing.T) {
	svc, store := newTestService(t, testNow)
	seed(store, model.KindIncome, "100", "salary", "", day(2024, 5, 1))
	seed(store, model.KindExpense, "200", "food", "", day(2024, 5, 1))

	out := svc.Report(Filter{Type: "Income"})

	assert.Contains(t, out, "Income Rp 100")
	assert.NotContains(t, out, "Expense Rp 200")
	assert.NotContains(t, out, "(food)")
}

func TestReport_Conjunctive(t *testing.T) {
	svc, store := newTestService(t, testNow)
	seed(store, model.KindExpense, "100", "food", "matches all", day(2024, 5, 1))
	seed(store, model.KindExpense, "200", "food", "wrong period", day(2024, 6, 1))
	seed(store, model.KindExpense, "300", "transport", "wrong category", day(2024, 5, 2))
	seed(store, model.KindIncome, "400", "food", "wrong type", day(2024, 5, 3))

	out := svc.Report(Filter{Type: "expense", Category: "food", Period: "2024-05"})

	require.Contains(t, out, "matches all")
	assert.NotContains(t, out, "wrong period")
	assert.NotContains(t, out, "wrong category")
	assert.NotContains(t, out, "wrong type")
	assert.Contains(t, out, "Total Expense: Rp 100")
}

func TestReport_UnrecognizedPeriodFailsOpen(t *testing.T) {
	svc, store := newTestService(t, testNow)
	seed(store, model.KindExpense, "100", "food", "", day(2024, 5, 1))
	seed(store, model.KindExpense, "200", "food", "", day(2021, 1, 1))

	out := svc.Report(Filter{Period: "last year"})

	assert.Contains(t, out, "in Period last year:")
	assert.Contains(t, out, "2024-05-01")
	assert.Contains(t, out, "2021-01-01", "unrecognized periods impose no constraint")
}

func TestReport_Idempotent(t *testing.T) {
	svc, store := newTestService(t, testNow)
	seed(store, model.KindIncome, "500", "salary", "", day(2024, 5, 1))

	f := Filter{Type: "income"}
	assert.Equal(t, svc.Report(f), svc.Report(f))
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		in       time.Time
		expected time.Time
	}{
		{day(2024, 5, 13), day(2024, 5, 13)}, // Monday maps to itself
		{day(2024, 5, 15), day(2024, 5, 13)}, // Wednesday
		{day(2024, 5, 19), day(2024, 5, 13)}, // Sunday belongs to the preceding Monday
		{day(2024, 5, 20), day(2024, 5, 20)}, // next Monday
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, startOfWeek(tc.in), "input: %s", tc.in.Format("2006-01-02"))
	}
}
