package dispatch

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Call is one structured tool call request: an operation name, a JSON
// argument payload, and a correlation id supplied by the caller.
type Call struct {
	ID        string
	Name      string
	Arguments json.RawMessage
}

// Result pairs a call's correlation id with the operation output.
type Result struct {
	ID      string
	Content string
}

// recordArgs is the argument schema shared by record_expense and
// record_income. Amount is decoded loosely and coerced afterwards.
type recordArgs struct {
	Amount      any    `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`

	amount decimal.Decimal
}

// reportArgs is the argument schema for get_transaction_report.
// All fields are optional.
type reportArgs struct {
	Category        string `json:"category"`
	Period          string `json:"period"`
	TransactionType string `json:"transaction_type"`
}

func decodeRecordArgs(raw json.RawMessage) (recordArgs, error) {
	var args recordArgs
	if err := json.Unmarshal(orEmptyObject(raw), &args); err != nil {
		return recordArgs{}, fmt.Errorf("decoding arguments: %w", err)
	}

	amount, err := coerceAmount(args.Amount)
	if err != nil {
		return recordArgs{}, fmt.Errorf("invalid amount: %w", err)
	}
	args.amount = amount

	return args, nil
}

func decodeReportArgs(raw json.RawMessage) (reportArgs, error) {
	var args reportArgs
	if err := json.Unmarshal(orEmptyObject(raw), &args); err != nil {
		return reportArgs{}, fmt.Errorf("decoding arguments: %w", err)
	}
	return args, nil
}

// coerceAmount accepts JSON numbers and numeric strings; the model does not
// quote amounts consistently.
func coerceAmount(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), nil
	case string:
		return decimal.NewFromString(n)
	case nil:
		return decimal.Zero, nil
	default:
		return decimal.Zero, fmt.Errorf("cannot convert %T to a number", v)
	}
}

// orEmptyObject treats a missing payload as {} so argument-free calls decode.
func orEmptyObject(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("{}")
	}
	return raw
}
