// Package dispatch translates structured tool calls issued by the LLM into
// invocations of the tracker operations and packages the results for the
// conversation loop.
package dispatch

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/moneymind-dev/moneymind/internal/tracker"
)

// Operation names recognized by the dispatcher.
const (
	OpRecordExpense = "record_expense"
	OpRecordIncome  = "record_income"
	OpCheckBalance  = "check_balance"
	OpGetReport     = "get_transaction_report"
)

const msgUnknownCommand = "Sorry, I don't recognize that command."

// Dispatcher routes tool calls to the tracker service. Faults never escape:
// every call yields a Result, with errors converted into polite messages.
type Dispatcher struct {
	tracker *tracker.Service
	logger  zerolog.Logger
}

// New creates a Dispatcher over the given tracker service.
func New(svc *tracker.Service, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{tracker: svc, logger: logger}
}

// Dispatch processes calls independently, in order. The result slice mirrors
// the input ordering and carries the same correlation ids; a failure in one
// call does not block the others.
func (d *Dispatcher) Dispatch(calls []Call) []Result {
	results := make([]Result, len(calls))
	for i, c := range calls {
		results[i] = Result{ID: c.ID, Content: d.dispatch(c)}
	}
	return results
}

func (d *Dispatcher) dispatch(c Call) string {
	d.logger.Debug().
		Str("tool", c.Name).
		Str("arguments", string(c.Arguments)).
		Msg("dispatching tool call")

	content, err := d.invoke(c)
	if err != nil {
		d.logger.Error().Err(err).Str("tool", c.Name).Msg("tool call failed")
		return fmt.Sprintf("Sorry, an error occurred: %v", err)
	}
	return content
}

func (d *Dispatcher) invoke(c Call) (string, error) {
	switch c.Name {
	case OpRecordExpense:
		args, err := decodeRecordArgs(c.Arguments)
		if err != nil {
			return "", err
		}
		return d.tracker.RecordExpense(args.amount, args.Category, args.Description)

	case OpRecordIncome:
		args, err := decodeRecordArgs(c.Arguments)
		if err != nil {
			return "", err
		}
		return d.tracker.RecordIncome(args.amount, args.Category, args.Description)

	case OpCheckBalance:
		return d.tracker.CheckBalance(), nil

	case OpGetReport:
		args, err := decodeReportArgs(c.Arguments)
		if err != nil {
			return "", err
		}
		return d.tracker.Report(tracker.Filter{
			Category: args.Category,
			Period:   args.Period,
			Type:     args.TransactionType,
		}), nil

	default:
		d.logger.Warn().Str("tool", c.Name).Msg("unknown tool requested")
		return msgUnknownCommand, nil
	}
}
