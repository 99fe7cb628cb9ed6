// Package chat owns the conversation loop between the user, the model, and
// the tool dispatcher.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/moneymind-dev/moneymind/internal/dispatch"
)

const systemMessage = `You are MoneyMind, a polite and accurate finance assistant. You are capable of:
- Recording expenses (e.g. 'Record 50000 for food: lunch', 'I bought clothes for 100000', 'Paid 20000 for coffee').
- Recording income (e.g. 'Add 1000000 income from salary', 'I received 500000 from a freelance project').
- Checking the balance (e.g. 'What is my balance?').
- Generating transaction history reports (e.g. 'Show me food expenses this month', 'Report all transactions for 2024-05').
Always confirm actions. If unsure, say so politely. Be concise and helpful at all times.
Be flexible in interpreting user requests to map them to the appropriate tool, even if the phrasing is not exact. Prioritize using tools when intent is clear.
IMPORTANT: if a user's request contains multiple distinct expense or income items (e.g. 'bought coffee and clothes'), call the recording tool separately for EACH item. Do not process multiple items in a single tool call.
Politely say that you don't know if you are asked for something outside your capabilities as a finance assistant.`

// Completer produces one assistant message for a conversation state.
type Completer interface {
	Complete(ctx context.Context, messages []openai.ChatCompletionMessage, tools []openai.Tool) (openai.ChatCompletionMessage, error)
}

// Orchestrator drives the tool-call loop for each chat turn and keeps the
// user/assistant history for the session. Tool traffic is per-turn and is
// not retained in history.
type Orchestrator struct {
	llm        Completer
	dispatcher *dispatch.Dispatcher
	logger     zerolog.Logger
	history    []openai.ChatCompletionMessage
	maxRounds  int
}

// New creates an Orchestrator with an empty history.
func New(llm Completer, d *dispatch.Dispatcher, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{llm: llm, dispatcher: d, logger: logger, maxRounds: 4}
}

// Turn processes one user message and returns the assistant's reply.
func (o *Orchestrator) Turn(ctx context.Context, text string) (string, error) {
	logger := o.logger.With().Str("turn_id", uuid.NewString()).Logger()

	messages := make([]openai.ChatCompletionMessage, 0, len(o.history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemMessage,
	})
	messages = append(messages, o.history...)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: text,
	})

	tools := dispatch.Tools()

	for round := 0; round <= o.maxRounds; round++ {
		msg, err := o.llm.Complete(ctx, messages, tools)
		if err != nil {
			return "", fmt.Errorf("completing turn: %w", err)
		}

		if len(msg.ToolCalls) == 0 {
			o.history = append(o.history,
				openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: text},
				openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: msg.Content},
			)
			return msg.Content, nil
		}

		logger.Debug().
			Int("round", round).
			Int("tool_calls", len(msg.ToolCalls)).
			Msg("model requested tools")

		calls := make([]dispatch.Call, len(msg.ToolCalls))
		for i, tc := range msg.ToolCalls {
			calls[i] = dispatch.Call{
				ID:        tc.ID,
				Name:      tc.Function.Name,
				Arguments: json.RawMessage(tc.Function.Arguments),
			}
		}

		messages = append(messages, msg)
		for _, res := range o.dispatcher.Dispatch(calls) {
			content, err := json.Marshal(map[string]string{"result": res.Content})
			if err != nil {
				return "", fmt.Errorf("encoding tool result: %w", err)
			}
			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    string(content),
				ToolCallID: res.ID,
			})
		}
	}

	return "", errors.New("model did not produce a final reply within the tool-call limit")
}

// Greeting returns the capabilities statement shown at session start.
func Greeting() string {
	return "Hi! I'm MoneyMind, your finance assistant. I can record expenses, record income, " +
		"check your balance, and generate transaction reports. What can I do for you?"
}
