package dispatch

import (
	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// Tools returns the OpenAI tool schemas for the four operations. The
// category enum is a suggestion for the model only; the ledger accepts any
// category string.
func Tools() []openai.Tool {
	return []openai.Tool{
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name: OpRecordExpense,
				Description: "Records an expense. Use when the user says 'buy', 'spent', 'record expense', 'paid', " +
					"or 'add X for Y' where Y is an expense category. If multiple distinct expenses are mentioned " +
					"in one request, call this tool separately for each expense.",
				Parameters: jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"amount":      {Type: jsonschema.Number, Description: "Amount spent."},
						"category":    {Type: jsonschema.String, Description: "Expense category (e.g. food, transport, clothes, entertainment, other)."},
						"description": {Type: jsonschema.String, Description: "Brief expense description."},
					},
					Required: []string{"amount", "category", "description"},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name: OpRecordIncome,
				Description: "Records new income. Use when the user says 'add income', 'received money', 'got paid', " +
					"or 'income from X'. If multiple distinct income items are mentioned in one request, call this " +
					"tool separately for each item.",
				Parameters: jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"amount":      {Type: jsonschema.Number, Description: "Amount of income."},
						"category":    {Type: jsonschema.String, Description: "Income category (e.g. salary, freelance, gift)."},
						"description": {Type: jsonschema.String, Description: "Brief income description."},
					},
					Required: []string{"amount", "category", "description"},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        OpCheckBalance,
				Description: "Checks the current money balance. Use when the user asks about 'balance' or 'money'.",
				Parameters: jsonschema.Definition{
					Type:       jsonschema.Object,
					Properties: map[string]jsonschema.Definition{},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name: OpGetReport,
				Description: "Generates a report of transactions (income and expense). Can be filtered by category " +
					"(optional), time period (optional: 'today', 'this week', 'this month', 'YYYY-MM', 'YYYY'), or " +
					"transaction type (optional: 'income' or 'expense'). With no filters it reports the full history.",
				Parameters: jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"category": {
							Type:        jsonschema.String,
							Description: "Report category (optional).",
							Enum: []string{
								"food", "transportation", "entertainment", "shopping", "bills",
								"education", "health", "other", "salary", "freelance", "gift",
							},
						},
						"period": {
							Type:        jsonschema.String,
							Description: "Report period (optional): 'today', 'this week', 'this month', 'YYYY-MM', or 'YYYY'.",
						},
						"transaction_type": {
							Type:        jsonschema.String,
							Description: "Type of transaction to report (optional).",
							Enum:        []string{"income", "expense"},
						},
					},
				},
			},
		},
	}
}
