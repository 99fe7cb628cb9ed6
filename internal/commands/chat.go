package commands

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moneymind-dev/moneymind/internal/chat"
	"github.com/moneymind-dev/moneymind/internal/config"
	"github.com/moneymind-dev/moneymind/internal/dispatch"
	"github.com/moneymind-dev/moneymind/internal/ledger"
	"github.com/moneymind-dev/moneymind/internal/llm"
	"github.com/moneymind-dev/moneymind/internal/logging"
	"github.com/moneymind-dev/moneymind/internal/tracker"
)

func newChatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive finance-tracking chat session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChat(cmd)
		},
	}
}

func runChat(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	// The ledger lives only for this session; nothing is persisted.
	store := ledger.NewStore()
	svc := tracker.NewService(store, cfg.Currency, logger)
	dispatcher := dispatch.New(svc, logger)
	client := llm.New(llm.Config{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.Model,
	}, logger)
	orch := chat.New(client, dispatcher, logger)

	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s\n\n", chat.Greeting())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "you> ")
		if !scanner.Scan() {
			break
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "exit" || text == "quit" {
			break
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.TurnTimeout)
		reply, err := orch.Turn(ctx, text)
		cancel()
		if err != nil {
			logger.Error().Err(err).Msg("chat turn failed")
			fmt.Fprintln(out, "moneymind> Sorry, something went wrong. Please try again.")
			continue
		}

		fmt.Fprintf(out, "moneymind> %s\n\n", reply)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
