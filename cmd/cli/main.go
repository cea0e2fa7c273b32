// Command cli parses quick-entry lines from stdin and prints what each line
// would become, without touching calendars or stores. Useful for trying out
// phrasings and for debugging the parse pipeline.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"quickentry/config"
	"quickentry/internal/entry"
	"quickentry/internal/extract"
	"quickentry/internal/intent"
	"quickentry/internal/model"
	"quickentry/internal/normalize"
	"quickentry/pkg/llm"
	"quickentry/pkg/log"
)

func main() {
	root := &cobra.Command{
		Use:   "quickentry",
		Short: "Natural-language quick entry parser",
	}
	root.AddCommand(parseCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseCmd() *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Read lines from stdin and print their parse results",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger := log.Init(log.ZapConfig{
				Level:    "warn",
				Mode:     cfg.Logger.Mode,
				Encoding: cfg.Logger.Encoding,
			})

			var intentModel intent.Model
			if !offline {
				intentModel = buildModel(cmd.Context(), cfg, logger)
			}
			registry := intent.NewRegistry(intent.RegistryConfig{BodyWeightKg: cfg.Profile.BodyWeightKg})

			return repl(cmd.Context(), cmd.InOrStdin(), intentModel, registry)
		},
	}
	cmd.Flags().BoolVar(&offline, "offline", false, "skip the intent model; only arithmetic lines parse")
	return cmd
}

func repl(ctx context.Context, in io.Reader, m intent.Model, registry *intent.Registry) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		slots, errMsg := parseLine(ctx, text, m, registry)
		if errMsg != "" {
			fmt.Printf("  ! %s\n", errMsg)
			continue
		}

		now := time.Now()
		fmt.Printf("  = %s\n", entry.Summary(slots, text, now))
		for _, s := range slots {
			mark := "ok"
			if !s.Valid {
				mark = "invalid: " + s.Message
			}
			fmt.Printf("    %-16s %-20s [%s, %s]\n", s.Field, s.Value, s.Source, mark)
		}
	}
	return scanner.Err()
}

// parseLine mirrors the service's parse order: normalize, arithmetic
// shortcut, then the intent model.
func parseLine(ctx context.Context, text string, m intent.Model, registry *intent.Registry) ([]model.SlotPrediction, string) {
	normalized := normalize.Normalize(text, time.Now())

	if res, ok := extract.Arithmetic(normalized, nil); ok {
		return arithmeticSlots(res, text), ""
	}

	if m == nil {
		return nil, "no intent model (offline) and not an arithmetic line"
	}

	pred, err := m.Predict(ctx, normalized)
	if err != nil {
		return nil, err.Error()
	}
	slots, err := registry.Assemble(pred, normalized, "")
	if err != nil {
		return nil, err.Error()
	}
	return slots, ""
}

func arithmeticSlots(res extract.ArithmeticResult, text string) []model.SlotPrediction {
	slots := []model.SlotPrediction{{
		Field:  model.SlotIntent,
		Value:  string(res.Intent),
		Valid:  true,
		Source: model.SourcePattern,
	}}
	if res.Intent == model.IntentMeal {
		return append(slots, model.SlotPrediction{
			Field:  model.SlotCalories,
			Value:  fmt.Sprintf("%d", res.Calories),
			Valid:  res.Calories != 0,
			Source: model.SourcePattern,
		})
	}
	slots = append(slots, model.SlotPrediction{
		Field:    model.SlotAmount,
		Value:    text,
		RawValue: fmt.Sprintf("%g", res.Amount),
		Valid:    res.Amount != 0,
		Source:   model.SourcePattern,
	})
	if res.Currency != "" {
		slots = append(slots, model.SlotPrediction{
			Field:  model.SlotCurrency,
			Value:  res.Currency,
			Valid:  true,
			Source: model.SourcePattern,
		})
	}
	return slots
}

func buildModel(ctx context.Context, cfg *config.Config, logger log.Logger) intent.Model {
	var chain []llm.Provider
	for _, p := range cfg.LLM.Providers {
		if !p.Enabled {
			continue
		}
		client, err := llm.NewChatClient(llm.ChatConfig{
			Name:    p.Name,
			APIKey:  p.APIKey,
			Model:   p.Model,
			BaseURL: p.BaseURL,
		})
		if err != nil {
			logger.Warnf(ctx, "Skipping provider %s: %v", p.Name, err)
			continue
		}
		chain = append(chain, client)
	}
	if len(chain) == 0 {
		return nil
	}

	manager := llm.NewManager(chain, &llm.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
	}, logger)
	return intent.NewLLMModel(manager, intent.LLMConfig{}, logger)
}
