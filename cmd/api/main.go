package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"quickentry/config"
	_ "quickentry/docs" // Swagger docs
	"quickentry/internal/httpserver"
	"quickentry/internal/intent"
	"quickentry/internal/line"
	lineUC "quickentry/internal/line/usecase"
	variableSQLite "quickentry/internal/variable/repository/sqlite"
	variableUC "quickentry/internal/variable/usecase"
	"quickentry/pkg/datemath"
	"quickentry/pkg/gcalendar"
	"quickentry/pkg/llm"
	"quickentry/pkg/log"
)

// @title       Quickentry API
// @description Natural-language quick entry: free-text lines parsed into reminders, events, expenses, meals, and work marks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting quickentry...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Variable domain: sqlite-backed named tokens.
	store, err := variableSQLite.New(cfg.Store.SQLitePath)
	if err != nil {
		logger.Errorf(ctx, "Failed to open variable store: %v", err)
		return
	}
	defer store.Close()
	varUC := variableUC.New(logger, store)

	// 4. Intent model: LLM manager over the configured providers.
	intentModel := buildIntentModel(ctx, cfg, logger)

	// 5. DateMath resolver
	timezone := cfg.Parser.Timezone
	resolver, err := datemath.NewResolver(timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		timezone = "UTC"
		resolver, _ = datemath.NewResolver(timezone)
	}

	// 6. Google Calendar client (optional)
	var calendar line.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = calendarWriter{client: client, calendarID: cfg.GoogleCalendar.CalendarID}
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. Line domain: the debounced parse orchestrator.
	registry := intent.NewRegistry(intent.RegistryConfig{BodyWeightKg: cfg.Profile.BodyWeightKg})
	lnUC := lineUC.New(
		logger,
		intentModel,
		registry,
		varUC,
		calendar,
		resolver,
		line.Timings{
			Throttle:  parseDuration(cfg.Parser.Throttle, line.DefaultTimings.Throttle),
			Settle:    parseDuration(cfg.Parser.Settle, line.DefaultTimings.Settle),
			MinLength: cfg.Parser.MinLength,
		},
		timezone,
	)
	defer lnUC.Close()

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		APIKey:      cfg.HTTPServer.APIKey,
		LineUC:      lnUC,
		VariableUC:  varUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// buildIntentModel assembles the provider chain in priority order. With no
// usable providers the model still runs; every completion fails fast and
// only the arithmetic shortcut classifies lines.
func buildIntentModel(ctx context.Context, cfg *config.Config, logger log.Logger) intent.Model {
	providers := make([]config.ProviderConfig, 0, len(cfg.LLM.Providers))
	for _, p := range cfg.LLM.Providers {
		if p.Enabled {
			providers = append(providers, p)
		}
	}
	sort.Slice(providers, func(i, j int) bool { return providers[i].Priority < providers[j].Priority })

	chain := make([]llm.Provider, 0, len(providers))
	for _, p := range providers {
		client, err := llm.NewChatClient(llm.ChatConfig{
			Name:    p.Name,
			APIKey:  p.APIKey,
			Model:   p.Model,
			BaseURL: p.BaseURL,
			Timeout: parseDuration(p.Timeout, 0),
		})
		if err != nil {
			logger.Warnf(ctx, "Skipping provider %s: %v", p.Name, err)
			continue
		}
		chain = append(chain, client)
		logger.Infof(ctx, "LLM provider registered: %s (%s)", p.Name, p.Model)
	}
	if len(chain) == 0 {
		logger.Warn(ctx, "No LLM providers available; only arithmetic lines will parse")
	}

	manager := llm.NewManager(chain, &llm.Config{
		FallbackEnabled:   cfg.LLM.FallbackEnabled,
		RetryAttempts:     cfg.LLM.RetryAttempts,
		RetryDelay:        parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout:   parseDuration(cfg.LLM.MaxTotalTimeout, time.Minute),
		RequestsPerSecond: cfg.LLM.RequestsPerSecond,
		Burst:             cfg.LLM.Burst,
	}, logger)

	return intent.NewLLMModel(manager, intent.LLMConfig{
		CacheSize: cfg.LLM.CacheSize,
		CacheTTL:  parseDuration(cfg.LLM.CacheTTL, 10*time.Minute),
	}, logger)
}

// calendarWriter pins the configured calendar onto every event write.
type calendarWriter struct {
	client     *gcalendar.Client
	calendarID string
}

func (w calendarWriter) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if req.CalendarID == "" {
		req.CalendarID = w.calendarID
	}
	return w.client.CreateEvent(ctx, req)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
