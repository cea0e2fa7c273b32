package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"quickentry/internal/model"
	"quickentry/pkg/llm"
	"quickentry/pkg/log"
)

// Completer is the slice of the llm.Manager surface this package needs.
type Completer interface {
	Complete(ctx context.Context, req *llm.Request) (*llm.Response, error)
}

const systemPrompt = `You classify one line of free-form user input into exactly one intent and extract its slots.

Intents: reminder, event, expense, income, meal, activity, work_start, work_end, journal, calorie_adjustment.

Respond with ONLY a JSON object:
{"intent": "<intent or none>", "confidence": <0..1>, "slots": {"<key>": "<value>", ...}}

Slot keys: subject, day, time, amount, currency, calories, duration, distance, location, url, mood.
For a meal with several items, set subject to the items joined by ", " and add one "calories.<item>" key per item.
Times must be 24-hour zero-padded "HH:MM". Days must be "YYYY-MM-DD" or one of: today, tomorrow, monday..sunday, next_monday..next_sunday, weekday_monday..weekday_sunday.
Omit slots you cannot fill. Never invent values.`

// LLMModel implements Model on top of the provider manager. Responses are
// cached by input text so retyping the same line never re-hits a provider.
type LLMModel struct {
	completer   Completer
	cache       *expirable.LRU[string, Prediction]
	logger      log.Logger
	temperature float64
	maxTokens   int
}

// LLMConfig configures the model-backed classifier.
type LLMConfig struct {
	CacheSize   int
	CacheTTL    time.Duration
	Temperature float64
	MaxTokens   int
}

// NewLLMModel creates an LLM-backed intent model.
func NewLLMModel(completer Completer, cfg LLMConfig, logger log.Logger) *LLMModel {
	size := cfg.CacheSize
	if size <= 0 {
		size = 512
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 512
	}
	return &LLMModel{
		completer:   completer,
		cache:       expirable.NewLRU[string, Prediction](size, nil, ttl),
		logger:      logger,
		temperature: cfg.Temperature,
		maxTokens:   maxTokens,
	}
}

type wirePrediction struct {
	Intent     string            `json:"intent"`
	Confidence float64           `json:"confidence"`
	Slots      map[string]string `json:"slots"`
}

// Predict classifies text into an intent and raw slots.
func (m *LLMModel) Predict(ctx context.Context, text string) (Prediction, error) {
	text = strings.TrimSpace(text)
	if cached, ok := m.cache.Get(text); ok {
		return cached, nil
	}

	resp, err := m.completer.Complete(ctx, &llm.Request{
		System:      systemPrompt,
		Prompt:      text,
		Temperature: m.temperature,
		MaxTokens:   m.maxTokens,
	})
	if err != nil {
		return Prediction{}, fmt.Errorf("intent model call: %w", err)
	}

	cleaned := sanitizeJSONResponse(resp.Text)

	var wire wirePrediction
	if err := json.Unmarshal([]byte(cleaned), &wire); err != nil {
		m.logger.Errorf(ctx, "failed to parse model response raw=%q cleaned=%q", resp.Text, cleaned)
		return Prediction{}, fmt.Errorf("parse model response: %w", err)
	}

	pred, err := fromWire(wire)
	if err != nil {
		return Prediction{}, err
	}

	m.cache.Add(text, pred)
	return pred, nil
}

func fromWire(wire wirePrediction) (Prediction, error) {
	label := strings.ToLower(strings.TrimSpace(wire.Intent))
	if label == "" || label == "none" {
		return Prediction{}, ErrNoMatch
	}

	known := false
	for _, it := range model.Intents {
		if label == string(it) {
			known = true
			break
		}
	}
	if !known {
		return Prediction{}, fmt.Errorf("%w: %q", ErrUnknownIntent, label)
	}

	conf := wire.Confidence
	if conf < 0 {
		conf = 0
	}
	if conf > 1 {
		conf = 1
	}

	slots := make(map[string]string, len(wire.Slots))
	for k, v := range wire.Slots {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		slots[strings.ToLower(strings.TrimSpace(k))] = v
	}

	return Prediction{
		Intent:     model.Intent(label),
		Slots:      slots,
		Confidence: conf,
	}, nil
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that models often add around JSON output.
func sanitizeJSONResponse(text string) string {
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	if matches := re.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "{[")
	end := strings.LastIndexAny(text, "}]")
	if start >= 0 && end > start {
		return strings.TrimSpace(text[start : end+1])
	}
	return strings.TrimSpace(text)
}
