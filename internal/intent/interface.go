// Package intent classifies a normalized line into one of the closed intents
// and assembles the model output into validated slot predictions.
package intent

import "context"

// Model is the external intent/slot collaborator. It may be called off the
// interactive path and may return ErrNoMatch when nothing fits.
type Model interface {
	Predict(ctx context.Context, text string) (Prediction, error)
}
