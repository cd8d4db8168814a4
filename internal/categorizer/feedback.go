package categorizer

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Feedback pairs a predicted category with the correction a user made.
type Feedback struct {
	UserID            uuid.UUID `json:"user_id"`
	Description       string    `json:"description"`
	PredictedCategory string    `json:"predicted_category"`
	CorrectedCategory string    `json:"corrected_category"`
	Confidence        float64   `json:"confidence"`
}

// Recorder records categorization feedback for future retraining.
type Recorder interface {
	Record(ctx context.Context, feedback Feedback) error
}

// LogRecorder logs feedback and discards it. It stands in until a
// retraining store exists.
type LogRecorder struct{}

var _ Recorder = LogRecorder{}

func (LogRecorder) Record(_ context.Context, feedback Feedback) error {
	log.Debug().
		Str("user-id", feedback.UserID.String()).
		Str("predicted", feedback.PredictedCategory).
		Str("corrected", feedback.CorrectedCategory).
		Float64("confidence", feedback.Confidence).
		Msg("categorization feedback recorded")

	return nil
}
