// Package v1 implements the handlers for the v1 API.
package v1

import (
	"github.com/neuralcash/backend/internal/categorizer"
	"github.com/neuralcash/backend/internal/ocr"
	"github.com/neuralcash/backend/internal/storage"
)

// Controller bundles the external collaborators of the v1 handlers. It is
// constructed by the process entry point and passed to the router, so that
// no handler reaches for a global client.
type Controller struct {
	OCR      *ocr.Client
	Storage  *storage.Client
	Feedback categorizer.Recorder
}
