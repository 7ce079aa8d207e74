package validation

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Validation constants
	MaxNodes = 1_000_000
	MaxEdges = 10_000_000
)

func init() {
	validate = validator.New()
}

// knownAlgorithms is the set of algorithm names the engine dispatches on.
// Unknown names are not an error at the engine boundary, but callers that
// want to fail fast can validate against this set.
var knownAlgorithms = map[string]bool{
	"louvain":           true,
	"leiden":            true,
	"label_propagation": true,
}

// DetectionRequest represents a community detection request as received
// from the service layer.
type DetectionRequest struct {
	NodeCount  int     `json:"node_count" validate:"min=0"`
	EdgeCount  int     `json:"edge_count" validate:"min=0"`
	Algorithm  string  `json:"algorithm" validate:"required"`
	Resolution float64 `json:"resolution" validate:"required,gt=0"`
}

// ValidateDetectionRequest validates a detection request
func ValidateDetectionRequest(req *DetectionRequest) error {
	if req == nil {
		return errors.New("detection request cannot be nil")
	}

	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}

	if err := ValidateResolution(req.Resolution); err != nil {
		return err
	}

	if !knownAlgorithms[req.Algorithm] {
		return fmt.Errorf("Algorithm: unknown algorithm '%s'", req.Algorithm)
	}

	if req.NodeCount > MaxNodes {
		return fmt.Errorf("NodeCount: maximum %d nodes allowed, got %d", MaxNodes, req.NodeCount)
	}
	if req.EdgeCount > MaxEdges {
		return fmt.Errorf("EdgeCount: maximum %d edges allowed, got %d", MaxEdges, req.EdgeCount)
	}

	return nil
}

// ValidateResolution checks the resolution parameter precondition: a finite
// value strictly above zero.
func ValidateResolution(resolution float64) error {
	if math.IsNaN(resolution) || math.IsInf(resolution, 0) {
		return fmt.Errorf("Resolution: must be a finite number, got %v", resolution)
	}
	if resolution <= 0 {
		return fmt.Errorf("Resolution: must be greater than zero, got %v", resolution)
	}
	return nil
}

// KnownAlgorithm reports whether name is one of the dispatchable algorithms.
func KnownAlgorithm(name string) bool {
	return knownAlgorithms[name]
}

// formatValidationError converts validator errors into readable messages
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldErr := range validationErrors {
			return fmt.Errorf("%s: failed validation on '%s' constraint",
				fieldErr.Field(), fieldErr.Tag())
		}
	}
	return err
}
