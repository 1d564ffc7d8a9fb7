// Package match holds the matching core: description similarity scoring, the
// candidate-generating strategies with their short-circuit pipeline, and the
// greedy assignment resolver. Everything in here is a pure function of its
// inputs; the package has no clocks, no I/O and no shared state.
package match

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"ledger-reconciler/internal/domain"
)

// Config tunes candidate generation and resolution. All knobs are data, not
// code, so matching behavior can be adjusted per call without a deploy.
type Config struct {
	// AmountTolerance is the maximum absolute difference between a
	// transaction's magnitude and a title's remaining balance for the fuzzy
	// and amount-window strategies. Zero means amounts must be equal.
	AmountTolerance decimal.Decimal `json:"amount_tolerance" validate:"-"`

	// DateWindowDays is the maximum distance in days between transaction
	// date and due date for the fuzzy strategy.
	DateWindowDays int `json:"date_window_days" validate:"gte=1"`

	// MinAutoMatchConfidence is the floor a candidate must reach to be
	// accepted by the resolver.
	MinAutoMatchConfidence float64 `json:"min_auto_match_confidence" validate:"gte=0,lte=1"`

	// EnableFuzzyDescription includes the description-similarity term in the
	// fuzzy confidence. When false the term is dropped and the remaining
	// weights are renormalized.
	EnableFuzzyDescription bool `json:"enable_fuzzy_description"`

	// Weights for the fuzzy confidence terms. Only their ratios matter; the
	// sum over enabled terms is normalized away.
	AmountWeight      float64 `json:"amount_weight" validate:"gte=0"`
	DateWeight        float64 `json:"date_weight" validate:"gte=0"`
	DescriptionWeight float64 `json:"description_weight" validate:"gte=0"`

	// WindowConfidenceCap is the ceiling for amount-window candidates, kept
	// low so they only ever surface as needs-review entries.
	WindowConfidenceCap float64 `json:"window_confidence_cap" validate:"gt=0,lt=1"`
}

// DefaultConfig returns the tuning used when the caller overrides nothing.
func DefaultConfig() Config {
	return Config{
		AmountTolerance:        decimal.NewFromFloat(1.00),
		DateWindowDays:         3,
		MinAutoMatchConfidence: 0.90,
		EnableFuzzyDescription: true,
		AmountWeight:           0.5,
		DateWeight:             0.3,
		DescriptionWeight:      0.2,
		WindowConfidenceCap:    0.40,
	}
}

var validate = validator.New()

// Validate rejects out-of-range tuning before any candidate generation.
func (c Config) Validate() error {
	if c.AmountTolerance.IsNegative() {
		return &domain.ValidationError{Field: "amount_tolerance", Reason: "must not be negative"}
	}
	if c.AmountWeight+c.DateWeight+c.DescriptionWeight <= 0 {
		return &domain.ValidationError{Field: "weights", Reason: "must have a positive sum"}
	}
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return &domain.ValidationError{
				Field:  fieldErrs[0].Field(),
				Reason: "fails constraint " + fieldErrs[0].Tag(),
			}
		}
		return err
	}
	return nil
}
