package model

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	// Liability is present only on SUCCESS. A partial figure is actively
	// misleading, so a failed computation carries messages and nothing else.
	Liability *AggregateLiability  `json:"liability,omitempty"`
	Messages  []CalculationMessage `json:"messages"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	TaxYear                string `json:"tax_year"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
