package model

type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

// Message codes surfaced by the engine.
const (
	CodeUnknownTaxYear    = "UNKNOWN_TAX_YEAR"
	CodeBadRateTable      = "BAD_RATE_TABLE"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeCalculationFailed = "CALCULATION_FAILED"
)
