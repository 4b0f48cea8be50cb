package handler

import (
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"tax-engine/internal/engine"
	"tax-engine/internal/model"
)

// New returns the POST /calculate handler: decode one calculation request,
// run it, encode the response. All domain failures still return 200 with a
// FAILURE outcome in the envelope; transport-level problems use the error
// envelope.
func New(logger zerolog.Logger) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		if !ctx.IsPost() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "POST required")
			return
		}

		var req model.CalculationRequest
		if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
			writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}

		resp := engine.Process(&req)

		logger.Info().
			Str("calculation_id", resp.CalculationMetadata.CalculationID).
			Str("tax_year", resp.CalculationMetadata.TaxYear).
			Str("outcome", resp.CalculationMetadata.CalculationOutcome).
			Int64("duration_ms", resp.CalculationMetadata.CalculationDurationMs).
			Msg("calculation processed")

		writeJSON(ctx, fasthttp.StatusOK, resp)
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{Status: status, Message: message})
}
