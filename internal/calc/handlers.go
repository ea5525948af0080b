package calc

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"engcalc/internal/export"
	"engcalc/internal/formula"
	"engcalc/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calc")

// page starts the plumbing shared by every calculator endpoint: a
// trace-correlated logger, the request ID, and a child span named after
// the page.
func page(r *http.Request, name string) (context.Context, trace.Span, *zap.Logger, string) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calc."+name,
		trace.WithAttributes(
			attribute.String("calc.page", name),
			attribute.String("request.id", requestID),
		),
	)
	return ctx, span, logger, requestID
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func elapsedMs(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}

// complete records success telemetry for a page evaluation: counters,
// duration histogram, result gauge, and the closing span event.
func complete(ctx context.Context, span trace.Span, name string, result, elapsed float64) {
	attrs := metric.WithAttributes(attribute.String("page", name))
	pagesCounter.Add(ctx, 1, attrs)
	pageHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, result, attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("result", result),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("calc.result", result))
	span.SetStatus(codes.Ok, "")
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(v)
}

func parseUnitKind(s string) (formula.UnitKind, error) {
	switch s {
	case "length":
		return formula.UnitLength, nil
	case "mass":
		return formula.UnitMass, nil
	default:
		return 0, fmt.Errorf("unknown conversion kind %q", s)
	}
}

func parseTempDirection(s string) (formula.TempDirection, error) {
	switch s {
	case "c_to_f":
		return formula.CelsiusToFahrenheit, nil
	case "f_to_c":
		return formula.FahrenheitToCelsius, nil
	default:
		return 0, fmt.Errorf("unknown conversion direction %q", s)
	}
}

// Convert handles POST /calculator/convert.
func Convert(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger, requestID := page(r, "convert")
	defer span.End()

	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "convert", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	kind, err := parseUnitKind(req.Kind)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "convert", err.Error(), err, http.StatusBadRequest, w)
		return
	}
	if !finite(req.Value) {
		observability.RecordError(ctx, span, logger, errorCounter, "convert", "invalid numeric input", fmt.Errorf("value=%g", req.Value), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.Float64("calc.input.value", req.Value),
		attribute.String("calc.input.kind", req.Kind),
	)

	start := time.Now()
	result := formula.ConvertUnit(req.Value, kind)
	elapsed := elapsedMs(start)

	complete(ctx, span, "convert", result, elapsed)

	logger.Info("unit conversion completed",
		zap.String("kind", req.Kind),
		zap.Float64("value", req.Value),
		zap.Float64("result", result),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	writeJSON(w, ConvertResponse{Kind: req.Kind, Value: req.Value, Result: result})
}

// Temperature handles POST /calculator/temperature.
func Temperature(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger, requestID := page(r, "temperature")
	defer span.End()

	var req TemperatureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "temperature", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	dir, err := parseTempDirection(req.Direction)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "temperature", err.Error(), err, http.StatusBadRequest, w)
		return
	}
	if !finite(req.Value) {
		observability.RecordError(ctx, span, logger, errorCounter, "temperature", "invalid numeric input", fmt.Errorf("value=%g", req.Value), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.Float64("calc.input.value", req.Value),
		attribute.String("calc.input.direction", req.Direction),
	)

	start := time.Now()
	result := formula.ConvertTemperature(req.Value, dir)
	elapsed := elapsedMs(start)

	complete(ctx, span, "temperature", result, elapsed)

	logger.Info("temperature conversion completed",
		zap.String("direction", req.Direction),
		zap.Float64("value", req.Value),
		zap.Float64("result", result),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	writeJSON(w, TemperatureResponse{Direction: req.Direction, Value: req.Value, Result: result})
}

// BMI handles POST /calculator/bmi.
func BMI(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger, requestID := page(r, "bmi")
	defer span.End()

	var req BMIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "bmi", "invalid request body", err, http.StatusBadRequest, w)
		return
	}
	if !finite(req.WeightKg, req.HeightM) {
		observability.RecordError(ctx, span, logger, errorCounter, "bmi", "invalid numeric input", fmt.Errorf("weight=%g height=%g", req.WeightKg, req.HeightM), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.Float64("calc.input.weight_kg", req.WeightKg),
		attribute.Float64("calc.input.height_m", req.HeightM),
	)

	start := time.Now()
	result, err := formula.BMI(req.WeightKg, req.HeightM)
	elapsed := elapsedMs(start)

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "bmi", "height must be positive", err, http.StatusBadRequest, w)
		return
	}

	complete(ctx, span, "bmi", result, elapsed)

	logger.Info("bmi computed",
		zap.Float64("weight_kg", req.WeightKg),
		zap.Float64("height_m", req.HeightM),
		zap.Float64("bmi", result),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	writeJSON(w, BMIResponse{BMI: result})
}

// perUnit decodes and validates a per-unit request, then evaluates it.
// Shared by the page handler and the export endpoints.
func perUnit(ctx context.Context, span trace.Span, logger *zap.Logger, op string, w http.ResponseWriter, r *http.Request) (PerUnitRequest, formula.PerUnitResult, bool) {
	var req PerUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, op, "invalid request body", err, http.StatusBadRequest, w)
		return req, formula.PerUnitResult{}, false
	}
	if !finite(req.BaseMVA, req.BaseKV, req.LengthKm, req.RPerKm, req.XPerKm, req.BPerKm) {
		observability.RecordError(ctx, span, logger, errorCounter, op, "invalid numeric input", fmt.Errorf("base_mva=%g base_kv=%g", req.BaseMVA, req.BaseKV), http.StatusBadRequest, w)
		return req, formula.PerUnitResult{}, false
	}
	if req.BaseMVA <= 0 || req.BaseKV <= 0 {
		observability.RecordError(ctx, span, logger, errorCounter, op, "bases must be positive", fmt.Errorf("base_mva=%g base_kv=%g", req.BaseMVA, req.BaseKV), http.StatusBadRequest, w)
		return req, formula.PerUnitResult{}, false
	}
	if req.LengthKm < 0 {
		observability.RecordError(ctx, span, logger, errorCounter, op, "length must not be negative", fmt.Errorf("length_km=%g", req.LengthKm), http.StatusBadRequest, w)
		return req, formula.PerUnitResult{}, false
	}

	span.SetAttributes(
		attribute.Float64("calc.input.base_mva", req.BaseMVA),
		attribute.Float64("calc.input.base_kv", req.BaseKV),
		attribute.Float64("calc.input.length_km", req.LengthKm),
	)

	res, err := formula.PerUnit(formula.PerUnitRequest{
		BaseMVA:  req.BaseMVA,
		BaseKV:   req.BaseKV,
		LengthKm: req.LengthKm,
		RPerKm:   req.RPerKm,
		XPerKm:   req.XPerKm,
		BPerKm:   req.BPerKm,
	})
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, op, "per-unit computation failed", err, http.StatusBadRequest, w)
		return req, formula.PerUnitResult{}, false
	}
	return req, res, true
}

// PerUnit handles POST /calculator/perunit.
func PerUnit(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger, requestID := page(r, "perunit")
	defer span.End()

	start := time.Now()
	_, res, ok := perUnit(ctx, span, logger, "perunit", w, r)
	if !ok {
		return
	}
	elapsed := elapsedMs(start)

	complete(ctx, span, "perunit", res.RPu, elapsed)

	logger.Info("per-unit computation completed",
		zap.Float64("z_base", res.ZBase),
		zap.Float64("r_pu", res.RPu),
		zap.Float64("x_pu", res.XPu),
		zap.Float64("b_pu", res.BPu),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	writeJSON(w, PerUnitResponse{
		ZBase:  res.ZBase,
		YBase:  res.YBase,
		RTotal: export.Round(res.RTotal, 6),
		XTotal: export.Round(res.XTotal, 6),
		BTotal: export.Round(res.BTotal, 6),
		RPu:    export.Round(res.RPu, 6),
		XPu:    export.Round(res.XPu, 6),
		BPu:    export.Round(res.BPu, 6),
	})
}

// zipLoad decodes and validates a ZIP request. Shared by the page
// handler, the export endpoints, and the curve downloads.
func zipLoad(ctx context.Context, span trace.Span, logger *zap.Logger, op string, w http.ResponseWriter, r *http.Request) (ZIPRequest, formula.ZIPLoadRequest, bool) {
	var req ZIPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, op, "invalid request body", err, http.StatusBadRequest, w)
		return req, formula.ZIPLoadRequest{}, false
	}
	if !finite(req.P0, req.Q0, req.V0, req.A, req.B, req.D, req.E, req.V) {
		observability.RecordError(ctx, span, logger, errorCounter, op, "invalid numeric input", fmt.Errorf("p0=%g q0=%g v0=%g", req.P0, req.Q0, req.V0), http.StatusBadRequest, w)
		return req, formula.ZIPLoadRequest{}, false
	}
	if req.V0 <= 0 {
		observability.RecordError(ctx, span, logger, errorCounter, op, "base voltage must be positive", fmt.Errorf("v0=%g", req.V0), http.StatusBadRequest, w)
		return req, formula.ZIPLoadRequest{}, false
	}

	span.SetAttributes(
		attribute.Float64("calc.input.p0", req.P0),
		attribute.Float64("calc.input.q0", req.Q0),
		attribute.Float64("calc.input.v", req.V),
	)

	model := formula.ZIPLoadRequest{
		P0: req.P0, Q0: req.Q0, V0: req.V0,
		A: req.A, B: req.B, D: req.D, E: req.E,
	}
	return req, model, true
}

// ZIP handles POST /calculator/zip.
func ZIP(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger, requestID := page(r, "zip")
	defer span.End()

	start := time.Now()
	req, model, ok := zipLoad(ctx, span, logger, "zip", w, r)
	if !ok {
		return
	}

	p, q := formula.ZIPLoad(model, req.V)
	elapsed := elapsedMs(start)

	_, _, c := model.RealShares()
	_, _, f := model.ReactiveShares()

	complete(ctx, span, "zip", p, elapsed)

	logger.Info("zip load evaluated",
		zap.Float64("v", req.V),
		zap.Float64("p", p),
		zap.Float64("q", q),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	writeJSON(w, ZIPResponse{V: req.V, P: p, Q: q, C: c, F: f})
}
