package calc

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"engcalc/internal/export"
	"engcalc/internal/formula"
	"engcalc/internal/observability"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Content types of the downloadable artifacts.
const (
	contentTypeCSV = "text/csv"
	contentTypePDF = "application/pdf"
	contentTypePNG = "image/png"
)

func writeArtifact(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// perUnitResults builds the exportable result set for the per-unit page,
// all derived values rounded to six decimal places.
func perUnitResults(req PerUnitRequest, res formula.PerUnitResult) *export.Results {
	out := &export.Results{}
	out.Add("Base MVA", req.BaseMVA).
		Add("Base kV", req.BaseKV).
		Add("Length (km)", req.LengthKm).
		Add("R_total (ohm)", export.Round(res.RTotal, 6)).
		Add("X_total (ohm)", export.Round(res.XTotal, 6)).
		Add("B_total (S)", export.Round(res.BTotal, 6)).
		Add("R_pu", export.Round(res.RPu, 6)).
		Add("X_pu", export.Round(res.XPu, 6)).
		Add("B_pu", export.Round(res.BPu, 6))
	return out
}

// zipResults builds the exportable result set for the ZIP page: powers
// rounded to four decimal places, coefficient triples quoted to two.
func zipResults(req ZIPRequest, model formula.ZIPLoadRequest, p, q float64) *export.Results {
	a, b, c := model.RealShares()
	d, e, f := model.ReactiveShares()

	out := &export.Results{}
	out.Add("P0 (MW)", req.P0).
		Add("Q0 (MVAr)", req.Q0).
		Add("Operating V (p.u.)", req.V).
		Add("P (MW)", export.Round(p, 4)).
		Add("Q (MVAr)", export.Round(q, 4)).
		Add("Coeffs a,b,c", fmt.Sprintf("%.2f, %.2f, %.2f", a, b, c)).
		Add("Coeffs d,e,f", fmt.Sprintf("%.2f, %.2f, %.2f", d, e, f))
	return out
}

// serve serializes a result set in the requested format and writes it as
// an attachment. Returns false after writing the error response when the
// format is unknown or serialization fails.
func serve(ctx context.Context, span trace.Span, logger *zap.Logger, w http.ResponseWriter, op, format, name string, res *export.Results, title string) bool {
	var (
		data        []byte
		contentType string
		err         error
	)
	switch format {
	case "csv":
		data, err = export.CSV(res)
		contentType = contentTypeCSV
	case "pdf":
		data, err = export.PDF(res, title)
		contentType = contentTypePDF
	default:
		err = fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, op, "export failed", err, http.StatusBadRequest, w)
		return false
	}

	exportCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("page", op),
		attribute.String("format", format),
	))
	writeArtifact(w, contentType, name+"."+format, data)
	return true
}

// PerUnitExport handles POST /calculator/perunit/export/{format}.
func PerUnitExport(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger, requestID := page(r, "perunit.export")
	defer span.End()

	format := chi.URLParam(r, "format")
	span.SetAttributes(attribute.String("calc.export.format", format))

	start := time.Now()
	req, res, ok := perUnit(ctx, span, logger, "perunit.export", w, r)
	if !ok {
		return
	}

	if !serve(ctx, span, logger, w, "perunit.export", format, "pu_results", perUnitResults(req, res), "Advanced PU Results") {
		return
	}
	span.SetStatus(codes.Ok, "")

	logger.Info("per-unit results exported",
		zap.String("format", format),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsedMs(start)),
	)
}

// ZIPExport handles POST /calculator/zip/export/{format}.
func ZIPExport(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger, requestID := page(r, "zip.export")
	defer span.End()

	format := chi.URLParam(r, "format")
	span.SetAttributes(attribute.String("calc.export.format", format))

	start := time.Now()
	req, model, ok := zipLoad(ctx, span, logger, "zip.export", w, r)
	if !ok {
		return
	}
	p, q := formula.ZIPLoad(model, req.V)

	if !serve(ctx, span, logger, w, "zip.export", format, "zip_results", zipResults(req, model, p, q), "ZIP Load Model Results") {
		return
	}
	span.SetStatus(codes.Ok, "")

	logger.Info("zip results exported",
		zap.String("format", format),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsedMs(start)),
	)
}

// zipCurve renders the voltage sweep plot for a ZIP request and writes
// it as an attachment in the given image format.
func zipCurve(w http.ResponseWriter, r *http.Request, format string) {
	ctx, span, logger, requestID := page(r, "zip.curve")
	defer span.End()

	span.SetAttributes(attribute.String("calc.export.format", format))

	start := time.Now()
	req, model, ok := zipLoad(ctx, span, logger, "zip.curve", w, r)
	if !ok {
		return
	}

	curve := formula.SampleCurve(model)
	data, err := export.RenderCurve(curve, req.V, format)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "zip.curve", "plot rendering failed", err, http.StatusInternalServerError, w)
		return
	}

	exportCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("page", "zip.curve"),
		attribute.String("format", format),
	))

	contentType := contentTypePNG
	if format == export.FormatPDF {
		contentType = contentTypePDF
	}
	writeArtifact(w, contentType, "zip_curve."+format, data)
	span.SetStatus(codes.Ok, "")

	logger.Info("zip curve exported",
		zap.String("format", format),
		zap.Int("samples", len(curve)),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsedMs(start)),
	)
}

// ZIPCurvePNG handles POST /calculator/zip/curve.png.
func ZIPCurvePNG(w http.ResponseWriter, r *http.Request) {
	zipCurve(w, r, export.FormatPNG)
}

// ZIPCurvePDF handles POST /calculator/zip/curve.pdf.
func ZIPCurvePDF(w http.ResponseWriter, r *http.Request) {
	zipCurve(w, r, export.FormatPDF)
}
