package calc_test

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strings"
	"testing"

	"engcalc/internal/testutil"
)

const perUnitBody = `{"base_mva":100,"base_kv":13.8,"length_km":10,"r_per_km":0.1,"x_per_km":0.3,"b_per_km":0.0002}`

const zipBody = `{"p0":100,"q0":50,"v0":1,"a":0.5,"b":0.3,"d":0.5,"e":0.3,"v":1.0}`

func TestPerUnitExportCSV(t *testing.T) {
	router := newCalcRouter(t)

	w := testutil.PostJSON(t, router, "/calculator/perunit/export/csv", perUnitBody)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	if ct := w.Result().Header.Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("expected Content-Type text/csv, got %q", ct)
	}
	if cd := w.Result().Header.Get("Content-Disposition"); !strings.Contains(cd, "pu_results.csv") {
		t.Fatalf("expected attachment filename pu_results.csv, got %q", cd)
	}

	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("parsing exported CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header and data row, got %d rows", len(records))
	}

	wantHeader := []string{
		"Base MVA", "Base kV", "Length (km)",
		"R_total (ohm)", "X_total (ohm)", "B_total (S)",
		"R_pu", "X_pu", "B_pu",
	}
	for i, label := range wantHeader {
		if records[0][i] != label {
			t.Fatalf("header field %d: expected %q, got %q", i, label, records[0][i])
		}
	}

	if records[1][6] != "0.5251" {
		t.Fatalf("expected R_pu field 0.5251, got %q", records[1][6])
	}
	if records[1][8] != "0.003809" {
		t.Fatalf("expected B_pu field 0.003809, got %q", records[1][8])
	}
}

func TestPerUnitExportPDF(t *testing.T) {
	router := newCalcRouter(t)

	w := testutil.PostJSON(t, router, "/calculator/perunit/export/pdf", perUnitBody)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	if ct := w.Result().Header.Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected Content-Type application/pdf, got %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("expected PDF magic header")
	}
}

func TestPerUnitExportUnknownFormatIsNotRouted(t *testing.T) {
	router := newCalcRouter(t)

	w := testutil.PostJSON(t, router, "/calculator/perunit/export/xml", perUnitBody)
	testutil.CheckResponseCode(t, http.StatusNotFound, w.Code)
}

func TestZIPExportCSV(t *testing.T) {
	router := newCalcRouter(t)

	w := testutil.PostJSON(t, router, "/calculator/zip/export/csv", zipBody)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("parsing exported CSV: %v", err)
	}

	wantHeader := []string{
		"P0 (MW)", "Q0 (MVAr)", "Operating V (p.u.)",
		"P (MW)", "Q (MVAr)", "Coeffs a,b,c", "Coeffs d,e,f",
	}
	for i, label := range wantHeader {
		if records[0][i] != label {
			t.Fatalf("header field %d: expected %q, got %q", i, label, records[0][i])
		}
	}

	if records[1][3] != "100" {
		t.Fatalf("expected P field 100, got %q", records[1][3])
	}
	if records[1][5] != "0.50, 0.30, 0.20" {
		t.Fatalf("expected coefficient triple, got %q", records[1][5])
	}
}

func TestZIPExportPDF(t *testing.T) {
	router := newCalcRouter(t)

	w := testutil.PostJSON(t, router, "/calculator/zip/export/pdf", zipBody)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("expected PDF magic header")
	}
}

func TestZIPCurvePNG(t *testing.T) {
	router := newCalcRouter(t)

	w := testutil.PostJSON(t, router, "/calculator/zip/curve.png", zipBody)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	if ct := w.Result().Header.Get("Content-Type"); ct != "image/png" {
		t.Fatalf("expected Content-Type image/png, got %q", ct)
	}
	if cd := w.Result().Header.Get("Content-Disposition"); !strings.Contains(cd, "zip_curve.png") {
		t.Fatalf("expected attachment filename zip_curve.png, got %q", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatal("expected PNG magic header")
	}
}

func TestZIPCurvePDF(t *testing.T) {
	router := newCalcRouter(t)

	w := testutil.PostJSON(t, router, "/calculator/zip/curve.pdf", zipBody)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	if ct := w.Result().Header.Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected Content-Type application/pdf, got %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("expected PDF magic header")
	}
}

func TestZIPCurveRejectsInvalidModel(t *testing.T) {
	router := newCalcRouter(t)

	w := testutil.PostJSON(t, router, "/calculator/zip/curve.png", `{"p0":100,"v0":0}`)
	testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)
}
