package handlers

import (
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/4akhilkumar/AllIndiaPincode/config"
    "github.com/4akhilkumar/AllIndiaPincode/dataset"
    "github.com/4akhilkumar/AllIndiaPincode/models"
)

func loadTestDataset(t *testing.T) *dataset.Dataset {
    t.Helper()
    ds, err := dataset.Load(config.Configuration{
        CSV_FILE:     "testdata/pincode_sample.csv",
        CSV_ENCODING: "utf-8",
        REQUIRED_COLUMNS: []string{
            "OfficeName", "Pincode", "OfficeType", "DeliveryStatus",
            "DivisionName", "RegionName", "CircleName", "Taluk",
            "District", "State",
        },
        REGEX_RULES: map[string]string{
            "OfficeName": `\s*\*+$`,
        },
        FORMAT_RULES: map[string]string{
            "State":    "Title",
            "District": "Title",
            "Taluk":    "Title",
        },
    })
    if err != nil {
        t.Fatalf("loading test dataset: %v", err)
    }
    return ds
}

func lookupRequest(t *testing.T, handler *PincodeHandler, target string) *httptest.ResponseRecorder {
    t.Helper()
    req := httptest.NewRequest(http.MethodGet, target, nil)
    rec := httptest.NewRecorder()
    handler.LookupPincode(rec, req)
    return rec
}

func errorDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
    t.Helper()
    var body struct {
        Detail string `json:"detail"`
    }
    if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
        t.Fatalf("decoding error body %q: %v", rec.Body.String(), err)
    }
    return body.Detail
}

func TestLookupPincodeFound(t *testing.T) {
    handler := NewPincodeHandler(loadTestDataset(t))

    rec := lookupRequest(t, handler, "/api/v1/?pincode=110001")
    if rec.Code != http.StatusOK {
        t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
    }
    if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
        t.Fatalf("Content-Type = %q", ct)
    }

    var records []models.PincodeRecord
    if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
        t.Fatalf("decoding response: %v", err)
    }
    if len(records) != 4 {
        t.Fatalf("got %d records, want 4", len(records))
    }
    if records[0].OfficeName != "Baroda House S.O" {
        t.Fatalf("records[0].OfficeName = %q", records[0].OfficeName)
    }
    if records[0].District != "Central Delhi" {
        t.Fatalf("records[0].District = %q, want %q", records[0].District, "Central Delhi")
    }
}

func TestLookupPincodeNoMatchIsEmptyArray(t *testing.T) {
    handler := NewPincodeHandler(loadTestDataset(t))

    rec := lookupRequest(t, handler, "/api/v1/?pincode=000000")
    if rec.Code != http.StatusOK {
        t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
    }
    if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
        t.Fatalf("body = %q, want empty JSON array", body)
    }
}

func TestLookupPincodeMissingParameter(t *testing.T) {
    handler := NewPincodeHandler(loadTestDataset(t))

    rec := lookupRequest(t, handler, "/api/v1/")
    if rec.Code != http.StatusBadRequest {
        t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
    }
    if detail := errorDetail(t, rec); detail != "Pincode parameter is required." {
        t.Fatalf("detail = %q", detail)
    }
}

func TestLookupPincodeRejectsMalformed(t *testing.T) {
    handler := NewPincodeHandler(loadTestDataset(t))

    cases := []struct {
        target string
        detail string
    }{
        {"/api/v1/?pincode=", "Pincode should not be empty."},
        {"/api/v1/?pincode=12345", "Pincode must contain only 6 digits."},
        {"/api/v1/?pincode=1234567", "Pincode must contain only 6 digits."},
        {"/api/v1/?pincode=11000a", "Invalid pincode."},
    }

    for _, tc := range cases {
        rec := lookupRequest(t, handler, tc.target)
        if rec.Code != http.StatusBadRequest {
            t.Fatalf("%s: status = %d, want %d", tc.target, rec.Code, http.StatusBadRequest)
        }
        if detail := errorDetail(t, rec); detail != tc.detail {
            t.Fatalf("%s: detail = %q, want %q", tc.target, detail, tc.detail)
        }
    }
}

func TestLookupPincodeTrimsWhitespace(t *testing.T) {
    handler := NewPincodeHandler(loadTestDataset(t))

    rec := lookupRequest(t, handler, "/api/v1/?pincode=%20110001%20")
    if rec.Code != http.StatusOK {
        t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
    }

    var records []models.PincodeRecord
    if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
        t.Fatalf("decoding response: %v", err)
    }
    if len(records) != 4 {
        t.Fatalf("got %d records, want 4", len(records))
    }
}

func TestLookupPincodeIsIdempotent(t *testing.T) {
    handler := NewPincodeHandler(loadTestDataset(t))

    first := lookupRequest(t, handler, "/api/v1/?pincode=110001")
    second := lookupRequest(t, handler, "/api/v1/?pincode=110001")
    if first.Body.String() != second.Body.String() {
        t.Fatalf("repeated lookups returned different bodies")
    }
}

func TestGetPincodeStats(t *testing.T) {
    handler := NewPincodeHandler(loadTestDataset(t))

    req := httptest.NewRequest(http.MethodGet, "/api/v1/pincode/stats", nil)
    rec := httptest.NewRecorder()
    handler.GetPincodeStats(rec, req)

    if rec.Code != http.StatusOK {
        t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
    }
    if cc := rec.Header().Get("Cache-Control"); cc == "" {
        t.Fatalf("Cache-Control header missing")
    }

    var stats dataset.Stats
    if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
        t.Fatalf("decoding response: %v", err)
    }
    if stats.TotalPincodes != 2 || stats.TotalPostOffices != 5 {
        t.Fatalf("stats = %+v", stats)
    }
}
