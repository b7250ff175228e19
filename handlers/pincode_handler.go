package handlers

import (
    "encoding/json"
    "net/http"
    "strings"

    "github.com/4akhilkumar/AllIndiaPincode/dataset"
    "github.com/4akhilkumar/AllIndiaPincode/models"
    "github.com/4akhilkumar/AllIndiaPincode/validators"
)

// PincodeHandler serves lookups against the loaded pincode directory.
type PincodeHandler struct {
    dataset *dataset.Dataset
}

func NewPincodeHandler(ds *dataset.Dataset) *PincodeHandler {
    return &PincodeHandler{dataset: ds}
}

// LookupPincode handles retrieving the post offices listed under a pincode.
// A well-formed pincode with no entry in the directory is not an error: the
// response is an empty array, so clients can treat "no offices" as a normal
// answer instead of a failure.
func (h *PincodeHandler) LookupPincode(w http.ResponseWriter, r *http.Request) {
    values, ok := r.URL.Query()["pincode"]
    if !ok {
        sendErrorResponse(w, "Pincode parameter is required.", http.StatusBadRequest)
        return
    }

    pincode := strings.TrimSpace(values[0])
    if err := validators.ValidatePincode(pincode); err != nil {
        sendErrorResponse(w, err.Error(), http.StatusBadRequest)
        return
    }

    records := h.dataset.Lookup(pincode)
    if records == nil {
        records = make([]models.PincodeRecord, 0)
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(records)
}

// GetPincodeStats handles retrieving statistics about the loaded directory.
func (h *PincodeHandler) GetPincodeStats(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "application/json")
    w.Header().Set("Cache-Control", "public, max-age=3600") // Cache for 1 hour
    json.NewEncoder(w).Encode(h.dataset.Stats())
}
