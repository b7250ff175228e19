package models

// PincodeRecord is one row of the All India Pincode Directory: a single
// post office listed under a PIN code. Several offices can share a PIN.
type PincodeRecord struct {
    OfficeName        string `json:"office_name"`
    Pincode           string `json:"pincode"`
    OfficeType        string `json:"office_type"`
    DeliveryStatus    string `json:"delivery_status"`
    DivisionName      string `json:"division_name"`
    RegionName        string `json:"region_name"`
    CircleName        string `json:"circle_name"`
    Taluk             string `json:"taluk"`
    District          string `json:"district"`
    State             string `json:"state"`
    Telephone         string `json:"telephone,omitempty"`
    RelatedSuboffice  string `json:"related_suboffice,omitempty"`
    RelatedHeadoffice string `json:"related_headoffice,omitempty"`
}
