package dataset

import (
    "fmt"
    "strings"

    "github.com/4akhilkumar/AllIndiaPincode/models"
)

// headerFields maps normalized CSV header names to record field names. The
// directory has been published under two generations of headers (for example
// "Districtname" in older files and "District" in newer ones); both spellings
// of each column land on the same field.
var headerFields = map[string]string{
    "officename":        "OfficeName",
    "pincode":           "Pincode",
    "officetype":        "OfficeType",
    "deliverystatus":    "DeliveryStatus",
    "delivery":          "DeliveryStatus",
    "divisionname":      "DivisionName",
    "regionname":        "RegionName",
    "circlename":        "CircleName",
    "taluk":             "Taluk",
    "districtname":      "District",
    "district":          "District",
    "statename":         "State",
    "telephone":         "Telephone",
    "relatedsuboffice":  "RelatedSuboffice",
    "relatedheadoffice": "RelatedHeadoffice",
}

// columnMap resolves record fields to column positions in the dataset file.
type columnMap struct {
    index map[string]int
}

func normalizeHeader(name string) string {
    name = strings.TrimPrefix(name, "\uFEFF")
    name = strings.ToLower(strings.TrimSpace(name))
    name = strings.ReplaceAll(name, " ", "")
    name = strings.ReplaceAll(name, "_", "")
    return strings.ReplaceAll(name, ".", "")
}

func mapColumns(header []string, required []string) (*columnMap, error) {
    index := make(map[string]int)
    for i, name := range header {
        field, ok := headerFields[normalizeHeader(name)]
        if !ok {
            continue
        }
        if _, seen := index[field]; !seen {
            index[field] = i
        }
    }

    var missing []string
    for _, field := range required {
        if _, ok := index[field]; !ok {
            missing = append(missing, field)
        }
    }
    if len(missing) > 0 {
        return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
    }

    return &columnMap{index: index}, nil
}

func (c *columnMap) toRecord(row []string) models.PincodeRecord {
    var record models.PincodeRecord
    record.OfficeName = c.value(row, "OfficeName")
    record.Pincode = c.value(row, "Pincode")
    record.OfficeType = c.value(row, "OfficeType")
    record.DeliveryStatus = c.value(row, "DeliveryStatus")
    record.DivisionName = c.value(row, "DivisionName")
    record.RegionName = c.value(row, "RegionName")
    record.CircleName = c.value(row, "CircleName")
    record.Taluk = c.value(row, "Taluk")
    record.District = c.value(row, "District")
    record.State = c.value(row, "State")
    record.Telephone = c.value(row, "Telephone")
    record.RelatedSuboffice = c.value(row, "RelatedSuboffice")
    record.RelatedHeadoffice = c.value(row, "RelatedHeadoffice")
    return record
}

func (c *columnMap) value(row []string, field string) string {
    i, ok := c.index[field]
    if !ok || i >= len(row) {
        return ""
    }
    return strings.TrimSpace(row[i])
}

// fieldPointer gives cleaning rules addressable access to a record field.
func fieldPointer(record *models.PincodeRecord, field string) *string {
    switch field {
    case "OfficeName":
        return &record.OfficeName
    case "Pincode":
        return &record.Pincode
    case "OfficeType":
        return &record.OfficeType
    case "DeliveryStatus":
        return &record.DeliveryStatus
    case "DivisionName":
        return &record.DivisionName
    case "RegionName":
        return &record.RegionName
    case "CircleName":
        return &record.CircleName
    case "Taluk":
        return &record.Taluk
    case "District":
        return &record.District
    case "State":
        return &record.State
    case "Telephone":
        return &record.Telephone
    case "RelatedSuboffice":
        return &record.RelatedSuboffice
    case "RelatedHeadoffice":
        return &record.RelatedHeadoffice
    }
    return nil
}
