package dataset

import (
    "encoding/csv"
    "fmt"
    "io"
    "log"
    "os"
    "strings"
    "time"

    "golang.org/x/text/encoding/charmap"
    "golang.org/x/text/transform"

    "github.com/4akhilkumar/AllIndiaPincode/config"
    "github.com/4akhilkumar/AllIndiaPincode/models"
    "github.com/4akhilkumar/AllIndiaPincode/validators"
)

// Dataset is the in-memory pincode directory. It is built once at startup
// and never mutated afterwards, so concurrent lookups need no locking.
type Dataset struct {
    file     string
    loadedAt time.Time

    records   int
    byPincode map[string][]models.PincodeRecord

    stats Stats
}

// Stats summarizes the loaded directory. All counts are fixed at load time.
type Stats struct {
    TotalPincodes    int            `json:"total_pincodes"`
    TotalPostOffices int            `json:"total_post_offices"`
    StateWise        map[string]int `json:"state_wise"`
    OfficeTypeWise   map[string]int `json:"office_type_wise"`
    DeliveryWise     map[string]int `json:"delivery_wise"`
    WithTelephone    int            `json:"with_telephone"`
    WithSuboffice    int            `json:"with_suboffice"`
    WithHeadoffice   int            `json:"with_headoffice"`
}

// Load reads the dataset file named by the configuration and builds the
// pincode index. Any error here means the service cannot start: the dataset
// is a deployment-time dependency, so there is no retry.
func Load(cfg config.Configuration) (*Dataset, error) {
    start := time.Now()
    log.Printf("Loading pincode dataset from %s", cfg.CSV_FILE)

    file, err := os.Open(cfg.CSV_FILE)
    if err != nil {
        return nil, fmt.Errorf("error opening dataset file %s: %v", cfg.CSV_FILE, err)
    }
    defer file.Close()

    decoded, err := decodingReader(file, cfg.CSV_ENCODING)
    if err != nil {
        return nil, err
    }

    reader := csv.NewReader(decoded)
    header, err := reader.Read()
    if err != nil {
        return nil, fmt.Errorf("error reading header of dataset file %s: %v", cfg.CSV_FILE, err)
    }

    columns, err := mapColumns(header, cfg.REQUIRED_COLUMNS)
    if err != nil {
        return nil, fmt.Errorf("dataset file %s: %v", cfg.CSV_FILE, err)
    }

    cleaner, err := newCleaner(cfg.REGEX_RULES, cfg.FORMAT_RULES)
    if err != nil {
        return nil, err
    }

    ds := &Dataset{
        file:      cfg.CSV_FILE,
        byPincode: make(map[string][]models.PincodeRecord),
        stats: Stats{
            StateWise:      make(map[string]int),
            OfficeTypeWise: make(map[string]int),
            DeliveryWise:   make(map[string]int),
        },
    }

    skipped := 0
    for {
        row, err := reader.Read()
        if err == io.EOF {
            break
        }
        if err != nil {
            return nil, fmt.Errorf("error reading dataset file %s: %v", cfg.CSV_FILE, err)
        }

        record := columns.toRecord(row)
        cleaner.apply(&record)

        if validators.ValidatePincode(record.Pincode) != nil {
            skipped++
            continue
        }

        ds.add(record)
    }

    if skipped > 0 {
        log.Printf("Skipped %d rows with invalid pincode values", skipped)
    }
    if ds.records == 0 {
        return nil, fmt.Errorf("dataset file %s contains no valid records", cfg.CSV_FILE)
    }

    ds.stats.TotalPincodes = len(ds.byPincode)
    ds.loadedAt = time.Now()

    log.Printf("%s file loaded: %d post offices across %d pincodes in %v",
        cfg.CSV_FILE, ds.records, len(ds.byPincode), time.Since(start))
    return ds, nil
}

func (ds *Dataset) add(record models.PincodeRecord) {
    ds.byPincode[record.Pincode] = append(ds.byPincode[record.Pincode], record)
    ds.records++

    ds.stats.TotalPostOffices++
    if record.State != "" {
        ds.stats.StateWise[record.State]++
    }
    if record.OfficeType != "" {
        ds.stats.OfficeTypeWise[record.OfficeType]++
    }
    if record.DeliveryStatus != "" {
        ds.stats.DeliveryWise[record.DeliveryStatus]++
    }
    if record.Telephone != "" && record.Telephone != "NA" {
        ds.stats.WithTelephone++
    }
    if record.RelatedSuboffice != "" && record.RelatedSuboffice != "NA" {
        ds.stats.WithSuboffice++
    }
    if record.RelatedHeadoffice != "" && record.RelatedHeadoffice != "NA" {
        ds.stats.WithHeadoffice++
    }
}

// Lookup returns every post office listed under the given pincode, in
// dataset file order. The returned slice is shared and must not be modified.
// A pincode with no entry returns nil.
func (ds *Dataset) Lookup(pincode string) []models.PincodeRecord {
    return ds.byPincode[pincode]
}

// File returns the path the dataset was loaded from.
func (ds *Dataset) File() string {
    return ds.file
}

// LoadedAt returns the time the load completed.
func (ds *Dataset) LoadedAt() time.Time {
    return ds.loadedAt
}

// Records returns the number of post office records loaded.
func (ds *Dataset) Records() int {
    return ds.records
}

// Pincodes returns the number of distinct pincodes loaded.
func (ds *Dataset) Pincodes() int {
    return len(ds.byPincode)
}

// Stats returns the directory statistics computed at load time.
func (ds *Dataset) Stats() Stats {
    return ds.stats
}

func decodingReader(r io.Reader, name string) (io.Reader, error) {
    switch strings.ToLower(strings.TrimSpace(name)) {
    case "", "utf-8", "utf8":
        return r, nil
    case "latin-1", "latin1", "iso-8859-1":
        return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
    case "windows-1252", "cp1252":
        return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
    }
    return nil, fmt.Errorf("unsupported dataset encoding %q", name)
}
