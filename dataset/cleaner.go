package dataset

import (
    "fmt"
    "regexp"
    "strings"
    "unicode"
    "unicode/utf8"

    "golang.org/x/text/cases"
    "golang.org/x/text/language"

    "github.com/4akhilkumar/AllIndiaPincode/models"
)

// cleaner applies the configured cleaning rules to each record before it is
// indexed. Regex rules strip noise from a field (the raw file marks some
// office names with trailing asterisks), format rules normalize letter case.
// Regex rules run before format rules.
type cleaner struct {
    regex  map[string]*regexp.Regexp
    format map[string]func(string) string
}

func newCleaner(regexRules, formatRules map[string]string) (*cleaner, error) {
    c := &cleaner{
        regex:  make(map[string]*regexp.Regexp),
        format: make(map[string]func(string) string),
    }

    for field, pattern := range regexRules {
        if fieldPointer(new(models.PincodeRecord), field) == nil {
            return nil, fmt.Errorf("regex rule references unknown field %q", field)
        }
        re, err := regexp.Compile(pattern)
        if err != nil {
            return nil, fmt.Errorf("invalid regex rule for field %s: %v", field, err)
        }
        c.regex[field] = re
    }

    title := cases.Title(language.English)
    formats := map[string]func(string) string{
        "Title":      title.String,
        "Upper":      strings.ToUpper,
        "Lower":      strings.ToLower,
        "Capitalize": capitalize,
    }
    for field, name := range formatRules {
        if fieldPointer(new(models.PincodeRecord), field) == nil {
            return nil, fmt.Errorf("format rule references unknown field %q", field)
        }
        format, ok := formats[name]
        if !ok {
            return nil, fmt.Errorf("unknown format rule %q for field %s", name, field)
        }
        c.format[field] = format
    }

    return c, nil
}

func (c *cleaner) apply(record *models.PincodeRecord) {
    for field, re := range c.regex {
        p := fieldPointer(record, field)
        *p = strings.TrimSpace(re.ReplaceAllString(*p, ""))
    }
    for field, format := range c.format {
        p := fieldPointer(record, field)
        *p = format(*p)
    }
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
    if s == "" {
        return s
    }
    lower := strings.ToLower(s)
    r, size := utf8.DecodeRuneInString(lower)
    return string(unicode.ToUpper(r)) + lower[size:]
}
