package config

import (
    "log"
    "os"

    "github.com/tkanos/gonfig"
)

// Configuration holds every runtime setting for the service. Values are read
// from config.json (or the file named by CONFIG_FILE), then environment
// variables with the same names override individual fields.
type Configuration struct {
    RUN_PORT     string
    CSV_FILE     string
    CSV_ENCODING string

    LOG_FILE         string
    LOG_MAX_SIZE_MB  int
    LOG_MAX_BACKUPS  int
    LOG_MAX_AGE_DAYS int

    ALLOWED_ORIGINS []string

    // Dataset cleaning rules, keyed by PincodeRecord field name.
    REQUIRED_COLUMNS []string
    REGEX_RULES      map[string]string
    FORMAT_RULES     map[string]string
}

func defaultConfiguration() Configuration {
    return Configuration{
        RUN_PORT:     "8000",
        CSV_FILE:     "data/all_india_pincode.csv",
        CSV_ENCODING: "utf-8",

        LOG_FILE:         "logs/pincode_api.log",
        LOG_MAX_SIZE_MB:  5,
        LOG_MAX_BACKUPS:  2,
        LOG_MAX_AGE_DAYS: 28,

        ALLOWED_ORIGINS: []string{"*"},

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
    }
}

// GetConfig returns the effective configuration: built-in defaults, overlaid
// with the config file if one exists, overlaid with environment variables.
func GetConfig() Configuration {
    configuration := defaultConfiguration()

    configFile := getEnvWithDefault("CONFIG_FILE", "config.json")
    if _, err := os.Stat(configFile); err != nil {
        log.Printf("Config file %s not found, using built-in defaults", configFile)
        configFile = ""
    }

    if err := gonfig.GetConf(configFile, &configuration); err != nil {
        log.Printf("Warning: error loading config file %s: %v", configFile, err)
    }

    return configuration
}

func getEnvWithDefault(key, defaultValue string) string {
    if value := os.Getenv(key); value != "" {
        return value
    }
    return defaultValue
}
