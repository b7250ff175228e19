package config

import (
    "bufio"
    "fmt"
    "log"
    "os"
    "strings"
)

// LoadEnv loads environment variables from a .env file if one can be found.
// The file is optional; all settings have defaults or come from config.json.
func LoadEnv() error {
    // Try multiple possible locations for .env file
    possiblePaths := []string{
        ".env",                    // Current directory
        "../.env",                 // Parent directory
        os.Getenv("PINCODE_ENV"),  // Environment-specified path
    }

    var loadedFile string

    for _, path := range possiblePaths {
        if path == "" {
            continue
        }
        if _, err := os.Stat(path); err == nil {
            loadedFile = path
            log.Printf("Found .env file at: %s", path)
            break
        }
    }

    if loadedFile == "" {
        return nil
    }

    file, err := os.Open(loadedFile)
    if err != nil {
        return fmt.Errorf("error opening .env file: %v", err)
    }
    defer file.Close()

    log.Printf("Loading environment variables from %s", loadedFile)
    scanner := bufio.NewScanner(file)
    for scanner.Scan() {
        line := scanner.Text()
        if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
            continue
        }
        parts := strings.SplitN(line, "=", 2)
        if len(parts) != 2 {
            continue
        }
        key := strings.TrimSpace(parts[0])
        value := strings.TrimSpace(parts[1])
        // Remove quotes if present
        value = strings.Trim(value, `"'`)
        os.Setenv(key, value)
        if !strings.Contains(strings.ToLower(key), "password") && !strings.Contains(strings.ToLower(key), "secret") {
            log.Printf("Set environment variable: %s", key)
        }
    }

    return scanner.Err()
}
