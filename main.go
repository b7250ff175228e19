package main

import (
    "context"
    "encoding/json"
    "log"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/gorilla/mux"
    "github.com/rs/cors"

    "github.com/4akhilkumar/AllIndiaPincode/config"
    "github.com/4akhilkumar/AllIndiaPincode/dataset"
    "github.com/4akhilkumar/AllIndiaPincode/handlers"
    "github.com/4akhilkumar/AllIndiaPincode/middleware"
)

type HealthResponse struct {
    Status         string `json:"status"`
    DatasetStatus  string `json:"dataset_status"`
    DatasetDetails struct {
        File        string `json:"file"`
        PostOffices int    `json:"post_offices"`
        Pincodes    int    `json:"pincodes"`
        LoadedAt    string `json:"loaded_at,omitempty"`
    } `json:"dataset_details"`
    Error string `json:"error,omitempty"`
}

func healthCheck(ds *dataset.Dataset) http.HandlerFunc {
    return func(w http.ResponseWriter, r *http.Request) {
        response := HealthResponse{
            Status: "ok",
        }

        // Check the loaded dataset
        if ds == nil {
            response.Status = "error"
            response.DatasetStatus = "not_loaded"
            response.Error = "Pincode dataset not loaded"
        } else {
            response.DatasetStatus = "loaded"
            response.DatasetDetails.File = ds.File()
            response.DatasetDetails.PostOffices = ds.Records()
            response.DatasetDetails.Pincodes = ds.Pincodes()
            response.DatasetDetails.LoadedAt = ds.LoadedAt().Format(time.RFC3339)
        }

        w.Header().Set("Content-Type", "application/json")
        json.NewEncoder(w).Encode(response)
    }
}

func main() {
    startTime := time.Now()
    log.Printf("Starting server initialization at %s", startTime.Format(time.RFC3339))

    // Load environment variables first
    if err := config.LoadEnv(); err != nil {
        log.Printf("Warning: Error loading .env file: %v", err)
    }

    cfg := config.GetConfig()
    config.InitLogging(cfg)

    // Load the pincode dataset; the service cannot run without it
    log.Println("Initializing pincode dataset...")
    ds, err := dataset.Load(cfg)
    if err != nil {
        log.Fatalf("Failed to load pincode dataset: %v", err)
    }
    log.Println("Pincode dataset initialized successfully")

    r := mux.NewRouter()

    // CORS configuration for a read-only API
    corsHandler := cors.New(cors.Options{
        AllowedOrigins: cfg.ALLOWED_ORIGINS,
        AllowedMethods: []string{
            "GET", "OPTIONS",
        },
        AllowedHeaders: []string{
            "Accept",
            "Content-Type",
            "X-Requested-With",
            "Origin",
        },
        ExposedHeaders: []string{
            "Content-Length",
            "Content-Type",
        },
        AllowCredentials: false,
        MaxAge:           86400,
    })

    // Apply middlewares in correct order
    r.Use(corsHandler.Handler)
    r.Use(middleware.RecoveryMiddleware)
    r.Use(middleware.LoggingMiddleware)
    r.Use(middleware.CompressHandler)

    // API routes
    registerRoutes(r, ds)
    log.Println("Routes registered successfully")

    // Health check endpoint
    r.HandleFunc("/api/v1/health/detailed", healthCheck(ds)).Methods("GET")

    // Create server with optimized timeouts
    srv := &http.Server{
        Handler:           r,
        Addr:              ":" + cfg.RUN_PORT,
        WriteTimeout:      15 * time.Second,
        ReadTimeout:       15 * time.Second,
        IdleTimeout:       60 * time.Second,
        ReadHeaderTimeout: 5 * time.Second,
        MaxHeaderBytes:    1 << 20,
    }

    // Create error channel for server errors
    serverErrors := make(chan error, 1)

    // Start server in a goroutine
    go func() {
        log.Printf("Starting server on port %s...", cfg.RUN_PORT)
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            log.Printf("Server error: %v", err)
            serverErrors <- err
        }
    }()

    // Wait for server to start
    time.Sleep(1 * time.Second)
    log.Printf("Server is running at http://localhost:%s", cfg.RUN_PORT)
    log.Printf("Pincode lookup endpoint: http://localhost:%s/api/v1/?pincode=110001", cfg.RUN_PORT)
    log.Printf("Health check endpoint: http://localhost:%s/api/v1/health", cfg.RUN_PORT)

    // Handle graceful shutdown
    stop := make(chan os.Signal, 1)
    signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

    // Wait for shutdown signal or server error
    select {
    case <-stop:
        log.Println("Shutdown signal received")
    case err := <-serverErrors:
        log.Printf("Server error received: %v", err)
    }

    log.Println("Shutting down server...")
    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    if err := srv.Shutdown(ctx); err != nil {
        log.Printf("Error during server shutdown: %v", err)
    } else {
        log.Println("Server shutdown completed successfully")
    }
}

// registerRoutes mounts the API on the root router with full paths. On a
// PathPrefix subrouter, gorilla/mux drops a route's method mismatch once a
// sibling route fails its path match, turning 405 responses into 404s.
func registerRoutes(r *mux.Router, ds *dataset.Dataset) {
    pincodes := handlers.NewPincodeHandler(ds)

    // Pincode lookup is the root of the API
    r.HandleFunc("/api/v1/", pincodes.LookupPincode).Methods("GET", "OPTIONS")
    r.HandleFunc("/api/v1/pincode/stats", pincodes.GetPincodeStats).Methods("GET")

    // Health check
    r.HandleFunc("/api/v1/health", func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusOK)
        w.Write([]byte("OK"))
    }).Methods("GET")
}
