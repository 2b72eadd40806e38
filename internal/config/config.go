package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	SessionSecret   string
	UploadDir       string
	StaticDir       string
	TemplateGlob    string
	SweepInterval   time.Duration
	SweepGrace      time.Duration
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultSessionSecret   = "change-me-in-production"
	defaultUploadDir       = "static/uploads"
	defaultStaticDir       = "web/static"
	defaultTemplateGlob    = "web/templates/*.html"
	defaultSweepInterval   = 10 * time.Minute
	defaultSweepGrace      = time.Hour
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		SessionSecret:   getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		UploadDir:       getString(lookup, "UPLOAD_DIR", defaultUploadDir),
		StaticDir:       getString(lookup, "STATIC_DIR", defaultStaticDir),
		TemplateGlob:    getString(lookup, "TEMPLATE_GLOB", defaultTemplateGlob),
		SweepInterval:   getDuration(lookup, "SWEEP_INTERVAL", defaultSweepInterval),
		SweepGrace:      getDuration(lookup, "SWEEP_GRACE", defaultSweepGrace),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("zoopark", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		sweepIntervalStr   = cfg.SweepInterval.String()
		sweepGraceStr      = cfg.SweepGrace.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session cookies")
	fs.StringVar(&cfg.UploadDir, "uploads", cfg.UploadDir, "Directory for uploaded animal photos")
	fs.StringVar(&cfg.StaticDir, "static", cfg.StaticDir, "Directory with static assets")
	fs.StringVar(&cfg.TemplateGlob, "templates", cfg.TemplateGlob, "Glob pattern for HTML templates")
	fs.StringVar(&sweepIntervalStr, "sweep-interval", sweepIntervalStr, "Interval between orphan photo sweeps")
	fs.StringVar(&sweepGraceStr, "sweep-grace", sweepGraceStr, "Minimum age before an unreferenced photo is removed")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SweepInterval, err = time.ParseDuration(sweepIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid sweep interval: %w", err)
	}

	if cfg.SweepGrace, err = time.ParseDuration(sweepGraceStr); err != nil {
		return nil, fmt.Errorf("invalid sweep grace: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		cfg.SessionSecret = string(content)
	}

	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = defaultSweepInterval
	}

	if cfg.SweepGrace <= 0 {
		cfg.SweepGrace = defaultSweepGrace
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.UploadDir == "" {
		return nil, fmt.Errorf("upload directory must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
