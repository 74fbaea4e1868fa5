// Package config loads CLI and server settings from .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultInput  = "old training system.xlsx"
	DefaultOutput = "excel_analysis_report.json"
	DefaultAddr   = ":8080"
)

// Config holds settings shared by the CLI and the HTTP server.
type Config struct {
	Input              string
	Output             string
	Addr               string
	LogLevel           string
	Parallelism        int
	IsolateSheetErrors bool
	NumericSummary     bool
	DuplicateSheets    string
	MaxUploadBytes     int64
}

// Load reads the given .env files (".env" when none are given), then the
// environment. Missing .env files are ignored; variables already set in the
// environment take precedence over file values.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	cfg := Config{
		Input:           getEnv("EXPROFILE_INPUT", DefaultInput),
		Output:          getEnv("EXPROFILE_OUTPUT", DefaultOutput),
		Addr:            getEnv("EXPROFILE_ADDR", DefaultAddr),
		LogLevel:        getEnv("LOG_LEVEL", "INFO"),
		DuplicateSheets: strings.ToLower(getEnv("EXPROFILE_DUPLICATE_SHEETS", "overwrite")),
	}

	var err error
	if cfg.Parallelism, err = getEnvInt("EXPROFILE_PARALLELISM", 1); err != nil {
		return Config{}, err
	}
	if cfg.IsolateSheetErrors, err = getEnvBool("EXPROFILE_ISOLATE_SHEET_ERRORS", false); err != nil {
		return Config{}, err
	}
	if cfg.NumericSummary, err = getEnvBool("EXPROFILE_NUMERIC_SUMMARY", false); err != nil {
		return Config{}, err
	}
	maxUpload, err := getEnvInt("EXPROFILE_MAX_UPLOAD_MB", 50)
	if err != nil {
		return Config{}, err
	}
	cfg.MaxUploadBytes = int64(maxUpload) << 20

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}
