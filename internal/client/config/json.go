package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Timeouts are
// given in whole seconds; zero values leave the current Config untouched so a
// partial file only overrides what it names.
type JsonConfig struct {
	ServerEndpointURL     string `json:"server_endpoint_url"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
	DatabasePath          string `json:"database_path"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags (flagx.JsonConfigFlags); when absent,
// nothing is loaded. Read or unmarshal errors panic, as the user explicitly
// asked for the file.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointURL != "" {
		cfg.ServerEndpointURL = jc.ServerEndpointURL
	}
	if jc.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSeconds) * time.Second
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
