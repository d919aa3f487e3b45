package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/gophnotes/internal/flagx"
	"github.com/dmitrijs2005/gophnotes/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk DTO for Config. Durations use timex.Duration so
// both "5s" and integer nanoseconds are accepted. Empty fields leave the
// current value untouched.
type FileConfig struct {
	EndpointAddr    string          `json:"endpoint_addr" yaml:"endpoint_addr"`
	DatabaseDSN     string          `json:"database_dsn" yaml:"database_dsn"`
	LogLevel        string          `json:"log_level" yaml:"log_level"`
	ShutdownTimeout *timex.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// parseFile loads configuration values from the file passed via -c or
// -config. YAML is used for .yaml and .yml files, JSON otherwise. If no file
// is given nothing happens; read or decode errors panic.
func parseFile(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	if fc.EndpointAddr != "" {
		config.EndpointAddr = fc.EndpointAddr
	}
	if fc.DatabaseDSN != "" {
		config.DatabaseDSN = fc.DatabaseDSN
	}
	if fc.LogLevel != "" {
		config.LogLevel = fc.LogLevel
	}
	if fc.ShutdownTimeout != nil {
		config.ShutdownTimeout = fc.ShutdownTimeout.Duration
	}
}
