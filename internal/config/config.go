// SPDX-License-Identifier: MIT

// Package config loads CLI settings from built-in defaults, an optional YAML
// file, TFIDF_* environment variables and explicit command-line flags, in that
// order of precedence.
package config

import "time"

// EnvPrefix is stripped from environment variables before key mapping:
// TFIDF_OUTPUT_FORMAT -> output.format.
const EnvPrefix = "TFIDF_"

// Config is the full CLI configuration; koanf tags name the keys used by the
// YAML file, TFIDF_* variables and flag overrides.
type Config struct {
	Input     InputConfig     `koanf:"input"`
	Output    OutputConfig    `koanf:"output"`
	Vectorize VectorizeConfig `koanf:"vectorize"`
	Log       LogConfig       `koanf:"log"`
	Server    ServerConfig    `koanf:"server"`
}

// InputConfig selects how documents are read.
// CSVColumn is 1-based; 0 means one document per line. HTML makes every
// source one document holding its visible text.
type InputConfig struct {
	CSVColumn int  `koanf:"csv_column" validate:"min=0"`
	CSVHeader bool `koanf:"csv_header"`
	HTML      bool `koanf:"html"`
}

// OutputConfig controls rendering. Precision -1 prints the shortest exact form.
type OutputConfig struct {
	Format    string `koanf:"format"    validate:"oneof=table json csv"`
	Precision int    `koanf:"precision" validate:"min=-1,max=17"`
	NoColor   bool   `koanf:"no_color"`
}

// VectorizeConfig holds pipeline options. EmptyDocuments is "error" or "zero".
type VectorizeConfig struct {
	EmptyDocuments string `koanf:"empty_documents" validate:"oneof=error zero"`
}

// LogConfig controls diagnostics written to stderr.
type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error disabled"`
	JSON  bool   `koanf:"json"`
}

// ServerConfig configures `tfidf serve`.
// MaxBodyBytes caps the request body; MaxCells caps documents × vocabulary
// (and documents² for similarity), the size of each dense matrix a request
// may allocate.
type ServerConfig struct {
	Addr            string        `koanf:"addr"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"min=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"min=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"min=0"`
	MaxDocuments    int           `koanf:"max_documents"    validate:"min=1"`
	MaxBodyBytes    int64         `koanf:"max_body_bytes"   validate:"min=1"`
	MaxCells        int           `koanf:"max_cells"        validate:"min=1"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			CSVColumn: 0,
			CSVHeader: false,
			HTML:      false,
		},
		Output: OutputConfig{
			Format:    "table",
			Precision: -1,
		},
		Vectorize: VectorizeConfig{
			EmptyDocuments: "error",
		},
		Log: LogConfig{
			Level: "warn",
		},
		Server: ServerConfig{
			Addr:            "127.0.0.1:8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			MaxDocuments:    10000,
			MaxBodyBytes:    8 << 20,
			MaxCells:        4_000_000,
		},
	}
}
