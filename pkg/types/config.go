package types

import "time"

// ReviewConfig holds settings for paging through records during review.
type ReviewConfig struct {
	// BatchSize is the number of records per page (default 20).
	BatchSize int `json:"batch_size" yaml:"batch_size" mapstructure:"batch_size"`
}

// ExportFormat selects the thesaurus output format.
type ExportFormat string

const (
	ExportTXT  ExportFormat = "txt"
	ExportXLSX ExportFormat = "xlsx"
)

// ExportConfig holds settings for writing the validated thesaurus.
type ExportConfig struct {
	// Output is the destination path (default "tesauro_validado.txt").
	Output string `json:"output" yaml:"output" mapstructure:"output"`

	// Format selects the output format: txt or xlsx.
	Format ExportFormat `json:"format" yaml:"format" mapstructure:"format"`
}

// ServerConfig holds settings for the HTTP review API.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// MaxUploadBytes caps the size of an uploaded term list (default 10 MiB).
	MaxUploadBytes int64 `json:"max_upload_bytes" yaml:"max_upload_bytes" mapstructure:"max_upload_bytes"`

	// SessionTTL is how long a review session is kept after it is opened
	// (default 24h). Expired sessions are dropped when a new one is opened.
	SessionTTL time.Duration `json:"session_ttl" yaml:"session_ttl" mapstructure:"session_ttl"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn, or error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`
}

// Config groups all settings read from thesaurus-engine.yaml.
type Config struct {
	Review ReviewConfig `json:"review" yaml:"review" mapstructure:"review"`
	Export ExportConfig `json:"export" yaml:"export" mapstructure:"export"`
	Server ServerConfig `json:"server" yaml:"server" mapstructure:"server"`
	Log    LogConfig    `json:"log" yaml:"log" mapstructure:"log"`
}
