package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/randomairborne/google-classroom/pkg/classroom"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Output formats understood by the schema checker.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
)

type Config struct {
	Env string

	Classroom   ClassroomConfig
	Log         LogConfig
	Metrics     MetricsConfig
	Export      ExportConfig
	SchemaCheck SchemaCheckConfig
}

// ClassroomConfig holds the informational API coordinates.
type ClassroomConfig struct {
	Endpoint   string
	APIVersion int
}

type LogConfig struct {
	Level  string
	Format string
}

// MetricsConfig toggles codec instrumentation.
type MetricsConfig struct {
	Enabled bool
}

// ExportConfig configures course exports.
type ExportConfig struct {
	PDFTitle string
	// Dir is where relative output paths are written.
	Dir string
}

// SchemaCheckConfig sets CLI defaults that flags may override.
type SchemaCheckConfig struct {
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing explicit config file surfaces as an fs error.
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Classroom = ClassroomConfig{
		Endpoint:   strings.TrimRight(v.GetString("CLASSROOM_ENDPOINT"), "/"),
		APIVersion: v.GetInt("CLASSROOM_API_VERSION"),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Metrics = MetricsConfig{Enabled: v.GetBool("ENABLE_METRICS")}

	cfg.Export = ExportConfig{
		PDFTitle: v.GetString("EXPORT_PDF_TITLE"),
		Dir:      v.GetString("EXPORT_DIR"),
	}

	cfg.SchemaCheck = SchemaCheckConfig{Format: strings.ToLower(v.GetString("SCHEMACHECK_FORMAT"))}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("CLASSROOM_ENDPOINT", classroom.ServiceEndpoint)
	v.SetDefault("CLASSROOM_API_VERSION", classroom.APIVersion)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_METRICS", false)
	v.SetDefault("EXPORT_PDF_TITLE", "Courses")
	v.SetDefault("EXPORT_DIR", ".")
	v.SetDefault("SCHEMACHECK_FORMAT", FormatJSON)
}

func (c *Config) validate() error {
	if c.Classroom.APIVersion <= 0 {
		return fmt.Errorf("CLASSROOM_API_VERSION must be positive, got %d", c.Classroom.APIVersion)
	}
	if err := ValidateFormat(c.SchemaCheck.Format); err != nil {
		return fmt.Errorf("SCHEMACHECK_FORMAT: %w", err)
	}
	return nil
}

// ValidateFormat reports whether format is a known output format.
func ValidateFormat(format string) error {
	switch format {
	case FormatJSON, FormatCSV, FormatPDF:
		return nil
	default:
		return fmt.Errorf("unknown format %q (want json, csv or pdf)", format)
	}
}
