package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"evtxview/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Logging struct {
		Level  string `yaml:"level" mapstructure:"level"`
		Format string `yaml:"format" mapstructure:"format"`
		File   string `yaml:"file" mapstructure:"file"`
	} `yaml:"logging" mapstructure:"logging"`
	Ingest struct {
		Workers int      `yaml:"workers" mapstructure:"workers"`
		Buffer  int      `yaml:"buffer" mapstructure:"buffer"`
		Batch   int      `yaml:"batch" mapstructure:"batch"`
		Follow  bool     `yaml:"follow" mapstructure:"follow"`
		Include []string `yaml:"include" mapstructure:"include"`
	} `yaml:"ingest" mapstructure:"ingest"`
	UI struct {
		Tick         time.Duration `yaml:"tick" mapstructure:"tick"`
		TablePercent int           `yaml:"table_percent" mapstructure:"table_percent"`
		Orientation  string        `yaml:"orientation" mapstructure:"orientation"`
		DetailFormat string        `yaml:"detail_format" mapstructure:"detail_format"`
	} `yaml:"ui" mapstructure:"ui"`
	Filter    Filter `yaml:"filter" mapstructure:"filter"`
	Telemetry struct {
		SentryDSN string `yaml:"sentry_dsn" mapstructure:"sentry_dsn"`
	} `yaml:"telemetry" mapstructure:"telemetry"`
}

// Filter holds predicate seeds applied before the first record arrives
type Filter struct {
	IncludeEventIDs []uint32 `yaml:"include_event_ids" mapstructure:"include_event_ids"`
	ExcludeEventIDs []uint32 `yaml:"exclude_event_ids" mapstructure:"exclude_event_ids"`
	IncludeUsers    []string `yaml:"include_users" mapstructure:"include_users"`
	ExcludeUsers    []string `yaml:"exclude_users" mapstructure:"exclude_users"`
}

// sections lists the top-level keys accepted in the config file
var sections = map[string]bool{
	"logging":   true,
	"ingest":    true,
	"ui":        true,
	"filter":    true,
	"telemetry": true,
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	cfg.Ingest.Workers = DefaultWorkers
	cfg.Ingest.Buffer = DefaultBuffer
	cfg.Ingest.Batch = DefaultBatch
	cfg.Ingest.Include = append([]string(nil), DefaultInclude...)

	cfg.UI.Tick = DefaultTick
	cfg.UI.TablePercent = DefaultTablePercent
	cfg.UI.Orientation = OrientationHorizontal
	cfg.UI.DetailFormat = DetailFormatJSON

	return cfg
}

// Load reads the configuration from path, or from evtxview.yaml when path is empty.
// A missing default file is not an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(EnvFile)

	cfg := DefaultConfig()
	v := newViper(cfg)

	explicit := path != ""
	if !explicit {
		path = FileName
	}

	data, err := os.ReadFile(path)

	switch {
	case err == nil:
		if err := checkSections(data); err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
		}

		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToReadConfig
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return nil, errors.ErrFailedToReadConfig
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// newViper creates a viper instance that knows every key, so env overrides apply
func newViper(cfg *Config) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("ingest.workers", cfg.Ingest.Workers)
	v.SetDefault("ingest.buffer", cfg.Ingest.Buffer)
	v.SetDefault("ingest.batch", cfg.Ingest.Batch)
	v.SetDefault("ingest.follow", cfg.Ingest.Follow)
	v.SetDefault("ingest.include", cfg.Ingest.Include)
	v.SetDefault("ui.tick", cfg.UI.Tick)
	v.SetDefault("ui.table_percent", cfg.UI.TablePercent)
	v.SetDefault("ui.orientation", cfg.UI.Orientation)
	v.SetDefault("ui.detail_format", cfg.UI.DetailFormat)
	v.SetDefault("filter.include_event_ids", []uint32{})
	v.SetDefault("filter.exclude_event_ids", []uint32{})
	v.SetDefault("filter.include_users", []string{})
	v.SetDefault("filter.exclude_users", []string{})
	v.SetDefault("telemetry.sentry_dsn", cfg.Telemetry.SentryDSN)

	return v
}

// checkSections rejects unknown top-level keys, which viper would silently ignore
func checkSections(data []byte) error {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return err
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i < len(doc.Content); i += 2 {
		key := doc.Content[i].Value
		if !sections[key] {
			return fmt.Errorf("%w: '%s' (line %d)", errors.ErrUnknownConfigKey, key, doc.Content[i].Line)
		}
	}

	return nil
}

// normalize lowercases enum-like values
func (c *Config) normalize() {
	c.UI.Orientation = strings.ToLower(strings.TrimSpace(c.UI.Orientation))
	c.UI.DetailFormat = strings.ToLower(strings.TrimSpace(c.UI.DetailFormat))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateIngest(); err != nil {
		return err
	}

	return c.validateUI()
}

// validateIngest validates ingestion settings
func (c *Config) validateIngest() error {
	if c.Ingest.Workers <= 0 {
		return errors.ErrInvalidIngestWorkers
	}

	if c.Ingest.Buffer <= 0 {
		return errors.ErrInvalidIngestBuffer
	}

	if c.Ingest.Batch <= 0 {
		return errors.ErrInvalidIngestBatch
	}

	return nil
}

// validateUI validates presentation settings
func (c *Config) validateUI() error {
	if c.UI.Tick <= 0 {
		return errors.ErrInvalidTick
	}

	if c.UI.TablePercent < MinTablePercent || c.UI.TablePercent > MaxTablePercent {
		return errors.ErrInvalidTablePercent
	}

	switch c.UI.Orientation {
	case OrientationHorizontal, OrientationVertical:
	default:
		return fmt.Errorf("%w: '%s'", errors.ErrInvalidOrientation, c.UI.Orientation)
	}

	switch c.UI.DetailFormat {
	case DetailFormatJSON, DetailFormatYAML:
	default:
		return fmt.Errorf("%w: '%s'", errors.ErrInvalidDetailFormat, c.UI.DetailFormat)
	}

	return nil
}
