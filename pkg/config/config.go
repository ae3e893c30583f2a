package config

import (
	"bytes"
	"encoding/json"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/nikogura/cvgen/pkg/fileutil"
	"github.com/pkg/errors"
)

// DefaultFile is read from the working directory when no config path is given.
const DefaultFile = ".cvgen.json"

// Environment variables that override file settings.
const (
	EnvContent     = "CVGEN_CONTENT"
	EnvOutputDir   = "CVGEN_OUTPUT_DIR"
	EnvEngine      = "CVGEN_ENGINE"
	EnvConcurrency = "CVGEN_CONCURRENCY"
	EnvChromePath  = "CVGEN_CHROME_PATH"
	EnvMarkdown    = "CVGEN_MARKDOWN"
)

// ErrInvalidConfig is wrapped by every configuration error.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the application configuration.
type Config struct {
	ContentPath string       `json:"content_path" validate:"required"`
	OutputDir   string       `json:"output_dir" validate:"required"`
	Engine      string       `json:"engine" validate:"oneof=pdf pandoc html"`
	Concurrency int          `json:"concurrency" validate:"min=1,max=32"`
	Timeout     Duration     `json:"timeout" validate:"gt=0"`
	Markdown    bool         `json:"markdown"`
	Chrome      ChromeConfig `json:"chrome"`
	Pandoc      PandocConfig `json:"pandoc"`
}

// ChromeConfig holds headless Chrome settings.
type ChromeConfig struct {
	ExecPath string `json:"exec_path,omitempty"`
}

// PandocConfig holds pandoc-related configuration.
type PandocConfig struct {
	Binary    string `json:"binary" validate:"required"`
	PDFEngine string `json:"pdf_engine" validate:"required"`
}

// Duration is a time.Duration written as a string such as "5m" in config files.
type Duration time.Duration

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() (data []byte, err error) {
	data, err = json.Marshal(time.Duration(d).String())
	return data, err
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) (err error) {
	var text string
	err = json.Unmarshal(data, &text)
	if err != nil {
		err = errors.Wrap(err, "duration must be a string like \"5m\"")
		return err
	}

	var parsed time.Duration
	parsed, err = time.ParseDuration(text)
	if err != nil {
		err = errors.Wrapf(err, "invalid duration %q", text)
		return err
	}

	*d = Duration(parsed)
	return err
}

// Defaults returns the configuration used when nothing is set.
func Defaults() (cfg Config) {
	cfg = Config{
		ContentPath: "content.json",
		OutputDir:   ".",
		Engine:      "pdf",
		Concurrency: 1,
		Timeout:     Duration(5 * time.Minute),
		Pandoc: PandocConfig{
			Binary:    "pandoc",
			PDFEngine: "weasyprint",
		},
	}
	return cfg
}

// Load reads configuration from file with environment variable overrides.
// An explicit configPath must exist; otherwise DefaultFile is used when present.
func Load(configPath string) (cfg Config, err error) {
	cfg = Defaults()

	path := configPath
	if path == "" && fileutil.FileExists(DefaultFile) {
		path = DefaultFile
	}

	if path != "" {
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				err = errors.Wrapf(ErrInvalidConfig, "config file not found: %s", path)
				return cfg, err
			}
			err = errors.Wrapf(err, "failed to read config file: %s", path)
			return cfg, err
		}

		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
		if err != nil {
			err = errors.Wrapf(ErrInvalidConfig, "failed to parse config file %s: %v", path, err)
			return cfg, err
		}
	}

	err = cfg.applyEnv()
	if err != nil {
		return cfg, err
	}

	cfg.Normalize()

	err = cfg.Validate()
	if err != nil {
		return cfg, err
	}

	return cfg, err
}

func (c *Config) applyEnv() (err error) {
	if v := os.Getenv(EnvContent); v != "" {
		c.ContentPath = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv(EnvEngine); v != "" {
		c.Engine = v
	}
	if v := os.Getenv(EnvChromePath); v != "" {
		c.Chrome.ExecPath = v
	}
	if v := os.Getenv(EnvMarkdown); v != "" {
		var on bool
		on, err = strconv.ParseBool(v)
		if err != nil {
			err = errors.Wrapf(ErrInvalidConfig, "%s must be a boolean, got %q", EnvMarkdown, v)
			return err
		}
		c.Markdown = on
	}
	if v := os.Getenv(EnvConcurrency); v != "" {
		var n int
		n, err = strconv.Atoi(v)
		if err != nil {
			err = errors.Wrapf(ErrInvalidConfig, "%s must be an integer, got %q", EnvConcurrency, v)
			return err
		}
		c.Concurrency = n
	}
	return err
}

// Normalize puts case-insensitive settings into their canonical form.
func (c *Config) Normalize() {
	c.Engine = strings.ToLower(strings.TrimSpace(c.Engine))
}

//nolint:gochecknoglobals // validator caches struct metadata and is safe for concurrent use
var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() (v *validator.Validate) {
	v = validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() (err error) {
	err = validate.Struct(c)
	if err == nil {
		return err
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		err = errors.Wrapf(ErrInvalidConfig, "%v", err)
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	err = errors.Wrap(ErrInvalidConfig, strings.Join(msgs, "; "))
	return err
}

func describe(fe validator.FieldError) (msg string) {
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		msg = field + " is required"
	case "oneof":
		msg = field + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		msg = field + " must be at least " + fe.Param()
	case "gt":
		msg = field + " must be greater than " + fe.Param()
	case "max":
		msg = field + " must be at most " + fe.Param()
	default:
		msg = field + " failed " + fe.Tag() + " check"
	}
	return msg
}

// InitConfig writes the default configuration to path. An existing file is
// only replaced when force is set.
func InitConfig(path string, force bool) (err error) {
	if path == "" {
		path = DefaultFile
	}

	if !force && fileutil.FileExists(path) {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	var data []byte
	data, err = json.MarshalIndent(Defaults(), "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = fileutil.WriteAtomic(path, append(data, '\n'), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}
