package folio

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/hsayar/folio/content"
	"github.com/hsayar/folio/logging"
)

// EnvPrefix prefixes every environment variable read by LoadConfig. Nested
// keys use a double underscore, e.g. FOLIO_LOG__LEVEL.
const EnvPrefix = "FOLIO_"

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	URL         string `koanf:"url" validate:"required,url"`            // canonical URL (default "http://localhost:3000")
	Addr        string `koanf:"addr" validate:"required"`               // listen address (default ":3000")
	ContentPath string `koanf:"content_path"`                           // portfolio YAML; empty uses the built-in content
	Lang        string `koanf:"lang" validate:"required,oneof=en tr"`   // fallback interface language
	Description string `koanf:"description"`                            // meta description; defaults to the profile headline

	SessionSecret string `koanf:"session_secret" validate:"omitempty,min=16"` // cookie signing key; random per process when empty
	CookieSecure  bool   `koanf:"cookie_secure"`                              // set true for HTTPS

	MetricsEnabled  bool          `koanf:"metrics_enabled"`
	ToggleLimit     int           `koanf:"toggle_limit" validate:"gte=0"`     // theme toggles per IP per ToggleWindow
	ToggleWindow    time.Duration `koanf:"toggle_window" validate:"gte=0"`    // default 1m
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gte=0"` // default 10s

	Log logging.Config `koanf:"log"`
}

func defaults() map[string]any {
	return map[string]any{
		"url":              "http://localhost:3000",
		"addr":             ":3000",
		"content_path":     "",
		"lang":             "en",
		"cookie_secure":    false,
		"metrics_enabled":  false,
		"toggle_limit":     30,
		"toggle_window":    "1m",
		"shutdown_timeout": "10s",
		"log.level":        "info",
		"log.format":       "text",
	}
}

// LoadConfig reads configuration with the following precedence (highest to
// lowest):
//  1. Environment variables (FOLIO_ prefix)
//  2. The YAML file at path, when path is not empty
//  3. Default values
func LoadConfig(path string) (SiteConfig, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return SiteConfig{}, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return SiteConfig{}, fmt.Errorf("config file: %w", err)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return SiteConfig{}, fmt.Errorf("loading config file %q: %w", path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return SiteConfig{}, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg SiteConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SiteConfig{}, err
	}
	return cfg, nil
}

var validate = newValidator()

// newValidator reports fields by their koanf key so messages match the
// names used in files and environment variables.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name, _, _ := strings.Cut(f.Tag.Get("koanf"), ","); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// Validate reports every invalid field at once.
func (c *SiteConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := formatFieldPath(e.Namespace())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, e.Param()))
		case "url":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid URL", field))
		case "min", "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed validation: %s", field, e.Tag()))
		}
	}
	return fmt.Errorf("config validation failed:\n  %s", strings.Join(msgs, "\n  "))
}

// formatFieldPath turns "SiteConfig.log.level" into "log.level".
func formatFieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = strings.ToLower(p)
	}
	return strings.Join(parts, ".")
}

func (c *SiteConfig) setDefaults() {
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimRight(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.Lang == "" {
		c.Lang = "en"
	}
	if c.ToggleLimit == 0 {
		c.ToggleLimit = 30
	}
	if c.ToggleWindow == 0 {
		c.ToggleWindow = time.Minute
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
}

// randomSecret is used when no session secret is configured. Theme
// preferences then do not survive a restart.
func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("folio: session secret: %v", err))
	}
	return hex.EncodeToString(b)
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithViews replaces the default page components. Nil fields keep the
// defaults.
func WithViews(v ViewFuncs) Option {
	return func(a *App) {
		a.Views = v
	}
}

// WithLogger sets the logger used for request and error logging.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithPortfolio serves p instead of loading ContentPath.
func WithPortfolio(p *content.Portfolio) Option {
	return func(a *App) {
		a.portfolio = p
	}
}

// WithClock overrides the time source used for the experience line and the
// footer year.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}
