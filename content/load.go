package content

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed default.yaml
var defaultContent []byte

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the portfolio shipped with the binary.
func Default() (*Portfolio, error) {
	return Parse(defaultContent)
}

// Load reads a portfolio from a YAML file. An empty path loads the embedded
// default.
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Default()
	}
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading content %q: %w", path, err)
	}
	return decode(k)
}

// Parse decodes a portfolio from YAML bytes.
func Parse(b []byte) (*Portfolio, error) {
	m, err := yaml.Parser().Unmarshal(b)
	if err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(m, ""), nil); err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	return decode(k)
}

func decode(k *koanf.Koanf) (*Portfolio, error) {
	var p Portfolio
	if err := k.Unmarshal("", &p); err != nil {
		return nil, fmt.Errorf("decoding content: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the fields the page cannot render without. Placeholder
// links and empty optional fields are valid.
func (p *Portfolio) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}
	return fmt.Errorf("content validation failed:\n  %s", strings.Join(msgs, "\n  "))
}

func formatFieldError(e validator.FieldError) string {
	field := fieldPath(e.Namespace())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "unique":
		return fmt.Sprintf("%s must not repeat %s", field, strings.ToLower(e.Param()))
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}

// fieldPath turns "Portfolio.Projects[1].Title" into "projects[1].title".
func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
