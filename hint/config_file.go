package hint

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrTemplate reports a render template without exactly one %s placeholder.
var ErrTemplate = errors.New("template must contain exactly one %s")

// fileConfig is the YAML shape of a Config.
type fileConfig struct {
	Template       string `yaml:"template"`
	SanitizePrefix bool   `yaml:"sanitize_prefix"`
	SanitizeChars  string `yaml:"sanitize_chars"`
}

// ParseConfig decodes a YAML config:
//
//	template: "{%s}"
//	sanitize_prefix: true
//	sanitize_chars: "\"'("
//
// An empty template keeps the text plain.
func ParseConfig(data []byte) (Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse hint config YAML: %w", err)
	}

	cfg := Config{
		Decorate:       Plain,
		SanitizePrefix: fc.SanitizePrefix,
		SanitizeChars:  fc.SanitizeChars,
	}
	if fc.Template != "" {
		dec, err := ParseFormat(fc.Template)
		if err != nil {
			return Config{}, err
		}
		cfg.Decorate = dec
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML config at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read hint config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseFormat is Format for untrusted templates. It fails with ErrTemplate
// unless tmpl holds exactly one %s and no other verbs ("%%" is allowed).
func ParseFormat(tmpl string) (Decorator, error) {
	if err := checkTemplate(tmpl); err != nil {
		return nil, fmt.Errorf("template %q: %w", tmpl, err)
	}
	return Format(tmpl), nil
}

func checkTemplate(tmpl string) error {
	rest := strings.ReplaceAll(tmpl, "%%", "")
	if strings.Count(rest, "%s") != 1 || strings.Count(rest, "%") != 1 {
		return ErrTemplate
	}
	return nil
}
