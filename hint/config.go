package hint

import (
	"fmt"
	"log/slog"
	"strings"
)

// DefaultSanitizeChars are replaced with spaces in the prefix of an overlaid
// line when Config.SanitizePrefix is set.
const DefaultSanitizeChars = `"'(`

// Decorator wraps padded hint text before it is spliced into a line. Hosts
// use it to mark overlay text for their syntax highlighting.
type Decorator func(text string) string

// Plain returns text unchanged.
func Plain(text string) string { return text }

// Format returns a Decorator applying a single-placeholder template such as
// "{%s}". The template is not checked: it must hold exactly one %s and no
// other verbs. Use ParseFormat for templates that come from users.
func Format(tmpl string) Decorator {
	return func(text string) string {
		return fmt.Sprintf(tmpl, text)
	}
}

// Config controls how a Manager renders hints.
type Config struct {
	// Decorate wraps the padded hint text. Default: Plain.
	Decorate Decorator

	// SanitizePrefix blanks SanitizeChars in the part of each overlaid line
	// left of the hint, so an opening quote or paren there does not leave the
	// line looking unbalanced.
	SanitizePrefix bool
	SanitizeChars  string // default: DefaultSanitizeChars

	// Logger receives debug records. Default: discarded.
	Logger *slog.Logger
}

var defaults = Config{Decorate: Plain}

// Defaults returns the process-wide configuration used by NewRegistry.
func Defaults() Config { return defaults }

// SetDefaults replaces the process-wide configuration and returns the previous
// one. Call it before creating managers; existing managers keep their config.
func SetDefaults(cfg Config) Config {
	prev := defaults
	defaults = cfg
	return prev
}

func normalizeConfig(cfg Config) Config {
	if cfg.Decorate == nil {
		cfg.Decorate = Plain
	}
	if cfg.SanitizeChars == "" {
		cfg.SanitizeChars = DefaultSanitizeChars
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}

// sanitize blanks every rune of chars found in s.
func sanitize(s, chars string) string {
	if !strings.ContainsAny(s, chars) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return ' '
		}
		return r
	}, s)
}
