package i18n

import (
	"errors"
	"fmt"
)

// ErrUnknownLocale indicates a configured locale has no loaded catalog.
var ErrUnknownLocale = errors.New("i18n: unknown locale")

// Config carries resolver locale settings, typically loaded from the
// environment through core/config.
type Config struct {
	// DefaultLocale is the active locale new sessions start with.
	DefaultLocale string `env:"I18N_DEFAULT_LOCALE" envDefault:"nn"`
	// FallbackLocale backs keys missing from the active catalog.
	FallbackLocale string `env:"I18N_FALLBACK_LOCALE" envDefault:"nb"`
}

// NewResolverFromConfig wires loaded catalogs into a resolver using the
// configured locale chain. The default locale must have a catalog; the
// fallback is optional and may be empty to disable fallback entirely.
func NewResolverFromConfig(cfg Config, catalogs map[string]*Catalog, opts ...ResolverOption) (*Resolver, error) {
	active, ok := catalogs[cfg.DefaultLocale]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, cfg.DefaultLocale)
	}

	var fallback *Catalog
	if cfg.FallbackLocale != "" && cfg.FallbackLocale != cfg.DefaultLocale {
		fallback, ok = catalogs[cfg.FallbackLocale]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, cfg.FallbackLocale)
		}
	}

	return NewResolver(active, fallback, opts...), nil
}
