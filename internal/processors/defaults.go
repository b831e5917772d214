package processors

import (
	"fmt"
	"time"

	"github.com/custodia-labs/doccat/internal/adapters/driven/config/values"
	"github.com/custodia-labs/doccat/internal/core/domain"
	"github.com/custodia-labs/doccat/internal/core/ports/driven"
	"github.com/custodia-labs/doccat/internal/processors/html"
	"github.com/custodia-labs/doccat/internal/processors/text"
)

// Config keys read by FromConfig.
const (
	EnabledKey  = "processors.enabled"
	keyPrefix   = "processors."
	delayCfgKey = "delay"
)

// DefaultEnabled lists the processors used when the config names none.
var DefaultEnabled = []string{"text", "html"}

// RegisterDefaults registers all built-in processors with the registry.
// Call this during application initialisation to enable standard processors.
func RegisterDefaults(r *Registry) {
	r.Register("text", buildText)
	r.Register("html", buildHTML)
}

// buildText creates a text processor from generic config.
// Supported config keys:
//   - delay (duration string or int milliseconds): simulated cost (default: 100ms)
func buildText(cfg map[string]any) (driven.DocumentProcessor, error) {
	var opts []text.Option

	d, ok, err := getDelayFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("text processor: %w", err)
	}
	if ok {
		opts = append(opts, text.WithDelay(d))
	}

	return text.New(opts...), nil
}

// buildHTML creates an HTML processor from generic config.
// Supported config keys:
//   - delay (duration string or int milliseconds): simulated cost (default: 200ms)
func buildHTML(cfg map[string]any) (driven.DocumentProcessor, error) {
	var opts []html.Option

	d, ok, err := getDelayFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("html processor: %w", err)
	}
	if ok {
		opts = append(opts, html.WithDelay(d))
	}

	return html.New(opts...), nil
}

// FromConfig builds the processors listed under processors.enabled, in order.
// Each processor receives the values under processors.<name>.
// When processors.enabled is absent, DefaultEnabled is used. A single name
// is accepted in place of a list.
func FromConfig(r *Registry, store driven.ConfigStore) ([]driven.DocumentProcessor, error) {
	names := DefaultEnabled
	if v, ok := store.Get(EnabledKey); ok {
		names = store.GetStringSlice(EnabledKey)
		if names == nil {
			return nil, fmt.Errorf("%s: expected a list of names, got %v: %w", EnabledKey, v, domain.ErrInvalidInput)
		}
	}

	result := make([]driven.DocumentProcessor, 0, len(names))
	for _, name := range names {
		cfg := make(map[string]any)
		key := keyPrefix + name + "." + delayCfgKey
		if v, ok := store.Get(key); ok {
			d, ok := store.GetDuration(key)
			if !ok {
				return nil, fmt.Errorf("%s: invalid delay %v: %w", key, v, domain.ErrInvalidInput)
			}
			cfg[delayCfgKey] = d
		}

		p, err := r.Build(name, cfg)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}

// getDelayFromConfig extracts the delay setting from generic config.
// Accepts duration strings and numbers of milliseconds as produced by TOML parsing.
func getDelayFromConfig(cfg map[string]any) (time.Duration, bool, error) {
	val, ok := cfg[delayCfgKey]
	if !ok {
		return 0, false, nil
	}

	d, ok := values.Duration(val)
	if !ok {
		return 0, false, fmt.Errorf("invalid delay %v: %w", val, domain.ErrInvalidInput)
	}
	if d < 0 {
		return 0, false, fmt.Errorf("negative delay %v: %w", d, domain.ErrInvalidInput)
	}
	return d, true, nil
}
