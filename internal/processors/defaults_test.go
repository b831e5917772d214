package processors

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/custodia-labs/doccat/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/doccat/internal/core/domain"
	"github.com/custodia-labs/doccat/internal/processors/html"
	"github.com/custodia-labs/doccat/internal/processors/text"
)

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

func TestRegisterDefaults(t *testing.T) {
	r := newDefaultRegistry()

	if !r.Has("text") {
		t.Error("expected text processor to be registered")
	}
	if !r.Has("html") {
		t.Error("expected html processor to be registered")
	}
}

func TestBuildText_Defaults(t *testing.T) {
	p, err := buildText(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tp, ok := p.(*text.Processor)
	if !ok {
		t.Fatalf("expected *text.Processor, got %T", p)
	}
	if tp.Delay() != text.DefaultDelay {
		t.Errorf("expected default delay, got %v", tp.Delay())
	}
}

func TestBuildHTML_DelayFormats(t *testing.T) {
	tests := []struct {
		name  string
		delay any
		want  time.Duration
	}{
		{"duration string", "15ms", 15 * time.Millisecond},
		{"toml integer", int64(30), 30 * time.Millisecond},
		{"int", 0, 0},
		{"float", float64(5), 5 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := buildHTML(map[string]any{"delay": tt.delay})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			hp, ok := p.(*html.Processor)
			if !ok {
				t.Fatalf("expected *html.Processor, got %T", p)
			}
			if hp.Delay() != tt.want {
				t.Errorf("expected delay %v, got %v", tt.want, hp.Delay())
			}
		})
	}
}

func TestBuildText_InvalidDelay(t *testing.T) {
	_, err := buildText(map[string]any{"delay": "eventually"})
	if err == nil {
		t.Error("expected error for invalid delay")
	}
}

func TestFromConfig_DefaultEnabled(t *testing.T) {
	store := memory.NewConfigStore()

	ps, err := FromConfig(newDefaultRegistry(), store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ps) != 2 {
		t.Fatalf("expected 2 processors, got %d", len(ps))
	}
	if ps[0].Name() != text.Name || ps[1].Name() != html.Name {
		t.Errorf("unexpected processors: %s, %s", ps[0].Name(), ps[1].Name())
	}
}

func TestFromConfig_EnabledOrderAndDelay(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		"processors.enabled":    []any{"html", "text", "html"},
		"processors.html.delay": "1ms",
		"processors.text.delay": int64(0),
	})

	ps, err := FromConfig(newDefaultRegistry(), store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ps) != 3 {
		t.Fatalf("expected 3 processors, got %d", len(ps))
	}

	names := []string{ps[0].Name(), ps[1].Name(), ps[2].Name()}
	want := []string{html.Name, text.Name, html.Name}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("expected %s at %d, got %s", want[i], i, names[i])
		}
	}

	if d := ps[0].(*html.Processor).Delay(); d != time.Millisecond {
		t.Errorf("expected html delay 1ms, got %v", d)
	}
	if d := ps[1].(*text.Processor).Delay(); d != 0 {
		t.Errorf("expected text delay 0, got %v", d)
	}
}

func TestFromConfig_ExplicitlyEmpty(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		"processors.enabled": []any{},
	})

	ps, err := FromConfig(newDefaultRegistry(), store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ps) != 0 {
		t.Errorf("expected no processors, got %d", len(ps))
	}
}

func TestFromConfig_UnknownProcessor(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		"processors.enabled": []string{"text", "pdf"},
	})

	_, err := FromConfig(newDefaultRegistry(), store)
	if !errors.Is(err, domain.ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestBuildText_NegativeDelay(t *testing.T) {
	_, err := buildText(map[string]any{"delay": "-1s"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFromConfig_SingleName(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		EnabledKey: "text",
	})

	ps, err := FromConfig(newDefaultRegistry(), store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ps) != 1 {
		t.Fatalf("expected 1 processor, got %d", len(ps))
	}
	if ps[0].Name() != text.Name {
		t.Errorf("expected %s, got %s", text.Name, ps[0].Name())
	}
}

func TestFromConfig_EnabledNotAList(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		EnabledKey: 3,
	})

	_, err := FromConfig(newDefaultRegistry(), store)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFromConfig_NegativeDelay(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		EnabledKey:              []string{"text"},
		"processors.text.delay": "-1s",
	})

	_, err := FromConfig(newDefaultRegistry(), store)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFromConfig_InvalidDelay(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		EnabledKey:              []string{"html"},
		"processors.html.delay": "whenever",
	})

	_, err := FromConfig(newDefaultRegistry(), store)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "processors.html.delay") {
		t.Errorf("expected key in error, got %q", err.Error())
	}
}
