package kinex

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadPresets(t *testing.T) {
	src := `
curves:
  standard: [0.4, 0, 0.2, 1]
  settle: OutBack
`
	p, err := LoadPresets(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadPresets: %v", err)
	}
	want := Presets{
		"standard": Bezier{0.4, 0, 0.2, 1},
		"settle":   Named("OutBack"),
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("presets mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPresetsEmpty(t *testing.T) {
	p, err := LoadPresets(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadPresets: %v", err)
	}
	if len(p) != 0 {
		t.Errorf("len = %d, want 0", len(p))
	}
}

func TestLoadPresetsErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"short tuple", "curves:\n  bad: [0.1, 0.2, 0.3]\n", "4 control values"},
		{"mapping", "curves:\n  bad: {x: 1}\n", "name or a list"},
		{"self reference", "curves:\n  me: me\n", "refers to itself"},
		{"not yaml", "curves: [\n", "parse presets"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPresets(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestEngineUsesPresets(t *testing.T) {
	p, err := LoadPresets(strings.NewReader("curves:\n  snap: [0, 1, 0, 1]\n"))
	if err != nil {
		t.Fatalf("LoadPresets: %v", err)
	}
	e := NewEngine(Config{Presets: p})
	obj := NewObject(map[string]any{"x": 0})
	if _, err := e.To(obj, 100*ms, Props{}.Add("x", 100), Options{Easing: Named("snap")}); err != nil {
		t.Fatalf("To: %v", err)
	}
	e.Loop().Advance(50 * ms)
	if x := obj.Get("x").(float64); x <= 50 {
		t.Errorf("x at 50%% = %v, want ahead of linear", x)
	}
}
