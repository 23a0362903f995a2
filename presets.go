package kinex

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Presets maps easing preset names to curves. Engine presets shadow the
// built-in names.
type Presets map[string]Curve

// presetFile is the top-level YAML structure of a presets file.
type presetFile struct {
	Curves map[string]presetEntry `yaml:"curves"`
}

// presetEntry is either a control tuple or the name of another preset.
type presetEntry struct {
	curve Curve
}

func (e *presetEntry) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var name string
		if err := value.Decode(&name); err != nil {
			return err
		}
		e.curve = Named(name)
		return nil
	case yaml.SequenceNode:
		var points []float64
		if err := value.Decode(&points); err != nil {
			return err
		}
		if len(points) != 4 {
			return fmt.Errorf("line %d: bezier needs 4 control values, got %d", value.Line, len(points))
		}
		e.curve = Bezier{points[0], points[1], points[2], points[3]}
		return nil
	default:
		return fmt.Errorf("line %d: curve must be a name or a list of 4 numbers", value.Line)
	}
}

// LoadPresets reads easing presets from YAML of the form
//
//	curves:
//	  standard: [0.4, 0, 0.2, 1]
//	  settle: OutBack
//
// A sequence is a cubic Bézier control tuple; a scalar names another preset.
func LoadPresets(r io.Reader) (Presets, error) {
	var f presetFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Presets{}, nil
		}
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	p := make(Presets, len(f.Curves))
	for name, e := range f.Curves {
		if n, ok := e.curve.(Named); ok && string(n) == name {
			return nil, fmt.Errorf("parse presets: curve %q refers to itself", name)
		}
		p[name] = e.curve
	}
	return p, nil
}
