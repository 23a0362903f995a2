package kinex

import (
	"fmt"
	"log/slog"
)

// Prop is one requested property and its value: a number, or a unit suffixed
// string such as "120px".
type Prop struct {
	Name  string
	Value any
}

// Props is an ordered list of requested properties. Order is kept in
// snapshots and in the order properties are written.
type Props []Prop

// Add returns ps with name set to v.
func (ps Props) Add(name string, v any) Props {
	return append(ps, Prop{Name: name, Value: v})
}

// collapse keeps the first position of each name and its last value.
func (ps Props) collapse() Props {
	idx := make(map[string]int, len(ps))
	out := make(Props, 0, len(ps))
	for _, p := range ps {
		if i, ok := idx[p.Name]; ok {
			out[i].Value = p.Value
			continue
		}
		idx[p.Name] = len(out)
		out = append(out, p)
	}
	return out
}

// PropertyTween is one animated property of a tween.
type PropertyTween struct {
	Name       string
	Start, End float64
	// Unit is reattached on every write; empty for plain numbers.
	Unit string
}

// At returns the magnitude at eased progress p. Progress outside [0, 1]
// extrapolates linearly.
func (pt PropertyTween) At(p float64) float64 {
	if p == 1 {
		return pt.End
	}
	return pt.Start + (pt.End-pt.Start)*p
}

// Value returns the formatted value at eased progress p.
func (pt PropertyTween) Value(p float64) any {
	return FormatValue(pt.At(p), pt.Unit)
}

// normalize resolves start and end magnitudes for each requested property.
// Starts come from overrides when present and from the target otherwise.
// Properties whose start equals their end are dropped.
func normalize(target Target, props Props, overrides map[string]any, log *slog.Logger) ([]PropertyTween, error) {
	props = props.collapse()
	out := make([]PropertyTween, 0, len(props))
	for _, p := range props {
		start, ok := overrides[p.Name]
		if !ok {
			v, err := target.Property(p.Name)
			if err != nil {
				return nil, fmt.Errorf("starting value: %w", err)
			}
			start = v
		}
		pt := PropertyTween{
			Name:  p.Name,
			Start: parseValue(start, log),
			End:   parseValue(p.Value, log),
			Unit:  UnitOf(p.Value),
		}
		if pt.Start == pt.End {
			log.Debug("property already at end value", "property", p.Name, "value", pt.End)
			continue
		}
		out = append(out, pt)
	}
	return out, nil
}
