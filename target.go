package kinex

import (
	"errors"
	"fmt"
	"maps"
	"strconv"
)

var (
	// ErrNilTarget is returned when a tween is requested without a target.
	ErrNilTarget = errors.New("nil target")
	// ErrMissingProperty is returned when a plain object has no value for a
	// property that needs a starting value.
	ErrMissingProperty = errors.New("property does not exist on the target")
	// ErrUnsetStyle is returned when a styling surface has no value for a
	// property that needs a starting value.
	ErrUnsetStyle = errors.New("starting value is not set")
)

// Target is something whose properties can be animated. Implementations must
// be comparable (pointer types) because the Engine keys tweens by target
// identity.
//
// The variants are [Object], [Style] and [Viewport].
type Target interface {
	// Property returns the current value of name, or an error when there
	// is no usable value to start from.
	Property(name string) (any, error)
	// SetProperty writes a formatted value.
	SetProperty(name string, v any)
}

// --- Object ---

// Object is a plain string-keyed property bag. Values are stored exactly as
// written: numbers stay numbers and unit strings stay strings.
type Object struct {
	values map[string]any
}

// NewObject returns an Object holding a copy of values.
func NewObject(values map[string]any) *Object {
	o := &Object{values: make(map[string]any, len(values))}
	maps.Copy(o.values, values)
	return o
}

// Property implements Target.
func (o *Object) Property(name string) (any, error) {
	v, ok := o.values[name]
	if !ok {
		return nil, fmt.Errorf("property %q: %w", name, ErrMissingProperty)
	}
	return v, nil
}

// SetProperty implements Target.
func (o *Object) SetProperty(name string, v any) {
	if o.values == nil {
		o.values = make(map[string]any)
	}
	o.values[name] = v
}

// Get returns the value of name, or nil when it is not set.
func (o *Object) Get(name string) any {
	return o.values[name]
}

// Values returns a copy of all properties.
func (o *Object) Values() map[string]any {
	return maps.Clone(o.values)
}

// --- Style ---

// Style is a styling surface of a visual element: every value is a string,
// usually unit suffixed ("120px", "0.5"), and the empty string means unset.
type Style struct {
	values map[string]string
}

// NewStyle returns an empty styling surface.
func NewStyle() *Style {
	return &Style{values: make(map[string]string)}
}

// Get returns the value of name, or "" when unset.
func (s *Style) Get(name string) string {
	return s.values[name]
}

// Set assigns a value. Setting "" unsets name.
func (s *Style) Set(name, value string) {
	if value == "" {
		delete(s.values, name)
		return
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.values[name] = value
}

// Property implements Target.
func (s *Style) Property(name string) (any, error) {
	v := s.values[name]
	if v == "" {
		return nil, fmt.Errorf("style %q: %w", name, ErrUnsetStyle)
	}
	return v, nil
}

// SetProperty implements Target. Numbers are stored in their shortest
// decimal form.
func (s *Style) SetProperty(name string, v any) {
	if m, ok := numeric(v); ok {
		s.Set(name, strconv.FormatFloat(m, 'f', -1, 64))
		return
	}
	if t, ok := text(v); ok {
		s.Set(name, t)
		return
	}
	s.Set(name, fmt.Sprint(v))
}

// --- Viewport ---

// Scroller is the host's scroll control for the global viewport.
type Scroller interface {
	ScrollPosition() (x, y float64)
	ScrollTo(x, y float64)
}

// Viewport is the global viewport. The scroll offsets "scrollX" and
// "scrollY" go through its Scroller; every other property behaves as on a
// plain Object.
type Viewport struct {
	scroller Scroller
	props    Object
}

// NewViewport returns a viewport target that scrolls through s. It panics
// if s is nil.
func NewViewport(s Scroller) *Viewport {
	if s == nil {
		panic("kinex: NewViewport with nil Scroller")
	}
	return &Viewport{scroller: s}
}

// Property implements Target.
func (v *Viewport) Property(name string) (any, error) {
	switch name {
	case "scrollX":
		x, _ := v.scroller.ScrollPosition()
		return x, nil
	case "scrollY":
		_, y := v.scroller.ScrollPosition()
		return y, nil
	}
	return v.props.Property(name)
}

// SetProperty implements Target. Scroll writes keep the other axis where it
// is.
func (v *Viewport) SetProperty(name string, val any) {
	switch name {
	case "scrollX":
		_, y := v.scroller.ScrollPosition()
		v.scroller.ScrollTo(ParseValue(val), y)
	case "scrollY":
		x, _ := v.scroller.ScrollPosition()
		v.scroller.ScrollTo(x, ParseValue(val))
	default:
		v.props.SetProperty(name, val)
	}
}
