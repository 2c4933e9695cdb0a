package glint

import (
	"fmt"
	"strconv"
	"strings"
)

// FlagKind represents the payload type of a flag
type FlagKind string

const (
	// Core types
	FlagKindString FlagKind = "string"
	FlagKindBool   FlagKind = "bool"
	FlagKindInt    FlagKind = "int"
	FlagKindFloat  FlagKind = "float64"

	// Collection types
	FlagKindStringSlice FlagKind = "[]string"
	FlagKindIntSlice    FlagKind = "[]int"
	FlagKindFloatSlice  FlagKind = "[]float64"
)

// Value is the set of payload types a flag can carry. The kind of a flag
// never changes after creation; only its payload does.
type Value interface {
	int | float64 | bool | string | []int | []float64 | []string
}

// Constraint validates a parsed flag value. On success it returns the
// (possibly identical) value; on failure the error message is surfaced
// verbatim as the constraint violation.
type Constraint[T any] func(T) (T, error)

// OneOf builds a constraint that accepts only members of the given set
func OneOf[T comparable](values ...T) Constraint[T] {
	return func(value T) (T, error) {
		for _, v := range values {
			if value == v {
				return value, nil
			}
		}
		return value, fmt.Errorf("value %v is not one of the allowed values: %v", value, values)
	}
}

// NoneOf builds a constraint that rejects every member of the given set
func NoneOf[T comparable](values ...T) Constraint[T] {
	return func(value T) (T, error) {
		for _, v := range values {
			if value == v {
				return value, fmt.Errorf("value %v is one of the disallowed values: %v", value, values)
			}
		}
		return value, nil
	}
}

// Each lifts a scalar constraint over a list-valued flag. The constraint is
// applied element-wise in order, failing on the first element that fails,
// and the full checked list is returned unchanged on success.
func Each[T any](constraint Constraint[T]) Constraint[[]T] {
	return func(values []T) ([]T, error) {
		for _, v := range values {
			if _, err := constraint(v); err != nil {
				return values, err
			}
		}
		return values, nil
	}
}

// Flag is a typed, optionally constrained command-line flag. Concrete flags
// are created with the per-type constructors (IntFlag, StringSliceFlag, ...)
// and updated immutably during resolution.
type Flag interface {
	// Kind returns the payload type tag of the flag
	Kind() FlagKind
	// Description returns the flag's help description
	Description() string

	update(raw string) (Flag, error)
	payload() any
	defaultText() string
}

// FlagValue is the concrete flag representation for payload type T. It is a
// value type: builder calls and updates return modified copies.
type FlagValue[T Value] struct {
	kind        FlagKind
	val         T
	description string
	parse       func(string) (T, error)
	constraints []Constraint[T]
}

// Flag constructors - one per payload type, each taking a default and a description

// IntFlag creates an integer flag
func IntFlag(def int, description string) FlagValue[int] {
	return FlagValue[int]{kind: FlagKindInt, val: def, description: description, parse: parseInt}
}

// FloatFlag creates a float64 flag
func FloatFlag(def float64, description string) FlagValue[float64] {
	return FlagValue[float64]{kind: FlagKindFloat, val: def, description: description, parse: parseFloat}
}

// BoolFlag creates a boolean flag
func BoolFlag(def bool, description string) FlagValue[bool] {
	return FlagValue[bool]{kind: FlagKindBool, val: def, description: description, parse: parseBool}
}

// StringFlag creates a string flag
func StringFlag(def, description string) FlagValue[string] {
	return FlagValue[string]{kind: FlagKindString, val: def, description: description, parse: parseString}
}

// IntSliceFlag creates an integer list flag. A single --name=1,2,3 token
// sets the whole list.
func IntSliceFlag(def []int, description string) FlagValue[[]int] {
	return FlagValue[[]int]{kind: FlagKindIntSlice, val: def, description: description, parse: listParser(parseInt)}
}

// FloatSliceFlag creates a float64 list flag
func FloatSliceFlag(def []float64, description string) FlagValue[[]float64] {
	return FlagValue[[]float64]{kind: FlagKindFloatSlice, val: def, description: description, parse: listParser(parseFloat)}
}

// StringSliceFlag creates a string list flag
func StringSliceFlag(def []string, description string) FlagValue[[]string] {
	return FlagValue[[]string]{kind: FlagKindStringSlice, val: def, description: description, parse: parseStringSlice}
}

// Constraint attaches a validation constraint to the flag. Constraints run
// in registration order on every update, short-circuiting on first failure.
func (f FlagValue[T]) Constraint(constraint Constraint[T]) FlagValue[T] {
	constraints := make([]Constraint[T], len(f.constraints), len(f.constraints)+1)
	copy(constraints, f.constraints)
	f.constraints = append(constraints, constraint)
	return f
}

// Kind returns the payload type tag of the flag
func (f FlagValue[T]) Kind() FlagKind {
	return f.kind
}

// Description returns the flag's help description
func (f FlagValue[T]) Description() string {
	return f.description
}

// update parses the raw token value, applies constraints in order and
// returns a copy of the flag carrying the new payload.
func (f FlagValue[T]) update(raw string) (Flag, error) {
	value, err := f.parse(raw)
	if err != nil {
		return nil, err
	}
	for _, constraint := range f.constraints {
		value, err = constraint(value)
		if err != nil {
			return nil, constraintViolation{cause: err}
		}
	}
	f.val = value
	return f, nil
}

func (f FlagValue[T]) payload() any {
	return f.val
}

// defaultText formats the current payload for help output. Zero values
// render as empty so help stays uncluttered.
func (f FlagValue[T]) defaultText() string {
	switch v := any(f.val).(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
	case int:
		if v != 0 {
			return strconv.Itoa(v)
		}
	case float64:
		if v != 0 {
			return fmt.Sprintf("%g", v)
		}
	case []string:
		return strings.Join(v, ",")
	case []int:
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, ",")
	case []float64:
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = fmt.Sprintf("%g", n)
		}
		return strings.Join(parts, ",")
	}
	return ""
}

// Value parsers

func parseInt(raw string) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value: %q", raw)
	}
	return value, nil
}

func parseFloat(raw string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float value: %q", raw)
	}
	return value, nil
}

func parseBool(raw string) (bool, error) {
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid boolean value: %q", raw)
	}
	return value, nil
}

func parseString(raw string) (string, error) {
	return raw, nil
}

func parseStringSlice(raw string) ([]string, error) {
	return strings.Split(raw, ","), nil
}

// listParser adapts a scalar parser to a comma-separated list parser
func listParser[T any](parse func(string) (T, error)) func(string) ([]T, error) {
	return func(raw string) ([]T, error) {
		parts := strings.Split(raw, ",")
		values := make([]T, 0, len(parts))
		for _, part := range parts {
			value, err := parse(part)
			if err != nil {
				return nil, err
			}
			values = append(values, value)
		}
		return values, nil
	}
}

// FlagMap maps flag names (without the -- prefix) to their definitions
type FlagMap map[string]Flag

// mergeFlags combines global and command-local flags into a fresh map.
// Local entries override global ones on name collision.
func mergeFlags(global, local FlagMap) FlagMap {
	merged := make(FlagMap, len(global)+len(local))
	for name, flag := range global {
		merged[name] = flag
	}
	for name, flag := range local {
		merged[name] = flag
	}
	return merged
}

// Flags provides typed access to the resolved flag values of a command
// invocation. A lookup succeeds only when the flag exists and its payload
// matches the requested type.
type Flags struct {
	flags FlagMap
}

// Int retrieves an int flag value (safe access)
func (f Flags) Int(name string) (int, bool) {
	return flagPayload[int](f, name)
}

// MustInt retrieves an int flag value with default fallback
func (f Flags) MustInt(name string, fallback int) int {
	if v, ok := flagPayload[int](f, name); ok {
		return v
	}
	return fallback
}

// Float retrieves a float64 flag value (safe access)
func (f Flags) Float(name string) (float64, bool) {
	return flagPayload[float64](f, name)
}

// MustFloat retrieves a float64 flag value with default fallback
func (f Flags) MustFloat(name string, fallback float64) float64 {
	if v, ok := flagPayload[float64](f, name); ok {
		return v
	}
	return fallback
}

// Bool retrieves a bool flag value (safe access)
func (f Flags) Bool(name string) (bool, bool) {
	return flagPayload[bool](f, name)
}

// MustBool retrieves a bool flag value with default fallback
func (f Flags) MustBool(name string, fallback bool) bool {
	if v, ok := flagPayload[bool](f, name); ok {
		return v
	}
	return fallback
}

// String retrieves a string flag value (safe access)
func (f Flags) String(name string) (string, bool) {
	return flagPayload[string](f, name)
}

// MustString retrieves a string flag value with default fallback
func (f Flags) MustString(name, fallback string) string {
	if v, ok := flagPayload[string](f, name); ok {
		return v
	}
	return fallback
}

// IntSlice retrieves an int list flag value (safe access)
func (f Flags) IntSlice(name string) ([]int, bool) {
	return flagPayload[[]int](f, name)
}

// FloatSlice retrieves a float64 list flag value (safe access)
func (f Flags) FloatSlice(name string) ([]float64, bool) {
	return flagPayload[[]float64](f, name)
}

// StringSlice retrieves a string list flag value (safe access)
func (f Flags) StringSlice(name string) ([]string, bool) {
	return flagPayload[[]string](f, name)
}

func flagPayload[T Value](f Flags, name string) (T, bool) {
	var zero T
	flag, ok := f.flags[name]
	if !ok {
		return zero, false
	}
	value, ok := flag.payload().(T)
	if !ok {
		return zero, false
	}
	return value, true
}
