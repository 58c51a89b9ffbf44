package validation

import (
	"fmt"
	"log"
	"regexp"
	"strconv"
)

// FailureFunc receives the message of every failed check. It is an
// observational side channel: callers must rely on returned results only.
type FailureFunc func(msg string)

func defaultNotify(msg string) {
	log.Printf("VALIDATION: %s", msg)
}

// Kind is the primitive type a value is checked against.
type Kind int

const (
	KindInt Kind = iota
	KindBool
	KindString
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindMap:
		return "map"
	}
	return "unknown"
}

type constraintKind int

const (
	consNone constraintKind = iota
	consRange
	consEnum
	consTime
	consColor
)

// Constraint narrows the accepted values beyond the primitive type: an
// inclusive integer range, a set of allowed strings, or a string format.
type Constraint struct {
	kind     constraintKind
	min, max int
	allowed  *StringSet
}

func NoConstraint() Constraint { return Constraint{} }

// Between constrains an int value to [min, max] inclusive.
func Between(min, max int) Constraint {
	return Constraint{kind: consRange, min: min, max: max}
}

// OneOf constrains a string value to members of allowed.
func OneOf(allowed *StringSet) Constraint {
	return Constraint{kind: consEnum, allowed: allowed}
}

// TimeFormat constrains a string value to a 24-hour HH:MM or HH:MM:SS time.
func TimeFormat() Constraint { return Constraint{kind: consTime} }

// ColorFormat constrains a string value to a '#'-prefixed 3- or 6-digit hex color.
func ColorFormat() Constraint { return Constraint{kind: consColor} }

// Checker validates a single value against a Kind and a Constraint. It is
// stateless apart from its compiled format patterns and safe for concurrent use.
type Checker struct {
	timeRegex  *regexp.Regexp
	colorRegex *regexp.Regexp
	notify     FailureFunc
}

// NewChecker compiles the time and color format patterns. notify may be nil,
// in which case failures are logged with the standard logger.
func NewChecker(timePattern, colorPattern string, notify FailureFunc) (*Checker, error) {
	timeRe, err := regexp.Compile(timePattern)
	if err != nil {
		return nil, fmt.Errorf("invalid time pattern: %w", err)
	}
	colorRe, err := regexp.Compile(colorPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid color pattern: %w", err)
	}
	if notify == nil {
		notify = defaultNotify
	}
	return &Checker{timeRegex: timeRe, colorRegex: colorRe, notify: notify}, nil
}

// Check verifies that value is of the given kind and, when a constraint is
// supplied, that it satisfies it. label appears verbatim in messages, so
// callers pass it already quoted. On failure the reason is returned and also
// sent to the failure channel.
//
// Int values are coerced: floats truncate and numeric strings parse, anything
// else is a coercion failure. Every other kind requires an exact type match.
func (c *Checker) Check(value interface{}, label string, kind Kind, cons Constraint) (bool, string) {
	if kind == KindInt {
		n, ok := toInt(value)
		if !ok {
			return c.fail(fmt.Sprintf("%s must be a numeric string, got %v instead.", label, value))
		}
		if cons.kind == consRange && (n < cons.min || n > cons.max) {
			return c.fail(fmt.Sprintf("%s must be between %d and %d, got %d instead.", label, cons.min, cons.max, n))
		}
		return true, ""
	}

	if !matchesKind(value, kind) {
		return c.fail(fmt.Sprintf("%s must be a %s, got %s instead.", label, kind, typeName(value)))
	}

	if kind == KindString {
		s := value.(string)
		switch cons.kind {
		case consEnum:
			if !cons.allowed.Has(s) {
				return c.fail(fmt.Sprintf("'%s' is not a valid value for %s. Must be one of %s.", s, label, cons.allowed))
			}
		case consTime:
			if !c.timeRegex.MatchString(s) {
				return c.fail(fmt.Sprintf("'%s' is not a valid ISO format time string.", s))
			}
		case consColor:
			if !c.colorRegex.MatchString(s) {
				return c.fail(fmt.Sprintf("'%s' is not a valid hex color string.", s))
			}
		}
	}
	return true, ""
}

func (c *Checker) fail(msg string) (bool, string) {
	c.notify(msg)
	return false, msg
}

func matchesKind(value interface{}, kind Kind) bool {
	switch kind {
	case KindBool:
		_, ok := value.(bool)
		return ok
	case KindString:
		_, ok := value.(string)
		return ok
	case KindMap:
		_, ok := value.(map[string]interface{})
		return ok
	}
	return false
}

func toInt(value interface{}) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		parsed, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}

func typeName(value interface{}) string {
	switch value.(type) {
	case nil:
		return "nil"
	case bool:
		return "bool"
	case string:
		return "string"
	case int, int64, float64:
		return "number"
	case map[string]interface{}:
		return "map"
	case []interface{}:
		return "list"
	}
	return fmt.Sprintf("%T", value)
}
