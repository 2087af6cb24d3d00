package stripeapi

import (
	"github.com/sirupsen/logrus"
)

// EnumSet is the set of known values for a string enum in the Stripe API.
// Enums sent in requests are closed, and are parsed with Parse which rejects
// unknown values. Enums received in responses are open, and are parsed with
// ParseOpen which keeps unknown values as they were received, since Stripe
// adds new values to these enums over time.
type EnumSet[E ~string] struct {
	name   string
	values []E
	known  map[E]struct{}
}

// NewEnumSet returns an EnumSet with the given name holding the given values.
// The name is used in errors, and typically follows the dotted path of the
// field in the API, for example "issuing.transaction.wallet".
func NewEnumSet[E ~string](name string, values ...E) *EnumSet[E] {
	known := make(map[E]struct{}, len(values))

	for _, v := range values {
		known[v] = struct{}{}
	}

	return &EnumSet[E]{
		name:   name,
		values: values,
		known:  known,
	}
}

// Name returns the name of the enum.
func (s *EnumSet[E]) Name() string { return s.name }

// Known reports whether the given value is one of the known values.
func (s *EnumSet[E]) Known(v E) bool {
	_, ok := s.known[v]
	return ok
}

// Values returns the known values in the order they were given.
func (s *EnumSet[E]) Values() []E {
	values := make([]E, len(s.values))
	copy(values, s.values)
	return values
}

// Parse returns the value for the given string. An *EnumParseError is
// returned if the string is not a known value.
func (s *EnumSet[E]) Parse(str string) (E, error) {
	v := E(str)

	if !s.Known(v) {
		return "", &EnumParseError{
			Enum:  s.name,
			Value: str,
		}
	}
	return v, nil
}

// ParseOpen returns the value for the given string. Unknown values are
// returned as is.
func (s *EnumSet[E]) ParseOpen(str string) E {
	v := E(str)

	if !s.Known(v) {
		logrus.WithFields(logrus.Fields{
			"enum":  s.name,
			"value": str,
		}).Debug("unknown enum value")
	}
	return v
}

// UnmarshalClosed parses the given text into dst using Parse. This is used to
// implement encoding.TextUnmarshaler for closed enums.
func (s *EnumSet[E]) UnmarshalClosed(dst *E, text []byte) error {
	v, err := s.Parse(string(text))

	if err != nil {
		return err
	}
	(*dst) = v
	return nil
}

// UnmarshalOpen parses the given text into dst using ParseOpen. This is used
// to implement encoding.TextUnmarshaler for open enums.
func (s *EnumSet[E]) UnmarshalOpen(dst *E, text []byte) error {
	(*dst) = s.ParseOpen(string(text))
	return nil
}
