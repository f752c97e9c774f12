package config

// Secret wraps a sensitive string (keystore passwords, inline key material)
// so that it cannot leak through logging or serialization. Every textual
// representation is redacted; the raw value is only reachable through Unwrap.
type Secret struct {
	value string
}

const redacted = "[REDACTED]"

// NewSecret wraps a raw sensitive value.
func NewSecret(value string) Secret {
	return Secret{value: value}
}

// Unwrap returns the raw value. Callers must not log or persist it.
func (s Secret) Unwrap() string {
	return s.value
}

// IsEmpty reports whether no value was provided.
func (s Secret) IsEmpty() bool {
	return s.value == ""
}

func (s Secret) String() string {
	return redacted
}

// GoString keeps %#v output redacted as well.
func (s Secret) GoString() string {
	return "config.Secret(" + redacted + ")"
}

func (s Secret) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}

func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

func (s Secret) MarshalYAML() (interface{}, error) {
	return redacted, nil
}
