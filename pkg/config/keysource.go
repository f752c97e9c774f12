package config

import (
	"errors"
	"fmt"
)

// ErrInvalidKeyGroup is returned when a key group does not specify exactly
// one of {key file, inline key JSON, ephemeral key}.
var ErrInvalidKeyGroup = errors.New("exactly one of key-file, key-json or ephemeral-key must be set")

// SourceKind identifies how a signing key is obtained.
type SourceKind int

const (
	// SourceUnset is the zero value and never survives validation.
	SourceUnset SourceKind = iota
	// SourceFile loads an encrypted keystore file from disk.
	SourceFile
	// SourceInline parses an encrypted keystore passed as a string.
	SourceInline
	// SourceEphemeral generates a fresh random key. Test networks only.
	SourceEphemeral
)

func (k SourceKind) String() string {
	switch k {
	case SourceFile:
		return "file"
	case SourceInline:
		return "inline"
	case SourceEphemeral:
		return "ephemeral"
	default:
		return "unset"
	}
}

// KeySource is a validated, single-variant key sourcing choice. It can only
// be built through newKeySource, which rejects under- and over-specified
// combinations, so holders never need to re-check exclusivity.
type KeySource struct {
	kind   SourceKind
	path   string
	inline Secret
}

// FileKeySource sources the key from an encrypted keystore file.
func FileKeySource(path string) KeySource {
	return KeySource{kind: SourceFile, path: path}
}

// InlineKeySource sources the key from inline keystore content.
func InlineKeySource(keystoreJSON string) KeySource {
	return KeySource{kind: SourceInline, inline: NewSecret(keystoreJSON)}
}

// EphemeralKeySource requests a freshly generated key.
func EphemeralKeySource() KeySource {
	return KeySource{kind: SourceEphemeral}
}

// newKeySource folds the three raw CLI inputs of one key group into a
// KeySource, failing unless exactly one of them is populated.
func newKeySource(role string, path string, inlineJSON string, ephemeral bool) (KeySource, error) {
	set := 0
	if path != "" {
		set++
	}
	if inlineJSON != "" {
		set++
	}
	if ephemeral {
		set++
	}
	if set != 1 {
		return KeySource{}, fmt.Errorf("%s key group: %d sources given: %w", role, set, ErrInvalidKeyGroup)
	}

	switch {
	case ephemeral:
		return KeySource{kind: SourceEphemeral}, nil
	case path != "":
		return KeySource{kind: SourceFile, path: path}, nil
	default:
		return KeySource{kind: SourceInline, inline: NewSecret(inlineJSON)}, nil
	}
}

// Kind returns the active sourcing mode.
func (s KeySource) Kind() SourceKind {
	return s.kind
}

// Path returns the keystore file path. Only meaningful for SourceFile.
func (s KeySource) Path() string {
	return s.path
}

// InlineJSON returns the inline keystore content. Only meaningful for
// SourceInline; the content is secret-wrapped since it carries key material.
func (s KeySource) InlineJSON() Secret {
	return s.inline
}

// String renders only the non-sensitive shape of the source. Without it fmt
// would descend into the struct fields, where the unexported inline secret
// is out of reach of its own Stringer and would print raw.
func (s KeySource) String() string {
	if s.kind == SourceFile {
		return fmt.Sprintf("%s(%s)", s.kind, s.path)
	}
	return s.kind.String()
}

// GoString keeps %#v output to the kind and path as well.
func (s KeySource) GoString() string {
	return "config.KeySource(" + s.String() + ")"
}

// MarshalYAML serializes only the non-sensitive shape of the source.
func (s KeySource) MarshalYAML() (interface{}, error) {
	out := map[string]string{"source": s.kind.String()}
	if s.kind == SourceFile {
		out["path"] = s.path
	}
	return out, nil
}

// MarshalJSON mirrors MarshalYAML.
func (s KeySource) MarshalJSON() ([]byte, error) {
	if s.kind == SourceFile {
		return []byte(fmt.Sprintf(`{"source":%q,"path":%q}`, s.kind.String(), s.path)), nil
	}
	return []byte(fmt.Sprintf(`{"source":%q}`, s.kind.String())), nil
}
