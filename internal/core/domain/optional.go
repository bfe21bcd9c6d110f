package domain

import "strings"

// Text is an optional free-text value.
// The zero value is absent. A Text built from blank input is also absent,
// so an empty string never reaches resolution as an override.
type Text struct {
	value string
	set   bool
}

// SomeText returns a present Text, or an absent one if s is blank.
func SomeText(s string) Text {
	if strings.TrimSpace(s) == "" {
		return Text{}
	}
	return Text{value: s, set: true}
}

// NoText returns an absent Text.
func NoText() Text {
	return Text{}
}

// TextFromPtr converts a nullable string into a Text.
func TextFromPtr(s *string) Text {
	if s == nil {
		return Text{}
	}
	return SomeText(*s)
}

// Get returns the value and whether it is present.
func (t Text) Get() (string, bool) {
	return t.value, t.set
}

// IsSet returns true if the value is present.
func (t Text) IsSet() bool {
	return t.set
}

// Or returns the value if present, otherwise def.
func (t Text) Or(def string) string {
	if t.set {
		return t.value
	}
	return def
}

// String returns the value, or an empty string when absent.
func (t Text) String() string {
	return t.value
}

// Ptr returns a pointer to the value, or nil when absent.
func (t Text) Ptr() *string {
	if !t.set {
		return nil
	}
	v := t.value
	return &v
}

// Flag is a tri-state boolean: unset, true or false.
type Flag int8

// Flag states.
const (
	// FlagUnset means the source did not provide a value.
	FlagUnset Flag = iota
	// FlagTrue is an explicit true.
	FlagTrue
	// FlagFalse is an explicit false.
	FlagFalse
)

// FlagOf returns an explicit flag for b.
func FlagOf(b bool) Flag {
	if b {
		return FlagTrue
	}
	return FlagFalse
}

// FlagFromPtr converts a nullable boolean into a Flag.
func FlagFromPtr(b *bool) Flag {
	if b == nil {
		return FlagUnset
	}
	return FlagOf(*b)
}

// IsSet returns true if the flag holds an explicit value.
func (f Flag) IsSet() bool {
	return f == FlagTrue || f == FlagFalse
}

// Or returns the explicit value, or def when unset.
func (f Flag) Or(def bool) bool {
	switch f {
	case FlagTrue:
		return true
	case FlagFalse:
		return false
	default:
		return def
	}
}

// Ptr returns a pointer to the explicit value, or nil when unset.
func (f Flag) Ptr() *bool {
	if !f.IsSet() {
		return nil
	}
	v := f == FlagTrue
	return &v
}

// String returns the string representation.
func (f Flag) String() string {
	switch f {
	case FlagTrue:
		return "true"
	case FlagFalse:
		return "false"
	default:
		return "unset"
	}
}

// Features is an optional ordered list of feature lines.
// A nil Features is absent. Use NormalizeFeatures to build one from
// untrusted input.
type Features []string

// NormalizeFeatures drops blank entries and returns nil if nothing is left.
// The admin form serialises an untouched feature list as [""], which
// therefore normalises to absent.
func NormalizeFeatures(in []string) Features {
	var out Features
	for _, f := range in {
		if strings.TrimSpace(f) == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}

// IsSet returns true if at least one feature is present.
func (f Features) IsSet() bool {
	return len(f) > 0
}

// Or returns the non-blank entries if any, otherwise a copy of def.
// The two are never mixed.
func (f Features) Or(def []string) []string {
	if kept := NormalizeFeatures(f); kept.IsSet() {
		return kept
	}
	out := make([]string, len(def))
	copy(out, def)
	return out
}
