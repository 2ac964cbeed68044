package enums

import "fmt"

// VariantKind classifies a product variant option.
type VariantKind string

const (
	VariantKindColor VariantKind = "color"
	VariantKindSize  VariantKind = "size"
	VariantKindOther VariantKind = "other"
)

var validVariantKinds = []VariantKind{
	VariantKindColor,
	VariantKindSize,
	VariantKindOther,
}

// String implements fmt.Stringer.
func (v VariantKind) String() string {
	return string(v)
}

// IsValid reports whether the value is a known VariantKind.
func (v VariantKind) IsValid() bool {
	for _, candidate := range validVariantKinds {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseVariantKind converts raw input into a VariantKind.
func ParseVariantKind(value string) (VariantKind, error) {
	for _, candidate := range validVariantKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid variant kind %q", value)
}
