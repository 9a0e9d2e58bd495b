package enums

import "fmt"

// ReferenceType describes how one normative document relates to another.
type ReferenceType string

const (
	ReferenceTypeAmends        ReferenceType = "amends"
	ReferenceTypeRepeals       ReferenceType = "repeals"
	ReferenceTypeComplements   ReferenceType = "complements"
	ReferenceTypeImplementedBy ReferenceType = "implemented_by"
)

var validReferenceTypes = []ReferenceType{
	ReferenceTypeAmends,
	ReferenceTypeRepeals,
	ReferenceTypeComplements,
	ReferenceTypeImplementedBy,
}

// String implements fmt.Stringer.
func (r ReferenceType) String() string {
	return string(r)
}

// IsValid reports whether the value is a known ReferenceType.
func (r ReferenceType) IsValid() bool {
	for _, candidate := range validReferenceTypes {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseReferenceType converts raw input into a ReferenceType.
func ParseReferenceType(value string) (ReferenceType, error) {
	for _, candidate := range validReferenceTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid reference type %q", value)
}
