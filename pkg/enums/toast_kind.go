package enums

import "fmt"

// ToastKind classifies a transient user-facing notification.
type ToastKind string

const (
	ToastKindInfo    ToastKind = "info"
	ToastKindSuccess ToastKind = "success"
	ToastKindError   ToastKind = "error"
)

var validToastKinds = []ToastKind{
	ToastKindInfo,
	ToastKindSuccess,
	ToastKindError,
}

// IsValid reports whether the value matches a known toast kind.
func (k ToastKind) IsValid() bool {
	for _, candidate := range validToastKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseToastKind converts the raw string to ToastKind.
func ParseToastKind(value string) (ToastKind, error) {
	for _, candidate := range validToastKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid toast kind %q", value)
}
