package field

import (
	"fmt"
	"strings"
)

// Kind is the input kind rendered for a field. The set is closed; use
// ParseKind to convert free-form strings.
type Kind string

const (
	KindText     Kind = "text"
	KindPassword Kind = "password"
	KindEmail    Kind = "email"
	KindNumber   Kind = "number"
	KindTel      Kind = "tel"
	KindURL      Kind = "url"
	KindSearch   Kind = "search"
	KindDate     Kind = "date"
)

// DefaultKind is used when a descriptor omits its kind.
const DefaultKind = KindText

var kinds = []Kind{
	KindText,
	KindPassword,
	KindEmail,
	KindNumber,
	KindTel,
	KindURL,
	KindSearch,
	KindDate,
}

// Kinds returns the supported input kinds in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// ParseKind normalises raw into a Kind. An empty value yields DefaultKind.
func ParseKind(raw string) (Kind, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return DefaultKind, nil
	}
	for _, kind := range kinds {
		if string(kind) == trimmed {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, raw)
}

// Valid reports whether k is a supported kind. The zero value is valid and
// means DefaultKind.
func (k Kind) Valid() bool {
	if k == "" {
		return true
	}
	for _, kind := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}

// OrDefault returns k, or DefaultKind when k is empty.
func (k Kind) OrDefault() Kind {
	if k == "" {
		return DefaultKind
	}
	return k
}

// Masked reports whether entered characters must be hidden.
func (k Kind) Masked() bool {
	return k == KindPassword
}

func (k Kind) String() string {
	return string(k.OrDefault())
}
