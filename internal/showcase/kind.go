package showcase

import (
	"errors"
	"fmt"
	"strings"
)

// Kind names a drawer variant.
type Kind string

const (
	KindStandard Kind = "standard"
	KindMaterial Kind = "material"
	KindRing     Kind = "ring"
	KindOval     Kind = "oval"
)

// Kinds lists every drawer variant in presentation order.
var Kinds = []Kind{KindStandard, KindMaterial, KindRing, KindOval}

// ErrUnknownKind is returned for drawer names that match no variant.
var ErrUnknownKind = errors.New("unknown showcase drawer")

// ParseKind parses a drawer name, ignoring case and surrounding space.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Next returns the variant after k, wrapping around.
func (k Kind) Next() Kind {
	for i, known := range Kinds {
		if k == known {
			return Kinds[(i+1)%len(Kinds)]
		}
	}
	return Kinds[0]
}

// New builds the drawer for kind. owner receives geometry change
// notifications from drawers that support live changes.
func New(kind Kind, res Resources, theme Theme, owner Invalidator) (Drawer, error) {
	switch kind {
	case KindStandard:
		return NewStandardDrawer(res, theme), nil
	case KindMaterial:
		return NewMaterialDrawer(res), nil
	case KindRing:
		return NewRingDrawer(res, owner), nil
	case KindOval:
		return NewOvalDrawer(res, owner), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
}
