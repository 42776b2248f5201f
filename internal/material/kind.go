package material

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned by ParseKind for names outside the enumeration.
var ErrUnknownKind = errors.New("material: unknown object kind")

// Kind enumerates the placeable object shapes.
type Kind uint8

const (
	MetalSphere Kind = iota
	MetalBox
	DielectricSphere
	Absorber
	CornerReflector
	StealthWedge
	RAMLayer
	CornerDeflector
)

var kindNames = [...]string{
	MetalSphere:      "Metal Sphere",
	MetalBox:         "Metal Box",
	DielectricSphere: "Dielectric Sphere",
	Absorber:         "Absorber",
	CornerReflector:  "Corner Reflector",
	StealthWedge:     "Stealth Wedge",
	RAMLayer:         "RAM Layer",
	CornerDeflector:  "Corner Deflector",
}

// Kinds lists every object kind in display order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind accepts a display name ("Metal Sphere") or its short form
// ("metal-sphere", "metalsphere"), case-insensitively.
func ParseKind(name string) (Kind, error) {
	want := normalizeName(name)
	for i, n := range kindNames {
		if normalizeName(n) == want {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// round kinds use the circular interior test.
func (k Kind) round() bool {
	return k == MetalSphere || k == DielectricSphere || k == Absorber
}
