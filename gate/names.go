package gate

import "strings"

// Name is the canonical identifier of a catalogue gate.
type Name string

// Canonical gate names, in catalogue order.
const (
	NameID   Name = "id"
	NameH    Name = "h"
	NameNegH Name = "negh"
	NameX    Name = "x"
	NameY    Name = "y"
	NameZ    Name = "z"
	NameS    Name = "s"
	NameT    Name = "t"
	NameR    Name = "r"
)

// catalogue lists every name once, in stable order.
var catalogue = [...]Name{NameID, NameH, NameNegH, NameX, NameY, NameZ, NameS, NameT, NameR}

// fixed maps each non-parameterized name to its constructor.
var fixed = map[Name]func() Gate{
	NameID:   ID,
	NameH:    H,
	NameNegH: NegH,
	NameX:    X,
	NameY:    Y,
	NameZ:    Z,
	NameS:    S,
	NameT:    T,
}

// aliases accepted by ParseName in addition to the canonical names.
var aliases = map[string]Name{
	"i":          NameID,
	"identity":   NameID,
	"hadamard":   NameH,
	"not":        NameX,
	"paulix":     NameX,
	"pauliy":     NameY,
	"pauliz":     NameZ,
	"phase":      NameS,
	"p":          NameR,
	"phaseshift": NameR,
}

// Names returns every catalogue name in stable order.
// The returned slice is a fresh copy.
func Names() []Name {
	out := make([]Name, len(catalogue))
	copy(out, catalogue[:])

	return out
}

// Parameterized reports whether the named gate takes an angle.
func Parameterized(n Name) bool {
	return n == NameR
}

// ParseName resolves s to a canonical Name. Matching ignores case and
// surrounding whitespace and accepts the common aliases (identity, hadamard,
// not, phase, ...). Unresolvable input yields ErrUnknownGate.
func ParseName(s string) (Name, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if n, ok := aliases[key]; ok {
		return n, nil
	}
	n := Name(key)
	if _, ok := fixed[n]; ok || n == NameR {
		return n, nil
	}

	return "", lookupErrorf("ParseName", s, ErrUnknownGate)
}

// Lookup resolves name and builds the gate it denotes.
//
// Fixed gates take no angle (ErrUnexpectedAngle otherwise); R takes exactly
// one (ErrAngleRequired otherwise).
func Lookup(name string, angle ...float32) (Gate, error) {
	n, err := ParseName(name)
	if err != nil {
		return Gate{}, err
	}

	if Parameterized(n) {
		if len(angle) != 1 {
			return Gate{}, lookupErrorf("Lookup", name, ErrAngleRequired)
		}

		return R(angle[0]), nil
	}
	if len(angle) != 0 {
		return Gate{}, lookupErrorf("Lookup", name, ErrUnexpectedAngle)
	}

	return fixed[n](), nil
}
