package expr

import "fmt"

// Identity classifies an Expression for dispatch and ordering
type Identity uint8

const (
	IdentityNumber Identity = iota
	IdentityVariable
	IdentityPower
	IdentityLogarithm
	IdentityMultiplication
	IdentityAddition

	// tags reserved for trigonometric collaborators, no Expression reports them
	IdentitySine
	IdentityCosine
)

// Precedence is the ordering tier of an identity, lowest first.
// Power and Logarithm share a tier.
func (id Identity) Precedence() int {
	switch id {
	case IdentityNumber:
		return 0
	case IdentityVariable:
		return 1
	case IdentityPower, IdentityLogarithm:
		return 2
	case IdentitySine, IdentityCosine:
		return 3
	case IdentityMultiplication:
		return 4
	case IdentityAddition:
		return 5
	default:
		panic(fmt.Sprintf("unknown identity %d", uint8(id)))
	}
}

func (id Identity) String() string {
	switch id {
	case IdentityNumber:
		return "number"
	case IdentityVariable:
		return "variable"
	case IdentityPower:
		return "power"
	case IdentityLogarithm:
		return "logarithm"
	case IdentityMultiplication:
		return "multiplication"
	case IdentityAddition:
		return "addition"
	case IdentitySine:
		return "sine"
	case IdentityCosine:
		return "cosine"
	default:
		return fmt.Sprintf("Identity(%d)", uint8(id))
	}
}
