package hopfield

import (
	"fmt"
	"strings"
)

// Domain is the set of legal per-unit values for a network state, together
// with the activation mapping that projects raw values onto it.
type Domain int

const (
	// DomainUnspecified is a sentinel. It must never reach a built network
	// or generator; constructors reject it with ErrUnspecifiedDomain.
	DomainUnspecified Domain = iota
	DomainBinary
	DomainBipolar
	DomainContinuous
)

func (d Domain) String() string {
	switch d {
	case DomainBinary:
		return "binary"
	case DomainBipolar:
		return "bipolar"
	case DomainContinuous:
		return "continuous"
	default:
		return "unspecified"
	}
}

// ParseDomain maps a config or flag value to a Domain.
func ParseDomain(s string) (Domain, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary":
		return DomainBinary, nil
	case "bipolar":
		return DomainBipolar, nil
	case "continuous":
		return DomainContinuous, nil
	default:
		return DomainUnspecified, fmt.Errorf("unknown network domain: %q", s)
	}
}

// ActivationFor returns the activation function for a concrete domain.
//
// Looking up DomainUnspecified is a programming error, not a runtime
// condition: constructors guarantee a concrete domain before any lookup,
// so this panics rather than returning an error.
func ActivationFor(d Domain) ActivationFunc {
	switch d {
	case DomainBinary:
		return BinaryActivation
	case DomainBipolar:
		return BipolarActivation
	case DomainContinuous:
		return IdentityActivation
	default:
		panic(fmt.Sprintf("hopfield: no activation function for domain %v", d))
	}
}
