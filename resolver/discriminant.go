package resolver

import (
	"errors"
	"fmt"
)

// ErrUnrepresentableDiscriminant means the engine returned a value outside a
// closed enum's known range, which indicates an engine/binding version mismatch.
var ErrUnrepresentableDiscriminant = errors.New("unrepresentable discriminant")

// DiscriminantRange is the inclusive range of valid raw values of a closed enum.
type DiscriminantRange struct {
	Min, Max int64
}

// Discriminants holds the ranges of the closed engine enums whose raw values
// are validated after a call.
var Discriminants = map[Kind]DiscriminantRange{
	KindResult:          {Min: 0, Max: 48}, // OK .. ERR_PRINTER_ON_FIRE
	KindVariantOperator: {Min: 0, Max: 24}, // OP_EQUAL .. OP_IN
}

// DecodeDiscriminant validates raw against the closed range of kind k.
func DecodeDiscriminant(k Kind, raw int64) (int64, error) {
	r, ok := Discriminants[k]
	if !ok {
		return 0, fmt.Errorf("%s is not a closed enum", k)
	}
	if raw < r.Min || raw > r.Max {
		return 0, fmt.Errorf("%w: %s value %d outside [%d, %d]", ErrUnrepresentableDiscriminant, k, raw, r.Min, r.Max)
	}
	return raw, nil
}

// DecoderName returns the name of the generated function that validates raw
// values of a closed enum kind.
func DecoderName(k Kind) string {
	switch k {
	case KindResult:
		return "decodeResult"
	case KindVariantOperator:
		return "decodeVariantOperator"
	default:
		return ""
	}
}
