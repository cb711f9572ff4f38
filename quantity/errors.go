package quantity

import "errors"

// ErrIncompatible reports a dimensional or kind mismatch: the operands
// cannot be combined under any cast.
var ErrIncompatible = errors.New("incompatible quantities")

// ErrExplicitCastRequired reports a combination that is physically
// representable but deliberately not implicit: sibling or unrelated
// kinds over the same dimension, or a parent kind used where a child is
// required. Use SpecCast to acknowledge the conversion.
var ErrExplicitCastRequired = errors.New("explicit cast required")

// ErrPrecisionLoss reports a conversion that would silently truncate an
// integer representation. Use ValueCast to acknowledge the narrowing.
var ErrPrecisionLoss = errors.New("conversion would lose precision")

// ErrUnrelatedOrigins reports an operation on quantity points whose
// origins do not share a provably-identical absolute origin.
var ErrUnrelatedOrigins = errors.New("quantity points have unrelated origins")

// ErrBadDeclaration reports a malformed quantity-spec or origin
// declaration.
var ErrBadDeclaration = errors.New("bad quantity declaration")
