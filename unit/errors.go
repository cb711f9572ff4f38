package unit

import "errors"

// ErrBadDeclaration reports a malformed unit, prefix or registry
// declaration: empty name or symbol, conflicting options, duplicate
// registration. Declarations are validated eagerly so the error
// surfaces where the catalog is defined, not where the unit is used.
var ErrBadDeclaration = errors.New("bad unit declaration")

// ErrNotConvertible reports that two units have different canonical
// reference forms and therefore no conversion factor.
var ErrNotConvertible = errors.New("units are not convertible")

// ErrBadFormat reports a conflicting symbol-formatting configuration.
var ErrBadFormat = errors.New("invalid symbol format")

// ErrParse reports an unparsable unit expression or an unknown unit
// token.
var ErrParse = errors.New("cannot parse unit expression")
