package match

import "errors"

// ErrType is returned by [Any] when the dynamic value does not have the
// matcher's type.
var ErrType = errors.New("match: value has the wrong type")
