package jwt

import "errors"

var ErrWhileCreatingToken = errors.New("error while creating token")
var ErrUnexpectedSignMethod = errors.New("unexpected signing method")

// ErrInvalidToken is the single outward parse failure. Malformed, expired
// and wrongly signed tokens are indistinguishable to callers.
var ErrInvalidToken = errors.New("invalid token")
