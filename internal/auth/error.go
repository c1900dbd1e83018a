package auth

import "errors"

// ErrInvalidCredentials covers both an unknown username and a wrong
// password so that responses cannot be used for username enumeration.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidRefreshToken collapses every refresh-token failure: malformed,
// expired, wrong signature and missing store record.
var ErrInvalidRefreshToken = errors.New("invalid refresh token")
