package hdl

import "errors"

var ErrInternal = errors.New("internal error")
var ErrDecodeRequest = errors.New("decode request")
var ErrValidationFailed = errors.New("validation failed")

var ErrMissingToken = errors.New("authorization token is required")
var ErrNoDeviceInfo = errors.New("no device info")
var ErrFailedToGetUsername = errors.New("failed to get username from context")
