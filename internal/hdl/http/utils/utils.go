package utils

import (
	"context"
	"net/http"

	"github.com/avolkov/taskgate/internal/config"
	"github.com/avolkov/taskgate/internal/hdl"
	"github.com/avolkov/taskgate/internal/hdl/validation"
	"github.com/goccy/go-json"
)

// ErrorsResponse is the uniform failure envelope. Internal causes never
// cross this boundary.
type ErrorsResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func SuccessResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func StatusResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&MessageResponse{
			Message: message,
		},
	)
}

func ErrResponse(w http.ResponseWriter, statusCode int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&ErrorsResponse{
			Message: err.Error(),
		},
	)
}

func ValidationErrResponse(w http.ResponseWriter, details []string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(
		&ErrorsResponse{
			Message: hdl.ErrValidationFailed.Error(),
			Details: details,
		},
	)
}

// ParseAndValidate decodes the JSON body into req and validates it. It
// writes the error response itself when either step fails.
func ParseAndValidate(w http.ResponseWriter, r *http.Request, v *validation.Validator, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return false
	}

	if details := v.Struct(req); len(details) > 0 {
		ValidationErrResponse(w, details)
		return false
	}

	return true
}

func DeviceFromRequest(ctx context.Context) (string, bool) {
	d, ok := ctx.Value(config.DeviceKey).(string)
	return d, ok
}

func UsernameFromRequest(ctx context.Context) (string, bool) {
	u, ok := ctx.Value(config.UsernameKey).(string)
	return u, ok
}
