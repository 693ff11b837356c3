package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/andeanbank/microservices/credit/internal/entity"
)

// ErrorResponse carries a stable machine readable code next to the human
// readable message.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, status int, originErr error, code, msgToSend string) {
	if originErr != nil {
		slog.ErrorContext(ctx, "api error", "code", code, "error", originErr.Error())
	} else {
		slog.ErrorContext(ctx, "api error", "code", code)
	}

	SendJSON(ctx, w, status, ErrorResponse{Code: code, Message: msgToSend})
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		code = http.StatusInternalServerError
		http.Error(w, http.StatusText(code), code)

		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

// sendServiceErr maps service errors onto HTTP statuses and stable error
// codes. Payment rejections never reach this path, they are values.
func sendServiceErr(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "NOT_FOUND", "credit or customer not found")
	case errors.Is(err, entity.ErrInvalidArgument):
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, entity.ErrPersonalCreditLimit):
		SendJSONErr(ctx, w, http.StatusConflict, err, "PERSON_ALREADY_HAS_CREDIT",
			"personal customers can only have one active credit")
	case errors.Is(err, entity.ErrCustomerNotEligible):
		SendJSONErr(ctx, w, http.StatusConflict, err, "CUSTOMER_NOT_ELIGIBLE",
			"customer has overdue debt on existing products")
	case errors.Is(err, entity.ErrCustomerUnavailable):
		SendJSONErr(ctx, w, http.StatusServiceUnavailable, err, "CUSTOMER_SERVICE_UNAVAILABLE",
			"customer service is unavailable, try again later")
	case errors.Is(err, entity.ErrUnauthenticated):
		SendJSONErr(ctx, w, http.StatusUnauthorized, err, "UNAUTHENTICATED", "identity headers are missing")
	case errors.Is(err, entity.ErrForbidden):
		SendJSONErr(ctx, w, http.StatusForbidden, err, "FORBIDDEN", "not enough permissions")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "INTERNAL_ERROR", "internal error")
	}
}
