package responses

import (
	"context"
	"encoding/json"
	"net/http"

	pkgerrors "github.com/catalogbase/catalog-api/pkg/errors"
	"github.com/catalogbase/catalog-api/pkg/logger"
)

type errorBody struct {
	Code    pkgerrors.Code `json:"code"`
	Message string         `json:"message"`
	Details any            `json:"details,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// WriteJSON writes the payload as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, `{"error":{"code":"INTERNAL_ERROR","message":"internal server error"}}`, http.StatusInternalServerError)
	}
}

// WriteSuccess writes a 200 response with the payload as the body.
func WriteSuccess(w http.ResponseWriter, payload any) {
	WriteJSON(w, http.StatusOK, payload)
}

// WriteCreated writes a 201 response with the payload as the body.
func WriteCreated(w http.ResponseWriter, payload any) {
	WriteJSON(w, http.StatusCreated, payload)
}

// WriteNoContent writes an empty 204 response.
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// WriteError maps the error onto its HTTP status and public body. Internal
// causes are logged, never sent to the client; details ride along only for
// codes that allow them.
func WriteError(ctx context.Context, w http.ResponseWriter, logg *logger.Logger, err error) {
	appErr := pkgerrors.As(err)
	if appErr == nil {
		appErr = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unhandled error")
	}

	meta := pkgerrors.MetadataFor(appErr.Code())

	if meta.HTTPStatus >= http.StatusInternalServerError {
		logg.Error(logg.WithField(ctx, "error_dump", pkgerrors.Dump(err)), "request failed", err)
	} else {
		logg.Warn(logg.WithField(ctx, "error_code", string(appErr.Code())), appErr.Error())
	}

	body := errorBody{
		Code:    appErr.Code(),
		Message: appErr.Message(),
	}
	// Server-side faults expose only the generic public message.
	if body.Message == "" || meta.HTTPStatus >= http.StatusInternalServerError {
		body.Message = meta.PublicMessage
	}
	if meta.DetailsAllowed {
		body.Details = appErr.Details()
	}

	WriteJSON(w, meta.HTTPStatus, errorEnvelope{Error: body})
}
