package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"

	"github.com/dtroode/quill-server/internal/api/rest/response"
	"github.com/dtroode/quill-server/internal/logger"
	"github.com/dtroode/quill-server/internal/model"
)

const maxJSONBodyBytes = 1 << 20

// writeError is the single place domain errors become HTTP statuses. Causes of
// internal errors are logged and never returned.
func writeError(w http.ResponseWriter, logger *logger.Logger, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.Error(w, http.StatusBadRequest, verrs.Error())
	case errors.Is(err, model.ErrValidation):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrNotFound):
		response.Error(w, http.StatusNotFound, "resource not found")
	case errors.Is(err, model.ErrConflict):
		response.Error(w, http.StatusConflict, "resource already exists")
	case errors.Is(err, model.ErrUnauthorized), errors.Is(err, model.ErrInvalidToken):
		response.Error(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, model.ErrForbidden):
		response.Error(w, http.StatusForbidden, "you do not have permission to perform this action")
	case errors.Is(err, model.ErrTooLarge):
		response.Error(w, http.StatusRequestEntityTooLarge, err.Error())
	default:
		logger.Error("HTTP handler: internal error",
			"error", err.Error())
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

type validatable interface {
	Validate() error
}

// decodeJSON reads a JSON body into dst and validates it.
func decodeJSON(r *http.Request, dst validatable) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", model.ErrValidation)
	}
	return dst.Validate()
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s must be a valid UUID: %w", name, model.ErrValidation)
	}
	return id, nil
}

// caller returns the authenticated subject. Routes using it sit behind the
// required authentication middleware.
func caller(cm model.ContextManager, r *http.Request) (uuid.UUID, error) {
	claims, ok := cm.GetClaimsFromContext(r.Context())
	if !ok || claims.SubjectID == uuid.Nil {
		return uuid.Nil, model.ErrUnauthorized
	}
	return claims.SubjectID, nil
}

// viewer returns the optional caller, or uuid.Nil for anonymous requests.
func viewer(cm model.ContextManager, r *http.Request) uuid.UUID {
	claims, ok := cm.GetClaimsFromContext(r.Context())
	if !ok {
		return uuid.Nil
	}
	return claims.SubjectID
}
