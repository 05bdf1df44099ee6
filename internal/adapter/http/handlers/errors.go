package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rahulchavan424/real-estate-hyperledger/internal/domain/entities"
	"github.com/rahulchavan424/real-estate-hyperledger/pkg"
)

var (
	errInvalidPayload     = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errProprietorMismatch = pkg.NewDomainErrorSimple("FORBIDDEN", "Proprietor must be the acting account", http.StatusForbidden)
)

// actorHeader carries the acting account on every request; the engine takes
// the actor as an explicit parameter instead of ambient session state.
const actorHeader = "X-Account-Id"

func actorID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(actorHeader))
}

// mapDomainError translates the engine's error taxonomy into the HTTP
// envelope. One class, one status code.
func mapDomainError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Operation not permitted for this account", http.StatusForbidden)
	case errors.Is(err, entities.ErrInvalidState):
		return pkg.NewDomainErrorSimple("INVALID_STATE", "Record does not accept this action in its current status", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Record changed concurrently or asset already encumbered", http.StatusConflict)
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Record not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
