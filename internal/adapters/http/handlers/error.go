package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafaelleal24/commerce/internal/core/logger"
	"github.com/rafaelleal24/commerce/internal/core/serviceerrors"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// HandleError writes err as JSON. Service errors keep their message; anything
// else is logged and answered with a generic 500 so internals never leak.
func HandleError(c *gin.Context, err error) {
	var svcErr *serviceerrors.ServiceError
	if errors.As(err, &svcErr) {
		c.JSON(mapKindToHTTP(svcErr.Kind), ErrorResponse{Error: svcErr.Message, Kind: svcErr.Kind.String()})
		return
	}

	logger.Error(c.Request.Context(), "unhandled error", err, map[string]any{
		"http.method": c.Request.Method,
		"http.route":  c.FullPath(),
	})
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// BadRequest reports a malformed request body or parameter.
func BadRequest(c *gin.Context, message string) {
	HandleError(c, serviceerrors.NewInvalidRequestError(message))
}

func mapKindToHTTP(kind serviceerrors.ErrorKind) int {
	switch kind {
	case serviceerrors.KindNotFound:
		return http.StatusNotFound
	case serviceerrors.KindConflict:
		return http.StatusConflict
	case serviceerrors.KindUnprocessableEntity,
		serviceerrors.KindInsufficientStock,
		serviceerrors.KindInsufficientBalance:
		return http.StatusUnprocessableEntity
	case serviceerrors.KindInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
