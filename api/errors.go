package api

import (
	"errors"
	"net/http"

	"auracash/config"
	"auracash/middleware"
	"auracash/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	msgDuplicateEmail = "Email já existe"
	msgBadCredentials = "Email ou senha errados"
	msgUnavailable    = "Serviço temporariamente indisponível"
	msgInternal       = "Erro interno"
	msgNotFound       = "Registro não encontrado"
	msgSessionExpired = "Faça login novamente"
)

// SafeErrorMessage hides internal error details in release mode.
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}

// userMessage is the text shown for errors the user can act on. ok is false
// for failures that are not the user's doing.
func userMessage(err error) (msg string, status int, ok bool) {
	var v *service.ValidationError
	switch {
	case errors.As(err, &v):
		return v.Message, http.StatusBadRequest, true
	case errors.Is(err, service.ErrDuplicateEmail):
		return msgDuplicateEmail, http.StatusConflict, true
	case errors.Is(err, service.ErrInvalidCredentials):
		return msgBadCredentials, http.StatusUnauthorized, true
	case errors.Is(err, service.ErrUnauthenticated):
		return msgSessionExpired, http.StatusUnauthorized, true
	case errors.Is(err, service.ErrNotFound):
		return msgNotFound, http.StatusNotFound, true
	}
	return "", 0, false
}

// respondError writes the JSON error matching err.
func respondError(c *gin.Context, err error) {
	msg, status, ok := userMessage(err)
	if !ok {
		serverError(c, err)
		return
	}
	switch status {
	case http.StatusUnauthorized:
		Unauthorized(c, msg)
	case http.StatusNotFound:
		NotFound(c, msg)
	case http.StatusConflict:
		Conflict(c, msg)
	default:
		BadRequest(c, msg)
	}
}

// formError answers a failed form post: user errors are flashed and the
// browser is sent back to the form. A session whose account is gone goes to
// the login page instead.
func formError(c *gin.Context, back string, err error) {
	if errors.Is(err, service.ErrUnauthenticated) {
		redirectWithFlash(c, middleware.LoginPath, FlashError, msgSessionExpired)
		return
	}
	if msg, _, ok := userMessage(err); ok {
		redirectWithFlash(c, back, FlashError, msg)
		return
	}
	serverError(c, err)
}

func serverError(c *gin.Context, err error) {
	_ = c.Error(err)
	if errors.Is(err, service.ErrDatabaseUnavailable) {
		log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("database unavailable")
		ServiceUnavailable(c, msgUnavailable)
		return
	}
	log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("request failed")
	InternalError(c, SafeErrorMessage(err, msgInternal))
}
