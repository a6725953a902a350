package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/harramos25/GlamBook/internal/domain/catalog"
	"github.com/harramos25/GlamBook/internal/httperr"
)

// writeAdminError maps admin flow failures to an HTTP error with a code.
func writeAdminError(c *gin.Context, err error, fallbackCode string) {
	// the request is fine; this server has no image storage configured
	if httperr.IsBusiness(err, "image_upload_disabled") {
		httperr.Unavailable(c, "image_upload_disabled", "image uploads are not configured")
		return
	}
	if be, ok := httperr.AsBusiness(err); ok {
		httperr.BadRequest(c, be.Code, be.Code)
		return
	}
	if errors.Is(err, catalog.ErrEmailTaken) {
		httperr.Conflict(c, "email_taken", err.Error())
		return
	}

	zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("code", fallbackCode).Msg("admin request failed")
	httperr.Internal(c, fallbackCode, "internal error")
}
