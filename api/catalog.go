package api

import (
	"auracash/middleware"

	"github.com/gin-gonic/gin"
)

// submitForm runs create for a form post and redirects back with a flash.
func submitForm(c *gin.Context, back, success string, req interface{}, create func(userID uint) error) {
	if err := c.ShouldBind(req); err != nil {
		redirectWithFlash(c, back, FlashError, "Dados inválidos")
		return
	}
	if err := create(middleware.GetCurrentUserID(c)); err != nil {
		formError(c, back, err)
		return
	}
	redirectWithFlash(c, back, FlashSuccess, success)
}

// submitJSON runs create for a JSON post and answers with the new id.
func submitJSON(c *gin.Context, success string, req interface{}, create func(userID uint) (uint, error)) {
	if err := c.ShouldBindJSON(req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	id, err := create(middleware.GetCurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	created(c, success, id)
}
