package api

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

const (
	flashCookie = "flash"

	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot message shown by the next page view.
type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func setFlash(c *gin.Context, kind, message string) {
	raw, err := json.Marshal(Flash{Kind: kind, Message: message})
	if err != nil {
		return
	}
	setCookie(c, flashCookie, base64.RawURLEncoding.EncodeToString(raw), 60)
}

// popFlash returns the pending flash message, if any, and removes it.
func popFlash(c *gin.Context) *Flash {
	value, err := c.Cookie(flashCookie)
	if err != nil || value == "" {
		return nil
	}
	setCookie(c, flashCookie, "", -1)

	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var f Flash
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil
	}
	return &f
}

// redirectWithFlash answers a form post with 303 See Other.
func redirectWithFlash(c *gin.Context, location, kind, message string) {
	setFlash(c, kind, message)
	c.Redirect(303, location)
}
