package api

import (
	"net/http"

	"auracash/config"

	"github.com/gin-gonic/gin"
)

// getCookieOptions returns the cookie security flags for the running mode.
// Release mode only sends cookies over HTTPS.
func getCookieOptions() (secure bool, sameSite http.SameSite) {
	if cfg := config.GlobalConfig; cfg != nil && cfg.Server.Mode == gin.ReleaseMode {
		secure = true
	}
	sameSite = http.SameSiteLaxMode
	return
}

func setCookie(c *gin.Context, name, value string, maxAge int) {
	secure, sameSite := getCookieOptions()
	c.SetCookieData(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   secure,
		HttpOnly: true,
		SameSite: sameSite,
	})
}
