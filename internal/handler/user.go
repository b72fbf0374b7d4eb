package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetMe returns the current session user.
func GetMe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user)
}
