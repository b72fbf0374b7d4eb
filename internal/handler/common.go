package handler

import (
	"net/http"

	"github.com/Butterfli-Software/sanki-yedim/internal/middleware"
	"github.com/Butterfli-Software/sanki-yedim/internal/models"
	"github.com/Butterfli-Software/sanki-yedim/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the session user set by the auth middleware. The demo
// session middleware always sets it, so absence is a server fault.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(middleware.CurrentUserKey)
	if !ok {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "no session user")
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "no session user")
		return nil, false
	}
	return user, true
}
