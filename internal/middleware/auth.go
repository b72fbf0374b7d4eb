package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/Butterfli-Software/sanki-yedim/internal/config"
	"github.com/Butterfli-Software/sanki-yedim/internal/models"
	"github.com/Butterfli-Software/sanki-yedim/internal/store"
	"github.com/Butterfli-Software/sanki-yedim/internal/util"

	"github.com/gin-gonic/gin"
)

// CurrentUserKey is where the resolved user lives in the gin context.
const CurrentUserKey = "currentUser"

// DemoSession scopes every request to the single demo user. A signed
// session cookie is minted lazily on first contact; there is no login
// surface in this build.
func DemoSession(cfg *config.Config, st store.Store) gin.HandlerFunc {
	ttl := time.Duration(cfg.Session.ExpireHours) * time.Hour

	return func(c *gin.Context) {
		if tokenStr, err := c.Cookie(cfg.Session.CookieName); err == nil && tokenStr != "" {
			if claims, err := util.ParseToken(cfg.Session.Secret, tokenStr); err == nil {
				if user, err := st.GetUser(claims.UserID); err == nil {
					c.Set(CurrentUserKey, user)
					c.Next()
					return
				}
			}
		}

		user, err := st.GetUserByEmail(cfg.Demo.Email)
		if errors.Is(err, store.ErrNotFound) {
			user = &models.User{Email: cfg.Demo.Email, Name: cfg.Demo.Name}
			err = st.CreateUser(user)
		}
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to resolve session")
			c.Abort()
			return
		}

		if token, err := util.GenerateToken(cfg.Session.Secret, user.ID, ttl); err == nil {
			c.SetCookie(cfg.Session.CookieName, token, int(ttl.Seconds()), "/", "", false, true)
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}
