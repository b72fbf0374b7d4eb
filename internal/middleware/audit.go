package middleware

import (
	"net/http"

	"github.com/Butterfli-Software/sanki-yedim/internal/models"
	"github.com/Butterfli-Software/sanki-yedim/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Audit records authenticated write operations after they finish. Reads
// are not logged.
func Audit(st store.Store, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet {
			return
		}

		v, ok := c.Get(CurrentUserKey)
		if !ok {
			return
		}
		user, ok := v.(*models.User)
		if !ok || user == nil {
			return
		}

		entry := models.AuditLog{
			UserID:    user.ID,
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Status:    c.Writer.Status(),
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		if err := st.CreateAuditLog(&entry); err != nil {
			log.Warn("audit write failed", zap.Error(err))
		}
	}
}
