package handler

import (
	"net/http"
	"strconv"

	"github.com/Butterfli-Software/sanki-yedim/internal/store"
	"github.com/Butterfli-Software/sanki-yedim/internal/util"

	"github.com/gin-gonic/gin"
)

// AuditHandler lists the caller's recorded write operations.
type AuditHandler struct {
	Store store.Store
}

func NewAuditHandler(st store.Store) *AuditHandler {
	return &AuditHandler{Store: st}
}

// ListLogs returns the most recent audit rows, newest first.
func (h *AuditHandler) ListLogs(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	logs, err := h.Store.ListAuditLogs(user.ID, limit)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to fetch audit logs")
		return
	}
	c.JSON(http.StatusOK, logs)
}
