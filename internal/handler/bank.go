package handler

import (
	"net/http"
	"time"

	"github.com/Butterfli-Software/sanki-yedim/internal/bank"
	"github.com/Butterfli-Software/sanki-yedim/internal/util"

	"github.com/gin-gonic/gin"
)

// BankHandler serves the mock external-bank integration endpoints.
type BankHandler struct {
	Providers *bank.Factory
}

func NewBankHandler(providers *bank.Factory) *BankHandler {
	return &BankHandler{Providers: providers}
}

// Link hands out a mock link token for the sandbox flow.
func (h *BankHandler) Link(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"link_token": "link-sandbox-mock-token",
		"expiration": time.Now().Add(time.Hour).Format(time.RFC3339),
	})
}

// Accounts lists the accounts visible through the caller's provider.
// Manual returns an empty list; sandbox returns the fixed demo accounts.
func (h *BankHandler) Accounts(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	provider, err := h.Providers.ForUser(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to fetch bank accounts")
		return
	}

	accounts, err := provider.ListAccounts(c.Request.Context(), user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to fetch bank accounts")
		return
	}
	c.JSON(http.StatusOK, accounts)
}
