package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Butterfli-Software/sanki-yedim/internal/models"
	"github.com/Butterfli-Software/sanki-yedim/internal/store"
	"github.com/Butterfli-Software/sanki-yedim/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PreferenceHandler serves preference and provider-settings endpoints.
type PreferenceHandler struct {
	Store store.Store
}

func NewPreferenceHandler(st store.Store) *PreferenceHandler {
	return &PreferenceHandler{Store: st}
}

type updatePreferencesReq struct {
	MonthlyGoal      *json.Number `json:"monthlyGoal"`
	YearlyGoal       *json.Number `json:"yearlyGoal"`
	BankProvider     *string      `json:"bankProvider"`
	FromAccountLabel *string      `json:"fromAccountLabel"`
	ToAccountLabel   *string      `json:"toAccountLabel"`
	SandboxFromID    *string      `json:"sandboxFromId"`
	SandboxToID      *string      `json:"sandboxToId"`
}

type updateProviderReq struct {
	Provider         string  `json:"provider"`
	FromAccountLabel *string `json:"fromAccountLabel"`
	ToAccountLabel   *string `json:"toAccountLabel"`
	SandboxFromID    *string `json:"sandboxFromId"`
	SandboxToID      *string `json:"sandboxToId"`
}

func validProvider(p string) bool {
	return p == models.ProviderManual || p == models.ProviderSandbox
}

// parseGoal parses an optional non-negative goal amount.
func parseGoal(n *json.Number, field string, details map[string]string) *decimal.Decimal {
	if n == nil {
		return nil
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil || d.IsNegative() {
		details[field] = "must be a non-negative number"
		return nil
	}
	return &d
}

// GetPreferences fetches the caller's preferences, creating the default
// row on first access.
func (h *PreferenceHandler) GetPreferences(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	prefs, err := h.Store.EnsurePreferences(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to fetch preferences")
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// UpdatePreferences applies a partial update of goals and provider fields.
func (h *PreferenceHandler) UpdatePreferences(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req updatePreferencesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeValidation, "Invalid request data")
		return
	}

	details := map[string]string{}
	patch := store.PreferencePatch{
		FromAccountLabel: req.FromAccountLabel,
		ToAccountLabel:   req.ToAccountLabel,
		SandboxFromID:    req.SandboxFromID,
		SandboxToID:      req.SandboxToID,
	}
	patch.MonthlyGoal = parseGoal(req.MonthlyGoal, "monthlyGoal", details)
	patch.YearlyGoal = parseGoal(req.YearlyGoal, "yearlyGoal", details)
	if req.BankProvider != nil {
		if !validProvider(*req.BankProvider) {
			details["bankProvider"] = "must be one of: manual, sandbox"
		}
		patch.BankProvider = req.BankProvider
	}

	if len(details) > 0 {
		util.ErrorDetails(c, http.StatusBadRequest, util.CodeValidation, "Invalid request data", details)
		return
	}

	prefs, err := h.Store.UpdatePreferences(user.ID, patch)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to update preferences")
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// UpdateProvider upserts the chosen provider plus its account fields.
func (h *PreferenceHandler) UpdateProvider(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req updateProviderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeValidation, "Invalid request data")
		return
	}
	if !validProvider(req.Provider) {
		util.ErrorDetails(c, http.StatusBadRequest, util.CodeValidation, "Invalid request data",
			map[string]string{"provider": "must be one of: manual, sandbox"})
		return
	}

	patch := store.PreferencePatch{
		BankProvider:     &req.Provider,
		FromAccountLabel: req.FromAccountLabel,
		ToAccountLabel:   req.ToAccountLabel,
		SandboxFromID:    req.SandboxFromID,
		SandboxToID:      req.SandboxToID,
	}
	prefs, err := h.Store.UpdatePreferences(user.ID, patch)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to update provider")
		return
	}
	c.JSON(http.StatusOK, prefs)
}
