package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/Butterfli-Software/sanki-yedim/internal/models"
	"github.com/Butterfli-Software/sanki-yedim/internal/store"
	"github.com/Butterfli-Software/sanki-yedim/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// EntryHandler serves the entry CRUD endpoints.
type EntryHandler struct {
	Store store.Store
}

func NewEntryHandler(st store.Store) *EntryHandler {
	return &EntryHandler{Store: st}
}

// ---------- request shapes ----------

type createEntryReq struct {
	Item     string      `json:"item"`
	Amount   json.Number `json:"amount"`
	Category string      `json:"category"`
	Note     string      `json:"note"`
	Date     string      `json:"date"`
}

type updateEntryReq struct {
	Item     *string      `json:"item"`
	Amount   *json.Number `json:"amount"`
	Category *string      `json:"category"`
	Note     *string      `json:"note"`
	Date     *string      `json:"date"`
}

// ListEntries returns the caller's entries, newest first. Optional query
// filters: from, to (YYYY-MM-DD), category, search.
func (h *EntryHandler) ListEntries(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var filter store.EntryFilter
	if s := c.Query("from"); s != "" {
		t, err := util.ParseDate(s)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeValidation, "invalid from date, want YYYY-MM-DD")
			return
		}
		filter.From = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := util.ParseDate(s)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeValidation, "invalid to date, want YYYY-MM-DD")
			return
		}
		// end date is inclusive: match anything before the next day
		t = t.AddDate(0, 0, 1)
		filter.To = &t
	}
	filter.Category = c.Query("category")
	filter.Search = c.Query("search")

	entries, err := h.Store.ListEntries(user.ID, filter)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to fetch entries")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// CreateEntry logs a new "as-if" purchase.
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeValidation, "Invalid request data")
		return
	}

	details := map[string]string{}
	req.Item = strings.TrimSpace(req.Item)
	if err := util.ValidateItem(req.Item); err != nil {
		details["item"] = err.Error()
	}
	amount, err := util.ParseAmount(req.Amount.String())
	if err != nil {
		details["amount"] = err.Error()
	}
	if err := util.ValidateCategory(req.Category); err != nil {
		details["category"] = err.Error()
	}
	if err := util.ValidateNote(req.Note); err != nil {
		details["note"] = err.Error()
	}

	date := time.Now()
	if req.Date != "" {
		t, err := util.ParseDate(req.Date)
		if err != nil {
			details["date"] = err.Error()
		} else {
			date = t
		}
	}

	if len(details) > 0 {
		util.ErrorDetails(c, http.StatusBadRequest, util.CodeValidation, "Invalid request data", details)
		return
	}

	entry := models.Entry{
		UserID:   user.ID,
		Item:     req.Item,
		Amount:   amount,
		Category: req.Category,
		Note:     req.Note,
		Date:     date,
	}
	if err := h.Store.CreateEntry(&entry); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to create entry")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// UpdateEntry applies a partial update to one of the caller's entries.
func (h *EntryHandler) UpdateEntry(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req updateEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeValidation, "Invalid request data")
		return
	}

	var patch store.EntryPatch
	details := map[string]string{}

	if req.Item != nil {
		item := strings.TrimSpace(*req.Item)
		if err := util.ValidateItem(item); err != nil {
			details["item"] = err.Error()
		}
		patch.Item = &item
	}
	if req.Amount != nil {
		amount, err := util.ParseAmount(req.Amount.String())
		if err != nil {
			details["amount"] = err.Error()
		}
		patch.Amount = &amount
	}
	if req.Category != nil {
		if err := util.ValidateCategory(*req.Category); err != nil {
			details["category"] = err.Error()
		}
		patch.Category = req.Category
	}
	if req.Note != nil {
		if err := util.ValidateNote(*req.Note); err != nil {
			details["note"] = err.Error()
		}
		patch.Note = req.Note
	}
	if req.Date != nil {
		t, err := util.ParseDate(*req.Date)
		if err != nil {
			details["date"] = err.Error()
		}
		patch.Date = &t
	}

	if len(details) > 0 {
		util.ErrorDetails(c, http.StatusBadRequest, util.CodeValidation, "Invalid request data", details)
		return
	}

	entry, err := h.Store.UpdateEntry(c.Param("id"), user.ID, patch)
	if err == store.ErrNotFound {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "Entry not found")
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to update entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteEntry removes one of the caller's entries.
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.Store.DeleteEntry(c.Param("id"), user.ID); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to delete entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// sumAmounts adds up the given entries' amounts.
func sumAmounts(entries []models.Entry) decimal.Decimal {
	total := decimal.Zero
	for i := range entries {
		total = total.Add(entries[i].Amount)
	}
	return total
}
