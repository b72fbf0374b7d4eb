package handler

import (
	"net/http"

	"github.com/Butterfli-Software/sanki-yedim/internal/bank"
	"github.com/Butterfli-Software/sanki-yedim/internal/models"
	"github.com/Butterfli-Software/sanki-yedim/internal/store"
	"github.com/Butterfli-Software/sanki-yedim/internal/util"

	"github.com/gin-gonic/gin"
)

// TransferHandler serves the transfer endpoints.
type TransferHandler struct {
	Store     store.Store
	Providers *bank.Factory
}

func NewTransferHandler(st store.Store, providers *bank.Factory) *TransferHandler {
	return &TransferHandler{Store: st, Providers: providers}
}

type createTransferReq struct {
	EntryIDs []string `json:"entryIds"`
}

// ListTransfers returns the caller's transfers, newest first.
func (h *TransferHandler) ListTransfers(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	transfers, err := h.Store.ListTransfers(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to fetch transfers")
		return
	}
	c.JSON(http.StatusOK, transfers)
}

// CreateTransfer batches the given entries into a transfer via the
// caller's active provider. The total is recomputed from stored entries;
// ids that resolve to nothing are silently ignored, but zero resolvable
// ids rejects the request.
func (h *TransferHandler) CreateTransfer(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createTransferReq
	if err := c.ShouldBindJSON(&req); err != nil || len(req.EntryIDs) == 0 {
		util.ErrorDetails(c, http.StatusBadRequest, util.CodeValidation, "Invalid request data",
			map[string]string{"entryIds": "must be a non-empty list of entry ids"})
		return
	}

	entries, err := h.Store.ListEntries(user.ID, store.EntryFilter{})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to create transfer")
		return
	}

	wanted := make(map[string]bool, len(req.EntryIDs))
	for _, id := range req.EntryIDs {
		wanted[id] = true
	}
	var selected []models.Entry
	for i := range entries {
		if wanted[entries[i].ID] {
			selected = append(selected, entries[i])
		}
	}

	if len(selected) == 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidReq, "No valid entries selected")
		return
	}

	ids := make([]string, len(selected))
	for i := range selected {
		ids[i] = selected[i].ID
	}

	provider, err := h.Providers.ForUser(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to create transfer")
		return
	}

	transfer, err := provider.CreateTransfer(c.Request.Context(), bank.CreateTransferArgs{
		UserID:      user.ID,
		EntryIDs:    ids,
		TotalAmount: sumAmounts(selected),
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to create transfer")
		return
	}
	c.JSON(http.StatusCreated, transfer)
}

// CompleteTransfer invokes the provider completion hook when it has one,
// then marks the transfer completed. The two steps are independent calls;
// re-completion leaves the transfer completed.
func (h *TransferHandler) CompleteTransfer(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := h.Store.GetTransfer(id, user.ID); err != nil {
		if err == store.ErrNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "Transfer not found")
			return
		}
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to complete transfer")
		return
	}

	provider, err := h.Providers.ForUser(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to complete transfer")
		return
	}
	if completer, ok := provider.(bank.Completer); ok {
		if err := completer.MarkCompleted(c.Request.Context(), id, user.ID); err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to complete transfer")
			return
		}
	}

	updated, err := h.Store.CompleteTransfer(id, user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to complete transfer")
		return
	}
	c.JSON(http.StatusOK, updated)
}
