package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Butterfli-Software/sanki-yedim/internal/stats"
	"github.com/Butterfli-Software/sanki-yedim/internal/store"
	"github.com/Butterfli-Software/sanki-yedim/internal/util"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves the derived dashboard figures.
type StatsHandler struct {
	Store store.Store
	Now   func() time.Time
}

func NewStatsHandler(st store.Store) *StatsHandler {
	return &StatsHandler{Store: st, Now: time.Now}
}

// GetStats returns KPIs, the streak, goal progress and the 30-day series.
func (h *StatsHandler) GetStats(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	entries, err := h.Store.ListEntries(user.ID, store.EntryFilter{})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to fetch stats")
		return
	}
	prefs, err := h.Store.EnsurePreferences(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to fetch stats")
		return
	}

	c.JSON(http.StatusOK, stats.Summarize(entries, prefs, h.Now()))
}

// Sparkline renders the 30-day series as an SVG trend chart. Optional
// width/height query parameters override the default pixel box.
func (h *StatsHandler) Sparkline(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	entries, err := h.Store.ListEntries(user.ID, store.EntryFilter{})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to render sparkline")
		return
	}

	width, _ := strconv.Atoi(c.DefaultQuery("width", "0"))
	height, _ := strconv.Atoi(c.DefaultQuery("height", "0"))

	var series = stats.DailySeries(entries, h.Now(), stats.SeriesDays)
	if len(entries) == 0 {
		series = nil
	}
	svg := stats.SparklineSVG(series, width, height)
	c.Data(http.StatusOK, "image/svg+xml", []byte(svg))
}
