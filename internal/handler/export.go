package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/Butterfli-Software/sanki-yedim/internal/models"
	"github.com/Butterfli-Software/sanki-yedim/internal/store"
	"github.com/Butterfli-Software/sanki-yedim/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler streams the caller's entries as CSV or XLSX.
type ExportHandler struct {
	Store store.Store
}

func NewExportHandler(st store.Store) *ExportHandler {
	return &ExportHandler{Store: st}
}

var exportHeaders = []string{"Item", "Amount", "Category", "Note", "Date", "Swept"}

func exportRow(e *models.Entry) []string {
	swept := ""
	if e.TransferID != nil {
		swept = "yes"
	}
	return []string{
		e.Item,
		e.Amount.StringFixed(2),
		e.Category,
		e.Note,
		e.Date.Format("2006-01-02"),
		swept,
	}
}

// ExportCSV downloads the entry list as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	entries, err := h.Store.ListEntries(user.ID, store.EntryFilter{})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to export entries")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"entries_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for i := range entries {
		writer.Write(exportRow(&entries[i]))
	}
}

// ExportXLSX downloads the entry list as an Excel workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	entries, err := h.Store.ListEntries(user.ID, store.EntryFilter{})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to export entries")
		return
	}

	f := excelize.NewFile()
	sheetName := "Entries"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to export entries")
		return
	}
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx := range entries {
		row := idx + 2
		for col, value := range exportRow(&entries[idx]) {
			cell := fmt.Sprintf("%c%d", 'A'+col, row)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 24)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 18)
	f.SetColWidth(sheetName, "D", "D", 36)
	f.SetColWidth(sheetName, "E", "F", 12)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"entries_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to export entries")
	}
}
