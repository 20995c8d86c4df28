package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"blog-api/internal/models"
	"blog-api/internal/service"
	"blog-api/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出文章列表
type ExportHandler struct {
	Posts *service.PostService
}

func NewExportHandler(posts *service.PostService) *ExportHandler {
	return &ExportHandler{Posts: posts}
}

func exportRow(p *models.Post) []string {
	author := ""
	if p.User != nil {
		author = p.User.Name
	}
	return []string{
		strconv.FormatUint(uint64(p.ID), 10),
		p.Title,
		author,
		strconv.FormatBool(p.Published),
		p.CreatedAt.Format("2006-01-02 15:04"),
	}
}

var exportHeaders = []string{"ID", "Title", "Author", "Published", "Created"}

// ExportCSV 导出所有文章为 CSV
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	posts, err := h.Posts.FindAll()
	if err != nil {
		respondServiceError(c, err, "Post not found")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"posts_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	// UTF-8 BOM，Excel 打开时正确识别编码
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer.Write(exportHeaders)
	for i := range posts {
		writer.Write(exportRow(&posts[i]))
	}
}

// ExportXLSX 导出所有文章为 XLSX
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	posts, err := h.Posts.FindAll()
	if err != nil {
		respondServiceError(c, err, "Post not found")
		return
	}

	f := excelize.NewFile()
	sheetName := "Posts"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx := range posts {
		row := idx + 2
		for col, val := range exportRow(&posts[idx]) {
			cell := fmt.Sprintf("%c%d", 'A'+col, row)
			f.SetCellValue(sheetName, cell, val)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 40)
	f.SetColWidth(sheetName, "C", "C", 20)
	f.SetColWidth(sheetName, "D", "D", 10)
	f.SetColWidth(sheetName, "E", "E", 18)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"posts_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal server error")
	}
}
