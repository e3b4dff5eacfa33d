package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"expense/database"
	"expense/middleware"
	"expense/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct{}

// NewExportHandler 创建导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// exportColumns 导出表头
var exportColumns = []string{"日期", "名称", "类别", "单价", "数量", "金额", "备注"}

// monthExpenses 取指定年月的消费记录及类别名
func (h *ExportHandler) monthExpenses(c *gin.Context) (int, int, []models.Expense, map[uint]string, bool) {
	userID := middleware.GetCurrentUserID(c)

	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		BadRequest(c, "year 和 month 为必填参数")
		return 0, 0, nil, nil, false
	}

	start, end := models.MonthRange(year, month)
	var expenses []models.Expense
	if err := database.DB.
		Where("user_id = ? AND expenditure_date >= ? AND expenditure_date < ?", userID, start, end).
		Order("expenditure_date ASC, id ASC").
		Find(&expenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询消费记录失败"))
		return 0, 0, nil, nil, false
	}

	return year, month, expenses, loadCategoryNames(expenses), true
}

func categoryNameOf(e *models.Expense, names map[uint]string) string {
	if name, ok := names[e.CategoryID]; ok {
		return name
	}
	return "未分类"
}

// ExportCSV 导出 CSV
// @Summary 导出消费记录 CSV
// @Description 导出当前用户指定年月的消费记录为 CSV 文件，带 UTF-8 BOM 以便 Excel 正确识别中文
// @Tags 导出
// @Produce text/csv
// @Security BearerAuth
// @Param year query int true "年份" example(2025)
// @Param month query int true "月份 1..12" example(7)
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Response "缺少年份或月份"
// @Failure 401 {object} Response "未授权"
// @Router /api/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	year, month, expenses, names, ok := h.monthExpenses(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	// BOM 让 Excel 按 UTF-8 打开，否则中文会乱码
	buf.WriteString("\xEF\xBB\xBF")

	w := csv.NewWriter(&buf)
	_ = w.Write(exportColumns)
	var total models.Cents
	for i := range expenses {
		e := &expenses[i]
		total += e.Total()
		_ = w.Write([]string{
			e.SpentOn.Format("2006-01-02"),
			e.Name,
			categoryNameOf(e, names),
			strconv.FormatFloat(e.Price.Float64(), 'f', 2, 64),
			strconv.Itoa(e.Count),
			strconv.FormatFloat(e.Total().Float64(), 'f', 2, 64),
			e.Description,
		})
	}
	_ = w.Write([]string{"合计", "", "", "", "", strconv.FormatFloat(total.Float64(), 'f', 2, 64), ""})
	w.Flush()
	if err := w.Error(); err != nil {
		InternalError(c, SafeErrorMessage(err, "生成 CSV 失败"))
		return
	}

	filename := fmt.Sprintf("expenses_%04d-%02d.csv", year, month)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出 Excel
// @Summary 导出消费记录 Excel
// @Description 导出当前用户指定年月的消费记录为 xlsx 文件，末行为合计
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param year query int true "年份" example(2025)
// @Param month query int true "月份 1..12" example(7)
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} Response "缺少年份或月份"
// @Failure 401 {object} Response "未授权"
// @Router /api/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	year, month, expenses, names, ok := h.monthExpenses(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("%04d-%02d", year, month)
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, col)
	}
	f.SetCellStyle(sheet, "A1", "G1", headerStyle)

	var total models.Cents
	row := 2
	for i := range expenses {
		e := &expenses[i]
		total += e.Total()
		values := []interface{}{
			e.SpentOn.Format("2006-01-02"),
			e.Name,
			categoryNameOf(e, names),
			e.Price.Float64(),
			e.Count,
			e.Total().Float64(),
			e.Description,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	boldStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "合计")
	f.SetCellValue(sheet, fmt.Sprintf("F%d", row), total.Float64())
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("G%d", row), boldStyle)

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "C", 16)
	f.SetColWidth(sheet, "G", "G", 24)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		InternalError(c, SafeErrorMessage(err, "生成 Excel 失败"))
		return
	}

	filename := fmt.Sprintf("expenses_%04d-%02d.xlsx", year, month)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
