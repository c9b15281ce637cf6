package persistence

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"task-manager/internal/domain"
)

var pdfColumns = []struct {
	title string
	width float64
}{
	{"ID", 12},
	{"Description", 78},
	{"Due Date", 26},
	{"Priority", 24},
	{"Status", 30},
}

// WritePDF renders a printable report: one table per category, categories in
// order of first appearance and tasks in insertion order.
func WritePDF(w io.Writer, title string, tasks []domain.Task) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(12)

	if len(tasks) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.Cell(0, 8, "No tasks")
		return pdf.Output(w)
	}

	order, groups := groupByCategory(tasks)
	for _, category := range order {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, tr(fmt.Sprintf("%s (%d)", category, len(groups[category]))))
		pdf.Ln(9)

		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, col := range pdfColumns {
			pdf.CellFormat(col.width, 7, col.title, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		for _, task := range groups[category] {
			row := []string{
				strconv.Itoa(task.ID),
				task.Description,
				task.DueDateText(),
				task.Priority,
				task.Status,
			}
			for i, col := range pdfColumns {
				pdf.CellFormat(col.width, 6, tr(row[i]), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(4)
	}

	return pdf.Output(w)
}

func groupByCategory(tasks []domain.Task) ([]string, map[string][]domain.Task) {
	var order []string
	groups := make(map[string][]domain.Task)
	for _, task := range tasks {
		if _, ok := groups[task.Category]; !ok {
			order = append(order, task.Category)
		}
		groups[task.Category] = append(groups[task.Category], task)
	}
	return order, groups
}
