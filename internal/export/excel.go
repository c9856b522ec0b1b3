// Package export renders candidate data as downloadable reports in CSV,
// JSON, and Excel formats.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mariana/talent-hub/internal/db"
)

// WriteExcel writes an Excel workbook with a candidates sheet and a summary
// sheet for a job's pipeline.
func WriteExcel(w io.Writer, job *db.Job, candidates []*db.Candidate) error {
	f := excelize.NewFile()
	defer f.Close()

	candidatesSheet := "Candidatos"
	summarySheet := "Resumo"

	f.SetSheetName("Sheet1", candidatesSheet)
	f.NewSheet(summarySheet)

	if err := writeCandidatesSheet(f, candidatesSheet, candidates); err != nil {
		return fmt.Errorf("failed to build candidates sheet: %w", err)
	}
	if err := writeSummarySheet(f, summarySheet, job, candidates); err != nil {
		return fmt.Errorf("failed to build summary sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeCandidatesSheet(f *excelize.File, sheet string, candidates []*db.Candidate) error {
	f.SetColWidth(sheet, "A", "A", 25)
	f.SetColWidth(sheet, "B", "C", 20)
	f.SetColWidth(sheet, "D", "D", 12)
	f.SetColWidth(sheet, "E", "F", 14)
	f.SetColWidth(sheet, "G", "G", 30)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	headers := []string{"Nome", "E-mail", "Telefone", "Status", "Fit", "Inscrição", "Resumo"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for i, c := range candidates {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), c.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), c.Resume.Contact.Email)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), c.Resume.Contact.Phone)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), c.Status)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), c.FitScore)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), c.ApplicationDate.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), c.Summary)
	}

	if len(candidates) > 0 {
		f.AutoFilter(sheet, fmt.Sprintf("A1:G%d", len(candidates)+1), []excelize.AutoFilterOptions{})
	}
	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	return nil
}

func writeSummarySheet(f *excelize.File, sheet string, job *db.Job, candidates []*db.Candidate) error {
	f.SetColWidth(sheet, "A", "A", 25)
	f.SetColWidth(sheet, "B", "B", 40)

	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	setLabeled := func(row int, label string, value interface{}) {
		labelCell := fmt.Sprintf("A%d", row)
		f.SetCellValue(sheet, labelCell, label)
		f.SetCellStyle(sheet, labelCell, labelCell, labelStyle)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), value)
	}

	setLabeled(1, "Vaga:", job.Title)
	setLabeled(2, "Departamento:", job.Department)
	setLabeled(3, "Gerado em:", time.Now().Format("2006-01-02 15:04:05"))
	setLabeled(4, "Total de candidatos:", len(candidates))

	counts := CountByStatus(candidates)
	row := 6
	for _, status := range db.ValidStatuses {
		if counts[status] == 0 {
			continue
		}
		setLabeled(row, status+":", counts[status])
		row++
	}
	return nil
}

// CountByStatus tallies candidates per pipeline status.
func CountByStatus(candidates []*db.Candidate) map[string]int {
	counts := make(map[string]int)
	for _, c := range candidates {
		counts[c.Status]++
	}
	return counts
}
