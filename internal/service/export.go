package service

import (
	"fmt"

	"github.com/Rawfaux/Haustechnik/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// ExportService renders planner views into Excel workbooks.
type ExportService struct {
	logger *logrus.Logger
}

func NewExportService() *ExportService {
	return &ExportService{logger: logrus.New()}
}

// WeekPlanWorkbook renders a week plan into a one-sheet workbook: a section
// per template, one line per compacted range, handovers appended below.
func (s *ExportService) WeekPlanWorkbook(plan *WeekPlan) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := fmt.Sprintf("KW %02d", plan.Window.Week)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	conflictStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Strike: true, Color: "CC0000"},
	})
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Schichtplan KW %d (%s - %s)",
		plan.Window.Week,
		plan.Window.Monday.Format("02.01.2006"),
		plan.Window.Sunday.Format("02.01.2006"))
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", bold); err != nil {
		return nil, err
	}

	row := 3
	for _, group := range plan.Groups {
		cell := fmt.Sprintf("A%d", row)
		header := fmt.Sprintf("%s (%s - %s)",
			group.Template.Name, group.Template.StartTime, group.Template.EndTime)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, bold); err != nil {
			return nil, err
		}
		row++

		for _, rng := range group.Ranges {
			nameCell := fmt.Sprintf("A%d", row)
			spanCell := fmt.Sprintf("B%d", row)
			if err := f.SetCellValue(sheet, nameCell, rng.Employee.DisplayName()); err != nil {
				return nil, err
			}
			span := fmt.Sprintf("%s - %s",
				rng.StartDate.Format("02.01."), rng.EndDate.Format("02.01."))
			if err := f.SetCellValue(sheet, spanCell, span); err != nil {
				return nil, err
			}
			if rng.Conflict != nil {
				if err := f.SetCellStyle(sheet, nameCell, spanCell, conflictStyle); err != nil {
					return nil, err
				}
				note := fmt.Sprintf("abwesend: %s", rng.Conflict.Type)
				if err := f.SetCellValue(sheet, fmt.Sprintf("C%d", row), note); err != nil {
					return nil, err
				}
			}
			row++
		}

		for _, h := range group.Handovers {
			cell := fmt.Sprintf("A%d", row)
			text := fmt.Sprintf("Wechsel: MA %d → MA %d (%s, %s - %s)",
				h.OriginalEmployeeID, h.ReplacementEmployeeID, h.Reason,
				h.StartDate.Format("02.01."), h.EndDate.Format("02.01."))
			if err := f.SetCellValue(sheet, cell, text); err != nil {
				return nil, err
			}
			row++
		}
		row++
	}

	s.writeAbsenceSection(f, sheet, plan, row)

	if err := f.SetColWidth(sheet, "A", "A", 32); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "B", "C", 20); err != nil {
		return nil, err
	}

	s.logger.WithField("week", plan.Window.Week).Info("Week plan exported")
	return f, nil
}

func (s *ExportService) writeAbsenceSection(f *excelize.File, sheet string, plan *WeekPlan, row int) int {
	order := []string{
		models.AbsenceTypeVacation,
		models.AbsenceTypeSick,
		models.AbsenceTypeCompTime,
		models.AbsenceTypeTraining,
		models.AbsenceTypeSpecialLeave,
	}
	for _, absenceType := range order {
		absences := plan.AbsencesByType[absenceType]
		for _, a := range absences {
			text := fmt.Sprintf("%s: %s %s - %s",
				absenceType, a.Employee.DisplayName(),
				a.StartDate.Format("02.01."), a.EndDate.Format("02.01."))
			if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), text); err != nil {
				return row
			}
			row++
		}
	}
	return row
}
