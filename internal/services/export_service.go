package services

import (
	"bytes"
	"fmt"

	"github.com/alimgiray/hrboard/internal/models"
	"github.com/xuri/excelize/v2"
)

// ExportService renders an employee roster as an XLSX workbook
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

var exportHeaders = []string{"ID", "First Name", "Last Name", "Email", "Age", "Department", "Performance Rating", "Phone"}

// ExportEmployees writes the roster into a single-sheet workbook and returns
// the serialized file
func (s *ExportService) ExportEmployees(employees []models.Employee) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Employees"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, employee := range employees {
		values := []interface{}{
			employee.ID,
			employee.FirstName,
			employee.LastName,
			employee.Email,
			employee.Age,
			employee.Department,
			employee.PerformanceRating,
			employee.Phone,
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	return buf.Bytes(), nil
}
