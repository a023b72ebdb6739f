package service

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"gestao-associado-svc/internal/repository"
	"gestao-associado-svc/pkg/logger"
)

// ReportService produces downloadable reports from the dues ledger
type ReportService interface {
	ExportDuesToExcel(memberID *uint) ([]byte, string, error)
}

// reportService implements ReportService
type reportService struct {
	dueRepo repository.DueRepository
	logger  *logger.Logger
}

// NewReportService creates a new instance of ReportService
func NewReportService(dueRepo repository.DueRepository, logger *logger.Logger) ReportService {
	return &reportService{
		dueRepo: dueRepo,
		logger:  logger,
	}
}

// ExportDuesToExcel exports the dues listing to an Excel file, optionally
// filtered to one member
func (s *reportService) ExportDuesToExcel(memberID *uint) ([]byte, string, error) {
	rows, err := s.dueRepo.List(memberID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get dues for export: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Error("Failed to close Excel file")
		}
	}()

	sheetName := "Mensalidades"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"No", "CPF", "Nome", "Valor", "Emissão", "Vencimento", "Status", "Data Pagamento", "Status Pagamento"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "I1", headerStyle)
	}

	for i, due := range rows {
		row := i + 2

		paymentDate := ""
		if due.PaymentDate != nil {
			paymentDate = due.PaymentDate.Format("02/01/2006")
		}

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), due.NationalID)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), due.MemberName)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), due.Amount.Float64())
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), due.IssueDate.Format("02/01/2006"))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), due.DueDate.Format("02/01/2006"))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), due.StatusLabel)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), paymentDate)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), due.PaymentStatusLabel)
	}

	for i := 1; i <= len(headers); i++ {
		col, _ := excelize.ColumnNumberToName(i)
		f.SetColWidth(sheetName, col, col, 18)
	}

	if f.GetSheetName(0) == "Sheet1" && sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("mensalidades_%s.xlsx", timestamp)

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	return buffer.Bytes(), filename, nil
}
