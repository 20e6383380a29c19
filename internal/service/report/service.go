package report

import (
	"context"
	"fmt"
	"time"

	"github.com/brightserv/ops-backend-go/internal/domain/cashflow"
	"github.com/brightserv/ops-backend-go/internal/domain/employee"
	"github.com/brightserv/ops-backend-go/internal/domain/report"
	"github.com/brightserv/ops-backend-go/internal/domain/workrecord"
	"github.com/brightserv/ops-backend-go/internal/pkg/dateutil"
	"github.com/brightserv/ops-backend-go/internal/service/payment"
	"github.com/xuri/excelize/v2"
)

type ReportServiceImpl struct {
	employee.EmployeeRepository
	workrecord.WorkRecordRepository
	cashflow.RecordRepository
}

func NewReportService(
	employeeRepository employee.EmployeeRepository,
	workRecordRepository workrecord.WorkRecordRepository,
	cashflowRepository cashflow.RecordRepository,
) report.ReportService {
	return &ReportServiceImpl{
		EmployeeRepository:   employeeRepository,
		WorkRecordRepository: workRecordRepository,
		RecordRepository:     cashflowRepository,
	}
}

// Timesheet implements report.ReportService. One row per active employee
// with worked totals and the derived payment status for the month.
func (s *ReportServiceImpl) Timesheet(ctx context.Context, req report.TimesheetRequest) (report.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return report.TimesheetResponse{}, err
	}

	employees, err := s.EmployeeRepository.List(ctx, true)
	if err != nil {
		return report.TimesheetResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	payrolls, err := s.RecordRepository.ListPayrollForPeriod(ctx, req.Year, req.Month)
	if err != nil {
		return report.TimesheetResponse{}, fmt.Errorf("failed to list payroll records: %w", err)
	}

	now := time.Now()
	rows := make([]report.TimesheetRow, 0, len(employees))

	for _, emp := range employees {
		records, err := s.WorkRecordRepository.ListForMonth(ctx, emp.ID, req.Year, time.Month(req.Month))
		if err != nil {
			return report.TimesheetResponse{}, fmt.Errorf("failed to list work records: %w", err)
		}

		row := report.TimesheetRow{
			EmployeeID:   emp.ID,
			EmployeeName: emp.DisplayName,
			DueDate:      dateutil.Format(payment.DueDate(req.Year, req.Month)),
		}

		for _, rec := range records {
			if rec.IsLeave {
				row.LeaveDays++
				continue
			}
			if rec.Payable() {
				row.DaysWorked++
				row.TotalHours += rec.HoursWorked()
			}
		}

		key := payment.Key{EmployeeID: emp.ID, Year: req.Year, Month: req.Month}
		row.PaymentStatus = string(payment.Resolve(now, key, payrolls))

		for _, p := range payrolls {
			if p.EmployeeID != nil && *p.EmployeeID == emp.ID {
				amount := p.TotalAmount.String()
				row.PayrollAmount = &amount
				break
			}
		}

		rows = append(rows, row)
	}

	return report.TimesheetResponse{
		Year:  req.Year,
		Month: req.Month,
		Rows:  rows,
	}, nil
}

// TimesheetWorkbook implements report.ReportService. Renders the timesheet
// as an xlsx workbook and returns the bytes plus a suggested filename.
func (s *ReportServiceImpl) TimesheetWorkbook(ctx context.Context, req report.TimesheetRequest) ([]byte, string, error) {
	sheet, err := s.Timesheet(ctx, req)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Timesheet"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"Employee", "Days Worked", "Leave Days", "Total Hours", "Payroll Amount", "Due Date", "Payment Status"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, "", fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, "", fmt.Errorf("failed to write header: %w", err)
		}
	}

	for rowIdx, row := range sheet.Rows {
		values := []interface{}{
			row.EmployeeName,
			row.DaysWorked,
			row.LeaveDays,
			row.TotalHours,
			"",
			row.DueDate,
			row.PaymentStatus,
		}
		if row.PayrollAmount != nil {
			values[4] = *row.PayrollAmount
		}

		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, "", fmt.Errorf("failed to build cell name: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, "", fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to render workbook: %w", err)
	}

	filename := fmt.Sprintf("timesheet-%04d-%02d.xlsx", req.Year, req.Month)
	return buf.Bytes(), filename, nil
}
