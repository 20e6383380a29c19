package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/brightserv/ops-backend-go/internal/domain/report"
	"github.com/brightserv/ops-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Timesheet(w http.ResponseWriter, r *http.Request)
	TimesheetExport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func (h *reportHandlerImpl) Timesheet(w http.ResponseWriter, r *http.Request) {
	req, ok := timesheetRequestFromQuery(w, r)
	if !ok {
		return
	}

	result, err := h.reportService.Timesheet(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) TimesheetExport(w http.ResponseWriter, r *http.Request) {
	req, ok := timesheetRequestFromQuery(w, r)
	if !ok {
		return
	}

	data, filename, err := h.reportService.TimesheetWorkbook(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}

func timesheetRequestFromQuery(w http.ResponseWriter, r *http.Request) (report.TimesheetRequest, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "year query parameter is required", nil)
		return report.TimesheetRequest{}, false
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "month query parameter is required", nil)
		return report.TimesheetRequest{}, false
	}

	return report.TimesheetRequest{Year: year, Month: month}, true
}
