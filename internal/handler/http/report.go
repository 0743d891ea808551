package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/staffdesk/attendance-backend-go/internal/domain/report"
	"github.com/staffdesk/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	DailySummary(w http.ResponseWriter, r *http.Request)
	Trends(w http.ResponseWriter, r *http.Request)
	RangeReport(w http.ResponseWriter, r *http.Request)
	ExportRangeCSV(w http.ResponseWriter, r *http.Request)
	PresentToday(w http.ResponseWriter, r *http.Request)
	OnLeaveToday(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// DailySummary implements ReportHandler.
func (h *reportHandlerImpl) DailySummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.DailySummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Trends implements ReportHandler.
func (h *reportHandlerImpl) Trends(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Trends(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RangeReport implements ReportHandler.
func (h *reportHandlerImpl) RangeReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.RangeReport(r.Context(), rangeRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportRangeCSV implements ReportHandler.
func (h *reportHandlerImpl) ExportRangeCSV(w http.ResponseWriter, r *http.Request) {
	data, err := h.reportService.ExportRangeCSV(r.Context(), rangeRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance_report_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// PresentToday implements ReportHandler.
func (h *reportHandlerImpl) PresentToday(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.PresentToday(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// OnLeaveToday implements ReportHandler.
func (h *reportHandlerImpl) OnLeaveToday(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.OnLeaveToday(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func rangeRequestFromQuery(r *http.Request) report.RangeReportRequest {
	return report.RangeReportRequest{
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
		EmployeeID: r.URL.Query().Get("employee_id"),
	}
}
