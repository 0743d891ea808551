package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/staffdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/staffdesk/attendance-backend-go/internal/domain/employee"
	"github.com/staffdesk/attendance-backend-go/internal/domain/report"
)

// Trend window and detail caps for the read-side rollups.
const (
	trendWindowDays  = 30
	rangeDetailLimit = 100
)

type ServiceImpl struct {
	reportRepo     report.Repository
	attendanceRepo attendance.Repository
	employeeRepo   employee.EmployeeRepository
}

func NewService(
	reportRepo report.Repository,
	attendanceRepo attendance.Repository,
	employeeRepo employee.EmployeeRepository,
) report.Service {
	return &ServiceImpl{
		reportRepo:     reportRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// DailySummary implements report.Service.
func (s *ServiceImpl) DailySummary(ctx context.Context) (report.DailySummaryResponse, error) {
	today := attendance.StartOfDay(time.Now())

	counts, err := s.reportRepo.CountByStatusOnDate(ctx, today)
	if err != nil {
		return report.DailySummaryResponse{}, err
	}

	totalEmployees, err := s.employeeRepo.CountAll(ctx)
	if err != nil {
		return report.DailySummaryResponse{}, err
	}

	withRecords := 0
	for _, c := range counts {
		withRecords += c
	}

	// Employees without any record today count as absent, on top of
	// those explicitly marked Absent.
	missing := totalEmployees - withRecords
	if missing < 0 {
		missing = 0
	}

	return report.DailySummaryResponse{
		Date:           today.Format("2006-01-02"),
		TotalEmployees: totalEmployees,
		Summary: report.StatusCounts{
			Present: counts[string(attendance.StatusPresent)],
			OnLeave: counts[string(attendance.StatusLeave)],
			HalfDay: counts[string(attendance.StatusHalfDay)],
			Absent:  counts[string(attendance.StatusAbsent)] + missing,
		},
	}, nil
}

// Trends implements report.Service.
func (s *ServiceImpl) Trends(ctx context.Context) (report.TrendsResponse, error) {
	end := attendance.StartOfDay(time.Now())
	start := end.AddDate(0, 0, -trendWindowDays)

	daily, err := s.reportRepo.DailyStatusCounts(ctx, start, end)
	if err != nil {
		return report.TrendsResponse{}, err
	}

	weekly, err := s.reportRepo.WeeklyStatusCounts(ctx, start, end)
	if err != nil {
		return report.TrendsResponse{}, err
	}

	totalPresent, err := s.reportRepo.CountPresentInRange(ctx, start, end)
	if err != nil {
		return report.TrendsResponse{}, err
	}

	totalEmployees, err := s.employeeRepo.CountAll(ctx)
	if err != nil {
		return report.TrendsResponse{}, err
	}

	var rate float64
	if totalEmployees > 0 {
		rate = float64(totalPresent) / float64(totalEmployees*trendWindowDays) * 100
		rate = math.Round(rate*100) / 100
	}

	return report.TrendsResponse{
		DailyTrends:    daily,
		WeeklySummary:  weekly,
		AttendanceRate: rate,
		TotalEmployees: totalEmployees,
	}, nil
}

// RangeReport implements report.Service.
func (s *ServiceImpl) RangeReport(ctx context.Context, req report.RangeReportRequest) (report.RangeReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.RangeReportResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	summary, err := s.reportRepo.RangeSummary(ctx, start, end, req.EmployeeID)
	if err != nil {
		return report.RangeReportResponse{}, err
	}

	records, err := s.attendanceRepo.ListByRange(ctx, start, end, req.EmployeeID, rangeDetailLimit)
	if err != nil {
		return report.RangeReportResponse{}, err
	}

	details := make([]attendance.RecordResponse, 0, len(records))
	for _, r := range records {
		details = append(details, attendance.ToResponse(r))
	}

	return report.RangeReportResponse{
		Summary: summary,
		Details: details,
	}, nil
}

// ExportRangeCSV implements report.Service.
func (s *ServiceImpl) ExportRangeCSV(ctx context.Context, req report.RangeReportRequest) ([]byte, error) {
	result, err := s.RangeReport(ctx, req)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"date", "employee_name", "employee_code", "status",
		"punch_in", "punch_out", "total_break_minutes", "total_work_minutes", "leave_type",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, d := range result.Details {
		row := []string{
			d.Date,
			derefString(d.EmployeeName),
			derefString(d.EmployeeCode),
			d.Status,
			formatPunch(d.PunchIn),
			formatPunch(d.PunchOut),
			strconv.Itoa(d.TotalBreakMinutes),
			strconv.Itoa(d.TotalWorkMinutes),
			derefString(d.LeaveType),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// PresentToday implements report.Service.
func (s *ServiceImpl) PresentToday(ctx context.Context) ([]report.PresentEmployeeRow, error) {
	today := attendance.StartOfDay(time.Now())
	return s.reportRepo.ListByStatusOnDate(ctx, today, string(attendance.StatusPresent))
}

// OnLeaveToday implements report.Service.
func (s *ServiceImpl) OnLeaveToday(ctx context.Context) ([]report.OnLeaveEmployeeRow, error) {
	today := attendance.StartOfDay(time.Now())

	rows, err := s.reportRepo.ListByStatusOnDate(ctx, today, string(attendance.StatusLeave))
	if err != nil {
		return nil, err
	}

	result := make([]report.OnLeaveEmployeeRow, 0, len(rows))
	for _, r := range rows {
		result = append(result, report.OnLeaveEmployeeRow{
			EmployeeID:   r.EmployeeID,
			Name:         r.Name,
			EmployeeCode: r.EmployeeCode,
			Designation:  r.Designation,
			LeaveType:    r.Record.LeaveType,
		})
	}

	return result, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatPunch(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
