package http

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetMonthlySummary(w http.ResponseWriter, r *http.Request)
	DownloadMonthlySummaryPDF(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	maxUploadBytes    int64
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, maxUploadBytes int64) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		maxUploadBytes:    maxUploadBytes,
	}
}

// Upload implements AttendanceHandler.
func (h *attendanceHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Attendance file is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("Failed to read uploaded file", "error", err)
		response.BadRequest(w, "Failed to read uploaded file", nil)
		return
	}

	req := attendance.UploadRequest{
		FileName: fileHeader.Filename,
		Data:     data,
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Upload(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w,
		fmt.Sprintf("Processed %d employees, %d records", result.Employees, result.Records),
		result)
}

// ListEmployees implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.attendanceService.ListEmployees(r.Context())
	if err != nil {
		slog.Error("Failed to list employees", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// summaryRequest extracts the monthly summary key from query parameters.
func summaryRequest(r *http.Request) (attendance.MonthlySummaryRequest, error) {
	employeeID := r.URL.Query().Get("employee_id")

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return attendance.MonthlySummaryRequest{}, fmt.Errorf("invalid month parameter")
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return attendance.MonthlySummaryRequest{}, fmt.Errorf("invalid year parameter")
	}

	return attendance.MonthlySummaryRequest{
		EmployeeID: employeeID,
		Month:      month,
		Year:       year,
	}, nil
}

// GetMonthlySummary implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	req, err := summaryRequest(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.attendanceService.GetMonthlySummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DownloadMonthlySummaryPDF implements AttendanceHandler.
func (h *attendanceHandlerImpl) DownloadMonthlySummaryPDF(w http.ResponseWriter, r *http.Request) {
	req, err := summaryRequest(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	data, err := h.attendanceService.MonthlySummaryPDF(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance-%s-%d-%02d.pdf", req.EmployeeID, req.Year, req.Month)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
