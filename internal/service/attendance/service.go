package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/domain/employee"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
	"github.com/workpulse/workpulse-backend-go/internal/repository/postgresql"
	"github.com/workpulse/workpulse-backend-go/internal/service/ingest"
	"github.com/workpulse/workpulse-backend-go/internal/service/summary"
)

type AttendanceServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	attendance.AttendanceRepository
	attendance.SummaryRepository
}

func NewAttendanceService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	summaryRepo attendance.SummaryRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		EmployeeRepository:   employeeRepo,
		AttendanceRepository: attendanceRepo,
		SummaryRepository:    summaryRepo,
	}
}

// ProcessBatch implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ProcessBatch(ctx context.Context, req attendance.UploadRequest) ([]attendance.EmployeeAttendance, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var batch *ingest.Batch
	var err error
	switch strings.ToLower(filepath.Ext(req.FileName)) {
	case ".csv":
		batch = ingest.FromCSV(req.Data)
	case ".xlsx", ".xlsm":
		batch, err = ingest.FromXLSX(req.Data)
	case ".xls":
		batch, err = ingest.FromXLS(req.Data)
	default:
		return nil, attendance.ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}

	if batch.RecordCount() == 0 {
		return nil, attendance.ErrNoValidRows
	}

	return batch.Employees(), nil
}

// CommitBatch implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CommitBatch(ctx context.Context, batch []attendance.EmployeeAttendance) (attendance.UploadResponse, error) {
	var resp attendance.UploadResponse

	for _, ea := range batch {
		emp, err := a.EmployeeRepository.FindOrCreate(ctx, ea.EmployeeName)
		if err != nil {
			// Only an unresolved duplicate-name conflict is skippable; the
			// retry already happened inside FindOrCreate. Anything else is
			// infrastructure and fails the upload.
			if errors.Is(err, employee.ErrConflictUnresolved) {
				slog.Warn("Skipping employee, identity could not be resolved",
					"employee", ea.EmployeeName, "error", err)
				resp.Skipped++
				continue
			}
			return resp, fmt.Errorf("failed to resolve employee %q: %w", ea.EmployeeName, err)
		}

		err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
			for _, rec := range ea.Records {
				if err := a.AttendanceRepository.UpsertDaily(txCtx, emp.ID, rec); err != nil {
					return err
				}
			}

			// Recompute every month touched by this employee's new records
			// from the persisted state, so repeated and partial uploads
			// converge on the same summary.
			for key := range summary.GroupByMonth(ea.Records) {
				records, err := a.AttendanceRepository.ListByEmployeeMonth(txCtx, emp.ID, key.Year, int(key.Month))
				if err != nil {
					return err
				}

				s := summary.Aggregate(key.Year, key.Month, records)
				s.EmployeeID = emp.ID
				s.EmployeeName = emp.Name
				if err := a.SummaryRepository.Upsert(txCtx, s); err != nil {
					return err
				}
			}

			return nil
		})
		if err != nil {
			return resp, fmt.Errorf("failed to commit attendance for %q: %w", ea.EmployeeName, err)
		}

		resp.Employees++
		resp.Records += len(ea.Records)
	}

	return resp, nil
}

// Upload implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Upload(ctx context.Context, req attendance.UploadRequest) (attendance.UploadResponse, error) {
	batch, err := a.ProcessBatch(ctx, req)
	if err != nil {
		return attendance.UploadResponse{}, err
	}

	return a.CommitBatch(ctx, batch)
}

// ListEmployees implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListEmployees(ctx context.Context) ([]attendance.EmployeeResponse, error) {
	employees, err := a.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]attendance.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		out = append(out, attendance.EmployeeResponse{ID: emp.ID, Name: emp.Name})
	}
	return out, nil
}

// GetMonthlySummary implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMonthlySummary(ctx context.Context, req attendance.MonthlySummaryRequest) (attendance.MonthlySummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	s, err := a.SummaryRepository.Get(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	return attendance.NewMonthlySummaryResponse(s), nil
}
