package workrecord

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/brightserv/ops-backend-go/internal/domain/user"
	"github.com/brightserv/ops-backend-go/internal/domain/worklocation"
	"github.com/brightserv/ops-backend-go/internal/domain/workrecord"
	"github.com/brightserv/ops-backend-go/internal/pkg/authctx"
	"github.com/brightserv/ops-backend-go/internal/pkg/dateutil"
	"github.com/brightserv/ops-backend-go/internal/pkg/geo"
)

type WorkRecordServiceImpl struct {
	workrecord.WorkRecordRepository
	worklocation.WorkLocationRepository
}

func NewWorkRecordService(
	recordRepository workrecord.WorkRecordRepository,
	locationRepository worklocation.WorkLocationRepository,
) workrecord.WorkRecordService {
	return &WorkRecordServiceImpl{
		WorkRecordRepository:   recordRepository,
		WorkLocationRepository: locationRepository,
	}
}

// ClockIn implements workrecord.WorkRecordService. The caller's coordinate
// must pass the approved geofence for the employee/site pair before a record
// is opened.
func (s *WorkRecordServiceImpl) ClockIn(ctx context.Context, req workrecord.ClockInRequest) (workrecord.WorkRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return workrecord.WorkRecordResponse{}, err
	}

	actor, ok := authctx.FromContext(ctx)
	if !ok || actor.EmployeeID == nil {
		return workrecord.WorkRecordResponse{}, user.ErrUserNotFound
	}
	employeeID := *actor.EmployeeID

	approved, err := s.WorkLocationRepository.GetApproved(ctx, employeeID, req.SiteID)
	if err != nil {
		return workrecord.WorkRecordResponse{}, err
	}
	if approved == nil {
		return workrecord.WorkRecordResponse{}, worklocation.ErrNoApprovedLocation
	}

	if !approved.AllowWorkFromAnywhere {
		if !geo.WithinRadius(approved.Latitude, approved.Longitude, req.Latitude, req.Longitude, approved.RadiusMeters) {
			return workrecord.WorkRecordResponse{}, worklocation.ErrOutsideRadius
		}
	}

	now := time.Now()
	today := dateutil.Day(now.UTC())

	existing, err := s.WorkRecordRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return workrecord.WorkRecordResponse{}, err
	}
	if existing != nil {
		if existing.ClockIn != nil && existing.ClockOut == nil {
			return workrecord.WorkRecordResponse{}, workrecord.ErrAlreadyClockedIn
		}
		return workrecord.WorkRecordResponse{}, workrecord.ErrDayAlreadyCovered
	}

	created, err := s.WorkRecordRepository.Create(ctx, workrecord.WorkRecord{
		EmployeeID:       employeeID,
		SiteID:           &req.SiteID,
		Date:             today,
		ClockIn:          &now,
		ApprovalStatus:   workrecord.ApprovalWaiting,
		ClockInLatitude:  &req.Latitude,
		ClockInLongitude: &req.Longitude,
	})
	if err != nil {
		return workrecord.WorkRecordResponse{}, err
	}

	return toResponse(created), nil
}

// ClockOut implements workrecord.WorkRecordService.
func (s *WorkRecordServiceImpl) ClockOut(ctx context.Context, req workrecord.ClockOutRequest) (workrecord.WorkRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return workrecord.WorkRecordResponse{}, err
	}

	actor, ok := authctx.FromContext(ctx)
	if !ok || actor.EmployeeID == nil {
		return workrecord.WorkRecordResponse{}, user.ErrUserNotFound
	}

	open, err := s.WorkRecordRepository.GetOpenSession(ctx, *actor.EmployeeID)
	if err != nil {
		return workrecord.WorkRecordResponse{}, err
	}

	now := time.Now()
	minutes := int(math.Round(now.Sub(*open.ClockIn).Minutes()))
	if minutes < 0 {
		minutes = 0
	}

	open.ClockOut = &now
	open.MinutesWorked = &minutes
	open.ClockOutLatitude = &req.Latitude
	open.ClockOutLongitude = &req.Longitude

	if err := s.WorkRecordRepository.Update(ctx, open); err != nil {
		return workrecord.WorkRecordResponse{}, err
	}

	updated, err := s.WorkRecordRepository.GetByID(ctx, open.ID)
	if err != nil {
		return workrecord.WorkRecordResponse{}, err
	}

	return toResponse(updated), nil
}

// RecordLeave implements workrecord.WorkRecordService. Leave days are
// manager-entered and carry no clock times.
func (s *WorkRecordServiceImpl) RecordLeave(ctx context.Context, req workrecord.RecordLeaveRequest) (workrecord.WorkRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return workrecord.WorkRecordResponse{}, err
	}

	actor, ok := authctx.FromContext(ctx)
	if !ok || (actor.Role != user.RoleAdmin && actor.Role != user.RoleManager) {
		return workrecord.WorkRecordResponse{}, user.ErrManagerAccessRequired
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return workrecord.WorkRecordResponse{}, fmt.Errorf("failed to parse leave date: %w", err)
	}

	existing, err := s.WorkRecordRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return workrecord.WorkRecordResponse{}, err
	}
	if existing != nil {
		return workrecord.WorkRecordResponse{}, workrecord.ErrDayAlreadyCovered
	}

	created, err := s.WorkRecordRepository.Create(ctx, workrecord.WorkRecord{
		EmployeeID:     req.EmployeeID,
		Date:           date,
		IsLeave:        true,
		LeaveType:      &req.LeaveType,
		ApprovalStatus: workrecord.ApprovalApproved,
	})
	if err != nil {
		return workrecord.WorkRecordResponse{}, err
	}

	return toResponse(created), nil
}

// Get implements workrecord.WorkRecordService.
func (s *WorkRecordServiceImpl) Get(ctx context.Context, id string) (workrecord.WorkRecordResponse, error) {
	rec, err := s.WorkRecordRepository.GetByID(ctx, id)
	if err != nil {
		return workrecord.WorkRecordResponse{}, err
	}
	return toResponse(rec), nil
}

// List implements workrecord.WorkRecordService. Cleaners only ever see
// their own records regardless of the filter they send.
func (s *WorkRecordServiceImpl) List(ctx context.Context, filter workrecord.WorkRecordFilter) (workrecord.ListWorkRecordsResponse, error) {
	if err := filter.Validate(); err != nil {
		return workrecord.ListWorkRecordsResponse{}, err
	}

	if actor, ok := authctx.FromContext(ctx); ok && actor.Role == user.RoleCleaner {
		filter.EmployeeID = actor.EmployeeID
	}

	records, total, err := s.WorkRecordRepository.List(ctx, filter)
	if err != nil {
		return workrecord.ListWorkRecordsResponse{}, err
	}

	responses := make([]workrecord.WorkRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}

	return workrecord.ListWorkRecordsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Records:    responses,
	}, nil
}

// Approve implements workrecord.WorkRecordService.
func (s *WorkRecordServiceImpl) Approve(ctx context.Context, id string) (workrecord.WorkRecordResponse, error) {
	return s.process(ctx, id, workrecord.ApprovalApproved, nil)
}

// Reject implements workrecord.WorkRecordService.
func (s *WorkRecordServiceImpl) Reject(ctx context.Context, req workrecord.RejectWorkRecordRequest) (workrecord.WorkRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return workrecord.WorkRecordResponse{}, err
	}
	return s.process(ctx, req.ID, workrecord.ApprovalRejected, &req.Reason)
}

func (s *WorkRecordServiceImpl) process(ctx context.Context, id string, status workrecord.ApprovalStatus, reason *string) (workrecord.WorkRecordResponse, error) {
	actor, ok := authctx.FromContext(ctx)
	if !ok || (actor.Role != user.RoleAdmin && actor.Role != user.RoleManager) {
		return workrecord.WorkRecordResponse{}, user.ErrManagerAccessRequired
	}

	rec, err := s.WorkRecordRepository.GetByID(ctx, id)
	if err != nil {
		return workrecord.WorkRecordResponse{}, err
	}
	if rec.ApprovalStatus != workrecord.ApprovalWaiting {
		return workrecord.WorkRecordResponse{}, workrecord.ErrAlreadyProcessed
	}

	rec.ApprovalStatus = status
	rec.RejectionReason = reason

	if err := s.WorkRecordRepository.Update(ctx, rec); err != nil {
		return workrecord.WorkRecordResponse{}, err
	}

	updated, err := s.WorkRecordRepository.GetByID(ctx, id)
	if err != nil {
		return workrecord.WorkRecordResponse{}, err
	}

	return toResponse(updated), nil
}

func toResponse(rec workrecord.WorkRecord) workrecord.WorkRecordResponse {
	resp := workrecord.WorkRecordResponse{
		ID:                rec.ID,
		EmployeeID:        rec.EmployeeID,
		EmployeeName:      rec.EmployeeName,
		SiteID:            rec.SiteID,
		SiteName:          rec.SiteName,
		Date:              dateutil.Format(rec.Date),
		IsLeave:           rec.IsLeave,
		LeaveType:         rec.LeaveType,
		ApprovalStatus:    string(rec.ApprovalStatus),
		ClockInLatitude:   rec.ClockInLatitude,
		ClockInLongitude:  rec.ClockInLongitude,
		ClockOutLatitude:  rec.ClockOutLatitude,
		ClockOutLongitude: rec.ClockOutLongitude,
		RejectionReason:   rec.RejectionReason,
	}

	if rec.ClockIn != nil {
		t := rec.ClockIn.Format(time.RFC3339)
		resp.ClockInTime = &t
	}
	if rec.ClockOut != nil {
		t := rec.ClockOut.Format(time.RFC3339)
		resp.ClockOutTime = &t
	}
	if rec.MinutesWorked != nil {
		hours := rec.HoursWorked()
		resp.HoursWorked = &hours
	}

	return resp
}
