package workrecord

import (
	"context"
	"testing"
	"time"

	"github.com/brightserv/ops-backend-go/internal/domain/user"
	"github.com/brightserv/ops-backend-go/internal/domain/worklocation"
	"github.com/brightserv/ops-backend-go/internal/domain/workrecord"
	"github.com/brightserv/ops-backend-go/internal/pkg/authctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLocationRepo struct {
	worklocation.WorkLocationRepository
	approved *worklocation.WorkLocation
}

func (f *fakeLocationRepo) GetApproved(ctx context.Context, employeeID, siteID string) (*worklocation.WorkLocation, error) {
	return f.approved, nil
}

type fakeRecordRepo struct {
	workrecord.WorkRecordRepository
	byDay   map[string]*workrecord.WorkRecord
	open    *workrecord.WorkRecord
	created []workrecord.WorkRecord
	updated []workrecord.WorkRecord
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{byDay: make(map[string]*workrecord.WorkRecord)}
}

func (f *fakeRecordRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*workrecord.WorkRecord, error) {
	return f.byDay[employeeID+date.Format("2006-01-02")], nil
}

func (f *fakeRecordRepo) GetOpenSession(ctx context.Context, employeeID string) (workrecord.WorkRecord, error) {
	if f.open == nil {
		return workrecord.WorkRecord{}, workrecord.ErrNotClockedIn
	}
	return *f.open, nil
}

func (f *fakeRecordRepo) Create(ctx context.Context, rec workrecord.WorkRecord) (workrecord.WorkRecord, error) {
	rec.ID = "rec-1"
	f.created = append(f.created, rec)
	return rec, nil
}

func (f *fakeRecordRepo) Update(ctx context.Context, rec workrecord.WorkRecord) error {
	f.updated = append(f.updated, rec)
	f.open = &rec
	return nil
}

func (f *fakeRecordRepo) GetByID(ctx context.Context, id string) (workrecord.WorkRecord, error) {
	if f.open != nil && f.open.ID == id {
		return *f.open, nil
	}
	for _, rec := range f.created {
		if rec.ID == id {
			return rec, nil
		}
	}
	return workrecord.WorkRecord{}, workrecord.ErrRecordNotFound
}

func cleanerCtx(employeeID string) context.Context {
	return authctx.WithActor(context.Background(), authctx.Actor{
		UserID:     "user-1",
		Role:       user.RoleCleaner,
		EmployeeID: &employeeID,
	})
}

func TestClockInWithinGeofence(t *testing.T) {
	locations := &fakeLocationRepo{approved: &worklocation.WorkLocation{
		EmployeeID:   "emp-1",
		SiteID:       "site-1",
		Latitude:     52.2297,
		Longitude:    21.0122,
		RadiusMeters: 100,
		Status:       worklocation.StatusApproved,
	}}
	records := newFakeRecordRepo()
	svc := NewWorkRecordService(records, locations)

	resp, err := svc.ClockIn(cleanerCtx("emp-1"), workrecord.ClockInRequest{
		SiteID:    "site-1",
		Latitude:  52.2297,
		Longitude: 21.0122,
	})
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, string(workrecord.ApprovalWaiting), resp.ApprovalStatus)
	require.Len(t, records.created, 1)
	assert.NotNil(t, records.created[0].ClockIn)
}

func TestClockInOutsideGeofence(t *testing.T) {
	locations := &fakeLocationRepo{approved: &worklocation.WorkLocation{
		EmployeeID:   "emp-1",
		SiteID:       "site-1",
		Latitude:     52.2297,
		Longitude:    21.0122,
		RadiusMeters: 50,
		Status:       worklocation.StatusApproved,
	}}
	records := newFakeRecordRepo()
	svc := NewWorkRecordService(records, locations)

	// ~1.1km away from the geofence center.
	_, err := svc.ClockIn(cleanerCtx("emp-1"), workrecord.ClockInRequest{
		SiteID:    "site-1",
		Latitude:  52.2397,
		Longitude: 21.0122,
	})
	assert.ErrorIs(t, err, worklocation.ErrOutsideRadius)
	assert.Empty(t, records.created)
}

func TestClockInNoApprovedLocation(t *testing.T) {
	locations := &fakeLocationRepo{approved: nil}
	records := newFakeRecordRepo()
	svc := NewWorkRecordService(records, locations)

	_, err := svc.ClockIn(cleanerCtx("emp-1"), workrecord.ClockInRequest{
		SiteID:    "site-1",
		Latitude:  52.2297,
		Longitude: 21.0122,
	})
	assert.ErrorIs(t, err, worklocation.ErrNoApprovedLocation)
}

func TestClockInAllowWorkFromAnywhereSkipsRadius(t *testing.T) {
	locations := &fakeLocationRepo{approved: &worklocation.WorkLocation{
		EmployeeID:            "emp-1",
		SiteID:                "site-1",
		AllowWorkFromAnywhere: true,
		Status:                worklocation.StatusApproved,
	}}
	records := newFakeRecordRepo()
	svc := NewWorkRecordService(records, locations)

	_, err := svc.ClockIn(cleanerCtx("emp-1"), workrecord.ClockInRequest{
		SiteID:    "site-1",
		Latitude:  -33.8688,
		Longitude: 151.2093,
	})
	assert.NoError(t, err)
}

func TestClockInTwiceSameDay(t *testing.T) {
	locations := &fakeLocationRepo{approved: &worklocation.WorkLocation{
		EmployeeID:            "emp-1",
		SiteID:                "site-1",
		AllowWorkFromAnywhere: true,
		Status:                worklocation.StatusApproved,
	}}
	records := newFakeRecordRepo()
	now := time.Now()
	today := time.Date(now.UTC().Year(), now.UTC().Month(), now.UTC().Day(), 0, 0, 0, 0, time.UTC)
	records.byDay["emp-1"+today.Format("2006-01-02")] = &workrecord.WorkRecord{
		ID:         "rec-0",
		EmployeeID: "emp-1",
		Date:       today,
		ClockIn:    &now,
	}
	svc := NewWorkRecordService(records, locations)

	_, err := svc.ClockIn(cleanerCtx("emp-1"), workrecord.ClockInRequest{
		SiteID:    "site-1",
		Latitude:  52.2297,
		Longitude: 21.0122,
	})
	assert.ErrorIs(t, err, workrecord.ErrAlreadyClockedIn)
}

func TestClockOutComputesMinutes(t *testing.T) {
	locations := &fakeLocationRepo{}
	records := newFakeRecordRepo()
	clockIn := time.Now().Add(-90 * time.Minute)
	records.open = &workrecord.WorkRecord{
		ID:         "rec-1",
		EmployeeID: "emp-1",
		ClockIn:    &clockIn,
	}
	svc := NewWorkRecordService(records, locations)

	resp, err := svc.ClockOut(cleanerCtx("emp-1"), workrecord.ClockOutRequest{
		Latitude:  52.2297,
		Longitude: 21.0122,
	})
	require.NoError(t, err)

	require.Len(t, records.updated, 1)
	require.NotNil(t, records.updated[0].MinutesWorked)
	assert.InDelta(t, 90, *records.updated[0].MinutesWorked, 1)
	require.NotNil(t, resp.HoursWorked)
	assert.InDelta(t, 1.5, *resp.HoursWorked, 0.05)
}

func TestClockOutWithoutOpenSession(t *testing.T) {
	svc := NewWorkRecordService(newFakeRecordRepo(), &fakeLocationRepo{})

	_, err := svc.ClockOut(cleanerCtx("emp-1"), workrecord.ClockOutRequest{
		Latitude:  52.2297,
		Longitude: 21.0122,
	})
	assert.ErrorIs(t, err, workrecord.ErrNotClockedIn)
}

func TestApproveRequiresManager(t *testing.T) {
	records := newFakeRecordRepo()
	records.created = append(records.created, workrecord.WorkRecord{
		ID:             "rec-1",
		EmployeeID:     "emp-1",
		ApprovalStatus: workrecord.ApprovalWaiting,
	})
	svc := NewWorkRecordService(records, &fakeLocationRepo{})

	_, err := svc.Approve(cleanerCtx("emp-1"), "rec-1")
	assert.ErrorIs(t, err, user.ErrManagerAccessRequired)

	managerCtx := authctx.WithActor(context.Background(), authctx.Actor{
		UserID: "user-2",
		Role:   user.RoleManager,
	})
	resp, err := svc.Approve(managerCtx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, string(workrecord.ApprovalApproved), resp.ApprovalStatus)
}
