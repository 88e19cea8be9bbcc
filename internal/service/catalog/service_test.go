package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/stylist"
	"github.com/m04kA/SMC-SalonService/internal/integrations/identityservice"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeIdentity struct {
	user *identityservice.User
	err  error
}

func (f *fakeIdentity) GetUser(context.Context, int64) (*identityservice.User, error) {
	return f.user, f.err
}

type fakeStylistRepo struct {
	updatedID int64
	updated   *stylist.UpdateScheduleParams
}

func (f *fakeStylistRepo) GetByID(context.Context, int64) (*domain.Stylist, error) {
	return nil, stylist.ErrStylistNotFound
}

func (f *fakeStylistRepo) ListActive(context.Context) ([]*domain.Stylist, error) {
	return nil, nil
}

func (f *fakeStylistRepo) UpdateSchedule(_ context.Context, id int64, params stylist.UpdateScheduleParams) error {
	f.updatedID = id
	f.updated = &params
	return nil
}

func scheduleService(identity *fakeIdentity) (*Service, *fakeStylistRepo) {
	repo := &fakeStylistRepo{}
	return NewService(nil, repo, identity, nopLogger{}), repo
}

func TestUpdateSchedule_OwnerAllowed(t *testing.T) {
	identity := &fakeIdentity{user: &identityservice.User{
		ID:        10,
		StylistID: ptr.Ptr(int64(5)),
	}}
	svc, repo := scheduleService(identity)

	err := svc.UpdateSchedule(context.Background(), 5, &models.UpdateScheduleRequest{
		UserID:        10,
		PriorityLevel: ptr.Ptr(50),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), repo.updatedID)
	require.NotNil(t, repo.updated)
	assert.Equal(t, 50, *repo.updated.PriorityLevel)
}

func TestUpdateSchedule_ManagerCanUpdateAnyStylist(t *testing.T) {
	// Аккаунт менеджера не привязан ни к какому профилю стилиста
	identity := &fakeIdentity{user: &identityservice.User{
		ID:             11,
		CanManageStaff: true,
	}}
	svc, repo := scheduleService(identity)

	err := svc.UpdateSchedule(context.Background(), 5, &models.UpdateScheduleRequest{
		UserID:        11,
		PriorityLevel: ptr.Ptr(1),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), repo.updatedID)
}

func TestUpdateSchedule_OtherStylistDenied(t *testing.T) {
	identity := &fakeIdentity{user: &identityservice.User{
		ID:        12,
		StylistID: ptr.Ptr(int64(2)),
	}}
	svc, repo := scheduleService(identity)

	err := svc.UpdateSchedule(context.Background(), 5, &models.UpdateScheduleRequest{
		UserID:   12,
		IsActive: ptr.Ptr(false),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.updated)
}

func TestUpdateSchedule_UnknownUserDenied(t *testing.T) {
	identity := &fakeIdentity{err: identityservice.ErrUserNotFound}
	svc, repo := scheduleService(identity)

	err := svc.UpdateSchedule(context.Background(), 5, &models.UpdateScheduleRequest{UserID: 99})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.updated)
}

func TestUpdateSchedule_InvalidWorkingHours(t *testing.T) {
	identity := &fakeIdentity{user: &identityservice.User{
		ID:        10,
		StylistID: ptr.Ptr(int64(5)),
	}}
	svc, repo := scheduleService(identity)

	err := svc.UpdateSchedule(context.Background(), 5, &models.UpdateScheduleRequest{
		UserID:            10,
		WorkingHoursStart: ptr.Ptr("18:00"),
		WorkingHoursEnd:   ptr.Ptr("10:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, repo.updated)
}
