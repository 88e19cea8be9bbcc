package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	aptRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonService/internal/integrations/identityservice"
	"github.com/m04kA/SMC-SalonService/internal/integrations/notificationservice"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// fakeAppointmentRepo эмулирует поведение частичного уникального индекса:
// первая вставка на слот проходит, повторная возвращает ErrTimeSlotTaken.
// ListBlockingForDay при этом отдает пустой день, как его видит проигравшая
// транзакция до коммита победителя.
type fakeAppointmentRepo struct {
	taken   bool
	nextID  int64
	deleted []int64
}

func (f *fakeAppointmentRepo) Create(_ context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	if f.taken {
		return nil, aptRepo.ErrTimeSlotTaken
	}
	f.taken = true
	f.nextID++
	created := *apt
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	return &created, nil
}

func (f *fakeAppointmentRepo) ListBlockingForDay(context.Context, int64, time.Time) ([]*domain.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeStylistDir struct{ stylist *domain.Stylist }

func (f *fakeStylistDir) GetByID(context.Context, int64) (*domain.Stylist, error) {
	return f.stylist, nil
}

func (f *fakeStylistDir) ListWalkInCandidates(context.Context) ([]*domain.Stylist, error) {
	return []*domain.Stylist{f.stylist}, nil
}

type fakeServiceDir struct{ service *domain.Service }

func (f *fakeServiceDir) GetByID(context.Context, int64) (*domain.Service, error) {
	return f.service, nil
}

type fakeTerms struct{ terms *domain.ServiceTerms }

func (f *fakeTerms) ResolveServiceTerms(context.Context, int64, int64) (*domain.ServiceTerms, error) {
	return f.terms, nil
}

type fakeIdentityDir struct{}

func (fakeIdentityDir) GetUser(_ context.Context, id int64) (*identityservice.User, error) {
	return &identityservice.User{ID: id}, nil
}

type fakeNotifier struct{ events []notificationservice.AppointmentEvent }

func (f *fakeNotifier) SendAppointmentEventAsync(e notificationservice.AppointmentEvent) {
	f.events = append(f.events, e)
}

type passThroughTx struct{}

func (passThroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type quietLogger struct{}

func (quietLogger) Info(string, ...interface{})  {}
func (quietLogger) Warn(string, ...interface{})  {}
func (quietLogger) Error(string, ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func bookingUseCase(repo *fakeAppointmentRepo) *UseCase {
	uc := NewUseCase(
		repo,
		&fakeStylistDir{stylist: walkInStylist(1, 1)},
		&fakeServiceDir{service: &domain.Service{
			ID:              3,
			Name:            "Стрижка",
			DurationMinutes: 60,
			Price:           decimal.NewFromInt(3000),
			IsActive:        true,
		}},
		&fakeTerms{terms: &domain.ServiceTerms{DurationMinutes: 60, Price: decimal.NewFromInt(3000)}},
		nil, // запись без кода ссылки
		fakeIdentityDir{},
		nil, // онлайн-оплата в этих сценариях не запрашивается
		nil, // реферальный код не передается
		&fakeNotifier{},
		passThroughTx{},
		Settings{Open: testOpen, Close: testClose, AutoAssignEnabled: true},
		quietLogger{},
	)
	uc.timeProvider = fixedClock{now: time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)}
	return uc
}

func bookingRequest() *Request {
	return &Request{
		UserID:    ptr.Ptr(int64(10)),
		StylistID: ptr.Ptr(int64(1)),
		ServiceID: 3,
		Date:      time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
	}
}

func TestExecute_ConcurrentDuplicateLosesWithConflict(t *testing.T) {
	// Обе "транзакции" прошли пре-чек по пустому дню; гонку на вставке
	// ловит уникальный индекс, и ровно одна запись выигрывает слот
	repo := &fakeAppointmentRepo{}
	uc := bookingUseCase(repo)

	first, err := uc.Execute(context.Background(), bookingRequest())
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusReserved), first.Status)
	assert.Equal(t, int64(1), first.StylistID)

	_, err = uc.Execute(context.Background(), bookingRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// Проигравший ничего не создал, компенсирующих удалений нет
	assert.Equal(t, int64(1), repo.nextID)
	assert.Empty(t, repo.deleted)
}

func TestExecute_AutoAssignLoserGetsConflict(t *testing.T) {
	// Тот же исход при автоподборе: селектор выбрал стилиста по
	// устаревшему календарю, вставка уперлась в индекс
	repo := &fakeAppointmentRepo{taken: true}
	uc := bookingUseCase(repo)

	req := bookingRequest()
	req.StylistID = nil

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}
