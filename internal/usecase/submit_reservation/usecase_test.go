package submit_reservation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HBP-GuestBookingService/internal/domain"
	storage "github.com/m04kA/HBP-GuestBookingService/internal/infra/storage/session"
	"github.com/m04kA/HBP-GuestBookingService/internal/integrations/hotelapi"
	sessionsService "github.com/m04kA/HBP-GuestBookingService/internal/service/sessions"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeReservationClient записывает отправленные заявки; перед ответом может
// блокироваться на release-канале, чтобы тест держал отправку "в полете"
type fakeReservationClient struct {
	mu        sync.Mutex
	requests  []domain.ReservationRequest
	result    *hotelapi.Confirmation
	serverMsg string
	err       error
	release   chan struct{}
}

func (c *fakeReservationClient) CreateReservation(ctx context.Context, res domain.ReservationRequest) (*hotelapi.Confirmation, string, error) {
	c.mu.Lock()
	c.requests = append(c.requests, res)
	c.mu.Unlock()

	if c.release != nil {
		<-c.release
	}

	if c.err != nil {
		return nil, c.serverMsg, c.err
	}
	return c.result, c.serverMsg, nil
}

func (c *fakeReservationClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.requests)
}

type attemptRecorder struct {
	mu       sync.Mutex
	outcomes []string
}

func (r *attemptRecorder) IncSubmitAttempt(outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
}

func newFixture(t *testing.T, client HotelAPIClient) (*UseCase, *sessionsService.Service, string, *attemptRecorder) {
	t.Helper()

	store := storage.NewStore()
	sessions := sessionsService.NewService(store, nopLogger{})
	sessionID := sessions.Create(context.Background()).SessionID

	recorder := &attemptRecorder{}
	return NewUseCase(sessions, client, recorder, nopLogger{}), sessions, sessionID, recorder
}

// seedCompleteDraft доводит черновик до готового к отправке состояния:
// даты, отель, выдача availability и одна выбранная комната
func seedCompleteDraft(t *testing.T, sessions *sessionsService.Service, sessionID string) {
	t.Helper()

	sess, err := sessions.GetSession(context.Background(), sessionID)
	require.NoError(t, err)

	checkIn, err := time.Parse(domain.DateFormat, "2024-06-01")
	require.NoError(t, err)
	checkOut, err := time.Parse(domain.DateFormat, "2024-06-03")
	require.NoError(t, err)

	rooms := []domain.Room{
		{ID: "R1", RoomNumber: "101", RoomType: "double", MaxOccupancy: 2},
	}
	seq := sess.BeginAvailabilityQuery()
	require.True(t, sess.ApplyAvailabilityResult(seq, rooms, false))

	sess.Update(func(d *domain.BookingDraft, av *domain.AvailabilityState) {
		d.CheckInDate = &checkIn
		d.CheckOutDate = &checkOut
		d.HotelID = "H1"
		d.ToggleRoom("R1")
		d.RecomputeMaxGuests(av.Rooms)
		d.GuestCount = 2
		d.SpecialRequests = "late check-in"
	})
}

func TestExecute_SuccessResetsDraft(t *testing.T) {
	client := &fakeReservationClient{
		result:    &hotelapi.Confirmation{ID: "RES-42", Status: "pending"},
		serverMsg: "Booking created",
	}
	uc, sessions, sessionID, recorder := newFixture(t, client)
	seedCompleteDraft(t, sessions, sessionID)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: sessionID})

	require.NoError(t, err)
	assert.Equal(t, OutcomeSubmitted, resp.Outcome)
	require.NotNil(t, resp.Confirmation)
	assert.Equal(t, "RES-42", resp.Confirmation.ID)

	// Отправленная заявка собрана из черновика
	require.Equal(t, 1, client.callCount())
	sent := client.requests[0]
	assert.Equal(t, "2024-06-01", sent.CheckInDate)
	assert.Equal(t, "2024-06-03", sent.CheckOutDate)
	assert.Equal(t, "H1", sent.HotelID)
	assert.Equal(t, []string{"R1"}, sent.RoomIDs)
	assert.Equal(t, 2, sent.Guests)
	assert.Equal(t, "late check-in", sent.SpecialRequests)

	// Черновик сброшен в дефолт, остался только success-баннер
	assert.Nil(t, resp.Draft.CheckInDate)
	assert.Empty(t, resp.Draft.HotelID)
	assert.Empty(t, resp.Draft.SelectedRoomIDs)
	assert.Equal(t, domain.DefaultGuestCount, resp.Draft.GuestCount)
	assert.Equal(t, domain.StatusIdle, resp.Draft.Status)
	assert.Empty(t, resp.Availability.Rooms)
	require.NotNil(t, resp.Draft.LastAlert)
	assert.Equal(t, domain.AlertSuccess, resp.Draft.LastAlert.Kind)
	assert.Equal(t, "Booking created", resp.Draft.LastAlert.Message)

	assert.Equal(t, []string{"submitted"}, recorder.outcomes)
}

func TestExecute_SuccessWithoutServerMessageUsesDefault(t *testing.T) {
	client := &fakeReservationClient{result: &hotelapi.Confirmation{ID: "RES-1"}}
	uc, sessions, sessionID, _ := newFixture(t, client)
	seedCompleteDraft(t, sessions, sessionID)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: sessionID})

	require.NoError(t, err)
	require.NotNil(t, resp.Draft.LastAlert)
	assert.Equal(t, domain.MsgSubmitSuccess, resp.Draft.LastAlert.Message)
}

func TestExecute_ValidationFailureSkipsNetwork(t *testing.T) {
	client := &fakeReservationClient{}
	uc, _, sessionID, recorder := newFixture(t, client)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: sessionID})

	require.NoError(t, err)
	assert.Equal(t, OutcomeValidationFailed, resp.Outcome)
	assert.Equal(t, 0, client.callCount())
	require.NotNil(t, resp.Draft.LastAlert)
	assert.Equal(t, domain.AlertError, resp.Draft.LastAlert.Kind)
	assert.Equal(t, domain.MsgMissingRequiredFields, resp.Draft.LastAlert.Message)
	assert.Equal(t, domain.StatusIdle, resp.Draft.Status)
	assert.Equal(t, []string{"validation_failed"}, recorder.outcomes)
}

func TestExecute_RejectionKeepsDraft(t *testing.T) {
	client := &fakeReservationClient{
		serverMsg: "Room R1 is no longer available",
		err:       hotelapi.ErrRejected,
	}
	uc, sessions, sessionID, recorder := newFixture(t, client)
	seedCompleteDraft(t, sessions, sessionID)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: sessionID})

	require.NoError(t, err)
	assert.Equal(t, OutcomeRejected, resp.Outcome)
	assert.Nil(t, resp.Confirmation)

	// Поля черновика сохранены - гость правит и отправляет заново
	assert.Equal(t, "H1", resp.Draft.HotelID)
	assert.Equal(t, []string{"R1"}, resp.Draft.SelectedRoomIDs)
	assert.Equal(t, "late check-in", resp.Draft.SpecialRequests)
	assert.Equal(t, domain.StatusIdle, resp.Draft.Status)

	// Сообщение бэкенда показывается гостю дословно
	require.NotNil(t, resp.Draft.LastAlert)
	assert.Equal(t, domain.AlertError, resp.Draft.LastAlert.Kind)
	assert.Equal(t, "Room R1 is no longer available", resp.Draft.LastAlert.Message)

	assert.Equal(t, []string{"rejected"}, recorder.outcomes)
}

func TestExecute_BackendFailureShowsGenericMessage(t *testing.T) {
	client := &fakeReservationClient{err: hotelapi.ErrUnavailable}
	uc, sessions, sessionID, recorder := newFixture(t, client)
	seedCompleteDraft(t, sessions, sessionID)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: sessionID})

	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, resp.Outcome)
	assert.Equal(t, "H1", resp.Draft.HotelID)
	assert.Equal(t, domain.StatusIdle, resp.Draft.Status)
	require.NotNil(t, resp.Draft.LastAlert)
	assert.Equal(t, domain.MsgSubmitFailure, resp.Draft.LastAlert.Message)
	assert.Equal(t, []string{"failed"}, recorder.outcomes)
}

func TestExecute_BackendFailureShowsServerMessage(t *testing.T) {
	client := &fakeReservationClient{
		serverMsg: "Reservations are temporarily paused for maintenance",
		err:       hotelapi.ErrUnavailable,
	}
	uc, sessions, sessionID, _ := newFixture(t, client)
	seedCompleteDraft(t, sessions, sessionID)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: sessionID})

	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, resp.Outcome)

	// Сообщение бэкенда показывается и при 5xx, дефолт только без сообщения
	require.NotNil(t, resp.Draft.LastAlert)
	assert.Equal(t, domain.AlertError, resp.Draft.LastAlert.Kind)
	assert.Equal(t, "Reservations are temporarily paused for maintenance", resp.Draft.LastAlert.Message)
}

func TestExecute_SecondSubmitWhileInFlightIsIgnored(t *testing.T) {
	release := make(chan struct{})
	client := &fakeReservationClient{
		result:  &hotelapi.Confirmation{ID: "RES-42"},
		release: release,
	}
	uc, sessions, sessionID, _ := newFixture(t, client)
	seedCompleteDraft(t, sessions, sessionID)

	// Первая отправка повисает в fake-клиенте
	firstDone := make(chan *Response, 1)
	go func() {
		resp, err := uc.Execute(context.Background(), &Request{SessionID: sessionID})
		assert.NoError(t, err)
		firstDone <- resp
	}()

	require.Eventually(t, func() bool {
		return client.callCount() == 1
	}, time.Second, 5*time.Millisecond)

	// Повторный клик по кнопке, пока заявка в полете
	second, err := uc.Execute(context.Background(), &Request{SessionID: sessionID})
	require.NoError(t, err)
	assert.Equal(t, OutcomeIgnored, second.Outcome)
	assert.Equal(t, domain.StatusSubmitting, second.Draft.Status)

	close(release)
	first := <-firstDone
	require.NotNil(t, first)

	assert.Equal(t, OutcomeSubmitted, first.Outcome)
	assert.Equal(t, 1, client.callCount(), "в полете может быть только одна заявка")
}

func TestExecute_SessionNotFound(t *testing.T) {
	uc, _, _, _ := newFixture(t, &fakeReservationClient{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "missing"})

	assert.ErrorIs(t, err, ErrSessionNotFound)
}
