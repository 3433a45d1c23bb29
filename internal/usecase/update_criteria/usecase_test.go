package update_criteria

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

// fakeAvailabilityClient отдает подготовленную выдачу; перед ответом может
// блокироваться на release-канале, чтобы тест управлял порядком ответов
type fakeAvailabilityClient struct {
	mu      sync.Mutex
	calls   int
	rooms   [][]hotelapi.Room
	err     error
	release chan struct{}
}

func (c *fakeAvailabilityClient) GetAvailableRooms(ctx context.Context, hotelID string, checkIn, checkOut time.Time) ([]hotelapi.Room, error) {
	c.mu.Lock()
	call := c.calls
	c.calls++
	c.mu.Unlock()

	if c.release != nil && call == 0 {
		<-c.release
	}

	if c.err != nil {
		return nil, c.err
	}
	if call < len(c.rooms) {
		return c.rooms[call], nil
	}
	return []hotelapi.Room{}, nil
}

type staleRecorder struct {
	mu    sync.Mutex
	count int
}

func (r *staleRecorder) IncStaleAvailability() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count++
}

func newFixture(t *testing.T, client HotelAPIClient) (*UseCase, string, *staleRecorder) {
	t.Helper()

	store := storage.NewStore()
	sessions := sessionsService.NewService(store, nopLogger{})
	sessionID := sessions.Create(context.Background()).SessionID

	recorder := &staleRecorder{}
	return NewUseCase(sessions, client, recorder, nopLogger{}), sessionID, recorder
}

func date(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse(domain.DateFormat, value)
	require.NoError(t, err)
	return &parsed
}

func someRooms() []hotelapi.Room {
	return []hotelapi.Room{
		{ID: "R1", RoomNumber: "101", RoomType: "double", MaxOccupancy: 2},
		{ID: "R2", RoomNumber: "102", RoomType: "suite", MaxOccupancy: 3},
	}
}

func TestExecute_CompleteCriteriaFetchesRooms(t *testing.T) {
	client := &fakeAvailabilityClient{rooms: [][]hotelapi.Room{someRooms()}}
	uc, sessionID, _ := newFixture(t, client)

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID:    sessionID,
		HotelID:      "H1",
		CheckInDate:  date(t, "2024-06-01"),
		CheckOutDate: date(t, "2024-06-03"),
	})

	require.NoError(t, err)
	assert.True(t, resp.QueryIssued)
	assert.False(t, resp.Stale)
	assert.Equal(t, domain.FetchLoaded, resp.Availability.Status)
	require.Len(t, resp.Availability.Rooms, 2)
	assert.Equal(t, "R1", resp.Availability.Rooms[0].ID)
	assert.Equal(t, "H1", resp.Draft.HotelID)
}

func TestExecute_IncompleteCriteriaSkipsQuery(t *testing.T) {
	client := &fakeAvailabilityClient{rooms: [][]hotelapi.Room{someRooms()}}
	uc, sessionID, _ := newFixture(t, client)

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID:    sessionID,
		HotelID:      "",
		CheckInDate:  date(t, "2024-06-01"),
		CheckOutDate: date(t, "2024-06-03"),
	})

	require.NoError(t, err)
	assert.False(t, resp.QueryIssued)
	assert.Equal(t, domain.FetchNotStarted, resp.Availability.Status)
	assert.Empty(t, resp.Availability.Rooms)
	assert.Equal(t, 0, client.calls)
}

func TestExecute_ClearingHotelResetsSelection(t *testing.T) {
	client := &fakeAvailabilityClient{rooms: [][]hotelapi.Room{someRooms()}}
	uc, sessionID, _ := newFixture(t, client)

	checkIn := date(t, "2024-06-01")
	checkOut := date(t, "2024-06-03")

	_, err := uc.Execute(context.Background(), &Request{
		SessionID:    sessionID,
		HotelID:      "H1",
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	})
	require.NoError(t, err)

	// Гость выбрал комнату, а затем очистил поле отеля
	sess, err := uc.sessions.GetSession(context.Background(), sessionID)
	require.NoError(t, err)
	sess.Update(func(d *domain.BookingDraft, av *domain.AvailabilityState) {
		d.ToggleRoom("R1")
		d.RecomputeMaxGuests(av.Rooms)
	})

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID:    sessionID,
		HotelID:      "",
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	})

	require.NoError(t, err)
	assert.False(t, resp.QueryIssued)
	assert.Empty(t, resp.Draft.SelectedRoomIDs)
	assert.Equal(t, domain.DefaultMaxGuestsAllowed, resp.Draft.MaxGuestsAllowed)
	assert.Empty(t, resp.Availability.Rooms)
	assert.Equal(t, domain.FetchNotStarted, resp.Availability.Status)
}

func TestExecute_InvertedDateRange(t *testing.T) {
	client := &fakeAvailabilityClient{}
	uc, sessionID, _ := newFixture(t, client)

	_, err := uc.Execute(context.Background(), &Request{
		SessionID:    sessionID,
		HotelID:      "H1",
		CheckInDate:  date(t, "2024-06-03"),
		CheckOutDate: date(t, "2024-06-01"),
	})

	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Equal(t, 0, client.calls)
}

func TestExecute_SameDayRange(t *testing.T) {
	client := &fakeAvailabilityClient{}
	uc, sessionID, _ := newFixture(t, client)

	_, err := uc.Execute(context.Background(), &Request{
		SessionID:    sessionID,
		HotelID:      "H1",
		CheckInDate:  date(t, "2024-06-01"),
		CheckOutDate: date(t, "2024-06-01"),
	})

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestExecute_FetchErrorShowsNoRooms(t *testing.T) {
	client := &fakeAvailabilityClient{err: hotelapi.ErrUnavailable}
	uc, sessionID, _ := newFixture(t, client)

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID:    sessionID,
		HotelID:      "H1",
		CheckInDate:  date(t, "2024-06-01"),
		CheckOutDate: date(t, "2024-06-03"),
	})

	require.NoError(t, err, "недоступность бэкенда не должна быть ошибкой для гостя")
	assert.True(t, resp.QueryIssued)
	assert.Equal(t, domain.FetchFailed, resp.Availability.Status)
	assert.Empty(t, resp.Availability.Rooms)
	assert.Empty(t, resp.Draft.SelectedRoomIDs)
}

func TestExecute_StaleResponseDropped(t *testing.T) {
	release := make(chan struct{})
	client := &fakeAvailabilityClient{
		release: release,
		rooms: [][]hotelapi.Room{
			{{ID: "OLD", RoomNumber: "1", RoomType: "single", MaxOccupancy: 1}},
			{{ID: "NEW", RoomNumber: "2", RoomType: "single", MaxOccupancy: 1}},
		},
	}
	uc, sessionID, recorder := newFixture(t, client)

	firstIn, firstOut := date(t, "2024-06-01"), date(t, "2024-06-03")

	// Первый запрос повисает в fake-клиенте на release-канале
	firstDone := make(chan *Response, 1)
	go func() {
		resp, err := uc.Execute(context.Background(), &Request{
			SessionID:    sessionID,
			HotelID:      "H1",
			CheckInDate:  firstIn,
			CheckOutDate: firstOut,
		})
		assert.NoError(t, err)
		firstDone <- resp
	}()

	// Ждем, пока первый запрос дойдет до клиента
	require.Eventually(t, func() bool {
		client.mu.Lock()
		defer client.mu.Unlock()
		return client.calls == 1
	}, time.Second, 5*time.Millisecond)

	// Гость меняет даты: второй запрос завершается первым
	second, err := uc.Execute(context.Background(), &Request{
		SessionID:    sessionID,
		HotelID:      "H1",
		CheckInDate:  date(t, "2024-06-05"),
		CheckOutDate: date(t, "2024-06-07"),
	})
	require.NoError(t, err)
	assert.False(t, second.Stale)

	// Отпускаем первый запрос: его ответ уже устарел
	close(release)
	first := <-firstDone
	require.NotNil(t, first)

	assert.True(t, first.Stale)
	require.Len(t, first.Availability.Rooms, 1)
	assert.Equal(t, "NEW", first.Availability.Rooms[0].ID, "в сессии должна остаться выдача новейшего запроса")

	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	assert.Equal(t, 1, recorder.count)
}

func TestExecute_SessionNotFound(t *testing.T) {
	uc, _, _ := newFixture(t, &fakeAvailabilityClient{})

	_, err := uc.Execute(context.Background(), &Request{
		SessionID:    "missing",
		HotelID:      "H1",
		CheckInDate:  date(t, "2024-06-01"),
		CheckOutDate: date(t, "2024-06-03"),
	})

	assert.ErrorIs(t, err, ErrSessionNotFound)
}
