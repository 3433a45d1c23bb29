package sessions

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HBP-GuestBookingService/internal/domain"
	storage "github.com/m04kA/HBP-GuestBookingService/internal/infra/storage/session"
	"github.com/m04kA/HBP-GuestBookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newService() *Service {
	return NewService(storage.NewStore(), nopLogger{})
}

func TestCreate_ReturnsDefaultDraft(t *testing.T) {
	service := newService()

	state := service.Create(context.Background())

	assert.NotEmpty(t, state.SessionID)
	assert.Nil(t, state.Draft.CheckInDate)
	assert.Nil(t, state.Draft.CheckOutDate)
	assert.Empty(t, state.Draft.HotelID)
	assert.Empty(t, state.Draft.SelectedRoomIDs)
	assert.Equal(t, domain.DefaultGuestCount, state.Draft.GuestCount)
	assert.Equal(t, domain.DefaultMaxGuestsAllowed, state.Draft.MaxGuestsAllowed)
	assert.Equal(t, string(domain.StatusIdle), state.Draft.Status)
	assert.Nil(t, state.Draft.LastAlert)
	assert.Equal(t, string(domain.FetchNotStarted), state.Availability.Status)
}

func TestGetState_UnknownSession(t *testing.T) {
	service := newService()

	_, err := service.GetState(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUpdateDetails(t *testing.T) {
	service := newService()
	sessionID := service.Create(context.Background()).SessionID

	state, err := service.UpdateDetails(context.Background(), sessionID,
		ptr.Ptr(3), ptr.Ptr("quiet floor please"))

	require.NoError(t, err)
	assert.Equal(t, 3, state.Draft.GuestCount)
	assert.Equal(t, "quiet floor please", state.Draft.SpecialRequests)
}

func TestUpdateDetails_PartialUpdate(t *testing.T) {
	service := newService()
	sessionID := service.Create(context.Background()).SessionID

	_, err := service.UpdateDetails(context.Background(), sessionID, ptr.Ptr(4), nil)
	require.NoError(t, err)

	// nil-поле не трогает уже заданное значение
	state, err := service.UpdateDetails(context.Background(), sessionID, nil, ptr.Ptr("sea view"))
	require.NoError(t, err)
	assert.Equal(t, 4, state.Draft.GuestCount)
	assert.Equal(t, "sea view", state.Draft.SpecialRequests)
}

func TestUpdateDetails_InvalidGuestCount(t *testing.T) {
	service := newService()
	sessionID := service.Create(context.Background()).SessionID

	_, err := service.UpdateDetails(context.Background(), sessionID, ptr.Ptr(0), nil)

	assert.ErrorIs(t, err, ErrInvalidGuestCount)
}

func TestUpdateDetails_GuestCountAboveCeilingAccepted(t *testing.T) {
	service := newService()
	sessionID := service.Create(context.Background()).SessionID

	// Потолок подсказка для UI, а не серверное ограничение
	state, err := service.UpdateDetails(context.Background(), sessionID,
		ptr.Ptr(domain.DefaultMaxGuestsAllowed+5), nil)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMaxGuestsAllowed+5, state.Draft.GuestCount)
}

func TestUpdateDetails_SpecialRequestsTooLong(t *testing.T) {
	service := newService()
	sessionID := service.Create(context.Background()).SessionID

	tooLong := strings.Repeat("x", domain.MaxSpecialRequestsLength+1)
	_, err := service.UpdateDetails(context.Background(), sessionID, nil, ptr.Ptr(tooLong))

	assert.ErrorIs(t, err, ErrSpecialRequestsTooLong)
}

func TestEnd_RemovesSession(t *testing.T) {
	service := newService()
	sessionID := service.Create(context.Background()).SessionID

	service.End(context.Background(), sessionID)

	_, err := service.GetState(context.Background(), sessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestEnd_Idempotent(t *testing.T) {
	service := newService()
	sessionID := service.Create(context.Background()).SessionID

	service.End(context.Background(), sessionID)
	service.End(context.Background(), sessionID)

	_, err := service.GetState(context.Background(), sessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
