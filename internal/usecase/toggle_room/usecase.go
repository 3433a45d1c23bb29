package toggle_room

import (
	"context"
	"errors"

	"github.com/m04kA/HBP-GuestBookingService/internal/domain"
	sessionsService "github.com/m04kA/HBP-GuestBookingService/internal/service/sessions"
)

// UseCase use case переключения выбора комнаты. Повторное переключение
// той же комнаты возвращает выбор в исходное состояние; после каждого
// переключения пересчитывается потолок числа гостей.
type UseCase struct {
	sessions SessionProvider
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionProvider, logger Logger) *UseCase {
	return &UseCase{
		sessions: sessions,
		logger:   logger,
	}
}

// Execute переключает выбор комнаты и пересчитывает потолок гостей.
// Добавить можно только комнату из последней выдачи availability;
// снять выбор можно с любой выбранной комнаты.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	sess, err := uc.sessions.GetSession(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionsService.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var unknownRoom, selected bool
	draft, availability := sess.Update(func(d *domain.BookingDraft, av *domain.AvailabilityState) {
		if !d.HasSelectedRoom(req.RoomID) {
			if _, ok := av.RoomByID(req.RoomID); !ok {
				unknownRoom = true
				return
			}
		}

		d.ToggleRoom(req.RoomID)
		d.RecomputeMaxGuests(av.Rooms)
		selected = d.HasSelectedRoom(req.RoomID)
	})

	if unknownRoom {
		uc.logger.Warn("ToggleRoom: room id=%s not available for session=%s", req.RoomID, req.SessionID)
		return nil, ErrRoomNotAvailable
	}

	uc.logger.Info("ToggleRoom: session=%s room=%s selected=%t maxGuests=%d",
		req.SessionID, req.RoomID, selected, draft.MaxGuestsAllowed)

	return &Response{
		SessionID:    sess.ID,
		Draft:        draft,
		Availability: availability,
		Selected:     selected,
	}, nil
}
