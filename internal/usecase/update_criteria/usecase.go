package update_criteria

import (
	"context"
	"errors"
	"time"

	"github.com/m04kA/HBP-GuestBookingService/internal/domain"
	"github.com/m04kA/HBP-GuestBookingService/internal/integrations/hotelapi"
	sessionsService "github.com/m04kA/HBP-GuestBookingService/internal/service/sessions"
)

// UseCase use case применения критериев поиска: смена отеля или дат
// перезапрашивает availability, результат применяется только если за время
// запроса гость не поменял критерии еще раз.
type UseCase struct {
	sessions SessionProvider
	client   HotelAPIClient
	metrics  StaleCounter
	logger   Logger
}

// NewUseCase создает новый экземпляр use case.
// metrics может быть nil, если сбор метрик выключен.
func NewUseCase(sessions SessionProvider, client HotelAPIClient, metrics StaleCounter, logger Logger) *UseCase {
	return &UseCase{
		sessions: sessions,
		client:   client,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute применяет критерии и при полной тройке (отель, заезд, выезд)
// выдает sequence-stamped запрос availability
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateCriteria: session=%s, hotel=%q, checkIn=%v, checkOut=%v",
		req.SessionID, req.HotelID, formatDate(req.CheckInDate), formatDate(req.CheckOutDate))

	sess, err := uc.sessions.GetSession(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionsService.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	// 1. Применяем критерии и штампуем запрос номером одним критическим
	// участком: при параллельных изменениях критериев порядок номеров
	// совпадает с порядком применения, последний примененный критерий
	// всегда несет старший номер
	var inverted bool
	seq, issued := sess.UpdateAndBeginQuery(func(d *domain.BookingDraft, av *domain.AvailabilityState) bool {
		d.HotelID = req.HotelID
		d.CheckInDate = req.CheckInDate
		d.CheckOutDate = req.CheckOutDate

		if !d.HasCompleteCriteria() {
			return false
		}
		if !req.CheckOutDate.After(*req.CheckInDate) {
			inverted = true
			return false
		}
		return true
	})

	// 2. Неполные критерии: сбрасываем выбор и выдачу без похода в сеть.
	// Сброс также инвалидирует запрос, оставшийся в полете.
	if !issued {
		sess.ResetAvailability()

		if inverted {
			uc.logger.Warn("UpdateCriteria: inverted date range for session=%s", req.SessionID)
			return nil, ErrInvalidDateRange
		}

		draft, availability := sess.Snapshot()
		uc.logger.Info("UpdateCriteria: criteria incomplete for session=%s, availability reset", req.SessionID)
		return &Response{
			SessionID:    sess.ID,
			Draft:        draft,
			Availability: availability,
			QueryIssued:  false,
		}, nil
	}

	// 3. Идем в бэкенд уже без лока сессии
	rooms, fetchErr := uc.client.GetAvailableRooms(ctx, req.HotelID, *req.CheckInDate, *req.CheckOutDate)

	// 4. Применяем результат, только если наш запрос все еще последний
	var applied bool
	if fetchErr != nil {
		// Ошибка бэкенда не блокирует гостя: показываем "ноль свободных комнат"
		uc.logger.Error("UpdateCriteria: availability fetch failed for session=%s seq=%d: %v",
			req.SessionID, seq, fetchErr)
		applied = sess.ApplyAvailabilityResult(seq, nil, true)
	} else {
		applied = sess.ApplyAvailabilityResult(seq, hotelapi.RoomsToDomain(rooms), false)
	}

	if !applied {
		uc.logger.Info("UpdateCriteria: dropped stale availability response for session=%s seq=%d",
			req.SessionID, seq)
		if uc.metrics != nil {
			uc.metrics.IncStaleAvailability()
		}
	} else if fetchErr == nil {
		uc.logger.Info("UpdateCriteria: applied %d rooms for session=%s seq=%d", len(rooms), req.SessionID, seq)
	}

	draft, availability := sess.Snapshot()
	return &Response{
		SessionID:    sess.ID,
		Draft:        draft,
		Availability: availability,
		QueryIssued:  true,
		Stale:        !applied,
	}, nil
}

// formatDate форматирует опциональную дату для лога
func formatDate(t *time.Time) string {
	if t == nil {
		return "<unset>"
	}
	return t.Format(domain.DateFormat)
}
