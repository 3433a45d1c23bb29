package submit_reservation

import (
	"context"
	"errors"

	"github.com/m04kA/HBP-GuestBookingService/internal/domain"
	"github.com/m04kA/HBP-GuestBookingService/internal/integrations/hotelapi"
	sessionsService "github.com/m04kA/HBP-GuestBookingService/internal/service/sessions"
)

// UseCase use case отправки заявки на бронирование.
//
// Жизненный цикл отправки: Idle → Submitting → Idle. Пока заявка в полете,
// повторные вызовы игнорируются (single-flight). При успехе черновик
// сбрасывается в дефолт, при отказе - сохраняется как есть, чтобы гость
// мог поправить поля и отправить заново. Авторетраев нет: каждая повторная
// попытка - явное действие гостя.
type UseCase struct {
	sessions SessionProvider
	client   HotelAPIClient
	metrics  SubmitMetrics
	logger   Logger
}

// NewUseCase создает новый экземпляр use case.
// metrics может быть nil, если сбор метрик выключен.
func NewUseCase(sessions SessionProvider, client HotelAPIClient, metrics SubmitMetrics, logger Logger) *UseCase {
	return &UseCase{
		sessions: sessions,
		client:   client,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute выполняет отправку черновика
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	sess, err := uc.sessions.GetSession(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionsService.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	// 1-3. Локальная валидация, single-flight guard и переход в Submitting -
	// одним критическим участком, чтобы между проверкой и взведением флага
	// не вклинилась параллельная отправка.
	var outcome Outcome
	var payload domain.ReservationRequest
	draft, availability := sess.Update(func(d *domain.BookingDraft, av *domain.AvailabilityState) {
		if missing := d.MissingForSubmission(); len(missing) > 0 {
			d.LastAlert = &domain.Alert{
				Kind:    domain.AlertError,
				Message: domain.MsgMissingRequiredFields,
			}
			outcome = OutcomeValidationFailed
			return
		}

		if d.IsSubmitting() {
			outcome = OutcomeIgnored
			return
		}

		d.Status = domain.StatusSubmitting
		payload = d.BuildReservationRequest()
	})

	switch outcome {
	case OutcomeValidationFailed:
		uc.logger.Warn("SubmitReservation: validation failed for session=%s, missing required fields", req.SessionID)
		uc.incAttempt(OutcomeValidationFailed)
		return uc.response(sess.ID, draft, availability, OutcomeValidationFailed, nil), nil

	case OutcomeIgnored:
		uc.logger.Info("SubmitReservation: submission already in flight for session=%s, ignoring", req.SessionID)
		uc.incAttempt(OutcomeIgnored)
		return uc.response(sess.ID, draft, availability, OutcomeIgnored, nil), nil
	}

	uc.logger.Info("SubmitReservation: submitting session=%s hotel=%s rooms=%v guests=%d",
		req.SessionID, payload.HotelID, payload.RoomIDs, payload.Guests)

	// 4. Единственный сетевой вызов на одну отправку
	confirmation, serverMsg, submitErr := uc.client.CreateReservation(ctx, payload)

	// 5. Фиксируем исход под локом сессии
	switch {
	case submitErr == nil:
		draft, availability = sess.Update(func(d *domain.BookingDraft, av *domain.AvailabilityState) {
			d.Clear()
			d.LastAlert = &domain.Alert{
				Kind:    domain.AlertSuccess,
				Message: messageOrDefault(serverMsg, domain.MsgSubmitSuccess),
			}
		})
		// Черновик пуст - выдача availability больше не про него
		sess.ResetAvailability()
		draft, availability = sess.Snapshot()

		uc.logger.Info("SubmitReservation: session=%s submitted successfully, confirmation id=%s",
			req.SessionID, confirmation.ID)
		uc.incAttempt(OutcomeSubmitted)
		return uc.response(sess.ID, draft, availability, OutcomeSubmitted, confirmation), nil

	case errors.Is(submitErr, hotelapi.ErrRejected):
		draft, availability = sess.Update(func(d *domain.BookingDraft, av *domain.AvailabilityState) {
			d.Status = domain.StatusIdle
			d.LastAlert = &domain.Alert{
				Kind:    domain.AlertError,
				Message: messageOrDefault(serverMsg, domain.MsgSubmitFailure),
			}
		})

		uc.logger.Warn("SubmitReservation: session=%s rejected by backend: %v", req.SessionID, submitErr)
		uc.incAttempt(OutcomeRejected)
		return uc.response(sess.ID, draft, availability, OutcomeRejected, nil), nil

	default:
		draft, availability = sess.Update(func(d *domain.BookingDraft, av *domain.AvailabilityState) {
			d.Status = domain.StatusIdle
			d.LastAlert = &domain.Alert{
				Kind:    domain.AlertError,
				Message: messageOrDefault(serverMsg, domain.MsgSubmitFailure),
			}
		})

		uc.logger.Error("SubmitReservation: session=%s submission failed: %v", req.SessionID, submitErr)
		uc.incAttempt(OutcomeFailed)
		return uc.response(sess.ID, draft, availability, OutcomeFailed, nil), nil
	}
}

func (uc *UseCase) response(sessionID string, draft domain.BookingDraft, availability domain.AvailabilityState, outcome Outcome, confirmation *hotelapi.Confirmation) *Response {
	return &Response{
		SessionID:    sessionID,
		Draft:        draft,
		Availability: availability,
		Outcome:      outcome,
		Confirmation: confirmation,
	}
}

func (uc *UseCase) incAttempt(outcome Outcome) {
	if uc.metrics != nil {
		uc.metrics.IncSubmitAttempt(string(outcome))
	}
}

// messageOrDefault возвращает сообщение сервера, если оно есть
func messageOrDefault(serverMsg, fallback string) string {
	if serverMsg != "" {
		return serverMsg
	}
	return fallback
}
