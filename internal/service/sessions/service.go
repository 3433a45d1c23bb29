package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HBP-GuestBookingService/internal/domain"
	storage "github.com/m04kA/HBP-GuestBookingService/internal/infra/storage/session"
	"github.com/m04kA/HBP-GuestBookingService/internal/service/sessions/models"
)

// Service сервис жизненного цикла гостевых сессий бронирования
type Service struct {
	store  SessionStore
	logger Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(store SessionStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Create создает сессию с черновиком в дефолтном состоянии
func (s *Service) Create(ctx context.Context) *models.SessionStateResponse {
	sess := s.store.Create()
	draft, availability := sess.Snapshot()

	s.logger.Info("Sessions: created session id=%s", sess.ID)
	return models.FromSnapshot(sess.ID, draft, availability)
}

// GetSession возвращает живой агрегат сессии для usecase-слоя
func (s *Service) GetSession(ctx context.Context, id string) (*storage.Session, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("sessions: failed to get session: %w", err)
	}
	return sess, nil
}

// GetState возвращает снимок состояния сессии
func (s *Service) GetState(ctx context.Context, id string) (*models.SessionStateResponse, error) {
	sess, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	draft, availability := sess.Snapshot()
	return models.FromSnapshot(sess.ID, draft, availability), nil
}

// UpdateDetails обновляет необязательные поля черновика: число гостей и
// пожелания. Потолок гостей не навязывается - гость может ввести больше,
// чем позволяют выбранные комнаты, решение об отказе принимает бэкенд.
func (s *Service) UpdateDetails(ctx context.Context, id string, guests *int, specialRequests *string) (*models.SessionStateResponse, error) {
	sess, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if guests != nil && *guests < 1 {
		s.logger.Warn("Sessions: invalid guest count %d for session id=%s", *guests, id)
		return nil, ErrInvalidGuestCount
	}
	if specialRequests != nil && len(*specialRequests) > domain.MaxSpecialRequestsLength {
		s.logger.Warn("Sessions: special requests too long (%d chars) for session id=%s", len(*specialRequests), id)
		return nil, ErrSpecialRequestsTooLong
	}

	draft, availability := sess.Update(func(d *domain.BookingDraft, av *domain.AvailabilityState) {
		if guests != nil {
			d.GuestCount = *guests
		}
		if specialRequests != nil {
			d.SpecialRequests = *specialRequests
		}
	})

	return models.FromSnapshot(sess.ID, draft, availability), nil
}

// End завершает сессию и отбрасывает черновик. Завершение идемпотентно;
// ответ на запрос availability, оставшийся в полете, никогда не применится -
// его сессии больше нет.
func (s *Service) End(ctx context.Context, id string) {
	s.store.Delete(id)
	s.logger.Info("Sessions: ended session id=%s", id)
}

// StartSweeper запускает фоновую очистку простаивающих сессий.
// metrics может быть nil, если сбор метрик выключен.
func (s *Service) StartSweeper(ttl, interval time.Duration, stopCh <-chan struct{}, metrics SessionMetrics) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				removed := s.store.DeleteIdle(ttl)
				if removed > 0 {
					s.logger.Info("Sessions: swept %d idle sessions", removed)
				}
				if metrics != nil {
					metrics.SetActiveSessions(s.store.Count())
				}
			case <-stopCh:
				return
			}
		}
	}()
}
