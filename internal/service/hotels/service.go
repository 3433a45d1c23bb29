package hotels

import (
	"context"

	"github.com/m04kA/HBP-GuestBookingService/internal/domain"
	"github.com/m04kA/HBP-GuestBookingService/internal/integrations/hotelapi"
)

// Service сервис каталога отелей.
// Каталог не критичен для остального флоу: при недоступности бэкенда гость
// получает пустой список с флагом деградации, а не блокирующую ошибку.
type Service struct {
	client HotelAPIClient
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(client HotelAPIClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// List возвращает каталог отелей. Второе значение - флаг деградации:
// true означает, что бэкенд недоступен и список пуст не по факту.
func (s *Service) List(ctx context.Context) ([]domain.Hotel, bool) {
	result, err := s.client.ListHotels(ctx)
	if err != nil {
		s.logger.Error("Hotels: catalog unavailable, degrading to empty list: %v", err)
		return []domain.Hotel{}, true
	}

	hotels := hotelapi.HotelsToDomain(result)
	s.logger.Info("Hotels: fetched %d hotels", len(hotels))
	return hotels, false
}
