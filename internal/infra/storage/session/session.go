package session

import (
	"sync"
	"time"

	"github.com/m04kA/HBP-GuestBookingService/internal/domain"
)

// Session агрегат гостевой сессии бронирования: черновик, последний
// результат availability и счетчик запросов. Весь доступ к черновику
// сериализуется мьютексом сессии - это эквивалент однопоточного
// событийного цикла исходного клиента.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu           sync.Mutex
	lastSeen     time.Time
	draft        *domain.BookingDraft
	availability domain.AvailabilityState
	querySeq     uint64
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:           id,
		CreatedAt:    now,
		lastSeen:     now,
		draft:        domain.NewBookingDraft(),
		availability: domain.NewAvailabilityState(),
	}
}

// Snapshot returns deep copies of the draft and availability state,
// safe to read outside the session lock
func (s *Session) Snapshot() (domain.BookingDraft, domain.AvailabilityState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Snapshot(), s.copyAvailability()
}

// Update runs fn under the session lock. fn получает черновик и состояние
// availability по указателю и может их мутировать.
func (s *Session) Update(fn func(d *domain.BookingDraft, av *domain.AvailabilityState)) (domain.BookingDraft, domain.AvailabilityState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	fn(s.draft, &s.availability)
	return s.draft.Snapshot(), s.copyAvailability()
}

// BeginAvailabilityQuery stamps a new availability query: increments the
// sequence counter and marks the fetch state as loading.
// Возвращенный номер передается в ApplyAvailabilityResult.
func (s *Session) BeginAvailabilityQuery() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	s.querySeq++
	s.availability.Status = domain.FetchLoading
	return s.querySeq
}

// UpdateAndBeginQuery runs fn under the session lock and, when fn returns
// true, stamps a new availability query in the same critical section.
// Единый критический участок гарантирует, что порядок номеров запросов
// совпадает с порядком применения критериев при параллельных изменениях.
func (s *Session) UpdateAndBeginQuery(fn func(d *domain.BookingDraft, av *domain.AvailabilityState) bool) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()

	if !fn(s.draft, &s.availability) {
		return 0, false
	}

	s.querySeq++
	s.availability.Status = domain.FetchLoading
	return s.querySeq, true
}

// ApplyAvailabilityResult applies a query result if and only if seq is still
// the most recently issued sequence number. Устаревший ответ отбрасывается
// молча, возвращается false.
//
// При применении: выбор комнат урезается до пересечения с результатом и
// потолок гостей пересчитывается - в том числе для пустого результата и
// для неудачного запроса (failed трактуется как "ноль свободных комнат").
func (s *Session) ApplyAvailabilityResult(seq uint64, rooms []domain.Room, failed bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.querySeq {
		return false
	}

	if rooms == nil {
		rooms = []domain.Room{}
	}

	s.availability.Rooms = rooms
	s.availability.Seq = seq
	if failed {
		s.availability.Status = domain.FetchFailed
	} else {
		s.availability.Status = domain.FetchLoaded
	}

	s.draft.PruneSelection(rooms)
	s.draft.RecomputeMaxGuests(rooms)

	return true
}

// ResetAvailability clears the room list and selection and invalidates any
// in-flight query: its eventual response will carry a stale sequence number.
// Вызывается, когда критерии поиска стали неполными.
func (s *Session) ResetAvailability() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	s.querySeq++
	s.availability = domain.NewAvailabilityState()
	s.draft.SelectedRoomIDs = []string{}
	s.draft.MaxGuestsAllowed = domain.DefaultMaxGuestsAllowed
}

// LastSeen returns the time of the last guest action on the session
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) copyAvailability() domain.AvailabilityState {
	av := s.availability
	av.Rooms = make([]domain.Room, len(s.availability.Rooms))
	copy(av.Rooms, s.availability.Rooms)
	return av
}
