package snapshot

import (
	"slices"
	"sync"
	"time"

	"partner/internal/entities"
)

// Store хранит последний применённый список заказов одной коллекции.
//
// Каждый запрос штампуется поколением в момент отправки (Begin). Ответ
// применяется, только если не был применён ответ более позднего запроса.
// После Close и после Reset старые ответы отбрасываются.
type Store struct {
	collection entities.Collection
	now        func() time.Time

	mu          sync.RWMutex
	issued      uint64
	applied     uint64
	floor       uint64
	orders      []entities.Order
	err         error
	refreshedAt time.Time
	closed      bool
}

func New(collection entities.Collection) *Store {
	return NewWithClock(collection, time.Now)
}

func NewWithClock(collection entities.Collection, now func() time.Time) *Store {
	return &Store{
		collection: collection,
		now:        now,
		orders:     []entities.Order{},
	}
}

func (s *Store) Collection() entities.Collection {
	return s.collection
}

// Begin выдаёт поколение для нового запроса.
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issued++
	return s.issued
}

// Apply полностью заменяет коллекцию. Возвращает false, если ответ устарел.
func (s *Store) Apply(gen uint64, orders []entities.Order) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.acceptable(gen) {
		return false
	}

	s.applied = gen
	s.orders = slices.Clone(orders)
	if s.orders == nil {
		s.orders = []entities.Order{}
	}
	s.err = nil
	s.refreshedAt = s.now()
	return true
}

// Fail выставляет признак ошибки, заказы остаются прежними.
func (s *Store) Fail(gen uint64, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.acceptable(gen) {
		return false
	}

	s.applied = gen
	s.err = err
	return true
}

// Reset очищает коллекцию (выход из аккаунта). Запросы, выданные до Reset,
// больше не применятся.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.floor = s.issued
	s.orders = []entities.Order{}
	s.err = nil
	s.refreshedAt = time.Time{}
}

func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
}

func (s *Store) Snapshot() entities.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return entities.Snapshot{
		Orders:      slices.Clone(s.orders),
		Err:         s.err,
		RefreshedAt: s.refreshedAt,
		Generation:  s.applied,
	}
}

func (s *Store) Find(orderID string) (entities.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == orderID {
			return o, true
		}
	}
	return entities.Order{}, false
}

func (s *Store) acceptable(gen uint64) bool {
	return !s.closed && gen > s.applied && gen > s.floor
}
