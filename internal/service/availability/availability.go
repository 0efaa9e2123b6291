package availability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/AlekSi/pointer"
	"partner/internal/entities"
	"partner/pkg/logger"
)

// Service онлайн-статус партнёра. Начало онлайн-сессии помнит сам агент,
// бэкенд отдаёт только флаг.
type Service struct {
	gateway Gateway
	log     handlerLogger
	now     func() time.Time

	mu          sync.Mutex
	onlineSince *time.Time
}

func New(gateway Gateway, log handlerLogger) *Service {
	return NewWithClock(gateway, log, time.Now)
}

func NewWithClock(gateway Gateway, log handlerLogger, now func() time.Time) *Service {
	return &Service{
		gateway: gateway,
		log:     log,
		now:     now,
	}
}

func (s *Service) Get(ctx context.Context) (entities.Availability, error) {
	online, err := s.gateway.OnlineStatus(ctx)
	if err != nil {
		return entities.Availability{}, fmt.Errorf("online status: %w", err)
	}
	return s.track(online), nil
}

func (s *Service) Set(ctx context.Context, online bool) (entities.Availability, error) {
	if err := s.gateway.SetAvailability(ctx, online); err != nil {
		return entities.Availability{}, fmt.Errorf("set availability: %w", err)
	}

	s.log.Info("availability changed", logger.NewField("online", online))

	return s.track(online), nil
}

// Reset забывает начало сессии, например после выхода из аккаунта.
func (s *Service) Reset() {
	s.mu.Lock()
	s.onlineSince = nil
	s.mu.Unlock()
}

func (s *Service) track(online bool) entities.Availability {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case !online:
		s.onlineSince = nil
	case s.onlineSince == nil:
		s.onlineSince = pointer.To(s.now().UTC())
	}

	result := entities.Availability{Online: online}
	if s.onlineSince != nil {
		result.OnlineSince = pointer.To(*s.onlineSince)
	}
	return result
}
