package session

import (
	"fmt"

	"partner/internal/entities"
	"partner/pkg/logger"
)

// Service вход и выход партнёра. Выход сбрасывает все коллекции и
// сессию доступности, вход будит фоновые обновления.
type Service struct {
	credentials Credentials
	resetters   []Resetter
	refreshers  []Refresher
	log         handlerLogger
}

func New(credentials Credentials, resetters []Resetter, refreshers []Refresher, log handlerLogger) *Service {
	return &Service{
		credentials: credentials,
		resetters:   resetters,
		refreshers:  refreshers,
		log:         log,
	}
}

func (s *Service) Login(token, partnerID string) (entities.Session, error) {
	if err := s.credentials.Login(token, partnerID); err != nil {
		return entities.Session{}, fmt.Errorf("login: %w", err)
	}
	// просроченный токен сразу отклоняется
	if _, err := s.credentials.Token(); err != nil {
		s.credentials.Logout()
		return entities.Session{}, fmt.Errorf("login: %w", err)
	}

	for _, r := range s.refreshers {
		r.Trigger()
	}

	session := s.State()
	s.log.Info("partner logged in", logger.NewField("partner_id", session.PartnerID))
	return session, nil
}

func (s *Service) Logout() {
	partnerID := s.credentials.PartnerID()

	s.credentials.Logout()
	for _, r := range s.resetters {
		r.Reset()
	}

	s.log.Info("partner logged out", logger.NewField("partner_id", partnerID))
}

func (s *Service) State() entities.Session {
	_, err := s.credentials.Token()
	return entities.Session{
		PartnerID: s.credentials.PartnerID(),
		LoggedIn:  err == nil,
	}
}
