package service

import (
	"pokerlog/internal/modules/journal/domain"
	"pokerlog/internal/platform/clock"
	"pokerlog/internal/platform/id"
)

type SessionService struct {
	clock clock.Clock
	idGen id.Generator
}

func NewSessionService(clock clock.Clock, idGen id.Generator) *SessionService {
	return &SessionService{clock: clock, idGen: idGen}
}

func (s *SessionService) NewForm() domain.Form {
	return domain.NewForm(s.clock.Now())
}

// Build computes the session a form describes. A form loaded from an
// existing session keeps its id; a fresh form gets a new one.
func (s *SessionService) Build(form domain.Form) (domain.Session, error) {
	sessionID := form.EditingID
	if sessionID == "" {
		sessionID = "sess_" + s.idGen.New()
	}
	session, err := form.Build(sessionID)
	if err != nil {
		return domain.Session{}, err
	}
	if err := session.Validate(); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}
