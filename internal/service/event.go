package service

import (
	"context"
	"fmt"

	"github.com/akimovv/SessionBooker/internal/domain"
	"github.com/akimovv/SessionBooker/internal/service/ports"
)

// EventService serves the public catalog.
type EventService struct {
	eventRepo   ports.EventRepo
	sessionRepo ports.SessionRepo
}

func NewEventService(eventRepo ports.EventRepo, sessionRepo ports.SessionRepo) *EventService {
	return &EventService{
		eventRepo:   eventRepo,
		sessionRepo: sessionRepo,
	}
}

func (s *EventService) List(ctx context.Context) ([]*domain.EventSummary, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return events, nil
}

func (s *EventService) Get(ctx context.Context, eventID int64) (*domain.EventDetails, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	sessions, err := s.sessionRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list event sessions: %w", err)
	}

	sessionVals := make([]domain.Session, 0, len(sessions))
	for _, sess := range sessions {
		sessionVals = append(sessionVals, *sess)
	}

	return &domain.EventDetails{Event: *event, Sessions: sessionVals}, nil
}
