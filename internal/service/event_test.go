package service

import (
	"context"
	"testing"
	"time"

	"github.com/akimovv/SessionBooker/internal/domain"
	"github.com/akimovv/SessionBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventService_List(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	sessionRepo := mocks.NewMockSessionRepo(t)

	svc := NewEventService(eventRepo, sessionRepo)

	events := []*domain.EventSummary{
		{Event: domain.Event{ID: 1, Title: "Retreat"}, SessionsCount: 3},
		{Event: domain.Event{ID: 2, Title: "Workshop"}, SessionsCount: 1},
	}
	eventRepo.EXPECT().List(mock.Anything).Return(events, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, 3, result[0].SessionsCount)
}

func TestEventService_Get_WithSessions(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	sessionRepo := mocks.NewMockSessionRepo(t)

	svc := NewEventService(eventRepo, sessionRepo)

	event := &domain.Event{ID: 3, Title: "Retreat", StartDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)}
	sessions := []*domain.Session{
		{ID: 10, EventID: 3, Location: "Studio A"},
		{ID: 11, EventID: 3, Location: "Studio B"},
	}

	eventRepo.EXPECT().GetByID(mock.Anything, int64(3)).Return(event, nil)
	sessionRepo.EXPECT().ListByEvent(mock.Anything, int64(3)).Return(sessions, nil)

	details, err := svc.Get(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "Retreat", details.Event.Title)
	assert.Len(t, details.Sessions, 2)
}

func TestEventService_Get_NotFound(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	sessionRepo := mocks.NewMockSessionRepo(t)

	svc := NewEventService(eventRepo, sessionRepo)

	eventRepo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrEventNotFound)

	_, err := svc.Get(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}
