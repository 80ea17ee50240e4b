package usecase

import (
	"context"
	"time"

	"workspace-chat/internal/calendar"
	"workspace-chat/internal/chat"
	"workspace-chat/internal/workspace"
	"workspace-chat/pkg/aiprovider"
	"workspace-chat/pkg/log"

	"github.com/google/uuid"
)

// aiRegistry is the slice of the provider registry the chat flow needs.
type aiRegistry interface {
	Chat(ctx context.Context, name string, req *aiprovider.Request) (*aiprovider.Response, error)
}

type implUseCase struct {
	l          log.Logger
	calendarUC calendar.UseCase
	wsUC       workspace.UseCase
	ai         aiRegistry

	newID func() string
	now   func() time.Time
}

var _ chat.UseCase = &implUseCase{}

// New creates the chat use case.
func New(l log.Logger, calendarUC calendar.UseCase, wsUC workspace.UseCase, ai *aiprovider.Registry) chat.UseCase {
	return &implUseCase{
		l:          l,
		calendarUC: calendarUC,
		wsUC:       wsUC,
		ai:         ai,
		newID:      uuid.NewString,
		now:        time.Now,
	}
}
