package usecase

import (
	"time"

	"workspace-chat/internal/calendar/cache"
	"workspace-chat/internal/calendar/repository"
	pkgLog "workspace-chat/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.EventRepository
	cache *cache.WeekCache
	loc   *time.Location

	// now is swappable for tests.
	now func() time.Time
}

// New creates a new calendar UseCase instance. The cache is owned by the
// caller so its lifetime is explicit.
func New(l pkgLog.Logger, repo repository.EventRepository, weekCache *cache.WeekCache, loc *time.Location) *implUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &implUseCase{
		l:     l,
		repo:  repo,
		cache: weekCache,
		loc:   loc,
		now:   time.Now,
	}
}
