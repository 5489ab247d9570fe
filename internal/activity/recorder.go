// Package activity implements the best-effort activity log recorder.
package activity

import (
	"context"
	"log/slog"

	"ripple/internal/cache"
	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/repository"
)

// Recorder appends audit records as a side effect of other operations.
// Recording is fire-and-forget: failures are logged and counted, never
// surfaced to the caller and never retried.
type Recorder struct {
	repo repository.ActivityRepository
}

// NewRecorder returns a Recorder writing through the given repository.
func NewRecorder(repo repository.ActivityRepository) *Recorder {
	return &Recorder{repo: repo}
}

// Ref adapts an entity ID to the optional reference shape activities use.
func Ref(id uint) *uint {
	return &id
}

// Record appends one activity. The actor/target/post references are
// optional; the message is required.
func (r *Recorder) Record(ctx context.Context, typ models.ActivityType, actorID, targetUserID, postID *uint, message string) {
	entry := &models.Activity{
		Type:         typ,
		ActorID:      actorID,
		TargetUserID: targetUserID,
		PostID:       postID,
		Message:      message,
	}

	if err := r.repo.Create(ctx, entry); err != nil {
		middleware.ActivityRecordFailures.Inc()
		middleware.Logger.ErrorContext(ctx, "activity record dropped",
			slog.String("type", string(typ)),
			slog.String("error", err.Error()),
		)
		return
	}

	cache.InvalidateActivities(ctx)
}
