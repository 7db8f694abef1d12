package drill

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/baeum-app/baeum/internal/srs"
	"github.com/baeum-app/baeum/internal/store"
)

// sessionRecorder forwards graded reviews to the SRS engine and appends a
// review event for the history views. Event write failures are logged only;
// the schedule update has already happened.
type sessionRecorder struct {
	engine    *srs.Engine
	events    *store.EventLog
	sessionID string
	clock     srs.Clock
	log       logrus.FieldLogger
}

func (r *sessionRecorder) RecordReview(id string, quality srs.Quality) {
	r.engine.RecordReview(id, quality)

	if r.events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := r.events.Append(ctx, store.ReviewEvent{
		SessionID: r.sessionID,
		ItemID:    id,
		Quality:   int(quality),
		Correct:   quality.Success(),
		At:        r.clock.Now(),
	})
	if err != nil {
		r.log.WithError(err).Warn("drill: review event not recorded")
	}
}
