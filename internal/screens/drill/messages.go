package drill

import (
	drillcore "github.com/baeum-app/baeum/internal/drill"
)

// sessionInitMsg is sent when the pool has been built and prioritized.
type sessionInitMsg struct {
	Engine *drillcore.Engine
	Pool   []drillcore.Item
	Err    error
}

// timerTickMsg drives the optional reveal countdown. Gen identifies the
// timer generation; ticks from a cancelled generation are ignored.
type timerTickMsg struct {
	Gen int
}

// sessionEndMsg is sent to trigger the summary hand-off.
type sessionEndMsg struct{}
