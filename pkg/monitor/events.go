// Package monitor streams soft assertion failures to live
// dashboards over WebSocket.
package monitor

import (
	"time"

	"digital.vasic.softassert/pkg/collector"
)

// EventType names the kind of message sent to clients.
type EventType string

const (
	// EventSnapshot carries the dashboard state when a client
	// connects.
	EventSnapshot EventType = "snapshot"
	// EventFailure carries one newly recorded failure.
	EventFailure EventType = "failure"
	// EventStatus carries the final dashboard once the run is
	// asserted.
	EventStatus EventType = "status"
)

// Event is one message on the live stream.
type Event struct {
	Type      EventType          `json:"type"`
	Failure   *collector.Failure `json:"failure,omitempty"`
	Dashboard *DashboardData     `json:"dashboard,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
}
