// internal/store/notification/store.go
package notification

import (
	"sync"
	"time"
)

// Severity classifies a notification for display purposes
type Severity string

// Notification severities
const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Notification represents one user-facing status message
type Notification struct {
	ID       int64
	Message  string
	Severity Severity
	Duration time.Duration
}

// Store holds a time-bounded queue of user-facing status messages. Each
// notification expires on its own timer; removal is idempotent.
type Store struct {
	mu              sync.Mutex
	nextID          int64
	notifications   []Notification
	timers          map[int64]*time.Timer
	defaultDuration time.Duration
}

// NewStore creates a notification store. defaultDuration applies when Push
// is called with a non-positive duration.
func NewStore(defaultDuration time.Duration) *Store {
	if defaultDuration <= 0 {
		defaultDuration = 3 * time.Second
	}
	return &Store{
		timers:          make(map[int64]*time.Timer),
		defaultDuration: defaultDuration,
	}
}

// Push queues a notification and schedules its automatic removal. The
// returned id can be used for explicit dismissal.
func (s *Store) Push(message string, severity Severity, duration time.Duration) int64 {
	if duration <= 0 {
		duration = s.defaultDuration
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.notifications = append(s.notifications, Notification{
		ID:       id,
		Message:  message,
		Severity: severity,
		Duration: duration,
	})
	s.timers[id] = time.AfterFunc(duration, func() {
		s.Remove(id)
	})

	return id
}

// Remove dismisses a notification by id. Removing an id that has already
// expired or been dismissed is a no-op.
func (s *Store) Remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer, ok := s.timers[id]
	if ok {
		timer.Stop()
		delete(s.timers, id)
	}

	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// Clear empties the queue and cancels all pending auto-removals
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.notifications = nil
}

// Notifications returns a copy of the current queue in push order
func (s *Store) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.notifications) == 0 {
		return nil
	}
	dup := make([]Notification, len(s.notifications))
	copy(dup, s.notifications)
	return dup
}

// Success queues a success notification with the default duration
func (s *Store) Success(message string) int64 {
	return s.Push(message, SeveritySuccess, 0)
}

// Error queues an error notification with the default duration
func (s *Store) Error(message string) int64 {
	return s.Push(message, SeverityError, 0)
}

// Warning queues a warning notification with the default duration
func (s *Store) Warning(message string) int64 {
	return s.Push(message, SeverityWarning, 0)
}

// Info queues an info notification with the default duration
func (s *Store) Info(message string) int64 {
	return s.Push(message, SeverityInfo, 0)
}
