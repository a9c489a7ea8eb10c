package clock

import "time"

// Clock abstracts time lookups so stores can be tested with fixed timestamps.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

// NewRealClock creates a new RealClock.
func NewRealClock() Clock {
	return &RealClock{}
}

// Now returns the current system time.
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a test clock whose current time is set explicitly.
type MockClock struct {
	current time.Time
}

// NewMockClock creates a MockClock starting at the given time.
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{current: start}
}

// Now returns the mock current time.
func (m *MockClock) Now() time.Time {
	return m.current
}

// Set sets the mock current time.
func (m *MockClock) Set(t time.Time) {
	m.current = t
}

// Advance moves the mock clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
