package bank

import "time"

// Scheduler defers work, so tests can control time instead of sleeping.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// NewTimerScheduler returns the real-time scheduler backed by time.AfterFunc.
// The scheduled work is fire-and-forget and does not survive a restart.
func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}
