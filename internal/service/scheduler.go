package service

import "time"

// Timer - отменяемый отложенный вызов
type Timer interface {
	Stop() bool
}

// Scheduler планирует отложенные вызовы
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type wallClockScheduler struct{}

// NewWallClockScheduler возвращает планировщик на основе time.AfterFunc
func NewWallClockScheduler() Scheduler {
	return wallClockScheduler{}
}

func (wallClockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
