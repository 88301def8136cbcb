package scheduler

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Scheduler ставит отложенные переходы статусов с возможностью отмены.
// Таймеры привязаны к записи: отмена по идентификатору снимает все
// незавершенные переходы этой записи, остановка планировщика - все сразу.
type Scheduler struct {
	logger *logrus.Logger

	mu      sync.Mutex
	timers  map[int64][]*time.Timer
	stopped bool
}

// New создает планировщик
func New(logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		logger: logger,
		timers: make(map[int64][]*time.Timer),
	}
}

// Schedule ставит отложенный вызов fn для записи id через delay.
// После остановки планировщика новые задачи игнорируются.
func (s *Scheduler) Schedule(id int64, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		s.logger.WithField("record_id", id).Debug("Scheduler is stopped, dropping task")
		return
	}

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		s.remove(id, timer)
		fn()
	})
	s.timers[id] = append(s.timers[id], timer)
}

// Cancel снимает все незавершенные переходы записи
func (s *Scheduler) Cancel(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, timer := range s.timers[id] {
		timer.Stop()
	}
	delete(s.timers, id)
}

// Stop останавливает планировщик и снимает все таймеры
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for id, timers := range s.timers {
		for _, timer := range timers {
			timer.Stop()
		}
		delete(s.timers, id)
	}
}

// Pending возвращает число записей с незавершенными переходами
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// remove убирает сработавший таймер из учета
func (s *Scheduler) remove(id int64, fired *time.Timer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := s.timers[id][:0]
	for _, timer := range s.timers[id] {
		if timer != fired {
			remaining = append(remaining, timer)
		}
	}
	if len(remaining) == 0 {
		delete(s.timers, id)
	} else {
		s.timers[id] = remaining
	}
}
