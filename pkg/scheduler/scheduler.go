package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/akulikov/careerhub/pkg/insight"
	"github.com/akulikov/careerhub/pkg/logger"
)

// Sweeper выполняет один проход фонового обновления аналитики.
type Sweeper interface {
	Sweep(ctx context.Context) insight.SweepResult
}

// Config задаёт расписание еженедельного запуска.
type Config struct {
	Weekday time.Weekday
	Hour    int
	Minute  int
	// CheckInterval is how often the loop compares now against the next run.
	CheckInterval time.Duration
	// DebugInterval, when positive, replaces the weekly schedule with a fixed
	// interval. Local development only.
	DebugInterval time.Duration
}

// Scheduler — тикерный планировщик с одной задачей: еженедельный проход
// обновления устаревшей аналитики. Повторный тик во время работающего
// прохода пропускается.
type Scheduler struct {
	cfg     Config
	sweeper Sweeper

	mu      sync.Mutex
	running bool
	lastRun time.Time
	nextRun time.Time

	stop chan struct{}
	done chan struct{}
}

func New(cfg Config, sweeper Sweeper) *Scheduler {
	if cfg.Hour < 0 || cfg.Hour > 23 {
		logger.Warn("invalid sweep hour, falling back to 0", "hour", cfg.Hour)
		cfg.Hour = 0
	}
	if cfg.Minute < 0 || cfg.Minute > 59 {
		logger.Warn("invalid sweep minute, falling back to 0", "minute", cfg.Minute)
		cfg.Minute = 0
	}
	if cfg.CheckInterval <= 0 {
		cfg.CheckInterval = time.Minute
	}
	return &Scheduler{
		cfg:     cfg,
		sweeper: sweeper,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start запускает главный цикл в отдельной горутине.
func (s *Scheduler) Start() {
	now := time.Now()
	s.mu.Lock()
	s.nextRun = s.computeNextRun(now)
	next := s.nextRun
	s.mu.Unlock()

	go s.run()

	if s.cfg.DebugInterval > 0 {
		logger.Info("scheduler started in debug interval mode",
			"interval", s.cfg.DebugInterval.String())
		return
	}
	logger.Info("scheduler started",
		"weekday", s.cfg.Weekday.String(),
		"time", fmt.Sprintf("%02d:%02d", s.cfg.Hour, s.cfg.Minute),
		"next_run", next.Format(time.RFC3339))
}

// Stop останавливает цикл и дожидается его завершения. Уже запущенный
// проход не прерывается.
func (s *Scheduler) Stop() {
	close(s.stop)
	<-s.done
	logger.Info("scheduler stopped")
}

// NextRun возвращает момент следующего запланированного запуска.
func (s *Scheduler) NextRun() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextRun
}

func (s *Scheduler) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.cfg.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.check(now)
		}
	}
}

func (s *Scheduler) check(now time.Time) {
	s.mu.Lock()
	if s.running || now.Before(s.nextRun) {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	go s.runSweep(now)
}

func (s *Scheduler) runSweep(now time.Time) {
	defer func() {
		s.mu.Lock()
		s.running = false
		s.lastRun = now
		s.nextRun = s.computeNextRun(time.Now())
		next := s.nextRun
		s.mu.Unlock()
		logger.Info("sweep finished", "next_run", next.Format(time.RFC3339))
	}()

	logger.Info("starting scheduled insights sweep")
	res := s.sweeper.Sweep(context.Background())
	logger.Info("scheduled insights sweep completed",
		"status", string(res.Status), "updated", res.Updated, "total", res.Total)
}

// computeNextRun возвращает ближайший момент запуска строго после now.
func (s *Scheduler) computeNextRun(now time.Time) time.Time {
	if s.cfg.DebugInterval > 0 {
		return now.Add(s.cfg.DebugInterval)
	}
	return NextWeeklyRun(now, s.cfg.Weekday, s.cfg.Hour, s.cfg.Minute)
}

// NextWeeklyRun computes the next occurrence of weekday at hour:minute in
// now's location. A point earlier today or right now rolls over a week.
func NextWeeklyRun(now time.Time, weekday time.Weekday, hour, minute int) time.Time {
	days := (int(weekday) - int(now.Weekday()) + 7) % 7
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	next = next.AddDate(0, 0, days)
	if !next.After(now) {
		next = next.AddDate(0, 0, 7)
	}
	return next
}
