// Package session keeps the idle/running state of the form independent of any widget toolkit.
package session

import (
	"errors"
	"sync"

	"github.com/eugenmik/bulk-image-resizer/batch"
	zlog "github.com/eugenmik/bulk-image-resizer/log"
)

// ErrBusy is returned by Submit while a task is running
var ErrBusy = errors.New("a conversion is already running")

// View is driven by a Session. Calls may come from the task goroutine.
type View interface {
	SetRunning(running bool)
	SetProgress(percent int)
	AppendLog(line string)
	ClearLog()
}

// Starter launches a task that reports to l and returns without waiting
type Starter func(cfg batch.Config, l batch.Listener)

// StartTask is the default Starter
func StartTask(cfg batch.Config, l batch.Listener) {
	batch.NewTask(cfg, l).Start()
}

// Session allows one task at a time: idle -> running -> idle
type Session struct {
	mu      sync.Mutex
	running bool
	view    View
	start   Starter
}

// NewSession ...
func NewSession(v View, start Starter) *Session {
	if start == nil {
		start = StartTask
	}
	return &Session{view: v, start: start}
}

// Running ...
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Submit validates the form and starts a task when it is valid.
// An invalid form leaves one error line in the log and nothing else changes.
func (s *Session) Submit(in batch.Input) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrBusy
	}
	cfg, err := batch.ParseInput(in)
	if err != nil {
		s.mu.Unlock()
		zlog.Debugw("form rejected", "err", err)
		s.view.AppendLog(batch.ErrorLine(err))
		return err
	}
	s.running = true
	s.mu.Unlock()

	s.view.SetRunning(true)
	s.view.SetProgress(0)
	s.view.ClearLog()
	s.start(cfg, &sessionListener{s: s})
	return nil
}

func (s *Session) finish() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
	s.view.SetRunning(false)
}

type sessionListener struct {
	s *Session
}

func (l *sessionListener) Progress(percent int) {
	l.s.view.SetProgress(percent)
}

func (l *sessionListener) Log(line string) {
	l.s.view.AppendLog(line)
}

func (l *sessionListener) Done() {
	l.s.finish()
}
