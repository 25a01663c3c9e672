package mining

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	// ErrConsumerActive is returned when Run is called while another Run is
	// consuming the same queue.
	ErrConsumerActive = errors.New("mining: queue already has a consumer")
	// ErrInvalidSession is returned for a Session missing its target or script.
	ErrInvalidSession = errors.New("mining: invalid session")
)

// Host is the host surface the manager drives.
type Host interface {
	MaxRAM(ctx context.Context, host string) (float64, error)
	UsedRAM(ctx context.Context, host string) (float64, error)
	IsRunning(ctx context.Context, script, host string, args ...string) (bool, error)
	KillAll(ctx context.Context, host string) error
	Kill(ctx context.Context, script, host string) error
	Copy(ctx context.Context, script, host string) error
	Exec(ctx context.Context, script, host string, threads int, args ...string) error
}

// Session carries everything one mining run needs.
type Session struct {
	// Target is the host the miner attacks; passed as the script argument.
	Target string
	// Script is the miner file deployed to each server.
	Script string
	// ScriptRAM is the RAM one thread of Script needs, in GB.
	ScriptRAM float64
	// Root is the player's own host. Other scripts run there, so only the
	// miner is killed and HomeReserve GB stay free.
	Root        string
	HomeReserve float64
}

func (s Session) validate() error {
	switch {
	case s.Target == "":
		return fmt.Errorf("%w: no target", ErrInvalidSession)
	case s.Script == "":
		return fmt.Errorf("%w: no script", ErrInvalidSession)
	case s.ScriptRAM <= 0:
		return fmt.Errorf("%w: script RAM must be positive", ErrInvalidSession)
	}
	return nil
}

// reserve returns the RAM kept free on host.
func (s Session) reserve(host string) float64 {
	if host == s.Root {
		return s.HomeReserve
	}
	return 0
}

// Threads returns how many threads of a scriptRAM-sized script fit in free GB.
func Threads(free, scriptRAM float64) int {
	if scriptRAM <= 0 || free <= 0 {
		return 0
	}
	return int(math.Floor(free / scriptRAM))
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the manager's logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// Manager deploys the miner and reacts to queue notifications.
type Manager struct {
	host    Host
	queue   *Queue
	logger  *zap.Logger
	running atomic.Bool
}

// NewManager binds a host and a queue.
func NewManager(h Host, q *Queue, opts ...Option) *Manager {
	m := &Manager{host: h, queue: q, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Report counts what Start did.
type Report struct {
	Deployed int
	Optimal  int
	Skipped  int
}

// Start deploys to every server that has RAM and is not already mining the
// session target at full capacity. Per-server failures are logged and counted
// as skipped.
func (m *Manager) Start(ctx context.Context, s Session, servers []string) (Report, error) {
	var rep Report
	if err := s.validate(); err != nil {
		return rep, err
	}
	for _, server := range servers {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		deployed, err := m.Ensure(ctx, s, server)
		switch {
		case err != nil:
			m.logger.Warn("deploy failed", zap.String("server", server), zap.Error(err))
			rep.Skipped++
		case deployed > 0:
			rep.Deployed++
		case deployed == 0:
			rep.Optimal++
		default:
			rep.Skipped++
		}
	}
	m.logger.Info("mining started",
		zap.String("target", s.Target),
		zap.Int("deployed", rep.Deployed),
		zap.Int("optimal", rep.Optimal),
		zap.Int("skipped", rep.Skipped))
	return rep, nil
}

// Run consumes the queue until ctx is done, calling Ensure for each host.
// It returns ctx.Err(), or ErrConsumerActive if another Run is active.
func (m *Manager) Run(ctx context.Context, s Session) error {
	if err := s.validate(); err != nil {
		return err
	}
	if !m.running.CompareAndSwap(false, true) {
		return ErrConsumerActive
	}
	defer m.running.Store(false)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case server := <-m.queue.ch:
			threads, err := m.Ensure(ctx, s, server)
			if err != nil {
				m.logger.Warn("redeploy failed", zap.String("server", server), zap.Error(err))
				continue
			}
			m.logger.Debug("notification handled", zap.String("server", server), zap.Int("threads", threads))
		}
	}
}

// Ensure deploys to server unless it has no RAM or is already optimal.
// It returns the threads started, 0 when nothing had to change, or -1 when
// the server cannot run the miner at all.
func (m *Manager) Ensure(ctx context.Context, s Session, server string) (int, error) {
	maxRAM, err := m.host.MaxRAM(ctx, server)
	if err != nil {
		return -1, err
	}
	if maxRAM-s.reserve(server) < s.ScriptRAM {
		return -1, nil
	}
	optimal, err := m.Optimal(ctx, s, server)
	if err != nil {
		return -1, err
	}
	if optimal {
		return 0, nil
	}
	threads, err := m.Deploy(ctx, s, server)
	if err != nil {
		return -1, err
	}
	if threads == 0 {
		return -1, nil
	}
	return threads, nil
}

// Optimal reports whether server already runs the miner against the session
// target and has no room for another thread.
func (m *Manager) Optimal(ctx context.Context, s Session, server string) (bool, error) {
	running, err := m.host.IsRunning(ctx, s.Script, server, s.Target)
	if err != nil || !running {
		return false, err
	}
	free, err := m.free(ctx, s, server)
	if err != nil {
		return false, err
	}
	return free < s.ScriptRAM, nil
}

// Deploy stops whatever runs on server, copies the miner and starts it with
// as many threads as fit. On the root host only the miner is stopped.
func (m *Manager) Deploy(ctx context.Context, s Session, server string) (int, error) {
	var err error
	if server == s.Root {
		err = m.host.Kill(ctx, s.Script, server)
	} else {
		err = m.host.KillAll(ctx, server)
	}
	if err != nil {
		return 0, fmt.Errorf("mining: stop on %q: %w", server, err)
	}
	if err := m.host.Copy(ctx, s.Script, server); err != nil {
		return 0, fmt.Errorf("mining: copy to %q: %w", server, err)
	}
	free, err := m.free(ctx, s, server)
	if err != nil {
		return 0, err
	}
	threads := Threads(free, s.ScriptRAM)
	if threads == 0 {
		return 0, nil
	}
	if err := m.host.Exec(ctx, s.Script, server, threads, s.Target); err != nil {
		return 0, fmt.Errorf("mining: exec on %q: %w", server, err)
	}
	m.logger.Info("miner deployed",
		zap.String("server", server),
		zap.String("target", s.Target),
		zap.Int("threads", threads))
	return threads, nil
}

func (m *Manager) free(ctx context.Context, s Session, server string) (float64, error) {
	maxRAM, err := m.host.MaxRAM(ctx, server)
	if err != nil {
		return 0, err
	}
	used, err := m.host.UsedRAM(ctx, server)
	if err != nil {
		return 0, err
	}
	return maxRAM - used - s.reserve(server), nil
}
