package host

import (
	"context"
	"fmt"
	"slices"
)

// ScriptRAM returns the per-thread RAM cost of script.
func (w *World) ScriptRAM(_ context.Context, script string) (float64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	ram, ok := w.scripts[script]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownScript, script)
	}
	return ram, nil
}

// MaxRAM returns host's installed RAM in GB.
func (w *World) MaxRAM(_ context.Context, host string) (float64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, err := w.server(host)
	if err != nil {
		return 0, err
	}
	return s.MaxRAM, nil
}

// UsedRAM returns the RAM held by running processes on host.
func (w *World) UsedRAM(_ context.Context, host string) (float64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, err := w.server(host)
	if err != nil {
		return 0, err
	}
	return w.usedRAM(s), nil
}

func (w *World) usedRAM(s *Server) float64 {
	used := 0.0
	for _, p := range s.Processes {
		used += w.scripts[p.Script] * float64(p.Threads)
	}
	return used
}

// IsRunning reports whether script runs on host. With args, the process
// arguments must match exactly.
func (w *World) IsRunning(_ context.Context, script, host string, args ...string) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, err := w.server(host)
	if err != nil {
		return false, err
	}
	for _, p := range s.Processes {
		if p.Script == script && (len(args) == 0 || slices.Equal(p.Args, args)) {
			return true, nil
		}
	}
	return false, nil
}

// KillAll stops every process on host.
func (w *World) KillAll(_ context.Context, host string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, err := w.server(host)
	if err != nil {
		return err
	}
	s.Processes = nil
	return nil
}

// Kill stops every instance of script on host.
func (w *World) Kill(_ context.Context, script, host string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, err := w.server(host)
	if err != nil {
		return err
	}
	s.Processes = slices.DeleteFunc(s.Processes, func(p Process) bool { return p.Script == script })
	return nil
}

// Copy places script on host.
func (w *World) Copy(_ context.Context, script, host string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.scripts[script]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownScript, script)
	}
	s, err := w.server(host)
	if err != nil {
		return err
	}
	if !slices.Contains(s.Files, script) {
		s.Files = append(s.Files, script)
	}
	return nil
}

// Exec starts script on host with the given threads and arguments. The host
// must be rooted, hold a copy of the script and have the RAM free.
func (w *World) Exec(_ context.Context, script, host string, threads int, args ...string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, err := w.server(host)
	if err != nil {
		return err
	}
	ram, ok := w.scripts[script]
	switch {
	case !ok:
		return fmt.Errorf("%w: %s", ErrUnknownScript, script)
	case !s.Root:
		return fmt.Errorf("%w: %q", ErrNoRoot, host)
	case !slices.Contains(s.Files, script):
		return fmt.Errorf("host: %s not present on %q", script, host)
	case threads < 1:
		return fmt.Errorf("host: invalid thread count %d", threads)
	}
	if need, free := ram*float64(threads), s.MaxRAM-w.usedRAM(s); need > free {
		return fmt.Errorf("%w: %q needs %.2f GB, has %.2f GB", ErrInsufficientRAM, host, need, free)
	}
	s.Processes = append(s.Processes, Process{Script: script, Threads: threads, Args: slices.Clone(args)})
	return nil
}
