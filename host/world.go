package host

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrNoProgram is returned when the player does not own a program.
	ErrNoProgram = errors.New("host: program not owned")
	// ErrPortsClosed is returned by Nuke when too few ports are open.
	ErrPortsClosed = errors.New("host: not enough open ports")
	// ErrNoRoot is returned for actions that need root access.
	ErrNoRoot = errors.New("host: root access required")
	// ErrUnknownScript is returned for scripts without a known RAM cost.
	ErrUnknownScript = errors.New("host: unknown script")
	// ErrInsufficientRAM is returned by Exec when the threads do not fit.
	ErrInsufficientRAM = errors.New("host: insufficient RAM")
	// ErrUnknownContract is returned for contract files that do not exist.
	ErrUnknownContract = errors.New("host: unknown contract")
)

// World is a goroutine-safe in-memory game network.
type World struct {
	mu      sync.Mutex
	player  Player
	scripts map[string]float64
	order   []string
	servers map[string]*Server
}

// New validates snap and builds a World from a deep copy of it. Links are
// made symmetric; a link to an unknown host is an error.
func New(snap Snapshot) (*World, error) {
	w := &World{
		player:  clonePlayer(snap.Player),
		scripts: make(map[string]float64, len(snap.Scripts)),
		servers: make(map[string]*Server, len(snap.Servers)),
	}
	for name, ram := range snap.Scripts {
		w.scripts[name] = ram
	}
	for _, s := range snap.Servers {
		if s.Hostname == "" {
			return nil, fmt.Errorf("host: server without hostname")
		}
		if _, dup := w.servers[s.Hostname]; dup {
			return nil, fmt.Errorf("host: duplicate server %q", s.Hostname)
		}
		c := cloneServer(s)
		w.servers[s.Hostname] = &c
		w.order = append(w.order, s.Hostname)
	}
	for _, name := range w.order {
		s := w.servers[name]
		for _, l := range s.Links {
			peer, ok := w.servers[l]
			if !ok {
				return nil, fmt.Errorf("%w: %q linked from %q", ErrUnknownHost, l, name)
			}
			if !slices.Contains(peer.Links, name) {
				peer.Links = append(peer.Links, name)
			}
		}
		for _, c := range s.Contracts {
			if _, err := toJSON(c.Data); err != nil {
				return nil, fmt.Errorf("host: contract %s on %q: %w", c.File, name, err)
			}
		}
	}
	return w, nil
}

// Snapshot returns a deep copy of the current state.
func (w *World) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	snap := Snapshot{
		Player:  clonePlayer(w.player),
		Scripts: make(map[string]float64, len(w.scripts)),
		Servers: make([]Server, 0, len(w.order)),
	}
	for k, v := range w.scripts {
		snap.Scripts[k] = v
	}
	for _, name := range w.order {
		snap.Servers = append(snap.Servers, cloneServer(*w.servers[name]))
	}
	return snap
}

func clonePlayer(p Player) Player {
	p.Programs = slices.Clone(p.Programs)
	p.Purchased = slices.Clone(p.Purchased)
	return p
}

func cloneServer(s Server) Server {
	s.Links = slices.Clone(s.Links)
	s.Files = slices.Clone(s.Files)
	s.OpenedPorts = slices.Clone(s.OpenedPorts)
	procs := make([]Process, len(s.Processes))
	for i, p := range s.Processes {
		p.Args = slices.Clone(p.Args)
		procs[i] = p
	}
	s.Processes = procs
	s.Contracts = slices.Clone(s.Contracts)
	return s
}

// server returns the named server; the caller holds w.mu.
func (w *World) server(name string) (*Server, error) {
	s, ok := w.servers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHost, name)
	}
	return s, nil
}

// Exists reports whether host is part of the world.
func (w *World) Exists(host string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.servers[host]
	return ok
}

// Scan lists the hosts linked to host.
func (w *World) Scan(_ context.Context, host string) ([]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, err := w.server(host)
	if err != nil {
		return nil, err
	}
	return slices.Clone(s.Links), nil
}

// PurchasedServers lists the servers the player bought.
func (w *World) PurchasedServers(context.Context) ([]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.player.Purchased), nil
}

// ListFiles returns the files on host whose name contains substr, sorted.
// Contract files are included.
func (w *World) ListFiles(_ context.Context, host, substr string) ([]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, err := w.server(host)
	if err != nil {
		return nil, err
	}
	out := []string{}
	for _, f := range s.Files {
		if strings.Contains(f, substr) {
			out = append(out, f)
		}
	}
	for _, c := range s.Contracts {
		if strings.Contains(c.File, substr) {
			out = append(out, c.File)
		}
	}
	sort.Strings(out)
	return out, nil
}

// HasRoot reports whether the player has root access to host.
func (w *World) HasRoot(_ context.Context, host string) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, err := w.server(host)
	if err != nil {
		return false, err
	}
	return s.Root, nil
}

// PortsRequired returns how many ports must be open before Nuke succeeds.
func (w *World) PortsRequired(_ context.Context, host string) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, err := w.server(host)
	if err != nil {
		return 0, err
	}
	return s.PortsRequired, nil
}

// HasProgram reports whether the player owns program.
func (w *World) HasProgram(_ context.Context, program string) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Contains(w.player.Programs, program), nil
}

// RunProgram runs an owned port opener against host.
func (w *World) RunProgram(_ context.Context, program, host string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !slices.Contains(w.player.Programs, program) {
		return fmt.Errorf("%w: %s", ErrNoProgram, program)
	}
	s, err := w.server(host)
	if err != nil {
		return err
	}
	if !slices.Contains(s.OpenedPorts, program) {
		s.OpenedPorts = append(s.OpenedPorts, program)
	}
	return nil
}

// Nuke grants root access once enough ports are open.
func (w *World) Nuke(_ context.Context, host string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, err := w.server(host)
	if err != nil {
		return err
	}
	if len(s.OpenedPorts) < s.PortsRequired {
		return fmt.Errorf("%w: %q has %d of %d", ErrPortsClosed, host, len(s.OpenedPorts), s.PortsRequired)
	}
	s.Root = true
	return nil
}

// HackingLevel returns the player's hacking level.
func (w *World) HackingLevel(context.Context) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.player.HackingLevel, nil
}

// Money returns the cash the player holds.
func (w *World) Money(context.Context) (float64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.player.Money, nil
}

// RequiredHackingLevel returns the level needed to hack host.
func (w *World) RequiredHackingLevel(_ context.Context, host string) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, err := w.server(host)
	if err != nil {
		return 0, err
	}
	return s.RequiredLevel, nil
}

// MaxMoney returns the most money host can hold.
func (w *World) MaxMoney(_ context.Context, host string) (float64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, err := w.server(host)
	if err != nil {
		return 0, err
	}
	return s.MaxMoney, nil
}
