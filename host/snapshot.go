package host

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// ErrUnknownHost is returned for host names absent from the world.
var ErrUnknownHost = errors.New("host: unknown host")

// Snapshot is the YAML document a World is loaded from and saved to.
type Snapshot struct {
	Player  Player             `yaml:"player"`
	Scripts map[string]float64 `yaml:"scripts"`
	Servers []Server           `yaml:"servers"`
}

// Player is the state of the player character.
type Player struct {
	HackingLevel int      `yaml:"hacking_level"`
	Money        float64  `yaml:"money"`
	Programs     []string `yaml:"programs"`
	Purchased    []string `yaml:"purchased,omitempty"`
}

// Server is one host in the network.
type Server struct {
	Hostname      string     `yaml:"hostname"`
	Links         []string   `yaml:"links"`
	MaxRAM        float64    `yaml:"max_ram"`
	Root          bool       `yaml:"root"`
	RequiredLevel int        `yaml:"required_hacking_level"`
	PortsRequired int        `yaml:"ports_required"`
	OpenedPorts   []string   `yaml:"opened_ports,omitempty"`
	MaxMoney      float64    `yaml:"max_money"`
	Files         []string   `yaml:"files,omitempty"`
	Processes     []Process  `yaml:"processes,omitempty"`
	Contracts     []Contract `yaml:"contracts,omitempty"`
}

// Process is a running script instance.
type Process struct {
	Script  string   `yaml:"script"`
	Threads int      `yaml:"threads"`
	Args    []string `yaml:"args,omitempty"`
}

// Contract is a puzzle file together with its expected answer.
type Contract struct {
	File   string `yaml:"file"`
	Type   string `yaml:"type"`
	Data   any    `yaml:"data"`
	Answer any    `yaml:"answer"`
	Tries  int    `yaml:"tries"`
	Reward string `yaml:"reward"`
}

// Load reads a snapshot file and builds a World from it.
func Load(path string) (*World, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse builds a World from YAML bytes.
func Parse(b []byte) (*World, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(b, &snap); err != nil {
		return nil, fmt.Errorf("host: snapshot: %w", err)
	}
	return New(snap)
}

// Save writes the current state of w to path.
func (w *World) Save(path string) error {
	b, err := yaml.Marshal(w.Snapshot())
	if err != nil {
		return fmt.Errorf("host: snapshot: %w", err)
	}
	return writeFile(path, b)
}

// writeFile replaces path through a rename so that concurrent readers never
// see a partial snapshot.
func writeFile(path string, b []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("host: save: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("host: save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("host: save: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("host: save: %w", err)
	}
	return nil
}

// toJSON converts a YAML-decoded value to JSON. yaml.v3 decodes mappings as
// map[string]any, which encoding/json accepts directly.
func toJSON(v any) (json.RawMessage, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func readSnapshot(path string) (Snapshot, error) {
	var snap Snapshot
	b, err := os.ReadFile(path)
	if err != nil {
		return snap, err
	}
	if err := yaml.Unmarshal(b, &snap); err != nil {
		return snap, fmt.Errorf("host: snapshot: %w", err)
	}
	return snap, nil
}

// syncAccess copies access state from snap; the caller holds w.mu.
func (w *World) syncAccess(snap Snapshot) {
	w.player.HackingLevel = snap.Player.HackingLevel
	w.player.Programs = slices.Clone(snap.Player.Programs)
	for _, s := range snap.Servers {
		cur, ok := w.servers[s.Hostname]
		if !ok {
			continue
		}
		cur.Root = s.Root
		cur.OpenedPorts = slices.Clone(s.OpenedPorts)
	}
}

// SyncAccess copies access state from the snapshot at path into w: the
// player's programs and hacking level and each known server's root flag and
// opened ports. Processes and contracts are left alone, so a long-running
// miner can pick up hosts unlocked by another process.
func (w *World) SyncAccess(path string) error {
	snap, err := readSnapshot(path)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.syncAccess(snap)
	return nil
}

// SaveRuntime writes only what w owns at runtime, the processes and files of
// each server, into the snapshot at path and leaves the rest of that file as
// other processes last saved it. Access state read from the file is synced
// into w first.
func (w *World) SaveRuntime(path string) error {
	snap, err := readSnapshot(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	w.syncAccess(snap)
	for i := range snap.Servers {
		cur, ok := w.servers[snap.Servers[i].Hostname]
		if !ok {
			continue
		}
		c := cloneServer(*cur)
		snap.Servers[i].Files = c.Files
		snap.Servers[i].Processes = c.Processes
	}
	w.mu.Unlock()

	b, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("host: snapshot: %w", err)
	}
	return writeFile(path, b)
}
