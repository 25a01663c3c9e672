package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Known file names inside the data directory.
const (
	LockedServersFile    = "lockedServers.txt"
	UnlockedServersFile  = "unlockedServers.txt"
	PurchasedServersFile = "purchasedServers.txt"
	AvailableServersFile = "availableServers.txt"
	MoneyReserveFile     = "moneyReserve.txt"
	MiningTargetFile     = "miningTarget.txt"
)

// Files lists every file the store manages.
var Files = []string{
	LockedServersFile,
	UnlockedServersFile,
	PurchasedServersFile,
	AvailableServersFile,
	MoneyReserveFile,
	MiningTargetFile,
}

var (
	// ErrUnknownFile is returned for names outside Files.
	ErrUnknownFile = errors.New("storage: unknown file")
	// ErrBadValue is returned when a single-value file cannot be parsed.
	ErrBadValue = errors.New("storage: bad value")
)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used by Watch.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Store reads and writes the data directory. Methods are safe for concurrent
// use within one process; across processes the last writer wins.
type Store struct {
	dir    string
	logger *zap.Logger
	mu     sync.Mutex
}

// Open returns a Store rooted at dir, creating the directory if needed.
func Open(dir string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	s := &Store{dir: dir, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Dir returns the data directory.
func (s *Store) Dir() string { return s.dir }

func known(name string) bool {
	for _, f := range Files {
		if f == name {
			return true
		}
	}
	return false
}

func (s *Store) read(name string) (string, error) {
	if !known(name) {
		return "", fmt.Errorf("%w: %q", ErrUnknownFile, name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("storage: read %s: %w", name, err)
	}
	return string(b), nil
}

// write replaces name through a temp file and rename so readers never see a
// partial file.
func (s *Store) write(name, content string) error {
	if !known(name) {
		return fmt.Errorf("%w: %q", ErrUnknownFile, name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, "."+name+".*")
	if err != nil {
		return fmt.Errorf("storage: write %s: %w", name, err)
	}
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: write %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: write %s: %w", name, err)
	}
	return nil
}

// List returns the hosts stored in name, skipping blank lines.
func (s *Store) List(name string) ([]string, error) {
	raw, err := s.read(name)
	if err != nil {
		return nil, err
	}
	out := []string{}
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out, nil
}

// SaveList replaces name with hosts, one per line.
func (s *Store) SaveList(name string, hosts []string) error {
	return s.write(name, strings.Join(hosts, "\n"))
}

// LockedServers returns hosts without root access.
func (s *Store) LockedServers() ([]string, error) { return s.List(LockedServersFile) }

// SaveLockedServers replaces the locked host list.
func (s *Store) SaveLockedServers(hosts []string) error {
	return s.SaveList(LockedServersFile, hosts)
}

// UnlockedServers returns hosts with root access.
func (s *Store) UnlockedServers() ([]string, error) { return s.List(UnlockedServersFile) }

// SaveUnlockedServers replaces the unlocked host list.
func (s *Store) SaveUnlockedServers(hosts []string) error {
	return s.SaveList(UnlockedServersFile, hosts)
}

// PurchasedServers returns hosts the player bought.
func (s *Store) PurchasedServers() ([]string, error) { return s.List(PurchasedServersFile) }

// SavePurchasedServers replaces the purchased host list.
func (s *Store) SavePurchasedServers(hosts []string) error {
	return s.SaveList(PurchasedServersFile, hosts)
}

// AvailableServers returns every host found on the network.
func (s *Store) AvailableServers() ([]string, error) { return s.List(AvailableServersFile) }

// SaveAvailableServers replaces the full host list.
func (s *Store) SaveAvailableServers(hosts []string) error {
	return s.SaveList(AvailableServersFile, hosts)
}

// MoneyReserve returns the amount of money kept aside; 0 when unset.
func (s *Store) MoneyReserve() (float64, error) {
	raw, err := s.read(MoneyReserveFile)
	if err != nil {
		return 0, err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q", ErrBadValue, MoneyReserveFile, raw)
	}
	return v, nil
}

// SaveMoneyReserve replaces the money reserve.
func (s *Store) SaveMoneyReserve(amount float64) error {
	return s.write(MoneyReserveFile, strconv.FormatFloat(amount, 'f', -1, 64))
}

// MiningTarget returns the saved mining target; empty when unset.
func (s *Store) MiningTarget() (string, error) {
	raw, err := s.read(MiningTargetFile)
	return strings.TrimSpace(raw), err
}

// SaveMiningTarget replaces the mining target.
func (s *Store) SaveMiningTarget(host string) error {
	return s.write(MiningTargetFile, host)
}

// Added returns the entries of cur absent from prev, in cur's order.
func Added(prev, cur []string) []string {
	seen := make(map[string]struct{}, len(prev))
	for _, h := range prev {
		seen[h] = struct{}{}
	}
	out := []string{}
	for _, h := range cur {
		if _, ok := seen[h]; !ok {
			out = append(out, h)
		}
	}
	return out
}
