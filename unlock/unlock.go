// Package unlock gains root access to hosts by running port-opening programs
// and then nuking the host once enough ports are open.
package unlock

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Programs are the port openers, weakest first.
var Programs = []string{
	"BruteSSH.exe",
	"FTPCrack.exe",
	"relaySMTP.exe",
	"HTTPWorm.exe",
	"SQLInject.exe",
}

// ErrTooManyPorts is returned when a host needs more ports than any program
// set can open.
var ErrTooManyPorts = errors.New("unlock: ports requirement too high")

// Host is the host surface unlocking needs.
type Host interface {
	HasRoot(ctx context.Context, host string) (bool, error)
	PortsRequired(ctx context.Context, host string) (int, error)
	HasProgram(ctx context.Context, program string) (bool, error)
	RunProgram(ctx context.Context, program, host string) error
	Nuke(ctx context.Context, host string) error
}

// Owned returns the port-opening programs available to the player, in
// Programs order.
func Owned(ctx context.Context, h Host) ([]string, error) {
	owned := []string{}
	for _, p := range Programs {
		ok, err := h.HasProgram(ctx, p)
		if err != nil {
			return nil, err
		}
		if ok {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

// Unlock tries to gain root access to host. It reports true when access is
// held afterwards. Owned programs run in order until the required number of
// ports is open; the host is nuked only when that number is reached.
func Unlock(ctx context.Context, h Host, host string) (bool, error) {
	root, err := h.HasRoot(ctx, host)
	if err != nil || root {
		return root, err
	}
	required, err := h.PortsRequired(ctx, host)
	if err != nil {
		return false, err
	}
	if required > len(Programs) {
		return false, fmt.Errorf("%w: %d for %q", ErrTooManyPorts, required, host)
	}
	owned, err := Owned(ctx, h)
	if err != nil {
		return false, err
	}
	if len(owned) < required {
		return false, nil
	}
	for _, p := range owned[:required] {
		if err := h.RunProgram(ctx, p, host); err != nil {
			return false, fmt.Errorf("unlock: %s on %q: %w", p, host, err)
		}
	}
	if err := h.Nuke(ctx, host); err != nil {
		return false, fmt.Errorf("unlock: nuke %q: %w", host, err)
	}
	return true, nil
}

// All unlocks every host and splits them by the outcome. Hosts that need too
// many ports are reported as locked rather than failing the batch.
func All(ctx context.Context, h Host, hosts []string) (unlocked, locked []string, err error) {
	unlocked, locked = []string{}, []string{}
	for _, host := range hosts {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		ok, uerr := Unlock(ctx, h, host)
		if uerr != nil && !errors.Is(uerr, ErrTooManyPorts) {
			return nil, nil, uerr
		}
		if ok {
			unlocked = append(unlocked, host)
		} else {
			locked = append(locked, host)
		}
	}
	return unlocked, locked, nil
}

// Checklist renders owned program count as "[X][X][ ][ ][ ]".
func Checklist(owned int) string {
	owned = max(0, min(owned, len(Programs)))
	return strings.Repeat("[X]", owned) + strings.Repeat("[ ]", len(Programs)-owned)
}
