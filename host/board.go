package host

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"sort"

	"github.com/katalvlaran/bitrunner/contracts"
)

// defaultReward is reported when a contract has no reward text.
const defaultReward = "contract completed"

// Contracts lists every contract on the network in server order.
func (w *World) Contracts(context.Context) ([]contracts.Instance, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := []contracts.Instance{}
	for _, name := range w.order {
		for _, c := range w.servers[name].Contracts {
			data, err := toJSON(c.Data)
			if err != nil {
				return nil, fmt.Errorf("host: contract %s on %q: %w", c.File, name, err)
			}
			out = append(out, contracts.Instance{Host: name, File: c.File, Type: c.Type, Data: data})
		}
	}
	return out, nil
}

// contract finds a contract; the caller holds w.mu.
func (w *World) contract(inst contracts.Instance) (*Server, int, error) {
	s, err := w.server(inst.Host)
	if err != nil {
		return nil, 0, err
	}
	for i := range s.Contracts {
		if s.Contracts[i].File == inst.File {
			return s, i, nil
		}
	}
	return nil, 0, fmt.Errorf("%w: %s on %q", ErrUnknownContract, inst.File, inst.Host)
}

// Attempt checks answer against the contract's expected answer. A correct
// answer removes the contract and returns its reward. A wrong one costs a
// try and returns an empty reward; the contract disappears at zero tries.
func (w *World) Attempt(_ context.Context, inst contracts.Instance, answer any) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, i, err := w.contract(inst)
	if err != nil {
		return "", err
	}
	c := s.Contracts[i]
	ok, err := sameAnswer(c.Answer, answer)
	if err != nil {
		return "", err
	}
	if ok {
		s.Contracts = slices.Delete(s.Contracts, i, i+1)
		if c.Reward == "" {
			return defaultReward, nil
		}
		return c.Reward, nil
	}
	s.Contracts[i].Tries--
	if s.Contracts[i].Tries <= 0 {
		s.Contracts = slices.Delete(s.Contracts, i, i+1)
	}
	return "", nil
}

// TriesRemaining returns the attempts left; 0 once the contract is gone.
func (w *World) TriesRemaining(_ context.Context, inst contracts.Instance) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, i, err := w.contract(inst)
	if err != nil {
		return 0, nil
	}
	return s.Contracts[i].Tries, nil
}

// sameAnswer compares answers by their JSON value. Lists of strings are
// compared as sets since several puzzles accept any order.
func sameAnswer(want, got any) (bool, error) {
	w, err := normalize(want)
	if err != nil {
		return false, err
	}
	g, err := normalize(got)
	if err != nil {
		return false, err
	}
	if ws, ok := stringSet(w); ok {
		if gs, ok := stringSet(g); ok {
			return slices.Equal(ws, gs), nil
		}
	}
	return reflect.DeepEqual(w, g), nil
}

func normalize(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("host: answer: %w", err)
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("host: answer: %w", err)
	}
	return out, nil
}

// stringSet returns the sorted distinct strings of a []any holding only
// strings.
func stringSet(v any) ([]string, bool) {
	list, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(list))
	for _, e := range list {
		s, ok := e.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	sort.Strings(out)
	return slices.Compact(out), true
}
