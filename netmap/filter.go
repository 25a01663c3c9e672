package netmap

import "context"

// RootChecker reports whether root access to host has been obtained.
type RootChecker interface {
	HasRoot(ctx context.Context, host string) (bool, error)
}

// Partition splits hosts into unlocked (root access) and locked, keeping the
// input order in both.
func Partition(ctx context.Context, rc RootChecker, hosts []string) (unlocked, locked []string, err error) {
	unlocked, locked = []string{}, []string{}
	for _, h := range hosts {
		if err = ctx.Err(); err != nil {
			return nil, nil, err
		}
		root, rerr := rc.HasRoot(ctx, h)
		if rerr != nil {
			return nil, nil, rerr
		}
		if root {
			unlocked = append(unlocked, h)
		} else {
			locked = append(locked, h)
		}
	}

	return unlocked, locked, nil
}

// Without returns hosts minus every name in drop, preserving order.
func Without(hosts []string, drop ...string) []string {
	skip := make(map[string]struct{}, len(drop))
	for _, d := range drop {
		skip[d] = struct{}{}
	}
	out := make([]string, 0, len(hosts))
	for _, h := range hosts {
		if _, ok := skip[h]; !ok {
			out = append(out, h)
		}
	}

	return out
}
