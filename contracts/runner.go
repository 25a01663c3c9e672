package contracts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Board is the host surface the Runner needs: discover contracts, submit one
// answer, and read the remaining attempt budget after a failure.
type Board interface {
	Contracts(ctx context.Context) ([]Instance, error)
	// Attempt submits answer and returns the reward text; an empty reward
	// with a nil error means the answer was rejected.
	Attempt(ctx context.Context, inst Instance, answer any) (string, error)
	TriesRemaining(ctx context.Context, inst Instance) (int, error)
}

// Recorder persists attempt outcomes.
type Recorder interface {
	Record(ctx context.Context, o Outcome) error
}

// Status classifies what happened to one instance.
type Status int

const (
	// StatusSolved means the host accepted the answer.
	StatusSolved Status = iota
	// StatusFailed means the host rejected the answer or the attempt errored.
	StatusFailed
	// StatusNoSolver means no attempt was made because the type is unknown.
	StatusNoSolver
	// StatusInvalid means no attempt was made because the payload was rejected.
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusFailed:
		return "failed"
	case StatusNoSolver:
		return "no-solver"
	case StatusInvalid:
		return "invalid"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Outcome is the result of processing a single instance.
type Outcome struct {
	Instance  Instance
	Status    Status
	Answer    any
	Reward    string
	Remaining int
	Err       error
}

// FormatAnswer renders an answer the way it is reported: strings verbatim,
// everything else as compact JSON.
func FormatAnswer(answer any) string {
	if s, ok := answer.(string); ok {
		return s
	}
	b, err := json.Marshal(answer)
	if err != nil {
		return fmt.Sprint(answer)
	}
	return string(b)
}

// String returns the one-line report for the outcome.
func (o Outcome) String() string {
	in := o.Instance
	switch o.Status {
	case StatusSolved:
		return fmt.Sprintf("Success: %s", o.Reward)
	case StatusNoSolver:
		return fmt.Sprintf("No solution for '%s' on [%s] server.", in.File, in.Host)
	case StatusInvalid:
		return fmt.Sprintf("Invalid data for '%s' on [%s]: %v", in.File, in.Host, o.Err)
	default:
		return fmt.Sprintf("Failed '%s' on [%s] with '%s' answer. Remaining attempts: %d",
			in.File, in.Host, FormatAnswer(o.Answer), o.Remaining)
	}
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithRecorder stores every outcome through rec.
func WithRecorder(rec Recorder) RunnerOption {
	return func(r *Runner) { r.recorder = rec }
}

// Runner attempts every contract on a Board exactly once.
type Runner struct {
	catalog  *Catalog
	board    Board
	logger   *zap.Logger
	recorder Recorder
}

// NewRunner binds a catalog to a board.
func NewRunner(c *Catalog, b Board, opts ...RunnerOption) *Runner {
	r := &Runner{catalog: c, board: b, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run processes every discovered instance in discovery order. Failures are
// reported, never retried, since each attempt consumes the instance's budget.
// Only a failure to list contracts or a cancelled context aborts the run.
func (r *Runner) Run(ctx context.Context) ([]Outcome, error) {
	instances, err := r.board.Contracts(ctx)
	if err != nil {
		return nil, fmt.Errorf("contracts: listing: %w", err)
	}
	r.logger.Debug("contracts found", zap.Int("count", len(instances)))

	outcomes := make([]Outcome, 0, len(instances))
	for _, inst := range instances {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		o := r.process(ctx, inst)
		if r.recorder != nil {
			if err := r.recorder.Record(ctx, o); err != nil {
				r.logger.Warn("recording outcome failed", zap.String("file", inst.File), zap.Error(err))
			}
		}
		outcomes = append(outcomes, o)
	}

	return outcomes, nil
}

func (r *Runner) process(ctx context.Context, inst Instance) Outcome {
	o := Outcome{Instance: inst}
	log := r.logger.With(zap.String("host", inst.Host), zap.String("file", inst.File), zap.String("type", inst.Type))

	answer, err := r.catalog.Solve(inst.Type, inst.Data)
	switch {
	case errors.Is(err, ErrNoSolver):
		o.Status = StatusNoSolver
		log.Info("no solver")
		return o
	case err != nil:
		o.Status, o.Err = StatusInvalid, err
		log.Warn("payload rejected", zap.Error(err))
		return o
	}
	o.Answer = answer

	reward, err := r.board.Attempt(ctx, inst, answer)
	if err == nil && reward != "" {
		o.Status, o.Reward = StatusSolved, reward
		log.Info("contract solved", zap.String("reward", reward))
		return o
	}

	o.Status, o.Err = StatusFailed, err
	if remaining, terr := r.board.TriesRemaining(ctx, inst); terr == nil {
		o.Remaining = remaining
	}
	log.Warn("contract attempt failed", zap.String("answer", FormatAnswer(answer)), zap.Int("remaining", o.Remaining), zap.Error(err))

	return o
}
