package contracts_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/katalvlaran/bitrunner/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// fakeBoard accepts answers listed in correct and counts submissions per file.
type fakeBoard struct {
	instances []contracts.Instance
	correct   map[string]string // file -> formatted answer
	tries     map[string]int
	attempts  map[string]int
	listErr   error
	onAttempt func()
}

func newFakeBoard(instances ...contracts.Instance) *fakeBoard {
	return &fakeBoard{
		instances: instances,
		correct:   map[string]string{},
		tries:     map[string]int{},
		attempts:  map[string]int{},
	}
}

func (b *fakeBoard) Contracts(context.Context) ([]contracts.Instance, error) {
	return b.instances, b.listErr
}

func (b *fakeBoard) Attempt(_ context.Context, inst contracts.Instance, answer any) (string, error) {
	b.attempts[inst.File]++
	if b.onAttempt != nil {
		b.onAttempt()
	}
	b.tries[inst.File]--
	if want, ok := b.correct[inst.File]; ok && want == contracts.FormatAnswer(answer) {
		return "Gained $1.000m", nil
	}
	return "", nil
}

func (b *fakeBoard) TriesRemaining(_ context.Context, inst contracts.Instance) (int, error) {
	return b.tries[inst.File], nil
}

type memRecorder struct {
	outcomes []contracts.Outcome
	err      error
}

func (m *memRecorder) Record(_ context.Context, o contracts.Outcome) error {
	m.outcomes = append(m.outcomes, o)
	return m.err
}

func inst(host, file, typ, data string) contracts.Instance {
	return contracts.Instance{Host: host, File: file, Type: typ, Data: json.RawMessage(data)}
}

func TestRunner_Reports(t *testing.T) {
	c := newCatalog(t)
	board := newFakeBoard(
		inst("foodnstuff", "c1.cct", contracts.TypeSubarrayMaxSum, `[1,-2,3]`),
		inst("n00dles", "c2.cct", "Mystery Puzzle", `null`),
		inst("sigma-cosmetics", "c3.cct", contracts.TypeMergeIntervals, `[[1,3],[2,6]]`),
		inst("joesguns", "c4.cct", contracts.TypeCaesarCipher, `["ABC"]`),
	)
	board.correct["c1.cct"] = "3"
	board.tries["c3.cct"] = 5
	rec := &memRecorder{}

	r := contracts.NewRunner(c, board, contracts.WithLogger(zaptest.NewLogger(t)), contracts.WithRecorder(rec))
	outcomes, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, outcomes, 4)

	assert.Equal(t, contracts.StatusSolved, outcomes[0].Status)
	assert.Equal(t, "Success: Gained $1.000m", outcomes[0].String())

	assert.Equal(t, contracts.StatusNoSolver, outcomes[1].Status)
	assert.Equal(t, "No solution for 'c2.cct' on [n00dles] server.", outcomes[1].String())

	assert.Equal(t, contracts.StatusFailed, outcomes[2].Status)
	assert.Equal(t, "Failed 'c3.cct' on [sigma-cosmetics] with '[[1,6]]' answer. Remaining attempts: 4", outcomes[2].String())

	assert.Equal(t, contracts.StatusInvalid, outcomes[3].Status)
	assert.ErrorIs(t, outcomes[3].Err, contracts.ErrBadPayload)
	assert.Contains(t, outcomes[3].String(), "Invalid data for 'c4.cct' on [joesguns]: ")

	// One submission per solvable instance, none for the rest.
	assert.Equal(t, map[string]int{"c1.cct": 1, "c3.cct": 1}, board.attempts)
	assert.Len(t, rec.outcomes, 4)
}

func TestRunner_RecorderErrorDoesNotAbort(t *testing.T) {
	board := newFakeBoard(
		inst("home", "a.cct", contracts.TypeTotalWaysToSum, `5`),
		inst("home", "b.cct", contracts.TypeTotalWaysToSum, `4`),
	)
	rec := &memRecorder{err: errors.New("disk full")}
	outcomes, err := contracts.NewRunner(newCatalog(t), board, contracts.WithRecorder(rec)).Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, outcomes, 2)
	assert.Len(t, rec.outcomes, 2)
}

func TestRunner_ListingError(t *testing.T) {
	board := newFakeBoard()
	board.listErr = errors.New("scan failed")
	outcomes, err := contracts.NewRunner(newCatalog(t), board).Run(context.Background())
	assert.Nil(t, outcomes)
	assert.ErrorIs(t, err, board.listErr)
}

func TestRunner_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	board := newFakeBoard(
		inst("home", "a.cct", contracts.TypeTotalWaysToSum, `5`),
		inst("home", "b.cct", contracts.TypeTotalWaysToSum, `4`),
	)
	board.onAttempt = cancel

	outcomes, err := contracts.NewRunner(newCatalog(t), board).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, outcomes, 1)
	assert.Equal(t, 1, board.attempts["a.cct"])
	assert.Zero(t, board.attempts["b.cct"])
}

func TestFormatAnswer(t *testing.T) {
	assert.Equal(t, "DR", contracts.FormatAnswer("DR"))
	assert.Equal(t, "", contracts.FormatAnswer(""))
	assert.Equal(t, "42", contracts.FormatAnswer(42))
	assert.Equal(t, `["1.2.3.4"]`, contracts.FormatAnswer([]string{"1.2.3.4"}))
	assert.Equal(t, "[]", contracts.FormatAnswer([]int{}))
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "solved", contracts.StatusSolved.String())
	assert.Equal(t, "no-solver", contracts.StatusNoSolver.String())
	assert.Equal(t, "Status(9)", contracts.Status(9).String())
}
