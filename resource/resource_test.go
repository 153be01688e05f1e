package resource

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type result struct {
	data string
	err  error
}

type call struct {
	key   string
	ctx   context.Context
	reply chan result
}

// fakeFetcher hands every call to the test, which decides when and how it
// completes.
type fakeFetcher struct {
	calls        chan call
	ignoreCancel bool
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{calls: make(chan call, 8)}
}

func (f *fakeFetcher) fetch(ctx context.Context, key string) (string, error) {
	c := call{key: key, ctx: ctx, reply: make(chan result, 1)}
	f.calls <- c
	if f.ignoreCancel {
		res := <-c.reply
		return res.data, res.err
	}
	select {
	case res := <-c.reply:
		return res.data, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (f *fakeFetcher) next(t *testing.T) call {
	t.Helper()
	select {
	case c := <-f.calls:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a fetch")
		return call{}
	}
}

// queue stands in for a component's execution context.
type queue chan func()

func (q queue) dispatch(task func()) { q <- task }

func (q queue) runNext(t *testing.T) {
	t.Helper()
	select {
	case task := <-q:
		task()
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a dispatched result")
	}
}

func newTestResource(f *fakeFetcher, policy Policy) (*Resource[string], queue) {
	q := make(queue, 8)
	r := New(f.fetch, WithPolicy(policy), WithDispatcher(q.dispatch))
	return r, q
}

func TestNew_StartsIdle(t *testing.T) {
	r := New(newFakeFetcher().fetch)
	assert.Equal(t, Idle[string](), r.State())
	assert.Equal(t, SuppressStale, r.Policy())
}

func TestRequest_Resolves(t *testing.T) {
	f := newFakeFetcher()
	r, q := newTestResource(f, SuppressStale)

	gen := r.Request("pikachu")
	assert.Equal(t, uint64(1), gen)
	assert.Equal(t, Pending[string]("pikachu"), r.State())

	c := f.next(t)
	assert.Equal(t, "pikachu", c.key)
	c.reply <- result{data: "PIKACHU"}
	q.runNext(t)

	assert.Equal(t, Resolved("pikachu", "PIKACHU"), r.State())
	r.Wait()
}

func TestRequest_Rejects(t *testing.T) {
	f := newFakeFetcher()
	r, q := newTestResource(f, SuppressStale)

	r.Request("missingno")
	boom := errors.New(`No pokemon with the name "missingno"`)
	f.next(t).reply <- result{err: boom}
	q.runNext(t)

	st := r.State()
	assert.Equal(t, StatusRejected, st.Status)
	assert.Equal(t, "missingno", st.Key)
	assert.Equal(t, "", st.Data)
	require.ErrorIs(t, st.Err, boom)
	r.Wait()
}

func TestRequest_EmptyKeyResetsWithoutFetching(t *testing.T) {
	f := newFakeFetcher()
	r, q := newTestResource(f, SuppressStale)

	r.Request("pikachu")
	f.next(t).reply <- result{data: "PIKACHU"}
	q.runNext(t)

	gen := r.Request("")
	assert.Equal(t, uint64(2), gen)
	assert.Equal(t, Idle[string](), r.State())
	assert.Empty(t, f.calls, "an empty key must not fetch")
	r.Wait()
}

func TestRequest_ClearsPreviousResult(t *testing.T) {
	f := newFakeFetcher()
	r, q := newTestResource(f, SuppressStale)

	r.Request("a")
	f.next(t).reply <- result{err: errors.New("failed")}
	q.runNext(t)
	require.Equal(t, StatusRejected, r.State().Status)

	r.Request("b")
	st := r.State()
	assert.Equal(t, Pending[string]("b"), st)
	assert.NoError(t, st.Err)

	f.next(t).reply <- result{data: "B"}
	q.runNext(t)
	r.Wait()
}

// TestRace_SuppressStale issues A then B; A is superseded and cancelled, so
// the final state belongs to B.
func TestRace_SuppressStale(t *testing.T) {
	f := newFakeFetcher()
	r, q := newTestResource(f, SuppressStale)

	r.Request("a")
	a := f.next(t)
	r.Request("b")
	b := f.next(t)

	select {
	case <-a.ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("superseded request was not cancelled")
	}
	q.runNext(t) // A's cancellation
	assert.Equal(t, Pending[string]("b"), r.State())

	b.reply <- result{data: "B"}
	q.runNext(t)
	assert.Equal(t, Resolved("b", "B"), r.State())
	r.Wait()
}

// TestRace_SuppressStale_IgnoredCancellation covers a fetcher that does not
// honor its context: A completes after B and is still dropped.
func TestRace_SuppressStale_IgnoredCancellation(t *testing.T) {
	f := newFakeFetcher()
	f.ignoreCancel = true
	r, q := newTestResource(f, SuppressStale)

	r.Request("a")
	a := f.next(t)
	r.Request("b")
	b := f.next(t)

	b.reply <- result{data: "B"}
	q.runNext(t)
	a.reply <- result{data: "A"}
	q.runNext(t)

	assert.Equal(t, Resolved("b", "B"), r.State())
	assert.Equal(t, uint64(2), r.Generation())
	r.Wait()
}

// TestRace_LastResolvedWins reproduces the unguarded behaviour: A resolving
// after B overwrites B's result.
func TestRace_LastResolvedWins(t *testing.T) {
	f := newFakeFetcher()
	r, q := newTestResource(f, LastResolvedWins)

	r.Request("a")
	a := f.next(t)
	r.Request("b")
	b := f.next(t)
	assert.NoError(t, a.ctx.Err(), "requests are not cancelled under LastResolvedWins")

	b.reply <- result{data: "B"}
	q.runNext(t)
	assert.Equal(t, Resolved("b", "B"), r.State())

	a.reply <- result{data: "A"}
	q.runNext(t)
	assert.Equal(t, Resolved("a", "A"), r.State())
	r.Wait()
}

func TestClose_CancelsAndDropsResults(t *testing.T) {
	f := newFakeFetcher()
	r, q := newTestResource(f, LastResolvedWins)

	r.Request("a")
	a := f.next(t)
	r.Close()

	<-a.ctx.Done()
	q.runNext(t)
	assert.Equal(t, Pending[string]("a"), r.State(), "results after Close are dropped")

	assert.Equal(t, uint64(0), r.Request("b"))
	assert.Empty(t, f.calls)
	r.Wait()
}

func TestOnChange(t *testing.T) {
	f := newFakeFetcher()
	q := make(queue, 8)
	changes := 0
	r := New(f.fetch, WithDispatcher(q.dispatch), WithOnChange(func() { changes++ }))

	r.Request("a") // pending
	f.next(t).reply <- result{data: "A"}
	q.runNext(t) // resolved
	r.Reset()    // idle

	assert.Equal(t, 3, changes)
	r.Wait()
}

func TestWithContext_ParentCancellation(t *testing.T) {
	f := newFakeFetcher()
	q := make(queue, 8)
	ctx, cancel := context.WithCancel(context.Background())
	r := New(f.fetch, WithDispatcher(q.dispatch), WithContext(ctx))

	r.Request("a")
	f.next(t)
	cancel()
	q.runNext(t)

	st := r.State()
	assert.Equal(t, StatusRejected, st.Status)
	assert.ErrorIs(t, st.Err, context.Canceled)
	r.Wait()
}

func TestParsePolicy(t *testing.T) {
	for _, p := range []Policy{SuppressStale, LastResolvedWins} {
		got, err := ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParsePolicy("first-wins")
	assert.ErrorContains(t, err, `unknown stale policy "first-wins"`)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "resolved", StatusResolved.String())
	assert.Equal(t, "rejected", StatusRejected.String())
	assert.Equal(t, "Status(9)", Status(9).String())
	assert.True(t, StatusRejected.Settled())
	assert.False(t, StatusPending.Settled())
}
