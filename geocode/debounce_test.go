package geocode

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSearcher struct {
	mu      sync.Mutex
	queries []string
	block   map[string]chan struct{}
	started chan string
}

func (s *recordingSearcher) Search(_ context.Context, query string) []Candidate {
	s.mu.Lock()
	s.queries = append(s.queries, query)
	wait := s.block[query]
	s.mu.Unlock()

	if s.started != nil {
		s.started <- query
	}
	if wait != nil {
		<-wait
	}
	return []Candidate{{DisplayName: query}}
}

func (s *recordingSearcher) calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

type collector struct {
	mu      sync.Mutex
	results []Result
	ch      chan Result
}

func newCollector() *collector {
	return &collector{ch: make(chan Result, 16)}
}

func (c *collector) add(r Result) {
	c.mu.Lock()
	c.results = append(c.results, r)
	c.mu.Unlock()
	c.ch <- r
}

func (c *collector) wait(t *testing.T) Result {
	select {
	case r := <-c.ch:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("no result delivered")
		return Result{}
	}
}

func (c *collector) all() []Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Result(nil), c.results...)
}

func TestSessionDebouncesBurst(t *testing.T) {
	searcher := &recordingSearcher{}
	results := newCollector()
	session := NewSession(context.Background(), searcher, 50*time.Millisecond, results.add)
	defer session.Close()

	for _, text := range []string{"va", "val", "valb", "valbonne"} {
		session.Type(text)
	}

	r := results.wait(t)
	assert.Equal(t, "valbonne", r.Query)
	require.Len(t, r.Candidates, 1)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, []string{"valbonne"}, searcher.calls())
	assert.Len(t, results.all(), 1)
}

func TestSessionShortInputIsImmediate(t *testing.T) {
	searcher := &recordingSearcher{}
	results := newCollector()
	session := NewSession(context.Background(), searcher, time.Hour, results.add)
	defer session.Close()

	session.Type("v")

	r := results.wait(t)
	assert.Equal(t, "v", r.Query)
	assert.Empty(t, r.Candidates)
	assert.Empty(t, searcher.calls())
}

func TestSessionDropsSupersededResult(t *testing.T) {
	release := make(chan struct{})
	searcher := &recordingSearcher{
		block:   map[string]chan struct{}{"rue": release},
		started: make(chan string, 4),
	}
	results := newCollector()
	session := NewSession(context.Background(), searcher, 10*time.Millisecond, results.add)
	defer session.Close()

	session.Type("rue")
	assert.Equal(t, "rue", <-searcher.started)

	session.Type("rue soutrane")
	assert.Equal(t, "rue soutrane", <-searcher.started)

	r := results.wait(t)
	assert.Equal(t, "rue soutrane", r.Query)

	close(release)
	time.Sleep(50 * time.Millisecond)

	delivered := results.all()
	require.Len(t, delivered, 1)
	assert.Equal(t, "rue soutrane", delivered[0].Query)
}

func TestSessionSequenceIncreases(t *testing.T) {
	results := newCollector()
	session := NewSession(context.Background(), &recordingSearcher{}, time.Hour, results.add)
	defer session.Close()

	session.Type("a")
	first := results.wait(t)
	session.Type("b")
	second := results.wait(t)

	assert.Less(t, first.Seq, second.Seq)
}

func TestSessionCallbackMayTypeAgain(t *testing.T) {
	results := newCollector()
	var session *Session
	session = NewSession(context.Background(), &recordingSearcher{}, 10*time.Millisecond, func(r Result) {
		results.add(r)
		if r.Query == "valbonne" {
			session.Type("v")
		}
	})
	defer session.Close()

	session.Type("valbonne")

	assert.Equal(t, "valbonne", results.wait(t).Query)
	assert.Equal(t, "v", results.wait(t).Query)
}

func TestSessionCloseStopsPendingSearch(t *testing.T) {
	searcher := &recordingSearcher{}
	results := newCollector()
	session := NewSession(context.Background(), searcher, 20*time.Millisecond, results.add)

	session.Type("valbonne")
	session.Close()
	session.Type("antibes")

	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, searcher.calls())
	assert.Empty(t, results.all())
}
