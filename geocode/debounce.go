package geocode

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

const DefaultDebounce = 200 * time.Millisecond

type Searcher interface {
	Search(ctx context.Context, query string) []Candidate
}

// Result is what a Session delivers for one query. Seq increases with every
// keystroke so callers can tell results apart.
type Result struct {
	Seq        uint64
	Query      string
	Candidates []Candidate
}

// Session debounces keystrokes into searches. Only the result of the latest
// query is delivered; a search that lands after a newer keystroke is dropped.
// onResult runs on a timer goroutine, one call at a time, and may call Type.
type Session struct {
	ctx      context.Context
	searcher Searcher
	delay    time.Duration
	onResult func(Result)

	mu     sync.Mutex
	seq    uint64
	timer  *time.Timer
	closed bool

	deliverMu sync.Mutex
}

func NewSession(ctx context.Context, searcher Searcher, delay time.Duration, onResult func(Result)) *Session {
	return &Session{
		ctx:      ctx,
		searcher: searcher,
		delay:    delay,
		onResult: onResult,
	}
}

// Type records the current input text.
func (s *Session) Type(text string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.seq++
	seq := s.seq
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if utf8.RuneCountInString(strings.TrimSpace(text)) < MinQueryLength {
		s.timer = time.AfterFunc(0, func() {
			s.deliver(Result{Seq: seq, Query: text, Candidates: []Candidate{}})
		})
		s.mu.Unlock()
		return
	}

	s.timer = time.AfterFunc(s.delay, func() { s.run(seq, text) })
	s.mu.Unlock()
}

// Close stops any pending search. Results still in flight are discarded.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.seq++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Session) latest(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return seq == s.seq
}

func (s *Session) run(seq uint64, text string) {
	if !s.latest(seq) {
		return
	}
	candidates := s.searcher.Search(s.ctx, text)
	s.deliver(Result{Seq: seq, Query: text, Candidates: candidates})
}

func (s *Session) deliver(r Result) {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	if !s.latest(r.Seq) {
		return
	}
	s.onResult(r)
}
