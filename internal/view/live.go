package view

import (
	"sync"

	"github.com/rpggio/termstate/internal/domain/term"
	"github.com/rpggio/termstate/internal/domain/translation"
	"github.com/rpggio/termstate/internal/state"
)

// Source is an observable store.
type Source[S any] interface {
	Snapshot() state.Snapshot[S]
	Subscribe(fn func(state.Snapshot[S])) state.Token
	Unsubscribe(t state.Token)
}

// Live recomputes rows whenever terms or translations change. The reference
// locale follows the translation store.
type Live struct {
	terms        Source[term.State]
	translations Source[translation.State]

	mu       sync.Mutex
	locale   string
	opts     Options
	rows     []Row
	onChange func([]Row)
	tokens   [2]state.Token
	seq      uint64

	// notifyMu serializes onChange; delivered is the seq last passed to it.
	notifyMu  sync.Mutex
	delivered uint64
}

// NewLive starts a live view of locale. onChange, if set, receives every
// recomputed result.
func NewLive(terms Source[term.State], translations Source[translation.State], locale string, opts Options, onChange func([]Row)) *Live {
	l := &Live{
		terms:        terms,
		translations: translations,
		locale:       locale,
		opts:         opts,
		onChange:     onChange,
	}
	l.tokens[0] = terms.Subscribe(func(state.Snapshot[term.State]) { l.recompute() })
	l.tokens[1] = translations.Subscribe(func(state.Snapshot[translation.State]) { l.recompute() })
	l.recompute()
	return l
}

// Rows returns the current result.
func (l *Live) Rows() []Row {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rows
}

// SetLocale switches the working locale.
func (l *Live) SetLocale(locale string) {
	l.mu.Lock()
	l.locale = locale
	l.mu.Unlock()
	l.recompute()
}

// SetOptions replaces the filters.
func (l *Live) SetOptions(opts Options) {
	l.mu.Lock()
	l.opts = opts
	l.mu.Unlock()
	l.recompute()
}

// Close stops following the stores.
func (l *Live) Close() {
	l.terms.Unsubscribe(l.tokens[0])
	l.translations.Unsubscribe(l.tokens[1])
}

// recompute samples both stores under mu so the last build to finish is
// built from the newest snapshots. Results older than one already delivered
// are not passed to onChange.
func (l *Live) recompute() {
	l.mu.Lock()
	terms := l.terms.Snapshot().Data
	trs := l.translations.Snapshot().Data
	l.rows = Build(trs.Translations, terms.Terms, l.locale, trs.ReferenceLocale, l.opts)
	l.seq++
	rows, fn, seq := l.rows, l.onChange, l.seq
	l.mu.Unlock()

	if fn == nil {
		return
	}
	l.notifyMu.Lock()
	defer l.notifyMu.Unlock()
	if seq <= l.delivered {
		return
	}
	l.delivered = seq
	fn(rows)
}
