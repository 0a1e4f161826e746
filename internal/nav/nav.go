// Package nav forwards navigation actions to the host application's router.
package nav

import (
	"context"
	"sync"

	"github.com/rpggio/termstate/internal/action"
	"github.com/rpggio/termstate/internal/dispatch"
	"go.uber.org/zap"
)

// Well-known in-app locations.
const (
	Landing  = "/projects"
	Login    = "/login"
	NotFound = "/404"
)

// Navigator is implemented by the host application.
type Navigator interface {
	Navigate(target string)
	OpenExternal(url string)
}

// Handler routes Navigate and OpenExternal actions to a Navigator.
type Handler struct {
	nav    Navigator
	logger *zap.Logger
}

// NewHandler creates a navigation handler. A nil navigator only logs.
func NewHandler(n Navigator, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{nav: n, logger: logger.Named("nav")}
}

func (h *Handler) Handle(_ context.Context, a action.Action) (dispatch.Reaction, bool) {
	switch a := a.(type) {
	case action.Navigate:
		h.logger.Debug("navigate", zap.String("target", a.Target))
		if h.nav != nil {
			h.nav.Navigate(a.Target)
		}
		return dispatch.Done, true
	case action.OpenExternal:
		h.logger.Debug("open external", zap.String("url", a.URL))
		if h.nav != nil {
			h.nav.OpenExternal(a.URL)
		}
		return dispatch.Done, true
	}
	return dispatch.Done, false
}

// Recorder is a Navigator that remembers where it was sent.
type Recorder struct {
	mu      sync.Mutex
	history []string
}

// NewRecorder creates a Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Navigate(target string) {
	r.push(target)
}

func (r *Recorder) OpenExternal(url string) {
	r.push(url)
}

func (r *Recorder) push(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append(r.history, s)
}

// History returns every location visited so far, oldest first.
func (r *Recorder) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.history...)
}

// Last returns the most recent location, or "".
func (r *Recorder) Last() string {
	h := r.History()
	if len(h) == 0 {
		return ""
	}
	return h[len(h)-1]
}
