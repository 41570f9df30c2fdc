package preview

import (
	"encoding/json"
	"net/http"

	"github.com/vango-dev/toastui/internal/errors"
	"github.com/vango-dev/toastui/internal/gallery"
	"github.com/vango-dev/toastui/pkg/features/hooks"
	"github.com/vango-dev/toastui/pkg/render"
	"github.com/vango-dev/toastui/pkg/vdom"
)

// handleIndex renders the gallery page and keeps its handlers for /ws.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	fixture := s.currentFixture()

	page := fixture.Page(s.galleryHandlers(), s.cfg.Gallery.StyleSheet)
	if s.cfg.Gallery.Title != "" && fixture.Title == "" {
		page.Title = s.cfg.Gallery.Title
	}
	page.Scripts = []render.ScriptTag{{Inline: ClientScript}}
	doc := render.BuildPage(page)

	res, err := s.render(r.Context(), "index", doc)
	if err != nil {
		s.renderError(w, err)
		return
	}

	roots := make(map[string]string)
	vdom.Walk(doc, func(n *vdom.VNode) bool {
		if n.HID != "" && hooks.Name(n) != "" {
			if id := n.Props.String("id"); id != "" {
				roots[id] = n.HID
			}
		}
		return true
	})

	s.mu.Lock()
	s.handlers = res.handlers
	s.roots = roots
	s.mu.Unlock()

	writeHTML(w, res.html)
}

// handleToast renders a single toast from query parameters. Unknown
// variants fall back to the default look.
func (s *Server) handleToast(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	t := gallery.Toast{
		ID:          q.Get("id"),
		Variant:     q.Get("variant"),
		Title:       q.Get("title"),
		Description: q.Get("description"),
		Action:      q.Get("action"),
		Class:       q.Get("class"),
		State:       gallery.StateOpen,
	}
	if t.ID == "" {
		t.ID = "toast-preview"
	}

	res, err := s.render(r.Context(), "toast", t.Node(gallery.Handlers{}))
	if err != nil {
		s.renderError(w, err)
		return
	}
	writeHTML(w, res.html)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"clients": s.hub.count(),
		"toasts":  len(s.fixture.Toasts),
	})
}

// handleClientMessage decodes and dispatches one websocket message.
func (s *Server) handleClientMessage(data []byte) *Message {
	var ev ClientEvent
	if err := json.Unmarshal(data, &ev); err != nil || ev.HID == "" || ev.Event == "" {
		s.metrics.clientEvents.WithLabelValues("invalid", "error").Inc()
		e := errors.New("E152")
		if err != nil {
			e = e.Wrap(err)
		}
		s.logger.Warn("malformed client event", "error", e)
		return &Message{Type: MessageError, Error: e.Error()}
	}

	if err := s.Dispatch(ev); err != nil {
		s.metrics.clientEvents.WithLabelValues(ev.Event, "error").Inc()
		s.logger.Warn("client event failed", "hid", ev.HID, "event", ev.Event, "error", err)
		return &Message{Type: MessageError, HID: ev.HID, Error: err.Error()}
	}

	s.metrics.clientEvents.WithLabelValues(ev.Event, "ok").Inc()
	return nil
}

// Dispatch calls the handler registered for ev during the last page render.
func (s *Server) Dispatch(ev ClientEvent) error {
	key := ev.HID + "_on" + ev.Event

	s.mu.Lock()
	handler, ok := s.handlers[key]
	s.mu.Unlock()

	if !ok {
		return errors.New("E151").WithDetailf("no %s handler for %s", ev.Event, ev.HID)
	}

	s.logger.Debug("dispatch", "hid", ev.HID, "event", ev.Event)
	switch fn := handler.(type) {
	case func():
		fn()
	case func(hooks.HookEvent):
		fn(hooks.HookEvent{Name: ev.Event, Data: ev.Data})
	case func(map[string]any):
		fn(ev.Data)
	case func(any):
		fn(ev.Data)
	default:
		return errors.New("E152").WithDetailf("handler for %s has unsupported type %T", key, handler)
	}
	return nil
}

// galleryHandlers dismisses toasts on swipe or close and announces actions.
func (s *Server) galleryHandlers() gallery.Handlers {
	dismiss := func(t gallery.Toast) func() {
		return func() { s.Dismiss(t.ID) }
	}
	return gallery.Handlers{
		SwipeEnd: dismiss,
		Close:    dismiss,
		Action: func(t gallery.Toast) func() {
			return func() {
				s.logger.Info("toast action", "id", t.ID, "action", t.Action)
				s.hub.broadcast(Message{Type: MessageAction, ID: t.ID})
			}
		},
	}
}

// Dismiss closes the toast with the given id on every connected page.
// Later page loads render it closed.
func (s *Server) Dismiss(id string) {
	s.mu.Lock()
	s.dismissed[id] = true
	hid := s.roots[id]
	s.mu.Unlock()

	s.logger.Info("toast dismissed", "id", id)
	s.hub.broadcast(Message{Type: MessageDismiss, HID: hid, ID: id})
}

// currentFixture returns the fixture with dismissed toasts marked closed.
func (s *Server) currentFixture() *gallery.Fixture {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := &gallery.Fixture{Title: s.fixture.Title, Toasts: make([]gallery.Toast, len(s.fixture.Toasts))}
	copy(f.Toasts, s.fixture.Toasts)
	for i := range f.Toasts {
		if s.dismissed[f.Toasts[i].ID] {
			f.Toasts[i].State = gallery.StateClosed
		}
	}
	return f
}

func (s *Server) renderError(w http.ResponseWriter, err error) {
	s.logger.Error("render failed", "error", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func writeHTML(w http.ResponseWriter, html []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(html)
}
