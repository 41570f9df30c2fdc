package preview

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/vango-dev/toastui/internal/gallery"
	"github.com/vango-dev/toastui/pkg/toast"
)

// Level is the severity of a pushed notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// variant maps a level to a toast variant. Only errors are destructive.
func (l Level) variant() toast.Variant {
	if l == LevelError {
		return toast.VariantDestructive
	}
	return toast.VariantDefault
}

// Notification is a toast pushed to connected pages.
type Notification struct {
	Level   Level  `json:"level"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
}

// Show renders n and pushes it to every connected page. It returns the id
// of the new toast.
func (s *Server) Show(ctx context.Context, n Notification) (string, error) {
	t := gallery.Toast{
		ID:          uuid.NewString(),
		Variant:     string(n.Level.variant()),
		Title:       n.Title,
		Description: n.Message,
		Action:      n.Action,
		State:       gallery.StateOpen,
	}

	res, err := s.render(ctx, "notify", t.Node(gallery.Handlers{}))
	if err != nil {
		return "", err
	}

	s.logger.Info("toast shown", "id", t.ID, "level", n.Level)
	s.hub.broadcast(Message{Type: MessageShow, ID: t.ID, HTML: string(res.html)})
	return t.ID, nil
}

// Success shows a success notification.
func (s *Server) Success(ctx context.Context, message string) (string, error) {
	return s.Show(ctx, Notification{Level: LevelSuccess, Message: message})
}

// Error shows a destructive notification.
func (s *Server) Error(ctx context.Context, message string) (string, error) {
	return s.Show(ctx, Notification{Level: LevelError, Message: message})
}

// handleNotify decodes a Notification from the body and shows it.
func (s *Server) handleNotify(w http.ResponseWriter, r *http.Request) {
	var n Notification
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		http.Error(w, "invalid notification: "+err.Error(), http.StatusBadRequest)
		return
	}
	if n.Message == "" && n.Title == "" {
		http.Error(w, "notification needs a title or message", http.StatusBadRequest)
		return
	}
	if n.Level == "" {
		n.Level = LevelInfo
	}

	id, err := s.Show(r.Context(), n)
	if err != nil {
		s.renderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(map[string]string{"id": id})
}
