package preview

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/toastui/internal/config"
	"github.com/vango-dev/toastui/internal/gallery"
	"github.com/vango-dev/toastui/pkg/features/hooks"
	"github.com/vango-dev/toastui/pkg/toast"
)

func newTestServer(t *testing.T, opts ...Option) (*Server, *httptest.Server) {
	t.Helper()

	fixture, err := gallery.Default()
	require.NoError(t, err)

	opts = append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	s := New(config.New(), fixture, opts...)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func dial(t *testing.T, s *Server, ts *httptest.Server, want int) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.Eventually(t, func() bool { return s.Clients() == want }, time.Second, 5*time.Millisecond)
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestHealth(t *testing.T) {
	_, ts := newTestServer(t)

	status, body := get(t, ts.URL+"/healthz")
	assert.Equal(t, http.StatusOK, status)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	assert.Equal(t, "ok", payload["status"])
	assert.EqualValues(t, 0, payload["clients"])
}

func TestIndex(t *testing.T) {
	s, ts := newTestServer(t)

	status, body := get(t, ts.URL+"/")
	require.Equal(t, http.StatusOK, status)

	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, config.DefaultStyleSheet)
	assert.Contains(t, body, `data-hook="Swipe"`)
	assert.Contains(t, body, `data-on-swipeend="true"`)
	assert.Contains(t, body, `toast-close=""`)
	assert.Contains(t, body, "new WebSocket")
	assert.Contains(t, body, "Uh oh! Something went wrong.")

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Contains(t, s.handlers, "h1_onswipeend")
	assert.Equal(t, "h1", s.roots["scheduled"])
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.rendersTotal.WithLabelValues("index", "ok")))
}

func TestToastFragment(t *testing.T) {
	_, ts := newTestServer(t)

	status, body := get(t, ts.URL+"/toast?variant=destructive&title=Oops&description=Broke&action=Retry&class=mt-4")
	require.Equal(t, http.StatusOK, status)

	assert.True(t, strings.HasPrefix(body, `<div `))
	assert.Contains(t, body, "border-destructive")
	assert.Contains(t, body, " mt-4")
	assert.Contains(t, body, `<h2 class="text-sm font-semibold" id="toast-preview-title">Oops</h2>`)
	assert.Contains(t, body, "Retry")
	assert.NotContains(t, body, "data-hid")
	assert.NotContains(t, body, "<html")
}

func TestToastFragmentUnknownVariant(t *testing.T) {
	_, ts := newTestServer(t)

	_, unknown := get(t, ts.URL+"/toast?variant=loud&title=Hi")
	_, def := get(t, ts.URL+"/toast?title=Hi")
	assert.Equal(t, def, unknown)
	assert.Contains(t, def, toast.Classes(toast.VariantDefault))
}

func TestMetricsEndpoint(t *testing.T) {
	_, ts := newTestServer(t)

	get(t, ts.URL+"/toast?title=x")
	status, body := get(t, ts.URL+"/metrics")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `toastui_renders_total{route="toast",status="ok"} 1`)
	assert.Contains(t, body, "toastui_render_duration_seconds")
	assert.Contains(t, body, "toastui_active_clients 0")
}

func TestMetricsDisabled(t *testing.T) {
	fixture, err := gallery.Default()
	require.NoError(t, err)

	cfg := config.New()
	cfg.Metrics.Enabled = false
	ts := httptest.NewServer(New(cfg, fixture, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))).Handler())
	defer ts.Close()

	status, _ := get(t, ts.URL+"/metrics")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestSwipeEndDismissesEverywhere(t *testing.T) {
	s, ts := newTestServer(t)
	get(t, ts.URL+"/")

	a := dial(t, s, ts, 1)
	b := dial(t, s, ts, 2)

	require.NoError(t, a.WriteJSON(ClientEvent{HID: "h1", Event: "swipeend", Data: map[string]any{"delta": 80}}))

	for _, conn := range []*websocket.Conn{a, b} {
		msg := readMessage(t, conn)
		assert.Equal(t, MessageDismiss, msg.Type)
		assert.Equal(t, "h1", msg.HID)
		assert.Equal(t, "scheduled", msg.ID)
	}

	_, body := get(t, ts.URL+"/")
	idx := strings.Index(body, `id="scheduled"`)
	require.NotEqual(t, -1, idx)
	start := strings.LastIndex(body[:idx], "<div")
	assert.Contains(t, body[start:idx], `data-state="closed"`)
}

func TestCloseClickDismisses(t *testing.T) {
	s, ts := newTestServer(t)
	get(t, ts.URL+"/")
	conn := dial(t, s, ts, 1)

	// scheduled: root h1, action h2, close h3
	require.NoError(t, conn.WriteJSON(ClientEvent{HID: "h3", Event: "click"}))
	msg := readMessage(t, conn)
	assert.Equal(t, MessageDismiss, msg.Type)
	assert.Equal(t, "scheduled", msg.ID)

	require.NoError(t, conn.WriteJSON(ClientEvent{HID: "h2", Event: "click"}))
	msg = readMessage(t, conn)
	assert.Equal(t, MessageAction, msg.Type)
	assert.Equal(t, "scheduled", msg.ID)
}

func TestClientErrors(t *testing.T) {
	s, ts := newTestServer(t)
	get(t, ts.URL+"/")
	conn := dial(t, s, ts, 1)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	msg := readMessage(t, conn)
	assert.Equal(t, MessageError, msg.Type)
	assert.Contains(t, msg.Error, "E152")

	require.NoError(t, conn.WriteJSON(ClientEvent{HID: "h1"}))
	msg = readMessage(t, conn)
	assert.Contains(t, msg.Error, "E152")

	require.NoError(t, conn.WriteJSON(ClientEvent{HID: "h999", Event: "click"}))
	msg = readMessage(t, conn)
	assert.Equal(t, "h999", msg.HID)
	assert.Contains(t, msg.Error, "E151")

	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.clientEvents.WithLabelValues("click", "error")))
	assert.Equal(t, 2.0, testutil.ToFloat64(s.metrics.clientEvents.WithLabelValues("invalid", "error")))
}

func TestDispatchHandlerTypes(t *testing.T) {
	s, _ := newTestServer(t)

	var got hooks.HookEvent
	var raw map[string]any
	s.mu.Lock()
	s.handlers["h7_onswipeend"] = func(e hooks.HookEvent) { got = e }
	s.handlers["h8_onswipeend"] = func(d map[string]any) { raw = d }
	s.handlers["h9_onswipeend"] = "not a func"
	s.mu.Unlock()

	require.NoError(t, s.Dispatch(ClientEvent{HID: "h7", Event: "swipeend", Data: map[string]any{"delta": 72.0}}))
	assert.Equal(t, "swipeend", got.Name)
	assert.Equal(t, 72, got.Int("delta"))

	require.NoError(t, s.Dispatch(ClientEvent{HID: "h8", Event: "swipeend", Data: map[string]any{"k": "v"}}))
	assert.Equal(t, "v", raw["k"])

	err := s.Dispatch(ClientEvent{HID: "h9", Event: "swipeend"})
	assert.ErrorContains(t, err, "E152")
}

func TestNotify(t *testing.T) {
	s, ts := newTestServer(t)
	conn := dial(t, s, ts, 1)

	body := bytes.NewBufferString(`{"level":"error","title":"Failed","message":"Disk full"}`)
	resp, err := http.Post(ts.URL+"/notify", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var created map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotEmpty(t, created["id"])

	msg := readMessage(t, conn)
	assert.Equal(t, MessageShow, msg.Type)
	assert.Equal(t, created["id"], msg.ID)
	assert.Contains(t, msg.HTML, "Disk full")
	assert.Contains(t, msg.HTML, "bg-destructive")
	assert.Contains(t, msg.HTML, `toast-close=""`)
}

func TestNotifyRejectsBadInput(t *testing.T) {
	_, ts := newTestServer(t)

	for _, body := range []string{`{`, `{"level":"info"}`} {
		resp, err := http.Post(ts.URL+"/notify", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
	}
}

func TestLevelVariant(t *testing.T) {
	assert.Equal(t, toast.VariantDestructive, LevelError.variant())
	assert.Equal(t, toast.VariantDefault, LevelWarning.variant())
	assert.Equal(t, toast.VariantDefault, Level("").variant())
}

type recordingProvider struct {
	noop.TracerProvider

	mu    sync.Mutex
	spans []string
}

func (p *recordingProvider) Tracer(string, ...trace.TracerOption) trace.Tracer {
	return recordingTracer{p: p}
}

func (p *recordingProvider) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.spans...)
}

type recordingTracer struct {
	noop.Tracer
	p *recordingProvider
}

func (t recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	t.p.mu.Lock()
	t.p.spans = append(t.p.spans, name)
	t.p.mu.Unlock()
	return t.Tracer.Start(ctx, name, opts...)
}

func TestRenderSpans(t *testing.T) {
	tp := &recordingProvider{}
	_, ts := newTestServer(t, WithTracerProvider(tp))

	get(t, ts.URL+"/")
	get(t, ts.URL+"/toast?title=x")
	get(t, ts.URL+"/healthz")

	assert.Equal(t, []string{"toastui.render", "toastui.render"}, tp.names())
}

func TestServeShutsDown(t *testing.T) {
	fixture, err := gallery.Default()
	require.NoError(t, err)
	s := New(config.New(), fixture, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestListenAndServeBadAddress(t *testing.T) {
	fixture, err := gallery.Default()
	require.NoError(t, err)
	cfg := config.New()
	cfg.Server.Port = -1

	err = New(cfg, fixture).ListenAndServe(context.Background())
	assert.ErrorContains(t, err, "E150")
}
