package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"famcal/assistant"
	"famcal/handlers"
	"famcal/models"
)

var errBackend = errors.New("connection refused")

// fakeStore records the last call made to it and returns canned results.
type fakeStore struct {
	mu sync.Mutex

	events   []models.Event
	tasks    []models.Task
	messages []models.Message
	err      error
	pingErr  error

	// onList runs inside ListEvents, standing in for a concurrent request.
	onList func()

	eventFilter  models.EventFilter
	taskFilters  []models.TaskFilter
	eventInput   models.EventInput
	taskInput    models.TaskInput
	messageInput models.MessageInput
	lastID       string
	channel      string
	limit        int
	feedback     []models.Feedback
	signups      []models.EarlyAccess
	calls        []string
}

func (f *fakeStore) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeStore) Ping(context.Context) error { return f.pingErr }

func (f *fakeStore) ListEvents(_ context.Context, filter models.EventFilter) ([]models.Event, error) {
	f.record("ListEvents")
	f.eventFilter = filter
	if f.onList != nil {
		f.onList()
	}
	return f.events, f.err
}

func (f *fakeStore) CreateEvent(_ context.Context, in models.EventInput) (models.Event, error) {
	f.record("CreateEvent")
	f.eventInput = in
	if f.err != nil {
		return models.Event{}, f.err
	}
	return models.Event{ID: "new-event", Title: *in.Title, Status: in.Status}, nil
}

func (f *fakeStore) UpdateEvent(_ context.Context, id string, in models.EventInput) (models.Event, error) {
	f.record("UpdateEvent")
	f.lastID, f.eventInput = id, in
	if f.err != nil {
		return models.Event{}, f.err
	}
	return models.Event{ID: id, Title: "updated"}, nil
}

func (f *fakeStore) DeleteEvent(_ context.Context, id string) error {
	f.record("DeleteEvent")
	f.lastID = id
	return f.err
}

func (f *fakeStore) ListTasks(_ context.Context, filter models.TaskFilter) ([]models.Task, error) {
	f.record("ListTasks")
	f.taskFilters = append(f.taskFilters, filter)
	return f.tasks, f.err
}

func (f *fakeStore) CreateTask(_ context.Context, in models.TaskInput) (models.Task, error) {
	f.record("CreateTask")
	f.taskInput = in
	if f.err != nil {
		return models.Task{}, f.err
	}
	return models.Task{ID: "new-task", Title: *in.Title, Priority: in.Priority, Status: in.Status}, nil
}

func (f *fakeStore) UpdateTask(_ context.Context, id string, in models.TaskInput) (models.Task, error) {
	f.record("UpdateTask")
	f.lastID, f.taskInput = id, in
	if f.err != nil {
		return models.Task{}, f.err
	}
	return models.Task{ID: id, Title: "updated", Status: in.Status}, nil
}

func (f *fakeStore) DeleteTask(_ context.Context, id string) error {
	f.record("DeleteTask")
	f.lastID = id
	return f.err
}

func (f *fakeStore) ListMessages(_ context.Context, channel string, limit int) ([]models.Message, error) {
	f.record("ListMessages")
	f.channel, f.limit = channel, limit
	return f.messages, f.err
}

func (f *fakeStore) CreateMessage(_ context.Context, in models.MessageInput) (models.Message, error) {
	f.record("CreateMessage")
	f.messageInput = in
	if f.err != nil {
		return models.Message{}, f.err
	}
	return models.Message{ID: "m1", Channel: in.Channel, Text: in.Text, CreatedAt: time.Unix(0, 0).UTC()}, nil
}

func (f *fakeStore) SaveFeedback(_ context.Context, fb models.Feedback) error {
	f.record("SaveFeedback")
	f.feedback = append(f.feedback, fb)
	return f.err
}

func (f *fakeStore) SaveEarlyAccess(_ context.Context, ea models.EarlyAccess) error {
	f.record("SaveEarlyAccess")
	f.signups = append(f.signups, ea)
	return f.err
}

// fakeCache keeps a generation per scope the way utils.Cache does.
type fakeCache struct {
	entries     map[string][]byte
	gens        map[string]int
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}, gens: map[string]int{}}
}

func (c *fakeCache) Get(_ context.Context, scope, key string) ([]byte, string, bool) {
	gen := strconv.Itoa(c.gens[scope])
	v, ok := c.entries[scope+"|"+gen+"|"+key]
	return v, gen, ok
}

func (c *fakeCache) Set(_ context.Context, scope, gen, key string, val []byte) {
	c.entries[scope+"|"+gen+"|"+key] = val
}

func (c *fakeCache) Invalidate(_ context.Context, scope string) {
	c.invalidated = append(c.invalidated, scope)
	c.gens[scope]++
}

type fakeLimiter struct {
	allow bool
	err   error
	keys  []string
}

func (l *fakeLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.keys = append(l.keys, key)
	return l.allow, l.err
}

type fakeNotifier struct {
	feedback  []models.Feedback
	confirmed []string
	err       error
}

func (n *fakeNotifier) NotifyFeedback(_ context.Context, fb models.Feedback) error {
	n.feedback = append(n.feedback, fb)
	return n.err
}

func (n *fakeNotifier) ConfirmEarlyAccess(_ context.Context, email string) error {
	n.confirmed = append(n.confirmed, email)
	return n.err
}

type fakeAssistant struct {
	reply   string
	err     error
	message string
	agenda  assistant.Agenda
}

func (a *fakeAssistant) Reply(_ context.Context, message string, agenda assistant.Agenda) (string, error) {
	a.message, a.agenda = message, agenda
	return a.reply, a.err
}

func serve(t *testing.T, app *handlers.App, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handlers.NewRouter(app, []string{"*"}).ServeHTTP(rec, req)
	return rec
}

func assertJSON(t *testing.T, rec *httptest.ResponseRecorder, wantCode int, wantBody string) {
	t.Helper()
	if rec.Code != wantCode {
		t.Errorf("status = %d, want %d (body %s)", rec.Code, wantCode, rec.Body.String())
	}
	if got := strings.TrimSpace(rec.Body.String()); got != wantBody {
		t.Errorf("body = %s\nwant   %s", got, wantBody)
	}
}
