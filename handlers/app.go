package handlers

import (
	"context"
	"time"

	"famcal/assistant"
	"famcal/models"
)

const notConfigured = "Supabase not configured"

// Store is the hosted database. A nil Store means it is not configured.
type Store interface {
	Ping(ctx context.Context) error

	ListEvents(ctx context.Context, f models.EventFilter) ([]models.Event, error)
	CreateEvent(ctx context.Context, in models.EventInput) (models.Event, error)
	UpdateEvent(ctx context.Context, id string, in models.EventInput) (models.Event, error)
	DeleteEvent(ctx context.Context, id string) error

	ListTasks(ctx context.Context, f models.TaskFilter) ([]models.Task, error)
	CreateTask(ctx context.Context, in models.TaskInput) (models.Task, error)
	UpdateTask(ctx context.Context, id string, in models.TaskInput) (models.Task, error)
	DeleteTask(ctx context.Context, id string) error

	ListMessages(ctx context.Context, channel string, limit int) ([]models.Message, error)
	CreateMessage(ctx context.Context, in models.MessageInput) (models.Message, error)

	SaveFeedback(ctx context.Context, fb models.Feedback) error
	SaveEarlyAccess(ctx context.Context, ea models.EarlyAccess) error
}

// Cache holds serialized list responses per scope. Get returns the scope
// generation it read, and Set must be given that generation back.
type Cache interface {
	Get(ctx context.Context, scope, key string) ([]byte, string, bool)
	Set(ctx context.Context, scope, gen, key string, val []byte)
	Invalidate(ctx context.Context, scope string)
}

type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type Notifier interface {
	NotifyFeedback(ctx context.Context, fb models.Feedback) error
	ConfirmEarlyAccess(ctx context.Context, email string) error
}

type Assistant interface {
	Reply(ctx context.Context, message string, agenda assistant.Agenda) (string, error)
}

// App carries the optional backends every route relays to. Leave a field
// nil to disable that backend.
type App struct {
	Store     Store
	Cache     Cache
	Limiter   Limiter
	Notifier  Notifier
	Assistant Assistant

	// CacheCheck reports cache health on /api/health.
	CacheCheck func(ctx context.Context) error

	PingMessage string

	// TrustedProxyHops is passed to utils.GetIP for rate-limit keys.
	TrustedProxyHops int

	Now func() time.Time
}

func (a *App) clock() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}
