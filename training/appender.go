package training

import (
	"context"
	"errors"
	"time"

	"widgetbrain/logger"
	"widgetbrain/models"
)

// Store is the row-level capability the appender needs: point read and point write of the
// context column, both keyed by widget id. GetContext returns ErrNotFound for unknown ids and
// "" for a NULL column.
type Store interface {
	GetContext(ctx context.Context, widgetID string) (string, error)
	SetContext(ctx context.Context, widgetID string, value string) error
}

type Outcome struct {
	WidgetID string
	Source   string
	Message  string
	Block    string
	Length   int
}

type Appender struct {
	store Store
	log   *logger.Logger
	now   func() time.Time
}

type Option func(*Appender)

// WithClock replaces time.Now for block timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *Appender) {
		if now != nil {
			a.now = now
		}
	}
}

func NewAppender(store Store, log *logger.Logger, opts ...Option) *Appender {
	if log == nil {
		log = logger.Nop()
	}
	a := &Appender{
		store: store,
		log:   log.With("component", "ContextAppender"),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Append reads the widget's context, adds one delimited block and writes it back.
// The read and the write are separate round trips; concurrent appends to the same widget
// may lose one of the updates.
func (a *Appender) Append(ctx context.Context, req models.AppendRequest) (Outcome, error) {
	if field := req.MissingFields(); field != "" {
		return Outcome{}, validationError(field)
	}
	req = req.Normalize()

	previous, err := a.store.GetContext(ctx, req.WidgetID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Outcome{}, notFoundError(req.WidgetID)
		}
		a.log.Error("Failed to read training context", "widget_id", req.WidgetID, "error", err)
		return Outcome{}, storageError(err)
	}

	block := FormatBlock(req.Source, req.NewContent, a.now())
	final := previous + block

	// aborted between read and write: leave the row untouched
	if err := ctx.Err(); err != nil {
		return Outcome{}, storageError(err)
	}

	if err := a.store.SetContext(ctx, req.WidgetID, final); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Outcome{}, notFoundError(req.WidgetID)
		}
		a.log.Error("Failed to write training context", "widget_id", req.WidgetID, "error", err)
		return Outcome{}, storageError(err)
	}

	a.log.Info("Training context appended",
		"widget_id", req.WidgetID,
		"source", req.Source,
		"block_bytes", len(block),
		"context_bytes", len(final),
	)

	return Outcome{
		WidgetID: req.WidgetID,
		Source:   req.Source,
		Message:  MsgUpdated,
		Block:    block,
		Length:   len(final),
	}, nil
}
