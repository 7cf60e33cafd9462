package crud

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"crm-master-api/internal/notify"
	"crm-master-api/internal/repo"
)

const genericFailure = "Operation failed"

// Config declares the per-entity behavior of a Controller.
type Config[T repo.Record[T]] struct {
	// EntityName appears in notifications ("Country created").
	EntityName string

	// Defaults builds a fresh create draft. When nil the zero record with
	// an active status is used.
	Defaults func() T

	// Validate returns a user-facing message when the draft is not
	// saveable, or "" when it is. Runs before any network call.
	Validate func(T) string
}

// Controller drives the create/edit/toggle workflow for one entity type:
// modal state, the current draft, save dispatch and the optimistic status
// toggle with rollback.
type Controller[T repo.Record[T]] struct {
	col      *repo.Collection[T]
	cfg      Config[T]
	notifier notify.Notifier
	log      *zap.Logger

	mu    sync.Mutex
	open  bool
	draft T
}

func NewController[T repo.Record[T]](col *repo.Collection[T], cfg Config[T], n notify.Notifier, log *zap.Logger) *Controller[T] {
	if cfg.EntityName == "" {
		cfg.EntityName = col.Name()
	}
	return &Controller[T]{col: col, cfg: cfg, notifier: n, log: log}
}

// OpenCreate opens the modal with a fresh draft. Optional overrides are
// applied on top of the configured defaults, in order.
func (c *Controller[T]) OpenCreate(overrides ...func(T) T) {
	var draft T
	if c.cfg.Defaults != nil {
		draft = c.cfg.Defaults()
	} else {
		draft = draft.WithStatus(repo.StatusActive)
	}
	for _, fn := range overrides {
		draft = fn(draft)
	}

	c.mu.Lock()
	c.draft = draft
	c.open = true
	c.mu.Unlock()
}

// OpenEdit opens the modal with a copy of an existing row.
func (c *Controller[T]) OpenEdit(item T) {
	c.mu.Lock()
	c.draft = item
	c.open = true
	c.mu.Unlock()
}

func (c *Controller[T]) Close() {
	c.mu.Lock()
	var zero T
	c.draft = zero
	c.open = false
	c.mu.Unlock()
}

func (c *Controller[T]) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

func (c *Controller[T]) Draft() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

func (c *Controller[T]) SetDraft(draft T) {
	c.mu.Lock()
	c.draft = draft
	c.mu.Unlock()
}

// Save validates and sanitizes the draft, then dispatches create or update
// depending on whether the draft carries an id. On success the modal closes
// and the collection refetches; on failure the modal stays open with the
// draft intact so the user can retry.
func (c *Controller[T]) Save(ctx context.Context) error {
	c.mu.Lock()
	draft := c.draft
	c.mu.Unlock()

	if c.cfg.Validate != nil {
		if msg := c.cfg.Validate(draft); msg != "" {
			c.notifier.Error(msg)
			return errors.New(msg)
		}
	}

	draft = SanitizeRecord(draft)

	var err error
	var verb string
	if id := draft.RecordID(); id != "" {
		verb = "updated"
		_, err = c.col.Update(ctx, id, draft)
	} else {
		verb = "created"
		_, err = c.col.Create(ctx, draft)
	}

	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = genericFailure
		}
		c.notifier.Error(msg)
		c.log.Warn("save failed",
			zap.String("operation", "save"),
			zap.String("entity", c.cfg.EntityName),
			zap.String("id", draft.RecordID()),
			zap.Error(err))
		return err
	}

	c.Close()
	c.col.Refetch(ctx)
	c.notifier.Success(c.cfg.EntityName + " " + verb)
	return nil
}

// ToggleStatus flips a row's status optimistically, then confirms with a
// PATCH. A rejected patch restores the exact prior record and forces a
// single refetch so local state reconverges with the server.
func (c *Controller[T]) ToggleStatus(ctx context.Context, item T) error {
	id := item.RecordID()
	newStatus := repo.StatusActive
	if item.RecordStatus() == repo.StatusActive {
		newStatus = repo.StatusInactive
	}

	c.col.SetStatusLocal(id, newStatus)

	res := c.col.PatchStatus(ctx, id, newStatus)
	if !res.Status {
		c.col.ReplaceLocal(id, item)
		c.col.Refetch(ctx)

		msg := res.Message
		if msg == "" {
			msg = genericFailure
		}
		c.notifier.Error(msg)
		c.log.Warn("status toggle failed",
			zap.String("operation", "toggleStatus"),
			zap.String("entity", c.cfg.EntityName),
			zap.String("id", id),
			zap.String("message", res.Message))
		return errors.New(msg)
	}

	if newStatus == repo.StatusActive {
		c.notifier.Success(c.cfg.EntityName + " activated")
	} else {
		c.notifier.Success(c.cfg.EntityName + " deactivated")
	}
	return nil
}
