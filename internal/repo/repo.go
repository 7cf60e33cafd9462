package repo

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"crm-master-api/internal/resource"
	"crm-master-api/internal/transport"
)

// ID is the canonical identifier type at the repository boundary. Backends
// hand out numeric or string ids; everything is canonicalized to a string so
// comparisons are always exact.
type ID = string

const (
	StatusActive   = 1
	StatusInactive = 0
)

// Canon converts any id representation the backend may emit into an ID.
func Canon(v any) ID {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case float64:
		// JSON numbers decode to float64; ids are integral
		return strconv.FormatInt(int64(x), 10)
	case fmt.Stringer:
		return x.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}

// Record is implemented by every master-data entity. WithStatus returns a
// copy with the status replaced, which is how optimistic local updates are
// applied without reflection.
type Record[T any] interface {
	RecordID() ID
	RecordStatus() int
	WithStatus(status int) T
}

// Collection is a REST-backed repository for one resource plus the local
// in-memory copy of its rows. All network traffic goes through the shared
// transport client; the local copy lives in a Resource so cache TTL and
// stale-while-revalidate semantics apply.
type Collection[T Record[T]] struct {
	name   string
	client *transport.Client
	res    *resource.Resource[[]T]
	log    *zap.Logger
}

func NewCollection[T Record[T]](name string, client *transport.Client, cache *resource.Cache, log *zap.Logger) *Collection[T] {
	c := &Collection[T]{name: name, client: client, log: log}
	c.res = resource.New(name, cache, func(ctx context.Context) ([]T, error) {
		res := client.Get(ctx, "/"+name)
		if res.Canceled() {
			return nil, ctx.Err()
		}
		return transport.Decode[[]T](res)
	})
	return c
}

func (c *Collection[T]) Name() string { return c.name }

// Load serves the collection, from cache when valid (revalidating in the
// background) or from the network.
func (c *Collection[T]) Load(ctx context.Context) resource.State[[]T] {
	return c.res.Load(ctx)
}

func (c *Collection[T]) Refetch(ctx context.Context) resource.State[[]T] {
	return c.res.Refetch(ctx)
}

func (c *Collection[T]) State() resource.State[[]T] {
	return c.res.Snapshot()
}

// Items returns a copy of the local rows.
func (c *Collection[T]) Items() []T {
	st := c.res.Snapshot()
	out := make([]T, len(st.Data))
	copy(out, st.Data)
	return out
}

func (c *Collection[T]) Find(id ID) (T, bool) {
	for _, item := range c.res.Snapshot().Data {
		if item.RecordID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// SetLocal replaces the local rows and cache entry without a network call.
func (c *Collection[T]) SetLocal(items []T) {
	c.res.Mutate(func([]T) []T { return items })
}

// SetStatusLocal applies a status optimistically to one local row.
func (c *Collection[T]) SetStatusLocal(id ID, status int) {
	c.res.Mutate(func(items []T) []T {
		out := make([]T, len(items))
		copy(out, items)
		for i, item := range out {
			if item.RecordID() == id {
				out[i] = item.WithStatus(status)
			}
		}
		return out
	})
}

// ReplaceLocal swaps one local row wholesale, preserving order.
func (c *Collection[T]) ReplaceLocal(id ID, item T) {
	c.res.Mutate(func(items []T) []T {
		out := make([]T, len(items))
		copy(out, items)
		for i, existing := range out {
			if existing.RecordID() == id {
				out[i] = item
			}
		}
		return out
	})
}

func (c *Collection[T]) GetByID(ctx context.Context, id ID) (T, error) {
	res := c.client.Get(ctx, "/"+c.name+"/"+url.PathEscape(id))
	return transport.Decode[T](res)
}

// ListBy fetches rows filtered server-side, GET /{resource}?{field}={value}.
func (c *Collection[T]) ListBy(ctx context.Context, field string, value string) ([]T, error) {
	res := c.client.Get(ctx, "/"+c.name+"?"+url.QueryEscape(field)+"="+url.QueryEscape(value))
	return transport.Decode[[]T](res)
}

func (c *Collection[T]) Create(ctx context.Context, item T) (T, error) {
	res := c.client.Post(ctx, "/"+c.name, item)
	return transport.Decode[T](res)
}

func (c *Collection[T]) Update(ctx context.Context, id ID, item T) (T, error) {
	res := c.client.Put(ctx, "/"+c.name+"/"+url.PathEscape(id), item)
	return transport.Decode[T](res)
}

// Patch sends a partial update. The raw result is returned so callers can
// distinguish cancellation from server rejection.
func (c *Collection[T]) Patch(ctx context.Context, id ID, fields map[string]any) transport.Result {
	return c.client.Patch(ctx, "/"+c.name+"/"+url.PathEscape(id), fields)
}

// PatchStatus is the one-field patch every toggle and cascade issues.
func (c *Collection[T]) PatchStatus(ctx context.Context, id ID, status int) transport.Result {
	return c.Patch(ctx, id, map[string]any{"status": status})
}

func (c *Collection[T]) Delete(ctx context.Context, id ID) error {
	res := c.client.Delete(ctx, "/"+c.name+"/"+url.PathEscape(id))
	if !res.Status {
		return errors.New(res.Message)
	}
	return nil
}
