package resource

import (
	"context"
	"sync"
)

// State is a point-in-time view of a resource. Loading is true only while a
// foreground request with no usable cached value is in flight; Refetching is
// true while a background revalidation runs behind a served cache hit.
type State[T any] struct {
	Data       T
	Loading    bool
	Refetching bool
	Err        error
}

// Loader fetches the current server value for a resource.
type Loader[T any] func(ctx context.Context) (T, error)

// Resource binds one cache key to a loader. A key change in the original
// console re-keyed the hook; here a new key means a new Resource.
//
// Stale in-flight responses are discarded two ways: the caller's context
// cancellation, and a generation stamp taken when the request starts — a
// response only commits if no newer load or mutation has superseded it.
type Resource[T any] struct {
	mu    sync.Mutex
	key   string
	cache *Cache
	load  Loader[T]

	gen   uint64
	state State[T]
}

func New[T any](key string, cache *Cache, load Loader[T]) *Resource[T] {
	return &Resource[T]{key: key, cache: cache, load: load}
}

func (r *Resource[T]) Key() string { return r.key }

func (r *Resource[T]) Snapshot() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Load serves the resource. On a valid cache hit the cached value is
// installed immediately and a background revalidation is kicked off; on a
// miss (or expired entry) the call blocks on a foreground load.
func (r *Resource[T]) Load(ctx context.Context) State[T] {
	r.mu.Lock()
	if cached, ok := r.cache.Get(r.key); ok {
		if v, ok := cached.(T); ok {
			r.state.Data = v
			r.state.Loading = false
			r.state.Refetching = true
			r.gen++
			gen := r.gen
			r.mu.Unlock()

			go r.revalidate(ctx, gen)
			return r.Snapshot()
		}
	}
	r.mu.Unlock()

	return r.foreground(ctx)
}

// Refetch forces a foreground reload, clearing any previous error first.
func (r *Resource[T]) Refetch(ctx context.Context) State[T] {
	r.mu.Lock()
	r.state.Err = nil
	r.mu.Unlock()
	return r.foreground(ctx)
}

// Mutate rewrites the local value and the cache entry without a network
// round-trip. Any in-flight load is superseded and will be discarded.
func (r *Resource[T]) Mutate(fn func(T) T) {
	r.mu.Lock()
	r.gen++
	r.state.Data = fn(r.state.Data)
	r.state.Loading = false
	r.state.Refetching = false
	value := r.state.Data
	r.mu.Unlock()

	r.cache.Set(r.key, value)
}

func (r *Resource[T]) foreground(ctx context.Context) State[T] {
	r.mu.Lock()
	r.state.Loading = true
	r.state.Refetching = false
	r.gen++
	gen := r.gen
	r.mu.Unlock()

	data, err := r.load(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.gen {
		// superseded by a newer load or mutation; that operation owns
		// the state now
		return r.state
	}
	r.state.Loading = false
	if ctx.Err() != nil {
		// canceled: leave data, cache and error untouched
		return r.state
	}
	if err != nil {
		r.state.Err = err
		return r.state
	}
	r.state.Err = nil
	r.state.Data = data
	r.cache.Set(r.key, data)
	return r.state
}

func (r *Resource[T]) revalidate(ctx context.Context, gen uint64) {
	data, err := r.load(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.gen {
		return
	}
	r.state.Refetching = false
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		// keep serving the cached value; background failures are quiet
		return
	}
	r.state.Data = data
	r.state.Err = nil
	r.cache.Set(r.key, data)
}
