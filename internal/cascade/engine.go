package cascade

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"crm-master-api/internal/notify"
	"crm-master-api/internal/repo"
	"crm-master-api/internal/transport"
)

// Node is a hierarchy record as the engine sees it: just an id and the
// status that decides whether the cascade touches it.
type Node struct {
	ID     repo.ID
	Status int
}

// Level adapts one depth of a hierarchy (one Collection) to the engine.
type Level struct {
	Name string

	// Children returns the direct children of the given frontier ids.
	Children func(frontier map[repo.ID]struct{}) []Node

	// SetStatusLocal applies a status optimistically to one local row.
	SetStatusLocal func(id repo.ID, status int)

	// PatchStatus persists a status change.
	PatchStatus func(ctx context.Context, id repo.ID, status int) transport.Result

	// Refetch resynchronizes the level's collection with the server.
	Refetch func(ctx context.Context)
}

// Spec describes one cascade toggle: the root record, the level it lives
// in, and the child levels in descending depth order. A depth usually holds
// one level; branching hierarchies (an insurance subtype fans out into
// process flows, fields and documents) put the sibling levels in the same
// depth.
type Spec struct {
	EntityName string
	Root       Node
	RootLevel  Level
	Depths     [][]Level
}

// Chain is the common linear case: one level per depth.
func Chain(levels ...Level) [][]Level {
	out := make([][]Level, len(levels))
	for i, lvl := range levels {
		out[i] = []Level{lvl}
	}
	return out
}

// TreeSpec is the self-referential variant: one flat collection whose rows
// point at each other through a parent id, walked to unbounded depth.
type TreeSpec struct {
	EntityName string
	Root       Node
	Level      Level
}

// Outcome reports what one cascade did.
type Outcome struct {
	OpID      string
	NewStatus int

	// Changed counts descendants whose status actually flipped; the root
	// is not included.
	Changed int

	// Patches is the total number of PATCH calls issued, root included.
	Patches int

	FailedIDs []repo.ID

	// Orphaned is set when the caller's context died while the batch was
	// in flight; the batch ran to completion regardless.
	Orphaned bool
}

// Engine runs status cascades. Operations on the same root serialize
// through a per-root lock, so a double-toggle cannot interleave its PATCH
// batches with the first toggle's.
type Engine struct {
	notifier notify.Notifier
	log      *zap.Logger

	mu    sync.Mutex
	roots map[string]*sync.Mutex
}

func New(n notify.Notifier, log *zap.Logger) *Engine {
	return &Engine{notifier: n, log: log, roots: make(map[string]*sync.Mutex)}
}

// Toggle flips the root's status and propagates it down the level chain.
// Children already carrying the new status are skipped, and the walk only
// descends through nodes that actually changed, so the PATCH count equals
// the number of genuinely affected records.
func (e *Engine) Toggle(ctx context.Context, spec Spec) (Outcome, error) {
	i := 0
	next := func() ([]Level, bool) {
		if i >= len(spec.Depths) {
			return nil, false
		}
		depth := spec.Depths[i]
		i++
		return depth, true
	}
	return e.run(ctx, spec.EntityName, spec.Root, spec.RootLevel, next)
}

// ToggleTree runs the self-referential variant: the same level is consulted
// every round until the frontier empties. A visited set guards against
// cyclic parent links.
func (e *Engine) ToggleTree(ctx context.Context, spec TreeSpec) (Outcome, error) {
	next := func() ([]Level, bool) { return []Level{spec.Level}, true }
	return e.run(ctx, spec.EntityName, spec.Root, spec.Level, next)
}

type patchOp struct {
	level *Level
	id    repo.ID
}

func (e *Engine) run(ctx context.Context, entity string, root Node, rootLevel Level, next func() ([]Level, bool)) (Outcome, error) {
	lock := e.rootLock(rootLevel.Name + "/" + root.ID)
	lock.Lock()
	defer lock.Unlock()

	newStatus := repo.StatusActive
	if root.Status == repo.StatusActive {
		newStatus = repo.StatusInactive
	}

	out := Outcome{OpID: ulid.Make().String(), NewStatus: newStatus}

	rootLevel.SetStatusLocal(root.ID, newStatus)
	pending := []patchOp{{level: &rootLevel, id: root.ID}}
	affected := []*Level{&rootLevel}
	affectedNames := map[string]struct{}{rootLevel.Name: {}}

	// ids are only unique within a collection, so the visited set is keyed
	// by level name as well
	visited := map[string]struct{}{rootLevel.Name + "/" + root.ID: {}}
	frontier := map[repo.ID]struct{}{root.ID: {}}

	for len(frontier) > 0 {
		depth, ok := next()
		if !ok {
			break
		}

		nextFrontier := make(map[repo.ID]struct{})
		for i := range depth {
			lvl := depth[i]

			levelTouched := false
			for _, child := range lvl.Children(frontier) {
				key := lvl.Name + "/" + child.ID
				if _, seen := visited[key]; seen {
					continue
				}
				visited[key] = struct{}{}
				if child.Status == newStatus {
					continue
				}
				lvl.SetStatusLocal(child.ID, newStatus)
				pending = append(pending, patchOp{level: &lvl, id: child.ID})
				nextFrontier[child.ID] = struct{}{}
				levelTouched = true
			}
			if levelTouched {
				if _, dup := affectedNames[lvl.Name]; !dup {
					affected = append(affected, &lvl)
					affectedNames[lvl.Name] = struct{}{}
				}
			}
		}
		frontier = nextFrontier
	}

	out.Patches = len(pending)
	out.Changed = len(pending) - 1

	failed := e.dispatch(ctx, pending, newStatus)
	out.FailedIDs = failed
	out.Orphaned = ctx.Err() != nil

	if len(failed) > 0 {
		for _, lvl := range affected {
			lvl.Refetch(ctx)
		}
		e.notifier.Error(entity + " status change failed")
		e.log.Warn("cascade failed",
			zap.String("operation", "cascade"),
			zap.String("entity", entity),
			zap.String("op_id", out.OpID),
			zap.String("root_id", root.ID),
			zap.Int("patches", out.Patches),
			zap.Int("failed", len(failed)))
		return out, fmt.Errorf("cascade: %d of %d updates failed", len(failed), out.Patches)
	}

	if out.Orphaned {
		e.log.Warn("cascade outlived its caller",
			zap.String("operation", "cascade"),
			zap.String("entity", entity),
			zap.String("op_id", out.OpID),
			zap.String("root_id", root.ID))
		return out, errors.New("cascade: canceled")
	}

	verb := "deactivated"
	if newStatus == repo.StatusActive {
		verb = "activated"
	}
	if out.Changed == 0 {
		e.notifier.Success(fmt.Sprintf("%s %s", entity, verb))
	} else {
		e.notifier.Success(fmt.Sprintf("%s %s (%d descendants updated)", entity, verb, out.Changed))
	}
	return out, nil
}

// dispatch issues the whole batch concurrently and joins it. The batch runs
// to completion even if ctx dies mid-flight; individual PATCHes observe the
// cancellation themselves and come back as failures.
func (e *Engine) dispatch(ctx context.Context, pending []patchOp, newStatus int) []repo.ID {
	results := make([]transport.Result, len(pending))
	var wg sync.WaitGroup
	for i, op := range pending {
		wg.Add(1)
		go func(i int, op patchOp) {
			defer wg.Done()
			results[i] = op.level.PatchStatus(ctx, op.id, newStatus)
		}(i, op)
	}
	wg.Wait()

	var failed []repo.ID
	for i, res := range results {
		if !res.Status {
			failed = append(failed, pending[i].id)
		}
	}
	return failed
}

func (e *Engine) rootLock(key string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	lock, ok := e.roots[key]
	if !ok {
		lock = &sync.Mutex{}
		e.roots[key] = lock
	}
	return lock
}
