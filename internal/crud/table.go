package crud

import (
	"strings"
	"sync"
	"time"

	"crm-master-api/internal/repo"
)

const (
	DefaultPageSize = 10
	DefaultDebounce = 300 * time.Millisecond
)

// Column declares how one table column renders a row.
type Column[T any] struct {
	Label string
	Value func(T) string
}

// Field declares one input of the create/edit modal.
type Field struct {
	Name     string
	Label    string
	Type     string // "text", "select", "date", "checkbox", ...
	Required bool
	Options  []string
}

// TableConfig wires a Table: which fields are searchable, how columns
// render, and the modal field list.
type TableConfig[T repo.Record[T]] struct {
	SearchFields []func(T) string
	Columns      []Column[T]
	Fields       []Field
	PageSize     int
	Debounce     time.Duration
}

// Table is the turnkey unit every simple master page composes: one
// collection, one CRUD controller, debounced case-insensitive search and
// client-side pagination. A query change resets the page to 1.
type Table[T repo.Record[T]] struct {
	Collection *repo.Collection[T]
	Controller *Controller[T]

	cfg TableConfig[T]

	mu    sync.Mutex
	query string
	page  int
	timer *time.Timer
}

func NewTable[T repo.Record[T]](col *repo.Collection[T], ctrl *Controller[T], cfg TableConfig[T]) *Table[T] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	return &Table[T]{Collection: col, Controller: ctrl, cfg: cfg, page: 1}
}

// SetQuery schedules a search-term change. The term takes effect after the
// debounce interval; rapid keystrokes collapse into one application.
func (t *Table[T]) SetQuery(q string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.cfg.Debounce, func() {
		t.mu.Lock()
		t.query = q
		t.page = 1
		t.mu.Unlock()
	})
}

func (t *Table[T]) Query() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.query
}

func (t *Table[T]) Page() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.page
}

func (t *Table[T]) SetPage(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n < 1 {
		n = 1
	}
	t.page = n
}

func (t *Table[T]) PageCount() int {
	n := len(t.filtered())
	if n == 0 {
		return 1
	}
	return (n + t.cfg.PageSize - 1) / t.cfg.PageSize
}

func (t *Table[T]) TotalMatches() int {
	return len(t.filtered())
}

// Rows returns the current page of matching rows.
func (t *Table[T]) Rows() []T {
	matches := t.filtered()

	t.mu.Lock()
	page := t.page
	size := t.cfg.PageSize
	t.mu.Unlock()

	start := (page - 1) * size
	if start >= len(matches) {
		return nil
	}
	end := start + size
	if end > len(matches) {
		end = len(matches)
	}
	return matches[start:end]
}

func (t *Table[T]) Columns() []Column[T] { return t.cfg.Columns }
func (t *Table[T]) Fields() []Field      { return t.cfg.Fields }

func (t *Table[T]) filtered() []T {
	items := t.Collection.Items()

	t.mu.Lock()
	query := strings.ToLower(t.query)
	t.mu.Unlock()

	if query == "" {
		return items
	}

	var out []T
	for _, item := range items {
		for _, field := range t.cfg.SearchFields {
			if strings.Contains(strings.ToLower(field(item)), query) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
