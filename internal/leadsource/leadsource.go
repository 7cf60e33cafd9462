package leadsource

import (
	"context"

	"go.uber.org/zap"

	"crm-master-api/internal/cascade"
	"crm-master-api/internal/repo"
	"crm-master-api/internal/resource"
	"crm-master-api/internal/transport"
)

// LeadSource rows form a self-referential tree through ParentID; the depth
// is whatever the operators have built, not a fixed level count.
type LeadSource struct {
	ID       int    `json:"id"`
	ParentID int    `json:"parent_id"`
	Name     string `json:"name"`
	Status   int    `json:"status"`
}

func (s LeadSource) RecordID() repo.ID { return repo.Canon(s.ID) }
func (s LeadSource) RecordStatus() int { return s.Status }
func (s LeadSource) WithStatus(v int) LeadSource {
	s.Status = v
	return s
}

func (s LeadSource) IsRoot() bool { return s.ParentID == 0 }

type Module struct {
	Sources *repo.Collection[LeadSource]

	engine *cascade.Engine
}

func NewModule(client *transport.Client, cache *resource.Cache, engine *cascade.Engine, log *zap.Logger) *Module {
	return &Module{
		Sources: repo.NewCollection[LeadSource]("leadSources", client, cache, log),
		engine:  engine,
	}
}

func (m *Module) Load(ctx context.Context) {
	m.Sources.Load(ctx)
}

// Children returns the direct children of one source.
func (m *Module) Children(id repo.ID) []LeadSource {
	var out []LeadSource
	for _, s := range m.Sources.Items() {
		if !s.IsRoot() && repo.Canon(s.ParentID) == id {
			out = append(out, s)
		}
	}
	return out
}

// Descendants walks the subtree under one source, breadth-first.
func (m *Module) Descendants(id repo.ID) []LeadSource {
	var out []LeadSource
	seen := map[repo.ID]struct{}{id: {}}
	frontier := []repo.ID{id}
	for len(frontier) > 0 {
		var next []repo.ID
		for _, parent := range frontier {
			for _, child := range m.Children(parent) {
				cid := child.RecordID()
				if _, ok := seen[cid]; ok {
					continue
				}
				seen[cid] = struct{}{}
				out = append(out, child)
				next = append(next, cid)
			}
		}
		frontier = next
	}
	return out
}

// ToggleSource flips one source and cascades through its whole subtree.
func (m *Module) ToggleSource(ctx context.Context, s LeadSource) (cascade.Outcome, error) {
	return m.engine.ToggleTree(ctx, cascade.TreeSpec{
		EntityName: "Lead source",
		Root:       cascade.Node{ID: s.RecordID(), Status: s.Status},
		Level: cascade.LevelOf(m.Sources, func(c LeadSource) repo.ID {
			if c.IsRoot() {
				return ""
			}
			return repo.Canon(c.ParentID)
		}),
	})
}
