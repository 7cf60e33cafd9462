package category

import (
	"context"

	"go.uber.org/zap"

	"crm-master-api/internal/cascade"
	"crm-master-api/internal/repo"
	"crm-master-api/internal/resource"
	"crm-master-api/internal/transport"
)

// CustomerCategory segments customers two levels deep: a category and its
// sub categories.
type CustomerCategory struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Status int    `json:"status"`
}

func (c CustomerCategory) RecordID() repo.ID { return repo.Canon(c.ID) }
func (c CustomerCategory) RecordStatus() int { return c.Status }
func (c CustomerCategory) WithStatus(s int) CustomerCategory {
	c.Status = s
	return c
}

type CustomerSubCategory struct {
	ID         int    `json:"id"`
	CategoryID int    `json:"category_id"`
	Name       string `json:"name"`
	Status     int    `json:"status"`
}

func (c CustomerSubCategory) RecordID() repo.ID { return repo.Canon(c.ID) }
func (c CustomerSubCategory) RecordStatus() int { return c.Status }
func (c CustomerSubCategory) WithStatus(s int) CustomerSubCategory {
	c.Status = s
	return c
}

type Module struct {
	Categories    *repo.Collection[CustomerCategory]
	SubCategories *repo.Collection[CustomerSubCategory]

	engine *cascade.Engine
}

func NewModule(client *transport.Client, cache *resource.Cache, engine *cascade.Engine, log *zap.Logger) *Module {
	return &Module{
		Categories:    repo.NewCollection[CustomerCategory]("customerCategories", client, cache, log),
		SubCategories: repo.NewCollection[CustomerSubCategory]("customerSubCategories", client, cache, log),
		engine:        engine,
	}
}

func (m *Module) LoadAll(ctx context.Context) {
	m.Categories.Load(ctx)
	m.SubCategories.Load(ctx)
}

func (m *Module) ToggleCategory(ctx context.Context, c CustomerCategory) (cascade.Outcome, error) {
	return m.engine.Toggle(ctx, cascade.Spec{
		EntityName: "Customer category",
		Root:       cascade.Node{ID: c.RecordID(), Status: c.Status},
		RootLevel:  cascade.RootLevelOf(m.Categories),
		Depths: cascade.Chain(
			cascade.LevelOf(m.SubCategories, func(s CustomerSubCategory) repo.ID { return repo.Canon(s.CategoryID) }),
		),
	})
}
