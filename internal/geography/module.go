package geography

import (
	"context"

	"go.uber.org/zap"

	"crm-master-api/internal/cascade"
	"crm-master-api/internal/repo"
	"crm-master-api/internal/resource"
	"crm-master-api/internal/transport"
)

// Module owns the five geography collections and the cascade wiring
// between them. Deactivating any node takes its whole subtree down with
// it; reactivating brings back only the nodes the cascade took down.
type Module struct {
	Countries *repo.Collection[Country]
	States    *repo.Collection[State]
	Districts *repo.Collection[District]
	Cities    *repo.Collection[City]
	Areas     *repo.Collection[Area]

	engine *cascade.Engine
}

func NewModule(client *transport.Client, cache *resource.Cache, engine *cascade.Engine, log *zap.Logger) *Module {
	return &Module{
		Countries: repo.NewCollection[Country]("countries", client, cache, log),
		States:    repo.NewCollection[State]("states", client, cache, log),
		Districts: repo.NewCollection[District]("districts", client, cache, log),
		Cities:    repo.NewCollection[City]("cities", client, cache, log),
		Areas:     repo.NewCollection[Area]("areas", client, cache, log),
		engine:    engine,
	}
}

func (m *Module) LoadAll(ctx context.Context) {
	m.Countries.Load(ctx)
	m.States.Load(ctx)
	m.Districts.Load(ctx)
	m.Cities.Load(ctx)
	m.Areas.Load(ctx)
}

func (m *Module) stateLevel() cascade.Level {
	return cascade.LevelOf(m.States, func(s State) repo.ID { return repo.Canon(s.CountryID) })
}

func (m *Module) districtLevel() cascade.Level {
	return cascade.LevelOf(m.Districts, func(d District) repo.ID { return repo.Canon(d.StateID) })
}

func (m *Module) cityLevel() cascade.Level {
	return cascade.LevelOf(m.Cities, func(c City) repo.ID { return repo.Canon(c.DistrictID) })
}

func (m *Module) areaLevel() cascade.Level {
	return cascade.LevelOf(m.Areas, func(a Area) repo.ID { return repo.Canon(a.CityID) })
}

func (m *Module) ToggleCountry(ctx context.Context, c Country) (cascade.Outcome, error) {
	return m.engine.Toggle(ctx, cascade.Spec{
		EntityName: "Country",
		Root:       cascade.Node{ID: c.RecordID(), Status: c.Status},
		RootLevel:  cascade.RootLevelOf(m.Countries),
		Depths:     cascade.Chain(m.stateLevel(), m.districtLevel(), m.cityLevel(), m.areaLevel()),
	})
}

func (m *Module) ToggleState(ctx context.Context, s State) (cascade.Outcome, error) {
	return m.engine.Toggle(ctx, cascade.Spec{
		EntityName: "State",
		Root:       cascade.Node{ID: s.RecordID(), Status: s.Status},
		RootLevel:  m.stateLevel(),
		Depths:     cascade.Chain(m.districtLevel(), m.cityLevel(), m.areaLevel()),
	})
}

func (m *Module) ToggleDistrict(ctx context.Context, d District) (cascade.Outcome, error) {
	return m.engine.Toggle(ctx, cascade.Spec{
		EntityName: "District",
		Root:       cascade.Node{ID: d.RecordID(), Status: d.Status},
		RootLevel:  m.districtLevel(),
		Depths:     cascade.Chain(m.cityLevel(), m.areaLevel()),
	})
}

func (m *Module) ToggleCity(ctx context.Context, c City) (cascade.Outcome, error) {
	return m.engine.Toggle(ctx, cascade.Spec{
		EntityName: "City",
		Root:       cascade.Node{ID: c.RecordID(), Status: c.Status},
		RootLevel:  m.cityLevel(),
		Depths:     cascade.Chain(m.areaLevel()),
	})
}

func (m *Module) ToggleArea(ctx context.Context, a Area) (cascade.Outcome, error) {
	return m.engine.Toggle(ctx, cascade.Spec{
		EntityName: "Area",
		Root:       cascade.Node{ID: a.RecordID(), Status: a.Status},
		RootLevel:  m.areaLevel(),
	})
}
