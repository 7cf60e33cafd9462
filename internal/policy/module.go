package policy

import (
	"context"

	"go.uber.org/zap"

	"crm-master-api/internal/cascade"
	"crm-master-api/internal/repo"
	"crm-master-api/internal/resource"
	"crm-master-api/internal/transport"
)

type Module struct {
	Verticals *repo.Collection[BusinessVertical]
	Types     *repo.Collection[InsuranceType]
	SubTypes  *repo.Collection[InsuranceSubType]
	Flows     *repo.Collection[ProcessFlow]
	Fields    *repo.Collection[FieldDef]
	Documents *repo.Collection[DocumentReq]

	engine *cascade.Engine
}

func NewModule(client *transport.Client, cache *resource.Cache, engine *cascade.Engine, log *zap.Logger) *Module {
	return &Module{
		Verticals: repo.NewCollection[BusinessVertical]("businessVerticals", client, cache, log),
		Types:     repo.NewCollection[InsuranceType]("insuranceTypes", client, cache, log),
		SubTypes:  repo.NewCollection[InsuranceSubType]("insuranceSubTypes", client, cache, log),
		Flows:     repo.NewCollection[ProcessFlow]("processFlows", client, cache, log),
		Fields:    repo.NewCollection[FieldDef]("fields", client, cache, log),
		Documents: repo.NewCollection[DocumentReq]("documents", client, cache, log),
		engine:    engine,
	}
}

func (m *Module) LoadAll(ctx context.Context) {
	m.Verticals.Load(ctx)
	m.Types.Load(ctx)
	m.SubTypes.Load(ctx)
	m.Flows.Load(ctx)
	m.Fields.Load(ctx)
	m.Documents.Load(ctx)
}

func (m *Module) typeLevel() cascade.Level {
	return cascade.LevelOf(m.Types, func(t InsuranceType) repo.ID { return repo.Canon(t.BusinessVerticalID) })
}

func (m *Module) subTypeLevel() cascade.Level {
	return cascade.LevelOf(m.SubTypes, func(t InsuranceSubType) repo.ID { return repo.Canon(t.InsuranceTypeID) })
}

// leafDepth is the branching depth: process flows, fields and documents are
// all direct children of a sub type.
func (m *Module) leafDepth() []cascade.Level {
	return []cascade.Level{
		cascade.LevelOf(m.Flows, func(f ProcessFlow) repo.ID { return repo.Canon(f.InsuranceSubTypeID) }),
		cascade.LevelOf(m.Fields, func(f FieldDef) repo.ID { return repo.Canon(f.InsuranceSubTypeID) }),
		cascade.LevelOf(m.Documents, func(d DocumentReq) repo.ID { return repo.Canon(d.InsuranceSubTypeID) }),
	}
}

func (m *Module) ToggleVertical(ctx context.Context, v BusinessVertical) (cascade.Outcome, error) {
	return m.engine.Toggle(ctx, cascade.Spec{
		EntityName: "Business vertical",
		Root:       cascade.Node{ID: v.RecordID(), Status: v.Status},
		RootLevel:  cascade.RootLevelOf(m.Verticals),
		Depths: [][]cascade.Level{
			{m.typeLevel()},
			{m.subTypeLevel()},
			m.leafDepth(),
		},
	})
}

func (m *Module) ToggleType(ctx context.Context, t InsuranceType) (cascade.Outcome, error) {
	return m.engine.Toggle(ctx, cascade.Spec{
		EntityName: "Insurance type",
		Root:       cascade.Node{ID: t.RecordID(), Status: t.Status},
		RootLevel:  m.typeLevel(),
		Depths: [][]cascade.Level{
			{m.subTypeLevel()},
			m.leafDepth(),
		},
	})
}

func (m *Module) ToggleSubType(ctx context.Context, t InsuranceSubType) (cascade.Outcome, error) {
	return m.engine.Toggle(ctx, cascade.Spec{
		EntityName: "Insurance sub type",
		Root:       cascade.Node{ID: t.RecordID(), Status: t.Status},
		RootLevel:  m.subTypeLevel(),
		Depths:     [][]cascade.Level{m.leafDepth()},
	})
}

// DeleteDocument hard-deletes a document mapping; documents are the one
// leaf in this hierarchy the backend truly removes.
func (m *Module) DeleteDocument(ctx context.Context, id repo.ID) error {
	if err := m.Documents.Delete(ctx, id); err != nil {
		return err
	}
	m.Documents.Refetch(ctx)
	return nil
}
