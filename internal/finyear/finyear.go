package finyear

import (
	"context"
	"time"

	"go.uber.org/zap"

	"crm-master-api/internal/cascade"
	"crm-master-api/internal/repo"
	"crm-master-api/internal/resource"
	"crm-master-api/internal/transport"
)

const dateLayout = "2006-01-02"

// FinancialYear is the numbering root: deactivating a year takes its
// numbering rules down with it so no document sequence keeps running
// against a closed year.
type FinancialYear struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    int    `json:"status"`
}

func (y FinancialYear) RecordID() repo.ID { return repo.Canon(y.ID) }
func (y FinancialYear) RecordStatus() int { return y.Status }
func (y FinancialYear) WithStatus(s int) FinancialYear {
	y.Status = s
	return y
}

type NumberingRule struct {
	ID              int    `json:"id"`
	FinancialYearID int    `json:"financial_year_id"`
	DocumentType    string `json:"document_type"`
	Prefix          string `json:"prefix"`
	SequenceStart   int    `json:"sequence_start"`
	Status          int    `json:"status"`
}

func (r NumberingRule) RecordID() repo.ID { return repo.Canon(r.ID) }
func (r NumberingRule) RecordStatus() int { return r.Status }
func (r NumberingRule) WithStatus(s int) NumberingRule {
	r.Status = s
	return r
}

// ValidateYear is the draft validator wired into the financial-year edit
// form.
func ValidateYear(y FinancialYear) string {
	if y.Name == "" {
		return "Name is required"
	}
	start, err := time.Parse(dateLayout, y.StartDate)
	if err != nil {
		return "Start date must be YYYY-MM-DD"
	}
	end, err := time.Parse(dateLayout, y.EndDate)
	if err != nil {
		return "End date must be YYYY-MM-DD"
	}
	if !end.After(start) {
		return "End date must be after start date"
	}
	return ""
}

type Module struct {
	Years *repo.Collection[FinancialYear]
	Rules *repo.Collection[NumberingRule]

	engine *cascade.Engine
}

func NewModule(client *transport.Client, cache *resource.Cache, engine *cascade.Engine, log *zap.Logger) *Module {
	return &Module{
		Years:  repo.NewCollection[FinancialYear]("financialYears", client, cache, log),
		Rules:  repo.NewCollection[NumberingRule]("numberingRules", client, cache, log),
		engine: engine,
	}
}

func (m *Module) LoadAll(ctx context.Context) {
	m.Years.Load(ctx)
	m.Rules.Load(ctx)
}

func (m *Module) ToggleYear(ctx context.Context, y FinancialYear) (cascade.Outcome, error) {
	return m.engine.Toggle(ctx, cascade.Spec{
		EntityName: "Financial year",
		Root:       cascade.Node{ID: y.RecordID(), Status: y.Status},
		RootLevel:  cascade.RootLevelOf(m.Years),
		Depths: cascade.Chain(
			cascade.LevelOf(m.Rules, func(r NumberingRule) repo.ID { return repo.Canon(r.FinancialYearID) }),
		),
	})
}
