package policy

import "crm-master-api/internal/repo"

// Policy configuration is up to four levels deep: a business vertical owns
// insurance types, which own sub types; a sub type fans out into process
// flows, form fields and required documents.

type BusinessVertical struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Status int    `json:"status"`
}

func (v BusinessVertical) RecordID() repo.ID { return repo.Canon(v.ID) }
func (v BusinessVertical) RecordStatus() int { return v.Status }
func (v BusinessVertical) WithStatus(s int) BusinessVertical {
	v.Status = s
	return v
}

type InsuranceType struct {
	ID                 int    `json:"id"`
	BusinessVerticalID int    `json:"business_vertical_id"`
	Name               string `json:"name"`
	Status             int    `json:"status"`
}

func (t InsuranceType) RecordID() repo.ID { return repo.Canon(t.ID) }
func (t InsuranceType) RecordStatus() int { return t.Status }
func (t InsuranceType) WithStatus(s int) InsuranceType {
	t.Status = s
	return t
}

type InsuranceSubType struct {
	ID                 int    `json:"id"`
	InsuranceTypeID    int    `json:"insurance_type_id"`
	BusinessVerticalID int    `json:"business_vertical_id"`
	Name               string `json:"name"`
	Status             int    `json:"status"`
}

func (t InsuranceSubType) RecordID() repo.ID { return repo.Canon(t.ID) }
func (t InsuranceSubType) RecordStatus() int { return t.Status }
func (t InsuranceSubType) WithStatus(s int) InsuranceSubType {
	t.Status = s
	return t
}

// WithVertical changes the vertical and resets the type key below it.
func (t InsuranceSubType) WithVertical(id int) InsuranceSubType {
	t.BusinessVerticalID = id
	t.InsuranceTypeID = 0
	return t
}

type ProcessFlow struct {
	ID                 int    `json:"id"`
	InsuranceSubTypeID int    `json:"insurance_sub_type_id"`
	Name               string `json:"name"`
	Sequence           int    `json:"sequence"`
	Status             int    `json:"status"`
}

func (f ProcessFlow) RecordID() repo.ID { return repo.Canon(f.ID) }
func (f ProcessFlow) RecordStatus() int { return f.Status }
func (f ProcessFlow) WithStatus(s int) ProcessFlow {
	f.Status = s
	return f
}

type FieldDef struct {
	ID                 int    `json:"id"`
	InsuranceSubTypeID int    `json:"insurance_sub_type_id"`
	Name               string `json:"name"`
	InputType          string `json:"input_type"`
	Required           bool   `json:"required"`
	Status             int    `json:"status"`
}

func (f FieldDef) RecordID() repo.ID { return repo.Canon(f.ID) }
func (f FieldDef) RecordStatus() int { return f.Status }
func (f FieldDef) WithStatus(s int) FieldDef {
	f.Status = s
	return f
}

// DocumentReq maps a required document onto a sub type. Unlike the rest of
// the hierarchy these are hard-deleted, not soft-disabled.
type DocumentReq struct {
	ID                 int    `json:"id"`
	InsuranceSubTypeID int    `json:"insurance_sub_type_id"`
	Name               string `json:"name"`
	Mandatory          bool   `json:"mandatory"`
	Status             int    `json:"status"`
}

func (d DocumentReq) RecordID() repo.ID { return repo.Canon(d.ID) }
func (d DocumentReq) RecordStatus() int { return d.Status }
func (d DocumentReq) WithStatus(s int) DocumentReq {
	d.Status = s
	return d
}
