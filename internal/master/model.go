package master

import (
	"time"
)

// Geography chain. Rows below the state level carry their whole ancestor
// chain so list screens never need a join.

type Country struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null;column:name" json:"name"`
	Code      string    `gorm:"size:16;column:code" json:"code"`
	Status    int       `gorm:"not null;default:1;column:status" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Country) TableName() string {
	return "countries"
}

type State struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	CountryID int       `gorm:"not null;column:country_id" json:"country_id"`
	Name      string    `gorm:"size:255;not null;column:name" json:"name"`
	Status    int       `gorm:"not null;default:1;column:status" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (State) TableName() string {
	return "states"
}

type District struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	StateID   int       `gorm:"not null;column:state_id" json:"state_id"`
	CountryID int       `gorm:"not null;column:country_id" json:"country_id"`
	Name      string    `gorm:"size:255;not null;column:name" json:"name"`
	Status    int       `gorm:"not null;default:1;column:status" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (District) TableName() string {
	return "districts"
}

type City struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DistrictID int       `gorm:"not null;column:district_id" json:"district_id"`
	StateID    int       `gorm:"not null;column:state_id" json:"state_id"`
	CountryID  int       `gorm:"not null;column:country_id" json:"country_id"`
	Name       string    `gorm:"size:255;not null;column:name" json:"name"`
	Status     int       `gorm:"not null;default:1;column:status" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (City) TableName() string {
	return "cities"
}

type Area struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	CityID     int       `gorm:"not null;column:city_id" json:"city_id"`
	DistrictID int       `gorm:"not null;column:district_id" json:"district_id"`
	StateID    int       `gorm:"not null;column:state_id" json:"state_id"`
	CountryID  int       `gorm:"not null;column:country_id" json:"country_id"`
	Name       string    `gorm:"size:255;not null;column:name" json:"name"`
	PinCode    string    `gorm:"size:16;column:pin_code" json:"pin_code"`
	Status     int       `gorm:"not null;default:1;column:status" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Area) TableName() string {
	return "areas"
}

// Policy configuration chain. Process flows, fields and document
// requirements are sibling leaves under an insurance sub type.

type BusinessVertical struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null;column:name" json:"name"`
	Status    int       `gorm:"not null;default:1;column:status" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (BusinessVertical) TableName() string {
	return "business_verticals"
}

type InsuranceType struct {
	ID                 int       `gorm:"primaryKey;autoIncrement" json:"id"`
	BusinessVerticalID int       `gorm:"not null;column:business_vertical_id" json:"business_vertical_id"`
	Name               string    `gorm:"size:255;not null;column:name" json:"name"`
	Status             int       `gorm:"not null;default:1;column:status" json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (InsuranceType) TableName() string {
	return "insurance_types"
}

type InsuranceSubType struct {
	ID                 int       `gorm:"primaryKey;autoIncrement" json:"id"`
	InsuranceTypeID    int       `gorm:"not null;column:insurance_type_id" json:"insurance_type_id"`
	BusinessVerticalID int       `gorm:"not null;column:business_vertical_id" json:"business_vertical_id"`
	Name               string    `gorm:"size:255;not null;column:name" json:"name"`
	Status             int       `gorm:"not null;default:1;column:status" json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (InsuranceSubType) TableName() string {
	return "insurance_sub_types"
}

type ProcessFlow struct {
	ID                 int       `gorm:"primaryKey;autoIncrement" json:"id"`
	InsuranceSubTypeID int       `gorm:"not null;column:insurance_sub_type_id" json:"insurance_sub_type_id"`
	Name               string    `gorm:"size:255;not null;column:name" json:"name"`
	Sequence           int       `gorm:"not null;default:0;column:sequence" json:"sequence"`
	Status             int       `gorm:"not null;default:1;column:status" json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (ProcessFlow) TableName() string {
	return "process_flows"
}

type FieldDef struct {
	ID                 int       `gorm:"primaryKey;autoIncrement" json:"id"`
	InsuranceSubTypeID int       `gorm:"not null;column:insurance_sub_type_id" json:"insurance_sub_type_id"`
	Name               string    `gorm:"size:255;not null;column:name" json:"name"`
	InputType          string    `gorm:"size:64;column:input_type" json:"input_type"`
	Required           bool      `gorm:"not null;default:false;column:required" json:"required"`
	Status             int       `gorm:"not null;default:1;column:status" json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (FieldDef) TableName() string {
	return "field_defs"
}

type DocumentReq struct {
	ID                 int       `gorm:"primaryKey;autoIncrement" json:"id"`
	InsuranceSubTypeID int       `gorm:"not null;column:insurance_sub_type_id" json:"insurance_sub_type_id"`
	Name               string    `gorm:"size:255;not null;column:name" json:"name"`
	Mandatory          bool      `gorm:"not null;default:false;column:mandatory" json:"mandatory"`
	Status             int       `gorm:"not null;default:1;column:status" json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (DocumentReq) TableName() string {
	return "document_reqs"
}

type FinancialYear struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:64;not null;column:name" json:"name"`
	StartDate string    `gorm:"size:10;not null;column:start_date" json:"start_date"`
	EndDate   string    `gorm:"size:10;not null;column:end_date" json:"end_date"`
	Status    int       `gorm:"not null;default:1;column:status" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (FinancialYear) TableName() string {
	return "financial_years"
}

type NumberingRule struct {
	ID              int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FinancialYearID int       `gorm:"not null;column:financial_year_id" json:"financial_year_id"`
	DocumentType    string    `gorm:"size:64;not null;column:document_type" json:"document_type"`
	Prefix          string    `gorm:"size:32;column:prefix" json:"prefix"`
	SequenceStart   int       `gorm:"not null;default:1;column:sequence_start" json:"sequence_start"`
	Status          int       `gorm:"not null;default:1;column:status" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (NumberingRule) TableName() string {
	return "numbering_rules"
}

type CustomerCategory struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null;column:name" json:"name"`
	Code      string    `gorm:"size:32;column:code" json:"code"`
	Status    int       `gorm:"not null;default:1;column:status" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CustomerCategory) TableName() string {
	return "customer_categories"
}

type CustomerSubCategory struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID int       `gorm:"not null;column:category_id" json:"category_id"`
	Name       string    `gorm:"size:255;not null;column:name" json:"name"`
	Status     int       `gorm:"not null;default:1;column:status" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (CustomerSubCategory) TableName() string {
	return "customer_sub_categories"
}

// LeadSource nests into itself; a root row has parent_id 0.
type LeadSource struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	ParentID  int       `gorm:"not null;default:0;column:parent_id" json:"parent_id"`
	Name      string    `gorm:"size:255;not null;column:name" json:"name"`
	Status    int       `gorm:"not null;default:1;column:status" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (LeadSource) TableName() string {
	return "lead_sources"
}

type Role struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:64;not null;uniqueIndex;column:name" json:"name"`
	Status    int       `gorm:"not null;default:1;column:status" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Role) TableName() string {
	return "roles"
}

type RolePermission struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleID    int       `gorm:"not null;column:role_id" json:"role_id"`
	Resource  string    `gorm:"size:64;not null;column:resource" json:"resource"`
	CanView   bool      `gorm:"not null;default:false;column:can_view" json:"can_view"`
	CanEdit   bool      `gorm:"not null;default:false;column:can_edit" json:"can_edit"`
	Status    int       `gorm:"not null;default:1;column:status" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}

type Branch struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	AreaID    int       `gorm:"not null;default:0;column:area_id" json:"area_id"`
	Name      string    `gorm:"size:255;not null;column:name" json:"name"`
	Code      string    `gorm:"size:32;column:code" json:"code"`
	Status    int       `gorm:"not null;default:1;column:status" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Branch) TableName() string {
	return "branches"
}

type Company struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null;column:name" json:"name"`
	Code      string    `gorm:"size:32;column:code" json:"code"`
	Status    int       `gorm:"not null;default:1;column:status" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Company) TableName() string {
	return "companies"
}
