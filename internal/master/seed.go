package master

import (
	"gorm.io/gorm"
)

// Seed loads a starter data set into an empty database. It is a no-op when
// the countries table already has rows, so it is safe to call on every boot.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Country{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	countries := []Country{
		{ID: 1, Name: "India", Code: "IN"},
		{ID: 2, Name: "United Arab Emirates", Code: "AE"},
	}
	states := []State{
		{ID: 1, CountryID: 1, Name: "Karnataka"},
		{ID: 2, CountryID: 1, Name: "Tamil Nadu"},
		{ID: 3, CountryID: 1, Name: "Maharashtra"},
	}
	districts := []District{
		{ID: 1, StateID: 1, CountryID: 1, Name: "Bengaluru Urban"},
		{ID: 2, StateID: 1, CountryID: 1, Name: "Mysuru"},
		{ID: 3, StateID: 2, CountryID: 1, Name: "Chennai"},
	}
	cities := []City{
		{ID: 1, DistrictID: 1, StateID: 1, CountryID: 1, Name: "Bengaluru"},
		{ID: 2, DistrictID: 3, StateID: 2, CountryID: 1, Name: "Chennai"},
	}
	areas := []Area{
		{ID: 1, CityID: 1, DistrictID: 1, StateID: 1, CountryID: 1, Name: "Indiranagar", PinCode: "560038"},
		{ID: 2, CityID: 1, DistrictID: 1, StateID: 1, CountryID: 1, Name: "Koramangala", PinCode: "560034"},
		{ID: 3, CityID: 2, DistrictID: 3, StateID: 2, CountryID: 1, Name: "T. Nagar", PinCode: "600017"},
	}

	verticals := []BusinessVertical{
		{ID: 1, Name: "Life"},
		{ID: 2, Name: "General"},
	}
	insuranceTypes := []InsuranceType{
		{ID: 1, BusinessVerticalID: 1, Name: "Term"},
		{ID: 2, BusinessVerticalID: 2, Name: "Motor"},
		{ID: 3, BusinessVerticalID: 2, Name: "Health"},
	}
	subTypes := []InsuranceSubType{
		{ID: 1, InsuranceTypeID: 2, BusinessVerticalID: 2, Name: "Private Car"},
		{ID: 2, InsuranceTypeID: 2, BusinessVerticalID: 2, Name: "Two Wheeler"},
		{ID: 3, InsuranceTypeID: 3, BusinessVerticalID: 2, Name: "Family Floater"},
	}
	flows := []ProcessFlow{
		{ID: 1, InsuranceSubTypeID: 1, Name: "Proposal", Sequence: 1},
		{ID: 2, InsuranceSubTypeID: 1, Name: "Inspection", Sequence: 2},
		{ID: 3, InsuranceSubTypeID: 1, Name: "Issuance", Sequence: 3},
	}
	fields := []FieldDef{
		{ID: 1, InsuranceSubTypeID: 1, Name: "Registration Number", InputType: "text", Required: true},
		{ID: 2, InsuranceSubTypeID: 1, Name: "Manufacturing Year", InputType: "number", Required: true},
	}
	documents := []DocumentReq{
		{ID: 1, InsuranceSubTypeID: 1, Name: "RC Book", Mandatory: true},
		{ID: 2, InsuranceSubTypeID: 1, Name: "Previous Policy", Mandatory: false},
	}

	years := []FinancialYear{
		{ID: 1, Name: "FY 2025-26", StartDate: "2025-04-01", EndDate: "2026-03-31"},
	}
	rules := []NumberingRule{
		{ID: 1, FinancialYearID: 1, DocumentType: "policy", Prefix: "POL", SequenceStart: 1000},
		{ID: 2, FinancialYearID: 1, DocumentType: "receipt", Prefix: "RCT", SequenceStart: 1},
	}

	categories := []CustomerCategory{
		{ID: 1, Name: "Retail", Code: "RET"},
		{ID: 2, Name: "Corporate", Code: "COR"},
	}
	subCategories := []CustomerSubCategory{
		{ID: 1, CategoryID: 1, Name: "Individual"},
		{ID: 2, CategoryID: 1, Name: "Family"},
		{ID: 3, CategoryID: 2, Name: "SME"},
	}

	sources := []LeadSource{
		{ID: 1, ParentID: 0, Name: "Referral"},
		{ID: 2, ParentID: 1, Name: "Employee"},
		{ID: 3, ParentID: 1, Name: "Partner"},
		{ID: 4, ParentID: 0, Name: "Digital"},
		{ID: 5, ParentID: 4, Name: "Website"},
	}

	roles := []Role{
		{ID: 1, Name: "Admin"},
		{ID: 2, Name: "User"},
	}
	permissions := []RolePermission{
		{ID: 1, RoleID: 1, Resource: "*", CanView: true, CanEdit: true},
		{ID: 2, RoleID: 2, Resource: "countries", CanView: true, CanEdit: false},
	}

	branches := []Branch{
		{ID: 1, AreaID: 1, Name: "Bengaluru HO", Code: "BLR01"},
	}
	companies := []Company{
		{ID: 1, Name: "Acme Insurance Brokers", Code: "ACME"},
	}

	batches := []any{
		countries, states, districts, cities, areas,
		verticals, insuranceTypes, subTypes, flows, fields, documents,
		years, rules, categories, subCategories, sources,
		roles, permissions, branches, companies,
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, rows := range batches {
			if err := tx.Create(rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
