package master

// Resource describes one master-data collection exposed over the generic
// CRUD routes. Model and Slice are factories so the service never shares
// a value between requests; Filterable maps a query parameter to the
// column it filters on.
type Resource struct {
	Name       string
	Model      func() any
	Slice      func() any
	Filterable map[string]string
}

// Registry returns every resource the server exposes, keyed by the path
// segment the client uses.
func Registry() map[string]Resource {
	list := []Resource{
		{
			Name:  "countries",
			Model: func() any { return &Country{} },
			Slice: func() any { return &[]Country{} },
		},
		{
			Name:       "states",
			Model:      func() any { return &State{} },
			Slice:      func() any { return &[]State{} },
			Filterable: map[string]string{"country_id": "country_id"},
		},
		{
			Name:  "districts",
			Model: func() any { return &District{} },
			Slice: func() any { return &[]District{} },
			Filterable: map[string]string{
				"state_id":   "state_id",
				"country_id": "country_id",
			},
		},
		{
			Name:  "cities",
			Model: func() any { return &City{} },
			Slice: func() any { return &[]City{} },
			Filterable: map[string]string{
				"district_id": "district_id",
				"state_id":    "state_id",
				"country_id":  "country_id",
			},
		},
		{
			Name:  "areas",
			Model: func() any { return &Area{} },
			Slice: func() any { return &[]Area{} },
			Filterable: map[string]string{
				"city_id":     "city_id",
				"district_id": "district_id",
				"state_id":    "state_id",
				"country_id":  "country_id",
			},
		},
		{
			Name:  "businessVerticals",
			Model: func() any { return &BusinessVertical{} },
			Slice: func() any { return &[]BusinessVertical{} },
		},
		{
			Name:       "insuranceTypes",
			Model:      func() any { return &InsuranceType{} },
			Slice:      func() any { return &[]InsuranceType{} },
			Filterable: map[string]string{"business_vertical_id": "business_vertical_id"},
		},
		{
			Name:  "insuranceSubTypes",
			Model: func() any { return &InsuranceSubType{} },
			Slice: func() any { return &[]InsuranceSubType{} },
			Filterable: map[string]string{
				"insurance_type_id":    "insurance_type_id",
				"business_vertical_id": "business_vertical_id",
			},
		},
		{
			Name:       "processFlows",
			Model:      func() any { return &ProcessFlow{} },
			Slice:      func() any { return &[]ProcessFlow{} },
			Filterable: map[string]string{"insurance_sub_type_id": "insurance_sub_type_id"},
		},
		{
			Name:       "fields",
			Model:      func() any { return &FieldDef{} },
			Slice:      func() any { return &[]FieldDef{} },
			Filterable: map[string]string{"insurance_sub_type_id": "insurance_sub_type_id"},
		},
		{
			Name:       "documents",
			Model:      func() any { return &DocumentReq{} },
			Slice:      func() any { return &[]DocumentReq{} },
			Filterable: map[string]string{"insurance_sub_type_id": "insurance_sub_type_id"},
		},
		{
			Name:  "financialYears",
			Model: func() any { return &FinancialYear{} },
			Slice: func() any { return &[]FinancialYear{} },
		},
		{
			Name:       "numberingRules",
			Model:      func() any { return &NumberingRule{} },
			Slice:      func() any { return &[]NumberingRule{} },
			Filterable: map[string]string{"financial_year_id": "financial_year_id"},
		},
		{
			Name:  "customerCategories",
			Model: func() any { return &CustomerCategory{} },
			Slice: func() any { return &[]CustomerCategory{} },
		},
		{
			Name:       "customerSubCategories",
			Model:      func() any { return &CustomerSubCategory{} },
			Slice:      func() any { return &[]CustomerSubCategory{} },
			Filterable: map[string]string{"category_id": "category_id"},
		},
		{
			Name:       "leadSources",
			Model:      func() any { return &LeadSource{} },
			Slice:      func() any { return &[]LeadSource{} },
			Filterable: map[string]string{"parent_id": "parent_id"},
		},
		{
			Name:  "roles",
			Model: func() any { return &Role{} },
			Slice: func() any { return &[]Role{} },
		},
		{
			Name:       "rolePermissions",
			Model:      func() any { return &RolePermission{} },
			Slice:      func() any { return &[]RolePermission{} },
			Filterable: map[string]string{"role_id": "role_id"},
		},
		{
			Name:       "branches",
			Model:      func() any { return &Branch{} },
			Slice:      func() any { return &[]Branch{} },
			Filterable: map[string]string{"area_id": "area_id"},
		},
		{
			Name:  "companies",
			Model: func() any { return &Company{} },
			Slice: func() any { return &[]Company{} },
		},
	}

	out := make(map[string]Resource, len(list))
	for _, r := range list {
		out[r.Name] = r
	}
	return out
}

// AllModels feeds AutoMigrate.
func AllModels() []any {
	return []any{
		&Country{}, &State{}, &District{}, &City{}, &Area{},
		&BusinessVertical{}, &InsuranceType{}, &InsuranceSubType{},
		&ProcessFlow{}, &FieldDef{}, &DocumentReq{},
		&FinancialYear{}, &NumberingRule{},
		&CustomerCategory{}, &CustomerSubCategory{},
		&LeadSource{},
		&Role{}, &RolePermission{},
		&Branch{}, &Company{},
	}
}
