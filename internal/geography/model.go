package geography

import "crm-master-api/internal/repo"

// The geography tree is five levels deep. Records below the state level
// denormalize their full ancestor chain, so a city knows its district,
// state and country at once.

type Country struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Status int    `json:"status"`
}

func (c Country) RecordID() repo.ID { return repo.Canon(c.ID) }
func (c Country) RecordStatus() int { return c.Status }
func (c Country) WithStatus(s int) Country {
	c.Status = s
	return c
}

type State struct {
	ID        int    `json:"id"`
	CountryID int    `json:"country_id"`
	Name      string `json:"name"`
	Status    int    `json:"status"`
}

func (s State) RecordID() repo.ID { return repo.Canon(s.ID) }
func (s State) RecordStatus() int { return s.Status }
func (s State) WithStatus(v int) State {
	s.Status = v
	return s
}

type District struct {
	ID        int    `json:"id"`
	StateID   int    `json:"state_id"`
	CountryID int    `json:"country_id"`
	Name      string `json:"name"`
	Status    int    `json:"status"`
}

func (d District) RecordID() repo.ID { return repo.Canon(d.ID) }
func (d District) RecordStatus() int { return d.Status }
func (d District) WithStatus(v int) District {
	d.Status = v
	return d
}

// WithCountry changes the country and resets every foreign key below it.
func (d District) WithCountry(id int) District {
	d.CountryID = id
	d.StateID = 0
	return d
}

type City struct {
	ID         int    `json:"id"`
	DistrictID int    `json:"district_id"`
	StateID    int    `json:"state_id"`
	CountryID  int    `json:"country_id"`
	Name       string `json:"name"`
	Status     int    `json:"status"`
}

func (c City) RecordID() repo.ID { return repo.Canon(c.ID) }
func (c City) RecordStatus() int { return c.Status }
func (c City) WithStatus(v int) City {
	c.Status = v
	return c
}

func (c City) WithCountry(id int) City {
	c.CountryID = id
	c.StateID = 0
	c.DistrictID = 0
	return c
}

func (c City) WithState(id int) City {
	c.StateID = id
	c.DistrictID = 0
	return c
}

type Area struct {
	ID         int    `json:"id"`
	CityID     int    `json:"city_id"`
	DistrictID int    `json:"district_id"`
	StateID    int    `json:"state_id"`
	CountryID  int    `json:"country_id"`
	Name       string `json:"name"`
	PinCode    string `json:"pin_code"`
	Status     int    `json:"status"`
}

func (a Area) RecordID() repo.ID { return repo.Canon(a.ID) }
func (a Area) RecordStatus() int { return a.Status }
func (a Area) WithStatus(v int) Area {
	a.Status = v
	return a
}

func (a Area) WithCountry(id int) Area {
	a.CountryID = id
	a.StateID = 0
	a.DistrictID = 0
	a.CityID = 0
	return a
}

func (a Area) WithState(id int) Area {
	a.StateID = id
	a.DistrictID = 0
	a.CityID = 0
	return a
}

func (a Area) WithDistrict(id int) Area {
	a.DistrictID = id
	a.CityID = 0
	return a
}
