// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package incident

// A Field is an Incident field a source column can be read into.
type Field int

const (
	FieldID Field = iota
	FieldState
	FieldStateCode
	FieldCounty
	FieldCountyName
	FieldDate
	FieldYear
	FieldVictimsKilled
	FieldVictimsInjured
	FieldSuspectsKilled
	FieldSuspectsInjured
	FieldSuspectsArrested
	FieldPopulation
	FieldStateShootings
	FieldStateRate
)

// Column maps one header name of a source to a Field.
type Column struct {
	Name     string
	Field    Field
	Required bool
}

// Schema describes the header of one source table.
type Schema struct {
	// Source names the table in errors and corrections.
	Source string

	Columns []Column

	// Key is the field that places a row in a group. Rows with an
	// empty Key cell are skipped. If Key is NoKey, every row is read.
	Key Field
}

// NoKey is the Key of a schema whose rows are all read, whether or not
// they can be grouped.
const NoKey Field = -1

// Source names.
const (
	Shootings = "shootings"
	Counties  = "counties"
	Schools   = "schools"
	Crimes    = "crimes"
)

// ShootingsSchema is the incident table annotated with per-state
// totals and rates.
var ShootingsSchema = Schema{
	Source: Shootings,
	Key:    FieldCounty,
	Columns: []Column{
		{"State", FieldState, true},
		{"FIPS", FieldCounty, true},
		{"Population per State", FieldPopulation, true},
		{"Shootings Per State", FieldStateShootings, true},
		{"Shootings per 100k Citizens", FieldStateRate, true},
		{"Incident Date", FieldDate, true},
		{"Incident ID", FieldID, false},
		{"Victims Killed", FieldVictimsKilled, false},
		{"Victims Injured", FieldVictimsInjured, false},
	},
}

// CountiesSchema is the incident table annotated with county names
// and county populations. Rows without a county code still count
// toward their year.
var CountiesSchema = Schema{
	Source: Counties,
	Key:    NoKey,
	Columns: []Column{
		{"State", FieldState, true},
		{"County Name", FieldCountyName, true},
		{"County FIPS", FieldCounty, true},
		{"population", FieldPopulation, true},
		{"Incident Year", FieldYear, true},
		{"Suspects Killed", FieldSuspectsKilled, true},
		{"Suspects Injured", FieldSuspectsInjured, true},
		{"Incident ID", FieldID, false},
		{"Incident Date", FieldDate, false},
		{"Victims Killed", FieldVictimsKilled, false},
		{"Victims Injured", FieldVictimsInjured, false},
	},
}

// SchoolsSchema is the school incident table, keyed by state code.
var SchoolsSchema = Schema{
	Source: Schools,
	Key:    FieldStateCode,
	Columns: []Column{
		{"FIPS", FieldStateCode, true},
		{"State", FieldState, false},
		{"Date", FieldDate, false},
	},
}

// CrimesSchema is the mass shooting table with state populations.
var CrimesSchema = Schema{
	Source: Crimes,
	Key:    FieldStateCode,
	Columns: []Column{
		{"FIPS_State", FieldStateCode, true},
		{"State", FieldState, true},
		{"population", FieldPopulation, true},
		{"Incident ID", FieldID, false},
		{"Incident Date", FieldDate, false},
		{"Incident Year", FieldYear, false},
		{"Victims Killed", FieldVictimsKilled, false},
		{"Victims Injured", FieldVictimsInjured, false},
		{"Suspects Killed", FieldSuspectsKilled, false},
		{"Suspects Injured", FieldSuspectsInjured, false},
		{"Suspects Arrested", FieldSuspectsArrested, false},
	},
}

// Schemas maps source names to their schemas.
var Schemas = map[string]Schema{
	Shootings: ShootingsSchema,
	Counties:  CountiesSchema,
	Schools:   SchoolsSchema,
	Crimes:    CrimesSchema,
}
