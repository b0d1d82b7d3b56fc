// Package resource describes the four per-hospital resource kinds and turns
// loosely keyed client payloads into validated rows.
package resource

import (
	"hospital-coordination-backend/internal/models"
)

type Kind string

const (
	Beds      Kind = "beds"
	Blood     Kind = "blood"
	Oxygen    Kind = "oxygen"
	Ambulance Kind = "ambulance"
)

// Kinds lists every kind in a stable order.
var Kinds = []Kind{Beds, Blood, Oxygen, Ambulance}

// Field is one canonical counter and the keys a client may send it under.
// Aliases are tried in order and the first non-null one wins.
type Field struct {
	Name    string
	Column  string
	Aliases []string
}

type Schema struct {
	Kind   Kind
	Fields []Field
	newRow func(hospitalID uint) models.ResourceRow
}

var schemas = map[Kind]Schema{
	Beds: {
		Kind: Beds,
		Fields: []Field{
			{Name: "ICU", Column: "icu", Aliases: []string{"ICU", "icu"}},
			{Name: "General", Column: "general", Aliases: []string{"General", "general"}},
			{Name: "Emergency", Column: "emergency", Aliases: []string{"Emergency", "emergency"}},
			{Name: "Maternity", Column: "maternity", Aliases: []string{"Maternity", "maternity"}},
			{Name: "Pediatric", Column: "pediatric", Aliases: []string{"Pediatric", "pediatric"}},
		},
		newRow: func(id uint) models.ResourceRow { return &models.BedInventory{HospitalID: id} },
	},
	Blood: {
		Kind: Blood,
		Fields: []Field{
			{Name: "A_Positive", Column: "a_positive", Aliases: []string{"A_Positive", "A+", "aPositive", "a_positive"}},
			{Name: "B_Positive", Column: "b_positive", Aliases: []string{"B_Positive", "B+", "bPositive", "b_positive"}},
			{Name: "O_Positive", Column: "o_positive", Aliases: []string{"O_Positive", "O+", "oPositive", "o_positive"}},
			{Name: "AB_Positive", Column: "ab_positive", Aliases: []string{"AB_Positive", "AB+", "abPositive", "ab_positive"}},
		},
		newRow: func(id uint) models.ResourceRow { return &models.BloodInventory{HospitalID: id} },
	},
	Oxygen: {
		Kind: Oxygen,
		Fields: []Field{
			{Name: "Oxygen Cylinders", Column: "oxygen_cylinders", Aliases: []string{"Oxygen Cylinders", "oxygenCylinders", "oxygen_cylinders"}},
			{Name: "Liquid Oxygen", Column: "liquid_oxygen", Aliases: []string{"Liquid Oxygen", "liquidOxygen", "liquid_oxygen"}},
		},
		newRow: func(id uint) models.ResourceRow { return &models.OxygenInventory{HospitalID: id} },
	},
	Ambulance: {
		Kind: Ambulance,
		Fields: []Field{
			{Name: "total", Column: "total", Aliases: []string{"Total", "total"}},
			{Name: "inOperation", Column: "in_operation", Aliases: []string{"In Operation", "inOperation", "in_operation"}},
			{Name: "underMaintenance", Column: "under_maintenance", Aliases: []string{"Under Maintenance", "underMaintenance", "under_maintenance"}},
		},
		newRow: func(id uint) models.ResourceRow { return &models.AmbulanceFleet{HospitalID: id} },
	},
}

// ParseKind accepts the path segment used in /hospital/{id}/{kind}.
func ParseKind(s string) (Kind, bool) {
	k := Kind(s)
	_, ok := schemas[k]
	return k, ok
}

// SchemaFor panics on an unknown kind; callers go through ParseKind first.
func SchemaFor(k Kind) Schema {
	s, ok := schemas[k]
	if !ok {
		panic("resource: unknown kind " + string(k))
	}
	return s
}

// NewRow returns an empty row of this kind bound to hospitalID.
func (s Schema) NewRow(hospitalID uint) models.ResourceRow {
	return s.newRow(hospitalID)
}

// Columns returns the counter column names in display order.
func (s Schema) Columns() []string {
	cols := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		cols[i] = f.Column
	}
	return cols
}
