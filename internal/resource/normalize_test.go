package resource

import (
	"bytes"
	"encoding/json"
	"testing"

	"hospital-coordination-backend/internal/apperr"
	"hospital-coordination-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string) map[string]any {
	t.Helper()
	dec := json.NewDecoder(bytes.NewBufferString(body))
	dec.UseNumber()
	var m map[string]any
	require.NoError(t, dec.Decode(&m))
	return m
}

func TestNormalize_CanonicalKeys(t *testing.T) {
	row, err := SchemaFor(Oxygen).Normalize(42, decode(t, `{"Oxygen Cylinders": 12, "Liquid Oxygen": 3}`))
	require.NoError(t, err)

	oxygen := row.(*models.OxygenInventory)
	assert.Equal(t, uint(42), oxygen.HospitalID)
	assert.Equal(t, 12, oxygen.OxygenCylinders)
	assert.Equal(t, 3, oxygen.LiquidOxygen)
}

func TestNormalize_AliasPrecedence(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		body string
		want []int
	}{
		{"blood primary beats symbol", Blood, `{"A_Positive": 5, "A+": 9, "aPositive": 1}`, []int{5, 0, 0, 0}},
		{"blood symbol beats camel", Blood, `{"A+": 9, "aPositive": 1, "a_positive": 2}`, []int{9, 0, 0, 0}},
		{"blood snake only", Blood, `{"ab_positive": 7}`, []int{0, 0, 0, 7}},
		{"null falls through", Blood, `{"A_Positive": null, "aPositive": 4}`, []int{4, 0, 0, 0}},
		{"beds mixed case", Beds, `{"ICU": 3, "icu": 8, "general": 10}`, []int{3, 10, 0, 0, 0}},
		{"oxygen camel", Oxygen, `{"oxygenCylinders": 6, "liquid_oxygen": 2}`, []int{6, 2}},
		{"ambulance labels", Ambulance, `{"Total": 10, "In Operation": 7, "under_maintenance": 3}`, []int{10, 7, 3}},
		{"unknown keys ignored", Ambulance, `{"total": 1, "drivers": 99}`, []int{1, 0, 0}},
		{"empty object zeroes", Beds, `{}`, []int{0, 0, 0, 0, 0}},
		{"whole float accepted", Oxygen, `{"Oxygen Cylinders": 12.0, "Liquid Oxygen": 1e2}`, []int{12, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := SchemaFor(tt.kind).Normalize(1, decode(t, tt.body))
			require.NoError(t, err)

			got := []int{}
			for _, c := range row.Counters() {
				got = append(got, *c)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		body  string
		field string
	}{
		{"negative", Blood, `{"A_Positive": -1}`, "A_Positive"},
		{"string", Beds, `{"ICU": "5"}`, "ICU"},
		{"bool", Ambulance, `{"total": true}`, "total"},
		{"fraction", Oxygen, `{"Liquid Oxygen": 2.5}`, "Liquid Oxygen"},
		{"array", Beds, `{"General": [1]}`, "General"},
		{"too large", Ambulance, `{"inOperation": 2147483648}`, "inOperation"},
		{"negative via alias", Blood, `{"o_positive": -3}`, "O_Positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SchemaFor(tt.kind).Normalize(1, decode(t, tt.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, apperr.ErrInvalidInput)

			var fe *apperr.FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestNormalize_AcceptsUpperBound(t *testing.T) {
	row, err := SchemaFor(Beds).Normalize(1, decode(t, `{"ICU": 2147483647}`))
	require.NoError(t, err)
	assert.Equal(t, 2147483647, row.(*models.BedInventory).ICU)
}

func TestRowJSON_CanonicalOrder(t *testing.T) {
	for _, kind := range Kinds {
		t.Run(string(kind), func(t *testing.T) {
			schema := SchemaFor(kind)
			row := schema.NewRow(7)
			require.Len(t, row.Counters(), len(schema.Fields))

			raw, err := json.Marshal(row)
			require.NoError(t, err)

			dec := json.NewDecoder(bytes.NewReader(raw))
			_, err = dec.Token() // {
			require.NoError(t, err)
			var keys []string
			for dec.More() {
				tok, err := dec.Token()
				require.NoError(t, err)
				keys = append(keys, tok.(string))
				var skip json.RawMessage
				require.NoError(t, dec.Decode(&skip))
			}

			var want []string
			for _, f := range schema.Fields {
				want = append(want, f.Name)
			}
			assert.Equal(t, want, keys)
		})
	}
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("oxygen")
	assert.True(t, ok)
	assert.Equal(t, Oxygen, k)

	_, ok = ParseKind("doctors")
	assert.False(t, ok)
}

func TestNormalize_OutOfRangeReasons(t *testing.T) {
	tests := []struct {
		body   string
		reason string
	}{
		{`{"ICU": -99999999999999999999}`, "must be >= 0"},
		{`{"ICU": -2147483649}`, "must be >= 0"},
		{`{"ICU": -1e12}`, "must be >= 0"},
		{`{"ICU": 99999999999999999999}`, "must be <= 2147483647"},
		{`{"ICU": 1e12}`, "must be <= 2147483647"},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			_, err := SchemaFor(Beds).Normalize(1, decode(t, tt.body))
			var fe *apperr.FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, "ICU", fe.Field)
			assert.Equal(t, tt.reason, fe.Reason)
		})
	}
}
