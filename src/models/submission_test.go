package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestCoerceCount(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want Count
	}{
		{"plain integer", "7", 7},
		{"surrounding spaces", "  12 ", 12},
		{"empty string", "", 0},
		{"garbage", "abc", 0},
		{"mixed", "3 children", 0},
		{"float truncates", "4.9", 4},
		{"negative parses as-is", "-2", -2},
		{"zero", "0", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CoerceCount(tc.raw))
		})
	}
}

func TestCountJSON(t *testing.T) {
	t.Run("UnmarshalAcceptsStringsNumbersAndNull", func(t *testing.T) {
		var a Activity
		payload := `{
			"activity_type": "Awareness session",
			"sessions": "3",
			"iec_materials": 25,
			"girls_resident": "",
			"boys_resident": "oops",
			"women_resident": null,
			"men_resident": "5"
		}`
		require.NoError(t, json.Unmarshal([]byte(payload), &a))

		assert.Equal(t, Count(3), a.Sessions)
		assert.Equal(t, Count(25), a.IECMaterials)
		assert.Equal(t, Count(0), a.GirlsResident)
		assert.Equal(t, Count(0), a.BoysResident)
		assert.Equal(t, Count(0), a.WomenResident)
		assert.Equal(t, Count(5), a.MenResident)
	})

	t.Run("MarshalEmitsPlainNumbers", func(t *testing.T) {
		a := Activity{Sessions: 2, GirlsResident: 9}
		data, err := json.Marshal(a)
		require.NoError(t, err)

		assert.Contains(t, string(data), `"sessions":2`)
		assert.Contains(t, string(data), `"girls_resident":9`)
		assert.NotContains(t, string(data), `"sessions":"2"`)
	})
}

func TestCountBSON(t *testing.T) {
	t.Run("StringValuesCoerceOnRead", func(t *testing.T) {
		// legacy documents stored counters as the raw form text
		doc := bson.M{
			"activity_type":  "Back to School session",
			"sessions":       "4",
			"girls_resident": "not a number",
			"boys_resident":  int64(6),
			"women_resident": 2.0,
		}
		raw, err := bson.Marshal(doc)
		require.NoError(t, err)

		var a Activity
		require.NoError(t, bson.Unmarshal(raw, &a))

		assert.Equal(t, Count(4), a.Sessions)
		assert.Equal(t, Count(0), a.GirlsResident)
		assert.Equal(t, Count(6), a.BoysResident)
		assert.Equal(t, Count(2), a.WomenResident)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		in := Activity{ActivityType: "Referral", Sessions: 3, MenDisplaced: 11}
		raw, err := bson.Marshal(in)
		require.NoError(t, err)

		var out Activity
		require.NoError(t, bson.Unmarshal(raw, &out))
		assert.Equal(t, in, out)
	})
}

func TestTotalBeneficiaries(t *testing.T) {
	t.Run("SumsAllTwelveCounters", func(t *testing.T) {
		var a Activity
		for _, f := range BeneficiaryFields {
			*f.Field(&a) = 1
		}
		assert.Equal(t, Count(12), a.TotalBeneficiaries())
	})

	t.Run("IgnoresSessionsAndMaterials", func(t *testing.T) {
		a := Activity{Sessions: 5, IECMaterials: 40, GirlsResident: 3, MenReturnee: 2}
		assert.Equal(t, Count(5), a.TotalBeneficiaries())
	})

	t.Run("ZeroActivity", func(t *testing.T) {
		var a Activity
		assert.Equal(t, Count(0), a.TotalBeneficiaries())
	})
}

func TestCountFieldTables(t *testing.T) {
	assert.Len(t, BeneficiaryFields, 12)
	assert.Len(t, CountFields, 14)

	// every table entry reads and writes the same column on both shapes
	for _, f := range CountFields {
		var a Activity
		var r FlatRow
		*f.Field(&a) = 7
		*f.Row(&r) = 7
		assert.Equal(t, Count(7), *f.Field(&a), f.Name)
		assert.Equal(t, Count(7), *f.Row(&r), f.Name)
	}
}
