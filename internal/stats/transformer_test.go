// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package stats

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/covidtracker/internal/models"
)

func country(name, iso2 string, cases *int64) models.CountryStat {
	return models.CountryStat{
		Country:     name,
		CountryInfo: models.CountryInfo{ISO2: iso2},
		Counts:      models.Counts{Cases: cases},
	}
}

func names(records []models.CountryStat) []string {
	out := make([]string, len(records))
	for i := range records {
		out[i] = records[i].Country
	}
	return out
}

func TestSortByField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []models.CountryStat
		field models.StatField
		want  []string
	}{
		{
			name: "descending by cases",
			input: []models.CountryStat{
				country("A", "AA", models.Int64(10)),
				country("B", "BB", models.Int64(30)),
				country("C", "CC", models.Int64(20)),
			},
			field: models.FieldCases,
			want:  []string{"B", "C", "A"},
		},
		{
			name: "ties keep input order",
			input: []models.CountryStat{
				country("A", "AA", models.Int64(5)),
				country("B", "BB", models.Int64(5)),
			},
			field: models.FieldCases,
			want:  []string{"A", "B"},
		},
		{
			name: "missing field sorts after positives",
			input: []models.CountryStat{
				country("A", "AA", nil),
				country("B", "BB", models.Int64(1)),
			},
			field: models.FieldCases,
			want:  []string{"B", "A"},
		},
		{
			name: "unknown field keeps input order",
			input: []models.CountryStat{
				country("A", "AA", models.Int64(1)),
				country("B", "BB", models.Int64(9)),
				country("C", "CC", models.Int64(5)),
			},
			field: models.StatField("nope"),
			want:  []string{"A", "B", "C"},
		},
		{
			name:  "empty input",
			input: []models.CountryStat{},
			field: models.FieldCases,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SortByField(tt.input, tt.field)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestSortByFieldDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	input := []models.CountryStat{
		country("A", "AA", models.Int64(1)),
		country("B", "BB", models.Int64(3)),
		country("C", "CC", models.Int64(2)),
	}
	before := slices.Clone(names(input))

	sorted := SortByField(input, models.FieldCases)
	require.Len(t, sorted, 3)

	assert.Equal(t, before, names(input))
	sorted[0].Country = "changed"
	assert.Equal(t, "A", input[0].Country, "result must not alias input")
}

func TestSortByFieldNilInput(t *testing.T) {
	t.Parallel()

	got := SortByField(nil, models.FieldCases)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSortByFieldProperties(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	for round := 0; round < 50; round++ {
		n := r.IntN(40)
		input := make([]models.CountryStat, n)
		for i := range input {
			var cases *int64
			if r.IntN(5) > 0 {
				cases = models.Int64(int64(r.IntN(10)))
			}
			input[i] = country(string(rune('a'+i%26))+string(rune('0'+i/26)), "", cases)
		}

		once := SortByField(input, models.FieldCases)
		twice := SortByField(once, models.FieldCases)

		require.Len(t, once, n)
		assert.ElementsMatch(t, names(input), names(once), "result must be a permutation of the input")
		assert.Equal(t, names(once), names(twice), "sorting must be idempotent")

		pos := make(map[string]int, n)
		for i := range input {
			pos[input[i].Country] = i
		}
		for i := 1; i < len(once); i++ {
			prev, cur := once[i-1].Value(models.FieldCases), once[i].Value(models.FieldCases)
			assert.GreaterOrEqual(t, prev, cur)
			if prev == cur {
				assert.Less(t, pos[once[i-1].Country], pos[once[i].Country],
					"equal values keep input order: %s before %s", once[i-1].Country, once[i].Country)
			}
		}
	}
}

func TestIsSortField(t *testing.T) {
	t.Parallel()

	assert.True(t, IsSortField("cases"))
	assert.True(t, IsSortField("todayDeaths"))
	assert.False(t, IsSortField("Cases"))
	assert.False(t, IsSortField(""))
}

func TestFormatStat(t *testing.T) {
	t.Parallel()

	var nilPtr *int64
	var nilFloat *float64

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"millions", 1234567, "1,234,567"},
		{"below grouping", 999, "999"},
		{"negative", -5, "-5"},
		{"negative grouped", int64(-1234567), "-1,234,567"},
		{"zero", 0, "0"},
		{"nil", nil, "0"},
		{"nil pointer", nilPtr, "0"},
		{"nil float pointer", nilFloat, "0"},
		{"pointer", models.Int64(1000), "1,000"},
		{"NaN", math.NaN(), "0"},
		{"positive inf", math.Inf(1), "0"},
		{"negative inf", math.Inf(-1), "0"},
		{"float rounds half away from zero", 2.5, "3"},
		{"negative float rounds away", -2.5, "-3"},
		{"float grouped", 1234567.4, "1,234,567"},
		{"float32", float32(1000), "1,000"},
		{"uint8", uint8(255), "255"},
		{"max uint64", uint64(math.MaxUint64), "18,446,744,073,709,551,615"},
		{"min int64", int64(math.MinInt64), "-9,223,372,036,854,775,808"},
		{"huge float", 1e20, "100,000,000,000,000,000,000"},
		{"numeric string", "12345", "12,345"},
		{"garbage string", "abc", "0"},
		{"bool", true, "0"},
		{"struct", struct{}{}, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatStat(tt.input))
		})
	}
}

func TestFormatStatNeverPanics(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 1000; i++ {
		f := math.Float64frombits(r.Uint64())
		assert.NotPanics(t, func() { _ = FormatStat(f) })
		assert.NotPanics(t, func() { _ = FormatStat(r.Int64() - r.Int64()) })
	}
}

func TestDropdownOptions(t *testing.T) {
	t.Parallel()

	input := []models.CountryStat{
		country("Afghanistan", "AF", nil),
		country("Albania", "AL", nil),
	}

	got := DropdownOptions(input)

	require.Len(t, got, 3)
	assert.Equal(t, models.DropdownOption{DisplayName: "Worldwide", Code: "worldwide"}, got[0])
	assert.Equal(t, models.DropdownOption{DisplayName: "Afghanistan", Code: "AF"}, got[1])
	assert.Equal(t, models.DropdownOption{DisplayName: "Albania", Code: "AL"}, got[2])

	empty := DropdownOptions(nil)
	require.Len(t, empty, 1)
	assert.Equal(t, models.WorldwideCode, empty[0].Code)
}
