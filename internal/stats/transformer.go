// Covid Tracker - Epidemiological Statistics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/covidtracker

package stats

import (
	"cmp"
	"math"
	"math/big"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/tomtom215/covidtracker/internal/models"
)

// absentStat is what FormatStat returns for nil, NaN, Inf and non-numeric input.
const absentStat = "0"

// SortByField returns a new slice ordered by field, largest first.
//
// The sort is stable so records with equal values keep their input order.
// A nil count reads as 0, which places it after every positive value. An
// unknown field reads as 0 for every record, so the copy keeps input order.
// The input slice is never modified.
func SortByField(records []models.CountryStat, field models.StatField) []models.CountryStat {
	sorted := make([]models.CountryStat, len(records))
	copy(sorted, records)

	slices.SortStableFunc(sorted, func(a, b models.CountryStat) int {
		return cmp.Compare(b.Value(field), a.Value(field))
	})
	return sorted
}

// IsSortField reports whether name is a count field SortByField understands.
func IsSortField(name string) bool {
	return slices.Contains(models.StatFields, models.StatField(name))
}

// FormatStat renders a count as a grouped integer string: 1234567 becomes
// "1,234,567" and -5 stays "-5".
//
// value may be any integer or float kind, a pointer to one, or a numeric
// string. nil pointers, NaN and Inf are treated as absent and render as "0".
// Fractions are rounded half away from zero. FormatStat never panics.
func FormatStat(value any) string {
	if value == nil {
		return absentStat
	}

	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return absentStat
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return humanize.Comma(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > math.MaxInt64 {
			return humanize.BigComma(new(big.Int).SetUint64(u))
		}
		return humanize.Comma(int64(u))
	case reflect.Float32, reflect.Float64:
		return formatFloat(v.Float())
	case reflect.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.String()), 64)
		if err != nil {
			return absentStat
		}
		return formatFloat(f)
	default:
		return absentStat
	}
}

// formatFloat rounds f and groups it, switching to big.Int outside the int64 range.
func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return absentStat
	}

	r := math.Round(f)
	if r >= math.MinInt64 && r < math.MaxInt64 {
		return humanize.Comma(int64(r))
	}

	i, _ := big.NewFloat(r).Int(nil)
	return humanize.BigComma(i)
}

// DropdownOptions builds the country selector: the synthetic worldwide option
// followed by one {country, iso2} entry per record, in input order.
func DropdownOptions(countries []models.CountryStat) []models.DropdownOption {
	options := make([]models.DropdownOption, 0, len(countries)+1)
	options = append(options, models.WorldwideOption())

	for i := range countries {
		options = append(options, models.DropdownOption{
			DisplayName: countries[i].Country,
			Code:        countries[i].CountryInfo.ISO2,
		})
	}
	return options
}
