// Package catalog computes the visible subset and order of the inventory for
// the showcase view. Query is pure: identical inputs produce identical output,
// and it never touches the store.
package catalog

import (
	"sort"
	"strconv"
	"strings"

	"autoluxe/internal/models"
)

type SortOption string

const (
	SortRecommended SortOption = "recommended"
	SortPriceAsc    SortOption = "price_asc"
	SortPriceDesc   SortOption = "price_desc"
	SortYearDesc    SortOption = "year_desc"
	SortMileageAsc  SortOption = "mileage_asc"
)

// Filters are AND-combined. Zero values mean "no constraint": empty search,
// category all, empty make/fuel sets, zeroed bounds.
type Filters struct {
	Search     string            `form:"search"`
	Category   models.Category   `form:"category"`
	Makes      []string          `form:"make"`
	MinPrice   float64           `form:"min_price"`
	MaxPrice   float64           `form:"max_price"`
	MinYear    int               `form:"min_year"`
	MaxYear    int               `form:"max_year"`
	MaxMileage float64           `form:"max_mileage"`
	Fuels      []models.FuelType `form:"fuel"`
}

// Query filters then stable-sorts. The recommended sort preserves table
// order, i.e. seed order followed by admin-appended order.
func Query(vehicles []models.Vehicle, filters Filters, sortBy SortOption) []models.Vehicle {
	result := make([]models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if filters.matches(v) {
			result = append(result, v)
		}
	}

	switch sortBy {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case SortYearDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Year > result[j].Year })
	case SortMileageAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Mileage < result[j].Mileage })
	}

	return result
}

func (f Filters) matches(v models.Vehicle) bool {
	if f.Search != "" {
		query := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(v.Make), query) &&
			!strings.Contains(strings.ToLower(v.Model), query) &&
			!strings.Contains(strconv.Itoa(v.Year), query) &&
			!strings.Contains(strings.ToLower(v.Description), query) {
			return false
		}
	}
	if f.Category != "" && f.Category != models.CategoryAll && v.Category != f.Category {
		return false
	}
	if len(f.Makes) > 0 && !containsFold(f.Makes, v.Make) {
		return false
	}
	if v.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && v.Price > f.MaxPrice {
		return false
	}
	if v.Year < f.MinYear {
		return false
	}
	if f.MaxYear > 0 && v.Year > f.MaxYear {
		return false
	}
	if f.MaxMileage > 0 && v.Mileage > f.MaxMileage {
		return false
	}
	if len(f.Fuels) > 0 && !containsFuel(f.Fuels, v.FuelType) {
		return false
	}
	return true
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}

func containsFuel(values []models.FuelType, target models.FuelType) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func ParseSortOption(raw string) SortOption {
	switch SortOption(raw) {
	case SortPriceAsc, SortPriceDesc, SortYearDesc, SortMileageAsc:
		return SortOption(raw)
	default:
		return SortRecommended
	}
}
