package catalog

import (
	"reflect"
	"testing"

	"autoluxe/internal/models"
)

func testInventory() []models.Vehicle {
	return []models.Vehicle{
		{ID: "a", Make: "Porsche", Model: "911", Year: 2023, Price: 135000, Mileage: 4200, FuelType: models.FuelTypePetrol, Category: models.CategorySport, Description: "A timeless icon."},
		{ID: "b", Make: "BMW", Model: "M4", Year: 2023, Price: 98500, Mileage: 12000, FuelType: models.FuelTypePetrol, Category: models.CategorySport},
		{ID: "c", Make: "Tesla", Model: "Model S", Year: 2023, Price: 89900, Mileage: 500, FuelType: models.FuelTypeElectric, Category: models.CategoryElectric},
		{ID: "d", Make: "Land Rover", Model: "Defender", Year: 2021, Price: 78000, Mileage: 35000, FuelType: models.FuelTypeDiesel, Category: models.CategorySUV},
		{ID: "e", Make: "Audi", Model: "RS7", Year: 2024, Price: 122000, Mileage: 50, FuelType: models.FuelTypePetrol, Category: models.CategorySedan},
	}
}

func ids(vehicles []models.Vehicle) []string {
	out := make([]string, len(vehicles))
	for i, v := range vehicles {
		out[i] = v.ID
	}
	return out
}

func TestQueryNoFiltersRecommendedKeepsTableOrder(t *testing.T) {
	result := Query(testInventory(), Filters{}, SortRecommended)
	if got, want := ids(result), []string{"a", "b", "c", "d", "e"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestQueryIsPure(t *testing.T) {
	inventory := testInventory()
	filters := Filters{Category: models.CategorySport, MaxMileage: 20000}

	first := Query(inventory, filters, SortPriceAsc)
	second := Query(inventory, filters, SortPriceAsc)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical calls returned different results")
	}
}

func TestQueryCategoryAndMileage(t *testing.T) {
	// Sport + mileage ceiling keeps the 4200-mile car, drops the 12000-mile one
	result := Query(testInventory(), Filters{Category: models.CategorySport, MaxMileage: 5000}, SortRecommended)
	if got := ids(result); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("result = %v, want [a]", got)
	}
}

func TestQueryCategoryAllIsNoConstraint(t *testing.T) {
	result := Query(testInventory(), Filters{Category: models.CategoryAll}, SortRecommended)
	if len(result) != 5 {
		t.Fatalf("category all filtered to %d", len(result))
	}
}

func TestQuerySearchMatchesAnyField(t *testing.T) {
	cases := []struct {
		search string
		want   []string
	}{
		{"porsche", []string{"a"}},   // make, case-insensitive
		{"model s", []string{"c"}},   // model
		{"2021", []string{"d"}},      // year as text
		{"timeless", []string{"a"}},  // description
		{"nomatch", []string{}},
	}
	for _, tc := range cases {
		result := Query(testInventory(), Filters{Search: tc.search}, SortRecommended)
		if got := ids(result); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("search %q = %v, want %v", tc.search, got, tc.want)
		}
	}
}

func TestQueryMakeAndFuelSets(t *testing.T) {
	result := Query(testInventory(), Filters{Makes: []string{"Porsche", "Tesla"}}, SortRecommended)
	if got := ids(result); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("makes filter = %v", got)
	}

	result = Query(testInventory(), Filters{Fuels: []models.FuelType{models.FuelTypeDiesel}}, SortRecommended)
	if got := ids(result); !reflect.DeepEqual(got, []string{"d"}) {
		t.Fatalf("fuel filter = %v", got)
	}

	// Empty sets mean no constraint
	result = Query(testInventory(), Filters{Makes: []string{}, Fuels: []models.FuelType{}}, SortRecommended)
	if len(result) != 5 {
		t.Fatalf("empty sets filtered to %d", len(result))
	}
}

func TestQueryPriceAndYearBounds(t *testing.T) {
	result := Query(testInventory(), Filters{MinPrice: 90000, MaxPrice: 130000}, SortRecommended)
	if got := ids(result); !reflect.DeepEqual(got, []string{"b", "e"}) {
		t.Fatalf("price bounds = %v", got)
	}

	result = Query(testInventory(), Filters{MinYear: 2023, MaxYear: 2023}, SortRecommended)
	if got := ids(result); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("year bounds = %v", got)
	}
}

func TestQuerySortOrders(t *testing.T) {
	asc := Query(testInventory(), Filters{}, SortPriceAsc)
	for i := 1; i < len(asc); i++ {
		if asc[i].Price < asc[i-1].Price {
			t.Fatalf("price_asc not non-decreasing at %d", i)
		}
	}

	desc := Query(testInventory(), Filters{}, SortPriceDesc)
	for i := 1; i < len(desc); i++ {
		if desc[i].Price > desc[i-1].Price {
			t.Fatalf("price_desc not non-increasing at %d", i)
		}
	}

	years := Query(testInventory(), Filters{}, SortYearDesc)
	for i := 1; i < len(years); i++ {
		if years[i].Year > years[i-1].Year {
			t.Fatalf("year_desc not non-increasing at %d", i)
		}
	}

	mileage := Query(testInventory(), Filters{}, SortMileageAsc)
	if got := ids(mileage); !reflect.DeepEqual(got, []string{"e", "c", "a", "b", "d"}) {
		t.Fatalf("mileage_asc = %v", got)
	}
}

func TestQuerySortIsStable(t *testing.T) {
	// a and b share year 2023; stable sort keeps their table order
	result := Query(testInventory(), Filters{}, SortYearDesc)
	if got := ids(result); !reflect.DeepEqual(got, []string{"e", "a", "b", "c", "d"}) {
		t.Fatalf("year_desc = %v, want stable [e a b c d]", got)
	}
}

func TestParseSortOption(t *testing.T) {
	if ParseSortOption("price_asc") != SortPriceAsc {
		t.Error("price_asc not recognized")
	}
	if ParseSortOption("") != SortRecommended {
		t.Error("empty should default to recommended")
	}
	if ParseSortOption("bogus") != SortRecommended {
		t.Error("unknown should default to recommended")
	}
}
