package filter

import (
	"testing"

	"atlascars/pkg/model"
)

func testFleet() []model.Car {
	return []model.Car{
		{ID: "clio-5-2025", Brand: "Renault", Model: "Clio 5", PricePerDay: 300, Transmission: model.TransmissionManual, Fuel: model.FuelPetrol, Category: "compact"},
		{ID: "golf-8-2024", Brand: "Volkswagen", Model: "Golf 8", PricePerDay: 400, Transmission: model.TransmissionAuto, Fuel: model.FuelDiesel, Category: "berline"},
		{ID: "tucson-2024", Brand: "Hyundai", Model: "Tucson", PricePerDay: 700, Transmission: model.TransmissionAuto, Fuel: model.FuelDiesel, Category: "suv"},
		{ID: "q8-2024", Brand: "Audi", Model: "Q8", PricePerDay: 1600, Transmission: model.TransmissionAuto, Fuel: model.FuelDiesel, Category: "suv-premium"},
	}
}

func carIDs(cars []model.Car) []string {
	ids := make([]string, len(cars))
	for i, c := range cars {
		ids[i] = c.ID
	}
	return ids
}

func assertIDs(t *testing.T, got []model.Car, want ...string) {
	t.Helper()
	ids := carIDs(got)
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, ids)
		}
	}
}

func TestApplyNoConstraintsReturnsAllInOrder(t *testing.T) {
	fleet := testFleet()

	got := Apply(fleet, Criteria{PriceRange: All, Transmission: All, Category: All})

	assertIDs(t, got, "clio-5-2025", "golf-8-2024", "tucson-2024", "q8-2024")
}

func TestApplyEmptyCriteriaEqualsAll(t *testing.T) {
	fleet := testFleet()

	all := Apply(fleet, Criteria{PriceRange: All, Transmission: All, Category: All})
	empty := Apply(fleet, Criteria{})

	if len(all) != len(empty) {
		t.Fatalf("empty criteria returned %d cars, wildcard returned %d", len(empty), len(all))
	}
}

func TestApplySearchIsCaseInsensitive(t *testing.T) {
	fleet := testFleet()

	for _, query := range []string{"clio", "CLIO", "Clio"} {
		got := Apply(fleet, Criteria{Search: query})
		assertIDs(t, got, "clio-5-2025")
	}
}

func TestApplySearchIgnoresCategory(t *testing.T) {
	got := Apply(testFleet(), Criteria{Search: "compact"})

	if len(got) != 0 {
		t.Fatalf("search must only cover brand and model, got %v", carIDs(got))
	}
}

func TestApplySearchDoesNotSpanBrandAndModel(t *testing.T) {
	got := Apply(testFleet(), Criteria{Search: "ault cl"})

	if len(got) != 0 {
		t.Fatalf("query spanning brand and model must not match, got %v", carIDs(got))
	}
}

func TestApplySearchMatchesBrand(t *testing.T) {
	got := Apply(testFleet(), Criteria{Search: "audi"})

	assertIDs(t, got, "q8-2024")
}

func TestApplyPriceBandBoundsAreHalfOpen(t *testing.T) {
	fleet := testFleet()

	// 400 sits on the boundary and belongs to the upper band.
	budget := Apply(fleet, Criteria{PriceRange: PriceRangeBudget})
	assertIDs(t, budget, "clio-5-2025")

	mid := Apply(fleet, Criteria{PriceRange: PriceRangeMid})
	assertIDs(t, mid, "golf-8-2024")

	// Same for 700.
	upper := Apply(fleet, Criteria{PriceRange: PriceRangeUpper})
	assertIDs(t, upper, "tucson-2024")
}

func TestApplyPremiumBandIsUnbounded(t *testing.T) {
	got := Apply(testFleet(), Criteria{PriceRange: PriceRangePremium})

	assertIDs(t, got, "q8-2024")
}

func TestApplyCombinesCriteria(t *testing.T) {
	got := Apply(testFleet(), Criteria{
		PriceRange:   PriceRangePremium,
		Transmission: model.TransmissionAuto,
	})

	assertIDs(t, got, "q8-2024")

	none := Apply(testFleet(), Criteria{
		PriceRange:   PriceRangePremium,
		Transmission: model.TransmissionManual,
	})
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %v", carIDs(none))
	}
}

func TestApplyUnknownPriceRangeIsIgnored(t *testing.T) {
	got := Apply(testFleet(), Criteria{PriceRange: "not-a-band"})

	if len(got) != 4 {
		t.Fatalf("expected unknown band to match everything, got %v", carIDs(got))
	}
}

func TestApplyEmptyFleet(t *testing.T) {
	got := Apply(nil, Criteria{Search: "clio"})

	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %v", carIDs(got))
	}
}

func TestCategoriesPreservesFirstSeenOrder(t *testing.T) {
	fleet := append(testFleet(), model.Car{ID: "clio-4-2022", Brand: "Renault", Model: "Clio 4", Category: "compact"})

	got := Categories(fleet)

	want := []string{"compact", "berline", "suv", "suv-premium"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
