package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/novamart-dev/storefront-session/pkg/config"
	"github.com/novamart-dev/storefront-session/pkg/enums"
	"github.com/novamart-dev/storefront-session/pkg/httpapi"
	"github.com/novamart-dev/storefront-session/pkg/money"
)

func sampleProducts() []Product {
	return []Product{
		{ID: 1, Name: "Aurora Keyboard", Category: "Peripherals", Price: money.FromFloat(49.99), Description: "Low profile mechanical keyboard"},
		{ID: 2, Name: "Volt Mouse", Category: "Peripherals", Price: money.FromFloat(50), Description: "Wireless mouse"},
		{ID: 3, Name: "Nebula Monitor", Category: "Displays", Price: money.FromFloat(200), Description: "27 inch display"},
		{ID: 4, Name: "Quantum Dock", Category: "Accessories", Price: money.FromFloat(200.01), Description: "Thunderbolt dock"},
		{ID: 5, Name: "Zen Stand", Category: "Accessories", Price: money.Parse("call for pricing"), Description: "Adjustable laptop stand"},
		{ID: 6, Name: "Volt Mouse Pad", Category: "Peripherals", Price: money.FromFloat(50), Description: "Extended mouse pad"},
	}
}

func ids(products []Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterSearchMatchesNameDescriptionCategory(t *testing.T) {
	products := sampleProducts()

	got := Filter(products, Criteria{SearchQuery: "MOUSE"})
	if want := []int64{2, 6}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("name search = %v, want %v", ids(got), want)
	}

	got = Filter(products, Criteria{SearchQuery: "thunderbolt"})
	if want := []int64{4}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("description search = %v, want %v", ids(got), want)
	}

	got = Filter(products, Criteria{SearchQuery: "displays"})
	if want := []int64{3}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("category search = %v, want %v", ids(got), want)
	}
}

func TestFilterCategoryExactMatch(t *testing.T) {
	got := Filter(sampleProducts(), Criteria{Category: "Accessories"})
	if want := []int64{4, 5}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("category filter = %v, want %v", ids(got), want)
	}

	all := Filter(sampleProducts(), Criteria{Category: CategoryAll})
	if len(all) != len(sampleProducts()) {
		t.Fatalf("All category should keep every product, got %d", len(all))
	}
}

func TestFilterPriceBandBoundaries(t *testing.T) {
	products := sampleProducts()

	under := Filter(products, Criteria{PriceRange: enums.PriceRangeUnder50})
	if want := []int64{1}; !reflect.DeepEqual(ids(under), want) {
		t.Fatalf("under 50 = %v, want %v", ids(under), want)
	}

	mid := Filter(products, Criteria{PriceRange: enums.PriceRangeMid})
	if want := []int64{2, 3, 6}; !reflect.DeepEqual(ids(mid), want) {
		t.Fatalf("50-200 = %v, want %v (both bounds inclusive)", ids(mid), want)
	}

	premium := Filter(products, Criteria{PriceRange: enums.PriceRangePremium})
	if want := []int64{4}; !reflect.DeepEqual(ids(premium), want) {
		t.Fatalf("premium = %v, want %v", ids(premium), want)
	}
}

func TestFilterExcludesUnparsablePricesFromBands(t *testing.T) {
	products := sampleProducts()

	for _, band := range []enums.PriceRange{enums.PriceRangeUnder50, enums.PriceRangeMid, enums.PriceRangePremium} {
		for _, p := range Filter(products, Criteria{PriceRange: band}) {
			if p.ID == 5 {
				t.Fatalf("product with unparsable price leaked into band %s", band)
			}
		}
	}

	all := Filter(products, Criteria{PriceRange: enums.PriceRangeAll})
	if len(all) != len(products) {
		t.Fatalf("All band should keep unparsable prices, got %d products", len(all))
	}
}

func TestFilterSortStability(t *testing.T) {
	products := sampleProducts()

	featured := Filter(products, Criteria{SortKey: enums.SortKeyFeatured})
	if !reflect.DeepEqual(ids(featured), ids(products)) {
		t.Fatalf("featured sort reordered the catalog: %v", ids(featured))
	}

	asc := Filter(products, Criteria{SortKey: enums.SortKeyPriceAsc})
	// Products 2 and 6 share a price; ascending order must keep 2 before 6.
	if want := []int64{5, 1, 2, 6, 3, 4}; !reflect.DeepEqual(ids(asc), want) {
		t.Fatalf("price asc = %v, want %v", ids(asc), want)
	}

	desc := Filter(products, Criteria{SortKey: enums.SortKeyPriceDesc})
	if want := []int64{4, 3, 2, 6, 1, 5}; !reflect.DeepEqual(ids(desc), want) {
		t.Fatalf("price desc = %v, want %v", ids(desc), want)
	}
}

func TestFilterIsDeterministicAndDoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	criteria := Criteria{SearchQuery: "o", Category: "Peripherals", PriceRange: enums.PriceRangeMid, SortKey: enums.SortKeyPriceDesc}

	first := Filter(products, criteria)
	second := Filter(products, criteria)
	if !reflect.DeepEqual(ids(first), ids(second)) {
		t.Fatalf("same input produced different output: %v vs %v", ids(first), ids(second))
	}

	if !reflect.DeepEqual(ids(products), ids(sampleProducts())) {
		t.Fatalf("input slice was mutated: %v", ids(products))
	}
}

func TestFilterStagesNarrowInOrder(t *testing.T) {
	products := sampleProducts()
	criteria := Criteria{
		SearchQuery: "mouse",
		Category:    "Peripherals",
		PriceRange:  enums.PriceRangeMid,
		SortKey:     enums.SortKeyPriceAsc,
	}

	got := Filter(products, criteria)
	if want := []int64{2, 6}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("combined filter = %v, want %v", ids(got), want)
	}
}

func TestCategories(t *testing.T) {
	got := Categories(sampleProducts())
	want := []string{"All", "Peripherals", "Displays", "Accessories"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
}

func TestClientListSendsLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("limit") != "25" {
			t.Fatalf("expected limit=25, got %q", r.URL.RawQuery)
		}
		w.Write([]byte(`[{"id":1,"name":"Aurora Keyboard","category":"Peripherals","price":"49.99","description":""}]`))
	}))
	defer server.Close()

	api, err := httpapi.New(config.APIConfig{BaseURL: server.URL}, nil)
	if err != nil {
		t.Fatalf("new api client: %v", err)
	}
	client, err := NewClient(api)
	if err != nil {
		t.Fatalf("new catalog client: %v", err)
	}

	products, err := client.List(context.Background(), 25)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 1 || !products[0].Price.Valid() {
		t.Fatalf("expected one product with parsed string price, got %v", products)
	}
}
