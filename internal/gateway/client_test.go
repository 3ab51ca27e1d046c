package gateway_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sweetbliss/internal/domain"
	"sweetbliss/internal/gateway"
)

func TestListItemsForwardsOnlyPresentParams(t *testing.T) {
	var gotQuery map[string][]string
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	c := gateway.New(srv.URL, time.Second)
	_, err := c.ListItems(context.Background(), gateway.ListParams{
		Search:   "lad",
		Category: "Traditional",
		MinPrice: "100",
	})
	if err != nil {
		t.Fatal(err)
	}
	if gotPath != "/api/items" {
		t.Fatalf("want /api/items, got %s", gotPath)
	}
	if got := gotQuery["search"]; len(got) != 1 || got[0] != "lad" {
		t.Fatalf("search not forwarded verbatim: %v", gotQuery)
	}
	if got := gotQuery["category"]; len(got) != 1 || got[0] != "Traditional" {
		t.Fatalf("category not forwarded verbatim: %v", gotQuery)
	}
	if got := gotQuery["minPrice"]; len(got) != 1 || got[0] != "100" {
		t.Fatalf("minPrice not forwarded verbatim: %v", gotQuery)
	}
	// Absent parameters must not appear at all
	for _, k := range []string{"maxPrice", "minStock", "maxStock", "page", "size", "sortBy", "sortDir"} {
		if _, ok := gotQuery[k]; ok {
			t.Fatalf("empty parameter %q was forwarded", k)
		}
	}
}

func TestListItemsUpstream503(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "maintenance window", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := gateway.New(srv.URL, time.Second)
	_, err := c.ListItems(context.Background(), gateway.ListParams{Category: "Traditional"})
	var ue *gateway.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("want UpstreamError, got %v", err)
	}
	if ue.Status != http.StatusServiceUnavailable {
		t.Fatalf("want status 503, got %d", ue.Status)
	}
	if calls != 1 {
		t.Fatalf("must not retry; upstream saw %d calls", calls)
	}
}

func TestCreateItemPreservesAssignedID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("want POST, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":9,"name":"Barfi","category":{"id":4,"name":"Milk Sweet","description":""},"stock":15,"price":400,"description":"x"}`)
	}))
	defer srv.Close()

	c := gateway.New(srv.URL, time.Second)
	it, err := c.CreateItem(context.Background(), domain.ItemPayload{
		Name: "Barfi", Category: "Milk Sweet", Stock: 15, Price: 400, Description: "x",
	})
	if err != nil {
		t.Fatal(err)
	}
	if it.ID != 9 {
		t.Fatalf("server-assigned id must pass through unchanged; got %d", it.ID)
	}
	if it.Category.Name != "Milk Sweet" || it.Stock != 15 {
		t.Fatalf("record reshaped in transit: %+v", it)
	}
}

func TestCreateItemUpstreamErrorKeepsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"duplicate"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := gateway.New(srv.URL, time.Second)
	_, err := c.CreateItem(context.Background(), domain.ItemPayload{Name: "Barfi"})
	var ue *gateway.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("want UpstreamError, got %v", err)
	}
	if ue.Status != http.StatusBadRequest || ue.Body == "" {
		t.Fatalf("upstream detail must be kept for the log: %+v", ue)
	}
}

func TestUnreachableUpstreamIsGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := gateway.New(srv.URL, time.Second)
	_, err := c.ListItems(context.Background(), gateway.ListParams{})
	var ge *gateway.GatewayError
	if !errors.As(err, &ge) {
		t.Fatalf("want GatewayError, got %v", err)
	}
}

func TestMalformedBodyIsGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{not json`)
	}))
	defer srv.Close()

	c := gateway.New(srv.URL, time.Second)
	_, err := c.ListItems(context.Background(), gateway.ListParams{})
	var ge *gateway.GatewayError
	if !errors.As(err, &ge) {
		t.Fatalf("want GatewayError for undecodable body, got %v", err)
	}
}

func TestTimeoutBoundsTheCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	c := gateway.New(srv.URL, 20*time.Millisecond)
	start := time.Now()
	_, err := c.ListItems(context.Background(), gateway.ListParams{})
	var ge *gateway.GatewayError
	if !errors.As(err, &ge) {
		t.Fatalf("want GatewayError on timeout, got %v", err)
	}
	if time.Since(start) > 200*time.Millisecond {
		t.Fatal("call was not bounded by the client timeout")
	}
}

func TestOutboundCarriesRequestID(t *testing.T) {
	var gotID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	c := gateway.New(srv.URL, time.Second)
	ctx := gateway.WithRequestID(context.Background(), "req-42")
	if _, err := c.ListItems(ctx, gateway.ListParams{}); err != nil {
		t.Fatal(err)
	}
	if gotID != "req-42" {
		t.Fatalf("want relayed request id, got %q", gotID)
	}

	// Without an inbound id a fresh one is generated
	if _, err := c.ListItems(context.Background(), gateway.ListParams{}); err != nil {
		t.Fatal(err)
	}
	if gotID == "" || gotID == "req-42" {
		t.Fatalf("want generated request id, got %q", gotID)
	}
}
