package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"sweetbliss/internal/gateway"
	"sweetbliss/internal/http/handlers"
	"sweetbliss/internal/source"
)

// newGatewayApp builds the proxy app against the given upstream.
func newGatewayApp(upstreamURL string) *fiber.App {
	client := gateway.New(upstreamURL, time.Second)
	deps := handlers.NewGatewayDeps(client, &source.Remote{Client: client})

	app := fiber.New()
	app.Use(requestid.New())
	app.Get("/items", deps.Proxy.List)
	app.Post("/items", deps.Proxy.Create)
	return app
}

func TestProxyListPassesThrough(t *testing.T) {
	const upstreamBody = `[{"id":3,"name":"Laddu","category":{"id":3,"name":"Traditional","description":""},"stock":8,"price":250,"description":"Round sweet balls"}]`
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, upstreamBody)
	}))
	defer srv.Close()

	app := newGatewayApp(srv.URL)
	req := httptest.NewRequest("GET", "/items?search=lad&category=Traditional", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != upstreamBody {
		t.Fatalf("body must pass through unmodified; got %s", body)
	}
	if !strings.Contains(gotQuery, "search=lad") || !strings.Contains(gotQuery, "category=Traditional") {
		t.Fatalf("query not forwarded: %q", gotQuery)
	}
}

func TestProxyListUpstreamFailureIsGeneric500(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "secret backend trace", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	app := newGatewayApp(srv.URL)
	resp, err := app.Test(httptest.NewRequest("GET", "/items", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Failed to fetch items") {
		t.Fatalf("want generic message, got %s", body)
	}
	if strings.Contains(string(body), "secret") {
		t.Fatalf("upstream detail leaked to caller: %s", body)
	}
}

func TestProxyListUnreachableUpstreamIsGeneric500(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	app := newGatewayApp(srv.URL)
	resp, err := app.Test(httptest.NewRequest("GET", "/items", nil), int(5*time.Second/time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", resp.StatusCode)
	}
}

func TestProxyCreatePassesThrough(t *testing.T) {
	const created = `{"id":9,"name":"Sandesh","category":{"id":2,"name":"Bengali Sweet","description":""},"stock":10,"price":320,"description":"Fresh chhena sweet"}`
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, created)
	}))
	defer srv.Close()

	app := newGatewayApp(srv.URL)
	payload := `{"name":"Sandesh","category":"Bengali Sweet","stock":10,"price":320,"description":"Fresh chhena sweet"}`
	req := httptest.NewRequest("POST", "/items", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("want 201, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != created {
		t.Fatalf("created record must pass through; got %s", body)
	}
	if gotBody != payload {
		t.Fatalf("payload must be forwarded as-is; upstream saw %s", gotBody)
	}
}

func TestProxyCreateFailureIsGeneric500(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"duplicate name"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	app := newGatewayApp(srv.URL)
	req := httptest.NewRequest("POST", "/items", strings.NewReader(`{"name":"Laddu"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Failed to create item") {
		t.Fatalf("want generic message, got %s", body)
	}
}
