package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func jsonServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func TestFetchCategories_ShapeNormalization(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"bare array", `[{"id":"c1","nama":"A"}]`, 1},
		{"data envelope", `{"data":[{"id":"c1","nama":"A"}]}`, 1},
		{"categories envelope", `{"categories":[{"id":"c1","nama":"A"}]}`, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := jsonServer(t, map[string]string{"/api/categories": tc.body})
			defer server.Close()

			client := NewClient(server.URL, "tok")
			categories, err := client.FetchCategories()
			if err != nil {
				t.Fatalf("FetchCategories() returned error: %v", err)
			}
			if len(categories) != tc.want {
				t.Fatalf("expected %d categories, got %d", tc.want, len(categories))
			}
			if categories[0].ID != "c1" || categories[0].Name != "A" {
				t.Errorf("unexpected category: %+v", categories[0])
			}
		})
	}
}

func TestFetchCategories_ShapeMismatchFallsBackToDefaults(t *testing.T) {
	server := jsonServer(t, map[string]string{"/api/categories": `{}`})
	defer server.Close()

	client := NewClient(server.URL, "tok")
	categories, err := client.FetchCategories()
	if err != nil {
		t.Fatalf("FetchCategories() returned error: %v", err)
	}
	if len(categories) != len(DefaultCategories) {
		t.Fatalf("expected the %d default categories, got %d", len(DefaultCategories), len(categories))
	}
	if categories[0].Name != "Elektronik" {
		t.Errorf("expected default category 'Elektronik', got %s", categories[0].Name)
	}
}

func TestFetchCategories_RequiresToken(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "")
	_, err := client.FetchCategories()
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated before any network call, got %v", err)
	}
}

func TestFetchProducts_ShapeMismatchFallsBackToEmpty(t *testing.T) {
	server := jsonServer(t, map[string]string{"/api/products": `{"unexpected":true}`})
	defer server.Close()

	client := NewClient(server.URL, "tok")
	products, err := client.FetchProducts(ListParams{})
	if err != nil {
		t.Fatalf("FetchProducts() returned error: %v", err)
	}
	if products == nil || len(products) != 0 {
		t.Errorf("expected empty (not nil, not defaulted) product list, got %v", products)
	}
}

func TestFetchProducts_Envelopes(t *testing.T) {
	server := jsonServer(t, map[string]string{
		"/api/products": `{"products":[{"id":"p1","nama":"Widget","harga":15000,"stok":3}]}`,
	})
	defer server.Close()

	client := NewClient(server.URL, "tok")
	products, err := client.FetchProducts(ListParams{})
	if err != nil {
		t.Fatalf("FetchProducts() returned error: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	p := products[0]
	if p.Name != "Widget" || p.Price != 15000 || p.Stock != 3 {
		t.Errorf("unexpected product: %+v", p)
	}
}

func TestFetchProducts_PaginationParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "2" || r.URL.Query().Get("limit") != "25" {
			t.Errorf("expected page=2&limit=25, got %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok")
	if _, err := client.FetchProducts(ListParams{Page: 2, Limit: 25}); err != nil {
		t.Fatalf("FetchProducts() returned error: %v", err)
	}
}

func TestFetchProduct_ObjectShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"data envelope", `{"data":{"id":"p1","nama":"Widget"}}`},
		{"product envelope", `{"product":{"id":"p1","nama":"Widget"}}`},
		{"bare object", `{"id":"p1","nama":"Widget"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := jsonServer(t, map[string]string{"/api/products/p1": tc.body})
			defer server.Close()

			client := NewClient(server.URL, "tok")
			product, err := client.FetchProduct("p1")
			if err != nil {
				t.Fatalf("FetchProduct() returned error: %v", err)
			}
			if product.ID != "p1" || product.Name != "Widget" {
				t.Errorf("unexpected product: %+v", product)
			}
		})
	}
}

func TestDeleteProduct_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok")
	err := client.DeleteProduct("nope")

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
		t.Fatalf("expected 404 APIError, got %v", err)
	}
}

func TestSearch_PartialAggregation(t *testing.T) {
	// Products match, suppliers endpoint is down, transactions are empty.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/products":
			_ = json.NewEncoder(w).Encode([]Product{{ID: "p1", Name: "Widget"}})
		case "/api/suppliers":
			w.WriteHeader(http.StatusInternalServerError)
		case "/api/transactions":
			_, _ = w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok")
	result, err := client.Search("widget")
	if err != nil {
		t.Fatalf("Search() returned error: %v", err)
	}
	if len(result.Products) != 1 {
		t.Errorf("expected 1 product match, got %d", len(result.Products))
	}
	if len(result.Suppliers) != 0 || result.Suppliers == nil {
		t.Errorf("expected empty supplier slice, got %v", result.Suppliers)
	}
	if len(result.Transactions) != 0 {
		t.Errorf("expected no transaction matches, got %d", len(result.Transactions))
	}
}

func TestLogin_Shapes(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"top level", `{"token":"tok123","user":{"id":"u1","username":"alice"}}`},
		{"data envelope", `{"data":{"token":"tok123","user":{"id":"u1","username":"alice"}}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := jsonServer(t, map[string]string{"/api/auth/login": tc.body})
			defer server.Close()

			client := NewClient(server.URL, "")
			resp, err := client.Login("alice", "secret")
			if err != nil {
				t.Fatalf("Login() returned error: %v", err)
			}
			if resp.Token != "tok123" {
				t.Errorf("expected token 'tok123', got %s", resp.Token)
			}
			if resp.User == nil || resp.User.Username != "alice" {
				t.Errorf("unexpected user: %+v", resp.User)
			}
		})
	}
}
