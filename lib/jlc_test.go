package lib

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func jlcServer(t *testing.T, pages int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/selectSmtComponentList" {
			http.NotFound(w, r)
			return
		}

		request := jlcSelectComponentListRequest{}
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		response := jlcSelectComponentListResponse{Code: 200}
		if request.CurrentPage <= pages {
			for i := 0; i < 3; i++ {
				response.Data.ComponentPageInfo.List = append(response.Data.ComponentPageInfo.List, &jlcComponent{
					Code:          fmt.Sprintf("C%d%d", request.CurrentPage, i),
					Specification: "0603",
					LibraryType:   request.ComponentLibraryType,
					FirstSortName: "Resistors",
					Describe:      fmt.Sprintf("%dKOhms ±1%% 0603", request.CurrentPage*10+i),
				})
			}
		}
		if request.Keyword != nil {
			response.Data.ComponentPageInfo.List = []*jlcComponent{{Code: *request.Keyword, LibraryType: "expand"}}
		}

		json.NewEncoder(w).Encode(response)
	}))
}

func TestSelectBaseComponentList(t *testing.T) {
	server := jlcServer(t, 2)
	defer server.Close()

	client := NewJLC().WithBaseURL(server.URL+"/", 0)
	components, errs := client.SelectBaseComponentList(context.Background())

	seen := []*LibraryComponent{}
	for component := range components {
		seen = append(seen, component)
	}
	if err := <-errs; err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(seen) != 6 {
		t.Fatalf("Expected 6 components over 2 pages, got %d", len(seen))
	}
	if !seen[0].Basic() || seen[0].Package != "0603" {
		t.Errorf("Unexpected component %+v", seen[0])
	}
}

func TestLoadIntoLibrary(t *testing.T) {
	server := jlcServer(t, 1)
	defer server.Close()

	library := newTestLibrary(t)
	client := NewJLC().WithBaseURL(server.URL+"/", 0)

	components, errs := client.SelectBaseComponentList(context.Background())
	n, err := library.ImportBasic(context.Background(), components, errs)
	if err != nil || n != 3 {
		t.Fatalf("Expected 3 components, got %d (%v)", n, err)
	}

	parts, err := library.FindResistor(11000, "0603")
	if err != nil || len(parts) != 1 || parts[0].ID != "C11" {
		t.Errorf("Expected C11 for 11k, got %v (%v)", parts, err)
	}
}

func TestSelectBaseComponentListError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewJLC().WithBaseURL(server.URL+"/", 0)
	components, errs := client.SelectBaseComponentList(context.Background())
	for range components {
	}

	if err := <-errs; err == nil {
		t.Fatal("Expected an error for a failing endpoint")
	}
}

func TestExact(t *testing.T) {
	server := jlcServer(t, 0)
	defer server.Close()

	client := NewJLC().WithBaseURL(server.URL+"/", 0)
	component, err := client.Exact(context.Background(), "C25804")
	if err != nil {
		t.Fatalf("Failed to look up: %v", err)
	}

	if component.ID != "C25804" || component.Basic() {
		t.Errorf("Unexpected component %+v", component)
	}
}
