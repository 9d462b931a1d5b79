package pubchem

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLookupCAS(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"PropertyTable":{"Properties":[{"Title":"Ethanol","MolecularFormula":"C2H6O","IUPACName":"ethanol"}]}}`))
	}))
	defer srv.Close()

	compound, err := NewClient(srv.URL).LookupCAS(context.Background(), "64-17-5")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if compound.Name != "Ethanol" {
		t.Fatalf("expected name Ethanol, got %q", compound.Name)
	}
	if compound.Formula != "C2H6O" {
		t.Fatalf("expected formula C2H6O, got %q", compound.Formula)
	}
}

func TestLookupCASFallsBackToIUPACName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"PropertyTable":{"Properties":[{"MolecularFormula":"CH4O","IUPACName":"methanol"}]}}`))
	}))
	defer srv.Close()

	compound, err := NewClient(srv.URL).LookupCAS(context.Background(), "67-56-1")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if compound.Name != "methanol" {
		t.Fatalf("expected IUPAC fallback, got %q", compound.Name)
	}
}

func TestLookupCASNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).LookupCAS(context.Background(), "0-00-0"); err == nil {
		t.Fatal("expected error for missing compound")
	}
}

func TestLookupCASEmptyProperties(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"PropertyTable":{"Properties":[]}}`))
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).LookupCAS(context.Background(), "64-17-5"); err == nil {
		t.Fatal("expected error for empty property table")
	}
}
