package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLocateFixed(t *testing.T) {
	l := NewLocator(LocatorConfig{Fixed: &Point{Lat: 60.17, Lon: 24.94}}, nil)
	p := l.Locate(context.Background())
	if p == nil {
		t.Fatal("expected fixed location")
	}
	if p.Lat != 60.17 || p.Lon != 24.94 {
		t.Fatalf("unexpected point: %+v", p)
	}
}

func TestLocateDisabled(t *testing.T) {
	l := NewLocator(LocatorConfig{}, nil)
	if p := l.Locate(context.Background()); p != nil {
		t.Fatalf("expected nil location when lookup disabled, got %+v", p)
	}
}

func TestLocateEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"lat":60.2055,"lon":24.6559}`))
	}))
	defer srv.Close()

	l := NewLocator(LocatorConfig{Endpoint: srv.URL}, nil)
	p := l.Locate(context.Background())
	if p == nil {
		t.Fatal("expected location from endpoint")
	}
	if p.Lat != 60.2055 || p.Lon != 24.6559 {
		t.Fatalf("unexpected point: %+v", p)
	}
}

func TestLocateFailuresResolveToNoLocation(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"server error": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
		"bad payload": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		},
		"empty coordinates": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		},
	}
	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(handler)
			defer srv.Close()
			l := NewLocator(LocatorConfig{Endpoint: srv.URL}, nil)
			if p := l.Locate(context.Background()); p != nil {
				t.Fatalf("expected nil location, got %+v", p)
			}
		})
	}
}

func TestLocateUnreachableEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	l := NewLocator(LocatorConfig{Endpoint: srv.URL}, nil)
	if p := l.Locate(context.Background()); p != nil {
		t.Fatalf("expected nil location, got %+v", p)
	}
}
