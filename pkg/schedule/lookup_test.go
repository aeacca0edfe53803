package schedule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_Lookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(encode1251(t, schedulePage)))
	}))
	defer server.Close()

	client, _ := NewClient(Options{BaseURL: server.URL})
	noon := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

	upcoming, err := client.Lookup(context.Background(), "Москва", "Подольск", false, noon)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	// 08:15 and 10:40 are gone by noon
	if len(upcoming) != 1 || upcoming[0].DispatchTime != "23:50" {
		t.Errorf("expected only the 23:50 trip, got %+v", upcoming)
	}

	all, err := client.Lookup(context.Background(), "Москва", "Подольск", true, noon)
	if err != nil {
		t.Fatalf("Lookup with all failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected all 3 trips, got %d", len(all))
	}
}
