package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analyze-sentiment" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var req classifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad body: %v", err)
		}
		json.NewEncoder(w).Encode(classifyResponse{
			Sentiment:  "confused",
			Confidence: 0.87,
			Timestamp:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC).UnixMilli(),
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	r, err := c.Classify(context.Background())
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if r.Label != "confused" || r.Confidence != 0.87 {
		t.Fatalf("reading = %+v", r)
	}
	if r.Timestamp.IsZero() {
		t.Fatal("timestamp not decoded")
	}
}

func TestClassifyServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no face detected", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.Classify(context.Background()); err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}

func TestWindowEvictsOldest(t *testing.T) {
	w := NewWindow(3)
	for i := 0; i < 5; i++ {
		w.Add(Reading{Label: fmt.Sprintf("r%d", i)})
	}

	got := w.Recent()
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Label != "r2" || got[2].Label != "r4" {
		t.Fatalf("window = %+v, want r2..r4", got)
	}

	latest, ok := w.Latest()
	if !ok || latest.Label != "r4" {
		t.Fatalf("latest = %+v", latest)
	}
}

func TestWindowEmpty(t *testing.T) {
	w := NewWindow(3)
	if _, ok := w.Latest(); ok {
		t.Fatal("latest on empty window")
	}
	w.Add(Reading{Label: "x"})
	w.Clear()
	if len(w.Recent()) != 0 {
		t.Fatal("clear left readings behind")
	}
}
