package anim

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGenerateSuccess(t *testing.T) {
	clip := []byte{0x00, 0x00, 0x00, 0x18, 'f', 't', 'y', 'p'}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/generate_video_blob" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad body: %v", err)
		}
		if req.Question != "Solve x^2=9" {
			t.Errorf("question = %q", req.Question)
		}
		json.NewEncoder(w).Encode(generateResponse{
			Success:   true,
			VideoBlob: base64.StdEncoding.EncodeToString(clip),
			MimeType:  "video/mp4",
			Size:      len(clip),
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	payload, mime, err := c.Generate(context.Background(), "Solve x^2=9")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(payload) != string(clip) {
		t.Fatal("payload not decoded from base64")
	}
	if mime != "video/mp4" {
		t.Fatalf("mime = %q", mime)
	}
}

func TestGenerateBackendReportedFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{Success: false, Error: "render crashed"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, _, err := c.Generate(context.Background(), "q"); err == nil {
		t.Fatal("expected error for success:false")
	}
}

func TestGenerateHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, _, err := c.Generate(context.Background(), "q"); err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}

func TestGenerateBadBase64(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{Success: true, VideoBlob: "not base64!!"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, _, err := c.Generate(context.Background(), "q"); err == nil {
		t.Fatal("expected error for invalid payload encoding")
	}
}
