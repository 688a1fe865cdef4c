package capture

import (
	"bytes"
	"context"
	"image/png"
	"testing"
)

func TestRasterizerProducesPNG(t *testing.T) {
	r := NewRasterizer()

	data, mime, err := r.Capture(context.Background(), "What is the derivative of x^2?")
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if mime != "image/png" {
		t.Fatalf("mime = %q, want image/png", mime)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a decodable PNG: %v", err)
	}
	if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		t.Fatal("empty image")
	}
}

func TestRasterizerCancelled(t *testing.T) {
	r := NewRasterizer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := r.Capture(ctx, "x"); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestWrapLongLine(t *testing.T) {
	lines := wrap("alpha beta gamma delta", 11)
	want := []string{"alpha beta", "gamma delta"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestNopAlwaysFails(t *testing.T) {
	if _, _, err := (Nop{}).Capture(context.Background(), "x"); err != ErrUnavailable {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}
