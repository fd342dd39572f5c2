package filestore

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 10 {
		img.Set(x, h/2, color.RGBA{R: 200, A: 255})
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestNormalizeDownscalesImagesToWebP(t *testing.T) {
	t.Parallel()

	name, ct, data, err := Normalize("avaliacao.png", "image/png", pngBytes(t, 3200, 800))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if name != "avaliacao.webp" || ct != "image/webp" {
		t.Fatalf("unexpected name/content type %q %q", name, ct)
	}

	cfg, err := webp.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode webp config: %v", err)
	}
	if cfg.Width != 1600 || cfg.Height != 400 {
		t.Fatalf("expected 1600x400, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestNormalizeKeepsOtherFiles(t *testing.T) {
	t.Parallel()

	in := []byte("%PDF-1.4")
	name, ct, data, err := Normalize("exame.pdf", "application/pdf", in)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if name != "exame.pdf" || ct != "application/pdf" || !bytes.Equal(data, in) {
		t.Fatalf("expected passthrough, got %q %q", name, ct)
	}
}

func TestNormalizeRejectsBrokenImage(t *testing.T) {
	t.Parallel()

	if _, _, _, err := Normalize("foto.jpg", "image/jpeg", []byte("not a jpeg")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestObjectKeySanitizesName(t *testing.T) {
	t.Parallel()

	key := ObjectKey("students/s1", "exame de sangue (1).pdf")
	if !strings.HasPrefix(key, "students/s1/") {
		t.Fatalf("unexpected prefix in %q", key)
	}
	if !strings.HasSuffix(key, "-exame_de_sangue_1_.pdf") {
		t.Fatalf("unexpected suffix in %q", key)
	}
}

func TestInlineUploadReturnsDataURL(t *testing.T) {
	t.Parallel()

	url, err := NewInline().Upload(context.Background(), "proofs", "comprovante.txt", "text/plain", []byte("pix ok"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "data:text/plain;base64,cGl4IG9r" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestPublicBase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cfg  S3Config
		want string
	}{
		{S3Config{Bucket: "b", Region: "sa-east-1"}, "https://b.s3.sa-east-1.amazonaws.com"},
		{S3Config{Bucket: "b", Endpoint: "http://minio:9000/"}, "http://minio:9000/b"},
		{S3Config{Bucket: "b", PublicURL: "https://cdn.example.com/"}, "https://cdn.example.com"},
	}

	for _, tt := range tests {
		if got := publicBase(tt.cfg); got != tt.want {
			t.Fatalf("publicBase(%+v) = %q, want %q", tt.cfg, got, tt.want)
		}
	}
}
