package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{128, 128, 128, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestHTTPImageFetcher_RetryLogic(t *testing.T) {
	tests := []struct {
		name           string
		responses      []int // Status codes to return in sequence
		expectRequests int
		expectError    bool
		errorContains  string
	}{
		{
			name:           "Success on first attempt",
			responses:      []int{200},
			expectRequests: 1,
		},
		{
			name:           "Success on second attempt after 5xx",
			responses:      []int{500, 200},
			expectRequests: 2,
		},
		{
			name:           "4xx client error - no retry",
			responses:      []int{404},
			expectRequests: 1,
			expectError:    true,
			errorContains:  "client error: status code 404",
		},
		{
			name:           "4xx after 5xx - retry until 4xx then stop",
			responses:      []int{500, 404},
			expectRequests: 2,
			expectError:    true,
			errorContains:  "client error: status code 404",
		},
		{
			name:           "All 5xx errors - retry all attempts",
			responses:      []int{500, 502, 503},
			expectRequests: 3,
			expectError:    true,
			errorContains:  "server error: status code 503",
		},
	}

	pngData := testPNG(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requestCount := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				statusCode := http.StatusOK
				if requestCount < len(tt.responses) {
					statusCode = tt.responses[requestCount]
				}
				requestCount++

				if statusCode == http.StatusOK {
					w.Header().Set("Content-Type", "image/png")
					w.Write(pngData)
					return
				}
				w.WriteHeader(statusCode)
			}))
			defer server.Close()

			fetcher := NewHTTPImageFetcher(10 * time.Second)
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()

			img, err := fetcher.FetchImage(ctx, server.URL)

			if requestCount != tt.expectRequests {
				t.Errorf("Expected %d requests, got %d", tt.expectRequests, requestCount)
			}
			if tt.expectError {
				if err == nil {
					t.Fatal("Expected error")
				}
				if !strings.Contains(err.Error(), tt.errorContains) {
					t.Errorf("Expected error containing %q, got %v", tt.errorContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if img == nil {
				t.Fatal("Expected decoded image")
			}
		})
	}
}

func TestHTTPImageFetcher_UndecodableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("definitely not a PNG"))
	}))
	defer server.Close()

	fetcher := NewHTTPImageFetcher(10 * time.Second)
	_, err := fetcher.FetchImage(context.Background(), server.URL)

	if err == nil || !strings.Contains(err.Error(), "failed to decode image") {
		t.Errorf("Expected decode failure, got %v", err)
	}
}

func TestSplitBlobPath(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		container string
		blob      string
		expectErr bool
	}{
		{"Container and blob", "https://acct.blob.core.windows.net/scans/cards/front.png", "scans", "cards/front.png", false},
		{"Missing blob", "https://acct.blob.core.windows.net/scans", "", "", true},
		{"Empty path", "https://acct.blob.core.windows.net/", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container, blob, err := splitBlobPath(tt.url)
			if tt.expectErr {
				if err == nil {
					t.Fatal("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if container != tt.container || blob != tt.blob {
				t.Errorf("Got %q/%q, want %q/%q", container, blob, tt.container, tt.blob)
			}
		})
	}
}
