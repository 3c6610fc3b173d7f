package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPClient_FetchText_Success(t *testing.T) {
	// Mock server setup
	mockBody := "datetime,date,time\n2024-06-01T10:00:00,2024-06-01,10:00\n"
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test-endpoint" {
			t.Errorf("Expected endpoint '/test-endpoint', got '%s'", r.URL.Path)
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockBody))
	}))
	defer mockServer.Close()

	// Test setup
	client := NewHTTPClient(mockServer.URL)

	// Act
	body, err := client.FetchText("/test-endpoint", nil)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if body != mockBody {
		t.Errorf("Expected body %q, got %q", mockBody, body)
	}
}

func TestHTTPClient_FetchText_Failure(t *testing.T) {
	// Mock server setup
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("not found"))
	}))
	defer mockServer.Close()

	// Test setup
	client := NewHTTPClient(mockServer.URL)

	// Act
	_, err := client.FetchText("/missing.csv", nil)

	// Assert
	if err == nil {
		t.Fatalf("Expected an error, got nil")
	}

	expectedError := "unexpected status code: 404 Not Found"
	if err.Error() != expectedError {
		t.Errorf("Expected error '%s', got '%s'", expectedError, err.Error())
	}
}
