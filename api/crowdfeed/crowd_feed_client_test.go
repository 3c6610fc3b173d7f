package crowdfeed

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"crowd-dashboard/api"
)

func TestFetchSnapshotCSV(t *testing.T) {
	wantBody := "datetime,date,time,hour,weekday,count\n2024-06-01T10:00:00,2024-06-01,10:00,10,Saturday,21\n"

	// Handler to verify request and return stubbed CSV
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// method + path
		if r.Method != "GET" {
			t.Errorf("expected GET; got %s", r.Method)
		}
		if r.URL.Path != "/fit_place24_data.csv" {
			t.Errorf("expected path /fit_place24_data.csv; got %s", r.URL.Path)
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(wantBody))
	}))
	defer srv.Close()

	client := NewCrowdFeedClient(api.NewHTTPClient(srv.URL), "/fit_place24_data.csv")

	got, err := client.FetchSnapshotCSV()
	if err != nil {
		t.Fatal(err)
	}
	if got != wantBody {
		t.Errorf("body = %q; want %q", got, wantBody)
	}
}

func TestFetchSnapshotCSV_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewCrowdFeedClient(api.NewHTTPClient(srv.URL), "/fit_place24_data.csv")

	_, err := client.FetchSnapshotCSV()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
}
