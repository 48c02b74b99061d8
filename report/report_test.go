package report

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// TestRunEndToEnd drives the whole pipeline against a fake Okta org: app
// search, a two-page user listing, and the app membership endpoint.
func TestRunEndToEnd(t *testing.T) {
	var srv *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/apps", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "HiBob" {
			t.Errorf("Expected search term HiBob, got %q", r.URL.Query().Get("q"))
		}
		_, _ = w.Write([]byte(`[{"label":"HiBob","id":"0oa1"},{"label":"hibob-test","id":"0oa2"}]`))
	})
	mux.HandleFunc("/api/v1/users", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("after") == "" {
			w.Header().Set("Link", fmt.Sprintf(`<%s/api/v1/users?after=2&limit=200>; rel="next"`, srv.URL))
			_, _ = w.Write([]byte(`[
				{"id":"00u1","profile":{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"},
				 "credentials":{"provider":{"type":"OKTA","name":"OKTA"}}}
			]`))
			return
		}
		_, _ = w.Write([]byte(`[
			{"id":"00u2","profile":{"firstName":"Ben","lastName":"Stone","email":"ben@example.com"},
			 "credentials":{"provider":{"type":"FEDERATION","name":"bob"}}}
		]`))
	})
	mux.HandleFunc("/api/v1/apps/0oa1/users", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `[{"_links":{"user":{"href":"%s/api/v1/users/00u2"}}}]`, srv.URL)
	})
	srv = httptest.NewServer(mux)
	defer srv.Close()

	output := filepath.Join(t.TempDir(), "out.xlsx")
	cfg := &Config{Domain: srv.URL, Token: "t", AppLabel: "HiBob", Output: output}

	summary, err := Run(cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if summary.Rows != 2 {
		t.Errorf("Expected 2 rows, got %d", summary.Rows)
	}
	if summary.AppId != "0oa1" {
		t.Errorf("Expected app id 0oa1, got %s", summary.AppId)
	}

	got := readSheet(t, output)
	if len(got) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d", len(got))
	}
	if got[1][0] != "00u1" || got[1][4] != "Manual (OKTA)" || got[1][5] != "Manual (OKTA)" {
		t.Errorf("Unexpected row for 00u1: %v", got[1])
	}
	if got[2][0] != "00u2" || got[2][4] != "Imported (bob)" || got[2][5] != "Imported (bob)" {
		t.Errorf("Unexpected row for 00u2: %v", got[2])
	}
}

// TestRunResolutionFailureWritesNothing checks that the output file is not
// created when app resolution fails.
func TestRunResolutionFailureWritesNothing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/apps", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"label":"Workday","id":"0oa9"}]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	output := filepath.Join(t.TempDir(), "out.xlsx")
	cfg := &Config{Domain: srv.URL, Token: "t", AppLabel: "HiBob", Output: output}

	if _, err := Run(cfg); err == nil {
		t.Fatal("Expected resolution error")
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("Expected no partial report on failure")
	}
}
