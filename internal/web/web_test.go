package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"mspro-labs/cupnote/internal/db"
	"mspro-labs/cupnote/internal/ocr"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	database, err := db.Connect(filepath.Join(t.TempDir(), "web.db"))
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	srv, err := NewServer(database, ocr.NewService(nil, nil, nil))
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return srv.Handler()
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestParseAPI(t *testing.T) {
	h := newTestServer(t)
	testCases := []struct {
		name   string
		body   string
		origin string
		coffee string
	}{
		{"text", `{"text":"STEREOSCOPE\nGuava Candy\nCOLOMBIA"}`, "COLOMBIA", "Guava Candy"},
		{"lines", `{"lines":["Kenya Gachatha","KENYA","Process","Washed"]}`, "KENYA", "Kenya Gachatha"},
		{"blocks", `{"blocks":[{"text":"ETHIOPIA","verticalPosition":50},{"text":"Hambela","verticalPosition":5}]}`, "ETHIOPIA", "Hambela"},
	}

	for _, tc := range testCases {
		rec := post(t, h, "/api/parse", tc.body)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d: %s", tc.name, rec.Code, rec.Body)
		}
		var resp ParseResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: bad JSON: %v", tc.name, err)
		}
		if resp.Info.Origin != tc.origin || resp.Info.CoffeeName != tc.coffee {
			t.Errorf("%s: unexpected info %+v", tc.name, resp.Info)
		}
		if resp.Saved {
			t.Errorf("%s: should not save without save=true", tc.name)
		}
	}
}

func TestParseAPI_BadRequests(t *testing.T) {
	h := newTestServer(t)
	for _, body := range []string{`not json`, `{}`, `{"text":"   "}`, `{"text":"KENYA","save":true}`} {
		if rec := post(t, h, "/api/parse", body); rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestParseAPI_SaveThenList(t *testing.T) {
	h := newTestServer(t)
	rec := post(t, h, "/api/parse", `{"text":"STEREOSCOPE\nGuava Candy\nCOLOMBIA","save":true,"source":"upload-1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/scans", nil)
	list := httptest.NewRecorder()
	h.ServeHTTP(list, req)
	var scans []scanJSON
	if err := json.Unmarshal(list.Body.Bytes(), &scans); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(scans) != 1 || scans[0].Source != "upload-1" || scans[0].Info.Roastery != "STEREOSCOPE" {
		t.Errorf("unexpected journal: %+v", scans)
	}

	home := httptest.NewRecorder()
	h.ServeHTTP(home, httptest.NewRequest(http.MethodGet, "/", nil))
	if home.Code != http.StatusOK || !strings.Contains(home.Body.String(), "Guava Candy") {
		t.Errorf("home page should list the scan, got %d: %s", home.Code, home.Body)
	}
}

func TestUnknownPath(t *testing.T) {
	h := newTestServer(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
