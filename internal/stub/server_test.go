package stub

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/muurk/wordfinder/internal/generator"
	"github.com/muurk/wordfinder/internal/puzzle"
)

func TestSampleResult(t *testing.T) {
	r := SampleResult()
	if r.Grid.Rows() != 5 || r.Grid.Columns() != 5 {
		t.Fatalf("grid = %dx%d, want 5x5", r.Grid.Rows(), r.Grid.Columns())
	}
	want := []string{"CAT", "DOG", "BIRD", "FISH", "CROW"}
	got := r.PlacedWords.Words()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("words = %v, want %v", got, want)
	}
	// every placed cell spells its word
	for _, pw := range r.PlacedWords {
		var sb strings.Builder
		for _, c := range pw.Cells {
			sb.WriteString(r.Grid.At(c.Row, c.Column))
		}
		if sb.String() != pw.Word {
			t.Errorf("%s spells %q", pw.Word, sb.String())
		}
	}
}

func TestParseFixture_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"ragged", "grid: [\"A B\", \"C\"]\n"},
		{"outside", "grid: [\"A B\"]\nwords:\n  - word: AB\n    cells: [[0, 0], [0, 2]]\n"},
		{"unnamed", "grid: [\"A B\"]\nwords:\n  - cells: [[0, 0]]\n"},
		{"not yaml", "grid: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFixture([]byte(tt.yaml)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestHandleGenerate(t *testing.T) {
	srv := New(&Config{})
	body := `{"rows":15,"columns":15,"words":["cat","dog"]}`
	req := httptest.NewRequest(http.MethodPost, "/wordfinder", strings.NewReader(body))
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	var theGrid string
	if err := json.Unmarshal(raw["theGrid"], &theGrid); err != nil {
		t.Fatalf("theGrid is not a string: %v", err)
	}

	result, err := puzzle.DecodeResponse(rec.Body.Bytes())
	if err != nil {
		t.Fatalf("DecodeResponse: %v", err)
	}
	if result.PlacedWords[0].Word != "CAT" {
		t.Errorf("first word = %q", result.PlacedWords[0].Word)
	}
	if srv.Requests() != 1 {
		t.Errorf("Requests() = %d", srv.Requests())
	}
}

func TestHandleGenerate_BadRequest(t *testing.T) {
	srv := New(&Config{})

	for _, body := range []string{"not json", `{"rows":5}`} {
		req := httptest.NewRequest(http.MethodPost, "/wordfinder", strings.NewReader(body))
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%q: status = %d, want 400", body, rec.Code)
		}
	}
	if srv.Requests() != 0 {
		t.Errorf("Requests() = %d", srv.Requests())
	}
}

func TestRoutes(t *testing.T) {
	srv := New(&Config{Path: "/api/grid"})

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/api/grid", http.StatusOK},
		{http.MethodGet, "/wordfinder", http.StatusNotFound},
		{http.MethodDelete, "/api/grid", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)
		if rec.Code != tt.want {
			t.Errorf("%s %s = %d, want %d", tt.method, tt.path, rec.Code, tt.want)
		}
	}
}

// The client and the stub agree on the wire format end to end.
func TestClientAgainstStub(t *testing.T) {
	fixture, err := ParseFixture([]byte("grid: [\"C A T\", \"X Y Z\", \"Q R S\"]\nwords:\n  - word: CAT\n    cells: [[0, 0], [0, 1], [0, 2]]\n"))
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(New(&Config{Fixture: fixture}).Router())
	defer ts.Close()

	client := generator.NewClient(ts.URL + "/wordfinder")
	cfg := puzzle.Configuration{Rows: "3", Columns: "3", WordText: "CAT"}

	result, err := client.Generate(context.Background(), cfg.Request())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !result.IsPartOfWord(0, 2) || result.IsPartOfWord(1, 1) {
		t.Error("cell membership does not match the fixture")
	}

	status, err := client.Ping(context.Background())
	if err != nil || status != http.StatusOK {
		t.Errorf("Ping = %d, %v", status, err)
	}
}

func TestServe_StopsOnCancel(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	srv := New(&Config{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, listener) }()

	url := "http://" + listener.Addr().String() + "/healthz"
	var resp *http.Response
	for i := 0; i < 50; i++ {
		resp, err = http.Get(url)
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
