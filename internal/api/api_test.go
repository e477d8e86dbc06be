package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/peerjakobsen/md-gtd-mcp/internal/testutil"
	"github.com/peerjakobsen/md-gtd-mcp/internal/vault"
)

func testRouter(t *testing.T) (http.Handler, string) {
	t.Helper()
	root, _ := testutil.TestVault(t)
	testutil.SeedVault(t, root)
	return NewRouter(root, vault.Layout{}, false, "", nil), root
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestListFilesEndpoint(t *testing.T) {
	h, _ := testRouter(t)

	w := doRequest(t, h, http.MethodGet, "/files", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Files      []map[string]any `json:"files"`
		TotalCount int              `json:"total_count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.TotalCount != 4 {
		t.Errorf("total = %d, want 4", resp.TotalCount)
	}
}

func TestListFilesEndpoint_Filtered(t *testing.T) {
	h, _ := testRouter(t)

	w := doRequest(t, h, http.MethodGet, "/files/projects", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Files []struct {
			FileType string `json:"file_type"`
		} `json:"files"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Files) != 1 || resp.Files[0].FileType != "projects" {
		t.Errorf("files = %+v", resp.Files)
	}
}

func TestGetFileEndpoint(t *testing.T) {
	h, _ := testRouter(t)

	w := doRequest(t, h, http.MethodGet, "/file/gtd/inbox.md", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"file_type": "inbox"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestGetFileEndpoint_Errors(t *testing.T) {
	h, _ := testRouter(t)

	if w := doRequest(t, h, http.MethodGet, "/file/gtd/missing.md", ""); w.Code != http.StatusNotFound {
		t.Errorf("missing file status = %d, want 404", w.Code)
	}
	if w := doRequest(t, h, http.MethodGet, "/file/..%2Foutside.md", ""); w.Code != http.StatusBadRequest {
		t.Errorf("traversal status = %d, want 400", w.Code)
	}
}

func TestContentEndpoint_MatchesResourceBody(t *testing.T) {
	h, _ := testRouter(t)

	w := doRequest(t, h, http.MethodGet, "/content", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Files []struct {
			Content string `json:"content"`
		} `json:"files"`
		TotalCount int `json:"total_count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.TotalCount != 4 {
		t.Errorf("total = %d", resp.TotalCount)
	}
	for i, f := range resp.Files {
		if f.Content == "" {
			t.Errorf("files[%d] has no content", i)
		}
	}
}

func TestCaptureEndpoint(t *testing.T) {
	h, root := testRouter(t)

	w := doRequest(t, h, http.MethodPost, "/capture", `{"text":"Call the plumber"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	data, err := os.ReadFile(filepath.Join(root, "gtd", "inbox.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "- [ ] Call the plumber") {
		t.Error("captured item not written to inbox")
	}
}

func TestCaptureEndpoint_BadRequests(t *testing.T) {
	h, _ := testRouter(t)

	if w := doRequest(t, h, http.MethodPost, "/capture", `{"text":"  "}`); w.Code != http.StatusBadRequest {
		t.Errorf("blank text status = %d, want 400", w.Code)
	}
	if w := doRequest(t, h, http.MethodPost, "/capture", `not json`); w.Code != http.StatusBadRequest {
		t.Errorf("bad body status = %d, want 400", w.Code)
	}
}

func TestSetupEndpoint(t *testing.T) {
	root := t.TempDir()
	h := NewRouter(root, vault.Layout{}, false, "", nil)

	w := doRequest(t, h, http.MethodPost, "/setup", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if _, err := os.Stat(filepath.Join(root, "gtd", "inbox.md")); err != nil {
		t.Errorf("inbox not created: %v", err)
	}
}

func TestAuthMiddleware(t *testing.T) {
	root, _ := testutil.TestVault(t)
	testutil.SeedVault(t, root)
	h := NewRouter(root, vault.Layout{}, true, "secret", nil)

	if w := doRequest(t, h, http.MethodGet, "/files", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no token status = %d, want 401", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/files", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong token status = %d, want 401", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/files", nil)
	req.Header.Set("Authorization", "Bearer secret")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("valid token status = %d, want 200", w.Code)
	}
}
