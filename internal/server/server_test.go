package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dshills/codescore/internal/analysis"
	"github.com/dshills/codescore/internal/engine"
	"github.com/dshills/codescore/internal/profile"
	"github.com/google/uuid"
)

const samplePython = `"""Order helpers."""


def order_total(prices):
    """Return the sum of prices."""
    # Accumulate each price.
    running = 0
    for price in prices:
        running += price
    return running
`

func testInfo() *SystemInfo {
	return &SystemInfo{
		ListenAddress:  DefaultListenAddress,
		LogLevel:       "info",
		MaxUploadBytes: 5 << 20,
		CacheSize:      16,
	}
}

func newTestHandler(t *testing.T, info *SystemInfo, p *profile.Profile) http.Handler {
	t.Helper()
	return New(info, engine.New(p)).Handler()
}

func uploadRequest(t *testing.T, field, fileName, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(field, fileName)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/analyze-code", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) CustomError {
	t.Helper()
	var ce CustomError
	if err := json.Unmarshal(rec.Body.Bytes(), &ce); err != nil {
		t.Fatalf("error body is not JSON: %v\n%s", err, rec.Body.String())
	}
	return ce
}

func TestAnalyzeCodeSuccess(t *testing.T) {
	h := newTestHandler(t, testInfo(), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, uploadRequest(t, "file", "orders.py", samplePython))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if _, err := uuid.Parse(rec.Header().Get(RequestIDHeader)); err != nil {
		t.Errorf("missing or malformed request id: %v", err)
	}

	var r analysis.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &r); err != nil {
		t.Fatal(err)
	}
	if r.FileName != "orders.py" || r.FileType != analysis.FileTypePy {
		t.Errorf("metadata = (%s, %s)", r.FileName, r.FileType)
	}
	if r.FileContent != samplePython || r.FileSize != len(samplePython) {
		t.Error("file content or size not echoed")
	}
	if r.OverallScore < 80 {
		t.Errorf("OverallScore = %d, want >= 80 (%+v)", r.OverallScore, r.Breakdown)
	}
	if n := len(r.Recommendations); n < 1 || n > 5 {
		t.Errorf("got %d recommendations", n)
	}
}

func TestAnalyzeCodeWireKeys(t *testing.T) {
	h := newTestHandler(t, testInfo(), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, uploadRequest(t, "file", "app.JSX", "const a = 1;\n"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var doc map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"overall_score", "breakdown", "recommendations", "file_name", "file_size", "file_content", "file_type"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
	if doc["file_type"] != "jsx" {
		t.Errorf("file_type = %v, want jsx", doc["file_type"])
	}
	breakdown := doc["breakdown"].(map[string]any)
	for _, key := range []string{"naming", "modularity", "comments", "formatting", "reusability", "best_practices"} {
		if _, ok := breakdown[key]; !ok {
			t.Errorf("missing breakdown key %q", key)
		}
	}
}

func TestAnalyzeCodeClientErrors(t *testing.T) {
	small := testInfo()
	small.MaxUploadBytes = 10

	tests := []struct {
		name     string
		info     *SystemInfo
		req      func(t *testing.T) *http.Request
		wantCode string
		wantMsg  string
	}{
		{
			name:     "unsupported extension",
			info:     testInfo(),
			req:      func(t *testing.T) *http.Request { return uploadRequest(t, "file", "notes.txt", "hello") },
			wantCode: UnsupportedFileType,
			wantMsg:  "Unsupported file type",
		},
		{
			name:     "no extension",
			info:     testInfo(),
			req:      func(t *testing.T) *http.Request { return uploadRequest(t, "file", "Makefile", "all:") },
			wantCode: NoFileExtension,
			wantMsg:  "Could not determine file extension",
		},
		{
			name:     "missing file field",
			info:     testInfo(),
			req:      func(t *testing.T) *http.Request { return uploadRequest(t, "attachment", "a.js", "x") },
			wantCode: RequiredParamsMissing,
			wantMsg:  "No file uploaded",
		},
		{
			name:     "file too large",
			info:     small,
			req:      func(t *testing.T) *http.Request { return uploadRequest(t, "file", "a.js", "const a = 12345678;") },
			wantCode: FileTooLarge,
			wantMsg:  "File exceeds the maximum size of 10 bytes",
		},
		{
			name: "not multipart",
			info: testInfo(),
			req: func(t *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/api/analyze-code", bytes.NewBufferString(`{"file":"x"}`))
				req.Header.Set("Content-Type", "application/json")
				return req
			},
			wantCode: BadRequestBody,
			wantMsg:  BadRequestBodyMsg,
		},
		{
			name: "malformed multipart",
			info: testInfo(),
			req: func(t *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/api/analyze-code", bytes.NewBufferString("no parts here"))
				req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
				return req
			},
			wantCode: IncorrectMultipartFile,
			wantMsg:  IncorrectMultipartFileMsg,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, tt.info, nil)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, tt.req(t))
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body = %s", rec.Code, rec.Body.String())
			}
			ce := decodeError(t, rec)
			if ce.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", ce.Code, tt.wantCode)
			}
			if ce.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", ce.Message, tt.wantMsg)
			}
		})
	}
}

func TestAnalyzeCodeInvalidResult(t *testing.T) {
	// Without a fallback recommendation a flawless file yields none, which
	// the result schema rejects.
	p := profile.Default()
	p.NoIssuesRecommendation = ""

	h := newTestHandler(t, testInfo(), p)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, uploadRequest(t, "file", "clean.py", "# total\nx = 1\n"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500; body = %s", rec.Code, rec.Body.String())
	}
	ce := decodeError(t, rec)
	if ce.Code != InvalidAnalysisResult || ce.Message != InvalidAnalysisResultMsg {
		t.Errorf("error = %+v", ce)
	}
}

func TestAnalyzeCodeRepeatedUploadsIdentical(t *testing.T) {
	h := newTestHandler(t, testInfo(), nil)
	var bodies []string
	for range 2 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, uploadRequest(t, "file", "orders.py", samplePython))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		bodies = append(bodies, rec.Body.String())
	}
	if bodies[0] != bodies[1] {
		t.Errorf("repeated uploads differ:\n%s\n%s", bodies[0], bodies[1])
	}
}

func TestRequestIDEchoed(t *testing.T) {
	h := newTestHandler(t, testInfo(), nil)
	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("request id = %q, want abc-123", got)
	}
}

func TestSchemaEndpoint(t *testing.T) {
	h := newTestHandler(t, testInfo(), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/schema", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var doc map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if _, ok := doc["properties"]; !ok {
		t.Error("schema has no properties")
	}
}

func TestHealthEndpoints(t *testing.T) {
	s := New(testInfo(), engine.New(nil))
	h := s.Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("/live = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("/ready before start = %d, want 404", rec.Code)
	}

	s.health.SetReady(true)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("/ready after start = %d, want 200", rec.Code)
	}
}

func TestWrongMethod(t *testing.T) {
	h := newTestHandler(t, testInfo(), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analyze-code", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
