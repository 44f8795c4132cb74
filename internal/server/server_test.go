// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pdiddy/thesaurus-engine/internal/review"
	"github.com/pdiddy/thesaurus-engine/pkg/types"
)

const upload = "id\tterm\toccurrences\trelevance score\n" +
	"1\tanthropocene\t94\t0.4521\n" +
	"2\tstudy\t40\t0.2\n" +
	"3\triver\t19\t0.45\n" +
	"broken\n" +
	"5\turban planning\t30\t0.7\n" +
	"6\turban ecology\t12\t0.9\n"

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, cfg types.Config) *gin.Engine {
	t.Helper()
	return NewRouter(NewHandler(cfg, zaptest.NewLogger(t)))
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if strings.HasPrefix(body, "{") {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createSession(t *testing.T, r http.Handler) CreateSessionResponse {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/v1/sessions", upload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp CreateSessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateSession(t *testing.T) {
	r := newTestRouter(t, types.Config{})
	resp := createSession(t, r)

	assert.NotEmpty(t, resp.ID)
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, 5, resp.Warnings[0].Line)
	assert.Equal(t, 5, resp.Statistics.Total)
	assert.Equal(t, 5, resp.Statistics.Pending)

	w := do(t, r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sessions":1`)
}

func TestCreateSessionRejectsEmptyAndOversized(t *testing.T) {
	r := newTestRouter(t, types.Config{Server: types.ServerConfig{MaxUploadBytes: 64}})

	w := do(t, r, http.MethodPost, "/api/v1/sessions", "  \n")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/v1/sessions", upload)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestReviewFlow(t *testing.T) {
	r := newTestRouter(t, types.Config{Review: types.ReviewConfig{BatchSize: 2}})
	id := createSession(t, r).ID
	base := "/api/v1/sessions/" + id

	// Paging.
	w := do(t, r, http.MethodGet, base+"/terms?page=2", "")
	require.Equal(t, http.StatusOK, w.Code)
	var page review.Page
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 2, page.Number)
	assert.Equal(t, 3, page.Total)
	require.Len(t, page.Records, 2)
	assert.Equal(t, "river", page.Records[0].Term)

	// Merge candidates for "urban planning" (id 4).
	w = do(t, r, http.MethodGet, base+"/terms/4/candidates", "")
	require.Equal(t, http.StatusOK, w.Code)
	var cands struct {
		Candidates []types.TermRecord `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cands))
	require.Len(t, cands.Candidates, 1)
	assert.Equal(t, "urban ecology", cands.Candidates[0].Term)

	// Decisions.
	w = do(t, r, http.MethodPost, base+"/terms/4/decision", `{"action":"MERGE","merge_target":"urban ecology"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var rec types.TermRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.True(t, rec.Validated)
	assert.Equal(t, types.ActionMerge, rec.FinalAction)
	assert.Equal(t, "urban ecology", rec.MergeTarget)

	w = do(t, r, http.MethodPost, base+"/terms/3/decision", `{"action":"KEEP"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, base+"/terms/3", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"final_action":"KEEP"`)

	// Stats.
	w = do(t, r, http.MethodGet, base+"/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	var st struct {
		Statistics types.Statistics `json:"statistics"`
		Progress   float64          `json:"progress"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	assert.Equal(t, 2, st.Statistics.Validated)
	assert.Equal(t, 1, st.Statistics.Actions.Merge)
	assert.InDelta(t, 40.0, st.Progress, 1e-9)

	// Export.
	w = do(t, r, http.MethodGet, base+"/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "label\treplace by\nstudy\t\nurban planning\turban ecology", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "tesauro_validado.txt")

	// Close.
	w = do(t, r, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, r, http.MethodGet, base+"/stats", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDecisionErrors(t *testing.T) {
	r := newTestRouter(t, types.Config{})
	base := "/api/v1/sessions/" + createSession(t, r).ID

	tests := []struct {
		name string
		path string
		body string
		want int
	}{
		{"merge without target", base + "/terms/3/decision", `{"action":"MERGE"}`, http.StatusBadRequest},
		{"merge target spanning lines", base + "/terms/3/decision", `{"action":"MERGE","merge_target":"urban ecology\nanthropocene"}`, http.StatusBadRequest},
		{"merge target with tab", base + "/terms/3/decision", `{"action":"MERGE","merge_target":"urban\tecology"}`, http.StatusBadRequest},
		{"unknown action", base + "/terms/3/decision", `{"action":"EVALUATE"}`, http.StatusBadRequest},
		{"missing action", base + "/terms/3/decision", `{}`, http.StatusBadRequest},
		{"unknown term", base + "/terms/99/decision", `{"action":"KEEP"}`, http.StatusNotFound},
		{"bad term id", base + "/terms/abc/decision", `{"action":"KEEP"}`, http.StatusBadRequest},
		{"unknown session", "/api/v1/sessions/nope/terms/1/decision", `{"action":"KEEP"}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}

	w := do(t, r, http.MethodGet, base+"/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"validated":0`)

	w = do(t, r, http.MethodGet, base+"/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "label\treplace by\nstudy\t", w.Body.String())
}

func TestSessionsExpire(t *testing.T) {
	h := NewHandler(types.Config{Server: types.ServerConfig{SessionTTL: time.Hour}}, zaptest.NewLogger(t))
	r := NewRouter(h)

	start := time.Now()
	h.now = func() time.Time { return start }
	old := createSession(t, r).ID

	h.now = func() time.Time { return start.Add(30 * time.Minute) }
	w := do(t, r, http.MethodGet, "/api/v1/sessions/"+old+"/stats", "")
	assert.Equal(t, http.StatusOK, w.Code, "session is still live within the TTL")

	h.now = func() time.Time { return start.Add(2 * time.Hour) }
	w = do(t, r, http.MethodGet, "/api/v1/sessions/"+old+"/stats", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	fresh := createSession(t, r).ID
	h.mu.RLock()
	_, oldKept := h.sessions[old]
	_, freshKept := h.sessions[fresh]
	h.mu.RUnlock()
	assert.False(t, oldKept, "opening a session drops expired ones")
	assert.True(t, freshKept)

	w = do(t, r, http.MethodGet, "/health", "")
	assert.Contains(t, w.Body.String(), `"sessions":1`)
}
