package api

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/LavenderBridge/jazzdrill/internal/drill"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type testServer struct {
	engine *drill.Engine
	router http.Handler
	gw     *drill.MemoryGateway
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gw := &drill.MemoryGateway{}
	clock := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	e, err := drill.NewEngine(drill.Options{
		Gateway: gw,
		Rand:    rand.New(rand.NewSource(3)),
		Clock:   func() time.Time { return clock },
	})
	require.NoError(t, err)
	h := NewHandler(e, nil)
	h.now = func() time.Time { return clock.Add(72 * time.Hour) }
	return &testServer{engine: e, router: NewRouter(h, nil), gw: gw}
}

func (ts *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func TestHealthAndCatalog(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, "GET", "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, "GET", "/api/v1/catalog/chords", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var chords []map[string]interface{}
	decode(t, rec, &chords)
	assert.Len(t, chords, len(ts.engine.Library().Chords.All()))

	rec = ts.do(t, "GET", "/api/v1/catalog/progressions", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, "GET", "/api/v1/catalog/modes", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuizOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, "POST", "/api/v1/drills/chord/start", `{"count": 2, "difficulty": "beginner", "question_types": ["all_tones"], "roots": ["C"], "symbols": ["7"]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var view questionView
	decode(t, rec, &view)
	assert.Equal(t, drill.AllTones, view.Type)
	assert.Equal(t, 0, view.Index)
	assert.Equal(t, 2, view.Total)
	assert.NotContains(t, rec.Body.String(), `"notes"`)

	rec = ts.do(t, "POST", "/api/v1/drills/chord/hint", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var hint drill.Hint
	decode(t, rec, &hint)
	assert.Equal(t, 1, hint.Level)

	rec = ts.do(t, "POST", "/api/v1/drills/chord/answer", `{"notes": "C E G A#"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var first struct {
		Feedback drill.Feedback `json:"feedback"`
		Next     *questionView  `json:"next"`
	}
	decode(t, rec, &first)
	assert.True(t, first.Feedback.Correct)
	assert.False(t, first.Feedback.Completed)
	require.NotNil(t, first.Next)
	assert.Equal(t, 1, first.Next.Index)

	rec = ts.do(t, "POST", "/api/v1/drills/chord/answer", `{"notes": "C E G"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var last struct {
		Feedback drill.Feedback `json:"feedback"`
	}
	decode(t, rec, &last)
	assert.False(t, last.Feedback.Correct)
	assert.True(t, last.Feedback.Completed)
	require.NotNil(t, last.Feedback.Outcome)
	assert.Equal(t, 1, last.Feedback.Outcome.Result.Correct)
	assert.Equal(t, 1, ts.gw.Saves())

	rec = ts.do(t, "POST", "/api/v1/drills/chord/answer", `{"notes": "C"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = ts.do(t, "GET", "/api/v1/drills/chord/leaderboard", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var lb []map[string]interface{}
	decode(t, rec, &lb)
	assert.Len(t, lb, 1)

	rec = ts.do(t, "GET", "/api/v1/drills/chord/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats struct {
		Rating int `json:"rating"`
	}
	decode(t, rec, &stats)
	assert.Equal(t, ts.engine.Stats(drill.ModeChord).CurrentRating, stats.Rating)

	rec = ts.do(t, "GET", "/api/v1/reviews/due?mode=chord", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var due struct {
		Count int `json:"count"`
	}
	decode(t, rec, &due)
	assert.Equal(t, 1, due.Count)
}

func TestPositionalAnswer(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, "POST", "/api/v1/drills/progression/start", `{"count": 1, "question_types": ["progression_roots"], "roots": ["C"], "symbols": ["ii-V-I"]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var view questionView
	decode(t, rec, &view)
	assert.True(t, view.Positional)
	assert.Equal(t, 3, view.Positions)

	rec = ts.do(t, "POST", "/api/v1/drills/progression/answer", `{"positions": ["D", "G", "C"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Feedback drill.Feedback `json:"feedback"`
	}
	decode(t, rec, &resp)
	assert.True(t, resp.Feedback.Correct)
	assert.True(t, resp.Feedback.Completed)
}

func TestErrorStatuses(t *testing.T) {
	ts := newTestServer(t)

	assert.Equal(t, http.StatusNotFound, ts.do(t, "POST", "/api/v1/drills/polka/start", "").Code)
	assert.Equal(t, http.StatusConflict, ts.do(t, "GET", "/api/v1/drills/scale/current", "").Code)
	assert.Equal(t, http.StatusConflict, ts.do(t, "POST", "/api/v1/drills/scale/hint", "").Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(t, "POST", "/api/v1/drills/scale/start", `{"symbols": ["nope"]}`).Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(t, "POST", "/api/v1/drills/scale/start", `{"difficulty": "impossible"}`).Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(t, "POST", "/api/v1/drills/scale/answer", `{"notes": "H"}`).Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(t, "GET", "/api/v1/reviews/due?limit=-1", "").Code)
	assert.Equal(t, http.StatusNotFound, ts.do(t, "GET", "/api/v1/reviews/due?mode=polka", "").Code)

	require.Equal(t, http.StatusCreated, ts.do(t, "POST", "/api/v1/drills/scale/start", "").Code)
	for i := 0; i < drill.MaxHints; i++ {
		require.Equal(t, http.StatusOK, ts.do(t, "POST", "/api/v1/drills/scale/hint", "").Code)
	}
	assert.Equal(t, http.StatusConflict, ts.do(t, "POST", "/api/v1/drills/scale/hint", "").Code)

	assert.Equal(t, http.StatusNoContent, ts.do(t, "POST", "/api/v1/drills/scale/reset", "").Code)
	assert.Equal(t, http.StatusConflict, ts.do(t, "GET", "/api/v1/drills/scale/current", "").Code)
}

func TestStartWithEmptyChunkedBody(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest("POST", "/api/v1/drills/interval/start", strings.NewReader(""))
	req.ContentLength = -1
	req.TransferEncoding = []string{"chunked"}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var view questionView
	decode(t, rec, &view)
	assert.Equal(t, drill.DefaultQuestionCount, view.Total)

	assert.Equal(t, http.StatusBadRequest, ts.do(t, "POST", "/api/v1/drills/interval/start", `{"count":`).Code)
}
