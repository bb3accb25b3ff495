package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"mynotes-backend/application/notes"
	"mynotes-backend/domain/note"
	"mynotes-backend/infrastructure/config"
)

type stubRepo struct{}

func (stubRepo) Put(_ context.Context, _ note.Note) error { return nil }
func (stubRepo) Get(_ context.Context, _, _ string) (note.Note, error) {
	return note.Note{}, nil
}
func (stubRepo) Delete(_ context.Context, _, _ string) (note.Note, error) {
	return note.Note{}, nil
}
func (stubRepo) QueryByUser(_ context.Context, _, _ string) ([]note.Summary, string, error) {
	return []note.Summary{}, "", nil
}

type stubBlobs struct{}

func (stubBlobs) PresignPut(_ context.Context, _ string) (string, error) { return "", nil }
func (stubBlobs) PresignGet(_ context.Context, _ string) (string, error) { return "", nil }
func (stubBlobs) Delete(_ context.Context, _ string) error               { return nil }

type stubText struct{}

func (stubText) AnalyzeText(_ context.Context, _ string) ([]string, error) { return nil, nil }

type stubImage struct{}

func (stubImage) AnalyzeImage(_ context.Context, _ string) ([]string, error) { return nil, nil }

func newTestRouter() http.Handler {
	logger := zap.NewNop()
	service := notes.NewService(stubRepo{}, stubBlobs{}, stubText{}, stubImage{}, nil, nil, logger)
	// Gateway mode keeps identity handling down to a single header.
	cfg := &config.Config{IsLambda: true}
	return NewRouter(cfg, service, logger).Setup()
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAPIRequiresIdentity(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPatch, "/api/notes", nil)
	req.Header.Set("X-User-ID", "u1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestIdentityHeaderFlowsThroughRoutes(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req.Header.Set("X-User-ID", "u1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"elements":[],"hasNext":false}`, rec.Body.String())
}
