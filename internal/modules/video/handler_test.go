package video_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaritu/core/internal/models"
	"github.com/yaritu/core/internal/modules/video"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeVideoStore struct {
	items map[string]*models.VideoModel
}

func newFakeVideoStore() *fakeVideoStore {
	return &fakeVideoStore{items: map[string]*models.VideoModel{}}
}

func (f *fakeVideoStore) List(_ context.Context) ([]models.VideoModel, error) {
	out := make([]models.VideoModel, 0, len(f.items))
	for _, m := range f.items {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeVideoStore) Create(_ context.Context, m *models.VideoModel) error {
	m.ID = primitive.NewObjectID()
	f.items[m.ID.Hex()] = m
	return nil
}

func (f *fakeVideoStore) Update(_ context.Context, id string, dto *video.VideoDTO) (*models.VideoModel, error) {
	m, ok := f.items[id]
	if !ok {
		return nil, video.ErrNotFound
	}
	m.Title, m.URL = dto.Title, dto.URL
	return m, nil
}

func (f *fakeVideoStore) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return video.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func passthroughAuth(c *gin.Context) { c.Next() }

func newVideoRouter(store video.Store, name string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	video.NewHandler(store, name).RegisterRoutes(r.Group("/api"), passthroughAuth)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestVideo_TrendingAndCelebrityAreSeparateRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	trending := newFakeVideoStore()
	celebrity := newFakeVideoStore()
	api := r.Group("/api")
	video.NewHandler(trending, "trending").RegisterRoutes(api, passthroughAuth)
	video.NewHandler(celebrity, "celebrity").RegisterRoutes(api, passthroughAuth)

	w := doJSON(r, "POST", "/api/videos/trending",
		`{"title":"Festive Collection","url":"https://videos.example.com/festive.mp4"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	assert.Len(t, trending.items, 1)
	assert.Empty(t, celebrity.items)

	w = doJSON(r, "GET", "/api/videos/celebrity", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Festive Collection")
}

func TestVideo_CreateRequiresTitleAndURL(t *testing.T) {
	r := newVideoRouter(newFakeVideoStore(), "trending")

	w := doJSON(r, "POST", "/api/videos/trending", `{"title":"no url"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, "POST", "/api/videos/trending", `{"url":"https://videos.example.com/x.mp4"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVideo_UpdateAndDelete(t *testing.T) {
	store := newFakeVideoStore()
	r := newVideoRouter(store, "trending")

	doJSON(r, "POST", "/api/videos/trending",
		`{"title":"Old","url":"https://videos.example.com/old.mp4"}`)
	var id string
	for k := range store.items {
		id = k
	}

	w := doJSON(r, "PUT", "/api/videos/trending/"+id,
		`{"title":"New","url":"https://videos.example.com/new.mp4"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "New", store.items[id].Title)

	w = doJSON(r, "DELETE", "/api/videos/trending/"+id, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, "PUT", "/api/videos/trending/"+id,
		`{"title":"Gone","url":"https://videos.example.com/gone.mp4"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
