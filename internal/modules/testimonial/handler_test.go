package testimonial_test

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
	"github.com/yaritu/core/internal/modules/testimonial"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeTestimonialStore struct {
	items map[string]*models.TestimonialModel
}

func newFakeTestimonialStore() *fakeTestimonialStore {
	return &fakeTestimonialStore{items: map[string]*models.TestimonialModel{}}
}

func (f *fakeTestimonialStore) List(_ context.Context) ([]models.TestimonialModel, error) {
	out := make([]models.TestimonialModel, 0, len(f.items))
	for _, m := range f.items {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeTestimonialStore) Create(_ context.Context, m *models.TestimonialModel) error {
	m.ID = primitive.NewObjectID()
	f.items[m.ID.Hex()] = m
	return nil
}

func (f *fakeTestimonialStore) Update(_ context.Context, id string, dto *testimonial.UpdateTestimonialDTO) (*models.TestimonialModel, error) {
	m, ok := f.items[id]
	if !ok {
		return nil, testimonial.ErrNotFound
	}
	m.Name, m.Quote, m.Rating, m.Avatar = dto.Name, dto.Quote, dto.Rating, dto.Avatar
	return m, nil
}

func (f *fakeTestimonialStore) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return testimonial.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func passthroughAuth(c *gin.Context) { c.Next() }

func newTestimonialRouter(store testimonial.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	testimonial.NewHandler(store).RegisterRoutes(r.Group("/api"), passthroughAuth)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTestimonial_CreateAndList(t *testing.T) {
	store := newFakeTestimonialStore()
	r := newTestimonialRouter(store)

	w := doJSON(r, "POST", "/api/testimonials",
		`{"name":"Priya","quote":"Beautiful craftsmanship","rating":5,"avatar":"https://cdn.example.com/a.png"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, "GET", "/api/testimonials", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Priya")
	assert.Contains(t, w.Body.String(), "Beautiful craftsmanship")
}

func TestTestimonial_RatingOutOfRange(t *testing.T) {
	r := newTestimonialRouter(newFakeTestimonialStore())

	w := doJSON(r, "POST", "/api/testimonials", `{"name":"Priya","quote":"nice","rating":6}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, "POST", "/api/testimonials", `{"name":"Priya","quote":"nice","rating":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTestimonial_UpdateRoundTrip(t *testing.T) {
	store := newFakeTestimonialStore()
	r := newTestimonialRouter(store)

	doJSON(r, "POST", "/api/testimonials", `{"name":"Priya","quote":"nice","rating":4}`)

	var id string
	for k := range store.items {
		id = k
	}

	w := doJSON(r, "PUT", "/api/testimonials/"+id,
		`{"name":"Priya S","quote":"even nicer","rating":5}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Priya S")
	assert.Equal(t, 5, store.items[id].Rating)
}

func TestTestimonial_UpdateMissing(t *testing.T) {
	r := newTestimonialRouter(newFakeTestimonialStore())

	w := doJSON(r, "PUT", "/api/testimonials/"+primitive.NewObjectID().Hex(),
		`{"name":"Priya","quote":"nice","rating":4}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTestimonial_Delete(t *testing.T) {
	store := newFakeTestimonialStore()
	r := newTestimonialRouter(store)

	doJSON(r, "POST", "/api/testimonials", `{"name":"Priya","quote":"nice","rating":4}`)
	var id string
	for k := range store.items {
		id = k
	}

	w := doJSON(r, "DELETE", "/api/testimonials/"+id, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, store.items)

	w = doJSON(r, "DELETE", "/api/testimonials/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
