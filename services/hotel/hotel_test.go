package hotel

import (
	"context"
	"testing"

	hotelRepo "hotelier/database/repository/hotel"
	"hotelier/models"
	"hotelier/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeHotelRepo struct {
	hotels       map[string]*models.Hotel
	lastFilter   models.HotelListFilter
	searchVector []float32
	searchLimit  int
	results      []models.HotelSearchResult
}

func newFakeHotelRepo(hotels ...*models.Hotel) *fakeHotelRepo {
	m := make(map[string]*models.Hotel)
	for _, h := range hotels {
		m[h.ID] = h
	}
	return &fakeHotelRepo{hotels: m}
}

func (f *fakeHotelRepo) GetByID(ctx context.Context, id string) (*models.Hotel, error) {
	h, ok := f.hotels[id]
	if !ok {
		return nil, hotelRepo.ErrNotFound
	}
	return h, nil
}

func (f *fakeHotelRepo) GetAll(ctx context.Context, filter models.HotelListFilter) ([]models.Hotel, error) {
	f.lastFilter = filter
	var out []models.Hotel
	for _, h := range f.hotels {
		out = append(out, *h)
	}
	return out, nil
}

func (f *fakeHotelRepo) Create(ctx context.Context, h *models.Hotel) error {
	f.hotels[h.ID] = h
	return nil
}

func (f *fakeHotelRepo) Update(ctx context.Context, h *models.Hotel) error {
	existing, ok := f.hotels[h.ID]
	if !ok {
		return hotelRepo.ErrNotFound
	}
	*existing = *h
	return nil
}

func (f *fakeHotelRepo) UpdatePrice(ctx context.Context, id string, price float64) error {
	h, ok := f.hotels[id]
	if !ok {
		return hotelRepo.ErrNotFound
	}
	h.Price = price
	return nil
}

func (f *fakeHotelRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := f.hotels[id]; !ok {
		return false, nil
	}
	delete(f.hotels, id)
	return true, nil
}

func (f *fakeHotelRepo) VectorSearch(ctx context.Context, queryEmbedding []float32, limit int) ([]models.HotelSearchResult, error) {
	f.searchVector = queryEmbedding
	f.searchLimit = limit
	return f.results, nil
}

type fakeEmbedder struct {
	vector   []float32
	err      error
	lastText string
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	f.lastText = text
	if f.err != nil {
		return nil, f.err
	}
	return f.vector, nil
}

func testService(repo *fakeHotelRepo, emb *fakeEmbedder) *DefaultHotelService {
	return &DefaultHotelService{Repo: repo, Embedder: emb, Logger: zap.NewNop()}
}

func TestCreateHotelEmbedsAndStores(t *testing.T) {
	repo := newFakeHotelRepo()
	emb := &fakeEmbedder{vector: []float32{0.1, 0.2, 0.3}}
	svc := testService(repo, emb)

	input := models.HotelInput{
		Name:        "Seaside",
		Location:    "Naxos",
		Price:       120,
		Description: "Quiet rooms by the harbour",
	}
	got, err := svc.CreateHotel(context.Background(), input)
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, got.Embedding)
	// The embedded text folds in every searchable field.
	assert.Contains(t, emb.lastText, "Seaside")
	assert.Contains(t, emb.lastText, "Naxos")
	assert.Contains(t, emb.lastText, "Quiet rooms by the harbour")
	assert.Contains(t, emb.lastText, "120")

	_, err = repo.GetByID(context.Background(), got.ID)
	assert.NoError(t, err)
}

func TestUpdateHotelNotFound(t *testing.T) {
	svc := testService(newFakeHotelRepo(), &fakeEmbedder{vector: []float32{0.5}})

	_, err := svc.UpdateHotel(context.Background(), "missing", models.HotelInput{Name: "X"})

	var de *utils.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, utils.CodeNotFound, de.Code)
}

func TestUpdateHotelRefreshesEmbedding(t *testing.T) {
	existing := &models.Hotel{ID: "h1", Name: "Seaside", Embedding: []float32{0.1}}
	repo := newFakeHotelRepo(existing)
	emb := &fakeEmbedder{vector: []float32{0.9}}
	svc := testService(repo, emb)

	got, err := svc.UpdateHotel(context.Background(), "h1", models.HotelInput{Name: "Seaside Deluxe", Price: 180})
	require.NoError(t, err)
	assert.Equal(t, "Seaside Deluxe", got.Name)
	assert.Equal(t, []float32{0.9}, got.Embedding)
}

func TestPatchHotelPriceValidation(t *testing.T) {
	svc := testService(newFakeHotelRepo(&models.Hotel{ID: "h1", Price: 100}), &fakeEmbedder{})

	err := svc.PatchHotelPrice(context.Background(), "h1", 0)

	var de *utils.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, utils.CodeValidation, de.Code)
}

func TestPatchHotelPrice(t *testing.T) {
	repo := newFakeHotelRepo(&models.Hotel{ID: "h1", Price: 100})
	svc := testService(repo, &fakeEmbedder{})

	require.NoError(t, svc.PatchHotelPrice(context.Background(), "h1", 150))
	assert.Equal(t, float64(150), repo.hotels["h1"].Price)
}

func TestDeleteHotelNotFound(t *testing.T) {
	svc := testService(newFakeHotelRepo(), &fakeEmbedder{})

	err := svc.DeleteHotel(context.Background(), "missing")

	var de *utils.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, utils.CodeNotFound, de.Code)
}

func TestGetAllHotelsFilterPlumbing(t *testing.T) {
	repo := newFakeHotelRepo(&models.Hotel{ID: "h1"})
	svc := testService(repo, &fakeEmbedder{})

	min, max := 50.0, 200.0
	_, err := svc.GetAllHotels(context.Background(), &min, &max, "price_desc")
	require.NoError(t, err)

	assert.Equal(t, &min, repo.lastFilter.MinPrice)
	assert.Equal(t, &max, repo.lastFilter.MaxPrice)
	assert.Equal(t, "price", repo.lastFilter.SortField)
	assert.False(t, repo.lastFilter.SortAsc)
}

func TestParseSortBy(t *testing.T) {
	tests := []struct {
		in        string
		wantField string
		wantAsc   bool
	}{
		{"price_asc", "price", true},
		{"price_desc", "price", false},
		{"name_asc", "name", true},
		{"", "", false},
		{"price", "", false},
		{"price_sideways", "", false},
	}
	for _, tt := range tests {
		field, asc := parseSortBy(tt.in)
		assert.Equal(t, tt.wantField, field, "sortBy=%q", tt.in)
		assert.Equal(t, tt.wantAsc, asc, "sortBy=%q", tt.in)
	}
}

func TestSearchHotels(t *testing.T) {
	repo := newFakeHotelRepo()
	repo.results = []models.HotelSearchResult{
		{ID: "h1", Name: "Seaside", Score: 0.92},
	}
	emb := &fakeEmbedder{vector: []float32{0.4, 0.5}}
	svc := testService(repo, emb)

	got, err := svc.SearchHotels(context.Background(), "  beach hotel  ")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "h1", got[0].ID)

	// The trimmed query text is what gets embedded.
	assert.Equal(t, "beach hotel", emb.lastText)
	assert.Equal(t, []float32{0.4, 0.5}, repo.searchVector)
	assert.Equal(t, searchLimit, repo.searchLimit)
}

func TestSearchHotelsEmptyQuery(t *testing.T) {
	svc := testService(newFakeHotelRepo(), &fakeEmbedder{})

	for _, q := range []string{"", "   "} {
		_, err := svc.SearchHotels(context.Background(), q)
		var de *utils.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, utils.CodeValidation, de.Code)
	}
}
