package syncer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"care-site-backend/config"
	"care-site-backend/internal/cms"
	"care-site-backend/internal/content"
	"care-site-backend/internal/model"
)

// mockStore is a mock implementation of the store.Store interface.
type mockStore struct {
	mu       sync.Mutex
	replaced map[string][]model.ContentRecord
}

func newMockStore() *mockStore {
	return &mockStore{replaced: make(map[string][]model.ContentRecord)}
}

func (m *mockStore) ReplaceKind(ctx context.Context, kind string, records []model.ContentRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replaced[kind] = records
	return nil
}

func (m *mockStore) ListKind(ctx context.Context, kind string) ([]model.ContentRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.replaced[kind], nil
}

func (m *mockStore) CountByKind(ctx context.Context) (map[string]int64, error) {
	return nil, nil
}

func TestSyncOnce_UnconfiguredKeepsSnapshot(t *testing.T) {
	st := newMockStore()
	st.replaced["faq"] = []model.ContentRecord{{Kind: "faq", ContentID: "f1"}}
	st.replaced["news"] = []model.ContentRecord{{Kind: "news", ContentID: "real-1"}}
	svc := NewService(config.SyncConfig{Enabled: true, PageSize: 2}, content.NewService(cms.Unconfigured(), nil), st)

	counts, err := svc.SyncOnce(context.Background())
	assert.ErrorIs(t, err, content.ErrUnavailable)
	assert.Empty(t, counts)

	assert.Equal(t, map[string][]model.ContentRecord{
		"faq":  {{Kind: "faq", ContentID: "f1"}},
		"news": {{Kind: "news", ContentID: "real-1"}},
	}, st.replaced, "placeholder data must never replace stored rows")
}

func TestSyncOnce_RemotePagingAndFailures(t *testing.T) {
	var mu sync.Mutex
	var newsOffsets, newsOrders []string

	news := []model.News{
		{ContentID: model.ContentID{ID: "n1"}, Title: "one"},
		{ContentID: model.ContentID{ID: "n2"}, Title: "two"},
		{ContentID: model.ContentID{ID: "n3"}, Title: "three"},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/news":
			mu.Lock()
			newsOffsets = append(newsOffsets, r.URL.Query().Get("offset"))
			newsOrders = append(newsOrders, r.URL.Query().Get("orders"))
			mu.Unlock()

			offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
			limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
			end := min(offset+limit, len(news))
			json.NewEncoder(w).Encode(model.ListResponse[model.News]{
				Contents:   news[offset:end],
				TotalCount: len(news),
				Offset:     offset,
				Limit:      limit,
			})
		case "/api/v1/staff":
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"message":"internal"}`)
		case "/api/v1/recruit":
			fmt.Fprint(w, `{"position":"福祉用具専門相談員"}`)
		default:
			fmt.Fprint(w, `{"contents":[],"totalCount":0,"offset":0,"limit":2}`)
		}
	}))
	defer server.Close()

	state, err := cms.NewState(config.CMSConfig{ServiceDomain: "example", APIKey: "k", BaseURL: server.URL})
	require.NoError(t, err)

	st := newMockStore()
	svc := NewService(config.SyncConfig{Enabled: true, PageSize: 2}, content.NewService(state, nil), st)

	counts, err := svc.SyncOnce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pull staff")

	assert.Equal(t, []string{"0", "2"}, newsOffsets)
	assert.Equal(t, []string{"createdAt", "createdAt"}, newsOrders)
	assert.Nil(t, pageQuery.Limit, "page requests must not modify the shared base query")
	assert.Nil(t, pageQuery.Offset)
	assert.Equal(t, 3, counts["news"])
	assert.Equal(t, 1, counts["recruit"])
	_, staffSynced := counts["staff"]
	assert.False(t, staffSynced)
	_, staffTouched := st.replaced["staff"]
	assert.False(t, staffTouched, "a failed pull must not prune stored rows")

	require.Len(t, st.replaced["recruit"], 1)
	assert.Equal(t, "recruit", st.replaced["recruit"][0].ContentID)
	assert.Equal(t, "福祉用具専門相談員", st.replaced["recruit"][0].Title)
}

func TestRunDisabledReturnsImmediately(t *testing.T) {
	st := newMockStore()
	svc := NewService(config.SyncConfig{Enabled: false}, content.NewService(cms.Unconfigured(), nil), st)

	svc.Run(context.Background())
	assert.Empty(t, st.replaced)
}

func TestRunUnconfiguredReturnsImmediately(t *testing.T) {
	st := newMockStore()
	st.replaced["news"] = []model.ContentRecord{{Kind: "news", ContentID: "real-1"}}
	svc := NewService(config.SyncConfig{Enabled: true, PageSize: 10, Interval: time.Hour}, content.NewService(cms.Unconfigured(), nil), st)

	svc.Run(context.Background())
	require.Len(t, st.replaced["news"], 1)
	assert.Equal(t, "real-1", st.replaced["news"][0].ContentID)
}

func TestRunStopsOnCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/news":
			fmt.Fprint(w, `{"contents":[{"id":"n1","title":"one"},{"id":"n2","title":"two"}],"totalCount":2,"offset":0,"limit":10}`)
		case "/api/v1/recruit":
			fmt.Fprint(w, `{"position":"ドライバー"}`)
		default:
			fmt.Fprint(w, `{"contents":[],"totalCount":0,"offset":0,"limit":10}`)
		}
	}))
	defer server.Close()

	state, err := cms.NewState(config.CMSConfig{ServiceDomain: "example", APIKey: "k", BaseURL: server.URL})
	require.NoError(t, err)

	st := newMockStore()
	svc := NewService(config.SyncConfig{Enabled: true, PageSize: 10, Interval: time.Hour}, content.NewService(state, nil), st)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		recs, _ := st.ListKind(ctx, "news")
		return len(recs) == 2
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}
