package cms

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"care-site-backend/config"
	"care-site-backend/internal/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(config.CMSConfig{
		ServiceDomain: "example",
		APIKey:        "test-key",
		BaseURL:       server.URL + "/",
		Timeout:       2 * time.Second,
	})
}

func TestNewClientDefaultBaseURL(t *testing.T) {
	c := NewClient(config.CMSConfig{ServiceDomain: "goto-t", APIKey: "k"})
	assert.Equal(t, "https://goto-t.microcms.io/api/v1", c.baseURL)
	assert.Equal(t, 10*time.Second, c.client.Timeout)
}

func TestClientGetList(t *testing.T) {
	var gotPath, gotQuery, gotKey string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotKey = r.Header.Get("X-MICROCMS-API-KEY")
		fmt.Fprint(w, `{"contents":[{"id":"n1","title":"hello","category":"イベント","content":"<p>x</p>","publishedAt":"2025-01-01T00:00:00.000Z"}],"totalCount":7,"offset":5,"limit":1}`)
	})

	resp, err := GetList[model.News](context.Background(), c, "news", &Queries{Limit: Int(1), Offset: Int(5)})
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/news", gotPath)
	assert.Equal(t, "limit=1&offset=5", gotQuery)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, 7, resp.TotalCount)
	assert.Equal(t, 5, resp.Offset)
	require.Len(t, resp.Contents, 1)
	assert.Equal(t, "n1", resp.Contents[0].ID)
	assert.Equal(t, model.NewsCategoryEvent, resp.Contents[0].Category)
	assert.Equal(t, "2025-01-01T00:00:00.000Z", resp.Contents[0].PublishedAt)
}

func TestClientGetListDetailEscapesID(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		fmt.Fprint(w, `{"id":"a/b","name":"walker","slug":"walker","order":2}`)
	})

	item, err := GetListDetail[model.SaleItem](context.Background(), c, "sale-item", "a/b", nil)
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/sale-item/a%2Fb", gotPath)
	assert.Equal(t, "walker", item.Name)
	assert.Equal(t, 2, item.Order)
}

func TestClientGetObject(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/recruit", r.URL.Path)
		fmt.Fprint(w, `{"position":"福祉用具専門相談員","salary":"月給25万円〜","createdAt":"2024-01-01T00:00:00.000Z"}`)
	})

	recruit, err := GetObject[model.Recruit](context.Background(), c, "recruit", nil)
	require.NoError(t, err)
	assert.Equal(t, "福祉用具専門相談員", recruit.Position)
	assert.Equal(t, "月給25万円〜", recruit.Salary)
}

func TestClientErrors(t *testing.T) {
	testCases := []struct {
		name         string
		status       int
		body         string
		wantNotFound bool
		wantStatus   int
		wantMessage  string
	}{
		{name: "not found", status: http.StatusNotFound, body: `{"message":"Content is not found."}`, wantNotFound: true, wantStatus: 404, wantMessage: "Content is not found."},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"message":"X-MICROCMS-API-KEY header is invalid."}`, wantStatus: 401, wantMessage: "X-MICROCMS-API-KEY header is invalid."},
		{name: "server error without json body", status: http.StatusInternalServerError, body: `oops`, wantStatus: 500},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				fmt.Fprint(w, tc.body)
			})

			_, err := GetListDetail[model.News](context.Background(), c, "news", "missing", nil)
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.wantStatus, apiErr.StatusCode)
			assert.Equal(t, tc.wantMessage, apiErr.Message)
			assert.Equal(t, tc.wantNotFound, errors.Is(err, ErrNotFound))
		})
	}
}

func TestClientMalformedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"contents":`)
	})

	_, err := GetList[model.Staff](context.Background(), c, "staff", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal")
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestClientHonorsContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GetObject[model.Recruit](ctx, c, "recruit", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
