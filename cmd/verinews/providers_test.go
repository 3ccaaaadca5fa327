// cmd/verinews/providers_test.go
package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsAPIProviderMapsFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "bridge", r.URL.Query().Get("q"))
		assert.Equal(t, "secret", r.URL.Query().Get("apiKey"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"articles":[{"title":"Bridge opens","description":"A new bridge","url":"https://e.org/1","publishedAt":"2025-03-10T08:00:00Z","urlToImage":"https://e.org/i.jpg","source":{"name":"BBC News"}}]}`))
	}))
	defer server.Close()

	p := NewNewsAPIProvider("secret")
	p.baseURL = server.URL

	articles, err := p.Fetch(context.Background(), "bridge")
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Bridge opens", articles[0].Title)
	assert.Equal(t, "BBC News", articles[0].Source)
	assert.Equal(t, "https://e.org/1", articles[0].URL)
	assert.Equal(t, "https://e.org/i.jpg", articles[0].ImageURL)
	assert.Equal(t, time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC), articles[0].PublishedAt)
	assert.False(t, articles[0].Synthetic)
}

func TestNewsAPIProviderWithoutKey(t *testing.T) {
	p := NewNewsAPIProvider("")
	_, err := p.Fetch(context.Background(), "bridge")
	require.Error(t, err)

	p = NewNewsAPIProvider("demo_mode")
	_, err = p.Fetch(context.Background(), "bridge")
	require.Error(t, err, "the demo_mode placeholder key counts as unconfigured")
}

func TestGNewsProviderMapsImageField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tok", r.URL.Query().Get("token"))
		w.Write([]byte(`{"articles":[{"title":"T","description":"D","url":"https://e.org/2","image":"https://e.org/img.png","publishedAt":"2025-03-10T08:00:00Z","source":{"name":"Reuters"}}]}`))
	}))
	defer server.Close()

	p := NewGNewsProvider("tok")
	p.baseURL = server.URL

	articles, err := p.Fetch(context.Background(), "anything")
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "https://e.org/img.png", articles[0].ImageURL)
	assert.Equal(t, "Reuters", articles[0].Source)
}

func TestNewsDataProviderMapsFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"title":"T","description":"<p>Rich <b>text</b></p>","link":"https://e.org/3","source_id":"ndtv","pubDate":"2025-03-10 08:00:00","image_url":"https://e.org/3.jpg"}]}`))
	}))
	defer server.Close()

	p := NewNewsDataProvider("key")
	p.baseURL = server.URL

	articles, err := p.Fetch(context.Background(), "anything")
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "https://e.org/3", articles[0].URL)
	assert.Equal(t, "ndtv", articles[0].Source)
	assert.Equal(t, "Rich text", articles[0].Description, "markup is stripped")
	assert.False(t, articles[0].PublishedAt.IsZero())
}

func TestGuardianProviderMapsFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test", r.URL.Query().Get("api-key"))
		w.Write([]byte(`{"response":{"results":[{"webTitle":"T","webUrl":"https://e.org/4","webPublicationDate":"2025-03-10T08:00:00Z","fields":{"bodyText":"Body text here","thumbnail":"https://e.org/4.jpg"}}]}}`))
	}))
	defer server.Close()

	p := NewGuardianProvider("")
	p.baseURL = server.URL

	articles, err := p.Fetch(context.Background(), "anything")
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "The Guardian", articles[0].Source)
	assert.Equal(t, "Body text here", articles[0].Description)
}

func TestProviderNon200TreatedAsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	p := NewNewsAPIProvider("secret")
	p.baseURL = server.URL

	_, err := p.Fetch(context.Background(), "bridge")
	require.Error(t, err)
	var ve *VeriError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, ErrorTypeProvider, ve.Type)
}

func TestParseArticleTime(t *testing.T) {
	assert.Equal(t, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC), parseArticleTime("2025-03-10T08:00:00Z"))
	assert.False(t, parseArticleTime("2025-03-10 08:00:00").IsZero())
	assert.True(t, parseArticleTime("").IsZero())
	assert.True(t, parseArticleTime("not a date").IsZero())
}
