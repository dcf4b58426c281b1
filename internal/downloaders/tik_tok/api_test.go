package tiktok

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/StounhandJ/tiktok_downloader/internal/downloaders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullPayload = `{
  "status": "ok",
  "data": {
    "cookie": "tt_chain_token=abc",
    "content": {
      "id": "123",
      "desc": "x<y and y>z & <b>bye</b> #fyp",
      "createTime": 1700000000,
      "author": {"uniqueId": "alice", "nickname": "Alice"},
      "video": {
        "playAddr": "https://cdn.example/v.mp4",
        "cover": "https://cdn.example/c.jpg",
        "dynamicCover": "https://cdn.example/d.webp",
        "duration": 15
      },
      "stats": {
        "diggCount": 10,
        "shareCount": "3",
        "commentCount": 2,
        "playCount": 1.5e3,
        "collectCount": "7"
      },
      "music": {"title": "ignored", "nested": [1, {"a": null}]}
    }
  }
}`

func apiServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, downloaders.UserAgent, r.Header.Get("User-Agent"))

		b, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"url":"https://www.tiktok.com/@alice/video/123"}`, string(b))

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestExtractFullPayload(t *testing.T) {
	srv := apiServer(t, http.StatusOK, fullPayload)

	video, err := NewExtractor(srv.Client(), srv.URL, "").Extract(context.Background(), "https://www.tiktok.com/@alice/video/123")
	require.NoError(t, err)

	require.Equal(t, "123", video.ID)
	require.Equal(t, "alice", video.Author)
	require.Equal(t, "Alice", video.Nickname)
	require.Equal(t, "x<y and y>z & <b>bye</b> #fyp", video.Description)
	require.Equal(t, "1700000000", video.CreateTime)
	require.Equal(t, "https://cdn.example/v.mp4", video.DirectVideoURL)
	require.Equal(t, "https://cdn.example/c.jpg", video.CoverURL)
	require.Equal(t, "https://cdn.example/d.webp", video.DynamicCover)
	require.Equal(t, 15, video.Duration)
	require.Equal(t, "tt_chain_token=abc", video.Cookie)
	require.Equal(t, downloaders.Stats{
		DiggCount:    10,
		ShareCount:   3,
		CommentCount: 2,
		PlayCount:    1500,
		CollectCount: "7",
	}, video.Stats)
}

func TestExtractDefaults(t *testing.T) {
	srv := apiServer(t, http.StatusOK, `{"data":{"content":{"id":123,"author":null,"video":{"playAddr":"https://cdn.example/v.mp4"}}}}`)

	video, err := NewExtractor(srv.Client(), srv.URL, "").Extract(context.Background(), "https://www.tiktok.com/@alice/video/123")
	require.NoError(t, err)

	require.Equal(t, "123", video.ID)
	require.Empty(t, video.Author)
	require.Empty(t, video.Cookie)
	require.Zero(t, video.Duration)
	require.Equal(t, downloaders.Stats{CollectCount: "0"}, video.Stats)
}

func TestExtractSkipsMistypedFields(t *testing.T) {
	srv := apiServer(t, http.StatusOK, `{"data":{"cookie":{"a":1},"content":{
		"id":"1","desc":123,"createTime":{"s":1},
		"author":{"uniqueId":["alice"],"nickname":true},
		"video":{"playAddr":"https://cdn.example/v.mp4","cover":{},"duration":"15"},
		"stats":{"diggCount":[1],"playCount":"abc","collectCount":false}}}}`)

	video, err := NewExtractor(srv.Client(), srv.URL, "").Extract(context.Background(), "https://www.tiktok.com/@alice/video/123")
	require.NoError(t, err)

	require.Equal(t, "https://cdn.example/v.mp4", video.DirectVideoURL)
	require.Equal(t, "1", video.ID)
	require.Equal(t, "123", video.Description)
	require.Empty(t, video.Cookie)
	require.Empty(t, video.CreateTime)
	require.Empty(t, video.Author)
	require.Equal(t, "true", video.Nickname)
	require.Empty(t, video.CoverURL)
	require.Equal(t, 15, video.Duration)
	require.Equal(t, downloaders.Stats{CollectCount: "0"}, video.Stats)
}

func TestExtractUpstreamError(t *testing.T) {
	srv := apiServer(t, http.StatusBadGateway, "bad gateway")

	_, err := NewExtractor(srv.Client(), srv.URL, "").Extract(context.Background(), "https://www.tiktok.com/@alice/video/123")
	require.ErrorIs(t, err, downloaders.ErrExtraction)

	var failed *downloaders.ExtractionFailedError
	require.True(t, errors.As(err, &failed))
	require.Equal(t, http.StatusBadGateway, failed.StatusCode)
	require.Equal(t, "bad gateway", failed.BodySnippet)
	require.Equal(t, "API Error: 502 - bad gateway", failed.Error())
}

func TestExtractNoMediaURL(t *testing.T) {
	body := `{"data":{"content":{"id":"123","video":{"cover":"https://cdn.example/c.jpg"}}}}`
	srv := apiServer(t, http.StatusOK, body)

	_, err := NewExtractor(srv.Client(), srv.URL, "").Extract(context.Background(), "https://www.tiktok.com/@alice/video/123")
	require.ErrorIs(t, err, downloaders.ErrNoMediaURL)
	require.NotErrorIs(t, err, downloaders.ErrExtraction)

	var noURL *downloaders.NoMediaURLError
	require.True(t, errors.As(err, &noURL))
	require.JSONEq(t, body, string(noURL.Payload))
}

func TestExtractInvalidJSON(t *testing.T) {
	srv := apiServer(t, http.StatusOK, `{"data":`)

	_, err := NewExtractor(srv.Client(), srv.URL, "").Extract(context.Background(), "https://www.tiktok.com/@alice/video/123")
	require.ErrorIs(t, err, downloaders.ErrExtraction)
}

func TestExtractBodySnippetIsTruncated(t *testing.T) {
	long := make([]byte, 1000)
	for i := range long {
		long[i] = 'x'
	}

	srv := apiServer(t, http.StatusInternalServerError, string(long))

	_, err := NewExtractor(srv.Client(), srv.URL, "").Extract(context.Background(), "https://www.tiktok.com/@alice/video/123")

	var failed *downloaders.ExtractionFailedError
	require.True(t, errors.As(err, &failed))
	require.Len(t, failed.BodySnippet, bodySnippetLimit)
}
