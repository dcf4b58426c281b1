package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/StounhandJ/tiktok_downloader/internal/downloaders"
	tiktok "github.com/StounhandJ/tiktok_downloader/internal/downloaders/tik_tok"
	"github.com/StounhandJ/tiktok_downloader/internal/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

const aliceURL = "https://www.tiktok.com/@alice/video/123"

type statusCall struct {
	URL     string
	Status  history.Status
	Error   string
	Details *history.Details
}

// spyRecorder запоминает события истории в порядке вызова
type spyRecorder struct {
	mu          sync.Mutex
	submissions []string
	statuses    []statusCall
	videos      []string
	bulk        map[string][]string
}

func (r *spyRecorder) RecordSubmission(url string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions = append(r.submissions, url)
}

func (r *spyRecorder) UpdateStatus(url string, status history.Status, errMessage string, details *history.Details) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, statusCall{URL: url, Status: status, Error: errMessage, Details: details})
}

func (r *spyRecorder) UpsertVideo(video *downloaders.Video) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.videos = append(r.videos, video.ID)
}

func (r *spyRecorder) RecordBulkRequest(id string, urls []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bulk == nil {
		r.bulk = map[string][]string{}
	}
	r.bulk[id] = urls
}

func (r *spyRecorder) lastStatus(t *testing.T) statusCall {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.statuses)
	return r.statuses[len(r.statuses)-1]
}

func (r *spyRecorder) statusNames() []history.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]history.Status, 0, len(r.statuses))
	for _, s := range r.statuses {
		names = append(names, s.Status)
	}
	return names
}

// upstream поддельные API извлечения и CDN
type upstream struct {
	api *httptest.Server
	cdn *httptest.Server
}

func newUpstream(t *testing.T, api func(cdnURL string) http.HandlerFunc, cdn http.HandlerFunc) *upstream {
	t.Helper()

	u := &upstream{cdn: httptest.NewServer(cdn)}
	t.Cleanup(u.cdn.Close)

	u.api = httptest.NewServer(api(u.cdn.URL))
	t.Cleanup(u.api.Close)

	return u
}

func (u *upstream) downloader() downloaders.IDownloader {
	return tiktok.New(&http.Client{Timeout: 5 * time.Second}, tiktok.Options{
		APIURL:    u.api.URL,
		UserAgent: downloaders.UserAgent,
	})
}

func apiPayload(payload string) func(cdnURL string) http.HandlerFunc {
	return func(cdnURL string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = fmt.Fprintf(w, payload, cdnURL)
		}
	}
}

var aliceAPI = apiPayload(`{"data":{"content":{"id":"123","desc":"hello","author":{"uniqueId":"alice","nickname":"Alice"},"video":{"playAddr":"%s/v.mp4","cover":"c.jpg","duration":15},"stats":{"diggCount":5,"playCount":"100"}}}}`)

func videoCDN(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "video/mp4")
	w.Header().Set("Content-Length", "1000")
	_, _ = w.Write(bytes.Repeat([]byte("v"), 1000))
}

func newTestHandler(downloader downloaders.IDownloader, recorder Recorder, reader history.Reader) *handler {
	return NewHandler(context.Background(), Options{
		Downloader: downloader,
		Recorder:   recorder,
		History:    reader,
		PublicURL:  "https://dl.example.com",
		NewID:      func() string { return "bulk-test" },
	})
}

func request(h *handler, method, uri, body string) *fasthttp.RequestCtx {
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(uri)
	if body != "" {
		req.Header.SetContentType("application/json")
		req.SetBodyString(body)
	}

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)

	h.Router(ctx)

	return ctx
}

func decodeBody(t *testing.T, ctx *fasthttp.RequestCtx) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &body), string(ctx.Response.Body()))
	return body
}

func TestDownloadStreamsVideo(t *testing.T) {
	u := newUpstream(t, aliceAPI, videoCDN)
	spy := &spyRecorder{}
	h := newTestHandler(u.downloader(), spy, history.NewMemoryStore())

	ctx := request(h, http.MethodPost, "/download", `{"url":"`+aliceURL+`"}`)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, `attachment; filename="tiktok_alice_123.mp4"`, string(ctx.Response.Header.Peek("Content-Disposition")))
	assert.Equal(t, "video/mp4", string(ctx.Response.Header.ContentType()))
	assert.Equal(t, 1000, ctx.Response.Header.ContentLength())
	assert.Len(t, ctx.Response.Body(), 1000)

	assert.Equal(t, []string{aliceURL}, spy.submissions)
	assert.Equal(t, []history.Status{history.StatusProcessing, history.StatusSuccess}, spy.statusNames())
	assert.Equal(t, &history.Details{VideoID: "123", UniqueID: "alice", VideoDesc: "hello"}, spy.statuses[0].Details)
	assert.Equal(t, []string{"123"}, spy.videos)
}

func TestDownloadExtractionFailure(t *testing.T) {
	api := func(string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("bad gateway"))
		}
	}
	u := newUpstream(t, api, videoCDN)
	spy := &spyRecorder{}
	h := newTestHandler(u.downloader(), spy, history.NewMemoryStore())

	ctx := request(h, http.MethodPost, "/download", `{"url":"`+aliceURL+`"}`)

	assert.Equal(t, http.StatusInternalServerError, ctx.Response.StatusCode())
	assert.Equal(t, msgDownloadFailed, decodeBody(t, ctx)["error"])

	last := spy.lastStatus(t)
	assert.Equal(t, history.StatusFailedAPI, last.Status)
	assert.Equal(t, "API Error: 502 - bad gateway", last.Error)
	assert.Equal(t, []history.Status{history.StatusFailedAPI}, spy.statusNames())
}

func TestDownloadNoMediaURL(t *testing.T) {
	payload := `{"data":{"content":{"id":"123","video":{}}}}`
	api := func(string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(payload))
		}
	}
	u := newUpstream(t, api, videoCDN)
	spy := &spyRecorder{}
	h := newTestHandler(u.downloader(), spy, history.NewMemoryStore())

	ctx := request(h, http.MethodPost, "/download", `{"url":"`+aliceURL+`"}`)

	assert.Equal(t, http.StatusInternalServerError, ctx.Response.StatusCode())

	last := spy.lastStatus(t)
	assert.Equal(t, history.StatusFailedNoURL, last.Status)
	assert.Equal(t, errNoVideoURL, last.Error)
	require.NotNil(t, last.Details)
	assert.JSONEq(t, payload, last.Details.Payload)
}

func TestDownloadMediaFailure(t *testing.T) {
	cdn := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}
	u := newUpstream(t, aliceAPI, cdn)
	spy := &spyRecorder{}
	h := newTestHandler(u.downloader(), spy, history.NewMemoryStore())

	ctx := request(h, http.MethodPost, "/download", `{"url":"`+aliceURL+`"}`)

	assert.Equal(t, http.StatusInternalServerError, ctx.Response.StatusCode())
	assert.Equal(t, []history.Status{history.StatusProcessing, history.StatusFailedDownload}, spy.statusNames())
	assert.Equal(t, "Download Error: 403", spy.lastStatus(t).Error)
}

func TestDownloadRejectsInvalidInput(t *testing.T) {
	spy := &spyRecorder{}
	h := newTestHandler(tiktok.New(http.DefaultClient, tiktok.Options{}), spy, history.NewMemoryStore())

	for name, body := range map[string]string{
		"foreign host":  `{"url":"https://example.com/@alice/video/1"}`,
		"not a string":  `{"url":123}`,
		"missing url":   `{}`,
		"broken json":   `{"url":`,
		"empty body":    ``,
		"trailing data": `{"url":"` + aliceURL + `"} tail`,
	} {
		t.Run(name, func(t *testing.T) {
			ctx := request(h, http.MethodPost, "/download", body)
			assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
			assert.Equal(t, msgInvalidURL, decodeBody(t, ctx)["error"])
		})
	}

	assert.Empty(t, spy.submissions)
	assert.Empty(t, spy.statuses)
}

// panicDownloader падает на извлечении
type panicDownloader struct {
	downloaders.IDownloader
}

func (panicDownloader) Valid(string) bool { return true }

func (panicDownloader) Resolve(_ context.Context, url string) string { return url }

func (panicDownloader) Extract(context.Context, string) (*downloaders.Video, error) {
	panic("unexpected")
}

func TestDownloadPanicIsFinalFailure(t *testing.T) {
	spy := &spyRecorder{}
	h := newTestHandler(panicDownloader{}, spy, history.NewMemoryStore())

	ctx := request(h, http.MethodPost, "/download", `{"url":"`+aliceURL+`"}`)

	assert.Equal(t, http.StatusInternalServerError, ctx.Response.StatusCode())
	assert.Equal(t, msgDownloadFailed, decodeBody(t, ctx)["error"])

	last := spy.lastStatus(t)
	assert.Equal(t, history.StatusFailedFinal, last.Status)
	assert.Equal(t, errUnknownFinal, last.Error)
}

func TestVideoByLink(t *testing.T) {
	u := newUpstream(t, aliceAPI, videoCDN)
	spy := &spyRecorder{}
	h := newTestHandler(u.downloader(), spy, history.NewMemoryStore())

	ctx := request(h, http.MethodGet, "/video?src="+aliceURL, "")
	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.Len(t, ctx.Response.Body(), 1000)
	assert.Equal(t, history.StatusSuccess, spy.lastStatus(t).Status)

	ctx = request(h, http.MethodGet, "/video?src=https://example.com", "")
	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
}

func TestFetchReturnsVideoInfo(t *testing.T) {
	u := newUpstream(t, aliceAPI, videoCDN)
	spy := &spyRecorder{}
	h := newTestHandler(u.downloader(), spy, history.NewMemoryStore())

	ctx := request(h, http.MethodPost, "/fetch", `{"url":"`+aliceURL+`"}`)
	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	body := decodeBody(t, ctx)
	assert.Equal(t, true, body["success"])

	info, ok := body["videoInfo"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, u.cdn.URL+"/v.mp4", info["directVideoUrl"])
	assert.Equal(t, "alice", info["uniqueId"])
	assert.Equal(t, "Alice", info["nickname"])
	assert.Equal(t, "123", info["videoId"])
	assert.Equal(t, "hello", info["videoDesc"])
	assert.Equal(t, float64(15), info["duration"])
	assert.Equal(t, float64(5), info["diggCount"])
	assert.Equal(t, float64(100), info["playCount"])
	assert.Equal(t, float64(0), info["shareCount"])
	assert.Equal(t, "0", info["collectCount"])

	assert.Empty(t, spy.submissions)
	assert.Equal(t, []string{"123"}, spy.videos)
}

func TestFetchFailure(t *testing.T) {
	api := func(string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
	u := newUpstream(t, api, videoCDN)
	h := newTestHandler(u.downloader(), &spyRecorder{}, history.NewMemoryStore())

	ctx := request(h, http.MethodPost, "/fetch", `{"url":"`+aliceURL+`"}`)
	assert.Equal(t, http.StatusInternalServerError, ctx.Response.StatusCode())
	assert.Equal(t, msgFetchFailed, decodeBody(t, ctx)["error"])

	ctx = request(h, http.MethodPost, "/fetch", `{"url":"https://youtube.com/watch?v=1"}`)
	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
}

func TestBulkCreate(t *testing.T) {
	store := history.NewMemoryStore()
	recorder := history.NewRecorder(store, 0)
	defer recorder.Close(context.Background())

	h := newTestHandler(tiktok.New(http.DefaultClient, tiktok.Options{}), recorder, store)

	ctx := request(h, http.MethodPost, "/bulk-download",
		`{"urls":["https://vm.tiktok.com/ZM1/","not-a-tiktok-link","https://www.tiktok.com/@bob/video/9"]}`)
	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	body := decodeBody(t, ctx)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "bulk-test", body["bulkDownloadId"])
	assert.Equal(t, float64(2), body["totalUrls"])
	assert.Equal(t, float64(1), body["invalidUrls"])

	syncCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, recorder.Sync(syncCtx))

	req, err := store.FindBulkRequest(context.Background(), "bulk-test")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://vm.tiktok.com/ZM1/", "https://www.tiktok.com/@bob/video/9"}, req.URLs)
	require.Len(t, req.Items, 2)
	for _, item := range req.Items {
		assert.Equal(t, history.ItemPending, item.Status)
	}

	ctx = request(h, http.MethodGet, "/bulk-download?id=bulk-test", "")
	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	status := decodeBody(t, ctx)
	assert.Equal(t, true, status["success"])
	bulk, ok := status["bulkDownloadRequest"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "bulk-test", bulk["id"])
	assert.Equal(t, "pending", bulk["status"])
}

func TestBulkCreateRejects(t *testing.T) {
	spy := &spyRecorder{}
	h := newTestHandler(tiktok.New(http.DefaultClient, tiktok.Options{}), spy, history.NewMemoryStore())

	for body, message := range map[string]string{
		`{"urls":[]}`:                    msgNoURLs,
		`{}`:                             msgNoURLs,
		`{"urls":"https://vm.tiktok"}`:   msgNoURLs,
		`{"urls":["a","b"]}`:             msgNoValidURLs,
		`{"urls":["` + aliceURL + `"]}]`: msgNoURLs,
	} {
		ctx := request(h, http.MethodPost, "/bulk-download", body)
		assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode(), body)
		assert.Equal(t, message, decodeBody(t, ctx)["error"], body)
	}

	assert.Empty(t, spy.bulk)
}

func TestBulkStatusErrors(t *testing.T) {
	h := newTestHandler(tiktok.New(http.DefaultClient, tiktok.Options{}), &spyRecorder{}, history.NewMemoryStore())

	ctx := request(h, http.MethodGet, "/bulk-download", "")
	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
	assert.Equal(t, msgNoBulkID, decodeBody(t, ctx)["error"])

	ctx = request(h, http.MethodGet, "/bulk-download?id=bulk-missing", "")
	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
	assert.Equal(t, msgBulkNotFound, decodeBody(t, ctx)["error"])

	broken := newTestHandler(tiktok.New(http.DefaultClient, tiktok.Options{}), &spyRecorder{}, brokenReader{})
	ctx = request(broken, http.MethodGet, "/bulk-download?id=bulk-1", "")
	assert.Equal(t, http.StatusInternalServerError, ctx.Response.StatusCode())
	assert.Equal(t, msgBulkStoreFailed, decodeBody(t, ctx)["error"])
}

// brokenReader хранилище недоступно
type brokenReader struct{}

var errStoreDown = errors.New("store is down")

func (brokenReader) FindBulkRequest(context.Context, string) (*history.BulkRequest, error) {
	return nil, errStoreDown
}

func (brokenReader) ListVideos(context.Context) ([]history.VideoRecord, error) {
	return nil, errStoreDown
}

func (brokenReader) ListSubmissions(context.Context) ([]history.SubmittedRequest, error) {
	return nil, errStoreDown
}

func (brokenReader) ListBulkRequests(context.Context) ([]history.BulkRequest, error) {
	return nil, errStoreDown
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	store := history.NewMemoryStore()
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.UpsertVideo(ctx, &history.VideoRecord{VideoID: "123", Author: "alice", CreatedAt: now, LastUpdatedAt: now}))
	require.NoError(t, store.InsertSubmission(ctx, &history.SubmittedRequest{URL: aliceURL, Status: history.StatusSuccess, SubmittedAt: now, LastUpdatedAt: now}))
	require.NoError(t, store.InsertSubmission(ctx, &history.SubmittedRequest{URL: aliceURL, Status: history.StatusFailedAPI, Error: "API Error: 502 - x", SubmittedAt: now, LastUpdatedAt: now}))
	require.NoError(t, store.InsertBulkRequest(ctx, history.NewBulkRequest("bulk-1", []string{aliceURL}, now)))

	h := newTestHandler(tiktok.New(http.DefaultClient, tiktok.Options{}), &spyRecorder{}, store)

	resp := request(h, http.MethodGet, "/history", "")
	require.Equal(t, http.StatusOK, resp.Response.StatusCode())

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, data["videos"], 1)
	assert.Len(t, data["bulkDownloads"], 1)

	singles, ok := data["singleDownloads"].([]any)
	require.True(t, ok)
	require.Len(t, singles, 1)
	assert.Equal(t, "failed_api", singles[0].(map[string]any)["status"])

	broken := newTestHandler(tiktok.New(http.DefaultClient, tiktok.Options{}), &spyRecorder{}, brokenReader{})
	resp = request(broken, http.MethodGet, "/history", "")
	assert.Equal(t, http.StatusInternalServerError, resp.Response.StatusCode())
	assert.Equal(t, msgHistoryFailed, decodeBody(t, resp)["error"])
}

func TestHistoryEmptyLists(t *testing.T) {
	h := newTestHandler(tiktok.New(http.DefaultClient, tiktok.Options{}), &spyRecorder{}, history.NewMemoryStore())

	resp := request(h, http.MethodGet, "/history", "")
	require.Equal(t, http.StatusOK, resp.Response.StatusCode())
	assert.JSONEq(t, `{"success":true,"data":{"videos":[],"singleDownloads":[],"bulkDownloads":[]}}`, string(resp.Response.Body()))
}

func TestRouting(t *testing.T) {
	h := newTestHandler(tiktok.New(http.DefaultClient, tiktok.Options{}), &spyRecorder{}, history.NewMemoryStore())

	ctx := request(h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"status":"ok"}`, string(ctx.Response.Body()))

	ctx = request(h, http.MethodGet, "/unknown", "")
	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())

	for _, c := range []struct{ method, path string }{
		{http.MethodGet, "/fetch"},
		{http.MethodGet, "/download"},
		{http.MethodPost, "/history"},
		{http.MethodDelete, "/bulk-download"},
		{http.MethodPost, "/video"},
	} {
		ctx = request(h, c.method, c.path, "")
		assert.Equal(t, http.StatusMethodNotAllowed, ctx.Response.StatusCode(), c.method+" "+c.path)
	}
}

func TestBodySize(t *testing.T) {
	assert.Equal(t, -1, bodySize(-1))
	assert.Equal(t, 0, bodySize(0))
	assert.Equal(t, 1024, bodySize(1024))
	assert.Equal(t, math.MaxInt, bodySize(int64(math.MaxInt)))

	if strconv.IntSize == 32 {
		assert.Equal(t, -1, bodySize(1<<40))
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		err    error
		status history.Status
	}{
		{&downloaders.ExtractionFailedError{StatusCode: 500}, history.StatusFailedAPI},
		{fmt.Errorf("decode: %w", downloaders.ErrExtraction), history.StatusFailedAPI},
		{&downloaders.NoMediaURLError{Payload: []byte("{}")}, history.StatusFailedNoURL},
		{&downloaders.DownloadFailedError{StatusCode: 404}, history.StatusFailedDownload},
		{downloaders.ErrEmptyBody, history.StatusFailedNoBody},
		{errors.New("connection reset"), history.StatusFailedFinal},
	}

	for _, c := range cases {
		status, message, _ := classify(c.err)
		assert.Equal(t, c.status, status, c.err.Error())
		assert.NotEmpty(t, message)
	}
}

func TestBulkIDIsUnique(t *testing.T) {
	first, second := NewBulkID(), NewBulkID()

	assert.Regexp(t, `^bulk-[0-9a-f-]{36}$`, first)
	assert.NotEqual(t, first, second)
}
