package downloaders

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamPassesHeadersAndBody(t *testing.T) {
	body := strings.Repeat("v", 1000)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, Referer, r.Header.Get("Referer"))
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "tt_chain_token=abc", r.Header.Get("Cookie"))

		w.Header().Set("Content-Type", "video/webm")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	media, err := NewStreamer(srv.Client(), "").Stream(context.Background(), &Video{
		ID:             "123",
		Author:         "alice",
		DirectVideoURL: srv.URL + "/v.mp4",
		Cookie:         "tt_chain_token=abc",
	})
	require.NoError(t, err)
	defer media.Body.Close()

	require.Equal(t, "tiktok_alice_123.mp4", media.FileName)
	require.Equal(t, "video/webm", media.ContentType)
	require.Equal(t, int64(1000), media.ContentLength)

	got, err := io.ReadAll(media.Body)
	require.NoError(t, err)
	require.Equal(t, body, string(got))
}

func TestStreamDefaultContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Cookie"))

		// пустой Content-Type не дает net/http угадать тип
		w.Header()["Content-Type"] = nil
		_, _ = w.Write([]byte("data"))
	}))
	t.Cleanup(srv.Close)

	media, err := NewStreamer(srv.Client(), "").Stream(context.Background(), &Video{DirectVideoURL: srv.URL})
	require.NoError(t, err)
	defer media.Body.Close()

	require.Equal(t, DefaultContentType, media.ContentType)
	require.Equal(t, "tiktok_video.mp4", media.FileName)
}

func TestStreamUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	_, err := NewStreamer(srv.Client(), "").Stream(context.Background(), &Video{DirectVideoURL: srv.URL})
	require.ErrorIs(t, err, ErrDownload)

	var failed *DownloadFailedError
	require.True(t, errors.As(err, &failed))
	require.Equal(t, http.StatusForbidden, failed.StatusCode)
	require.Equal(t, "Download Error: 403", failed.Error())
}

func TestStreamEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	_, err := NewStreamer(srv.Client(), "").Stream(context.Background(), &Video{DirectVideoURL: srv.URL})
	require.ErrorIs(t, err, ErrEmptyBody)
}

func TestFileName(t *testing.T) {
	require.Equal(t, "tiktok_alice_123.mp4", FileName(&Video{ID: "123", Author: "alice"}))
	require.Equal(t, "tiktok_123.mp4", FileName(&Video{ID: "123"}))
	require.Equal(t, "tiktok_video.mp4", FileName(&Video{Author: "alice"}))
	require.Equal(t, "tiktok_a_b_1.mp4", FileName(&Video{ID: "1", Author: "a/b"}))
}

type fakeExtractor struct {
	video *Video
	err   error
	calls int
}

func (f *fakeExtractor) Extract(context.Context, string) (*Video, error) {
	f.calls++

	return f.video, f.err
}

func TestChainFallsBack(t *testing.T) {
	primary := &fakeExtractor{err: ErrNoMediaURL}
	fallback := &fakeExtractor{video: &Video{ID: "1"}}

	video, err := Chain(primary, fallback).Extract(context.Background(), "u")
	require.NoError(t, err)
	require.Equal(t, "1", video.ID)
	require.Equal(t, 1, primary.calls)
	require.Equal(t, 1, fallback.calls)
}

func TestChainReturnsFirstError(t *testing.T) {
	primary := &fakeExtractor{err: &ExtractionFailedError{StatusCode: 502}}
	fallback := &fakeExtractor{err: ErrNoMediaURL}

	_, err := Chain(primary, fallback).Extract(context.Background(), "u")
	require.ErrorIs(t, err, ErrExtraction)
	require.NotErrorIs(t, err, ErrNoMediaURL)
}

func TestChainSkipsSuccessfulPrimary(t *testing.T) {
	primary := &fakeExtractor{video: &Video{ID: "p"}}
	fallback := &fakeExtractor{video: &Video{ID: "f"}}

	video, err := Chain(primary, fallback).Extract(context.Background(), "u")
	require.NoError(t, err)
	require.Equal(t, "p", video.ID)
	require.Zero(t, fallback.calls)
}
