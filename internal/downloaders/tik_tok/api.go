package tiktok

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/StounhandJ/tiktok_downloader/internal/downloaders"
	"github.com/StounhandJ/tiktok_downloader/internal/utils"
	easyjson "github.com/mailru/easyjson"
)

const (
	BaseUrl = "https://saio-api.vercel.app/service"

	bodySnippetLimit = 200
)

type extractor struct {
	client    *http.Client
	apiURL    string
	userAgent string
}

func NewExtractor(client *http.Client, apiURL, userAgent string) downloaders.IExtractor {
	return &extractor{
		client:    client,
		apiURL:    utils.StringNotEmptyCoalesce(apiURL, BaseUrl),
		userAgent: utils.StringNotEmptyCoalesce(userAgent, downloaders.UserAgent),
	}
}

func (e extractor) Extract(ctx context.Context, postUrl string) (*downloaders.Video, error) {
	payload, err := easyjson.Marshal(apiRequest{URL: postUrl})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", e.userAgent)

	utils.Log.Debugf("[Extraction] %s для %s", e.apiURL, postUrl)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", downloaders.ErrExtraction, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			utils.Log.Error(err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 4*bodySnippetLimit))

		return nil, &downloaders.ExtractionFailedError{
			StatusCode:  resp.StatusCode,
			BodySnippet: utils.Truncate(string(snippet), bodySnippetLimit),
		}
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", downloaders.ErrExtraction, err)
	}

	var data apiResponse

	if err = easyjson.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", downloaders.ErrExtraction, err)
	}

	video := data.toVideo()
	if video.DirectVideoURL == "" {
		return nil, &downloaders.NoMediaURLError{Payload: b}
	}

	return video, nil
}
