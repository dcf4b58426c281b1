package bulk

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/StounhandJ/tiktok_downloader/internal/utils"
	"github.com/mailru/easyjson"
)

// Client HTTP клиент к API загрузчика
type Client struct {
	base   string
	client *http.Client
}

func NewClient(client *http.Client, baseURL string) *Client {
	return &Client{
		base:   strings.TrimSuffix(baseURL, "/"),
		client: client,
	}
}

// File скачанное видео
type File struct {
	Name string
	Data []byte
}

// Register регистрирует пакет на сервере и возвращает id
func (c *Client) Register(ctx context.Context, urls []string) (string, error) {
	var resp registerResponse
	if err := c.postJSON(ctx, "/bulk-download", bulkRequest{URLs: urls}, &resp); err != nil {
		return "", err
	}

	return resp.ID, nil
}

func (c *Client) Fetch(ctx context.Context, url string) (*VideoInfo, error) {
	var resp fetchResponse
	if err := c.postJSON(ctx, "/fetch", urlRequest{URL: url}, &resp); err != nil {
		return nil, err
	}

	if resp.VideoInfo == nil {
		return nil, fmt.Errorf("fetch %s: empty videoInfo", url)
	}

	return resp.VideoInfo, nil
}

// Download тело буферизуется целиком ради прогресса
func (c *Client) Download(ctx context.Context, url string, onProgress func(percent int)) (*File, error) {
	resp, err := c.post(ctx, "/download", urlRequest{URL: url})
	if err != nil {
		return nil, err
	}
	defer closeBody(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, responseError("/download", resp)
	}

	data, err := ReadWithProgress(resp.Body, resp.ContentLength, onProgress)
	if err != nil {
		return nil, fmt.Errorf("read video: %w", err)
	}

	return &File{Name: fileNameFromDisposition(resp.Header.Get("Content-Disposition")), Data: data}, nil
}

// Thumbnail обложка по прямой ссылке
func (c *Client) Thumbnail(ctx context.Context, coverURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, coverURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer closeBody(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("thumbnail: status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func (c *Client) post(ctx context.Context, path string, body easyjson.Marshaler) (*http.Response, error) {
	payload, err := easyjson.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return resp, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body easyjson.Marshaler, out easyjson.Unmarshaler) error {
	resp, err := c.post(ctx, path, body)
	if err != nil {
		return err
	}
	defer closeBody(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return responseError(path, resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read body: %w", path, err)
	}

	if err = easyjson.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decode: %w", path, err)
	}

	return nil
}

// responseError текст из {"error": ...} сервера, если он есть
func responseError(path string, resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var body errorResponse
	if err := easyjson.Unmarshal(data, &body); err == nil && body.Error != "" {
		return fmt.Errorf("%s: %d %s", path, resp.StatusCode, body.Error)
	}

	return fmt.Errorf("%s: status %d", path, resp.StatusCode)
}

func fileNameFromDisposition(header string) string {
	if header == "" {
		return ""
	}

	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}

	return utils.SanitizeFileName(params["filename"])
}

func closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		utils.Log.Error(err)
	}
}
