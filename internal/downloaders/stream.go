package downloaders

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/StounhandJ/tiktok_downloader/internal/utils"
)

const (
	Referer            = "https://www.tiktok.com/"
	DefaultContentType = "video/mp4"
)

// Media поток тела видео и метаданные для заголовков ответа
type Media struct {
	Body          io.ReadCloser
	FileName      string
	ContentType   string
	ContentLength int64 // -1 если неизвестно
}

type streamer struct {
	client    *http.Client
	userAgent string
}

func NewStreamer(client *http.Client, userAgent string) IStreamer {
	return &streamer{
		client:    client,
		userAgent: utils.StringNotEmptyCoalesce(userAgent, UserAgent),
	}
}

// Stream открывает поток видео. Тело не буферизуется, закрывать его должен вызывающий
func (s streamer) Stream(ctx context.Context, video *Video) (*Media, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, video.DirectVideoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build media request: %w", err)
	}

	req.Header.Set("Referer", Referer)
	req.Header.Set("User-Agent", s.userAgent)

	if video.Cookie != "" {
		req.Header.Set("Cookie", video.Cookie)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDownload, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		closeBody(resp.Body)

		return nil, &DownloadFailedError{StatusCode: resp.StatusCode}
	}

	if resp.Body == nil || resp.Body == http.NoBody {
		closeBody(resp.Body)

		return nil, ErrEmptyBody
	}

	return &Media{
		Body:          resp.Body,
		FileName:      FileName(video),
		ContentType:   utils.StringNotEmptyCoalesce(resp.Header.Get("Content-Type"), DefaultContentType),
		ContentLength: resp.ContentLength,
	}, nil
}

// FileName tiktok_<author>_<id>.mp4, tiktok_<id>.mp4 или tiktok_video.mp4
func FileName(video *Video) string {
	switch {
	case video.Author != "" && video.ID != "":
		return utils.SanitizeFileName(fmt.Sprintf("tiktok_%s_%s.mp4", video.Author, video.ID))
	case video.ID != "":
		return utils.SanitizeFileName(fmt.Sprintf("tiktok_%s.mp4", video.ID))
	default:
		return "tiktok_video.mp4"
	}
}

func closeBody(body io.ReadCloser) {
	if body == nil {
		return
	}

	if err := body.Close(); err != nil {
		utils.Log.Error(err)
	}
}
