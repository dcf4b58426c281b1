package downloaders

import (
	"context"
	"errors"
	"fmt"
)

// Общий user-agent для всех исходящих запросов
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/109.0.0.0 Safari/537.36"

type IDownloader interface {
	Valid(url string) bool
	IResolver
	IExtractor
	IStreamer
}

type IExtractor interface {
	Extract(ctx context.Context, url string) (*Video, error)
}

type IResolver interface {
	Resolve(ctx context.Context, url string) string
}

type IStreamer interface {
	Stream(ctx context.Context, video *Video) (*Media, error)
}

type Stats struct {
	DiggCount    int64
	ShareCount   int64
	CommentCount int64
	PlayCount    int64
	CollectCount string
}

// Video плоская запись метаданных ролика
type Video struct {
	ID             string
	Author         string
	Nickname       string
	Description    string
	CreateTime     string
	CoverURL       string
	DynamicCover   string
	Duration       int
	DirectVideoURL string
	Stats          Stats

	// Cookie нужна только для скачивания, не сохраняется
	Cookie string
}

var (
	ErrInvalidURL = errors.New("invalid tiktok url")
	ErrExtraction = errors.New("extraction api failed")
	ErrNoMediaURL = errors.New("no media url in extraction response")
	ErrDownload   = errors.New("media download failed")
	ErrEmptyBody  = errors.New("media response has no body")
)

// ExtractionFailedError API извлечения ответило не 2xx
type ExtractionFailedError struct {
	StatusCode  int
	BodySnippet string
}

func (e *ExtractionFailedError) Error() string {
	return fmt.Sprintf("API Error: %d - %s", e.StatusCode, e.BodySnippet)
}

func (e *ExtractionFailedError) Is(target error) bool {
	return target == ErrExtraction
}

// NoMediaURLError ответ разобран, но playAddr нет. Payload - сырой ответ для диагностики
type NoMediaURLError struct {
	Payload []byte
}

func (e *NoMediaURLError) Error() string {
	return ErrNoMediaURL.Error()
}

func (e *NoMediaURLError) Is(target error) bool {
	return target == ErrNoMediaURL
}

// DownloadFailedError CDN ответил не 2xx
type DownloadFailedError struct {
	StatusCode int
}

func (e *DownloadFailedError) Error() string {
	return fmt.Sprintf("Download Error: %d", e.StatusCode)
}

func (e *DownloadFailedError) Is(target error) bool {
	return target == ErrDownload
}
