//go:generate easyjson dto.go
package handlers

import (
	"github.com/StounhandJ/tiktok_downloader/internal/downloaders"
	"github.com/StounhandJ/tiktok_downloader/internal/history"
)

// Запросы

// easyjson:json
type urlRequest struct {
	URL string `json:"url" validate:"required,tiktokurl"`
}

// easyjson:json
type bulkCreateRequest struct {
	URLs []string `json:"urls" validate:"required,min=1"`
}

// Ответы

// easyjson:json
type errorResponse struct {
	Error string `json:"error"`
}

// videoInfo плоское описание ролика для клиента
// easyjson:json
type videoInfo struct {
	DirectVideoURL string `json:"directVideoUrl"`
	UniqueID       string `json:"uniqueId"`
	Nickname       string `json:"nickname"`
	VideoID        string `json:"videoId"`
	VideoDesc      string `json:"videoDesc"`
	CoverURL       string `json:"coverUrl"`
	DynamicCover   string `json:"dynamicCover"`
	Duration       int    `json:"duration"`
	DiggCount      int64  `json:"diggCount"`
	ShareCount     int64  `json:"shareCount"`
	CommentCount   int64  `json:"commentCount"`
	PlayCount      int64  `json:"playCount"`
	CollectCount   string `json:"collectCount"`
	CreateTime     string `json:"createTime"`
}

func newVideoInfo(video *downloaders.Video) videoInfo {
	return videoInfo{
		DirectVideoURL: video.DirectVideoURL,
		UniqueID:       video.Author,
		Nickname:       video.Nickname,
		VideoID:        video.ID,
		VideoDesc:      video.Description,
		CoverURL:       video.CoverURL,
		DynamicCover:   video.DynamicCover,
		Duration:       video.Duration,
		DiggCount:      video.Stats.DiggCount,
		ShareCount:     video.Stats.ShareCount,
		CommentCount:   video.Stats.CommentCount,
		PlayCount:      video.Stats.PlayCount,
		CollectCount:   video.Stats.CollectCount,
		CreateTime:     video.CreateTime,
	}
}

// easyjson:json
type fetchResponse struct {
	Success   bool      `json:"success"`
	VideoInfo videoInfo `json:"videoInfo"`
}

// easyjson:json
type bulkCreateResponse struct {
	Success        bool   `json:"success"`
	BulkDownloadID string `json:"bulkDownloadId"`
	TotalURLs      int    `json:"totalUrls"`
	InvalidURLs    int    `json:"invalidUrls"`
}

// easyjson:json
type bulkStatusResponse struct {
	Success             bool                 `json:"success"`
	BulkDownloadRequest *history.BulkRequest `json:"bulkDownloadRequest"`
}

// easyjson:json
type historyResponse struct {
	Success bool        `json:"success"`
	Data    historyData `json:"data"`
}

// easyjson:json
type historyData struct {
	Videos          []history.VideoRecord      `json:"videos"`
	SingleDownloads []history.SubmittedRequest `json:"singleDownloads"`
	BulkDownloads   []history.BulkRequest      `json:"bulkDownloads"`
}

// easyjson:json
type healthResponse struct {
	Status string `json:"status"`
}
