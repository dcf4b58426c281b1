//go:generate easyjson models.go
package history

import (
	"errors"
	"time"

	"github.com/StounhandJ/tiktok_downloader/internal/downloaders"
)

// Имена коллекций (таблиц)
const (
	SubmittedURLsCollection = "submitted_urls"
	VideosCollection        = "tiktok_videos"
	BulkDownloadsCollection = "bulk_downloads"
)

var ErrNotFound = errors.New("not found")

type Status string

const (
	StatusPending        Status = "pending"
	StatusProcessing     Status = "processing"
	StatusSuccess        Status = "success"
	StatusFailedAPI      Status = "failed_api"
	StatusFailedNoURL    Status = "failed_no_url"
	StatusFailedDownload Status = "failed_download"
	StatusFailedNoBody   Status = "failed_no_body"
	StatusFailedFinal    Status = "failed_final"
)

// Терминальные статусы больше не перезаписываются
var terminalStatuses = []Status{StatusSuccess, StatusFailedFinal}

func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusFailedFinal
}

// Details диагностика к статусу заявки
// easyjson:json
type Details struct {
	VideoID   string `bson:"videoId,omitempty" json:"videoId,omitempty"`
	UniqueID  string `bson:"uniqueId,omitempty" json:"uniqueId,omitempty"`
	VideoDesc string `bson:"videoDesc,omitempty" json:"videoDesc,omitempty"`
	Payload   string `bson:"payload,omitempty" json:"payload,omitempty"` // сырой ответ API, если в нем не оказалось ссылки
}

// easyjson:json
type SubmittedRequest struct {
	URL           string    `bson:"url" json:"url"`
	ResolvedURL   string    `bson:"resolvedUrl,omitempty" json:"resolvedUrl,omitempty"`
	Status        Status    `bson:"status" json:"status"`
	Error         string    `bson:"error,omitempty" json:"error,omitempty"`
	Details       *Details  `bson:"details,omitempty" json:"details,omitempty"`
	SubmittedAt   time.Time `bson:"submittedAt" json:"submittedAt"`
	LastUpdatedAt time.Time `bson:"lastUpdatedAt" json:"lastUpdatedAt"`
}

// StatusUpdate пустые Error и Details не затирают сохраненные значения
type StatusUpdate struct {
	Status  Status
	Error   string
	Details *Details
	At      time.Time
}

func (r *SubmittedRequest) apply(u StatusUpdate) {
	r.Status = u.Status
	r.LastUpdatedAt = u.At

	if u.Error != "" {
		r.Error = u.Error
	}

	if u.Details != nil {
		r.Details = u.Details
	}
}

// easyjson:json
type Stats struct {
	DiggCount    int64  `bson:"diggCount" json:"diggCount"`
	ShareCount   int64  `bson:"shareCount" json:"shareCount"`
	CommentCount int64  `bson:"commentCount" json:"commentCount"`
	PlayCount    int64  `bson:"playCount" json:"playCount"`
	CollectCount string `bson:"collectCount" json:"collectCount"`
}

// easyjson:json
type VideoRecord struct {
	VideoID        string    `bson:"videoId" json:"videoId"`
	Author         string    `bson:"author" json:"author"`
	Nickname       string    `bson:"nickname" json:"nickname"`
	Description    string    `bson:"description" json:"description"`
	Stats          Stats     `bson:"stats" json:"stats"`
	CoverURL       string    `bson:"coverUrl" json:"coverUrl"`
	DynamicCover   string    `bson:"dynamicCover" json:"dynamicCover"`
	Duration       int       `bson:"duration" json:"duration"`
	DirectVideoURL string    `bson:"directVideoUrl" json:"directVideoUrl"`
	CreateTime     string    `bson:"createTime" json:"createTime"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	LastUpdatedAt  time.Time `bson:"lastUpdatedAt" json:"lastUpdatedAt"`
}

func NewVideoRecord(video *downloaders.Video, at time.Time) *VideoRecord {
	return &VideoRecord{
		VideoID:     video.ID,
		Author:      video.Author,
		Nickname:    video.Nickname,
		Description: video.Description,
		Stats: Stats{
			DiggCount:    video.Stats.DiggCount,
			ShareCount:   video.Stats.ShareCount,
			CommentCount: video.Stats.CommentCount,
			PlayCount:    video.Stats.PlayCount,
			CollectCount: video.Stats.CollectCount,
		},
		CoverURL:       video.CoverURL,
		DynamicCover:   video.DynamicCover,
		Duration:       video.Duration,
		DirectVideoURL: video.DirectVideoURL,
		CreateTime:     video.CreateTime,
		CreatedAt:      at,
		LastUpdatedAt:  at,
	}
}

type BulkStatus string

const (
	BulkPending    BulkStatus = "pending"
	BulkProcessing BulkStatus = "processing"
	BulkCompleted  BulkStatus = "completed"
)

type ItemStatus string

const (
	ItemPending     ItemStatus = "pending"
	ItemFetching    ItemStatus = "fetching"
	ItemDownloading ItemStatus = "downloading"
	ItemCompleted   ItemStatus = "completed"
	ItemError       ItemStatus = "error"
)

// easyjson:json
type BulkItem struct {
	URL         string     `bson:"url" json:"url"`
	ResolvedURL string     `bson:"resolvedUrl,omitempty" json:"resolvedUrl,omitempty"`
	Status      ItemStatus `bson:"status" json:"status"`
	Error       string     `bson:"error,omitempty" json:"error,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// easyjson:json
type BulkRequest struct {
	ID        string     `bson:"id" json:"id"`
	URLs      []string   `bson:"urls" json:"urls"`
	Status    BulkStatus `bson:"status" json:"status"`
	Items     []BulkItem `bson:"items" json:"items"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// Колонки SQLite

// easyjson:json
type stringList []string

// easyjson:json
type bulkItems []BulkItem

// NewBulkRequest все элементы создаются в pending
func NewBulkRequest(id string, urls []string, at time.Time) *BulkRequest {
	items := make([]BulkItem, 0, len(urls))
	for _, url := range urls {
		items = append(items, BulkItem{
			URL:       url,
			Status:    ItemPending,
			CreatedAt: at,
			UpdatedAt: at,
		})
	}

	return &BulkRequest{
		ID:        id,
		URLs:      urls,
		Status:    BulkPending,
		Items:     items,
		CreatedAt: at,
		UpdatedAt: at,
	}
}
