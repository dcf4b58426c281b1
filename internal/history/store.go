package history

import "context"

// Reader чтение истории, ошибки отдаются вызывающему
type Reader interface {
	FindBulkRequest(ctx context.Context, id string) (*BulkRequest, error)
	ListVideos(ctx context.Context) ([]VideoRecord, error)
	ListSubmissions(ctx context.Context) ([]SubmittedRequest, error)
	ListBulkRequests(ctx context.Context) ([]BulkRequest, error)
}

type Store interface {
	Reader

	InsertSubmission(ctx context.Context, req *SubmittedRequest) error
	// UpdateSubmissionStatus меняет самую свежую нетерминальную заявку по url.
	// Если такой нет, ничего не делает.
	UpdateSubmissionStatus(ctx context.Context, url string, update StatusUpdate) error
	// UpsertVideo по videoId, createdAt выставляется только при вставке
	UpsertVideo(ctx context.Context, video *VideoRecord) error
	InsertBulkRequest(ctx context.Context, req *BulkRequest) error

	Close(ctx context.Context) error
}
