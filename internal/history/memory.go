package history

import (
	"context"
	"slices"
	"sort"
	"sync"
)

// MemoryStore хранилище в памяти процесса, для разработки и тестов
type MemoryStore struct {
	mu          sync.Mutex
	submissions []SubmittedRequest
	videos      []VideoRecord
	bulk        []BulkRequest
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) InsertSubmission(_ context.Context, req *SubmittedRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.submissions = append(s.submissions, cloneSubmission(*req))

	return nil
}

func (s *MemoryStore) UpdateSubmissionStatus(_ context.Context, url string, update StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := -1
	for i := range s.submissions {
		sub := &s.submissions[i]
		if sub.URL != url || sub.Status.Terminal() {
			continue
		}

		// при равном времени берется более поздняя вставка
		if target == -1 || !sub.SubmittedAt.Before(s.submissions[target].SubmittedAt) {
			target = i
		}
	}

	if target != -1 {
		s.submissions[target].apply(update)
	}

	return nil
}

func (s *MemoryStore) UpsertVideo(_ context.Context, video *VideoRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.videos {
		if s.videos[i].VideoID == video.VideoID {
			createdAt := s.videos[i].CreatedAt
			s.videos[i] = *video
			s.videos[i].CreatedAt = createdAt
			return nil
		}
	}

	s.videos = append(s.videos, *video)

	return nil
}

func (s *MemoryStore) InsertBulkRequest(_ context.Context, req *BulkRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bulk = append(s.bulk, cloneBulk(*req))

	return nil
}

func (s *MemoryStore) FindBulkRequest(_ context.Context, id string) (*BulkRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, req := range s.bulk {
		if req.ID == id {
			found := cloneBulk(req)
			return &found, nil
		}
	}

	return nil, ErrNotFound
}

func (s *MemoryStore) ListVideos(_ context.Context) ([]VideoRecord, error) {
	s.mu.Lock()
	videos := slices.Clone(s.videos)
	s.mu.Unlock()

	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].LastUpdatedAt.After(videos[j].LastUpdatedAt)
	})

	return nonNil(videos), nil
}

func (s *MemoryStore) ListSubmissions(_ context.Context) ([]SubmittedRequest, error) {
	s.mu.Lock()
	submissions := make([]SubmittedRequest, 0, len(s.submissions))
	for _, sub := range s.submissions {
		if sub.Status != StatusSuccess {
			submissions = append(submissions, cloneSubmission(sub))
		}
	}
	s.mu.Unlock()

	sort.SliceStable(submissions, func(i, j int) bool {
		return submissions[i].LastUpdatedAt.After(submissions[j].LastUpdatedAt)
	})

	return submissions, nil
}

func (s *MemoryStore) ListBulkRequests(_ context.Context) ([]BulkRequest, error) {
	s.mu.Lock()
	requests := make([]BulkRequest, 0, len(s.bulk))
	for _, req := range s.bulk {
		requests = append(requests, cloneBulk(req))
	}
	s.mu.Unlock()

	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].UpdatedAt.After(requests[j].UpdatedAt)
	})

	return requests, nil
}

func (s *MemoryStore) Close(context.Context) error {
	return nil
}

func cloneSubmission(r SubmittedRequest) SubmittedRequest {
	if r.Details != nil {
		details := *r.Details
		r.Details = &details
	}

	return r
}

func cloneBulk(r BulkRequest) BulkRequest {
	r.URLs = slices.Clone(r.URLs)
	r.Items = slices.Clone(r.Items)

	return r
}

func nonNil[T any](values []T) []T {
	if values == nil {
		return make([]T, 0)
	}

	return values
}
