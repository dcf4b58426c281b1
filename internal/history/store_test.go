package history

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func at(minutes int) time.Time {
	return base.Add(time.Duration(minutes) * time.Minute)
}

type storeFactory func(t *testing.T) Store

func storeFactories() map[string]storeFactory {
	factories := map[string]storeFactory{
		"memory": func(t *testing.T) Store {
			return NewMemoryStore()
		},
		"sqlite": func(t *testing.T) Store {
			store, err := NewSQLiteStore(context.Background(), ":memory:")
			require.NoError(t, err)
			t.Cleanup(func() { _ = store.Close(context.Background()) })
			return store
		},
	}

	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		factories["mongo"] = func(t *testing.T) Store {
			ctx := context.Background()
			name := fmt.Sprintf("tiktok_downloader_test_%d", time.Now().UnixNano())
			store, err := NewMongoStore(ctx, uri, name)
			require.NoError(t, err)
			t.Cleanup(func() {
				_ = store.client.Database(name).Drop(ctx)
				_ = store.Close(ctx)
			})
			return store
		}
	}

	return factories
}

func forEachStore(t *testing.T, test func(t *testing.T, store Store)) {
	for name, factory := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			test(t, factory(t))
		})
	}
}

func submission(url string, submittedAt time.Time) *SubmittedRequest {
	return &SubmittedRequest{URL: url, Status: StatusPending, SubmittedAt: submittedAt, LastUpdatedAt: submittedAt}
}

func TestUpsertVideoIsIdempotent(t *testing.T) {
	forEachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()

		first := &VideoRecord{VideoID: "7", Author: "alice", Stats: Stats{PlayCount: 10, CollectCount: "1"}, CreatedAt: at(0), LastUpdatedAt: at(0)}
		second := &VideoRecord{VideoID: "7", Author: "alice", Stats: Stats{PlayCount: 25, CollectCount: "2"}, CreatedAt: at(5), LastUpdatedAt: at(5)}

		require.NoError(t, store.UpsertVideo(ctx, first))
		require.NoError(t, store.UpsertVideo(ctx, second))

		videos, err := store.ListVideos(ctx)
		require.NoError(t, err)
		require.Len(t, videos, 1)

		assert.Equal(t, int64(25), videos[0].Stats.PlayCount)
		assert.Equal(t, "2", videos[0].Stats.CollectCount)
		assert.WithinDuration(t, at(0), videos[0].CreatedAt, time.Millisecond)
		assert.WithinDuration(t, at(5), videos[0].LastUpdatedAt, time.Millisecond)
	})
}

func TestListVideosNewestFirst(t *testing.T) {
	forEachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()

		require.NoError(t, store.UpsertVideo(ctx, &VideoRecord{VideoID: "old", CreatedAt: at(0), LastUpdatedAt: at(0)}))
		require.NoError(t, store.UpsertVideo(ctx, &VideoRecord{VideoID: "new", CreatedAt: at(1), LastUpdatedAt: at(1)}))

		videos, err := store.ListVideos(ctx)
		require.NoError(t, err)
		require.Len(t, videos, 2)
		assert.Equal(t, "new", videos[0].VideoID)
		assert.Equal(t, "old", videos[1].VideoID)
	})
}

func TestTerminalStatusIsNotOverwritten(t *testing.T) {
	forEachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()
		url := "https://www.tiktok.com/@a/video/1"

		require.NoError(t, store.InsertSubmission(ctx, submission(url, at(0))))
		require.NoError(t, store.UpdateSubmissionStatus(ctx, url, StatusUpdate{Status: StatusSuccess, At: at(1)}))
		require.NoError(t, store.UpdateSubmissionStatus(ctx, url, StatusUpdate{Status: StatusFailedFinal, Error: "late", At: at(2)}))

		// success не попадает в список незавершенных, значит статус не изменился
		submissions, err := store.ListSubmissions(ctx)
		require.NoError(t, err)
		assert.Empty(t, submissions)
	})
}

func TestFailedFinalAfterSpecificFailure(t *testing.T) {
	forEachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()
		url := "https://www.tiktok.com/@a/video/2"
		details := &Details{VideoID: "2", UniqueID: "a", VideoDesc: "d"}

		require.NoError(t, store.InsertSubmission(ctx, submission(url, at(0))))
		require.NoError(t, store.UpdateSubmissionStatus(ctx, url, StatusUpdate{Status: StatusProcessing, Details: details, At: at(1)}))
		require.NoError(t, store.UpdateSubmissionStatus(ctx, url, StatusUpdate{Status: StatusFailedDownload, Error: "Download Error: 403", At: at(2)}))

		submissions, err := store.ListSubmissions(ctx)
		require.NoError(t, err)
		require.Len(t, submissions, 1)
		assert.Equal(t, StatusFailedDownload, submissions[0].Status)
		assert.Equal(t, "Download Error: 403", submissions[0].Error)
		require.NotNil(t, submissions[0].Details)
		assert.Equal(t, *details, *submissions[0].Details)

		require.NoError(t, store.UpdateSubmissionStatus(ctx, url, StatusUpdate{Status: StatusFailedFinal, Error: "Unknown error in final catch", At: at(3)}))
		require.NoError(t, store.UpdateSubmissionStatus(ctx, url, StatusUpdate{Status: StatusSuccess, At: at(4)}))

		submissions, err = store.ListSubmissions(ctx)
		require.NoError(t, err)
		require.Len(t, submissions, 1)
		assert.Equal(t, StatusFailedFinal, submissions[0].Status)
		assert.Equal(t, "Unknown error in final catch", submissions[0].Error)
		assert.WithinDuration(t, at(3), submissions[0].LastUpdatedAt, time.Millisecond)
	})
}

func TestUpdateTargetsMostRecentOpenSubmission(t *testing.T) {
	forEachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()
		url := "https://www.tiktok.com/@a/video/3"

		require.NoError(t, store.InsertSubmission(ctx, submission(url, at(0))))
		require.NoError(t, store.InsertSubmission(ctx, submission(url, at(1))))
		require.NoError(t, store.UpdateSubmissionStatus(ctx, url, StatusUpdate{Status: StatusFailedAPI, Error: "API Error: 500 - x", At: at(2)}))

		submissions, err := store.ListSubmissions(ctx)
		require.NoError(t, err)
		require.Len(t, submissions, 2)

		assert.Equal(t, StatusFailedAPI, submissions[0].Status)
		assert.WithinDuration(t, at(1), submissions[0].SubmittedAt, time.Millisecond)
		assert.Equal(t, StatusPending, submissions[1].Status)
		assert.Empty(t, submissions[1].Error)
	})
}

func TestUpdateWithoutSubmissionIsNoop(t *testing.T) {
	forEachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()

		require.NoError(t, store.UpdateSubmissionStatus(ctx, "https://www.tiktok.com/@a/video/404", StatusUpdate{Status: StatusSuccess, At: at(0)}))

		submissions, err := store.ListSubmissions(ctx)
		require.NoError(t, err)
		assert.Empty(t, submissions)
	})
}

func TestBulkRequests(t *testing.T) {
	forEachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()

		older := NewBulkRequest("bulk-1", []string{"https://vm.tiktok.com/a/", "https://vm.tiktok.com/b/"}, at(0))
		newer := NewBulkRequest("bulk-2", []string{"https://vm.tiktok.com/c/"}, at(1))
		require.NoError(t, store.InsertBulkRequest(ctx, older))
		require.NoError(t, store.InsertBulkRequest(ctx, newer))

		found, err := store.FindBulkRequest(ctx, "bulk-1")
		require.NoError(t, err)
		assert.Equal(t, "bulk-1", found.ID)
		assert.Equal(t, BulkPending, found.Status)
		assert.Equal(t, older.URLs, found.URLs)
		require.Len(t, found.Items, 2)
		assert.Equal(t, ItemPending, found.Items[0].Status)
		assert.Equal(t, "https://vm.tiktok.com/a/", found.Items[0].URL)

		_, err = store.FindBulkRequest(ctx, "bulk-missing")
		assert.ErrorIs(t, err, ErrNotFound)

		requests, err := store.ListBulkRequests(ctx)
		require.NoError(t, err)
		require.Len(t, requests, 2)
		assert.Equal(t, "bulk-2", requests[0].ID)
		assert.Equal(t, "bulk-1", requests[1].ID)
	})
}

func TestEmptyListsAreNotNil(t *testing.T) {
	forEachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()

		videos, err := store.ListVideos(ctx)
		require.NoError(t, err)
		assert.NotNil(t, videos)

		submissions, err := store.ListSubmissions(ctx)
		require.NoError(t, err)
		assert.NotNil(t, submissions)

		requests, err := store.ListBulkRequests(ctx)
		require.NoError(t, err)
		assert.NotNil(t, requests)
	})
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusSuccess.Terminal())
	assert.True(t, StatusFailedFinal.Terminal())

	for _, s := range []Status{StatusPending, StatusProcessing, StatusFailedAPI, StatusFailedNoURL, StatusFailedDownload, StatusFailedNoBody} {
		assert.False(t, s.Terminal(), s)
	}
}
