package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mailru/easyjson"
	_ "modernc.org/sqlite"
)

var sqlitePragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 10000",
	"PRAGMA synchronous = NORMAL",
}

// Время хранится в unix-наносекундах, чтобы сортировка в SQL совпадала с хронологией
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS submitted_urls (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	url             TEXT NOT NULL,
	resolved_url    TEXT NOT NULL DEFAULT '',
	status          TEXT NOT NULL,
	error           TEXT NOT NULL DEFAULT '',
	details         TEXT,
	submitted_at    INTEGER NOT NULL,
	last_updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_submitted_urls_url ON submitted_urls(url, status);

CREATE TABLE IF NOT EXISTS tiktok_videos (
	video_id         TEXT PRIMARY KEY,
	author           TEXT NOT NULL,
	nickname         TEXT NOT NULL,
	description      TEXT NOT NULL,
	digg_count       INTEGER NOT NULL,
	share_count      INTEGER NOT NULL,
	comment_count    INTEGER NOT NULL,
	play_count       INTEGER NOT NULL,
	collect_count    TEXT NOT NULL,
	cover_url        TEXT NOT NULL,
	dynamic_cover    TEXT NOT NULL,
	duration         INTEGER NOT NULL,
	direct_video_url TEXT NOT NULL,
	create_time      TEXT NOT NULL,
	created_at       INTEGER NOT NULL,
	last_updated_at  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS bulk_downloads (
	id         TEXT PRIMARY KEY,
	urls       TEXT NOT NULL,
	status     TEXT NOT NULL,
	items      TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);
`

// SQLiteStore встроенное хранилище на modernc.org/sqlite
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	// одно соединение: для :memory: каждое соединение - отдельная база
	db.SetMaxOpenConns(1)

	for _, pragma := range sqlitePragmas {
		if _, err = db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}

	if _, err = db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create sqlite schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) InsertSubmission(ctx context.Context, req *SubmittedRequest) error {
	details, err := marshalDetails(req.Details)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO submitted_urls (url, resolved_url, status, error, details, submitted_at, last_updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		req.URL, req.ResolvedURL, string(req.Status), req.Error, details,
		req.SubmittedAt.UnixNano(), req.LastUpdatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}

	return nil
}

func (s *SQLiteStore) UpdateSubmissionStatus(ctx context.Context, url string, update StatusUpdate) error {
	details, err := marshalDetails(update.Details)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE submitted_urls
		 SET status = ?, error = COALESCE(NULLIF(?, ''), error), details = COALESCE(?, details), last_updated_at = ?
		 WHERE id = (
			SELECT id FROM submitted_urls
			WHERE url = ? AND status NOT IN (?, ?)
			ORDER BY submitted_at DESC, id DESC
			LIMIT 1
		 )`,
		string(update.Status), update.Error, details, update.At.UnixNano(),
		url, string(StatusSuccess), string(StatusFailedFinal),
	)
	if err != nil {
		return fmt.Errorf("update submission status: %w", err)
	}

	return nil
}

func (s *SQLiteStore) UpsertVideo(ctx context.Context, v *VideoRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tiktok_videos (video_id, author, nickname, description,
			digg_count, share_count, comment_count, play_count, collect_count,
			cover_url, dynamic_cover, duration, direct_video_url, create_time, created_at, last_updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(video_id) DO UPDATE SET
			author = excluded.author,
			nickname = excluded.nickname,
			description = excluded.description,
			digg_count = excluded.digg_count,
			share_count = excluded.share_count,
			comment_count = excluded.comment_count,
			play_count = excluded.play_count,
			collect_count = excluded.collect_count,
			cover_url = excluded.cover_url,
			dynamic_cover = excluded.dynamic_cover,
			duration = excluded.duration,
			direct_video_url = excluded.direct_video_url,
			create_time = excluded.create_time,
			last_updated_at = excluded.last_updated_at`,
		v.VideoID, v.Author, v.Nickname, v.Description,
		v.Stats.DiggCount, v.Stats.ShareCount, v.Stats.CommentCount, v.Stats.PlayCount, v.Stats.CollectCount,
		v.CoverURL, v.DynamicCover, v.Duration, v.DirectVideoURL, v.CreateTime,
		v.CreatedAt.UnixNano(), v.LastUpdatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("upsert video %s: %w", v.VideoID, err)
	}

	return nil
}

func (s *SQLiteStore) InsertBulkRequest(ctx context.Context, req *BulkRequest) error {
	urls, err := easyjson.Marshal(stringList(nonNil(req.URLs)))
	if err != nil {
		return fmt.Errorf("marshal bulk urls: %w", err)
	}

	items, err := easyjson.Marshal(bulkItems(nonNil(req.Items)))
	if err != nil {
		return fmt.Errorf("marshal bulk items: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO bulk_downloads (id, urls, status, items, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		req.ID, string(urls), string(req.Status), string(items), req.CreatedAt.UnixNano(), req.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert bulk request %s: %w", req.ID, err)
	}

	return nil
}

const bulkColumns = `id, urls, status, items, created_at, updated_at`

func (s *SQLiteStore) FindBulkRequest(ctx context.Context, id string) (*BulkRequest, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+bulkColumns+` FROM bulk_downloads WHERE id = ?`, id)

	req, err := scanBulk(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find bulk request %s: %w", id, err)
	}

	return req, nil
}

func (s *SQLiteStore) ListBulkRequests(ctx context.Context) ([]BulkRequest, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+bulkColumns+` FROM bulk_downloads ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list bulk requests: %w", err)
	}
	defer rows.Close()

	requests := make([]BulkRequest, 0)
	for rows.Next() {
		req, err := scanBulk(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bulk request: %w", err)
		}
		requests = append(requests, *req)
	}

	return requests, rows.Err()
}

func (s *SQLiteStore) ListVideos(ctx context.Context) ([]VideoRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT video_id, author, nickname, description,
			digg_count, share_count, comment_count, play_count, collect_count,
			cover_url, dynamic_cover, duration, direct_video_url, create_time, created_at, last_updated_at
		 FROM tiktok_videos ORDER BY last_updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	defer rows.Close()

	videos := make([]VideoRecord, 0)
	for rows.Next() {
		var (
			v                    VideoRecord
			createdAt, updatedAt int64
		)
		err = rows.Scan(&v.VideoID, &v.Author, &v.Nickname, &v.Description,
			&v.Stats.DiggCount, &v.Stats.ShareCount, &v.Stats.CommentCount, &v.Stats.PlayCount, &v.Stats.CollectCount,
			&v.CoverURL, &v.DynamicCover, &v.Duration, &v.DirectVideoURL, &v.CreateTime, &createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan video: %w", err)
		}
		v.CreatedAt = fromNano(createdAt)
		v.LastUpdatedAt = fromNano(updatedAt)
		videos = append(videos, v)
	}

	return videos, rows.Err()
}

func (s *SQLiteStore) ListSubmissions(ctx context.Context) ([]SubmittedRequest, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT url, resolved_url, status, error, details, submitted_at, last_updated_at
		 FROM submitted_urls WHERE status != ? ORDER BY last_updated_at DESC, id DESC`,
		string(StatusSuccess))
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	submissions := make([]SubmittedRequest, 0)
	for rows.Next() {
		var (
			r                      SubmittedRequest
			status                 string
			details                sql.NullString
			submittedAt, updatedAt int64
		)
		if err = rows.Scan(&r.URL, &r.ResolvedURL, &status, &r.Error, &details, &submittedAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}

		r.Status = Status(status)
		r.SubmittedAt = fromNano(submittedAt)
		r.LastUpdatedAt = fromNano(updatedAt)

		if details.Valid {
			r.Details = &Details{}
			if err = easyjson.Unmarshal([]byte(details.String), r.Details); err != nil {
				return nil, fmt.Errorf("decode submission details: %w", err)
			}
		}

		submissions = append(submissions, r)
	}

	return submissions, rows.Err()
}

func (s *SQLiteStore) Close(context.Context) error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBulk(row scanner) (*BulkRequest, error) {
	var (
		req                  BulkRequest
		status, urls, items  string
		createdAt, updatedAt int64
	)
	if err := row.Scan(&req.ID, &urls, &status, &items, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var list stringList
	if err := easyjson.Unmarshal([]byte(urls), &list); err != nil {
		return nil, fmt.Errorf("decode bulk urls: %w", err)
	}

	var decoded bulkItems
	if err := easyjson.Unmarshal([]byte(items), &decoded); err != nil {
		return nil, fmt.Errorf("decode bulk items: %w", err)
	}

	req.URLs = nonNil(list)
	req.Items = nonNil(decoded)
	req.Status = BulkStatus(status)
	req.CreatedAt = fromNano(createdAt)
	req.UpdatedAt = fromNano(updatedAt)

	return &req, nil
}

// marshalDetails nil остается NULL
func marshalDetails(d *Details) (any, error) {
	if d == nil {
		return nil, nil
	}

	data, err := easyjson.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal details: %w", err)
	}

	return string(data), nil
}

func fromNano(n int64) time.Time {
	return time.Unix(0, n).UTC()
}
