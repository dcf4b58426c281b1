package handlers

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/StounhandJ/tiktok_downloader/internal/downloaders"
	"github.com/StounhandJ/tiktok_downloader/internal/history"
	"github.com/StounhandJ/tiktok_downloader/internal/utils"
	"github.com/mailru/easyjson"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

// Тексты ошибок для клиента. Подробности только в логах.
const (
	msgInvalidURL       = "Invalid TikTok URL."
	msgFetchFailed      = "Failed to process fetch request."
	msgDownloadFailed   = "Failed to process download request."
	msgNoURLs           = "No URLs provided or invalid format"
	msgNoValidURLs      = "No valid TikTok URLs found"
	msgNoBulkID         = "No bulk download ID provided"
	msgBulkNotFound     = "Bulk download request not found"
	msgBulkStoreFailed  = "Failed to retrieve bulk download request from database"
	msgHistoryFailed    = "Failed to fetch download history"
	msgNotFound         = "Not found"
	msgMethodNotAllowed = "Method not allowed"
	msgInternal         = "Internal server error"

	// Тексты в истории
	errNoVideoURL   = "No video URL in API response"
	errNoBody       = "Video response had no body"
	errUnknownFinal = "Unknown error in final catch"
)

// Fetch POST /fetch: только метаданные, заявка не создается
func (h *handler) Fetch(ctx *fasthttp.RequestCtx) {
	url, ok := h.readURL(ctx)
	if !ok {
		writeError(ctx, http.StatusBadRequest, msgInvalidURL)
		return
	}

	logger := utils.Log.WithField("url", url)

	video, err := h.downloader.Extract(h.ctx, h.downloader.Resolve(h.ctx, url))
	if err != nil {
		logger.WithError(err).Error("fetch failed")
		writeError(ctx, http.StatusInternalServerError, msgFetchFailed)
		return
	}

	h.recorder.UpsertVideo(video)
	logger.WithField("videoId", video.ID).Info("fetched")

	writeJSON(ctx, http.StatusOK, fetchResponse{Success: true, VideoInfo: newVideoInfo(video)})
}

// Download POST /download {url}
func (h *handler) Download(ctx *fasthttp.RequestCtx) {
	url, ok := h.readURL(ctx)
	if !ok {
		writeError(ctx, http.StatusBadRequest, msgInvalidURL)
		return
	}

	h.serve(ctx, url)
}

// Video GET /video?src=, ссылка для бота
func (h *handler) Video(ctx *fasthttp.RequestCtx) {
	url := string(ctx.QueryArgs().Peek("src"))
	if !h.downloader.Valid(url) {
		writeError(ctx, http.StatusBadRequest, msgInvalidURL)
		return
	}

	h.serve(ctx, url)
}

// serve заявка, извлечение и потоковая отдача тела без буферизации
func (h *handler) serve(ctx *fasthttp.RequestCtx, url string) {
	logger := utils.Log.WithField("url", url)

	h.recorder.RecordSubmission(url)

	defer func() {
		if rec := recover(); rec != nil {
			logger.WithField("status", history.StatusFailedFinal).Errorf("download panic: %v", rec)
			h.recorder.UpdateStatus(url, history.StatusFailedFinal, errUnknownFinal, nil)
			writeError(ctx, http.StatusInternalServerError, msgDownloadFailed)
		}
	}()

	media, err := h.pipeline(url)
	if err != nil {
		status, message, details := classify(err)
		logger.WithError(err).WithField("status", status).Error("download failed")
		h.recorder.UpdateStatus(url, status, message, details)
		writeError(ctx, http.StatusInternalServerError, msgDownloadFailed)
		return
	}

	h.recorder.UpdateStatus(url, history.StatusSuccess, "", nil)
	logger.WithFields(logrus.Fields{"status": history.StatusSuccess, "file": media.FileName}).Info("streaming")

	if n := h.served.Add(1); n%10 == 0 {
		utils.Log.Infof("Количество отданных роликов %d", n)
	}

	ctx.SetStatusCode(http.StatusOK)
	ctx.Response.Header.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, media.FileName))
	ctx.SetContentType(media.ContentType)
	ctx.SetBodyStream(media.Body, bodySize(media.ContentLength))
}

// bodySize -1 отдается чанками без Content-Length, в том числе если размер не влезает в int
func bodySize(contentLength int64) int {
	if contentLength < 0 || contentLength > math.MaxInt {
		return -1
	}

	return int(contentLength)
}

func (h *handler) pipeline(url string) (*downloaders.Media, error) {
	video, err := h.downloader.Extract(h.ctx, h.downloader.Resolve(h.ctx, url))
	if err != nil {
		return nil, err
	}

	h.recorder.UpdateStatus(url, history.StatusProcessing, "", &history.Details{
		VideoID:   video.ID,
		UniqueID:  video.Author,
		VideoDesc: video.Description,
	})
	h.recorder.UpsertVideo(video)

	return h.downloader.Stream(h.ctx, video)
}

// classify статус истории по ошибке конвейера
func classify(err error) (history.Status, string, *history.Details) {
	var (
		apiErr      *downloaders.ExtractionFailedError
		noMediaErr  *downloaders.NoMediaURLError
		downloadErr *downloaders.DownloadFailedError
	)

	switch {
	case errors.As(err, &apiErr):
		return history.StatusFailedAPI, apiErr.Error(), nil
	case errors.Is(err, downloaders.ErrExtraction):
		return history.StatusFailedAPI, err.Error(), nil
	case errors.As(err, &noMediaErr):
		return history.StatusFailedNoURL, errNoVideoURL, &history.Details{Payload: string(noMediaErr.Payload)}
	case errors.Is(err, downloaders.ErrNoMediaURL):
		return history.StatusFailedNoURL, errNoVideoURL, nil
	case errors.As(err, &downloadErr):
		return history.StatusFailedDownload, downloadErr.Error(), nil
	case errors.Is(err, downloaders.ErrEmptyBody):
		return history.StatusFailedNoBody, errNoBody, nil
	default:
		return history.StatusFailedFinal, errUnknownFinal, nil
	}
}

// BulkCreate POST /bulk-download {urls}
func (h *handler) BulkCreate(ctx *fasthttp.RequestCtx) {
	var req bulkCreateRequest
	if err := easyjson.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, http.StatusBadRequest, msgNoURLs)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(ctx, http.StatusBadRequest, msgNoURLs)
		return
	}

	valid := make([]string, 0, len(req.URLs))
	for _, url := range req.URLs {
		if h.downloader.Valid(url) {
			valid = append(valid, url)
		}
	}

	if len(valid) == 0 {
		writeError(ctx, http.StatusBadRequest, msgNoValidURLs)
		return
	}

	id := h.newID()
	h.recorder.RecordBulkRequest(id, valid)

	utils.Log.WithFields(logrus.Fields{"id": id, "total": len(valid)}).Info("bulk download registered")

	writeJSON(ctx, http.StatusOK, bulkCreateResponse{
		Success:        true,
		BulkDownloadID: id,
		TotalURLs:      len(valid),
		InvalidURLs:    len(req.URLs) - len(valid),
	})
}

// BulkStatus GET /bulk-download?id=
func (h *handler) BulkStatus(ctx *fasthttp.RequestCtx) {
	id := string(ctx.QueryArgs().Peek("id"))
	if id == "" {
		writeError(ctx, http.StatusBadRequest, msgNoBulkID)
		return
	}

	req, err := h.history.FindBulkRequest(h.ctx, id)
	if errors.Is(err, history.ErrNotFound) {
		writeError(ctx, http.StatusNotFound, msgBulkNotFound)
		return
	}
	if err != nil {
		utils.Log.WithError(err).WithField("id", id).Error("find bulk request")
		writeError(ctx, http.StatusInternalServerError, msgBulkStoreFailed)
		return
	}

	writeJSON(ctx, http.StatusOK, bulkStatusResponse{Success: true, BulkDownloadRequest: req})
}

// History GET /history
func (h *handler) History(ctx *fasthttp.RequestCtx) {
	videos, err := h.history.ListVideos(h.ctx)
	if err != nil {
		h.historyFailed(ctx, err)
		return
	}

	submissions, err := h.history.ListSubmissions(h.ctx)
	if err != nil {
		h.historyFailed(ctx, err)
		return
	}

	bulk, err := h.history.ListBulkRequests(h.ctx)
	if err != nil {
		h.historyFailed(ctx, err)
		return
	}

	writeJSON(ctx, http.StatusOK, historyResponse{
		Success: true,
		Data: historyData{
			Videos:          videos,
			SingleDownloads: submissions,
			BulkDownloads:   bulk,
		},
	})
}

func (h *handler) historyFailed(ctx *fasthttp.RequestCtx, err error) {
	utils.Log.WithError(err).Error("fetch history")
	writeError(ctx, http.StatusInternalServerError, msgHistoryFailed)
}

func (h *handler) Health(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, http.StatusOK, healthResponse{Status: "ok"})
}

// readURL тело {url} прошло разбор и проверку ссылки
func (h *handler) readURL(ctx *fasthttp.RequestCtx) (string, bool) {
	var req urlRequest
	if err := easyjson.Unmarshal(ctx.PostBody(), &req); err != nil {
		return "", false
	}

	if err := h.validate.Struct(req); err != nil {
		return "", false
	}

	return req.URL, true
}
