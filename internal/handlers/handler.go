package handlers

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/StounhandJ/tiktok_downloader/internal/downloaders"
	"github.com/StounhandJ/tiktok_downloader/internal/history"
	"github.com/StounhandJ/tiktok_downloader/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jwriter"
	"github.com/valyala/fasthttp"
)

// Recorder асинхронная запись истории, ошибки наружу не возвращаются
type Recorder interface {
	RecordSubmission(url string)
	UpdateStatus(url string, status history.Status, errMessage string, details *history.Details)
	UpsertVideo(video *downloaders.Video)
	RecordBulkRequest(id string, urls []string)
}

type Options struct {
	Downloader downloaders.IDownloader
	Recorder   Recorder
	History    history.Reader
	// PublicURL внешний адрес сервера, нужен боту для ссылок на /video
	PublicURL string
	// NewID генератор id пакетной загрузки
	NewID func() string
}

type handler struct {
	ctx        context.Context
	downloader downloaders.IDownloader
	recorder   Recorder
	history    history.Reader
	publicURL  string
	newID      func() string
	validate   *validator.Validate

	served atomic.Int64
}

// NewHandler ctx живет до остановки сервера, стримы тел читаются уже после возврата из обработчика
func NewHandler(ctx context.Context, opts Options) *handler {
	newID := opts.NewID
	if newID == nil {
		newID = NewBulkID
	}

	return &handler{
		ctx:        ctx,
		downloader: opts.Downloader,
		recorder:   opts.Recorder,
		history:    opts.History,
		publicURL:  opts.PublicURL,
		newID:      newID,
		validate:   newValidator(),
	}
}

// NewBulkID bulk-<UUIDv7>, упорядочен по времени
func NewBulkID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	return "bulk-" + id.String()
}

// Router fasthttp.RequestHandler со всеми маршрутами
func (h *handler) Router(ctx *fasthttp.RequestCtx) {
	defer func() {
		if rec := recover(); rec != nil {
			utils.Log.WithField("path", string(ctx.Path())).Errorf("handler panic: %v", rec)
			writeError(ctx, http.StatusInternalServerError, msgInternal)
		}
	}()

	switch string(ctx.Path()) {
	case "/fetch":
		h.only(ctx, http.MethodPost, h.Fetch)
	case "/download":
		h.only(ctx, http.MethodPost, h.Download)
	case "/video":
		h.only(ctx, http.MethodGet, h.Video)
	case "/bulk-download":
		switch {
		case ctx.IsPost():
			h.BulkCreate(ctx)
		case ctx.IsGet():
			h.BulkStatus(ctx)
		default:
			writeError(ctx, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		}
	case "/history":
		h.only(ctx, http.MethodGet, h.History)
	case "/health":
		h.only(ctx, http.MethodGet, h.Health)
	default:
		writeError(ctx, http.StatusNotFound, msgNotFound)
	}
}

func (h *handler) only(ctx *fasthttp.RequestCtx, method string, next fasthttp.RequestHandler) {
	if string(ctx.Method()) != method {
		writeError(ctx, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return
	}

	next(ctx)
}

// writeJSON пустые списки уходят как [], не null
func writeJSON(ctx *fasthttp.RequestCtx, status int, body easyjson.Marshaler) {
	w := jwriter.Writer{Flags: jwriter.NilSliceAsEmpty}
	body.MarshalEasyJSON(&w)

	data, err := w.BuildBytes()
	if err != nil {
		utils.Log.WithError(err).Error("marshal response")
		ctx.Error(msgInternal, http.StatusInternalServerError)
		return
	}

	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(data)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, errorResponse{Error: message})
}
