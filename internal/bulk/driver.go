package bulk

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/StounhandJ/tiktok_downloader/internal/history"
	"github.com/StounhandJ/tiktok_downloader/internal/utils"
	"github.com/sirupsen/logrus"
)

const DefaultDelay = time.Second

// API операции сервера, которыми пользуется драйвер
type API interface {
	Register(ctx context.Context, urls []string) (string, error)
	Fetch(ctx context.Context, url string) (*VideoInfo, error)
	Download(ctx context.Context, url string, onProgress func(percent int)) (*File, error)
	Thumbnail(ctx context.Context, coverURL string) ([]byte, error)
}

type Options struct {
	// Delay пауза между роликами, не после последнего
	Delay      time.Duration
	Thumbnails bool
	// OnUpdate вызывается при каждой смене состояния элемента
	OnUpdate func(item Item)
}

type Item struct {
	URL      string
	Status   history.ItemStatus
	Error    string
	FileName string
	Progress int
}

type Result struct {
	ID        string
	Items     []Item
	Succeeded int
	Failed    int
}

// Driver последовательная пакетная загрузка, один ролик за раз
type Driver struct {
	api   API
	saver Saver
	opts  Options
}

func NewDriver(api API, saver Saver, opts Options) *Driver {
	if opts.Delay < 0 {
		opts.Delay = 0
	}

	return &Driver{api: api, saver: saver, opts: opts}
}

func (d *Driver) Run(ctx context.Context, urls []string) Result {
	result := Result{Items: make([]Item, 0, len(urls))}
	for _, url := range urls {
		result.Items = append(result.Items, Item{URL: url, Status: history.ItemPending})
	}

	// регистрация нужна только для истории, без нее пакет все равно качается
	id, err := d.api.Register(ctx, urls)
	if err != nil {
		utils.Log.WithError(err).Warn("bulk download is not registered")
	} else {
		result.ID = id
		utils.Log.WithField("id", id).Info("bulk download registered")
	}

	for i := range result.Items {
		if i > 0 && !d.wait(ctx) {
			break
		}

		item := &result.Items[i]
		if err := d.process(ctx, item); err != nil {
			item.Status = history.ItemError
			item.Error = err.Error()
			d.notify(*item)
			result.Failed++

			utils.Log.WithFields(logrus.Fields{"url": item.URL, "status": item.Status}).WithError(err).Error("bulk item failed")

			continue
		}

		result.Succeeded++
	}

	return result
}

func (d *Driver) process(ctx context.Context, item *Item) error {
	item.Status = history.ItemFetching
	d.notify(*item)

	info, err := d.api.Fetch(ctx, item.URL)
	if err != nil {
		return err
	}

	item.Status = history.ItemDownloading
	d.notify(*item)

	file, err := d.api.Download(ctx, item.URL, func(percent int) {
		item.Progress = percent
		d.notify(*item)
	})
	if err != nil {
		return err
	}

	name := utils.StringNotEmptyCoalesce(file.Name, defaultFileName(info))
	if err = d.saver.Save(name, file.Data); err != nil {
		return err
	}

	item.FileName = name

	if d.opts.Thumbnails && info.CoverURL != "" {
		d.saveThumbnail(ctx, name, info.CoverURL)
	}

	item.Status = history.ItemCompleted
	d.notify(*item)

	utils.Log.WithFields(logrus.Fields{"url": item.URL, "file": name}).Info("bulk item completed")

	return nil
}

// saveThumbnail ошибки только в лог
func (d *Driver) saveThumbnail(ctx context.Context, videoName, coverURL string) {
	data, err := d.api.Thumbnail(ctx, coverURL)
	if err == nil {
		err = d.saver.Save(thumbnailName(videoName), data)
	}

	if err != nil {
		utils.Log.WithError(err).WithField("cover", coverURL).Debug("thumbnail skipped")
	}
}

func (d *Driver) wait(ctx context.Context) bool {
	if d.opts.Delay == 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d.opts.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

func (d *Driver) notify(item Item) {
	if d.opts.OnUpdate != nil {
		d.opts.OnUpdate(item)
	}
}

func defaultFileName(info *VideoInfo) string {
	return utils.SanitizeFileName(fmt.Sprintf("tiktok_%s_%s.mp4", info.UniqueID, info.VideoID))
}

// thumbnailName video.mp4 -> video_thumbnail.jpg
func thumbnailName(videoName string) string {
	base := videoName
	if i := strings.LastIndexByte(videoName, '.'); i > 0 {
		base = videoName[:i]
	}

	return base + "_thumbnail.jpg"
}
