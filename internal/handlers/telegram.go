package handlers

import (
	"fmt"
	"html"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/StounhandJ/tiktok_downloader/internal/downloaders"
	"github.com/StounhandJ/tiktok_downloader/internal/utils"
	telegramUtils "github.com/StounhandJ/tiktok_downloader/internal/utils/telegram"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"
)

const (
	startText = "Пришлите ссылку на видео TikTok или вызовите бота в любом чате: @bot <ссылка>"

	captionDescLimit = 900
)

func (h *handler) SetupRoutes(bh *th.BotHandler) {
	// Базовые действия
	bh.Handle(h.StartCommand, th.CommandEqual("start"))

	bh.HandleInlineQuery(h.InlineVideo)
	bh.Handle(h.LinkMessage, th.AnyMessageWithText())
}

// Стартовое сообщение
func (h *handler) StartCommand(ctx *th.Context, update telego.Update) error {
	telegramUtils.SendMessage(ctx, false, false, update, startText)

	return nil
}

func (h *handler) InlineVideo(ctx *th.Context, query telego.InlineQuery) error {
	link := strings.TrimSpace(query.Query)

	video, ok := h.lookup(ctx, link)
	if !ok {
		return ctx.Bot().AnswerInlineQuery(ctx, &telego.AnswerInlineQueryParams{
			InlineQueryID: query.ID,
			Results:       []telego.InlineQueryResult{},
			CacheTime:     0,
		})
	}

	title := utils.StringNotEmptyCoalesce(video.Description, video.Nickname, video.ID)

	return ctx.Bot().AnswerInlineQuery(ctx, &telego.AnswerInlineQueryParams{
		InlineQueryID: query.ID,
		Results: []telego.InlineQueryResult{
			&telego.InlineQueryResultVideo{
				Type:                  telego.ResultTypeVideo,
				ID:                    utils.Truncate(video.ID, 64),
				Title:                 utils.Truncate(title, 200),
				Caption:               caption(video),
				ParseMode:             telego.ModeHTML,
				VideoURL:              h.videoURL(link, video),
				ThumbnailURL:          video.CoverURL,
				MimeType:              downloaders.DefaultContentType,
				ShowCaptionAboveMedia: true,
				Description:           fmt.Sprintf("%s @%s", utils.FormatSecondsToMMSS(video.Duration), video.Author),
				ReplyMarkup:           tu.InlineKeyboard(tu.InlineKeyboardRow(tu.InlineKeyboardButton("Оригинал").WithURL(link))),
			},
		},
		CacheTime: 300,
	})
}

// LinkMessage сообщение в чате с ссылкой на ролик
func (h *handler) LinkMessage(ctx *th.Context, update telego.Update) error {
	link := findLink(telegramUtils.GetMessageText(update), h.downloader.Valid)
	if link == "" {
		return nil
	}

	video, ok := h.lookup(ctx, link)
	if !ok {
		telegramUtils.SendMessage(ctx, true, true, update, "Не удалось получить видео")
		return nil
	}

	telegramUtils.SendMessage(ctx, true, true, update, caption(video),
		telegramUtils.InputVideo{URL: h.videoURL(link, video), Name: downloaders.FileName(video)},
		tu.InlineKeyboard(tu.InlineKeyboardRow(tu.InlineKeyboardButton("Оригинал").WithURL(link))),
	)

	return nil
}

// lookup только метаданные, само видео телеграм заберет по ссылке
func (h *handler) lookup(ctx *th.Context, link string) (*downloaders.Video, bool) {
	if !h.downloader.Valid(link) {
		return nil, false
	}

	video, err := h.downloader.Extract(ctx, h.downloader.Resolve(ctx, link))
	if err != nil {
		utils.Log.WithError(err).WithField("url", link).Warn("telegram lookup failed")
		return nil, false
	}

	h.recorder.UpsertVideo(video)

	return video, true
}

// videoURL через /video, если сервер доступен снаружи, иначе прямая ссылка CDN
func (h *handler) videoURL(link string, video *downloaders.Video) string {
	if h.publicURL == "" {
		return video.DirectVideoURL
	}

	return strings.TrimSuffix(h.publicURL, "/") + "/video?src=" + url.QueryEscape(link)
}

// caption подпись уходит в режиме HTML, текст из TikTok экранируется
func caption(video *downloaders.Video) string {
	info := fmt.Sprintf("@%s | %s | ❤ %d | ▶ %d",
		html.EscapeString(video.Author), utils.FormatSecondsToMMSS(video.Duration), video.Stats.DiggCount, video.Stats.PlayCount)

	return fmt.Sprintf("%s\n%s", escapeLimit(video.Description, captionDescLimit), info)
}

// escapeLimit limit считается по уже экранированному тексту, сущности не разрываются
func escapeLimit(text string, limit int) string {
	var b strings.Builder

	n := 0
	for _, r := range text {
		escaped := html.EscapeString(string(r))

		n += utf8.RuneCountInString(escaped)
		if n > limit {
			break
		}

		b.WriteString(escaped)
	}

	return b.String()
}

func findLink(text string, valid func(string) bool) string {
	for _, field := range strings.Fields(text) {
		if valid(field) {
			return field
		}
	}

	return ""
}
