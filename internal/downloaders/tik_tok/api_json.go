//go:generate easyjson api_json.go
package tiktok

import (
	"encoding/json"
	"strconv"

	"github.com/StounhandJ/tiktok_downloader/internal/downloaders"
	"github.com/mailru/easyjson/jlexer"
)

// easyjson:json
type apiRequest struct {
	URL string `json:"url"`
}

// Схема ответа API извлечения. Все поля необязательные, дефолты подставляются в toVideo.
// Числа могут прийти как строкой, так и числом, поэтому json.Number.
// Разбор ручной: поле неожиданного типа пропускается, а не ломает весь ответ.

type apiResponse struct {
	Data *apiData
}

type apiData struct {
	Cookie  *string
	Content *apiContent
}

type apiContent struct {
	ID         *string
	Desc       *string
	CreateTime *json.Number
	Author     *apiAuthor
	Video      *apiVideo
	Stats      *apiStats
}

type apiAuthor struct {
	UniqueID *string
	Nickname *string
}

type apiVideo struct {
	PlayAddr     *string
	DownloadAddr *string
	Cover        *string
	DynamicCover *string
	Duration     *json.Number
}

type apiStats struct {
	DiggCount    *json.Number
	ShareCount   *json.Number
	CommentCount *json.Number
	PlayCount    *json.Number
	CollectCount *json.Number
}

func (r apiResponse) toVideo() *downloaders.Video {
	var data apiData
	if r.Data != nil {
		data = *r.Data
	}

	video := contentToVideo(data.Content)
	video.Cookie = str(data.Cookie)

	return video
}

func contentToVideo(c *apiContent) *downloaders.Video {
	if c == nil {
		c = &apiContent{}
	}

	author := c.Author
	if author == nil {
		author = &apiAuthor{}
	}

	video := c.Video
	if video == nil {
		video = &apiVideo{}
	}

	stats := c.Stats
	if stats == nil {
		stats = &apiStats{}
	}

	collect := "0"
	if stats.CollectCount != nil && stats.CollectCount.String() != "" {
		collect = stats.CollectCount.String()
	}

	var createTime string
	if c.CreateTime != nil {
		createTime = c.CreateTime.String()
	}

	return &downloaders.Video{
		ID:             str(c.ID),
		Author:         str(author.UniqueID),
		Nickname:       str(author.Nickname),
		Description:    str(c.Desc),
		CreateTime:     createTime,
		CoverURL:       str(video.Cover),
		DynamicCover:   str(video.DynamicCover),
		Duration:       int(num(video.Duration)),
		DirectVideoURL: str(video.PlayAddr),
		Stats: downloaders.Stats{
			DiggCount:    num(stats.DiggCount),
			ShareCount:   num(stats.ShareCount),
			CommentCount: num(stats.CommentCount),
			PlayCount:    num(stats.PlayCount),
			CollectCount: collect,
		},
	}
}

func str(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// num 0 для отсутствующих и нечисловых значений
func num(n *json.Number) int64 {
	if n == nil {
		return 0
	}

	if i, err := n.Int64(); err == nil {
		return i
	}

	if f, err := strconv.ParseFloat(n.String(), 64); err == nil {
		return int64(f)
	}

	return 0
}

func (v *apiResponse) UnmarshalEasyJSON(in *jlexer.Lexer) {
	decodeObject(in, func(key string) {
		switch key {
		case "data":
			v.Data = &apiData{}
			v.Data.UnmarshalEasyJSON(in)
		default:
			in.SkipRecursive()
		}
	})
}

func (v *apiData) UnmarshalEasyJSON(in *jlexer.Lexer) {
	decodeObject(in, func(key string) {
		switch key {
		case "cookie":
			v.Cookie = readString(in)
		case "content":
			v.Content = &apiContent{}
			v.Content.UnmarshalEasyJSON(in)
		default:
			in.SkipRecursive()
		}
	})
}

func (v *apiContent) UnmarshalEasyJSON(in *jlexer.Lexer) {
	decodeObject(in, func(key string) {
		switch key {
		case "id":
			v.ID = readString(in)
		case "desc":
			v.Desc = readString(in)
		case "createTime":
			v.CreateTime = readNumber(in)
		case "author":
			v.Author = &apiAuthor{}
			decodeObject(in, func(key string) {
				switch key {
				case "uniqueId":
					v.Author.UniqueID = readString(in)
				case "nickname":
					v.Author.Nickname = readString(in)
				default:
					in.SkipRecursive()
				}
			})
		case "video":
			v.Video = &apiVideo{}
			decodeObject(in, func(key string) {
				switch key {
				case "playAddr":
					v.Video.PlayAddr = readString(in)
				case "downloadAddr":
					v.Video.DownloadAddr = readString(in)
				case "cover":
					v.Video.Cover = readString(in)
				case "dynamicCover":
					v.Video.DynamicCover = readString(in)
				case "duration":
					v.Video.Duration = readNumber(in)
				default:
					in.SkipRecursive()
				}
			})
		case "stats":
			v.Stats = &apiStats{}
			decodeObject(in, func(key string) {
				switch key {
				case "diggCount":
					v.Stats.DiggCount = readNumber(in)
				case "shareCount":
					v.Stats.ShareCount = readNumber(in)
				case "commentCount":
					v.Stats.CommentCount = readNumber(in)
				case "playCount":
					v.Stats.PlayCount = readNumber(in)
				case "collectCount":
					v.Stats.CollectCount = readNumber(in)
				default:
					in.SkipRecursive()
				}
			})
		default:
			in.SkipRecursive()
		}
	})
}

// decodeObject обходит поля объекта, null значения пропускаются.
// Не объект (например строка на месте объекта) пропускается целиком.
func decodeObject(in *jlexer.Lexer, field func(key string)) {
	isTopLevel := in.IsStart()

	if in.IsNull() || !in.IsDelim('{') {
		in.SkipRecursive()

		if isTopLevel {
			in.Consumed()
		}

		return
	}

	in.Delim('{')

	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()

		if in.IsNull() {
			in.Skip()
			in.WantComma()

			continue
		}

		field(key)
		in.WantComma()
	}

	in.Delim('}')

	if isTopLevel {
		in.Consumed()
	}
}

// readString числа и bool приводятся к строке, объекты и массивы пропускаются
func readString(in *jlexer.Lexer) *string {
	var s string

	switch in.CurrentToken() {
	case jlexer.TokenString:
		s = in.String()
	case jlexer.TokenNumber, jlexer.TokenBool:
		s = string(in.Raw())
	default:
		in.SkipRecursive()

		return nil
	}

	return &s
}

// readNumber число или строка с числом, остальное пропускается
func readNumber(in *jlexer.Lexer) *json.Number {
	switch in.CurrentToken() {
	case jlexer.TokenNumber, jlexer.TokenString:
		n := in.JsonNumber()

		return &n
	default:
		in.SkipRecursive()

		return nil
	}
}
