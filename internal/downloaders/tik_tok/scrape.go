package tiktok

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"slices"
	"strings"

	"github.com/StounhandJ/tiktok_downloader/internal/downloaders"
	"github.com/StounhandJ/tiktok_downloader/internal/utils"
	easyjson "github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jlexer"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Скрипты страницы TikTok, в которых лежит состояние ролика.
// После них перебираются все остальные скрипты, в том числе без id.
var targetScriptIDs = []string{
	"__NEXT_DATA__",
	"__UNIVERSAL_DATA_FOR_REHYDRATION__",
	"SIGI_STATE",
}

var numericKey = regexp.MustCompile(`^\d+$`)

var errNoPageState = errors.New("page state not found")

type scraper struct {
	client    *http.Client
	userAgent string
}

// NewPageScraper best-effort парсинг HTML страницы ролика, запасной вариант к API
func NewPageScraper(client *http.Client, userAgent string) downloaders.IExtractor {
	return &scraper{
		client:    client,
		userAgent: utils.StringNotEmptyCoalesce(userAgent, downloaders.UserAgent),
	}
}

func (s scraper) Extract(ctx context.Context, pageURL string) (*downloaders.Video, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Referer", downloaders.Referer)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", downloaders.ErrExtraction, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			utils.Log.Error(err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, &downloaders.ExtractionFailedError{StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read page: %w", downloaders.ErrExtraction, err)
	}

	video, err := parsePage(data)
	if err != nil {
		return nil, err
	}

	// CDN TikTok отдает видео только с куками страницы
	video.Cookie = joinCookies(resp.Cookies())

	return video, nil
}

func parsePage(page []byte) (*downloaders.Video, error) {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("%w: parse html: %w", downloaders.ErrExtraction, err)
	}

	for _, tag := range orderScripts(collectScripts(doc)) {
		var state pageState
		if err := easyjson.Unmarshal([]byte(tag.body), &state); err != nil {
			if tag.id != "" {
				utils.Log.Warnf("[Scraper] не удалось разобрать script id=%s: %v", tag.id, err)
			}

			continue
		}

		item := state.item()
		if item == nil {
			continue
		}

		video := contentToVideo(item)
		if video.DirectVideoURL == "" && item.Video != nil {
			video.DirectVideoURL = str(item.Video.DownloadAddr)
		}

		if video.DirectVideoURL == "" {
			return nil, &downloaders.NoMediaURLError{Payload: []byte(tag.body)}
		}

		return video, nil
	}

	return nil, fmt.Errorf("%w: %w", downloaders.ErrExtraction, errNoPageState)
}

type scriptTag struct {
	id   string
	body string
}

// collectScripts непустые <script> в порядке документа
func collectScripts(n *html.Node) []scriptTag {
	var scripts []scriptTag

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Script {
			if n.FirstChild != nil && n.FirstChild.Type == html.TextNode && strings.TrimSpace(n.FirstChild.Data) != "" {
				s := scriptTag{body: n.FirstChild.Data}
				for _, a := range n.Attr {
					if a.Key == "id" {
						s.id = a.Val
					}
				}

				scripts = append(scripts, s)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return scripts
}

// orderScripts сначала известные id по приоритету, затем остальные по порядку документа
func orderScripts(scripts []scriptTag) []scriptTag {
	ordered := make([]scriptTag, 0, len(scripts))

	for _, id := range targetScriptIDs {
		for _, s := range scripts {
			if s.id == id {
				ordered = append(ordered, s)
			}
		}
	}

	for _, s := range scripts {
		if !slices.Contains(targetScriptIDs, s.id) {
			ordered = append(ordered, s)
		}
	}

	return ordered
}

func joinCookies(cookies []*http.Cookie) string {
	parts := make([]string, 0, len(cookies))
	for _, c := range cookies {
		parts = append(parts, c.Name+"="+c.Value)
	}

	return strings.Join(parts, "; ")
}

// pageState покрывает известные форматы:
// {"__DEFAULT_SCOPE__":{"webapp.video-detail":{"itemInfo":{"itemStruct":{...}}}}},
// {"props":{"pageProps":{"itemInfo":{"itemStruct":{...}}}}}
// и {"ItemModule":{"<id>":{...}}}
type pageState struct {
	Scope       *pageState
	ItemStruct  *apiContent
	ItemModule  map[string]*apiContent
	firstModule string
}

func (s *pageState) item() *apiContent {
	if s.Scope != nil {
		if item := s.Scope.item(); item != nil {
			return item
		}
	}

	if s.ItemStruct != nil {
		return s.ItemStruct
	}

	if len(s.ItemModule) == 0 {
		return nil
	}

	for key, item := range s.ItemModule {
		if numericKey.MatchString(key) {
			return item
		}
	}

	return s.ItemModule[s.firstModule]
}

func (s *pageState) UnmarshalEasyJSON(in *jlexer.Lexer) {
	decodeObject(in, func(key string) {
		switch key {
		case "__DEFAULT_SCOPE__":
			s.Scope = &pageState{}
			s.Scope.UnmarshalEasyJSON(in)
		case "webapp.video-detail":
			s.decodeItemInfo(in)
		case "props":
			decodeObject(in, func(key string) {
				if key != "pageProps" {
					in.SkipRecursive()

					return
				}

				s.decodeItemInfo(in)
			})
		case "ItemModule":
			s.ItemModule = map[string]*apiContent{}
			decodeObject(in, func(key string) {
				item := &apiContent{}
				item.UnmarshalEasyJSON(in)

				key = strings.Clone(key)
				if s.firstModule == "" {
					s.firstModule = key
				}

				s.ItemModule[key] = item
			})
		default:
			in.SkipRecursive()
		}
	})
}

// decodeItemInfo {"itemInfo":{"itemStruct":{...}}}
func (s *pageState) decodeItemInfo(in *jlexer.Lexer) {
	decodeObject(in, func(key string) {
		if key != "itemInfo" {
			in.SkipRecursive()

			return
		}

		decodeObject(in, func(key string) {
			if key != "itemStruct" {
				in.SkipRecursive()

				return
			}

			s.ItemStruct = &apiContent{}
			s.ItemStruct.UnmarshalEasyJSON(in)
		})
	})
}
