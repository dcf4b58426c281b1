package tiktok

import (
	"context"
	"net/http"
	netUrl "net/url"
	"strings"

	"github.com/StounhandJ/tiktok_downloader/internal/downloaders"
	"github.com/StounhandJ/tiktok_downloader/internal/utils"
)

const host = "tiktok.com"

// IsValid проверяет, что ссылка похожа на ролик или короткую ссылку TikTok
func IsValid(url string) bool {
	if !strings.Contains(url, host) {
		return false
	}

	return strings.Contains(url, "tiktok.com/@") ||
		strings.Contains(url, "tiktok.com/t/") ||
		strings.Contains(url, "vt.tiktok.com/") ||
		strings.Contains(url, "vm.tiktok.com/")
}

// IsShortened короткие ссылки требуют перехода по редиректу
func IsShortened(url string) bool {
	return strings.Contains(url, "vt.tiktok.com") ||
		strings.Contains(url, "vm.tiktok.com") ||
		strings.Contains(url, "tiktok.com/t/")
}

// Canonical оставляет только https://host/path
func Canonical(url string) (string, bool) {
	u, err := netUrl.Parse(url)
	if err != nil || u.Host == "" {
		return url, false
	}

	// схема всегда https, как у самого TikTok
	return "https://" + u.Host + u.Path, true
}

type resolver struct {
	client    *http.Client
	userAgent string
}

func NewResolver(client *http.Client, userAgent string) downloaders.IResolver {
	return &resolver{
		client:    client,
		userAgent: utils.StringNotEmptyCoalesce(userAgent, downloaders.UserAgent),
	}
}

// Resolve никогда не возвращает ошибку: при сбое отдается лучший из полученных URL
func (r resolver) Resolve(ctx context.Context, url string) string {
	if !IsShortened(url) {
		canonical, ok := Canonical(url)
		if !ok {
			utils.Log.Warnf("[URL Resolver] не удалось разобрать %s", url)
		}

		return canonical
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		utils.Log.Errorf("[URL Resolver] %s: %v", url, err)

		return url
	}

	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		utils.Log.Errorf("[URL Resolver] %s: %v", url, err)

		return url
	}

	if err := resp.Body.Close(); err != nil {
		utils.Log.Error(err)
	}

	// http.Client сам проходит по редиректам, итоговый адрес в resp.Request
	final := resp.Request.URL.String()
	if final == url {
		utils.Log.Debugf("[URL Resolver] редиректа нет: %s", url)

		return url
	}

	canonical, ok := Canonical(final)
	if !ok {
		return final
	}

	utils.Log.Debugf("[URL Resolver] %s -> %s", url, canonical)

	return canonical
}
