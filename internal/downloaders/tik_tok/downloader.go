package tiktok

import (
	"net/http"

	"github.com/StounhandJ/tiktok_downloader/internal/downloaders"
)

type Options struct {
	APIURL         string
	UserAgent      string
	ScrapeFallback bool
}

type downloader struct {
	downloaders.IResolver
	downloaders.IExtractor
	downloaders.IStreamer
}

func New(client *http.Client, opts Options) downloaders.IDownloader {
	extractors := []downloaders.IExtractor{NewExtractor(client, opts.APIURL, opts.UserAgent)}
	if opts.ScrapeFallback {
		extractors = append(extractors, NewPageScraper(client, opts.UserAgent))
	}

	return &downloader{
		IResolver:  NewResolver(client, opts.UserAgent),
		IExtractor: downloaders.Chain(extractors...),
		IStreamer:  downloaders.NewStreamer(client, opts.UserAgent),
	}
}

func (downloader) Valid(url string) bool {
	return IsValid(url)
}
