package downloaders

import (
	"context"

	"github.com/StounhandJ/tiktok_downloader/internal/utils"
)

type chain []IExtractor

// Chain пробует экстракторы по очереди. Если все упали, возвращается ошибка первого,
// чтобы статус в истории отражал сбой основного API.
func Chain(extractors ...IExtractor) IExtractor {
	if len(extractors) == 1 {
		return extractors[0]
	}

	return chain(extractors)
}

func (c chain) Extract(ctx context.Context, url string) (*Video, error) {
	var firstErr error

	for i, e := range c {
		video, err := e.Extract(ctx, url)
		if err == nil {
			return video, nil
		}

		if firstErr == nil {
			firstErr = err
		}

		utils.Log.Warnf("[Extraction] экстрактор %d не справился с %s: %v", i, url, err)
	}

	return nil, firstErr
}
