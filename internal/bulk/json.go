//go:generate easyjson json.go
package bulk

// easyjson:json
type urlRequest struct {
	URL string `json:"url"`
}

// easyjson:json
type bulkRequest struct {
	URLs []string `json:"urls"`
}

// easyjson:json
type registerResponse struct {
	ID string `json:"bulkDownloadId"`
}

// easyjson:json
type errorResponse struct {
	Error string `json:"error"`
}

// VideoInfo метаданные из /fetch, нужные для имени файла и обложки
// easyjson:json
type VideoInfo struct {
	VideoID   string `json:"videoId"`
	UniqueID  string `json:"uniqueId"`
	Nickname  string `json:"nickname"`
	VideoDesc string `json:"videoDesc"`
	CoverURL  string `json:"coverUrl"`
	Duration  int    `json:"duration"`
}

// easyjson:json
type fetchResponse struct {
	VideoInfo *VideoInfo `json:"videoInfo"`
}
