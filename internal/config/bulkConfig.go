package config

import "time"

// Для cmd/bulk: только env с префиксом BULK_ и флаги
var BulkParseOptions = parseOptions{
	EnvPrefix:         "BULK",
	RequiredByDefault: true,
}

type BulkConfig struct {
	Server     string        `env:"SERVER" usage:"Адрес сервера загрузчика" default:"http://localhost:8080"`
	Out        string        `env:"OUT" usage:"Каталог для сохранения видео" default:"."`
	Delay      time.Duration `env:"DELAY" usage:"Пауза между роликами" default:"1s"`
	Thumbnails bool          `env:"THUMBNAILS" usage:"Сохранять обложки рядом с видео" default:"true"`
	File       string        `env:"FILE" usage:"Файл со ссылками, по одной в строке" cli:"optional"`
	URLs       []string      `env:"URLS" flag:"url" usage:"Ссылка на видео, можно несколько раз" cli:"optional"`
	Timeout    time.Duration `env:"TIMEOUT" usage:"Таймаут одного запроса, 0 - без таймаута" default:"0s"`
	LogLevel   string        `env:"LOGLEVEL" flag:"log-level" default:"info"`
}
