package config

type Config struct {
	Application Application `yaml:"Application" env:"APP" flag:""`
	Server      Server      `yaml:"Server" env:"SERVER" flag:"server"`
	Extraction  Extraction  `yaml:"Extraction" env:"EXTRACTION" flag:"extraction"`
	Storage     Storage     `yaml:"Storage" env:"STORAGE" flag:"storage"`
	Telegram    Telegram    `yaml:"Telegram" env:"TG" flag:"tg"`
}

type Application struct {
	LogLevel string `yaml:"LogLevel" env:"LOGLEVEL"`
	LogFile  string `yaml:"LogFile" env:"LOG_FILE" flag:"log-file" usage:"Файл логов с ротацией" cli:"optional"`
	ProxyURL string `yaml:"ProxyURL" env:"PROXY_URL" flag:"proxy-url" usage:"Прокси для отправки запросов" cli:"optional"`
}

type Server struct {
	Addr      string `yaml:"Addr" env:"ADDR" usage:"Адрес HTTP сервера"`
	PublicURL string `yaml:"PublicURL" env:"PUBLIC_URL" flag:"public-url" usage:"Внешний адрес сервера для ссылок на видео" cli:"optional"`
}

type Extraction struct {
	APIURL         string   `yaml:"APIURL" env:"API_URL" flag:"api-url" usage:"Адрес API извлечения видео"`
	UserAgent      string   `yaml:"UserAgent" env:"USER_AGENT" flag:"user-agent" cli:"optional"`
	Timeout        duration `yaml:"Timeout" env:"TIMEOUT" usage:"Таймаут исходящих запросов, 0 - без таймаута" cli:"optional"`
	ScrapeFallback bool     `yaml:"ScrapeFallback" env:"SCRAPE_FALLBACK" flag:"scrape-fallback" usage:"Парсить страницу TikTok если API не ответило"`
}

type Storage struct {
	Driver     string `yaml:"Driver" env:"DRIVER" usage:"mongo, sqlite или memory"`
	MongoURI   string `yaml:"MongoURI" env:"MONGODB_URI" envprefix:"" flag:"mongo-uri" cli:"optional"`
	MongoDB    string `yaml:"MongoDB" env:"MONGODB_DB_NAME" envprefix:"" flag:"mongo-db" cli:"optional"`
	SQLitePath string `yaml:"SQLitePath" env:"SQLITE_PATH" flag:"sqlite-path" cli:"optional"`
}

type Telegram struct {
	BotToken string `yaml:"BotToken" env:"BOT_TOKEN" flag:"bot-token" usage:"Токен телеграм бота, пусто - бот выключен" cli:"optional"`
}
