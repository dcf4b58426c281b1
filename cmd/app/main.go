package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/StounhandJ/tiktok_downloader/internal/config"
	tiktok "github.com/StounhandJ/tiktok_downloader/internal/downloaders/tik_tok"
	"github.com/StounhandJ/tiktok_downloader/internal/handlers"
	"github.com/StounhandJ/tiktok_downloader/internal/history"
	"github.com/StounhandJ/tiktok_downloader/internal/utils"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	"github.com/valyala/fasthttp"
)

const (
	shutdownTimeout   = 30 * time.Second
	defaultSQLitePath = "tiktok_downloader.db"
	defaultMongoDB    = "tiktok_downloader"
)

var cfg config.Config

func main() {
	//------ Получение Конфигурации ------//
	if err := config.LoadConfig(&cfg); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	utils.InitLogger(cfg.Application.LogLevel, cfg.Application.LogFile)
	//---------------//

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	//------ HTTP клиент для отправки запросов ------//
	client := http.Client{Timeout: cfg.Extraction.Timeout.Duration()}

	if cfg.Application.ProxyURL != "" {
		proxyURL, err := url.Parse(cfg.Application.ProxyURL)
		if err != nil {
			utils.Log.Panic(err)
		}

		client.Transport = &http.Transport{
			Proxy: http.ProxyURL(proxyURL), // прокси
		}
	}
	//---------------//

	//------ История ------//
	store, err := newStore(ctx, cfg.Storage)
	if err != nil {
		utils.Log.Error(err)
		os.Exit(1)
	}

	recorder := history.NewRecorder(store, history.DefaultQueueSize)
	//---------------//

	handler := handlers.NewHandler(ctx, handlers.Options{
		Downloader: tiktok.New(&client, tiktok.Options{
			APIURL:         cfg.Extraction.APIURL,
			UserAgent:      cfg.Extraction.UserAgent,
			ScrapeFallback: cfg.Extraction.ScrapeFallback,
		}),
		Recorder:  recorder,
		History:   store,
		PublicURL: cfg.Server.PublicURL,
	})

	//------ HTTP сервер ------//
	server := &fasthttp.Server{
		Name:    "tiktok-downloader",
		Handler: handler.Router,
		Logger:  utils.Log,
	}

	go func() {
		utils.Log.Infof("HTTP сервер на %s", cfg.Server.Addr)

		if err := server.ListenAndServe(cfg.Server.Addr); err != nil {
			utils.Log.Fatal(err)
		}
	}()
	//---------------//

	//------ TELEGRAM бот ------//
	botCtx, stopBot := context.WithCancel(ctx)
	defer stopBot()

	if cfg.Telegram.BotToken != "" {
		startBot(botCtx, handler)
	} else {
		utils.Log.Info("Токен бота не задан, бот выключен")
	}
	//---------------//

	//------ Ожидание заершения программы ------//
	utils.Log.Info("Всё запущено")

	cSignal := make(chan os.Signal, 2)
	signal.Notify(cSignal, os.Interrupt, syscall.SIGTERM)
	<-cSignal

	utils.Log.Info("Остановка")

	stopBot()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := server.ShutdownWithContext(shutdownCtx); err != nil {
		utils.Log.Error(err)
	}

	// после остановки сервера рвутся оставшиеся исходящие стримы
	cancel()

	if err := recorder.Close(shutdownCtx); err != nil {
		utils.Log.Error(err)
	}

	if err := store.Close(shutdownCtx); err != nil {
		utils.Log.Error(err)
	}
}

func newStore(ctx context.Context, c config.Storage) (history.Store, error) {
	switch c.Driver {
	case "mongo":
		return history.NewMongoStore(ctx, c.MongoURI, utils.StringNotEmptyCoalesce(c.MongoDB, defaultMongoDB))
	case "sqlite":
		return history.NewSQLiteStore(ctx, utils.StringNotEmptyCoalesce(c.SQLitePath, defaultSQLitePath))
	case "memory":
		return history.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", c.Driver)
	}
}

// startBot long polling живет до отмены ctx
func startBot(ctx context.Context, handler interface{ SetupRoutes(bh *th.BotHandler) }) {
	utils.Log.Info("Подключение TG-бота")

	bot, err := telego.NewBot(cfg.Telegram.BotToken, telego.WithDefaultLogger(cfg.Application.LogLevel == "debug", true))
	if err != nil {
		utils.Log.Error(err)
		os.Exit(1)
	}

	// Обработка сообщений ботом
	updates, err := bot.UpdatesViaLongPolling(ctx, nil)
	if err != nil {
		utils.Log.Error(err)
		os.Exit(1)
	}

	bh, err := th.NewBotHandler(bot, updates)
	if err != nil {
		utils.Log.Error(err)
		os.Exit(1)
	}

	handler.SetupRoutes(bh)

	user, err := bot.GetMe(ctx)
	if err != nil {
		utils.Log.Error(err)
		os.Exit(1)
	}

	go func() {
		utils.Log.Infof(
			"TG БОТ ID=%d имя=%s username=@%s",
			user.ID,
			user.FirstName,
			user.Username,
		)

		if err := bh.Start(); err != nil {
			utils.Log.Error(err)
		}
	}()
}
