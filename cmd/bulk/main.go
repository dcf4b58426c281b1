package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/StounhandJ/tiktok_downloader/internal/bulk"
	"github.com/StounhandJ/tiktok_downloader/internal/config"
	"github.com/StounhandJ/tiktok_downloader/internal/history"
	"github.com/StounhandJ/tiktok_downloader/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

var cfg config.BulkConfig

func main() {
	flags, err := config.Flags(&cfg, config.BulkParseOptions)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	cmd := &cli.Command{
		Name:      "tiktok-bulk",
		Usage:     "Последовательно скачать пачку видео через сервер загрузчика",
		ArgsUsage: "[ссылка...]",
		Flags:     flags,
		Action:    run,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	utils.InitLogger(cfg.LogLevel, "")

	urls, err := collectURLs(cmd.Args().Slice())
	if err != nil {
		return err
	}

	if len(urls) == 0 {
		return fmt.Errorf("нет ссылок: передайте их аргументами, через --url или --file")
	}

	client := bulk.NewClient(&http.Client{Timeout: cfg.Timeout}, cfg.Server)

	driver := bulk.NewDriver(client, bulk.DirSaver{Dir: cfg.Out}, bulk.Options{
		Delay:      cfg.Delay,
		Thumbnails: cfg.Thumbnails,
		OnUpdate:   logUpdate,
	})

	result := driver.Run(ctx, urls)

	utils.Log.WithFields(logrus.Fields{
		"id":        result.ID,
		"succeeded": result.Succeeded,
		"failed":    result.Failed,
	}).Info("Пакет обработан")

	for _, item := range result.Items {
		if item.Status == history.ItemError {
			fmt.Printf("%s\t%s\n", item.URL, item.Error)
		}
	}

	if result.Failed > 0 {
		return fmt.Errorf("не скачано %d из %d", result.Failed, len(result.Items))
	}

	return nil
}

// collectURLs из флагов, аргументов и файла, пустые строки и # пропускаются
func collectURLs(args []string) ([]string, error) {
	urls := append([]string{}, cfg.URLs...)
	urls = append(urls, args...)

	if cfg.File != "" {
		f, err := os.Open(cfg.File)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			urls = append(urls, line)
		}

		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read %s: %w", cfg.File, err)
		}
	}

	return urls, nil
}

func logUpdate(item bulk.Item) {
	entry := utils.Log.WithFields(logrus.Fields{"url": item.URL, "status": item.Status})

	switch item.Status {
	case history.ItemDownloading:
		if item.Progress >= 0 && item.Progress%25 == 0 {
			entry.Debugf("%d%%", item.Progress)
		}
	case history.ItemCompleted:
		entry.WithField("file", item.FileName).Info("Сохранено")
	case history.ItemFetching:
		entry.Info("Получение данных")
	}
}
