package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

var (
	configPath      = "config/config.yaml"
	devConfigPath   = "config/config.dev.yaml"
	localConfigPath = "config/config.local.yaml"
	dotEnvPath      = ".env"
)

// nolint
type duration time.Duration

func (d duration) Duration() time.Duration {
	return time.Duration(d)
}

func LoadConfig(c any) error {
	// .env не обязателен
	if err := godotenv.Load(dotEnvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", dotEnvPath, err)
	}

	var path string

	switch os.Getenv("ENV") {
	case "local":
		path = localConfigPath
	case "dev":
		path = devConfigPath
	case "prod":
		path = configPath
	default:
		path = configPath
	}

	return parseConfig(c, path, CommonParseOptions)
}

func parseConfig(c any, path string, opts parseOptions) error {
	if err := readFile(c, path); err != nil {
		return err
	}

	return CommonHelp("tiktok-downloader", "Запустить сервер", "", c, opts)
}

func readFile(cfg interface{}, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Fatal(cerr)
		}
	}()

	decoder := yaml.NewDecoder(f)

	if err = decoder.Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode yaml file %s: %w", path, err)
	}

	return nil
}

// UnmarshalYAML реализует InterfaceUnmarshaler (UnmarshalYAML(func(interface{}) error) error).
// Поддерживает строку для time.ParseDuration ("5m", "1h30m"), целое число и float (секунды).
// nolint
func (d *duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		dur, err := time.ParseDuration(s)
		if err != nil {
			return err
		}

		*d = duration(dur)

		return nil
	}

	var i int64
	if err := unmarshal(&i); err == nil {
		*d = duration(time.Duration(i) * time.Second)

		return nil
	}

	var f float64
	if err := unmarshal(&f); err == nil {
		*d = duration(time.Duration(f * float64(time.Second)))

		return nil
	}

	return fmt.Errorf("unsupported duration format")
}

// nolint
func (d duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
