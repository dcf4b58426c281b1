package config

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

var cfg = configTestStruct{
	API:     configAPI{WithEnv: "1", Usage: "1"},
	WithEnv: "1",
}

type (
	configTestStruct struct {
		API configAPI `yaml:"api" category:"ConfigAPI"`

		WithEnv    string `yaml:"test-with-env" env:"TEST-WITH-ENV"`
		EnvPrefix  string `yaml:"env_prefix" envprefix:"ENVPREFIX" default:"env"`
		NewFlag    uint   `yaml:"new_flag" flag:"tag-new-flag"`
		FlagPrefix string `yaml:"flag_prefix" flagprefix:"flag-prefix" default:"flag"`
	}

	storage struct {
		User     string   `yaml:"user" cli:"required" default:"U"`
		Database int      `yaml:"database" cli:"required" default:"11"`
		Timeout  duration `yaml:"timeout" default:"5s"`
	}

	configAPI struct {
		WithoutEnv string `yaml:"without_env" env:"-" default:"1"`
		WithEnv    string `yaml:"test-with-env" env:"TEST-WITH-ENV"`

		Usage string `yaml:"usage" usage:"usage-usage"`
		Host  string `yaml:"host"`

		Env uint `yaml:"env" env:"NEW_ENV"`

		Ignore         string `yaml:"ignore" cli:"-"`
		Hidden         uint   `yaml:"hidden" cli:"hidden,optional"`
		UintOptional   uint   `yaml:"uint_optional" cli:"optional"`
		StringOptional string `yaml:"string_optional" cli:"optional"`
	}
)

func TestHelpDefaultParseOptions(t *testing.T) {
	os.Args = []string{os.Args[0], "-help"}

	helpWasCalled, err := WorkHelp("a", "b", "c", &cfg, DefaultParseOptions)
	require.NoError(t, err)
	require.True(t, helpWasCalled, "help was not called")
}

func TestHelpCommonParseOptions(t *testing.T) {
	os.Args = []string{os.Args[0], "-help"}

	helpWasCalled, err := WorkHelp("a", "b", "c", &cfg, CommonParseOptions)
	require.NoError(t, err)
	require.True(t, helpWasCalled, "help was not called")
}

func TestCommonParseHelpNotCalled(t *testing.T) {
	os.Args = []string{os.Args[0]}

	helpWasCalled, err := WorkHelp("a", "b", "c", &struct{}{}, CommonParseOptions)
	require.NoError(t, err)
	require.False(t, helpWasCalled, "help should not called")
}

func TestCommonParseOptionsRequiredDefaultValuesFromConfig(t *testing.T) {
	os.Args = []string{os.Args[0], "command"}

	cfg := storage{}
	_, err := WorkHelp("a", "b", "c", &cfg, CommonParseOptions)

	require.Error(t, err)
}

func TestDefaultParseOptionsRequiredDefaultValues(t *testing.T) {
	os.Args = []string{os.Args[0], "command"}

	cfg := storage{}
	_, err := WorkHelp("a", "b", "c", &cfg, DefaultParseOptions)
	require.NoError(t, err)
	require.Equal(t, "U", cfg.User)
	require.Equal(t, 11, cfg.Database)
	require.Equal(t, 5*time.Second, cfg.Timeout.Duration())
}

func TestCommonParseOptionsWithEnvAndFlag(t *testing.T) {
	flag := "1"
	storageUser := "USER"
	password := "PASSWORD"

	os.Args = []string{os.Args[0], "command", fmt.Sprintf("-flag=%s", flag)}
	t.Setenv("PASSWORD", password)

	type configTest struct {
		Storage  storage `yaml:"Storage"`
		Password string
		Debug    bool
		Flag     string
	}

	cfg := configTest{Storage: storage{User: storageUser, Database: 1, Timeout: duration(time.Second)}}

	helpWasCalled, err := WorkHelp("a", "b", "c", &cfg, CommonParseOptions)
	require.NoError(t, err)

	require.False(t, helpWasCalled, "help was not called")
	require.Equal(t, password, cfg.Password, "password from env is not set")
	require.Equal(t, storageUser, cfg.Storage.User, "user from config is not kept")
	require.Equal(t, flag, cfg.Flag, "flag from args is not set")
}

func TestCommonParseOptionsFlagIsDisabled(t *testing.T) {
	os.Args = []string{os.Args[0], "command"}

	type configTest struct {
		Flag string `flag:"-"`
	}

	cfg := configTest{}

	_, err := WorkHelp("a", "b", "c", &cfg, CommonParseOptions)
	require.Error(t, err)
	require.Zero(t, cfg.Flag, "flag from args is not set")
}

func TestUnsupportedType(t *testing.T) {
	type configTest struct {
		Values []int
	}

	_, err := Flags(&configTest{}, DefaultParseOptions)
	require.Error(t, err)
}

func TestEnvNamesFromStructPrefix(t *testing.T) {
	os.Args = []string{os.Args[0]}
	t.Setenv("APP_LOGLEVEL", "debug")
	t.Setenv("STORAGE_DRIVER", "memory")

	c := Config{
		Server:     Server{Addr: ":8080"},
		Extraction: Extraction{APIURL: "http://api"},
	}

	_, err := WorkHelp("a", "b", "c", &c, CommonParseOptions)
	require.NoError(t, err)
	require.Equal(t, "debug", c.Application.LogLevel)
	require.Equal(t, "memory", c.Storage.Driver)
}

func TestNamingHelpers(t *testing.T) {
	require.Equal(t, "log-level", toKebabCase("LogLevel"))
	require.Equal(t, "PROXY_URL", toScreamingSnakeCase("ProxyURL"))
	require.Equal(t, "HTTP_SERVER", toScreamingSnakeCase("HTTPServer"))
	// подряд идущие заглавные перед словом не склеиваются
	require.Equal(t, "SQ_LITE_PATH", toScreamingSnakeCase("SQLitePath"))
}

func TestStorageMongoEnvWithoutPrefix(t *testing.T) {
	var c Config

	flags, err := Flags(&c, CommonParseOptions)
	require.NoError(t, err)

	envs := map[string][]string{}
	for _, f := range flags {
		if sf, ok := f.(*cli.StringFlag); ok {
			envs[sf.Name] = sf.Sources.EnvKeys()
		}
	}

	require.Equal(t, []string{"MONGODB_URI"}, envs["storage-mongo-uri"])
	require.Equal(t, []string{"MONGODB_DB_NAME"}, envs["storage-mongo-db"])
	require.Equal(t, []string{"STORAGE_SQLITE_PATH"}, envs["storage-sqlite-path"])
	require.Equal(t, []string{"TG_BOT_TOKEN"}, envs["tg-bot-token"])
}

func TestBulkConfigDefaultsEnvAndFlags(t *testing.T) {
	os.Args = []string{os.Args[0], "--url", "https://vm.tiktok.com/a/", "--url", "https://vm.tiktok.com/b/", "--thumbnails=false"}
	t.Setenv("BULK_SERVER", "http://downloader:8080")

	var c BulkConfig

	_, err := WorkHelp("bulk", "", "", &c, BulkParseOptions)
	require.NoError(t, err)
	require.Equal(t, "http://downloader:8080", c.Server)
	require.Equal(t, ".", c.Out)
	require.Equal(t, time.Second, c.Delay)
	require.False(t, c.Thumbnails)
	require.Equal(t, []string{"https://vm.tiktok.com/a/", "https://vm.tiktok.com/b/"}, c.URLs)
	require.Equal(t, "info", c.LogLevel)
}
