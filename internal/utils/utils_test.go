package utils

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestStringNotEmptyCoalesce(t *testing.T) {
	require.Equal(t, "b", StringNotEmptyCoalesce("", "b", "c"))
	require.Empty(t, StringNotEmptyCoalesce("", ""))
	require.Empty(t, StringNotEmptyCoalesce())
}

func TestSanitizeFileName(t *testing.T) {
	require.Equal(t, "tiktok_a_b_c.mp4", SanitizeFileName("tiktok_a/b?c.mp4"))
	require.Equal(t, "plain.mp4", SanitizeFileName("plain.mp4"))
}

func TestFormatSecondsToMMSS(t *testing.T) {
	require.Equal(t, "01:15", FormatSecondsToMMSS(75))
	require.Equal(t, "00:00", FormatSecondsToMMSS(-3))
	require.Equal(t, "61:01", FormatSecondsToMMSS(3661))
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "при", Truncate("привет", 3))
	require.Equal(t, "ok", Truncate("ok", 10))
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, logrus.DebugLevel, parseLevel("debug"))
	require.Equal(t, logrus.WarnLevel, parseLevel("warning"))
	require.Equal(t, logrus.ErrorLevel, parseLevel("unknown"))
}
