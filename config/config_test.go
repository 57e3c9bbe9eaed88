package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name string
		src  string
		want *Properties
	}{
		{
			name: "empty file keeps defaults",
			src:  "",
			want: Default(),
		},
		{
			name: "comments and unknown keys are ignored",
			src:  "# comment\n  # indented comment\nfoo bar\nloglevel debug\n",
			want: &Properties{LogLevel: "debug", LogPath: "./logs", TimeFormat: defaultTimeFormat},
		},
		{
			name: "keys are case insensitive",
			src:  "LogLevel warn\nENABLEFILELOG yes\nlogpath /tmp/dlist\nscript ops.yaml\n",
			want: &Properties{
				LogLevel:      "warn",
				LogPath:       "/tmp/dlist",
				EnableFileLog: true,
				TimeFormat:    defaultTimeFormat,
				Script:        "ops.yaml",
			},
		},
		{
			name: "only yes enables a bool",
			src:  "enablefilelog true\n",
			want: Default(),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Default()
			err := parse(strings.NewReader(tc.src), got)
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestProperties_Level(t *testing.T) {
	p := Default()
	assert.Equal(t, logrus.InfoLevel, p.Level())
	p.LogLevel = "debug"
	assert.Equal(t, logrus.DebugLevel, p.Level())
	p.LogLevel = "nonsense"
	assert.Equal(t, logrus.InfoLevel, p.Level())
}

func TestSetUpConfig(t *testing.T) {
	p, err := SetUpConfig("")
	assert.Nil(t, err)
	assert.Equal(t, Default(), p)

	_, err = SetUpConfig(filepath.Join(t.TempDir(), "missing.conf"))
	assert.NotNil(t, err)

	dir := t.TempDir()
	filename := filepath.Join(dir, "dlist.conf")
	require.Nil(t, os.WriteFile(filename, []byte("loglevel debug\nscript ops.yaml\n"), 0o644))
	p, err = SetUpConfig(filename)
	require.Nil(t, err)
	assert.Equal(t, "debug", p.LogLevel)
	assert.Equal(t, filename, p.CfPath)
	assert.Equal(t, filepath.Join(dir, "ops.yaml"), p.Script)
}
