package main

import (
	"io"
	"os"

	"github.com/xuning888/dlist-tiny/config"
	"github.com/xuning888/dlist-tiny/logger"
	"github.com/xuning888/dlist-tiny/pkg/datastruct/list"
	"github.com/xuning888/dlist-tiny/pkg/script"
)

func main() {
	var filename string
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}
	if err := run(filename, os.Stdout); err != nil {
		logger.ErrorF("%v", err)
		os.Exit(1)
	}
}

func run(filename string, out io.Writer) error {
	properties, err := config.SetUpConfig(filename)
	if err != nil {
		return err
	}
	err = logger.Configure(&logger.Configuration{
		Level:         properties.Level(),
		TimeFormat:    properties.TimeFormat,
		LogPath:       properties.LogPath,
		EnableFileLog: properties.EnableFileLog,
	})
	if err != nil {
		return err
	}

	s := script.Default()
	if properties.Script != "" {
		if s, err = script.Load(properties.Script); err != nil {
			return err
		}
		logger.InfoF("loaded %d steps from %s", len(s.Steps), properties.Script)
	}

	runner := script.NewRunner(out)
	if err = runner.Run(list.New[int](), s); err != nil {
		return err
	}
	if runner.Failures > 0 {
		logger.InfoF("%d steps failed", runner.Failures)
	}
	return nil
}
