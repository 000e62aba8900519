package bfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/brainfetch/configs"
	"github.com/reusee/brainfetch/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"brainfetch.cue",
	".brainfetch.cue",
}

// ConfigPaths lists existing config files, most specific first.
func ConfigPaths() (paths []string) {
	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	paths := ConfigPaths()
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return configs.NewLoader(paths, schema)
}
