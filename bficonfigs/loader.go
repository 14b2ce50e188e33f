package bficonfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/bfic/configs"
	"github.com/reusee/bfic/logs"
	"github.com/reusee/bfic/modes"
)

//go:embed schema.cue
var Schema string

var configFileNames = []string{
	"bfic.cue",
	".bfic.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {

	if mode == modes.ModeDevelopment {
		return configs.NewLoader(nil, Schema)
	}

	var paths []string

	var dirs []string
	// working directory
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	// user config dir
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	// system wide dir
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range configFileNames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	loader := configs.NewLoader(paths, Schema)
	if len(loader.Paths()) > 0 {
		logger.Debug("config files", "paths", loader.Paths())
	}
	return loader
}
