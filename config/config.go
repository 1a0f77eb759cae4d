package config

import (
	"github.com/go-ini/ini"
	"github.com/pkg/errors"

	"git.sr.ht/~lazyframe/lazyframe/lib/log"
	"git.sr.ht/~lazyframe/lazyframe/lib/xdg"
)

type LazyConfig struct {
	General GeneralConfig
	Ui      UIConfig
	Scroll  ScrollConfig
}

// DefaultPath returns the location of the configuration file when none is
// given on the command line.
func DefaultPath() string {
	return xdg.ConfigPath("lazyframe", "lazyframe.conf")
}

// LoadConfigFromFile parses the configuration file at path. A missing file
// is not an error: every setting keeps its default value.
func LoadConfigFromFile(path string) (*LazyConfig, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		Loose:              true,
		KeyValueDelimiters: "=",
	}, path)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	config, err := parseConf(file)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	log.Debugf("%s: [general] %+v", path, config.General)
	log.Debugf("%s: [ui] %+v", path, config.Ui)
	log.Debugf("%s: [scroll] %+v", path, config.Scroll)
	return config, nil
}

func parseConf(file *ini.File) (*LazyConfig, error) {
	config := &LazyConfig{}
	if err := config.parseGeneral(file); err != nil {
		return nil, err
	}
	if err := config.parseUi(file); err != nil {
		return nil, err
	}
	if err := config.parseScroll(file); err != nil {
		return nil, err
	}
	return config, nil
}
