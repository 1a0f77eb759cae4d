package config

import (
	"io"
	"os"

	"github.com/go-ini/ini"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"git.sr.ht/~lazyframe/lazyframe/lib/log"
	"git.sr.ht/~lazyframe/lazyframe/lib/xdg"
)

type GeneralConfig struct {
	LogFile  string       `ini:"log-file"`
	LogLevel log.LogLevel `ini:"log-level" default:"info" parse:"ParseLogLevel"`
}

func (config *LazyConfig) parseGeneral(file *ini.File) error {
	return MapToStruct(file.Section("general"), &config.General, true)
}

func (gen *GeneralConfig) ParseLogLevel(sec *ini.Section, key *ini.Key) (log.LogLevel, error) {
	return log.ParseLevel(key.String())
}

// InitLogging opens the log destination. When stdout is redirected, logs go
// there at debug level whatever the configuration says.
func (gen *GeneralConfig) InitLogging() error {
	var w io.Writer
	var closer io.Closer
	level := gen.LogLevel

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		w = os.Stdout
		level = log.DEBUG
	} else if gen.LogFile != "" {
		path := xdg.ExpandHome(gen.LogFile)
		f, err := os.OpenFile(path,
			os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return errors.Wrap(err, "log-file")
		}
		w, closer = f, f
	}
	return log.Init(w, closer, level)
}
