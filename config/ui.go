package config

import (
	"fmt"

	"github.com/go-ini/ini"
)

type UIConfig struct {
	MouseEnabled bool `ini:"mouse-enabled" default:"true"`
	// number of labels created at start-up
	InitialLabels int `ini:"initial-labels" default:"5"`
}

func (config *LazyConfig) parseUi(file *ini.File) error {
	if err := MapToStruct(file.Section("ui"), &config.Ui, true); err != nil {
		return err
	}
	if config.Ui.InitialLabels < 0 {
		return fmt.Errorf("[ui].initial-labels: must be positive")
	}
	return nil
}
