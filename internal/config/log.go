package config

import (
	"log/slog"

	"wallet_checker/pkg/logx"
)

type Log struct {
	Level         string `env:"CHECKER_LOG_LEVEL" envDefault:"warn" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	FieldMaxLen   int    `env:"CHECKER_LOG_FIELD_MAX_LEN" envDefault:"2048" validate:"gte=0"`
	MaskAddresses bool   `env:"CHECKER_MASK_ADDRESSES" envDefault:"false"`
}

func (l Log) SlogLevel() slog.Level {
	level, err := logx.ParseLevel(l.Level)
	if err != nil {
		return slog.LevelWarn
	}

	return level
}
