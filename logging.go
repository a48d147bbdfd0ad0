/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logDate string = `2006-01-02T15:04:05.000-07:00`
)

func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.LevelKey = "severity"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(logDate)
	config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	if verbose {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	return logger.Named("bluff").Sugar(), nil
}

func (c *Config) log() *zap.SugaredLogger {
	if c.logger == nil {
		return zap.NewNop().Sugar()
	}

	return c.logger
}

func logf(cfg *Config, format string, args ...any) {
	cfg.log().Infof(format, args...)
}

func debugf(cfg *Config, format string, args ...any) {
	cfg.log().Debugf(format, args...)
}

func errorf(cfg *Config, format string, args ...any) {
	cfg.log().Errorf(format, args...)
}
