// Package log : chaincode wide logger.
// wraps a zap sugared logger so call sites keep printf style
package log

import (
	"go.uber.org/zap"
)

// IsDev : true when logger was initialized in development mode,
// used to guard verbose dumps of state
var IsDev bool

var logger = zap.NewNop().Sugar()

// InitLogger : initialize package logger.
// isDev = true gives human readable debug output, otherwise json at info level.
func InitLogger(isDev bool) {
	var (
		l   *zap.Logger
		err error
	)
	if isDev {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		l = zap.NewNop()
	}
	IsDev = isDev
	logger = l.Sugar()
}

// Sync : flush buffered entries.
func Sync() error {
	return logger.Sync()
}

func Info(args ...interface{}) {
	logger.Info(args...)
}

func Infof(template string, args ...interface{}) {
	logger.Infof(template, args...)
}

func Debugf(template string, args ...interface{}) {
	logger.Debugf(template, args...)
}

func Errorf(template string, args ...interface{}) {
	logger.Errorf(template, args...)
}

func Warnf(template string, args ...interface{}) {
	logger.Warnf(template, args...)
}
