package ssa

import (
	"ssa_parser/util/logger"

	"github.com/sirupsen/logrus"
)

func silentLog() *logrus.Logger {
	return logger.NewSilent()
}
