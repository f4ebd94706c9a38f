package testutil

import (
	"io"

	"github.com/dtroode/medsetu-storefront/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, 0, "text")
}
