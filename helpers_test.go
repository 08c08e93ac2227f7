package pactcore

import (
	"testing"

	"github.com/sourcegraph/log"
	"github.com/sourcegraph/log/logtest"
)

func nopLogger(t *testing.T) log.Logger {
	return logtest.Scoped(t)
}
