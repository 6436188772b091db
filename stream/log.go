package stream

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var logger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	logger.Store(&nop)
}

// SetLogger installs the logger used to trace pipeline execution at debug level.
func SetLogger(l zerolog.Logger) {
	logger.Store(&l)
}

func logDrive(terminal string, stages []string, size int64, parallel int) {
	logger.Load().Debug().
		Str("terminal", terminal).
		Strs("stages", stages).
		Int64("size", size).
		Int("parallel", parallel).
		Msg("drive pipeline")
}

func logPartitions(terminal string, elements, partitions int) {
	logger.Load().Debug().
		Str("terminal", terminal).
		Int("elements", elements).
		Int("partitions", partitions).
		Msg("parallel evaluation")
}
