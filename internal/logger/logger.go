package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Log is the process-wide diagnostic logger. It is a no-op until Init is
// called with verbose on; a CLI prints its results on stdout and keeps the
// log on stderr for storage and cache diagnostics.
var Log = zerolog.Nop()

var once sync.Once

func Init(verbose bool) {
	once.Do(func() {
		if !verbose {
			return
		}
		writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
		Log = zerolog.New(writer).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	})
}
