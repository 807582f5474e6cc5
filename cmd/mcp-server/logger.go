package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// stderrLogger adapts zerolog to the client's Logger interface. Logging must
// stay off stdout: stdout carries the MCP protocol stream.
type stderrLogger struct {
	log zerolog.Logger
}

func newLogger(debug bool) *stderrLogger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return &stderrLogger{
		log: zerolog.New(out).Level(level).With().Timestamp().Logger(),
	}
}

func (l *stderrLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.emit(l.log.Debug(), msg, keysAndValues)
}

func (l *stderrLogger) Info(msg string, keysAndValues ...interface{}) {
	l.emit(l.log.Info(), msg, keysAndValues)
}

func (l *stderrLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.emit(l.log.Warn(), msg, keysAndValues)
}

func (l *stderrLogger) Error(msg string, keysAndValues ...interface{}) {
	l.emit(l.log.Error(), msg, keysAndValues)
}

func (l *stderrLogger) emit(ev *zerolog.Event, msg string, keysAndValues []interface{}) {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		ev = ev.Interface(fmt.Sprint(keysAndValues[i]), keysAndValues[i+1])
	}
	ev.Msg(msg)
}
