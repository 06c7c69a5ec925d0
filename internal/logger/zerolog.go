package logger

import (
	"io"

	"github.com/rs/zerolog"
)

type ZerologAdapter struct {
	logger zerolog.Logger
}

var _ Logger = (*ZerologAdapter)(nil)

func NewZerolog(writer io.Writer, level LogLevel) *ZerologAdapter {
	logger := zerolog.New(writer).
		Level(zerologLevel(level)).
		With().
		Timestamp().
		Logger()

	return &ZerologAdapter{logger: logger}
}

// NewConsoleLogger writes human readable lines to out. Pass noColor when out
// is a file.
func NewConsoleLogger(out io.Writer, level LogLevel, noColor bool) *ZerologAdapter {
	consoleWriter := zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05", NoColor: noColor}
	return NewZerolog(consoleWriter, level)
}

func zerologLevel(level LogLevel) zerolog.Level {
	switch level {
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// entry tags event with the emitting component and the caller's fields.
// Fields are written in key order so console lines are stable.
func entry(event *zerolog.Event, component string, fields map[string]interface{}) *zerolog.Event {
	return event.Str("component", component).Fields(fields)
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	entry(z.logger.Debug(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	entry(z.logger.Info(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	entry(z.logger.Warn(), component, fields).Msg(message)
}

// Error records err under the "error" key. An "action" field, when present,
// becomes the message.
func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	message := "operation failed"
	if action, ok := fields["action"].(string); ok && action != "" {
		message = action
	}
	entry(z.logger.Error(), component, fields).Err(err).Msg(message)
}
