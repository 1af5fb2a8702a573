package lamproom

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

const logTimeFormat = "15:04:05.000"

// FrameLogger writes console lines through zerolog, tagged with the frame
// they were logged in once a frame source is set. Debug and info lines go
// to one writer, warnings and errors to another.
type FrameLogger struct {
	mu    sync.Mutex
	log   zerolog.Logger
	frame func() uint64
}

func NewLogger(out, errOut io.Writer, debug bool) *FrameLogger {
	l := &FrameLogger{}
	w := levelSplitWriter{
		out: zerolog.ConsoleWriter{Out: out, NoColor: true, TimeFormat: logTimeFormat},
		err: zerolog.ConsoleWriter{Out: errOut, NoColor: true, TimeFormat: logTimeFormat},
	}
	l.log = zerolog.New(w).With().Timestamp().Logger().Hook(zerolog.HookFunc(l.tagFrame))
	l.SetDebug(debug)
	return l
}

func NewConsoleLogger(debug bool) *FrameLogger {
	return NewLogger(os.Stdout, os.Stderr, debug)
}

// SetFrameSource makes every following line carry frame=<frame()>.
func (l *FrameLogger) SetFrameSource(frame func() uint64) {
	l.mu.Lock()
	l.frame = frame
	l.mu.Unlock()
}

func (l *FrameLogger) tagFrame(e *zerolog.Event, _ zerolog.Level, _ string) {
	l.mu.Lock()
	frame := l.frame
	l.mu.Unlock()
	if frame != nil {
		e.Uint64("frame", frame())
	}
}

func (l *FrameLogger) current() zerolog.Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.log
}

func (l *FrameLogger) DebugEnabled() bool {
	return l.current().GetLevel() <= zerolog.DebugLevel
}

func (l *FrameLogger) SetDebug(enabled bool) {
	level := zerolog.InfoLevel
	if enabled {
		level = zerolog.DebugLevel
	}
	l.mu.Lock()
	l.log = l.log.Level(level)
	l.mu.Unlock()
}

func (l *FrameLogger) Debugf(format string, args ...any) {
	l.current().Debug().Msgf(format, args...)
}

func (l *FrameLogger) Infof(format string, args ...any) {
	l.current().Info().Msgf(format, args...)
}

func (l *FrameLogger) Warnf(format string, args ...any) {
	l.current().Warn().Msgf(format, args...)
}

func (l *FrameLogger) Errorf(format string, args ...any) {
	l.current().Error().Msgf(format, args...)
}

// levelSplitWriter sends warnings and worse to err.
type levelSplitWriter struct {
	out io.Writer
	err io.Writer
}

func (w levelSplitWriter) Write(p []byte) (int, error) {
	return w.out.Write(p)
}

func (w levelSplitWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level >= zerolog.WarnLevel {
		return w.err.Write(p)
	}
	return w.out.Write(p)
}

// LoggingModule installs a console logger as a resource. A logger installed
// earlier (tests do this) is kept and only its debug flag is updated.
type LoggingModule struct {
	Debug bool
}

func (m LoggingModule) Install(app *App, cmd *Commands) {
	if logger, ok := Resource[FrameLogger](app); ok {
		logger.SetDebug(m.Debug)
		logger.SetFrameSource(app.Frame)
		return
	}
	logger := NewConsoleLogger(m.Debug)
	logger.SetFrameSource(app.Frame)
	cmd.AddResources(logger)
}

type nopLogger struct{}

func NewNopLogger() Logger                          { return nopLogger{} }
func (nopLogger) DebugEnabled() bool                { return false }
func (nopLogger) SetDebug(bool)                     {}
func (nopLogger) Debugf(format string, args ...any) {}
func (nopLogger) Infof(format string, args ...any)  {}
func (nopLogger) Warnf(format string, args ...any)  {}
func (nopLogger) Errorf(format string, args ...any) {}

// Logger returns the first Logger resource, or a no-op logger.
func (app *App) Logger() Logger {
	if app == nil {
		return NewNopLogger()
	}
	for _, r := range app.resources {
		if l, ok := r.(Logger); ok {
			return l
		}
	}
	return NewNopLogger()
}
