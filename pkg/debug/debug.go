// Package debug builds the console logger used by the minimark CLI.
package debug

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

const TimeFormat = "2006-01-02T15:04:05.0000Z"

// Options configures NewLogger.
type Options struct {
	Level     zerolog.Level
	WithColor bool
	// Caller adds a pkg:file:line field to every event.
	Caller bool
	// Now overrides the clock, mostly for tests.
	Now func() time.Time
}

// NewLogger returns a console logger writing to w.
func NewLogger(w io.Writer, opts Options) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:     w,
		NoColor: !opts.WithColor,
		// the hooks below already render these two parts
		FormatTimestamp: passthrough(""),
		FormatCaller:    passthrough(" >"),
	}

	logger := zerolog.New(writer).
		Level(opts.Level).
		Hook(CustomTimeHook{WithColor: opts.WithColor, Now: opts.Now})

	if opts.Caller {
		logger = logger.Hook(CustomCallerHook{WithColor: opts.WithColor})
	}

	return logger
}

func passthrough(suffix string) zerolog.Formatter {
	return func(i interface{}) string {
		if i == nil {
			return ""
		}
		return fmt.Sprint(i) + suffix
	}
}

// WithLogger attaches a console logger for the CLI to ctx. Debug turns on debug level and
// caller info.
func WithLogger(ctx context.Context, w io.Writer, debug bool) context.Context {
	opts := Options{Level: zerolog.InfoLevel, WithColor: IsTerminal(w)}
	if debug {
		opts.Level = zerolog.DebugLevel
		opts.Caller = true
	}
	logger := NewLogger(w, opts)
	return logger.WithContext(ctx)
}

// IsTerminal reports whether fatih/color would colorize w.
func IsTerminal(w io.Writer) bool {
	if color.NoColor {
		return false
	}
	type fder interface{ Fd() uintptr }
	_, ok := w.(fder)
	return ok
}

func hackGetCallerSkipFrameCount(e *zerolog.Event) int {
	v := reflect.ValueOf(e).Elem()
	field := v.FieldByName("skipFrame")

	if field.IsValid() && field.CanAddr() {
		return int(field.Int())
	}

	return 0
}

type CustomTimeHook struct {
	WithColor bool
	Format    string
	Now       func() time.Time
}

func (t CustomTimeHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	now := time.Now
	if t.Now != nil {
		now = t.Now
	}

	format := t.Format
	if format == "" {
		format = TimeFormat
	}

	str := now().UTC().Format(format)
	if t.WithColor {
		str = color.New(color.Faint).Sprint(str)
	}
	e.Str("time", str)
}

type CustomCallerHook struct {
	WithColor bool
}

func (c CustomCallerHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	pc, file, line, ok := runtime.Caller(hackGetCallerSkipFrameCount(e) + 3)
	if !ok {
		return
	}

	funcd := runtime.FuncForPC(pc)
	if funcd == nil {
		return
	}

	pkg, _ := GetPackageAndFuncFromFuncName(funcd.Name())

	e.Str("caller", FormatCaller(pkg, file, line, c.WithColor))
}

// GetPackageAndFuncFromFuncName splits a runtime function name such as
// "github.com/walteh/minimark/pkg/tag.(*Registry).Resolve" into its package and function.
func GetPackageAndFuncFromFuncName(name string) (pkg, function string) {
	lastSlash := strings.LastIndexByte(name, '/')
	if lastSlash < 0 {
		lastSlash = 0
	}

	firstDot := strings.IndexByte(name[lastSlash:], '.')
	if firstDot < 0 {
		return name, ""
	}
	firstDot += lastSlash

	pkg = name[:firstDot]
	function = name[firstDot+1:]

	return pkg, function
}

func FormatCaller(pkg, path string, number int, colorize bool) string {
	p := FileNameOfPath(path)
	if colorize {
		p = color.New(color.Bold).Sprint(p)
		num := color.New(color.FgHiRed, color.Bold).Sprintf("%d", number)
		sep := color.New(color.Faint).Sprint(":")

		return fmt.Sprintf("%s%s%s%s%s", pkg, sep, p, sep, num)
	}

	return fmt.Sprintf("%s:%s:%d", pkg, p, number)
}

func FileNameOfPath(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
