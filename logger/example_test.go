package logger_test

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/philipp01105/levelog/handler/consolehandler"
	"github.com/philipp01105/levelog/logger"
)

func fixedClock() time.Time {
	return time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
}

// Build an isolated factory and raise the minimum level.
func ExampleNewBuilder() {
	out := consolehandler.NewWriterSink(consolehandler.WriterConfig{Writer: os.Stdout})

	f := logger.NewBuilder().
		WithSinks(out, out).
		WithClock(fixedClock).
		WithGetwd(func() (string, error) { return "/app", nil }).
		Build()

	log := f.FromModule(logger.ModuleDescriptor{Filename: "/app/src/foo.go"})
	log.Debug("starting")
	f.SetLevel("info")
	log.Debug("hidden")
	log.Info("ready", "port", 8080)
	// Output:
	// [2026-01-15T12:00:00.000Z] [DEBUG] [src/foo.go] - starting
	// [2026-01-15T12:00:00.000Z] [INFO] [src/foo.go] - ready port 8080
}

// Read the current threshold through a callback.
func ExampleLogger_GetErrorThreshold() {
	f := logger.NewFactory()
	log := f.Default()

	if _, err := log.SetErrorThreshold("warn"); err != nil {
		panic(err)
	}
	log.GetErrorThreshold(func(rank int, name string) {
		fmt.Println(rank, name)
	})
	// Output:
	// 2 warn
}

// Log with a level chosen at runtime.
func ExampleLogger_Log() {
	out := consolehandler.NewWriterSink(consolehandler.WriterConfig{Writer: os.Stdout})
	f := logger.NewBuilder().WithSinks(out, nil).WithClock(fixedClock).Build()

	if err := f.FromLabel("job").Log("warn", "retrying", 3); err != nil {
		panic(err)
	}
	err := f.FromLabel("job").Log("critical", "never written")
	fmt.Println(errors.Is(err, logger.ErrInvalidLevel))
	// Output:
	// [2026-01-15T12:00:00.000Z] [WARN] [job] - retrying 3
	// true
}
