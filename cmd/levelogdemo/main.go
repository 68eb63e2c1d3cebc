// Command levelogdemo exercises the logger from the command line: it
// applies the thresholds given as flags and logs one message per level,
// followed by a wrapped error so the stack dump can be seen.
//
// Usage:
//
//	levelogdemo [--level info] [--error-threshold error] [--relative-path=false] [--zap] [--tee] [message...]
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/philipp01105/levelog/core"
	"github.com/philipp01105/levelog/handler"
	"github.com/philipp01105/levelog/handler/consolehandler"
	"github.com/philipp01105/levelog/handler/zaphandler"
	"github.com/philipp01105/levelog/logger"
)

const programName = "levelogdemo"

type options struct {
	level          string
	errorThreshold string
	label          string
	relativePath   bool
	useZap         bool
	tee            bool
	message        string
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// parseOptions returns the options, or a non-nil error when the command
// line could not be parsed. help is true when usage was requested.
func parseOptions(args []string, stderr io.Writer) (opts options, help bool, err error) {
	name := programName
	if len(args) > 0 {
		name = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.BoolVarP(&help, "help", "h", false, "Print command-line usage")
	fs.StringVarP(&opts.level, "level", "l", core.DebugLevel.String(),
		"Minimum level to emit: "+levelNames())
	fs.StringVarP(&opts.errorThreshold, "error-threshold", "e", core.ErrorLevel.String(),
		"Level from which lines go to stderr")
	fs.StringVar(&opts.label, "label", "", "Label for every line (default: this source file)")
	fs.BoolVar(&opts.relativePath, "relative-path", true,
		"Print the label relative to the working directory")
	fs.BoolVar(&opts.useZap, "zap", false, "Route output through a zap development logger")
	fs.BoolVar(&opts.tee, "tee", false, "Also copy error lines to the normal output")

	if err = fs.Parse(args); err != nil {
		return opts, false, err
	}
	if help {
		fs.PrintDefaults()
		return opts, true, nil
	}

	opts.message = strings.Join(fs.Args(), " ")
	if opts.message == "" {
		opts.message = "hello"
	}
	return opts, false, nil
}

func levelNames() string {
	var names []string
	for _, l := range core.Levels() {
		names = append(names, l.String())
	}
	return strings.Join(names, ", ")
}

// levelID turns a flag value into a level identifier: digits are a rank,
// anything else a name.
func levelID(s string) any {
	if rank, err := strconv.Atoi(s); err == nil {
		return rank
	}
	return s
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, help, err := parseOptions(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr, "Consider '-h' for command-line usage")
		return 2
	}
	if help {
		return 0
	}

	var normal, errSink handler.Sink
	if opts.useZap {
		zl, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintln(stderr, "zap:", err)
			return 1
		}
		normal, errSink = zaphandler.NewZapPair(zl)
	} else {
		p := consolehandler.NewBufferPair(stdout, stderr)
		normal, errSink = p.Normal, p.Error
	}
	if opts.tee {
		errSink = handler.NewMultiSink(errSink, normal)
	}

	f := logger.NewBuilder().WithSinks(normal, errSink).Build()
	defer f.Close()

	if err := f.SetLevel(levelID(opts.level)); err != nil {
		fmt.Fprintln(stderr, "--level:", err)
		return 2
	}
	if err := f.SetErrorThreshold(levelID(opts.errorThreshold)); err != nil {
		fmt.Fprintln(stderr, "--error-threshold:", err)
		return 2
	}
	f.SetUseRelativePath(opts.relativePath)

	log := f.New(opts.label)
	if opts.label == "" {
		log = f.FromModule(logger.ModuleDescriptor{Filename: sourceFile()})
	}

	for _, l := range core.Levels() {
		log.Log(l, opts.message, "rank", l.Rank())
	}
	log.Error(errors.Wrap(errors.New("connection reset"), "flushing queue"))

	return 0
}
