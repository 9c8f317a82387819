// Package cmd The command line tool for running the bulk resizer.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"text/template"

	"go.uber.org/zap"

	"github.com/eugenmik/bulk-image-resizer/batch"
	"github.com/eugenmik/bulk-image-resizer/config"
	zlog "github.com/eugenmik/bulk-image-resizer/log"
)

// Command Cribbed from the genius organization of the "go" command.
type Command struct {
	Run                    func(args []string) bool
	UsageLine, Short, Long string
	// Flag is a set of flags specific to this command.
	Flag flag.FlagSet
}

func (cmd *Command) Name() string {
	name := cmd.UsageLine
	i := strings.Index(name, " ")
	if i >= 0 {
		name = name[:i]
	}
	return name
}

func (cmd *Command) Usage() {
	fmt.Fprintf(os.Stderr, "Usage: bulkresize %s\n", cmd.UsageLine)
	fmt.Fprintf(os.Stderr, "Default Usage:\n")
	cmd.Flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "Description:\n")
	fmt.Fprintf(os.Stderr, "  %s\n", strings.TrimSpace(cmd.Long))
	os.Exit(2)
}

// main
var (
	exitStatus = 0
	exitMu     sync.Mutex

	settings *config.Settings
)

var commands = []*Command{
	cmdGUI,
	cmdRun,
	cmdInfo,
}

func setExitStatus(n int) {
	exitMu.Lock()
	if exitStatus < n {
		exitStatus = n
	}
	exitMu.Unlock()
}

func logger() zlog.Logger {
	return zlog.Get()
}

func newLogger(s *config.Settings) (*zap.Logger, error) {
	var zc zap.Config
	if s.Develop {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	if s.LogLevel != "" {
		lvl, err := zap.ParseAtomicLevel(s.LogLevel)
		if err != nil {
			return nil, err
		}
		zc.Level = lvl
	}
	return zc.Build()
}

func Main() {
	flag.Usage = func() { usage(1) }
	flag.Parse()
	args := flag.Args()

	if len(args) > 0 && args[0] == "help" {
		if len(args) == 1 {
			usage(0)
		}
		for _, cmd := range commands {
			if cmd.Name() == args[1] {
				tmpl(os.Stdout, helpTemplate, cmd)
				return
			}
		}
		usage(2)
	}
	if len(args) == 0 {
		// no arguments opens the window
		args = []string{cmdGUI.Name()}
	}

	var err error
	settings, err = config.Load()
	if err != nil {
		errorf("bad environment: %s", err)
		os.Exit(2)
	}

	zl, err := newLogger(settings)
	if err != nil {
		errorf("logger: %s", err)
		os.Exit(2)
	}
	atExit(func() { _ = zl.Sync() }) // flushes buffer, if any
	zlog.Set(zl.Sugar())
	logger().Debugw("logger start", "version", config.Version)

	if settings.SentryDSN != "" {
		if err = batch.SetupReporting(settings.SentryDSN, config.Version); err != nil {
			logger().Warnw("sentry setup fail", "err", err)
		}
	}

	for _, cmd := range commands {
		name := cmd.Name()
		if name == args[0] && cmd.Run != nil {
			cmd.Flag.Usage = func() { cmd.Usage() }
			cmd.Flag.Parse(args[1:])
			args = cmd.Flag.Args()

			if !cmd.Run(args) {
				fmt.Fprintf(os.Stderr, "\n")
				cmd.Flag.Usage()
			}
			exit()
		}
	}

	errorf("unknown command %q\nRun 'bulkresize help' for usage.\n", args[0])
	setExitStatus(2)
	exit()
}

func errorf(format string, args ...interface{}) {
	// Ensure the user's command prompt starts on the next line.
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

const usageTemplate = `usage: bulkresize [command [arguments]]

Without a command the window is opened.

The commands are:
{{range .}}
    {{.Name | printf "%-11s"}} {{.Short}}{{end}}

Use "bulkresize help [command]" for more information.
`

var helpTemplate = `usage: bulkresize {{.UsageLine}}
{{.Long}}
`

func usage(exitCode int) {
	fmt.Fprintln(os.Stderr, "version ", config.Version)
	tmpl(os.Stderr, usageTemplate, commands)
	os.Exit(exitCode)
}

func tmpl(w io.Writer, text string, data interface{}) {
	t := template.New("top")
	template.Must(t.Parse(text))
	if err := t.Execute(w, data); err != nil {
		panic(err)
	}
}

var atExitFuncs []func()

func atExit(f func()) {
	atExitFuncs = append(atExitFuncs, f)
}

func exit() {
	for _, f := range atExitFuncs {
		f()
	}
	os.Exit(exitStatus)
}
