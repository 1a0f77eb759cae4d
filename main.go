package main

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/mattn/go-isatty"
	"github.com/xo/terminfo"

	"git.sr.ht/~lazyframe/lazyframe/app"
	"git.sr.ht/~lazyframe/lazyframe/config"
	"git.sr.ht/~lazyframe/lazyframe/lib/log"
	"git.sr.ht/~lazyframe/lazyframe/lib/ui"
)

// set at build time
var Version string

func buildInfo() string {
	info := Version
	if info == "" {
		info = "dev"
	}
	info += fmt.Sprintf(" (%s %s %s)",
		runtime.Version(), runtime.GOARCH, runtime.GOOS)
	return info
}

func usage(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	fmt.Fprintln(os.Stderr, "usage: lazyframe [-hv] [-c <file>] [-n <count>]")
	os.Exit(1)
}

func showHelp() {
	fmt.Print(`Usage: lazyframe [-hv] [-c <file>] [-n <count>]

A scrollable list of labels that reports which of them are visible.

Options:

  -h          Show this help message and exit.
  -v          Print version information.
  -c <file>   Read the configuration from <file> instead of
              $XDG_CONFIG_HOME/lazyframe/lazyframe.conf.
  -n <count>  Number of labels created at start-up.

Keys: a adds a label, t lists the visible labels, q quits.
`)
}

func setWindowTitle() {
	log.Tracef("Parsing terminfo")
	ti, err := terminfo.LoadFromEnv()
	if err != nil {
		log.Warnf("Cannot get terminfo: %v", err)
		return
	}

	if !ti.Has(terminfo.HasStatusLine) {
		log.Infof("Terminal does not have status line support")
		return
	}

	log.Debugf("Setting terminal title")
	buf := new(bytes.Buffer)
	ti.Fprintf(buf, terminfo.ToStatusLine)
	fmt.Fprint(buf, "lazyframe")
	ti.Fprintf(buf, terminfo.FromStatusLine)
	os.Stderr.Write(buf.Bytes()) //nolint:errcheck // title is cosmetic
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

func main() {
	defer log.PanicHandler()
	log.BuildInfo = buildInfo()

	opts, optind, err := getopt.Getopts(os.Args, "hvc:n:")
	if err != nil {
		usage("error: " + err.Error())
		return
	}
	if optind < len(os.Args) {
		usage("error: invalid arguments")
		return
	}
	confPath := config.DefaultPath()
	labels := -1
	for _, opt := range opts {
		switch opt.Option {
		case 'h':
			showHelp()
			return
		case 'v':
			fmt.Println("lazyframe " + log.BuildInfo)
			return
		case 'c':
			confPath = opt.Value
		case 'n':
			labels, err = strconv.Atoi(opt.Value)
			if err != nil || labels < 0 {
				usage("error: -n expects a positive number")
				return
			}
		}
	}

	conf, err := config.LoadConfigFromFile(confPath)
	if err != nil {
		die("failed to load config: %s", err)
	}
	if labels >= 0 {
		conf.Ui.InitialLabels = labels
	}
	if err := conf.General.InitLogging(); err != nil {
		die("failed to initialize logging: %s", err)
	}

	log.Infof("Starting up version %s", log.BuildInfo)

	application := app.NewApp(conf)

	state, err := ui.Initialize(application)
	if err != nil {
		panic(err)
	}
	defer state.Close()
	log.UICleanup = func() {
		state.Close()
	}

	if conf.Ui.MouseEnabled {
		state.EnableMouse()
	}

	if isatty.IsTerminal(os.Stderr.Fd()) {
		setWindowTitle()
	}

	watcher, err := config.Watch(confPath, func(c *config.LazyConfig, err error) {
		ui.QueueFunc(func() {
			if err != nil {
				application.StatusLine().PushError(err.Error())
				return
			}
			application.ReloadScroll(&c.Scroll)
		})
	})
	if err != nil {
		log.Warnf("configuration will not be reloaded: %v", err)
	} else {
		defer watcher.Close()
	}

	for {
		select {
		case event := <-state.Events:
			state.HandleEvent(event)
		case callback := <-ui.Callbacks:
			callback()
		case <-ui.Redraw:
			state.Render()
		case <-ui.Quit:
			log.Infof("Shutting down")
			return
		}
	}
}
