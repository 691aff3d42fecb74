package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-crossfilter/config"
	"github.com/andareed/siftly-crossfilter/crossfilter"
	"github.com/andareed/siftly-crossfilter/logging"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

var logFile = flag.String("debug", "", "Write Debug Logs to file")

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")
	levelFlag := flag.String("debug-level", "info", "log level: debug, info, warn or error")
	configFlag := flag.String("config", "", "config file (default ~/.siftly/crossfilter.yaml)")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: sfcross [--debug debug.log] [--config file.yaml] [regions.tsv]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	// Anything below here should NOT run if --version was provided.
	cleanup, err := logging.SetupLogging(*logFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	lvl, err := logging.ParseLevel(*levelFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
	logging.SetLevel(lvl)

	logging.Infof("siftly-crossfilter %s: started", Version)

	cfgPath := *configFlag
	if cfgPath == "" {
		if cfgPath, err = config.DefaultPath(); err != nil {
			logging.Warnf("config: %v", err)
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		// keep going on defaults, but tell the user why
		fmt.Fprintln(os.Stderr, "Warning:", err)
		logging.Warnf("config: %v, using defaults", err)
	}

	var inputPath string
	switch args := flag.Args(); len(args) {
	case 0:
	case 1:
		inputPath = args[0]
	default:
		flag.Usage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	session := crossfilter.NewSession(cfg.DisplayConfig())
	m := newModel(ctx, session, cfg, inputPath)

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		log.Printf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}
