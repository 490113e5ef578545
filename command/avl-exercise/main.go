// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/scenario"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "print", HasArg: getoptions.NO_ARGUMENT, Short: 'p'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--print] [--watch] [--config-file=FILE | FILE]", program)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	configurationFile := ""
	switch {
	case 1 == len(options["config-file"]):
		configurationFile = options["config-file"][0]
	case len(options["config-file"]) > 1:
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	case 1 == len(arguments):
		configurationFile = arguments[0]
	default:
		exitwithstatus.Message("%s: %s", program, fault.ErrRequiredConfigFile)
	}

	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if err := os.MkdirAll(theConfiguration.Logging.Directory, 0700); nil != err {
		exitwithstatus.Message("%s: log directory: %q  error: %s", program, theConfiguration.Logging.Directory, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %+v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	output := outputOptions{
		verbose: verbose,
		quiet:   quiet,
		print:   len(options["print"]) > 0,
	}

	err = runScenario(theConfiguration, output, log)

	if 0 == len(options["watch"]) {
		if nil != err {
			exitwithstatus.Message("%s: run failed: %s", program, err)
		}
		return
	}

	watcher, err := newFileWatcher(configurationFile, logger.New(watcherLoggerPrefix))
	if nil != err {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}
	if err := watcher.Start(); nil != err {
		exitwithstatus.Message("%s: file watcher start failed with error: %s", program, err)
	}
	defer watcher.Stop()

	if !quiet {
		fmt.Printf("\nwatching: %q  waiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…\n", configurationFile)
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-watcher.change:
			c, err := getConfiguration(configurationFile)
			if nil != err {
				log.Errorf("failed to read configuration from: %q  error: %s", configurationFile, err)
				fmt.Printf("configuration error: %s\n", err)
				continue
			}

			// the logger is already running so the new logging section is ignored
			c.Logging = theConfiguration.Logging
			log.Info("configuration changed, running again")
			if err := runScenario(c, output, log); nil != err {
				log.Warnf("re-run failed, still watching: %q", configurationFile)
			}

		case <-watcher.remove:
			log.Warn("configuration file removed")
			if !quiet {
				fmt.Printf("\nconfiguration file removed\n")
			}
			return

		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			if !quiet {
				fmt.Printf("\nreceived signal: %v\n", sig)
			}
			return
		}
	}
}

// console output selection
type outputOptions struct {
	verbose bool
	quiet   bool
	print   bool
}

// run one scenario on a new tree and print the results
func runScenario(theConfiguration *Configuration, output outputOptions, log *logger.L) error {
	reporter := &consoleReporter{
		w:       os.Stdout,
		verbose: output.verbose && !output.quiet,
	}

	runner, err := scenario.New(theConfiguration.Scenario(), reporter, logger.New("scenario"))
	if nil != err {
		log.Criticalf("scenario setup error: %s", err)
		return err
	}

	err = runner.Run()

	tree := runner.Tree()
	if theConfiguration.PrintTree || output.print {
		depth := tree.Print(os.Stdout, output.verbose)
		fmt.Printf("depth: %d\n", depth)
	}

	if !output.quiet {
		stats := runner.Statistics()
		fmt.Printf("size:       %d\n", tree.Size())
		fmt.Printf("height:     %d\n", tree.Height())
		fmt.Printf("inserted:   %d  duplicates: %d\n", stats.Inserted.Uint64(), stats.Duplicates.Uint64())
		fmt.Printf("removed:    %d  missing:    %d\n", stats.Removed.Uint64(), stats.Missing.Uint64())
		fmt.Printf("found:      %d  not found:  %d\n", stats.Found.Uint64(), stats.NotFound.Uint64())
		fmt.Printf("checks:     %d\n", stats.Checks.Uint64())
		if output.verbose {
			fmt.Printf("keys:       %v\n", tree.Keys())
		}
	}

	if nil != err {
		log.Errorf("run failed: %s", err)
		if !output.quiet {
			fmt.Printf("run failed: %s\n", err)
		}
		return err
	}
	return nil
}
