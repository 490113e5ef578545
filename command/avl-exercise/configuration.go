// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/scenario"
)

// basic defaults (directories and files are relative to the configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "avl-exercise.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	logger.DefaultTag: "info",
}

// Configuration - contents of the Lua configuration file
type Configuration struct {
	Seed       uint64               `gluamapper:"seed" json:"seed"`
	Check      scenario.CheckMode   `gluamapper:"check" json:"check"`
	PrintTree  bool                 `gluamapper:"print_tree" json:"print_tree"`
	Operations []scenario.Operation `gluamapper:"operations" json:"operations"`
	Random     scenario.Random      `gluamapper:"random" json:"random"`
	Logging    logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Scenario - the part of the configuration that drives the runner
func (c *Configuration) Scenario() scenario.Configuration {
	return scenario.Configuration{
		Seed:       c.Seed,
		Check:      c.Check,
		Operations: c.Operations,
		Random:     c.Random,
	}
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		Check: scenario.CheckEvery,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(dataDirectory, options.Logging.Directory)
	}

	// fail early rather than after the logger is running
	check := options.Scenario()
	if err := check.Validate(); nil != err {
		return nil, err
	}
	options.Check = check.Check

	return options, nil
}
