// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// time allowed for the log file to be written before a panic
const panicDelay = 100 * time.Millisecond

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
//
// the logger package must already be initialised
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and release the channel
func Finalise() {
	if nil != log {
		log.Flush()
	}
	log = nil
}

// Critical - log a simple string prefixed by the caller's position
func Critical(message string) {
	criticalf(2, "%s", message)
}

// Criticalf - log a formatted string prefixed by the caller's position
func Criticalf(format string, arguments ...interface{}) {
	criticalf(2, format, arguments...)
}

// Panic - log the message then panic with it
func Panic(message string) {
	criticalf(2, "%s", message)
	time.Sleep(panicDelay)
	panic(message)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %s", message, err)
	criticalf(2, "%s", s)
	time.Sleep(panicDelay)
	panic(s)
}

// skip is the number of frames between the public function's caller
// and this one
func criticalf(skip int, format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(skip); ok {
		format = fmt.Sprintf("(%q:%d) %s", file, line, format)
	}

	// uninitialised channel falls back to stdout
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush()
}
