// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrCountMismatch        = RecordError("node count does not match size")
	ErrDeletionsExceedTotal = InvalidError("random deletions exceed total insertions")
	ErrHeightMismatch       = RecordError("stored height is incorrect")
	ErrInvalidCheckMode     = InvalidError("check mode is invalid")
	ErrInvalidCount         = InvalidError("count is invalid")
	ErrInvalidKeyRange      = InvalidError("key range is invalid")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrKeyOrder             = RecordError("keys are out of order")
	ErrNotFoundConfigFile   = NotFoundError("configuration file is not found")
	ErrNotIntegerNumber     = InvalidError("number is not an integer")
	ErrParentLink           = RecordError("parent link is inconsistent")
	ErrRequiredConfigFile   = InvalidError("configuration file is required")
	ErrSearchMismatch       = ProcessError("search returned unexpected value")
	ErrUnbalanced           = RecordError("node is unbalanced")
	ErrUnknownOperation     = InvalidError("operation is unknown")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
func IsErrRecord(e error) bool   { var t RecordError; return errors.As(e, &t) }
