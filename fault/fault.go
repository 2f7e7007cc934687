// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyBound             = ExistsError("key already bound")
	AlreadyInitialised       = ExistsError("already initialised")
	CertificateFileExists    = ExistsError("certificate file already exists")
	DatabaseIsNotSet         = ProcessError("database is not set")
	IncompatibleVersion      = InvalidError("incompatible database version")
	InvalidIpAddress         = InvalidError("invalid IP address")
	InvalidKey               = InvalidError("invalid key")
	InvalidName              = InvalidError("invalid name")
	InvalidPortNumber        = InvalidError("invalid port number")
	InvalidStructPointer     = InvalidError("invalid struct pointer")
	KeyFileExists            = ExistsError("key file already exists")
	KeyNotFound              = NotFoundError("key not found")
	MissingParameters        = InvalidError("missing parameters")
	NotInitialised           = NotFoundError("not initialised")
	PlayerNotFound           = NotFoundError("player not found")
	RateLimiting             = InvalidError("rate limiting")
	ReadError                = ProcessError("storage read error")
	TransactionAlreadyActive = ProcessError("transaction already active")
	TransactionNotActive     = ProcessError("transaction not active")
	WriteError               = ProcessError("storage write error")
)

// the error interface methods
func (e GenericError) Error() string  { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine the class of an error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrNotFound - determine the class of an error
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine the class of an error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }
