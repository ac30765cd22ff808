/*
Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package vterrors provides simple error handling primitives for strenc.
//
// Every error created by this package carries a vtrpc.Code and, optionally,
// a State that callers can use to tell apart the different caller errors
// (for example an unknown encoding name) without matching on messages.
//
// Errors can be wrapped with additional context using Wrap or Wrapf. The
// standard library errors.Is and errors.As work through the wrapping layers.
package vterrors

import (
	"context"
	"errors"
	"fmt"

	"vitess.io/strenc/go/vt/vtrpc"
)

type fundamental struct {
	msg   string
	code  vtrpc.Code
	state State
}

func (f *fundamental) Error() string { return f.msg }

func (f *fundamental) ErrorCode() vtrpc.Code { return f.code }

func (f *fundamental) ErrorState() State { return f.state }

// New returns an error with the supplied message.
func New(code vtrpc.Code, message string) error {
	return &fundamental{msg: message, code: code}
}

// NewErrorf formats according to a format specifier and returns the string
// as a value that satisfies error. It also records the given state.
func NewErrorf(code vtrpc.Code, state State, format string, args ...any) error {
	return &fundamental{msg: fmt.Sprintf(format, args...), code: code, state: state}
}

// Errorf formats according to a format specifier and returns the string
// as a value that satisfies error.
func Errorf(code vtrpc.Code, format string, args ...any) error {
	return &fundamental{msg: fmt.Sprintf(format, args...), code: code}
}

type wrapping struct {
	cause error
	msg   string
}

func (w *wrapping) Error() string { return w.msg + ": " + w.cause.Error() }

func (w *wrapping) Unwrap() error { return w.cause }

// Wrap returns an error annotating err with the supplied message.
// If err is nil, Wrap returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrapping{cause: err, msg: message}
}

// Wrapf returns an error annotating err with the format specifier.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &wrapping{cause: err, msg: fmt.Sprintf(format, args...)}
}

// Code returns the error code if it's a vtError.
// If err is nil, it returns OK.
func Code(err error) vtrpc.Code {
	if err == nil {
		return vtrpc.Code_OK
	}
	var withCode ErrorWithCode
	if errors.As(err, &withCode) {
		return withCode.ErrorCode()
	}
	// Handle some special cases.
	switch {
	case errors.Is(err, context.Canceled):
		return vtrpc.Code_CANCELED
	case errors.Is(err, context.DeadlineExceeded):
		return vtrpc.Code_DEADLINE_EXCEEDED
	}
	return vtrpc.Code_UNKNOWN
}

// ErrState returns the error state if it's a vtError.
// If err is nil, it returns Undefined.
func ErrState(err error) State {
	var withState ErrorWithState
	if errors.As(err, &withState) {
		return withState.ErrorState()
	}
	return Undefined
}
