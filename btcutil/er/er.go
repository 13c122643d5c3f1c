// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package er provides errors as data rather than as exceptions: values
// instead of panics, with an optional typed code so callers can match on
// a specific failure without string-comparing a message.
package er

import (
	"errors"
	"fmt"
)

// R is an error value. Unlike the stdlib error interface it carries an
// optional ErrorCode so callers can check "is this that specific
// failure" without comparing message text.
type R interface {
	error
	Message() string
	Code() *ErrorCode
}

// ErrorType groups a family of related ErrorCodes under one name, e.g.
// "txscript.Err".
type ErrorType struct {
	Name  string
	Codes []*ErrorCode
}

// ErrorCode identifies one specific kind of fault within an ErrorType.
type ErrorCode struct {
	Detail string
	Type   *ErrorType
}

// NewErrorType creates a new, empty error family identified by name.
func NewErrorType(name string) ErrorType {
	return ErrorType{Name: name}
}

// Code registers and returns a new ErrorCode under this ErrorType.
func (e *ErrorType) Code(detail string) *ErrorCode {
	ec := &ErrorCode{Detail: detail, Type: e}
	e.Codes = append(e.Codes, ec)
	return ec
}

// Is reports whether err was produced by this specific ErrorCode.
func (c *ErrorCode) Is(err R) bool {
	if err == nil {
		return c == nil
	}
	return err.Code() == c
}

// New builds an R carrying this code, with info appended to the message.
func (c *ErrorCode) New(info string) R {
	msg := c.Detail
	if info != "" {
		msg = msg + ": " + info
	}
	return &plainErr{msg: msg, code: c}
}

type plainErr struct {
	msg  string
	code *ErrorCode
}

func (e *plainErr) Error() string   { return e.msg }
func (e *plainErr) Message() string { return e.msg }
func (e *plainErr) Code() *ErrorCode {
	return e.code
}

// New constructs an untyped R whose Error()/Message() is exactly s, with
// no decoration. Used for the address-codec's public, spec-mandated
// diagnostic strings, which callers must see reproduced verbatim.
func New(s string) R {
	return &plainErr{msg: s}
}

// Errorf is New with fmt.Sprintf-style formatting.
func Errorf(format string, a ...interface{}) R {
	return &plainErr{msg: fmt.Sprintf(format, a...)}
}

// E wraps a stdlib error as an R, preserving its message verbatim.
func E(err error) R {
	if err == nil {
		return nil
	}
	if r, ok := err.(R); ok {
		return r
	}
	return &plainErr{msg: err.Error()}
}

// Native unwraps an R back to a plain stdlib error.
func Native(err R) error {
	if err == nil {
		return nil
	}
	return errors.New(err.Message())
}
