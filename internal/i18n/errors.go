// Copyright © 2021 Kaleido, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package i18n

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// Error is a coded error. The message of the error itself includes the
// full cause chain, while Message() returns only the coded top-level text.
type Error struct {
	key     MessageKey
	message string
	err     error
}

func (e *Error) Error() string {
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Cause() error {
	return errors.Cause(e.err)
}

func (e *Error) Format(s fmt.State, verb rune) {
	if f, ok := e.err.(fmt.Formatter); ok {
		f.Format(s, verb)
		return
	}
	fmt.Fprint(s, e.err.Error())
}

func (e *Error) MessageKey() MessageKey {
	return e.key
}

// Message is the coded top-level message, without any wrapped cause
func (e *Error) Message() string {
	return e.message
}

func NewError(ctx context.Context, msg MessageKey, inserts ...interface{}) error {
	str := ExpandWithCode(ctx, msg, inserts...)
	return &Error{key: msg, message: str, err: errors.New(str)}
}

func WrapError(ctx context.Context, err error, msg MessageKey, inserts ...interface{}) error {
	str := ExpandWithCode(ctx, msg, inserts...)
	return &Error{key: msg, message: str, err: errors.Wrap(err, str)}
}

// IsKey returns true if any coded error in the chain carries the supplied key
func IsKey(err error, key MessageKey) bool {
	for err != nil {
		if fe, ok := err.(*Error); ok && fe.key == key {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// StatusHint returns the HTTP status hint of the outermost coded error in the chain that has one
func StatusHint(err error) (int, bool) {
	for err != nil {
		if fe, ok := err.(*Error); ok {
			if status, ok := GetStatusHint(string(fe.key)); ok {
				return status, true
			}
		}
		err = errors.Unwrap(err)
	}
	return 0, false
}

// TopMessage returns the coded top-level message of an error, or its full text if it is not coded
func TopMessage(err error) string {
	if fe, ok := err.(*Error); ok {
		return fe.message
	}
	return err.Error()
}
