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

package encoding

import (
	"fmt"
	"os"
	"sync"

	"vitess.io/strenc/go/vt/log"
)

// FatalError is the panic value raised by Fatalf when the installed fatal
// handler returns instead of terminating the process.
type FatalError struct {
	Msg string
}

func (e *FatalError) Error() string {
	return "fatal: " + e.Msg
}

var (
	fatalMu      sync.Mutex
	fatalHandler = exitProcess
)

func exitProcess(string) {
	log.Flush()
	os.Exit(1)
}

// SetFatalHandler replaces the function that terminates the process on an
// integrity violation and returns a function restoring the previous one.
// Tests install a handler that returns, which turns every integrity
// violation into a *FatalError panic.
func SetFatalHandler(h func(msg string)) (restore func()) {
	fatalMu.Lock()
	defer fatalMu.Unlock()

	prev := fatalHandler
	fatalHandler = h
	return func() {
		fatalMu.Lock()
		defer fatalMu.Unlock()
		fatalHandler = prev
	}
}

// Fatalf reports an integrity violation: an operation slot invoked without
// an implementation, an unknown encoding kind, or a broken startup
// ordering. It never returns.
func Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fatalTotal.Inc()
	log.ErrorSDepth(1, "encoding integrity violation", "error", msg)

	fatalMu.Lock()
	h := fatalHandler
	fatalMu.Unlock()

	h(msg)
	panic(&FatalError{Msg: msg})
}
