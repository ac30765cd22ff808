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

// Package encodingtest contains helpers for tests that exercise integrity
// violations of the encoding registry.
package encodingtest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vitess.io/strenc/go/encoding"
)

// PanicOnFatal installs a fatal handler that returns, so that every
// integrity violation panics with an *encoding.FatalError instead of
// exiting the test binary. The previous handler is restored on cleanup.
func PanicOnFatal(t testing.TB) {
	t.Helper()
	restore := encoding.SetFatalHandler(func(string) {})
	t.Cleanup(restore)
}

// RequireFatal runs f and fails the test unless it reported an integrity
// violation. It returns the violation message.
//
// PanicOnFatal must have been called.
func RequireFatal(t testing.TB, f func()) (msg string) {
	t.Helper()

	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected an integrity violation")
		fe, ok := r.(*encoding.FatalError)
		require.True(t, ok, "expected *encoding.FatalError, got %T: %v", r, r)
		msg = fe.Msg
	}()
	f()
	return ""
}

// StubBackend is an encoding.Backend installing only the slots present in
// Ops. It records the encodings it was asked to install.
type StubBackend struct {
	Ops       encoding.Operations
	Installed []string
}

func (b *StubBackend) Install(enc *encoding.Encoding, ops *encoding.Operations) {
	b.Installed = append(b.Installed, enc.Name())
	*ops = b.Ops
}
