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

package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type span struct {
	name  string
	start int
	end   int
}

func TestMustMatchIgnoresFields(t *testing.T) {
	mustMatch := MustMatchFn(".start")
	mustMatch(t, span{name: "a", start: 1, end: 2}, span{name: "a", start: 7, end: 2})
	MustMatch(t, []span{{name: "b", end: 3}}, []span{{name: "b", end: 3}})
}

func TestEnsureNoLeaks(t *testing.T) {
	done := make(chan struct{})
	go func() {
		<-done
	}()
	require.Error(t, GetLeaks())

	close(done)
	EnsureNoLeaks(t)
}
