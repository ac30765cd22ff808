/*
Copyright 2023 The Vitess Authors.

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

// Package viperutil binds configuration values to flags, environment
// variables and an optional config file through viper.
//
// A value is declared once, usually as a package-level variable:
//
//	defaultExternal = viperutil.Configure(
//		"encoding.default-external",
//		viperutil.Options[string]{
//			Default:  "UTF-8",
//			FlagName: "default-external",
//			EnvVars:  []string{"STRENC_DEFAULT_EXTERNAL"},
//		},
//	)
//
// and later bound to the parsed flag set with BindFlags.
package viperutil

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"vitess.io/strenc/go/viperutil/internal/value"
)

// Value represents the public API to access viper-backed config values.
type Value[T any] interface {
	value.Registerable

	// Get returns the current value.
	Get() T
	// Set sets the underlying value. Calls to Get reflect the new value
	// until the next config load.
	Set(v T)
	// Default returns the default value configured for this Value.
	Default() T
}

// Options represents the various options used to control how Values are
// configured by viperutil.
type Options[T any] struct {
	// Aliases, if set, configures the Value to be accessible via additional
	// keys.
	Aliases []string
	// FlagName, if set, allows a value to be configured to also check the
	// named flag for its final config value.
	FlagName string
	// EnvVars, if set, configures the Value to also check the given
	// environment variables for its final config value.
	EnvVars []string
	// Default is the default value that will be set for the key.
	Default T
	// GetFunc is the function used to get this value out of a viper. If
	// omitted, GetFuncForType will attempt to provide a useful default for
	// the given type T.
	GetFunc func(v *viper.Viper) func(key string) T
}

// Configure configures a viper-backed value associated with the given key.
func Configure[T any](key string, opts Options[T]) Value[T] {
	getfunc := opts.GetFunc
	if getfunc == nil {
		getfunc = GetFuncForType[T]()
	}

	base := &value.Base[T]{
		KeyName:    key,
		DefaultVal: opts.Default,
		GetFunc:    getfunc,
		Aliases:    opts.Aliases,
		FlagName:   opts.FlagName,
		EnvVars:    opts.EnvVars,
	}

	return value.NewStatic(base)
}

// BindFlags binds a set of Registerable values to the given flag set.
//
// This function will panic if any of the values was configured to map to a
// flag which is not defined on the flag set. Therefore, this function should
// usually be called in an OnParse or OnRun hook after the flags have been
// declared.
func BindFlags(fs *pflag.FlagSet, values ...value.Registerable) {
	value.BindFlags(fs, values...)
}
