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

package viperutil

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// GetFuncForType returns the default getter function for a given type T. A
// getter function is a function which takes a viper and returns a function that
// takes a key and (finally!) returns a value of type T.
//
// For example, the default getter for a value of type string is a function
// that takes a viper instance v and calls v.GetString with the provided key.
//
// It panics for types without a default getter; callers need to provide
// their own GetFunc in the Options for such types.
func GetFuncForType[T any]() func(v *viper.Viper) func(key string) T {
	var (
		t T
		f any
	)

	switch any(t).(type) {
	case bool:
		f = func(v *viper.Viper) func(key string) bool { return v.GetBool }
	case int:
		f = func(v *viper.Viper) func(key string) int { return v.GetInt }
	case int64:
		f = func(v *viper.Viper) func(key string) int64 { return v.GetInt64 }
	case string:
		f = func(v *viper.Viper) func(key string) string { return v.GetString }
	case []string:
		f = func(v *viper.Viper) func(key string) []string { return v.GetStringSlice }
	case time.Duration:
		f = func(v *viper.Viper) func(key string) time.Duration { return v.GetDuration }
	default:
		panic(fmt.Sprintf("unsupported type for viperutil getter: %T", t))
	}

	return f.(func(v *viper.Viper) func(key string) T)
}
