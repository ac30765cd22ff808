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
	"sync"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"vitess.io/strenc/go/viperutil/internal/registry"
	"vitess.io/strenc/go/vt/log"
	"vitess.io/strenc/go/vt/utils"
	"vitess.io/strenc/go/vt/vterrors"
)

var (
	configFile string

	fsMu     sync.Mutex
	configFs afero.Fs = afero.NewOsFs()
)

// SetConfigFs replaces the filesystem config files are read from and returns
// a function restoring the previous one.
func SetConfigFs(fs afero.Fs) (restore func()) {
	fsMu.Lock()
	defer fsMu.Unlock()

	prev := configFs
	configFs = fs
	return func() {
		fsMu.Lock()
		defer fsMu.Unlock()
		configFs = prev
	}
}

// RegisterFlags installs the config-file flag on the given FlagSet.
func RegisterFlags(fs *pflag.FlagSet) {
	utils.SetFlagStringVar(fs, &configFile, "config-file", "", "full path of the config file (with extension) to use. Supported formats are the ones understood by viper (yaml, json, toml, ...)")
}

// LoadConfig reads the config file named by --config-file, if any, into the
// registry. Values already set by flags or environment variables keep
// precedence over the file, as viper resolves them.
func LoadConfig() error {
	if configFile == "" {
		return nil
	}
	return LoadConfigFile(configFile)
}

// LoadConfigFile reads the given config file into the registry.
func LoadConfigFile(path string) error {
	fsMu.Lock()
	registry.Static.SetFs(configFs)
	fsMu.Unlock()

	registry.Static.SetConfigFile(path)
	if err := registry.Static.ReadInConfig(); err != nil {
		return vterrors.Wrapf(err, "failed to read config file %s", path)
	}
	log.InfoS("loaded config file", "path", registry.Static.ConfigFileUsed())
	return nil
}
