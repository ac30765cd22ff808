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

// Package encenv assembles the encoding runtime of a process: the registry
// of built-in encodings, the default encodings and the identifier table,
// created in that order.
package encenv

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf16"

	"github.com/spf13/pflag"

	"vitess.io/strenc/go/encoding"
	"vitess.io/strenc/go/encoding/ucnv"
	"vitess.io/strenc/go/rstr"
	"vitess.io/strenc/go/viperutil"
	"vitess.io/strenc/go/vt/log"
	"vitess.io/strenc/go/vt/vterrors"
	"vitess.io/strenc/go/vt/vtrpc"
)

var (
	defaultExternal = viperutil.Configure(
		"encoding.default-external",
		viperutil.Options[string]{
			Default:  "UTF-8",
			FlagName: "default-external",
			EnvVars:  []string{"STRENC_DEFAULT_EXTERNAL"},
		},
	)
	defaultInternal = viperutil.Configure(
		"encoding.default-internal",
		viperutil.Options[string]{
			Default:  "UTF-8",
			FlagName: "default-internal",
			EnvVars:  []string{"STRENC_DEFAULT_INTERNAL"},
		},
	)
)

// RegisterFlags installs the default encoding flags on fs and binds them to
// their config keys.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("default-external", defaultExternal.Default(), "name or alias of the default external encoding")
	fs.String("default-internal", defaultInternal.Default(), "name or alias of the default internal encoding")
	viperutil.BindFlags(fs, defaultExternal, defaultInternal)
}

// Environment is the encoding runtime of a process.
type Environment struct {
	Registry    *encoding.Registry
	Defaults    *encoding.Defaults
	Identifiers *encoding.IdentifierTable
}

// New registers the built-in encodings, seals the registry, binds both
// defaults to the locale encoding and derives the identifier table.
func New() (*Environment, error) {
	reg := encoding.NewRegistry(int(encoding.Count), ucnv.New())
	encoding.RegisterCatalog(reg)
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	reg.Seal()

	env := &Environment{Registry: reg}
	env.Defaults = encoding.NewDefaults(reg, env.Locale())
	env.Identifiers = reg.Identifiers()

	if log.Enabled(slog.LevelDebug) {
		log.DebugS("encoding environment ready", "encodings", reg.Len(), "identifiers", env.Identifiers.Names())
	}
	return env, nil
}

// Locale returns the encoding of the process locale, which is always UTF-8.
func (env *Environment) Locale() *encoding.Encoding {
	return env.Registry.Get(encoding.UTF8)
}

// ApplyConfig sets both defaults from their configured names. The first
// invalid name aborts, leaving that default unchanged.
func (env *Environment) ApplyConfig() error {
	if _, err := env.Defaults.SetExternal(defaultExternal.Get()); err != nil {
		return vterrors.Wrapf(err, "invalid %s", defaultExternal.Key())
	}
	if _, err := env.Defaults.SetInternal(defaultInternal.Get()); err != nil {
		return vterrors.Wrapf(err, "invalid %s", defaultInternal.Key())
	}
	return nil
}

func (env *Environment) pair(dst, src any) (to, from *encoding.Encoding, err error) {
	if to, err = env.Registry.Coerce(dst); err != nil {
		return nil, nil, err
	}
	if from, err = env.Registry.Coerce(src); err != nil {
		return nil, nil, err
	}
	if from != to && (from.Kind() == encoding.KindSpecial || to.Kind() == encoding.KindSpecial) {
		return nil, nil, vterrors.NewErrorf(vtrpc.Code_UNIMPLEMENTED, vterrors.UndefinedConversion, "code converter not found (%s to %s)", from.Name(), to.Name())
	}
	return to, from, nil
}

// Transcode converts b from src to dst through UTF-16. Both encodings are
// resolved with Registry.Coerce. It fails on the first byte sequence that is
// invalid in src or the first character dst cannot represent.
func (env *Environment) Transcode(dst, src any, b []byte) ([]byte, error) {
	to, from, err := env.pair(dst, src)
	if err != nil {
		return nil, err
	}
	if from == to {
		return append([]byte(nil), b...), nil
	}

	units, next := from.TranscodeToUTF16(rstr.New(b), 0)
	if next != len(b) {
		end := min(next+from.MinCharSize(), len(b))
		return nil, vterrors.NewErrorf(vtrpc.Code_INVALID_ARGUMENT, vterrors.IncompleteConversion, "%s on %s", quoteBytes(b[next:end]), from.Name())
	}

	out, next := to.TranscodeFromUTF16(units, 0)
	if next != len(units) {
		r := rune(units[next])
		if utf16.IsSurrogate(r) && next+1 < len(units) {
			r = utf16.DecodeRune(r, rune(units[next+1]))
		}
		return nil, vterrors.NewErrorf(vtrpc.Code_INVALID_ARGUMENT, vterrors.UndefinedConversion, "U+%04X from %s to %s", r, from.Name(), to.Name())
	}
	return out, nil
}

// TranscodeReplace is Transcode substituting invalid and unrepresentable
// characters instead of failing. It returns the number of substitutions.
func (env *Environment) TranscodeReplace(dst, src any, b []byte) ([]byte, int, error) {
	to, from, err := env.pair(dst, src)
	if err != nil {
		return nil, 0, err
	}
	if from == to {
		return append([]byte(nil), b...), 0, nil
	}
	out, n, ok := ucnv.Replace(from, to, b)
	if !ok {
		return nil, 0, vterrors.NewErrorf(vtrpc.Code_UNIMPLEMENTED, vterrors.UndefinedConversion, "code converter not found (%s to %s)", from.Name(), to.Name())
	}
	if n > 0 {
		log.DebugS("replaced characters while transcoding", "from", from.Name(), "to", to.Name(), "replacements", n)
	}
	return out, n, nil
}

func quoteBytes(b []byte) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, c := range b {
		fmt.Fprintf(&sb, "\\x%02X", c)
	}
	sb.WriteByte('"')
	return sb.String()
}
