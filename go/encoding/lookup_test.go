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

package encoding_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitess.io/strenc/go/encoding"
	"vitess.io/strenc/go/test/utils"
	"vitess.io/strenc/go/vt/vterrors"
	"vitess.io/strenc/go/vt/vtrpc"
)

func TestFindByNameEveryNameAndAlias(t *testing.T) {
	reg := newCatalog(t)

	for _, enc := range reg.All() {
		for _, name := range enc.Names() {
			for _, variant := range []string{name, strings.ToLower(name), strings.ToUpper(name)} {
				got, ok := reg.FindByName(variant)
				require.True(t, ok, variant)
				assert.Same(t, enc, got, variant)
			}
		}
	}
}

func TestFindByName(t *testing.T) {
	reg := newCatalog(t)

	testcases := []struct {
		name string
		want string
	}{
		{"utf-8", "UTF-8"},
		{"Utf-8", "UTF-8"},
		{"LOCALE", "UTF-8"},
		{"binary", "ASCII-8BIT"},
		{"646", "US-ASCII"},
		{"ansi_x3.4-1968", "US-ASCII"},
		{"EUCJP", "EUC-JP"},
		{"cp950", "Big5"},
		{"MACROMAN", "macRoman"},
		{"ucs-4le", "UTF-32LE"},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			enc, err := reg.Find(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, enc.Name())
		})
	}
}

func TestFindUnknown(t *testing.T) {
	reg := newCatalog(t)

	for _, name := range []string{"", "UTF8", "utf-8 ", "bogus", "US-ASCİİ", "ＵＴＦ-8"} {
		t.Run(name, func(t *testing.T) {
			_, ok := reg.FindByName(name)
			assert.False(t, ok)

			enc, err := reg.Find(name)
			assert.Nil(t, enc)
			require.Error(t, err)
			assert.Equal(t, "unknown encoding name - "+name, err.Error())
			assert.Equal(t, vtrpc.Code_INVALID_ARGUMENT, vterrors.Code(err))
			assert.Equal(t, vterrors.UnknownEncoding, vterrors.ErrState(err))

			var unknown *encoding.UnknownEncodingError
			require.True(t, errors.As(err, &unknown))
			assert.Equal(t, name, unknown.Name)
		})
	}
}

func TestFindFirstRegistrationWins(t *testing.T) {
	reg := encoding.NewRegistry(2, nil)
	first := reg.Register(encoding.Definition{ID: 0, Kind: encoding.KindSpecial, Name: "first", MinCharSize: 1, Aliases: []string{"shared"}})
	reg.Register(encoding.Definition{ID: 1, Kind: encoding.KindSpecial, Name: "SHARED", MinCharSize: 1})

	got, ok := reg.FindByName("Shared")
	require.True(t, ok)
	assert.Same(t, first, got)
}

type encodingName string

func (n encodingName) String() string { return string(n) }

func TestCoerce(t *testing.T) {
	reg := newCatalog(t)
	utf8 := reg.Get(encoding.UTF8)

	for _, v := range []any{utf8, "utf-8", []byte("UTF-8"), encodingName("CP65001")} {
		got, err := reg.Coerce(v)
		require.NoError(t, err)
		assert.Same(t, utf8, got)
	}

	_, err := reg.Coerce("nope")
	assert.Equal(t, vterrors.UnknownEncoding, vterrors.ErrState(err))

	_, err = reg.Coerce(42)
	require.Error(t, err)
	assert.Equal(t, "no implicit conversion of int into String", err.Error())
	assert.Equal(t, vterrors.NoImplicitConversion, vterrors.ErrState(err))
	assert.Equal(t, vtrpc.Code_INVALID_ARGUMENT, vterrors.Code(err))

	var nilEnc *encoding.Encoding
	_, err = reg.Coerce(nilEnc)
	assert.Equal(t, vterrors.NoImplicitConversion, vterrors.ErrState(err))
}

func TestNameListAndAliasMap(t *testing.T) {
	reg := newCatalog(t)

	utils.MustMatch(t, []string{
		"ASCII-8BIT", "BINARY",
		"US-ASCII", "ASCII", "ANSI_X3.4-1968", "646",
		"UTF-8", "CP65001", "locale",
		"UTF-16BE",
		"UTF-16LE",
		"UTF-32BE", "UCS-4BE",
		"UTF-32LE", "UCS-4LE",
		"ISO-8859-1", "ISO8859-1",
		"macRoman",
		"macCyrillic",
		"Big5", "CP950",
		"EUC-JP", "eucJP",
	}, reg.NameList(), "name list")

	utils.MustMatch(t, map[string]string{
		"BINARY":         "ASCII-8BIT",
		"ASCII":          "US-ASCII",
		"ANSI_X3.4-1968": "US-ASCII",
		"646":            "US-ASCII",
		"CP65001":        "UTF-8",
		"locale":         "UTF-8",
		"UCS-4BE":        "UTF-32BE",
		"UCS-4LE":        "UTF-32LE",
		"ISO8859-1":      "ISO-8859-1",
		"CP950":          "Big5",
		"eucJP":          "EUC-JP",
	}, reg.AliasMap(), "alias map")
}
