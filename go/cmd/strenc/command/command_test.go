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

package command

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitess.io/strenc/go/test/utils"
)

var mustMatchInfo = utils.MustMatchFn(".Codec")

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := Main()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	return out.String(), err
}

func TestFind(t *testing.T) {
	out, err := run(t, "", "find", "utf-8", "EUCJP", "binary")
	require.NoError(t, err)
	assert.Equal(t, "#<Encoding:UTF-8>\n#<Encoding:EUC-JP>\n#<Encoding:ASCII-8BIT>\n", out)

	_, err = run(t, "", "find", "utf-8", "nope")
	require.EqualError(t, err, "unknown encoding name - nope")
}

func TestNames(t *testing.T) {
	out, err := run(t, "", "names")
	require.NoError(t, err)

	names := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, names, 23)
	assert.Equal(t, "ASCII-8BIT", names[0])
	assert.Equal(t, "eucJP", names[22])
}

func TestListJSON(t *testing.T) {
	out, err := run(t, "", "list", "--json")
	require.NoError(t, err)

	var infos []encodingInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 12)

	assert.Equal(t, "ASCII-8BIT", infos[0].Name)
	assert.Equal(t, "special", infos[0].Kind)
	assert.Empty(t, infos[0].Codec)

	mustMatchInfo(t, encodingInfo{
		ID:          6,
		Name:        "UTF-32LE",
		Kind:        "conversion-backend",
		MinCharSize: 4,
		MaxCharSize: 10,
		Aliases:     []string{"UCS-4LE"},
	}, infos[6], "UTF-32LE description")
	assert.NotEmpty(t, infos[6].Codec)
}

func TestTables(t *testing.T) {
	testcases := []struct {
		args []string
		want []string
	}{
		{[]string{"list"}, []string{"macCyrillic", "conversion-backend", "UTF-16LE"}},
		{[]string{"aliases"}, []string{"CP950", "Big5", "UCS-4BE"}},
		{[]string{"constants"}, []string{"EucJP", "ISO_8859_1", "ASCII_8BIT"}},
	}
	for _, tc := range testcases {
		t.Run(tc.args[0], func(t *testing.T) {
			out, err := run(t, "", tc.args...)
			require.NoError(t, err)
			for _, want := range tc.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestAliasTree(t *testing.T) {
	out, err := run(t, "", "aliases", "--tree")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "encodings\n"))
	assert.Contains(t, out, "EUC-JP\n")
	assert.Contains(t, out, "eucJP\n")
	assert.Less(t, strings.Index(out, "US-ASCII"), strings.Index(out, "ANSI_X3.4-1968"))
	assert.Less(t, strings.Index(out, "ANSI_X3.4-1968"), strings.Index(out, "UTF-8"))
}

func TestDefaults(t *testing.T) {
	out, err := run(t, "", "defaults")
	require.NoError(t, err)
	assert.Equal(t, "external: UTF-8\ninternal: UTF-8\nlocale: UTF-8\n", out)

	out, err = run(t, "", "--default-external", "eucjp", "defaults")
	require.NoError(t, err)
	assert.Equal(t, "external: EUC-JP\ninternal: UTF-8\nlocale: UTF-8\n", out)

	t.Setenv("STRENC_DEFAULT_INTERNAL", "cp950")
	out, err = run(t, "", "defaults")
	require.NoError(t, err)
	assert.Equal(t, "external: UTF-8\ninternal: Big5\nlocale: UTF-8\n", out)

	_, err = run(t, "", "--default-external", "klingon", "defaults")
	require.EqualError(t, err, "invalid encoding.default-external: unknown encoding name - klingon")
}

func TestTranscode(t *testing.T) {
	defer utils.EnsureNoLeaks(t)

	out, err := run(t, "caf\xe9", "transcode", "--from", "ISO-8859-1", "--to", "UTF-8")
	require.NoError(t, err)
	assert.Equal(t, "café", out)

	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("日本"), 0o644))
	out, err = run(t, "", "transcode", "--to", "EUC-JP", path)
	require.NoError(t, err)
	assert.Equal(t, "\xc6\xfc\xcb\xdc", out)

	_, err = run(t, "café", "transcode", "--to", "US-ASCII")
	require.EqualError(t, err, "U+00E9 from UTF-8 to US-ASCII")

	out, err = run(t, "café", "transcode", "--to", "US-ASCII", "--replace")
	require.NoError(t, err)
	assert.Equal(t, "caf?", out)

	_, err = run(t, "", "transcode", filepath.Join(t.TempDir(), "missing"))
	require.ErrorContains(t, err, "failed to read")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInspect(t *testing.T) {
	defer utils.EnsureNoLeaks(t)

	out, err := run(t, "", "inspect", "EUC-JP", "日本")
	require.NoError(t, err)
	for _, want := range []string{
		"encoding: #<Encoding:EUC-JP>\n",
		"bytesize: 4\n",
		"length: 2\n",
		"utf16 length: 2\n",
		"valid: true\n",
		"ascii only: false\n",
		"utf16 cached: true\n",
		"C6FC",
		"CBDC",
	} {
		assert.Contains(t, out, want)
	}

	out, err = run(t, "", "inspect", "--hex", "utf-8", "61ff62")
	require.NoError(t, err)
	assert.Contains(t, out, "length: 3\n")
	assert.Contains(t, out, "valid: false\n")
	assert.Contains(t, out, "utf16 cached: false\n")
	assert.Contains(t, out, "(invalid)")

	out, err = run(t, "", "inspect", "binary", "abc")
	require.NoError(t, err)
	assert.Contains(t, out, "bytesize: 3\n")
	assert.Contains(t, out, "operations: none (special encoding)\n")

	_, err = run(t, "", "inspect", "--hex", "utf-8", "zz")
	require.ErrorContains(t, err, "invalid hex input")
	var invalidByte hex.InvalidByteError
	assert.ErrorAs(t, err, &invalidByte)
}

func TestMetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.prom")
	_, err := run(t, "", "--metrics-file", path, "find", "utf-8")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `strenc_encoding_lookups_total{result="hit"}`)
}

func TestUnderscoredFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.prom")
	_, err := run(t, "", "--metrics_file", path, "find", "utf-8")
	require.NoError(t, err)
	assert.FileExists(t, path)

	root := Main()
	for _, name := range []string{"metrics_file", "metrics-file"} {
		flag := root.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, "metrics-file", flag.Name)
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("log_dir"))
}
