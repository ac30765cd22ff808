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
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/spf13/cobra"

	"vitess.io/strenc/go/encoding"
	"vitess.io/strenc/go/rstr"
	"vitess.io/strenc/go/vt/utils"
	"vitess.io/strenc/go/vt/vterrors"
)

func (st *state) inspectCommand() *cobra.Command {
	var hexInput bool

	cmd := &cobra.Command{
		Use:   "inspect <encoding> <text>",
		Short: "Shows how an encoding splits text into characters.",
		Long: "Shows how an encoding splits text into characters.\n\n" +
			"The text is converted from the locale encoding unless --hex is given, in which\n" +
			"case it is read as the hexadecimal form of bytes already in the encoding.",
		Example: "strenc inspect EUC-JP 日本\nstrenc inspect --hex UTF-8 61ff62",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := st.env.Registry.Find(args[0])
			if err != nil {
				return err
			}

			var raw []byte
			switch {
			case hexInput:
				if raw, err = hex.DecodeString(args[1]); err != nil {
					return vterrors.Wrap(err, "invalid hex input")
				}
			case special(enc):
				raw = []byte(args[1])
			default:
				if raw, err = st.env.Transcode(enc, st.env.Locale(), []byte(args[1])); err != nil {
					return err
				}
			}
			return inspect(cmd, enc, raw)
		},
	}
	utils.SetFlagBoolVar(cmd.Flags(), &hexInput, "hex", false, "read the text as hexadecimal bytes")
	return cmd
}

func inspect(cmd *cobra.Command, enc *encoding.Encoding, raw []byte) error {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "encoding: %s\n", enc.Inspect())
	if special(enc) {
		fmt.Fprintf(w, "bytesize: %d\n", len(raw))
		fmt.Fprintf(w, "operations: none (%s encoding)\n", enc.Kind())
		return nil
	}

	s := rstr.New(raw)
	enc.UpdateFlags(s)
	uchars := enc.TryMakingDataUChars(s)

	fmt.Fprintf(w, "bytesize: %d\n", enc.Bytesize(s))
	fmt.Fprintf(w, "length: %d\n", enc.Length(s, false))
	fmt.Fprintf(w, "utf16 length: %d\n", enc.Length(s, true))
	fmt.Fprintf(w, "valid: %t\n", s.Has(rstr.Valid))
	fmt.Fprintf(w, "ascii only: %t\n", s.Has(rstr.ASCIIOnly))
	fmt.Fprintf(w, "utf16 cached: %t\n", uchars)

	var rows [][]string
	for i := 0; ; i++ {
		b := enc.GetCharacterBoundaries(s, i, false)
		if b.Start < 0 {
			break
		}
		chunk := raw[b.Start:b.End]

		char := "(invalid)"
		if units, next := enc.TranscodeToUTF16(rstr.New(chunk), 0); next == len(chunk) {
			char = strconv.Quote(string(utf16.Decode(units)))
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			strconv.Itoa(enc.OffsetInBytesToIndex(s, b.Start, true)),
			fmt.Sprintf("%d-%d", b.Start, b.End),
			strings.ToUpper(hex.EncodeToString(chunk)),
			char,
		})
	}
	return renderTable(w, []string{"Index", "UTF-16 index", "Bytes", "Hex", "Character"}, rows)
}
