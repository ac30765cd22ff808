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
	"io"
	"os"

	"github.com/spf13/cobra"

	"vitess.io/strenc/go/encoding"
	"vitess.io/strenc/go/vt/log"
	"vitess.io/strenc/go/vt/utils"
	"vitess.io/strenc/go/vt/vterrors"
)

func (st *state) transcodeCommand() *cobra.Command {
	var (
		from, to string
		replace  bool
	)

	cmd := &cobra.Command{
		Use:   "transcode [<file>]",
		Short: "Converts the contents of a file, or of standard input, between two encodings.",
		Long: "Converts the contents of a file, or of standard input, from the --from encoding\n" +
			"to the --to encoding and writes the result to standard output.\n\n" +
			"--from defaults to the default external encoding and --to to the default internal one.\n" +
			"Without --replace, conversion fails on the first invalid or unrepresentable character.",
		Example: "strenc transcode --from ISO-8859-1 --to UTF-8 latin1.txt",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := st.env.Defaults.Snapshot()
			var (
				srcName any = src
				dstName any = dst
			)
			if from != "" {
				srcName = from
			}
			if to != "" {
				dstName = to
			}

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var out []byte
			if replace {
				var n int
				out, n, err = st.env.TranscodeReplace(dstName, srcName, input)
				if n > 0 {
					log.Warningf("replaced %d characters while transcoding", n)
				}
			} else {
				out, err = st.env.Transcode(dstName, srcName, input)
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	utils.SetFlagStringVar(cmd.Flags(), &from, "from", "", "encoding of the input")
	utils.SetFlagStringVar(cmd.Flags(), &to, "to", "", "encoding of the output")
	utils.SetFlagBoolVar(cmd.Flags(), &replace, "replace", false, "replace invalid and unrepresentable characters instead of failing")
	return cmd
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, vterrors.Wrapf(err, "failed to read %s", args[0])
	}
	return data, nil
}

// special reports whether enc has no string operations.
func special(enc *encoding.Encoding) bool {
	return enc.Kind() == encoding.KindSpecial
}
