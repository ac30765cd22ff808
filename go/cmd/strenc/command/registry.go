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
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"vitess.io/strenc/go/encoding"
	"vitess.io/strenc/go/encoding/ucnv"
	"vitess.io/strenc/go/vt/utils"
)

type encodingInfo struct {
	ID              uint     `json:"id"`
	Name            string   `json:"name"`
	Kind            string   `json:"kind"`
	MinCharSize     int      `json:"min_char_size"`
	MaxCharSize     int      `json:"max_char_size"`
	SingleByte      bool     `json:"single_byte"`
	ASCIICompatible bool     `json:"ascii_compatible"`
	Aliases         []string `json:"aliases"`
	Codec           string   `json:"codec,omitempty"`
}

func describe(enc *encoding.Encoding) encodingInfo {
	info := encodingInfo{
		ID:              uint(enc.ID()),
		Name:            enc.Name(),
		Kind:            enc.Kind().String(),
		MinCharSize:     enc.MinCharSize(),
		MaxCharSize:     enc.MaxCharSize(),
		SingleByte:      enc.SingleByte(),
		ASCIICompatible: enc.ASCIICompatible(),
		Aliases:         enc.Aliases(),
	}
	if textual, ok := ucnv.Textual(enc); ok {
		info.Codec = fmt.Sprint(textual)
	}
	return info
}

func (st *state) listCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lists every registered encoding.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var infos []encodingInfo
			for _, enc := range st.env.Registry.All() {
				infos = append(infos, describe(enc))
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), infos)
			}

			rows := make([][]string, 0, len(infos))
			for _, info := range infos {
				rows = append(rows, []string{
					strconv.FormatUint(uint64(info.ID), 10),
					info.Name,
					info.Kind,
					strconv.Itoa(info.MinCharSize),
					strconv.Itoa(info.MaxCharSize),
					strconv.FormatBool(info.SingleByte),
					strconv.FormatBool(info.ASCIICompatible),
					strings.Join(info.Aliases, " "),
				})
			}
			return renderTable(cmd.OutOrStdout(), []string{"ID", "Name", "Kind", "Min", "Max", "Single byte", "ASCII compatible", "Aliases"}, rows)
		},
	}
	utils.SetFlagBoolVar(cmd.Flags(), &jsonOutput, "json", false, "print the encodings as JSON")
	return cmd
}

func (st *state) namesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "Prints every encoding name and alias, one per line, in registration order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range st.env.Registry.NameList() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (st *state) aliasesCommand() *cobra.Command {
	var tree bool

	cmd := &cobra.Command{
		Use:   "aliases",
		Short: "Prints every alias with the name of its encoding.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tree {
				_, err := fmt.Fprint(cmd.OutOrStdout(), aliasTree(st.env.Registry))
				return err
			}

			aliases := st.env.Registry.AliasMap()
			keys := make([]string, 0, len(aliases))
			for alias := range aliases {
				keys = append(keys, alias)
			}
			sort.Strings(keys)

			rows := make([][]string, 0, len(keys))
			for _, alias := range keys {
				rows = append(rows, []string{alias, aliases[alias]})
			}
			return renderTable(cmd.OutOrStdout(), []string{"Alias", "Encoding"}, rows)
		},
	}
	utils.SetFlagBoolVar(cmd.Flags(), &tree, "tree", false, "print the encodings as a tree, with their aliases as leaves")
	return cmd
}

// aliasTree renders the registry in registration order, one branch per
// encoding.
func aliasTree(reg *encoding.Registry) string {
	root := treeprint.NewWithRoot("encodings")
	for _, enc := range reg.All() {
		branch := root.AddBranch(enc.Name())
		for _, alias := range enc.Aliases() {
			branch.AddNode(alias)
		}
	}
	return root.String()
}

func (st *state) constantsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "Prints the identifier derived from every encoding name and alias.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := st.env.Identifiers

			var rows [][]string
			for _, ident := range table.Names() {
				enc, _ := table.Lookup(ident)
				rows = append(rows, []string{ident, enc.Name()})
			}
			return renderTable(cmd.OutOrStdout(), []string{"Identifier", "Encoding"}, rows)
		},
	}
}

func (st *state) findCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "find <name> [<name>...]",
		Short:   "Resolves encoding names and aliases, ignoring case.",
		Example: "strenc find utf-8 eucjp binary",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				enc, err := st.env.Registry.Find(name)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), enc.Inspect()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (st *state) defaultsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Prints the default external and internal encodings.",
		Long: "Prints the default external and internal encodings, as configured by\n" +
			"--default-external, --default-internal, their environment variables or the config file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ext, in := st.env.Defaults.Snapshot()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "external: %s\ninternal: %s\nlocale: %s\n", ext.Name(), in.Name(), st.env.Locale().Name())
			return err
		},
	}
}
