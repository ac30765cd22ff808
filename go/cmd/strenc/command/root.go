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

// Package command implements the strenc command line: inspection of the
// encoding registry and conversion of text between encodings.
package command

import (
	goflag "flag"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"vitess.io/strenc/go/encenv"
	"vitess.io/strenc/go/encoding"
	"vitess.io/strenc/go/viperutil"
	"vitess.io/strenc/go/vt/log"
	"vitess.io/strenc/go/vt/utils"
)

// state is shared by the commands of one command tree. env is set by the
// root pre-run hook, before any command runs.
type state struct {
	env         *encenv.Environment
	metrics     *prometheus.Registry
	metricsFile string
}

// Main returns the root strenc command with every subcommand attached.
func Main() *cobra.Command {
	st := &state{metrics: prometheus.NewRegistry()}
	st.metrics.MustRegister(encoding.Collectors()...)

	root := &cobra.Command{
		Use:   "strenc",
		Short: "strenc inspects the string encoding registry and converts text between encodings.",
		Long: "`strenc` exposes the registry of built-in string encodings.\n\n" +
			"It lists encodings with their aliases and identifiers, resolves encoding names,\n" +
			"shows how text is split into characters by an encoding, and transcodes input\n" +
			"from one encoding to another.",
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: st.preRun,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			defer log.Flush()
			if st.metricsFile == "" {
				return nil
			}
			return prometheus.WriteToTextfile(st.metricsFile, st.metrics)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	root.SetGlobalNormalizationFunc(utils.NormalizeUnderscoresToDashes)

	pf := root.PersistentFlags()
	pf.AddGoFlagSet(goflag.CommandLine)
	log.RegisterFlags(pf)
	viperutil.RegisterFlags(pf)
	encenv.RegisterFlags(pf)
	utils.SetFlagStringVar(pf, &st.metricsFile, "metrics-file", "", "write the metrics of the run to this file in the Prometheus text format")

	root.AddCommand(
		st.listCommand(),
		st.namesCommand(),
		st.aliasesCommand(),
		st.constantsCommand(),
		st.findCommand(),
		st.defaultsCommand(),
		st.transcodeCommand(),
		st.inspectCommand(),
	)
	return root
}

func (st *state) preRun(cmd *cobra.Command, _ []string) error {
	if err := log.Init(cmd.Flags()); err != nil {
		return err
	}
	if err := viperutil.LoadConfig(); err != nil {
		return err
	}

	env, err := encenv.New()
	if err != nil {
		return err
	}
	if err := env.ApplyConfig(); err != nil {
		return err
	}
	st.env = env
	return nil
}
