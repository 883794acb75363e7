// Copyright (c) 2024 The Androguard-Go Contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

// Command dlower reads an asmscript source file, lowers every instruction
// through the dispatch table, and prints the resulting IR, one node per
// line. It exists to give the lowering pipeline something concrete to run
// end to end; it is not a DEX disassembler.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zebrapurring/androguard/asmscript"
	"github.com/zebrapurring/androguard/config"
	"github.com/zebrapurring/androguard/lower"
	"github.com/zebrapurring/androguard/lowerstats"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dlower",
		Short: "Tools for driving the Dalvik opcode lowering pipeline",
	}
	root.AddCommand(newLowerCmd())
	return root
}

func newLowerCmd() *cobra.Command {
	var (
		configPath   string
		receiverVReg int
		metricsAddr  string
	)

	cmd := &cobra.Command{
		Use:   "lower <script.dasm>",
		Short: "Lower an asmscript instruction sequence to IR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			configureLogging(cfg.Logging)

			var diag *lower.Diagnostics
			if cfg.Lowering.Strict {
				diag = lower.NewDiagnostics()
				lower.Attach(diag)
				defer lower.Attach(nil)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			instrs, _, err := asmscript.Parse(f)
			if err != nil {
				return err
			}

			listen := metricsAddr
			if listen == "" {
				listen = cfg.Metrics.ListenAddr
			}

			driver := asmscript.NewDriver(receiverVReg)
			if listen != "" {
				reg := prometheus.NewRegistry()
				dispatcher := lowerstats.NewDispatcher(reg)
				driver.Lower = dispatcher.Lower
				go serveMetrics(listen, reg)
			}
			for _, node := range driver.Run(instrs) {
				fmt.Println(node.String())
			}

			if diag != nil && diag.HasErrors() {
				return errors.New("lowering completed with diagnostics recorded (strict mode)")
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "path to a dlower TOML config file")
	flags.IntVar(&receiverVReg, "receiver", -1, "vreg that names the method's own receiver (-1 for static methods)")
	flags.StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics at this address (overrides config, e.g. :9090)")
	return cmd
}

func configureLogging(l config.Logging) {
	level, err := logrus.ParseLevel(l.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger := logrus.New()
	logger.SetLevel(level)
	if l.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	lower.Log = logger
}

func serveMetrics(listen string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	if err := http.ListenAndServe(listen, mux); err != nil {
		logrus.WithError(err).Warn("metrics server stopped")
	}
}
