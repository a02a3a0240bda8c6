// Command mvccsh is an interactive shell over the in-memory mvcc
// engine, built the way the teacher pack's go-ycsb shell is built: a
// cobra root command wires flags, then a readline loop dispatches one
// engine call per input line. It exercises pkg/mvcc's public API only.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dentiny/MVCC/internal/config"
	"github.com/dentiny/MVCC/internal/telemetry"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "mvccsh",
		Short: "Interactive shell over the in-memory MVCC key-value engine",
		RunE:  run,
	}
	root.Flags().StringVar(&configPath, "config", "", "path to a mvccsh TOML config file")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	conf, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if err := telemetry.Init(conf.LogLevel, false); err != nil {
		return err
	}

	level, err := conf.Isolation()
	if err != nil {
		return err
	}

	sh := newShell(level)
	sh.run()
	return nil
}
