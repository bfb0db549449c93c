// Command exprtree demonstrates building and evaluating expression trees.
package main

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func rootCommand() *cobra.Command {
	var level string
	root := &cobra.Command{
		Use:           "exprtree",
		Short:         "Build and evaluate expression trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logrus.ParseLevel(level)
			if err != nil {
				return errors.Wrap(err, "setting log level")
			}
			logrus.SetLevel(l)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&level, "log-level", "warning", "log messages at this level and above")
	root.AddCommand(demoCommand(), compareCommand())
	return root
}
