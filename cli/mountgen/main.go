// Package main is the mountgen command itself.
package main

import (
	"os"

	"go.viam.com/sensormount/cli"
	"go.viam.com/sensormount/logging"
)

func main() {
	logger := logging.NewLogger("mountgen")
	if err := cli.NewApp(os.Stdout, logger).Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
