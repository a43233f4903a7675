package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/TuSKan/go-dataset/cmd/dsbuild/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("dsbuild failed")
		os.Exit(1)
	}
}
