package main

import (
	"os"

	"github.com/bizgrid/bizgrid/internal/common/logtrace"
)

func init() {
	logtrace.InitLogger()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
