package main

import (
	"os"

	"histopt/infra/observe/log/staticLog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		staticLog.Log.Error(err)
		os.Exit(1)
	}
}
