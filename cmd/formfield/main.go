package main

import (
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	if err := Execute(); err != nil {
		log.Error("formfield failed", "err", err)
		os.Exit(1)
	}
}
