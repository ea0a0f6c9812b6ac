package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kobzarvs/qpad/internal/app"
	"github.com/kobzarvs/qpad/internal/logger"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	args := flag.Args()
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}

	if err := logger.Init(*debug); err != nil {
		fmt.Fprintln(os.Stderr, "qpad:", err)
		os.Exit(1)
	}

	err := app.New(args).Run()
	logger.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "qpad:", err)
		os.Exit(1)
	}
}
