package main

import (
	"context"
	"fmt"
	"os"

	mylog "parkview/internal/log"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

func realMain() int {
	// The TUI owns the terminal, so logs go to a file next to the binary's cwd.
	logFile, err := mylog.OpenLogFile("parkview.log")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		mylog.InitLogger(os.Stderr)
	} else {
		defer logFile.Close()
		mylog.InitLogger(logFile)
	}

	app := newApp()
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}
