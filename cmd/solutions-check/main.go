package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/solutionops/solutions-check/pkg/cli"
	"github.com/solutionops/solutions-check/pkg/console"
	"github.com/solutionops/solutions-check/pkg/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var mainLog = logger.New("cmd:main")

var rootCmd = cli.NewRootCommand(version)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the root command and maps its outcome to a process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	mainLog.Printf("Command failed: %v", err)
	// Validation problems have already been printed one per line.
	if !errors.Is(err, cli.ErrValidationFailed) {
		fmt.Fprintln(stderr, console.FormatErrorMessage(err.Error()))
	}
	return 1
}
