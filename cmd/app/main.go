package main

import (
	"context"
	"fmt"
	"os"

	"token-report/internal/adapters/cli"
	"token-report/internal/app"
	"token-report/internal/config"
	"token-report/internal/core"

	goversion "github.com/caarlos0/go-version"
)

// Set through -ldflags at release time.
var (
	version   = "0.1.0"
	commit    = ""
	treeState = ""
	date      = ""
	builtBy   = ""
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg, os.Stderr)

	svc := app.NewAppService(cfg, core.NewReportService(), logger)

	streams := cli.Streams{Stdout: os.Stdout, Stderr: os.Stderr}
	os.Exit(cli.Run(context.Background(), svc, buildVersion(), os.Args[1:], streams))
}

func buildVersion() goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails("token-report", "Credits company top-ups to active users and writes a per-company report", ""),
		func(i *goversion.Info) {
			if version != "" {
				i.GitVersion = version
			}
			if commit != "" {
				i.GitCommit = commit
			}
			if treeState != "" {
				i.GitTreeState = treeState
			}
			if date != "" {
				i.BuildDate = date
			}
			if builtBy != "" {
				i.BuiltBy = builtBy
			}
		},
	)
}
