package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sergiomgn/EasyFinance/cmd"
	"github.com/sergiomgn/EasyFinance/pkg/config"
	"github.com/sergiomgn/EasyFinance/pkg/execute"
	"github.com/sergiomgn/EasyFinance/pkg/logger"
	"github.com/sergiomgn/EasyFinance/pkg/shared"
	"github.com/sergiomgn/EasyFinance/pkg/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		os.Exit(1)
	}

	if os.Getenv("LOG_LEVEL") == "" {
		os.Setenv("LOG_LEVEL", strings.ToUpper(cfg.LogLevel))
	}
	logger.InitializeWithFallback()

	execute.DefaultDryRun = cfg.DryRun
	execute.DefaultLogger = logger.L()

	if cfg.RepoDir != "" && cfg.RepoDir != "." {
		if err := os.Chdir(cfg.RepoDir); err != nil {
			logger.L().Error("Cannot enter repo_dir: " + err.Error())
			os.Exit(1)
		}
	}

	if cfg.Telemetry {
		if err := telemetry.Enable(); err != nil {
			logger.L().Warn("Could not enable telemetry: " + err.Error())
		}
	}
	if err := telemetry.Init(shared.AppID); err != nil {
		logger.L().Warn("Telemetry disabled: " + err.Error())
	}

	code := cmd.Execute()
	shared.SafeSync()
	os.Exit(code)
}
