// sclangd is the SuperCollider language server. It speaks LSP 3.16 over
// stdio, serving keyword/class/method completion and hover documentation, and
// dispatches evaluated code blocks to an sclang interpreter process via
// workspace commands.
//
// Usage:
//
//	sclangd [--config path] [--sclang path]
//	sclangd --version
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tliron/commonlog"

	"github.com/rogervila/supercollider-vscode/internal/config"
	"github.com/rogervila/supercollider-vscode/internal/interp"
	"github.com/rogervila/supercollider-vscode/internal/lsp"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (default: ./supercollider.yaml, then $HOME/supercollider.yaml)")
	sclangCmd := flag.String("sclang", "", "sclang executable path (overrides config)")
	showVersion := flag.Bool("version", false, "print version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("sclangd %s\n", version)
		return
	}

	cfg, err := config.Load(resolveConfigPath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	commonlog.Configure(cfg.Log.Verbosity, nil)

	command := cfg.Sclang.Command
	if *sclangCmd != "" {
		command = *sclangCmd
	}

	sup := interp.New(command)
	defer sup.Stop()

	srv := lsp.NewServer(sup, version)
	if err := srv.RunStdio(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// resolveConfigPath returns the explicit path if given, otherwise the first
// of ./supercollider.yaml and $HOME/supercollider.yaml. A nonexistent result
// is fine; loading falls back to defaults.
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat("supercollider.yaml"); err == nil {
		return "supercollider.yaml"
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, "supercollider.yaml")
	}
	return "supercollider.yaml"
}
