// scrun drives the sclang interpreter from a terminal: evaluate code, boot
// and quit the audio server, silence everything.
//
// Usage:
//
//	scrun eval [--config path] [--sclang path] [--wait dur] "code" | -
//	scrun boot | reboot | quit | stop-sounds [flags]
//	scrun version
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rogervila/supercollider-vscode/internal/config"
	"github.com/rogervila/supercollider-vscode/internal/interp"
)

var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(0)
	}

	subcmd := os.Args[1]
	var err error
	switch subcmd {
	case "eval":
		err = cmdEval(os.Args[2:])
	case "boot":
		err = cmdAction(subcmd, os.Args[2:], (*interp.Supervisor).BootServer)
	case "reboot":
		err = cmdAction(subcmd, os.Args[2:], (*interp.Supervisor).RebootServer)
	case "quit":
		err = cmdAction(subcmd, os.Args[2:], (*interp.Supervisor).KillServer)
	case "stop-sounds":
		err = cmdAction(subcmd, os.Args[2:], (*interp.Supervisor).StopAllSounds)
	case "version":
		fmt.Printf("scrun %s\n", version)
		return
	case "--help", "-h", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", subcmd)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `scrun - run SuperCollider code from the terminal

Usage:
  scrun eval [flags] "code"   Evaluate code (use - to read from stdin)
  scrun boot [flags]          Boot the audio server (s.boot;)
  scrun reboot [flags]        Reboot the audio server (s.reboot;)
  scrun quit [flags]          Quit the audio server (s.quit;)
  scrun stop-sounds [flags]   Silence everything (CmdPeriod.run;)
  scrun version               Print version information

Flags:
  --config   Path to config file (default: ./supercollider.yaml, then $HOME/supercollider.yaml)
  --sclang   sclang executable path (overrides config)
  --wait     How long to collect interpreter output before exiting (default: 3s)
`)
}

// runFlags holds the flags shared by every dispatching subcommand.
type runFlags struct {
	configPath string
	sclangCmd  string
	wait       time.Duration
}

// newRunFlagSet names the flag set after the subcommand so parse errors and
// usage output identify the command that was actually invoked.
func newRunFlagSet(name string, rf *runFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&rf.configPath, "config", "", "path to config file")
	fs.StringVar(&rf.sclangCmd, "sclang", "", "sclang executable path")
	fs.DurationVar(&rf.wait, "wait", 3*time.Second, "how long to collect output")
	return fs
}

func parseRunFlags(name string, args []string) (runFlags, []string, error) {
	var rf runFlags
	fs := newRunFlagSet(name, &rf)
	if err := fs.Parse(args); err != nil {
		return rf, nil, err
	}
	return rf, fs.Args(), nil
}

func cmdEval(args []string) error {
	rf, rest, err := parseRunFlags("eval", args)
	if err != nil {
		return err
	}

	code := strings.Join(rest, " ")
	if code == "" || code == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading code from stdin: %w", err)
		}
		code = string(data)
	}

	return dispatch(rf, func(sup *interp.Supervisor) error {
		return sup.Execute(code)
	})
}

func cmdAction(name string, args []string, action func(*interp.Supervisor) error) error {
	rf, _, err := parseRunFlags(name, args)
	if err != nil {
		return err
	}
	return dispatch(rf, action)
}

// dispatch builds a supervisor wired to the terminal, runs the action, then
// keeps collecting interpreter output for the wait duration before stopping
// the interpreter.
func dispatch(rf runFlags, action func(*interp.Supervisor) error) error {
	cfg, err := config.Load(resolveConfigPath(rf.configPath))
	if err != nil {
		return err
	}

	command := cfg.Sclang.Command
	if rf.sclangCmd != "" {
		command = rf.sclangCmd
	}

	sup := interp.New(command)
	defer sup.Stop()

	sup.Output().SetSink(func(chunk string) {
		fmt.Print(chunk)
	})
	sup.Post().SetSink(func(chunk string) {
		fmt.Fprint(os.Stderr, chunk)
	})

	if err := action(sup); err != nil {
		return err
	}

	// The first send after a cold start fires after the warm-up delay, so
	// the wait also covers it.
	time.Sleep(rf.wait)
	return nil
}

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
