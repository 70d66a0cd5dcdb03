package main

import (
	"context"
	"flag"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/pix-xip/go-command"

	"github.com/pix-xip/sshcode/editor"
	"github.com/pix-xip/sshcode/ssh"
	"github.com/pix-xip/sshcode/tui"
)

const (
	defaultSSHConfig = "~/.ssh/config"
	editorEnv        = "SSHCODE_EDITOR"
)

var Version string

type launcher interface {
	Launch(alias string) error
}

func main() {
	r := command.Root().Help("sshcode opens VS Code on a host from your ssh config").
		Flags(func(fs *flag.FlagSet) {
			fs.String("ssh-config", defaultSSHConfig, "path to ssh config file")
			fs.String("editor", defaultEditor(), "path to the VS Code executable (env "+editorEnv+")")
			fs.String("filter", "", "only list hosts fuzzy matching this query")
			fs.Bool("debug", false, "enable debug logging")
		})

	r.Action(RunTui)
	r.SubCommand("version").Action(func(_ context.Context, _ *flag.FlagSet, _ []string) error {
		log.Infof("sshcode version %s", Version)
		return nil
	}).Help("display the version")

	if err := r.Execute(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func RunTui(_ context.Context, fs *flag.FlagSet, _ []string) error {
	if command.Lookup[bool](fs, "debug") {
		log.SetLevel(log.DebugLevel)
	}

	selectedHost, err := tui.SelectHost(tui.Options{
		ConfigPath: command.Lookup[string](fs, "ssh-config"),
		Filter:     command.Lookup[string](fs, "filter"),
	})
	if err != nil {
		return err
	}

	return launch(editor.New(command.Lookup[string](fs, "editor")), selectedHost)
}

// launch opens host in the editor. A nil host means the user picked Exit.
func launch(l launcher, host *ssh.Host) error {
	if host == nil {
		log.Debug("no host selected")
		return nil
	}

	log.Info("opening VS Code", "host", host.Alias)

	return l.Launch(host.Alias)
}

func defaultEditor() string {
	if p := os.Getenv(editorEnv); p != "" {
		return p
	}

	return editor.DefaultPath(runtime.GOOS)
}
