package retheme

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/carlmjohnson/flagx"
	"github.com/carlmjohnson/versioninfo"
)

const AppName = "Retheme"

// DefaultPath is the stylesheet rewritten when no -path is given.
const DefaultPath = "src/pages/dashboard/Dashboard.css"

func CLI(args []string) error {
	var app appEnv
	err := app.ParseArgs(args)
	if err != nil {
		return err
	}
	if err = app.Exec(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

type appEnv struct {
	path   string
	dryRun bool
	stdout io.Writer
	rules  Pipeline
	*log.Logger
}

func (app *appEnv) ParseArgs(args []string) error {
	fl := flag.NewFlagSet(AppName, flag.ContinueOnError)

	fl.StringVar(&app.path, "path", DefaultPath, "path to the stylesheet `file` to rewrite in place")
	fl.BoolVar(&app.dryRun, "dry-run", false, "just report whether the file would be modified")

	app.Logger = log.New(io.Discard, AppName+" ", log.LstdFlags)
	flagx.BoolFunc(fl, "verbose", "log match counts for each rule", func() error {
		app.Logger.SetOutput(os.Stderr)
		return nil
	})
	fl.Usage = func() {
		fmt.Fprintf(fl.Output(), `retheme - %s

Retheme replaces the hardcoded colors in a dashboard stylesheet with theme variables.

Usage:

	retheme [options]

Options:
`, versioninfo.Version)
		fl.PrintDefaults()
	}
	versioninfo.AddFlag(fl)
	if err := fl.Parse(args); err != nil {
		return err
	}
	if err := flagx.ParseEnv(fl, AppName); err != nil {
		return err
	}
	app.stdout = os.Stdout
	app.rules = DashboardRules()
	return nil
}

func (app *appEnv) Exec() error {
	b, err := os.ReadFile(app.path)
	if err != nil {
		return fmt.Errorf("rewrite(%q): reading: %w", app.path, err)
	}

	oldContent := string(b)
	newContent := app.rules.Trace(oldContent, app.Logger)

	if app.dryRun {
		if oldContent != newContent {
			fmt.Fprintf(app.stdout, "* %q\n", app.path)
		}
		return nil
	}

	info, err := os.Stat(app.path)
	if err != nil {
		return fmt.Errorf("rewrite(%q): stating: %w", app.path, err)
	}

	err = os.WriteFile(app.path, []byte(newContent), info.Mode())
	if err != nil {
		return fmt.Errorf("rewrite(%q): writing: %w", app.path, err)
	}

	fmt.Fprintf(app.stdout, "Updated %s\n", filepath.Base(app.path))
	return nil
}
