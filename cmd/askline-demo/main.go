// ABOUTME: Demo binary walking through every prompt type in sequence
// ABOUTME: Esc skips the current demo, Ctrl+C exits

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/askline/askline"
	asklog "github.com/askline/askline/internal/log"
)

var version = "dev"

type demo struct {
	name string
	run  func(args cliArgs, rc askline.RenderConfig) error
}

var demos = []demo{
	{"text", demoText},
	{"select", demoSelect},
	{"multiselect", demoMultiSelect},
	{"reorder", demoReorder},
	{"password", demoPassword},
	{"date", demoDate},
	{"number", demoNumber},
	{"confirm", demoConfirm},
	{"editor", demoEditor},
}

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("askline-demo %s\n", version)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		if errors.Is(err, askline.ErrInterrupted) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args cliArgs) error {
	if args.verbose {
		asklog.SetLevel(asklog.LevelDebug)
	}

	rc := askline.DefaultRenderConfig()
	if args.theme != "" {
		loaded, err := askline.LoadRenderConfig(args.theme)
		if err != nil {
			return fmt.Errorf("loading theme: %w", err)
		}
		rc = loaded
	}

	for _, d := range demos {
		if args.only != "" && args.only != d.name {
			continue
		}
		if err := d.run(args, rc); err != nil {
			if errors.Is(err, askline.ErrCanceled) {
				continue
			}
			return err
		}
	}
	return nil
}

func demoText(args cliArgs, rc askline.RenderConfig) error {
	name, err := askline.NewText("What is your name?").
		WithPlaceholder("Ada Lovelace").
		WithValidator(askline.Required()).
		WithRenderConfig(rc).
		Prompt()
	if err != nil {
		return err
	}
	fmt.Printf("hello, %s\n", name)
	return nil
}

func demoSelect(args cliArgs, rc askline.RenderConfig) error {
	p := askline.NewSelect("Pick a fruit", []string{
		"apple", "banana", "cherry", "dragonfruit", "elderberry",
		"fig", "grape", "honeydew",
	}).WithRenderConfig(rc)
	if args.vim {
		p = p.WithVimMode()
	}
	fruit, err := p.Prompt()
	if err != nil {
		return err
	}
	fmt.Printf("picked %s\n", fruit)
	return nil
}

func demoMultiSelect(args cliArgs, rc askline.RenderConfig) error {
	p := askline.NewMultiSelect("Pick toppings", []string{
		"cheese", "mushrooms", "olives", "onions", "peppers",
	}).WithDefaults([]int{0}).WithRenderConfig(rc)
	if args.vim {
		p = p.WithVimMode()
	}
	toppings, err := p.Prompt()
	if err != nil {
		return err
	}
	fmt.Printf("picked %d toppings\n", len(toppings))
	return nil
}

func demoReorder(args cliArgs, rc askline.RenderConfig) error {
	p := askline.NewReorder("Rank the steps (Ctrl+Up/Down to move)", []string{
		"design", "implement", "test", "ship",
	}).WithRenderConfig(rc)
	if args.vim {
		p = p.WithVimMode()
	}
	order, err := p.Prompt()
	if err != nil {
		return err
	}
	fmt.Printf("order: %v\n", order)
	return nil
}

func demoPassword(args cliArgs, rc askline.RenderConfig) error {
	_, err := askline.NewPassword("Choose a passphrase").
		WithDisplayMode(askline.PasswordMasked).
		WithDisplayToggle().
		WithConfirmation().
		WithValidator(askline.MinLength(8)).
		WithRenderConfig(rc).
		Prompt()
	if err != nil {
		return err
	}
	fmt.Println("passphrase set")
	return nil
}

func demoDate(args cliArgs, rc askline.RenderConfig) error {
	p := askline.NewDateSelect("Pick a delivery date").
		WithMinDate(time.Now()).
		WithRenderConfig(rc)
	if args.vim {
		p = p.WithVimMode()
	}
	when, err := p.Prompt()
	if err != nil {
		return err
	}
	fmt.Printf("delivering on %s\n", when.Format("2006-01-02"))
	return nil
}

func demoNumber(args cliArgs, rc askline.RenderConfig) error {
	parse := func(s string) (int, bool) {
		var n int
		if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
			return 0, false
		}
		return n, true
	}
	n, err := askline.NewCustomType("How many copies?", parse).
		WithDefault(1).
		WithParseErrorMessage("enter a whole number").
		WithRenderConfig(rc).
		Prompt()
	if err != nil {
		return err
	}
	fmt.Printf("%d copies\n", n)
	return nil
}

func demoConfirm(args cliArgs, rc askline.RenderConfig) error {
	ok, err := askline.NewConfirm("Proceed?").
		WithDefault(true).
		WithRenderConfig(rc).
		Prompt()
	if err != nil {
		return err
	}
	fmt.Printf("confirmed: %v\n", ok)
	return nil
}

func demoEditor(args cliArgs, rc askline.RenderConfig) error {
	text, err := askline.NewEditor("Write a release note").
		WithFileExtension(".md").
		WithPredefinedText("## Changes\n\n- ").
		WithRenderConfig(rc).
		Prompt()
	if err != nil {
		return err
	}
	fmt.Printf("received %d bytes\n", len(text))
	return nil
}
