package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-surveyviz/pkg/orchestrator"
	"github.com/goliatone/go-surveyviz/pkg/pspp"
	"github.com/goliatone/go-surveyviz/pkg/render"
	"github.com/goliatone/go-surveyviz/pkg/settings"
)

func main() {
	values := flag.String("values", "data_values.csv", "coded values CSV exported by PSPP")
	labels := flag.String("labels", "data_labels.csv", "labelled values CSV exported by PSPP")
	variables := flag.String("variables", "data_variables.txt", "DISPLAY LABELS text dump")
	settingsPath := flag.String("settings", "", "optional settings file (YAML or JSON)")
	segment := flag.String("segment", "", "settings-defined segment to render")
	renderer := flag.String("renderer", "bars", "renderer to use")
	title := flag.String("title", "", "report title")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "prompt for missing inputs and confirm overwrites")
	flag.Parse()

	ctx := context.Background()

	if *interactive {
		promptMissing(values, "Path to the values CSV")
		promptMissing(labels, "Path to the labels CSV")
		promptMissing(variables, "Path to the variable definitions dump")
	}

	cfg, err := settings.Load(*settingsPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	warnings := render.NewWarningSink()
	gen := orchestrator.New(orchestrator.WithSettings(cfg))

	req := orchestrator.Request{
		Bundle:   pspp.BundleFromFiles(*values, *labels, *variables),
		Segment:  *segment,
		Renderer: *renderer,
		Title:    *title,
		RenderOptions: render.RenderOptions{
			Warnings: warnings,
		},
	}

	outputHTML, err := gen.Generate(ctx, req)
	if err != nil {
		var parseErr *pspp.ParseError
		switch {
		case errors.Is(err, pspp.ErrNotFound):
			log.Fatalf("Input file missing: %v", err)
		case errors.As(err, &parseErr):
			log.Fatalf("Failed to parse exports: %v", err)
		default:
			log.Fatalf("Failed to generate report: %v", err)
		}
	}

	for _, warning := range warnings.Warnings() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}

	if *output != "" {
		if *interactive && !confirmOverwrite(*output) {
			log.Fatalf("Aborted: %s already exists", *output)
		}
		if err := os.WriteFile(*output, outputHTML, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Report written to %s\n", *output)
	} else {
		fmt.Println(string(outputHTML))
	}
}

// promptMissing asks for a path when the flag value points at a file that
// does not exist. Only reached in interactive mode.
func promptMissing(path *string, message string) {
	if *path != "" {
		if _, err := os.Stat(*path); err == nil {
			return
		}
	}
	prompt := &survey.Input{
		Message: message,
		Default: *path,
	}
	var answer string
	if err := survey.AskOne(prompt, &answer, survey.WithValidator(survey.Required)); err != nil {
		log.Fatalf("Prompt failed: %v", err)
	}
	*path = answer
}

func confirmOverwrite(path string) bool {
	if _, err := os.Stat(path); err != nil {
		return true
	}
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("%s exists, overwrite?", path),
		Default: false,
	}
	confirmed := false
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		log.Fatalf("Prompt failed: %v", err)
	}
	return confirmed
}
