// One-shot tool: render a finance Twitter report payload into an HTML
// document and a plain-text document.
//
// Usage:
//
//	go build -o bin/render-report ./cmd/render-report/
//	bin/render-report --input report.json --html-output report.html --text-output report.txt
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/shihongDev/DailyFinanceReportAgent/internal/report"
	"github.com/shihongDev/DailyFinanceReportAgent/internal/util"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Report renderer failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	input := flag.String("input", "", "path to JSON payload")
	htmlOut := flag.String("html-output", "", "destination HTML file")
	textOut := flag.String("text-output", "", "destination text file")
	flag.Parse()
	if *input == "" || *htmlOut == "" || *textOut == "" {
		return errors.New("--input, --html-output and --text-output flags are required")
	}

	logger := util.NewLogger(os.Getenv("LOG_LEVEL"))
	util.SetDefault(logger)

	p, err := report.Load(*input)
	if err != nil {
		return err
	}

	htmlDoc := report.RenderHTML(p)
	textDoc := report.RenderText(p)

	// Outputs are written one after the other; a failure on the second
	// leaves the first in place.
	if err := os.WriteFile(*htmlOut, []byte(htmlDoc), 0644); err != nil {
		return err
	}
	if err := os.WriteFile(*textOut, []byte(textDoc), 0644); err != nil {
		return err
	}

	logger.Info("report rendered", "accounts", len(p.Accounts), "html", *htmlOut, "text", *textOut)
	return nil
}
