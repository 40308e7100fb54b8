// One-shot tool: call the Google Generative Language API to produce a text
// summary from a JSON prompt payload, printing the result to stdout.
//
// Usage:
//
//	go build -o bin/ai-summary ./cmd/ai-summary/
//	GOOGLE_AI_API_KEY=... bin/ai-summary --input payload.json
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shihongDev/DailyFinanceReportAgent/internal/config"
	"github.com/shihongDev/DailyFinanceReportAgent/internal/gemini"
	"github.com/shihongDev/DailyFinanceReportAgent/internal/util"
)

// payload is the tool input: a prompt and an optional model override.
type payload struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "AI summary renderer failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	input := flag.String("input", "", "path to JSON payload file")
	flag.Parse()
	if *input == "" {
		return errors.New("--input flag is required")
	}
	return fetch(*input)
}

// fetch loads configuration and the prompt payload, calls the API once, and
// prints the summary to stdout. Credentials and the prompt are validated
// before any request goes out.
func fetch(inputPath string) error {
	cfg, err := config.Load(os.Getenv("REPORT_AGENT_CONFIG"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Gemini.APIKey == "" {
		return errors.New("GOOGLE_AI_API_KEY environment variable is required")
	}

	logger := util.NewLogger(cfg.Logging.Level)
	util.SetDefault(logger)

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Prompt == "" {
		return errors.New(`payload missing "prompt" field`)
	}

	model := p.Model
	if model == "" {
		model = cfg.Gemini.Model
	}

	client := gemini.NewClient(cfg.Gemini.Host, cfg.Gemini.APIKey,
		time.Duration(cfg.Gemini.TimeoutSeconds)*time.Second)

	logger.Info("requesting summary", "model", model, "prompt_bytes", len(p.Prompt))
	text, err := client.GenerateText(context.Background(), model, p.Prompt)
	if err != nil {
		return err
	}

	fmt.Println(text)
	return nil
}
