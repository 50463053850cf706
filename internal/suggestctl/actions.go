package suggestctl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"suggestd/internal/completion"
)

// demoPrompts exercise typical short-context inputs.
var demoPrompts = []string{
	"The weather today is",
	"I need to buy",
	"Python is a programming language that",
	"The capital of France",
	"Machine learning is",
}

func fnDemo(cfg *Config) error {
	client := completion.New(cfg.BackendURL)
	info("running demo against %s", cfg.BackendURL)
	for _, prompt := range demoPrompts {
		fmt.Printf("\nInput: %q\n", prompt)
		result := client.GetCompletion(context.Background(), prompt, cfg.Suggestions)
		if len(result.Completions) == 0 {
			fmt.Println("  (no completion)")
			continue
		}
		fmt.Printf("  Completion: %q\n", result.Completions[0])
		fmt.Printf("  Latency: %.2fms\n", result.LatencyMS)
		fmt.Printf("  Full text: %q\n", prompt+result.Completions[0])
		for i, alt := range result.Completions[1:] {
			fmt.Printf("  Alternative %d: %q\n", i+1, alt)
		}
	}
	return nil
}

func fnComplete(cfg *Config, text string) error {
	client := completion.New(cfg.BackendURL)
	debug("requesting %d suggestions from %s", cfg.Suggestions, cfg.BackendURL)
	result := client.GetCompletion(context.Background(), text, cfg.Suggestions)
	if len(result.Completions) == 0 {
		return fmt.Errorf("no completions returned (backend down or empty input)")
	}
	for _, c := range result.Completions {
		fmt.Printf("%q\n", c)
	}
	fmt.Printf("latency: %.2fms\n", result.LatencyMS)
	return nil
}

func fnInteractive(cfg *Config, in io.Reader, out io.Writer) error {
	client := completion.New(cfg.BackendURL)
	fmt.Fprintln(out, "Enter text for completion (quit/exit/q to stop):")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "quit", "exit", "q":
			return nil
		case "":
			continue
		}
		result := client.GetCompletion(context.Background(), line, cfg.Suggestions)
		if len(result.Completions) == 0 {
			fmt.Fprintln(out, "(no completion)")
			continue
		}
		fmt.Fprintf(out, "Suggested completion: %q\n", result.Completions[0])
		fmt.Fprintf(out, "Latency: %.2fms\n", result.LatencyMS)
		fmt.Fprintf(out, "Full text: %q\n", line+result.Completions[0])
	}
	return scanner.Err()
}
