// Command control is a small interactive menu for inspecting and tuning the
// advisor configuration, and for launching the advisor itself.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"tenderbot-go/internal/config"
)

const defaultConfigPath = "internal/config/config.yaml"

func main() {
	reader := bufio.NewReader(os.Stdin)

	cfg, err := config.Load(defaultConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	for {
		fmt.Println("\n=== Tender Advisor Control ===")
		fmt.Println("1) Show configuration summary")
		fmt.Println("2) Edit evaluation knobs")
		fmt.Println("3) Edit session window")
		fmt.Println("4) Save config")
		fmt.Println("5) Launch advisor")
		fmt.Println("6) Reload config from disk")
		fmt.Println("0) Exit")
		fmt.Print("Select option: ")

		input, _ := reader.ReadString('\n')
		choice := strings.TrimSpace(input)

		switch choice {
		case "1":
			printSummary(cfg)
		case "2":
			editEvaluation(reader, cfg)
		case "3":
			editSession(reader, cfg)
		case "4":
			if err := config.Save(defaultConfigPath, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "save failed: %v\n", err)
			} else {
				fmt.Println("config saved")
			}
		case "5":
			launchAdvisor()
		case "6":
			reloaded, err := config.Load(defaultConfigPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reload failed: %v\n", err)
			} else {
				cfg = reloaded
				fmt.Println("config reloaded")
			}
		case "0":
			return
		default:
			fmt.Println("unknown option")
		}
	}
}

func printSummary(cfg *config.Config) {
	fmt.Println("\n--- Configuration Summary ---")
	fmt.Printf("Session API: %s\n", cfg.Session.BaseURL)
	fmt.Printf("Tick window: %d..%d | poll every %d ms\n", cfg.Session.OpenTick, cfg.Session.CloseTick, cfg.Session.PollInterval)
	fmt.Printf("Liquidity buffer: %.0f%%\n", cfg.Evaluation.LiquidityBuffer*100)
	fmt.Printf("Caption marker: %q\n", cfg.Evaluation.CaptionMarker)
	fmt.Println("Instruments:")
	for _, inst := range cfg.Instruments {
		listing := "single-listed"
		if inst.DualListed {
			listing = "dual-listed"
		}
		line := fmt.Sprintf("  %s (%s)", inst.Base, listing)
		if len(inst.Spillover) > 0 {
			line += " spillover: " + strings.Join(inst.Spillover, ", ")
		}
		fmt.Println(line)
	}
}

func editEvaluation(reader *bufio.Reader, cfg *config.Config) {
	fmt.Println("\n--- Edit Evaluation ---")
	cfg.Evaluation.LiquidityBuffer = promptFloat(reader, "Liquidity buffer (fraction)", cfg.Evaluation.LiquidityBuffer)
}

func editSession(reader *bufio.Reader, cfg *config.Config) {
	fmt.Println("\n--- Edit Session ---")
	cfg.Session.OpenTick = int(promptFloat(reader, "Open tick", float64(cfg.Session.OpenTick)))
	cfg.Session.CloseTick = int(promptFloat(reader, "Close tick", float64(cfg.Session.CloseTick)))
	cfg.Session.PollInterval = int(promptFloat(reader, "Poll interval (ms)", float64(cfg.Session.PollInterval)))
}

func promptFloat(reader *bufio.Reader, label string, current float64) float64 {
	fmt.Printf("%s [%.4g]: ", label, current)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	value, err := strconv.ParseFloat(line, 64)
	if err != nil {
		fmt.Println("not a number, keeping current value")
		return current
	}
	return value
}

func launchAdvisor() {
	fmt.Println("Launching advisor (Ctrl+C to stop)...")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := exec.CommandContext(ctx, "go", "run", "./cmd/advisor")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "advisor exited: %v\n", err)
	}
}
