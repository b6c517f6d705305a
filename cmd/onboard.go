package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/gridmate/gridmate/config"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Initialize gridmate configuration",
	Long:  `Create the gridmate configuration directory and default config file.`,
	RunE:  runOnboard,
}

func init() {
	rootCmd.AddCommand(onboardCmd)
}

func runOnboard(_ *cobra.Command, _ []string) error {
	configPath, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(configPath); err == nil {
		fmt.Println("Config already exists at:", configPath)
		fmt.Println("To reconfigure, edit the file directly or delete it first.")
		return nil
	}

	// --- interactive wizard ---

	cfg := config.DefaultConfig()

	var (
		pagesInput string
		delayMS    int
		fileLog    bool
	)

	// Step 1: document pages
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Workbook pages").
				Description("Comma-separated page names. The first page starts active and is opened when leaving agent mode.").
				Placeholder(strings.Join(cfg.Document.Pages, ", ")).
				Value(&pagesInput),
		),
	).Run()
	if err != nil {
		return err
	}

	// Step 2: response delay
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Assistant response delay").
				Description("How long the chat waits before showing the placeholder reply.").
				Options(
					huh.NewOption("0.5s (snappy)", 500),
					huh.NewOption("1.5s (default)", 1500),
					huh.NewOption("3s (deliberate)", 3000),
				).
				Value(&delayMS),
		),
	).Run()
	if err != nil {
		return err
	}

	// Step 3: file logging
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Write a debug log file?").
				Description("Logs also stream into the chat view's log region.").
				Affirmative("Yes").
				Negative("No").
				Value(&fileLog),
		),
	).Run()
	if err != nil {
		return err
	}

	if pages := parsePages(pagesInput); len(pages) > 0 {
		cfg.Document.Pages = pages
		cfg.Document.DefaultPage = pages[0]
	}
	if delayMS > 0 {
		cfg.Chat.ResponseDelayMS = delayMS
	}
	if !fileLog {
		cfg.Logging.File = ""
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println("Config created at:", configPath)
	fmt.Println("Start the panels with: gridmate run")
	return nil
}

// parsePages splits a comma-separated page list, dropping blanks.
func parsePages(input string) []string {
	var pages []string
	for _, p := range strings.Split(input, ",") {
		if p = strings.TrimSpace(p); p != "" {
			pages = append(pages, p)
		}
	}
	return pages
}
