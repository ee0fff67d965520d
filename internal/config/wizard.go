package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// DefaultFile, and returns it.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to hamsternav! Let's configure your bookmark collection.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Data directory (CSV files)",
		Default: cfg.DataDir,
	}
	dataDir, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data directory prompt: %w", err)
	}
	cfg.DataDir = dataDir

	// 2. Dangling-parent policy.
	policyPrompt := promptui.Select{
		Label: "When a bookmark references a missing category",
		Items: []string{
			"attach-root — keep it, attached to the top level",
			"drop        — leave it out of the tree",
		},
	}
	idx, _, err := policyPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("policy selection: %w", err)
	}
	if idx == 1 {
		cfg.DanglingPolicy = DanglingDrop
	}

	// 3. Pinyin search.
	pinyinPrompt := promptui.Select{
		Label: "Enable pinyin (phonetic) search for Chinese text",
		Items: []string{"yes", "no"},
	}
	idx, _, err = pinyinPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("pinyin selection: %w", err)
	}
	cfg.Pinyin = idx == 0

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(DefaultFile); err != nil {
		return nil, err
	}
	fmt.Printf("\nConfiguration saved to %s\n", DefaultFile)

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	fmt.Printf("Data directory: %s\n", filepath.Clean(cfg.DataDir))

	return cfg, nil
}
