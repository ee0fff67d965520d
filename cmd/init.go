package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hamster-nav/hamsternav/internal/config"
)

var initSample bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively create a hamsternav configuration",
	Long:  `Runs an interactive wizard that writes .hamsternav.yml and, when requested, a starter dataset to browse immediately.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard()
		if err != nil {
			return err
		}
		if initSample {
			if err := writeSampleData(cfg.DataDir); err != nil {
				return fmt.Errorf("writing sample data: %w", err)
			}
			fmt.Printf("Sample data written to %s\n", cfg.DataDir)
		}
		fmt.Println("\nDone. Try: hamsternav tree")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initSample, "sample", true, "write starter CSV data when the data directory is empty")
	rootCmd.AddCommand(initCmd)
}

const sampleCategories = `id,name,parent,sort_order
dev,Development,,1
web,Web,dev,1
tools,Tools,,2
`

const sampleSites = `id,title,url,category,icon,description,sort_order,visible
s1,GitHub,https://github.com/,web,,Code hosting and collaboration,1,1
s2,MDN Web Docs,https://developer.mozilla.org/,web,,Web platform documentation,2,1
s3,Go Playground,https://go.dev/play/,dev,,Run Go snippets in the browser,1,1
`

// writeSampleData creates starter CSV files, refusing to overwrite
// existing ones.
func writeSampleData(dataDir string) error {
	files := map[string]string{
		"categories.csv": sampleCategories,
		"sites.csv":      sampleSites,
	}
	for name, content := range files {
		path := filepath.Join(dataDir, name)
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("Skipping %s: already exists\n", path)
			continue
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}
