package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search bookmarks by keyword (literal or pinyin)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		mgr, err := newManager(cfg)
		if err != nil {
			return err
		}

		query := strings.Join(args, " ")
		results := mgr.Search(query)
		if len(results) == 0 {
			cmd.Println("No results.")
			return nil
		}

		for i := range results {
			res := &results[i]
			var matched []string
			if res.NameMatch {
				matched = append(matched, "name")
			}
			if res.DescriptionMatch {
				matched = append(matched, "description")
			}
			if res.URLMatch {
				matched = append(matched, "url")
			}
			line := fmt.Sprintf("%s [%s]", res.Name, res.ID)
			if res.URL != "" {
				line += "  " + res.URL
			}
			cmd.Printf("%s  (matched: %s)\n", line, strings.Join(matched, ", "))
		}
		cmd.Printf("\n%d result(s)\n", len(results))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
