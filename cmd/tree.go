package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hamster-nav/hamsternav/internal/nav"
)

var treeParent string

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the bookmark hierarchy",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		mgr, err := newManager(cfg)
		if err != nil {
			return err
		}

		start := mgr.GetNodeByID(nav.RootID)
		if treeParent != "" {
			start = mgr.GetNodeByID(treeParent)
			if start == nil {
				return fmt.Errorf("unknown node id %q", treeParent)
			}
		}

		printTree(cmd, start, 0)
		return nil
	},
}

func init() {
	treeCmd.Flags().StringVar(&treeParent, "parent", "", "print only the subtree under this node id")
	rootCmd.AddCommand(treeCmd)
}

func printTree(cmd *cobra.Command, n *nav.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if n.Kind == nav.KindLink {
		cmd.Printf("%s- %s  %s\n", indent, n.Name, n.URL)
		return
	}
	cmd.Printf("%s%s/ [%s]\n", indent, n.Name, n.ID)
	for _, child := range n.Children {
		printTree(cmd, child, depth+1)
	}
}
