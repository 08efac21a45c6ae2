// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [question]",
	Short: "Rank stored papers by similarity to a question",
	Long: `Search embeds the question and ranks every stored paper by cosine
similarity between the question vector and the paper's abstract vector.
Requires a configured embeddings endpoint.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	a, st, err := openAssistant(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	results, err := a.Search(context.Background(), question, limit)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-10s  %-36s  %s\n", "Rank", "Score", "ID", "Title")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))
	for i, r := range results {
		title := r.Title
		if len(title) > 55 {
			title = title[:52] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-10.4f  %-36s  %s\n", i+1, r.Similarity, r.PaperID, title)
	}
	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

func init() {
	searchCmd.Flags().Int("limit", 5, "maximum results")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}
