// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about a stored paper or the whole corpus",
	Long: `Ask answers a free-form question with evidence from the text. With
--paper the question targets one stored paper; without it the corpus is
ranked by similarity and the best-matching paper answers. Use --section
to scope the answer to a single section of the paper.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")
	paperID, _ := cmd.Flags().GetString("paper")
	section, _ := cmd.Flags().GetString("section")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if section != "" && paperID == "" {
		return fmt.Errorf("--section requires --paper")
	}

	a, st, err := openAssistant(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()

	if paperID != "" {
		answer, err := a.Ask(ctx, paperID, question, section)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(answer)
		}
		printAnswer(answer)
		return nil
	}

	answer, chosenID, err := a.AskAll(ctx, question)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(struct {
			PaperID string `json:"paper_id,omitempty"`
			Answer  any    `json:"answer"`
		}{PaperID: chosenID, Answer: answer})
	}
	if chosenID != "" {
		fmt.Printf("paper: %s\n\n", chosenID)
	}
	printAnswer(answer)
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	askCmd.Flags().String("paper", "", "paper ID to ask about (default: best match in corpus)")
	askCmd.Flags().String("section", "", "limit the answer to one section by title")
	askCmd.Flags().Bool("json", false, "output the answer as JSON")

	rootCmd.AddCommand(askCmd)
}
