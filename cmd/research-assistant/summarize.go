// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [paper-id]",
	Short: "Summarize a stored paper",
	Long: `Summarize builds a summary from the paper's metadata and its first
substantial sections, or of a single section with --section. Use ask
with a summary question instead when an extractive-QA endpoint is
configured and a model-backed answer is wanted.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func runSummarize(cmd *cobra.Command, args []string) error {
	section, _ := cmd.Flags().GetString("section")

	a, st, err := openAssistant(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	summary, err := a.Summarize(context.Background(), args[0], section)
	if err != nil {
		return err
	}

	fmt.Println(summary)
	return nil
}

func init() {
	summarizeCmd.Flags().String("section", "", "summarize one section by title")

	rootCmd.AddCommand(summarizeCmd)
}
