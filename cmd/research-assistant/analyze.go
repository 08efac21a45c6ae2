// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run canned analyses over stored papers",
}

var analyzeContributionCmd = &cobra.Command{
	Use:   "contribution [paper-id]",
	Short: "Report a paper's contributions, novelty, and significance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openAssistant(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		analysis, err := a.AnalyzeContribution(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Println("== Main contributions ==")
		printAnswer(analysis.MainContributions)
		fmt.Println("\n== Novelty ==")
		printAnswer(analysis.Novelty)
		fmt.Println("\n== Significance ==")
		printAnswer(analysis.Significance)
		return nil
	},
}

var analyzeMethodologyCmd = &cobra.Command{
	Use:   "methodology [paper-id]",
	Short: "Report a paper's methodology, approach, and datasets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openAssistant(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		analysis, err := a.AnalyzeMethodology(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Println("== Methodology ==")
		printAnswer(analysis.Methodology)
		fmt.Println("\n== Approach ==")
		printAnswer(analysis.Approach)
		fmt.Println("\n== Datasets ==")
		printAnswer(analysis.Datasets)
		return nil
	},
}

var analyzeCompareCmd = &cobra.Command{
	Use:   "compare [paper-id] [paper-id]...",
	Short: "Compare two or more papers on one aspect",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		aspect, _ := cmd.Flags().GetString("aspect")

		a, st, err := openAssistant(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cmp, err := a.Compare(context.Background(), args, aspect)
		if err != nil {
			return err
		}

		for _, p := range cmp.Papers {
			fmt.Printf("=== %s (%s) ===\n", p.Title, p.PaperID)
			printAnswer(p.Answer)
			fmt.Println()
		}
		fmt.Println(cmp.Summary)
		return nil
	},
}

func init() {
	analyzeCompareCmd.Flags().String("aspect", "methodology", "aspect to compare: methodology, contributions, results, or free-form")

	analyzeCmd.AddCommand(analyzeContributionCmd)
	analyzeCmd.AddCommand(analyzeMethodologyCmd)
	analyzeCmd.AddCommand(analyzeCompareCmd)

	rootCmd.AddCommand(analyzeCmd)
}
