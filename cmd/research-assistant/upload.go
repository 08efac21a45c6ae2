// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload [paths...]",
	Short: "Parse papers and add them to the store",
	Long: `Upload parses each PDF into structured metadata, sections, figures,
tables, and references, embeds it when an embeddings endpoint is
configured, and stores the result. Each stored paper gets a fresh ID,
printed on success. With --id the paper is stored under that ID instead,
replacing any previous paper stored under it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpload,
}

func runUpload(cmd *cobra.Command, args []string) error {
	paperID, _ := cmd.Flags().GetString("id")
	if paperID != "" && len(args) > 1 {
		return fmt.Errorf("--id applies to a single paper, got %d paths", len(args))
	}

	a, st, err := openAssistant(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	var failed []string
	for _, path := range args {
		id, err := a.Upload(context.Background(), path, paperID)
		if err != nil {
			fmt.Printf("failed  %s: %v\n", path, err)
			failed = append(failed, path)
			continue
		}

		paper, _ := a.Get(id)
		fmt.Printf("stored  %s  %s (%d pages, %d sections)\n",
			id, paper.Metadata.Title, paper.PageCount, len(paper.Sections))
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d upload(s) failed: %s", len(failed), strings.Join(failed, ", "))
	}
	return nil
}

func init() {
	uploadCmd.Flags().String("id", "", "store the paper under this ID (default: generated)")

	rootCmd.AddCommand(uploadCmd)
}
