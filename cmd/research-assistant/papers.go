// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var papersCmd = &cobra.Command{
	Use:   "papers",
	Short: "Manage stored papers (list, info, export, delete)",
}

// --- list subcommand ---

var papersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every stored paper",
	RunE:  runPapersList,
}

func runPapersList(cmd *cobra.Command, args []string) error {
	a, st, err := openAssistant(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	summaries := a.List()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		return printJSON(summaries)
	}

	if len(summaries) == 0 {
		fmt.Println("No papers stored.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-50s  %-6s  %-5s  %s\n",
		"ID", "Title", "Year", "Pages", "Uploaded")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 120))

	for _, s := range summaries {
		title := s.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		year := "-"
		if s.Year > 0 {
			year = fmt.Sprintf("%d", s.Year)
		}
		fmt.Fprintf(os.Stdout, "%-36s  %-50s  %-6s  %-5d  %s\n",
			s.PaperID, title, year, s.PageCount, formatUploadedAt(s.UploadedAt))
	}

	fmt.Fprintf(os.Stdout, "\n%d papers\n", len(summaries))
	return nil
}

// --- info subcommand ---

var papersInfoCmd = &cobra.Command{
	Use:   "info [paper-id]",
	Short: "Show a stored paper's metadata and structure",
	Args:  cobra.ExactArgs(1),
	RunE:  runPapersInfo,
}

func runPapersInfo(cmd *cobra.Command, args []string) error {
	a, st, err := openAssistant(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	info, err := a.Info(args[0])
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		return printJSON(info)
	}

	fmt.Printf("Title:    %s\n", info.Title)
	if len(info.Authors) > 0 {
		fmt.Printf("Authors:  %s\n", strings.Join(info.Authors, ", "))
	}
	if info.Venue != "" {
		fmt.Printf("Venue:    %s\n", info.Venue)
	}
	if info.Year > 0 {
		fmt.Printf("Year:     %d\n", info.Year)
	}
	fmt.Printf("Pages:    %d\n", info.PageCount)

	fmt.Printf("\nSections (%d):\n", len(info.Sections))
	for _, sec := range info.Sections {
		fmt.Printf("  %-20s  pages %d-%d\n", sec.Title, sec.PageStart, sec.PageEnd)
	}

	fmt.Printf("\nFigures: %d  Tables: %d  References: %d\n",
		info.FigureCount, info.TableCount, info.ReferenceCount)
	return nil
}

// --- export subcommand ---

var papersExportCmd = &cobra.Command{
	Use:   "export [paper-id]",
	Short: "Export a stored paper's full structure as YAML or JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runPapersExport,
}

func runPapersExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	a, st, err := openAssistant(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	paper, err := a.Get(args[0])
	if err != nil {
		return err
	}

	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(paper)
	case "json":
		return printJSON(paper)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}

// --- delete subcommand ---

var papersDeleteCmd = &cobra.Command{
	Use:   "delete [paper-id]",
	Short: "Remove a paper from the store",
	Args:  cobra.ExactArgs(1),
	RunE:  runPapersDelete,
}

func runPapersDelete(cmd *cobra.Command, args []string) error {
	a, st, err := openAssistant(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := a.Delete(context.Background(), args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", args[0])
	return nil
}

func init() {
	papersListCmd.Flags().Bool("json", false, "output as JSON")
	papersInfoCmd.Flags().Bool("json", false, "output as JSON")
	papersExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	papersCmd.AddCommand(papersListCmd)
	papersCmd.AddCommand(papersInfoCmd)
	papersCmd.AddCommand(papersExportCmd)
	papersCmd.AddCommand(papersDeleteCmd)

	rootCmd.AddCommand(papersCmd)
}
