// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the research-assistant CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/manoj1906/AI-research-assistant/internal/assistant"
	"github.com/manoj1906/AI-research-assistant/internal/embed"
	"github.com/manoj1906/AI-research-assistant/internal/paper"
	"github.com/manoj1906/AI-research-assistant/internal/qa"
	"github.com/manoj1906/AI-research-assistant/internal/secrets"
	"github.com/manoj1906/AI-research-assistant/internal/source"
	"github.com/manoj1906/AI-research-assistant/internal/store"
	"github.com/manoj1906/AI-research-assistant/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when set, the secret value for key
// otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the research-assistant CLI.
var rootCmd = &cobra.Command{
	Use:   "research-assistant",
	Short: "Structure scientific papers and answer questions about them",
	Long: `research-assistant parses scientific papers into structured metadata,
sections, figures, tables, and references, then answers free-form questions
about them with evidence from the text.

Upload papers with upload, ask questions with ask, and rank the stored
corpus against a question with search. Answers come from an external
extractive-QA service when one is configured and from rule-based
extraction otherwise.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./research-assistant.yaml or ~/.config/research-assistant/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "paper database path (default: papers.db)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("research-assistant")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "research-assistant"))
		}
	}

	viper.SetEnvPrefix("RESEARCH_ASSISTANT")
	viper.AutomaticEnv()

	viper.SetDefault("db_path", "papers.db")
	viper.SetDefault("max_context_length", types.DefaultMaxContextLength)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// assistantConfig assembles the runtime config from viper and secrets.
// The taxonomy comes from the file named by taxonomy_file when set, the
// built-in default otherwise.
func assistantConfig(cmd *cobra.Command) (types.AssistantConfig, error) {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = viper.GetString("db_path")
	}

	taxonomy := types.DefaultTaxonomy()
	if path := viper.GetString("taxonomy_file"); path != "" {
		var err error
		taxonomy, err = types.LoadTaxonomy(path)
		if err != nil {
			return types.AssistantConfig{}, err
		}
	}

	return types.AssistantConfig{
		Taxonomy:         taxonomy,
		MaxContextLength: viper.GetInt("max_context_length"),
		DBPath:           dbPath,
		QA: types.QAConfig{
			Endpoint: viper.GetString("qa.endpoint"),
			APIKey:   secretDefault(secrets.KeyQA, viper.GetString("qa.api_key")),
			Timeout:  viper.GetDuration("qa.timeout"),
		},
		Embeddings: types.EmbeddingsConfig{
			Endpoint: viper.GetString("embeddings.endpoint"),
			APIKey:   secretDefault(secrets.KeyEmbeddings, viper.GetString("embeddings.api_key")),
			Model:    viper.GetString("embeddings.model"),
			Timeout:  viper.GetDuration("embeddings.timeout"),
		},
	}, nil
}

// openAssistant builds the full pipeline from config. The caller closes
// the returned store.
func openAssistant(cmd *cobra.Command) (*assistant.Assistant, *store.Store, error) {
	cfg, err := assistantConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	parser, err := paper.NewParser(source.NewPDFSource(), cfg.Taxonomy)
	if err != nil {
		return nil, nil, fmt.Errorf("building parser: %w", err)
	}

	var model qa.Extractive
	if cfg.QA.Endpoint != "" {
		model, err = qa.NewHTTPExtractive(cfg.QA)
		if err != nil {
			return nil, nil, fmt.Errorf("building qa client: %w", err)
		}
	}
	synth := qa.NewSynthesizer(model, qa.NewContextBuilder(cfg.Taxonomy, cfg.MaxContextLength))

	var embedder embed.Embedder
	if cfg.Embeddings.Endpoint != "" {
		embedder, err = embed.NewHTTPEmbedder(cfg.Embeddings)
		if err != nil {
			return nil, nil, fmt.Errorf("building embeddings client: %w", err)
		}
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}

	return assistant.New(parser, synth, embedder, st, os.Stderr), st, nil
}

// printAnswer renders an answer for the terminal.
func printAnswer(answer types.Answer) {
	fmt.Println(answer.Text)
	fmt.Printf("\nconfidence: %.2f", answer.Confidence)
	if answer.SourceSection != "" {
		fmt.Printf("  section: %s", answer.SourceSection)
	}
	if answer.PageNumber > 0 {
		fmt.Printf("  page: %d", answer.PageNumber)
	}
	fmt.Println()
	if answer.Evidence != "" {
		fmt.Printf("\nevidence: %s\n", answer.Evidence)
	}
}

func formatUploadedAt(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
