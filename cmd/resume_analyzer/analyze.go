package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/ats"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/grammar"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume text file and print the scored report",
	Long: `Parses extracted resume text into structured sections, runs the grammar,
content, and ATS collaborators, and prints the scored analysis as JSON.

Grammar checking and AI content suggestions run only when LANGUAGETOOL_URL
and GEMINI_API_KEY are configured; without them the analysis still scores
content quality and ATS compatibility from the parsed sections.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeFile       string
	analyzeDocType    string
	analyzeJob        string
	analyzeJobURL     string
	analyzeUseBrowser bool
	analyzeNoGrammar  bool
	analyzeNoAI       bool
	analyzeVerbose    bool
)

func init() {
	analyzeCommand.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to extracted resume text file (required)")
	analyzeCommand.Flags().StringVar(&analyzeDocType, "doc-type", "txt", "Source document type: pdf, docx, or txt")
	analyzeCommand.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	analyzeCommand.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job description from (mutually exclusive with --job)")
	analyzeCommand.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA job sites (requires Chrome)")
	analyzeCommand.Flags().BoolVar(&analyzeNoGrammar, "no-grammar", false, "Skip the grammar collaborator")
	analyzeCommand.Flags().BoolVar(&analyzeNoAI, "no-ai", false, "Skip the AI content-suggestion collaborator")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print formatted parse and score summaries before the JSON report")

	_ = analyzeCommand.MarkFlagRequired("file")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	if analyzeJob != "" && analyzeJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = analyzeUseBrowser
	}

	data, err := os.ReadFile(analyzeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	content, err := parsing.Parse(string(data), analyzeDocType)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	resume := &types.Resume{
		ID:         uuid.New(),
		Filename:   filepath.Base(analyzeFile),
		DocType:    analyzeDocType,
		UploadedAt: time.Now().UTC(),
		Content:    content,
	}

	engine := &analysis.Engine{ATS: ats.NewAnalyzer()}
	defer engine.Close()

	if !analyzeNoGrammar && cfg.LanguageToolURL != "" {
		checker, err := grammar.NewLanguageToolChecker(cfg.LanguageToolURL, &grammar.Options{Language: cfg.Language})
		if err != nil {
			return fmt.Errorf("failed to create grammar checker: %w", err)
		}
		engine.Grammar = checker
	}
	if !analyzeNoAI && cfg.GeminiAPIKey != "" {
		suggester, err := llm.NewGeminiSuggester(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return fmt.Errorf("failed to create content suggester: %w", err)
		}
		engine.Suggester = suggester
	}

	jobDescription, err := loadJobDescription(ctx, cfg)
	if err != nil {
		return err
	}

	record := engine.Run(ctx, resume, jobDescription)

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintResumeContent(content)
		printer.PrintScores(record)
		printer.PrintGrammarIssues(record.GrammarIssues)
		printer.PrintATSSuggestions(record.ATSSuggestions)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(record); err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}
	return nil
}

func loadJobDescription(ctx context.Context, cfg *config.Config) (string, error) {
	switch {
	case analyzeJob != "":
		data, err := os.ReadFile(analyzeJob)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		return string(data), nil
	case analyzeJobURL != "":
		opts := fetch.DefaultOptions()
		opts.UseBrowser = cfg.UseBrowser
		text, err := fetch.JobDescription(ctx, analyzeJobURL, opts)
		if err != nil {
			return "", fmt.Errorf("failed to fetch job description: %w", err)
		}
		return text, nil
	default:
		return "", nil
	}
}
