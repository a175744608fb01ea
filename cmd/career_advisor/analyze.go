package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/advisor"
	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/export"
	"github.com/jonathan/career-advisor/internal/llm"
	"github.com/jonathan/career-advisor/internal/observability"
	"github.com/jonathan/career-advisor/internal/resume"
	"github.com/jonathan/career-advisor/internal/types"
)

var (
	analyzeProfile string
	analyzeResume  string
	analyzeOut     string
	analyzePDF     bool
	analyzeConfig  string
	analyzeVerbose bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one student profile and export reports",
	Long: `Run a single profile analysis from the command line. Reads a profile JSON
file (academic details and interests), optionally a resume (PDF or text),
and writes the full JSON report - plus one PDF per career path with --pdf -
into the output directory.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeProfile, "profile", "", "Path to profile JSON file (required)")
	analyzeCmd.Flags().StringVar(&analyzeResume, "resume", "", "Path to resume file (PDF or plain text)")
	analyzeCmd.Flags().StringVar(&analyzeOut, "out", "reports", "Output directory for exported reports")
	analyzeCmd.Flags().BoolVar(&analyzePDF, "pdf", false, "Also export one PDF per career path")
	analyzeCmd.Flags().StringVar(&analyzeConfig, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted summary of the analysis")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		Profile:   analyzeProfile,
		Resume:    analyzeResume,
		OutputDir: analyzeOut,
		APIKey:    os.Getenv("GEMINI_API_KEY"),
		Model:     os.Getenv("GEMINI_MODEL"),
		PDF:       analyzePDF,
		Verbose:   analyzeVerbose,
	}

	if analyzeConfig != "" {
		fileCfg, err := config.LoadConfig(analyzeConfig)
		if err != nil {
			return err
		}
		if err := fileCfg.Validate(); err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	if cfg.Profile == "" {
		return fmt.Errorf("--profile is required")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	input, err := loadProfile(cfg.Profile, cfg.Resume)
	if err != nil {
		return err
	}
	if err := input.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	ctx := cmd.Context()
	client, err := llm.NewClient(ctx, llm.DefaultConfig().WithModel(cfg.Model), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	result := advisor.New(client).Analyze(ctx, *input)

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintAnalysisResult(result)
	}

	reportPath, err := export.WriteJSONReport(result, cfg.OutputDir)
	if err != nil {
		return err
	}
	fmt.Printf("Report written to %s\n", reportPath)

	if cfg.PDF {
		if err := exportPDFs(ctx, cfg, result); err != nil {
			return err
		}
	}
	return nil
}

// loadProfile reads the profile JSON and, when given, the resume file.
func loadProfile(profilePath, resumePath string) (*types.ProfileInput, error) {
	data, err := os.ReadFile(profilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	var input types.ProfileInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	if resumePath != "" {
		raw, err := os.ReadFile(resumePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read resume file: %w", err)
		}
		text, err := resume.ExtractText(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to extract resume text: %w", err)
		}
		input.ResumeText = text
	}

	return &input, nil
}

// exportPDFs writes one PDF per suggested career path.
func exportPDFs(ctx context.Context, cfg config.Config, result *types.AnalysisResult) error {
	renderer := export.NewPDFRenderer()
	if cfg.ChromePath != "" {
		renderer.ChromePath = cfg.ChromePath
	}

	files, err := renderer.WriteAllPDFs(ctx, cfg.OutputDir, result)
	if err != nil {
		return fmt.Errorf("pdf export failed: %w", err)
	}
	fmt.Printf("Exported %d career-path PDFs to %s\n", len(files), cfg.OutputDir)
	return nil
}
