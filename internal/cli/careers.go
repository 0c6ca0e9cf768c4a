package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/internmatch/internmatch/internal/catalog"
	"github.com/internmatch/internmatch/internal/classifier"
	"github.com/internmatch/internmatch/internal/config"
	"github.com/internmatch/internmatch/internal/match"
	"github.com/internmatch/internmatch/internal/output"
)

var careersCmd = &cobra.Command{
	Use:   "careers",
	Short: "Suggest careers using the hybrid classifier",
	Long: `Ask the classification service for career probabilities and fuse them
with rule-based alignment boosts from the career reference dataset.

Requires the classification service to be running.

Examples:
  internmatch careers --education "Bachelor's" --skills "python; sql" --interests "ai"
  internmatch careers --skills "html, css" --age 22 --top 5`,
	RunE: runCareers,
}

var (
	careersEducation string
	careersSkills    string
	careersInterests string
	careersAge       int
	careersTop       int
)

func init() {
	rootCmd.AddCommand(careersCmd)

	careersCmd.Flags().StringVar(&careersEducation, "education", "", "Highest completed education level")
	careersCmd.Flags().StringVar(&careersSkills, "skills", "", "Comma- or semicolon-separated skills")
	careersCmd.Flags().StringVar(&careersInterests, "interests", "", "Comma- or semicolon-separated interests")
	careersCmd.Flags().IntVar(&careersAge, "age", 0, "Age (optional)")
	careersCmd.Flags().IntVar(&careersTop, "top", 0, "Number of careers to suggest (default from config)")
}

func runCareers(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	careers, err := catalog.LoadCareers(cfg.Catalog.CareersPath)
	if err != nil {
		return fmt.Errorf("failed to load careers dataset: %w", err)
	}

	client := classifier.New(cfg.ClassifierURL())
	if err := client.EnsureRunning(ctx); err != nil {
		return err
	}

	hybridCfg := cfg.Hybrid.ToHybrid()
	if careersTop > 0 {
		hybridCfg.TopN = careersTop
	}

	recommender, err := match.NewHybridRecommender(client, careers, hybridCfg, log)
	if err != nil {
		return err
	}

	profile := match.Profile{
		Education: careersEducation,
		Skills:    []string{careersSkills},
		Interests: []string{careersInterests},
	}
	if careersAge > 0 {
		profile.Age = &careersAge
	}

	suggestions, err := recommender.Recommend(ctx, profile)
	if err != nil {
		return err
	}

	return output.Output(outputFmt, suggestions)
}
