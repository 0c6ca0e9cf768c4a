package cli

import (
	"github.com/spf13/cobra"

	"github.com/internmatch/internmatch/internal/config"
	"github.com/internmatch/internmatch/internal/match"
	"github.com/internmatch/internmatch/internal/output"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank internships against a candidate profile",
	Long: `Score every internship in the catalog against the given profile and
print a ranked, explainable short-list.

Examples:
  internmatch recommend --education "Bachelor's" --skills "python, sql" --interests ai
  internmatch recommend --skills "surveying" --location "Eldoret" --limit 3
  internmatch recommend --skills python -o json`,
	RunE: runRecommend,
}

var (
	recommendEducation string
	recommendSkills    string
	recommendInterests string
	recommendLocation  string
	recommendLimit     int
	recommendData      string
)

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringVar(&recommendEducation, "education", "", "Highest completed education level (e.g., Diploma, Bachelor's)")
	recommendCmd.Flags().StringVar(&recommendSkills, "skills", "", "Comma- or semicolon-separated skills")
	recommendCmd.Flags().StringVar(&recommendInterests, "interests", "", "Comma- or semicolon-separated interests")
	recommendCmd.Flags().StringVar(&recommendLocation, "location", "", "City or region")
	recommendCmd.Flags().IntVar(&recommendLimit, "limit", 5, "Number of recommendations to show (0 for all)")
	recommendCmd.Flags().StringVar(&recommendData, "data", "", "Path to an internship catalog JSON file (overrides config)")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	items, err := loadInternships(cmd.Context(), cfg, recommendData)
	if err != nil {
		return err
	}

	profile := match.Profile{
		Education: recommendEducation,
		Skills:    []string{recommendSkills},
		Interests: []string{recommendInterests},
		Location:  recommendLocation,
	}

	recommender := match.NewRecommender(items, match.NewScorer(cfg.Weights.ToWeights()), log)
	recs := recommender.Recommend(profile, recommendLimit)

	return output.Output(outputFmt, recs)
}
