package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/internmatch/internmatch/internal/catalog"
	"github.com/internmatch/internmatch/internal/classifier"
	"github.com/internmatch/internmatch/internal/config"
	"github.com/internmatch/internmatch/internal/httpapi"
	"github.com/internmatch/internmatch/internal/match"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the recommendation JSON API",
	Long: `Serve the recommender over HTTP.

POST /api/recommend with a profile JSON body returns the ranked
internship short-list. POST /api/careers returns hybrid career
suggestions when the classification service is reachable.`,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	items, err := loadInternships(ctx, cfg, "")
	if err != nil {
		return err
	}
	log.Info("catalog loaded", zap.Int("internships", len(items)))

	deps := httpapi.Deps{
		Recommender:  match.NewRecommender(items, match.NewScorer(cfg.Weights.ToWeights()), log),
		Logger:       log,
		DefaultLimit: cfg.Hybrid.TopN,
	}

	// The hybrid endpoint is optional: it needs both the careers
	// dataset and a reachable classification service.
	careers, err := catalog.LoadCareers(cfg.Catalog.CareersPath)
	if err != nil {
		log.Warn("careers dataset unavailable, /api/careers disabled", zap.Error(err))
	} else {
		client := classifier.New(cfg.ClassifierURL())
		hybrid, err := match.NewHybridRecommender(client, careers, cfg.Hybrid.ToHybrid(), log)
		if err != nil {
			return err
		}
		deps.Hybrid = hybrid
	}

	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	return httpapi.Serve(ctx, addr, httpapi.NewMux(deps), log)
}
