// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/tfidf/internal/config"
	"github.com/katalvlaran/tfidf/internal/logger"
	"github.com/katalvlaran/tfidf/internal/render"
	"github.com/katalvlaran/tfidf/vectorize"
)

// flagPaths maps command-line flags onto configuration keys.
var flagPaths = map[string]string{
	"format":     "output.format",
	"precision":  "output.precision",
	"no-color":   "output.no_color",
	"empty-docs": "vectorize.empty_documents",
	"csv-column": "input.csv_column",
	"csv-header": "input.csv_header",
	"html":       "input.html",
	"log-level":  "log.level",
	"log-json":   "log.json",

	"addr":           "server.addr",
	"max-documents":  "server.max_documents",
	"max-body-bytes": "server.max_body_bytes",
	"max-cells":      "server.max_cells",
}

type cfgCtxKey struct{}

func createRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "tfidf [file...]",
		Short: "Compute bag-of-words TF-IDF matrices",
		Long: `tfidf reads a corpus (one document per line, or one CSV column) from the
given files or stdin and prints its count, TF, IDF or TF-IDF representation.
Running tfidf without a subcommand is the same as "tfidf fit".`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		PersistentPreRunE: setupGlobalConfig,
		RunE:              runFit,
	}

	addGlobalFlags(root)
	root.AddCommand(
		newCommand("counts", "Print the raw token-count matrix", runCounts),
		newCommand("tf", "Print the term-frequency matrix", runTF),
		newCommand("idf", "Print the inverse document frequency of every term", runIDF),
		newCommand("fit", "Print the TF-IDF matrix", runFit),
		newCommand("features", "Print the vocabulary in column order", runFeatures),
		newCommand("model", "Print the fitted vocabulary and idf weights as JSON", runModel),
		newCommand("similarity", "Print pairwise cosine similarity of the TF-IDF rows", runSimilarity),
		newServeCommand(),
	)

	return root
}

func newCommand(use, short string, run func(*cobra.Command, []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [file...]",
		Short: short,
		Args:  cobra.ArbitraryArgs,
		RunE:  run,
	}
}

func addGlobalFlags(cmd *cobra.Command) {
	def := config.Default()
	fs := cmd.PersistentFlags()
	fs.String("format", def.Output.Format, "Output format: table, json or csv")
	fs.Int("precision", def.Output.Precision, "Digits after the decimal point (-1 for shortest exact form)")
	fs.Bool("no-color", def.Output.NoColor, "Disable colored output")
	fs.String("empty-docs", def.Vectorize.EmptyDocuments, "Empty document policy: error or zero")
	fs.Int("csv-column", def.Input.CSVColumn, "Read documents from this 1-based CSV column (0 reads whole lines)")
	fs.Bool("csv-header", def.Input.CSVHeader, "Skip the first CSV record")
	fs.Bool("html", def.Input.HTML, "Treat every input as one HTML document and index its visible text")
	fs.String("log-level", def.Log.Level, "Log level: debug, info, warn, error or disabled")
	fs.Bool("log-json", def.Log.JSON, "Emit logs as JSON")
	fs.String("config", "", "Read settings from this YAML file")
	fs.String("env-file", "", "Load environment variables from this dotenv file")
}

// extractFlagOverrides returns configuration keys for flags set explicitly.
func extractFlagOverrides(cmd *cobra.Command) map[string]any {
	overrides := make(map[string]any)
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if path, ok := flagPaths[f.Name]; ok {
			overrides[path] = f.Value.String()
		}
	})

	return overrides
}

func setupGlobalConfig(cmd *cobra.Command, _ []string) error {
	if envFile, _ := cmd.Flags().GetString("env-file"); envFile != "" {
		// Variables already in the environment win over the file.
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile, extractFlagOverrides(cmd))
	if err != nil {
		return err
	}

	logger.Init(&logger.Config{
		Level:      logger.LogLevel(cfg.Log.Level),
		Output:     cmd.ErrOrStderr(),
		JSON:       cfg.Log.JSON,
		TimeFormat: "15:04:05",
	})
	log := logger.GetDefault()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.ContextWithLogger(ctx, log)
	ctx = context.WithValue(ctx, cfgCtxKey{}, cfg)
	cmd.SetContext(ctx)

	log.Debug("configuration loaded",
		"format", cfg.Output.Format,
		"empty_documents", cfg.Vectorize.EmptyDocuments,
		"csv_column", cfg.Input.CSVColumn,
	)

	return nil
}

func configFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(cfgCtxKey{}).(*config.Config); ok && cfg != nil {
		return cfg
	}

	return config.Default()
}

// session bundles what every subcommand needs after setup.
type session struct {
	cfg    *config.Config
	log    logger.Logger
	out    *render.Renderer
	policy vectorize.EmptyDocumentPolicy
	docs   []string
}

func newSession(cmd *cobra.Command, args []string) (*session, error) {
	ctx := cmd.Context()
	cfg := configFromContext(ctx)
	log := logger.FromContext(ctx).With("cmd", cmd.Name())

	policy, err := vectorize.ParseEmptyDocumentPolicy(cfg.Vectorize.EmptyDocuments)
	if err != nil {
		return nil, err
	}

	docs, err := readCorpus(args, cmd.InOrStdin(), cfg.Input)
	if err != nil {
		return nil, err
	}
	log.Debug("corpus read", "documents", len(docs), "sources", len(args))

	color := false
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		color = render.ColorEnabled(f, cfg.Output.NoColor)
	}

	return &session{
		cfg:    cfg,
		log:    log,
		policy: policy,
		docs:   docs,
		out: render.New(cmd.OutOrStdout(), render.Options{
			Format:    cfg.Output.Format,
			Precision: cfg.Output.Precision,
			Color:     color,
		}),
	}, nil
}

func runCounts(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args)
	if err != nil {
		return err
	}
	cv := vectorize.NewCountVectorizer()
	counts, err := cv.FitTransform(s.docs)
	if err != nil {
		return err
	}
	s.log.Info("counted", "documents", counts.Rows(), "features", counts.Cols())

	return s.out.Matrix(cv.FeatureNames(), counts)
}

func runTF(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args)
	if err != nil {
		return err
	}
	cv := vectorize.NewCountVectorizer()
	counts, err := cv.FitTransform(s.docs)
	if err != nil {
		return err
	}
	tf, err := vectorize.TF(counts, s.policy)
	if err != nil {
		return err
	}

	return s.out.Matrix(cv.FeatureNames(), tf)
}

func runIDF(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args)
	if err != nil {
		return err
	}
	cv := vectorize.NewCountVectorizer()
	counts, err := cv.FitTransform(s.docs)
	if err != nil {
		return err
	}
	idf, err := vectorize.IDF(counts)
	if err != nil {
		return err
	}

	return s.out.Vector(cv.FeatureNames(), "idf", idf)
}

func runFit(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args)
	if err != nil {
		return err
	}
	v := vectorize.NewTfidfVectorizer(vectorize.WithEmptyDocumentPolicy(s.policy))
	m, err := v.FitTransform(s.docs)
	if err != nil {
		return fmt.Errorf("fit: %w", err)
	}
	s.log.Info("fitted", "documents", m.Rows(), "features", m.Cols())

	return s.out.Matrix(v.FeatureNames(), m)
}

func runFeatures(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args)
	if err != nil {
		return err
	}
	cv := vectorize.NewCountVectorizer()
	if _, err = cv.FitTransform(s.docs); err != nil {
		return err
	}

	return s.out.List("term", cv.FeatureNames())
}

func runModel(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args)
	if err != nil {
		return err
	}
	v := vectorize.NewTfidfVectorizer(vectorize.WithEmptyDocumentPolicy(s.policy))
	if _, err = v.FitTransform(s.docs); err != nil {
		return fmt.Errorf("model: %w", err)
	}
	model, err := v.Snapshot()
	if err != nil {
		return err
	}

	return s.out.JSON(model)
}

func runSimilarity(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args)
	if err != nil {
		return err
	}
	v := vectorize.NewTfidfVectorizer(vectorize.WithEmptyDocumentPolicy(s.policy))
	m, err := v.FitTransform(s.docs)
	if err != nil {
		return fmt.Errorf("similarity: %w", err)
	}
	sim, err := vectorize.Similarity(m)
	if err != nil {
		return err
	}

	labels := make([]string, sim.Cols())
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}

	return s.out.Matrix(labels, sim)
}
