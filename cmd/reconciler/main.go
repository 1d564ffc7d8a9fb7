package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"ledger-reconciler/internal/domain"
	"ledger-reconciler/internal/gateway"
	"ledger-reconciler/internal/match"
	"ledger-reconciler/internal/usecase"
)

// tuningFile is the optional YAML override file for the matching config.
// Absent fields keep their defaults.
type tuningFile struct {
	AmountTolerance        *string  `yaml:"amount_tolerance"`
	DateWindowDays         *int     `yaml:"date_window_days"`
	MinAutoMatchConfidence *float64 `yaml:"min_auto_match_confidence"`
	EnableFuzzyDescription *bool    `yaml:"enable_fuzzy_description"`
	AmountWeight           *float64 `yaml:"amount_weight"`
	DateWeight             *float64 `yaml:"date_weight"`
	DescriptionWeight      *float64 `yaml:"description_weight"`
	WindowConfidenceCap    *float64 `yaml:"window_confidence_cap"`
}

func main() {
	// Define command-line flags
	transactionsFile := flag.String("transactions", "", "Path to the bank transactions CSV file (required)")
	titlesFile := flag.String("titles", "", "Path to the open titles CSV file (required)")
	tenantID := flag.String("tenant", "", "Tenant identifier (required)")
	branchID := flag.String("branch", "", "Branch identifier (required)")
	accountID := flag.String("account", "", "Bank account identifier (required)")
	startDateStr := flag.String("start", "", "Start date of the reconciliation window (YYYY-MM-DD) (required)")
	endDateStr := flag.String("end", "", "End date of the reconciliation window (YYYY-MM-DD) (required)")
	apply := flag.Bool("apply", false, "Apply accepted matches instead of only proposing them")
	outFile := flag.String("out", "reconciled_pairs.csv", "Where apply mode records the accepted pairs")
	configFile := flag.String("config", "", "Optional YAML file overriding the matching tuning")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	logLevel := zerolog.InfoLevel
	if *verbose {
		logLevel = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(logLevel).
		With().Timestamp().Logger()

	// Validate required flags
	if *transactionsFile == "" || *titlesFile == "" || *tenantID == "" || *branchID == "" ||
		*accountID == "" || *startDateStr == "" || *endDateStr == "" {
		fmt.Println("Error: flags -transactions, -titles, -tenant, -branch, -account, -start and -end are required.")
		flag.Usage()
		os.Exit(1)
	}

	// Parse dates
	startDate, err := time.Parse("2006-01-02", *startDateStr)
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing start date")
	}
	endDate, err := time.Parse("2006-01-02", *endDateStr)
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing end date")
	}

	cfg, err := loadTuning(*configFile)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading tuning file")
	}

	// --- Dependency Injection (Wiring the application) ---

	// 1. Create the gateways (the outermost layer)
	txRepo := gateway.NewCSVTransactionRepository(*transactionsFile)
	titleRepo := gateway.NewCSVTitleRepository(*titlesFile)
	writer := gateway.NewCSVReconciliationLog(*outFile)

	// 2. Create the usecase and inject the collaborators (the core logic layer)
	reconciliationUseCase := usecase.NewReconciliationUseCase(txRepo, titleRepo, writer, log)

	// --- Execute the Usecase ---
	result, runErr := reconciliationUseCase.Run(context.Background(), usecase.Request{
		Scope: domain.Scope{
			TenantID:      *tenantID,
			BranchID:      *branchID,
			BankAccountID: *accountID,
		},
		Window: domain.Window{Start: startDate, End: endDate},
		DryRun: !*apply,
		Config: cfg,
	})
	if runErr != nil && result == nil {
		log.Fatal().Err(runErr).Msg("reconciliation failed")
	}

	// --- Present the Output ---
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to generate JSON result")
	}
	fmt.Println(string(output))

	// Apply failed after resolution: the result above is still a valid
	// proposal, so print it before exiting nonzero.
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("applying matches failed")
	}
}

// loadTuning builds the matching config from defaults plus the optional YAML
// override file. Returns nil when no file is given so the usecase applies its
// own defaults.
func loadTuning(path string) (*match.Config, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var tf tuningFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg := match.DefaultConfig()
	if tf.AmountTolerance != nil {
		tolerance, err := decimal.NewFromString(*tf.AmountTolerance)
		if err != nil {
			return nil, fmt.Errorf("could not parse amount_tolerance '%s': %w", *tf.AmountTolerance, err)
		}
		cfg.AmountTolerance = tolerance
	}
	if tf.DateWindowDays != nil {
		cfg.DateWindowDays = *tf.DateWindowDays
	}
	if tf.MinAutoMatchConfidence != nil {
		cfg.MinAutoMatchConfidence = *tf.MinAutoMatchConfidence
	}
	if tf.EnableFuzzyDescription != nil {
		cfg.EnableFuzzyDescription = *tf.EnableFuzzyDescription
	}
	if tf.AmountWeight != nil {
		cfg.AmountWeight = *tf.AmountWeight
	}
	if tf.DateWeight != nil {
		cfg.DateWeight = *tf.DateWeight
	}
	if tf.DescriptionWeight != nil {
		cfg.DescriptionWeight = *tf.DescriptionWeight
	}
	if tf.WindowConfidenceCap != nil {
		cfg.WindowConfidenceCap = *tf.WindowConfidenceCap
	}
	return &cfg, nil
}
