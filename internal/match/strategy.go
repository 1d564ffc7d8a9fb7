package match

import (
	"time"

	"github.com/shopspring/decimal"

	"ledger-reconciler/internal/domain"
)

// Strategy generates scored candidates pairing one transaction with any of
// the open titles. Strategies never claim titles; conflict resolution is the
// resolver's job.
type Strategy interface {
	Kind() domain.StrategyKind
	Generate(tx domain.BankTransaction, titles []domain.FinancialTitle, cfg Config) []domain.MatchCandidate
}

// Pipeline runs strategies in fixed priority order with per-transaction
// short-circuiting: once a strategy yields any candidate for a transaction,
// lower-priority strategies are skipped for it. Cheaper, higher-certainty
// checks pre-empt the expensive fuzzy scoring.
type Pipeline struct {
	strategies []Strategy
}

// NewPipeline builds the standard Exact > Fuzzy > Amount-window pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{strategies: []Strategy{
		ExactStrategy{},
		FuzzyStrategy{},
		AmountWindowStrategy{},
	}}
}

// Generate produces the full candidate set for a run.
func (p *Pipeline) Generate(txs []domain.BankTransaction, titles []domain.FinancialTitle, cfg Config) []domain.MatchCandidate {
	var out []domain.MatchCandidate
	for _, tx := range txs {
		for _, s := range p.strategies {
			cands := s.Generate(tx, titles, cfg)
			if len(cands) > 0 {
				out = append(out, cands...)
				break
			}
		}
	}
	return out
}

// ExactStrategy admits a pair only on a zero amount delta and the same
// calendar day. Confidence is always 1.0.
type ExactStrategy struct{}

func (ExactStrategy) Kind() domain.StrategyKind { return domain.StrategyExact }

func (ExactStrategy) Generate(tx domain.BankTransaction, titles []domain.FinancialTitle, cfg Config) []domain.MatchCandidate {
	var out []domain.MatchCandidate
	for _, title := range titles {
		if !title.MatchesDirection(tx) {
			continue
		}
		if !tx.Magnitude().Equal(title.RemainingBalance) || !sameDay(tx.Date, title.DueDate) {
			continue
		}
		out = append(out, domain.MatchCandidate{
			TransactionID:   tx.ID,
			TitleID:         title.ID,
			Strategy:        domain.StrategyExact,
			Confidence:      1.0,
			AmountDelta:     decimal.Zero,
			TransactionDate: tx.Date,
		})
	}
	return out
}

// FuzzyStrategy admits pairs within both the amount tolerance and the date
// window, scoring them with a weighted blend of linear decays over the amount
// and date deltas plus, when enabled, description similarity against the
// title's counterparty.
type FuzzyStrategy struct{}

func (FuzzyStrategy) Kind() domain.StrategyKind { return domain.StrategyFuzzy }

func (FuzzyStrategy) Generate(tx domain.BankTransaction, titles []domain.FinancialTitle, cfg Config) []domain.MatchCandidate {
	var out []domain.MatchCandidate
	for _, title := range titles {
		if !title.MatchesDirection(tx) {
			continue
		}
		delta := amountDelta(tx, title)
		if delta.GreaterThan(cfg.AmountTolerance) {
			continue
		}
		days := dateDeltaDays(tx.Date, title.DueDate)
		if days > cfg.DateWindowDays {
			continue
		}

		amountScore := 1 - toleranceRatio(delta, cfg.AmountTolerance)
		dateScore := 1 - float64(days)/float64(cfg.DateWindowDays)

		weightSum := cfg.AmountWeight + cfg.DateWeight
		weighted := cfg.AmountWeight*amountScore + cfg.DateWeight*dateScore

		var simPtr *float64
		if cfg.EnableFuzzyDescription {
			sim := Similarity(tx.Description, title.Counterparty)
			weightSum += cfg.DescriptionWeight
			weighted += cfg.DescriptionWeight * sim
			simPtr = &sim
		}
		if weightSum == 0 {
			continue
		}

		out = append(out, domain.MatchCandidate{
			TransactionID:         tx.ID,
			TitleID:               title.ID,
			Strategy:              domain.StrategyFuzzy,
			Confidence:            weighted / weightSum,
			AmountDelta:           delta,
			DateDeltaDays:         days,
			DescriptionSimilarity: simPtr,
			TransactionDate:       tx.Date,
		})
	}
	return out
}

// AmountWindowStrategy admits any pair within the amount tolerance regardless
// of date. Its confidence never exceeds the configured cap, so these
// candidates only ever surface as needs-review entries for transactions the
// higher strategies could not place.
type AmountWindowStrategy struct{}

func (AmountWindowStrategy) Kind() domain.StrategyKind { return domain.StrategyAmountWindow }

func (AmountWindowStrategy) Generate(tx domain.BankTransaction, titles []domain.FinancialTitle, cfg Config) []domain.MatchCandidate {
	var out []domain.MatchCandidate
	for _, title := range titles {
		if !title.MatchesDirection(tx) {
			continue
		}
		delta := amountDelta(tx, title)
		if delta.GreaterThan(cfg.AmountTolerance) {
			continue
		}
		out = append(out, domain.MatchCandidate{
			TransactionID:   tx.ID,
			TitleID:         title.ID,
			Strategy:        domain.StrategyAmountWindow,
			Confidence:      cfg.WindowConfidenceCap * (1 - toleranceRatio(delta, cfg.AmountTolerance)),
			AmountDelta:     delta,
			DateDeltaDays:   dateDeltaDays(tx.Date, title.DueDate),
			TransactionDate: tx.Date,
		})
	}
	return out
}

func amountDelta(tx domain.BankTransaction, title domain.FinancialTitle) decimal.Decimal {
	return tx.Magnitude().Sub(title.RemainingBalance).Abs()
}

// toleranceRatio maps an in-tolerance delta onto [0,1]. A zero tolerance only
// admits zero deltas, which score as a perfect amount match.
func toleranceRatio(delta, tolerance decimal.Decimal) float64 {
	if tolerance.IsZero() {
		return 0
	}
	return delta.Div(tolerance).InexactFloat64()
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// dateDeltaDays counts whole calendar days between two dates, ignoring the
// time of day.
func dateDeltaDays(a, b time.Time) int {
	ua := midnightUTC(a)
	ub := midnightUTC(b)
	diff := ua.Sub(ub)
	if diff < 0 {
		diff = -diff
	}
	return int(diff / (24 * time.Hour))
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
