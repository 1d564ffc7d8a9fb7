package match

import (
	"sort"

	"ledger-reconciler/internal/domain"
)

// Resolution is the conflict-free outcome of one resolver pass.
type Resolution struct {
	Accepted []domain.AcceptedMatch
	Rejected []domain.RejectedCandidate
}

// Resolve greedily selects a conflict-free matching from the full candidate
// set: candidates are visited in descending confidence and a candidate is
// accepted only if its transaction and title are both unclaimed and its
// confidence reaches the auto-match floor. Ties break on earlier transaction
// date, then lower transaction ID, then lower title ID, so identical input
// always yields identical output.
//
// Greedy selection is deliberate: confidence ordering already encodes the
// domain priority (exact matches must always win), and at hundreds to low
// thousands of candidates an optimal bipartite matching buys nothing.
//
// Every candidate that is not accepted is kept as a rejected entry with a
// reason, so operators can review near-misses instead of losing them.
func Resolve(candidates []domain.MatchCandidate, cfg Config) Resolution {
	sorted := make([]domain.MatchCandidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		if !a.TransactionDate.Equal(b.TransactionDate) {
			return a.TransactionDate.Before(b.TransactionDate)
		}
		if a.TransactionID != b.TransactionID {
			return a.TransactionID < b.TransactionID
		}
		return a.TitleID < b.TitleID
	})

	res := Resolution{
		Accepted: make([]domain.AcceptedMatch, 0),
		Rejected: make([]domain.RejectedCandidate, 0),
	}
	claimedTx := make(map[string]bool)
	claimedTitle := make(map[string]bool)

	for _, c := range sorted {
		switch {
		case c.Confidence < cfg.MinAutoMatchConfidence:
			res.Rejected = append(res.Rejected, rejected(c, domain.RejectBelowThreshold))
		case claimedTx[c.TransactionID] || claimedTitle[c.TitleID]:
			res.Rejected = append(res.Rejected, rejected(c, domain.RejectAlreadyMatched))
		default:
			res.Accepted = append(res.Accepted, domain.AcceptedMatch{
				TransactionID: c.TransactionID,
				TitleID:       c.TitleID,
				Strategy:      c.Strategy,
				Confidence:    c.Confidence,
			})
			claimedTx[c.TransactionID] = true
			claimedTitle[c.TitleID] = true
		}
	}
	return res
}

func rejected(c domain.MatchCandidate, reason domain.RejectReason) domain.RejectedCandidate {
	return domain.RejectedCandidate{
		TransactionID: c.TransactionID,
		TitleID:       c.TitleID,
		Strategy:      c.Strategy,
		Confidence:    c.Confidence,
		Reason:        reason,
	}
}
