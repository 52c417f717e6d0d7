package matching

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jordan/studymatch/internal/types"
)

// Defaults applied when RankOptions fields are left at their zero value.
const (
	DefaultLimit    = 10
	DefaultMinScore = 40
)

// concurrentPoolSize is the candidate count at which ranking switches to
// parallel scoring. Scoring calls are independent, so fan-out changes nothing
// about the result ordering.
const concurrentPoolSize = 64

// RankOptions controls filtering and truncation of ranked candidates.
// Zero values fall back to DefaultLimit and DefaultMinScore.
type RankOptions struct {
	Limit    int
	MinScore int
}

func (o RankOptions) normalized() RankOptions {
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.MinScore <= 0 {
		o.MinScore = DefaultMinScore
	}
	return o
}

// RankCandidates scores every candidate against the reference profile and
// returns the best matches, sorted by descending total score. Candidates
// sharing the reference's ID are excluded, candidates below MinScore are
// filtered out, and the result is truncated to Limit entries. Ties keep the
// original candidate order (stable sort). An empty result is normal, not an
// error.
func (s *Scorer) RankCandidates(reference *types.Profile, candidates []types.Profile, opts RankOptions) []types.RankedCandidate {
	opts = opts.normalized()

	pool := make([]types.Profile, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.ID == reference.ID {
			continue
		}
		pool = append(pool, candidate)
	}

	scores := make([]types.MatchScore, len(pool))
	if len(pool) >= concurrentPoolSize {
		// Scoring is pure and per-candidate independent; index-addressed
		// results keep the output identical to the sequential path.
		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i := range pool {
			g.Go(func() error {
				scores[i] = s.ScoreCompatibility(reference, &pool[i])
				return nil
			})
		}
		// Workers never return errors; Wait only synchronizes.
		_ = g.Wait()
	} else {
		for i := range pool {
			scores[i] = s.ScoreCompatibility(reference, &pool[i])
		}
	}

	ranked := make([]types.RankedCandidate, 0, len(pool))
	for i := range pool {
		if scores[i].TotalScore < opts.MinScore {
			continue
		}
		ranked = append(ranked, types.RankedCandidate{Profile: pool[i], Score: scores[i]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score.TotalScore > ranked[j].Score.TotalScore
	})

	if len(ranked) > opts.Limit {
		ranked = ranked[:opts.Limit]
	}
	return ranked
}

// RankCandidates ranks candidates against the reference profile using the
// default weight profile.
func RankCandidates(reference *types.Profile, candidates []types.Profile, opts RankOptions) []types.RankedCandidate {
	return defaultScorer.RankCandidates(reference, candidates, opts)
}
