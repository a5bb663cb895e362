package matching

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

const DefaultTopN = 20

type CandidateRanking struct {
	CandidateID uuid.UUID
	Result      RecommendationResult
}

type JobRecommendation struct {
	Job    Job
	Result RecommendationResult
}

// Rank scores every job still open at now, orders them by overall score
// (ties keep input order) and returns at most topN results.
func Rank(c Candidate, jobs []Job, topN int, now time.Time) []MatchResult {
	limit := effectiveTopN(topN)
	out := make([]MatchResult, 0, len(jobs))
	for _, j := range jobs {
		if !j.Eligible(now) {
			continue
		}
		r := Score(c, j)
		out = append(out, MatchResult{
			CandidateID: c.ID,
			JobID:       j.ID,
			Overall:     r.Overall,
			Breakdown:   r.Breakdown,
			ComputedAt:  now,
		})
	}

	sort.SliceStable(out, func(i, k int) bool {
		return out[i].Overall > out[k].Overall
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// RankCandidates orders candidates for one job using the recommendation weighting.
func RankCandidates(j Job, candidates []Candidate, topN int) []CandidateRanking {
	limit := effectiveTopN(topN)
	out := make([]CandidateRanking, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, CandidateRanking{CandidateID: c.ID, Result: Recommend(c, j)})
	}

	sort.SliceStable(out, func(i, k int) bool {
		return out[i].Result.Overall > out[k].Result.Overall
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// RankRecommendedJobs is the job-board flavour of Rank: open jobs ordered by
// the recommendation weighting.
func RankRecommendedJobs(c Candidate, jobs []Job, topN int, now time.Time) []JobRecommendation {
	limit := effectiveTopN(topN)
	out := make([]JobRecommendation, 0, len(jobs))
	for _, j := range jobs {
		if !j.Eligible(now) {
			continue
		}
		out = append(out, JobRecommendation{Job: j, Result: Recommend(c, j)})
	}

	sort.SliceStable(out, func(i, k int) bool {
		return out[i].Result.Overall > out[k].Result.Overall
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func effectiveTopN(n int) int {
	if n <= 0 {
		return DefaultTopN
	}
	return n
}
