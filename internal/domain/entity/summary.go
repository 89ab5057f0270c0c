package entity

import "github.com/samber/lo"

type Summary struct {
	Total       int
	Eligible    int
	Failed      int
	TotalPoints int64
}

// Summarize counts every record, failed ones included. Failed records carry
// zero points so they never change TotalPoints.
func Summarize(results []EligibilityResult) Summary {
	return Summary{
		Total: len(results),
		Eligible: lo.CountBy(results, func(r EligibilityResult) bool {
			return r.Eligible
		}),
		Failed: lo.CountBy(results, EligibilityResult.Failed),
		TotalPoints: lo.SumBy(results, func(r EligibilityResult) int64 {
			return r.Points
		}),
	}
}
