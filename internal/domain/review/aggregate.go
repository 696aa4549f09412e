package review

// StageAggregate is the result of aggregating one proposal's reviews for one
// stage. Average is meaningful only when Complete is true.
type StageAggregate struct {
	Complete bool    `json:"complete"`
	Totals   []int   `json:"totals"`
	Average  float64 `json:"average"`
}

// AggregateStage1 computes completion and the mean of per-reviewer totals
// over a proposal's stage-1 assignments. Assignments must carry their
// Stage1Score preloaded.
//
// An empty assignment set is incomplete: a proposal with no reviewers can
// never pass stage-1 review. An assignment that is not COMPLETED, has no
// score attached, or whose score is still a draft also makes the stage
// incomplete.
func AggregateStage1(assignments []ReviewAssignment) StageAggregate {
	if len(assignments) == 0 {
		return StageAggregate{}
	}

	totals := make([]int, 0, len(assignments))
	sum := 0
	for i := range assignments {
		a := &assignments[i]
		if a.Status != AssignmentCompleted || a.Stage1Score == nil || a.Stage1Score.IsDraft {
			return StageAggregate{}
		}
		total := a.Stage1Score.TotalScore()
		totals = append(totals, total)
		sum += total
	}

	return StageAggregate{
		Complete: true,
		Totals:   totals,
		Average:  float64(sum) / float64(len(totals)),
	}
}

// Stage2Complete reports whether every stage-2 assignment is COMPLETED with
// a final review attached. An empty set is incomplete.
func Stage2Complete(assignments []ReviewAssignment) bool {
	if len(assignments) == 0 {
		return false
	}
	for i := range assignments {
		a := &assignments[i]
		if a.Status != AssignmentCompleted || a.Stage2Review == nil || a.Stage2Review.IsDraft {
			return false
		}
	}
	return true
}
