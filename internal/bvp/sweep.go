package bvp

import "github.com/go-spectral/spectral/internal/parallel"

// SweepResult pairs one entry of a parameter sweep with its outcome.
// Exactly one of Solution and Err is non-nil.
type SweepResult struct {
	Solution *Solution
	Err      error
}

// SolveMany solves the problems concurrently across at most workers
// goroutines (workers <= 0 selects one per CPU) and returns one result
// per problem, in input order. A failed entry records its error without
// disturbing the others.
func SolveMany(problems []Problem, workers int) []SweepResult {
	out := make([]SweepResult, len(problems))
	parallel.Each(len(problems), workers, func(i int) {
		sol, err := Solve(problems[i])
		out[i] = SweepResult{Solution: sol, Err: err}
	})
	return out
}
