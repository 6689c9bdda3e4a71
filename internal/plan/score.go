package plan

import "github.com/mwiater/crossboard/internal/leaderboard"

// bestValues returns the lowest valid value seen for each instance.
func bestValues(runs []leaderboard.Run) map[string]float64 {
	best := make(map[string]float64)
	for _, run := range runs {
		for _, m := range run.Measurements {
			if m.Instance == "" || !m.Value.Valid {
				continue
			}
			if cur, ok := best[m.Instance]; !ok || m.Value.Value < cur {
				best[m.Instance] = m.Value.Value
			}
		}
	}
	return best
}

// score is a run's explicit score, or else the mean ratio of its values to
// the best known value per instance. 1.0 means the run matched the best
// result on every instance it was measured on.
func score(run leaderboard.Run, best map[string]float64) leaderboard.Number {
	if run.Score.Valid {
		return run.Score
	}

	var sum float64
	var n int
	for _, m := range run.Measurements {
		if m.Instance == "" || !m.Value.Valid {
			continue
		}
		b, ok := best[m.Instance]
		if !ok {
			continue
		}
		sum += ratio(m.Value.Value, b)
		n++
	}
	if n == 0 {
		return leaderboard.Number{}
	}
	return leaderboard.Num(sum / float64(n))
}

func ratio(value, best float64) float64 {
	if best == 0 {
		return 1 + value
	}
	return value / best
}
