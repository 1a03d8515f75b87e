package validate

import (
	"sort"

	tsforecast "github.com/DataZooDE/anofox-forecast-sub014"
)

// ScoreFunc reduces a CVResult to a single score where lower is better;
// the default is the aggregate RMSE.
type ScoreFunc func(CVResult) float64

// DefaultScore scores by aggregate RMSE, per spec.md §4.6 ("default:
// RMSE").
func DefaultScore(r CVResult) float64 { return r.AggregateRMSE }

// Candidate names one model factory under evaluation.
type Candidate struct {
	Name    string
	Factory ModelFactory
}

// Ranked is one candidate's CV result and score, in ascending score order.
type Ranked struct {
	Name   string
	Score  float64
	Result CVResult
}

// AutoSelector ranks candidates under identical CV splits by score
// (ascending, lower-is-better) and reports the best.
func AutoSelector(series tsforecast.Series, candidates []Candidate, cfg CVConfig, score ScoreFunc) (best Ranked, ranking []Ranked, err error) {
	if len(candidates) == 0 {
		return Ranked{}, nil, invalidParamf("AutoSelector: no candidates supplied")
	}
	if score == nil {
		score = DefaultScore
	}

	ranking = make([]Ranked, 0, len(candidates))
	var lastErr error
	for _, c := range candidates {
		result, e := Backtest(series, c.Factory, cfg)
		if e != nil {
			lastErr = e
			continue
		}
		ranking = append(ranking, Ranked{Name: c.Name, Score: score(result), Result: result})
	}
	if len(ranking) == 0 {
		return Ranked{}, nil, lastErr
	}

	sort.Slice(ranking, func(i, j int) bool { return ranking[i].Score < ranking[j].Score })
	return ranking[0], ranking, nil
}
