package entity

import (
	"math"
	"sort"
)

// TrainingRecord — одна запись набора данных.
type TrainingRecord struct {
	Letter   string        `json:"letter"`   // идентификатор буквы или "incorrect"
	Features FeatureVector `json:"features"` // вектор признаков
	Score    int           `json:"score"`    // оценка качества 0..100
}

// NewTrainingRecord создаёт запись с собственной копией вектора.
func NewTrainingRecord(letter string, features FeatureVector, score int) TrainingRecord {
	return TrainingRecord{
		Letter:   letter,
		Features: features.Clone(),
		Score:    score,
	}
}

// Summary — сводная статистика по набору данных.
type Summary struct {
	Total     int
	Labels    []string
	MinScore  int
	MaxScore  int
	MeanScore float64
}

// Summarize считает статистику по записям.
func Summarize(records []TrainingRecord) Summary {
	s := Summary{Total: len(records)}
	if len(records) == 0 {
		return s
	}

	seen := make(map[string]struct{})
	s.MinScore = math.MaxInt
	s.MaxScore = math.MinInt
	sum := 0
	for _, r := range records {
		if _, ok := seen[r.Letter]; !ok {
			seen[r.Letter] = struct{}{}
			s.Labels = append(s.Labels, r.Letter)
		}
		if r.Score < s.MinScore {
			s.MinScore = r.Score
		}
		if r.Score > s.MaxScore {
			s.MaxScore = r.Score
		}
		sum += r.Score
	}
	sort.Strings(s.Labels)
	s.MeanScore = float64(sum) / float64(len(records))

	return s
}
