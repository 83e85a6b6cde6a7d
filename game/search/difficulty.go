package search

import "strings"

// Difficulty is a pursuer strength tier. Each tier maps to one search
// algorithm; retuning difficulty means changing that mapping and nothing
// else.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota + 1
	DifficultyMedium
	DifficultyHard
	DifficultyExtreme
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	case DifficultyExtreme:
		return "extreme"
	}
	return "hard"
}

// Algorithm returns the search variant backing this tier.
func (d Difficulty) Algorithm() Algorithm {
	switch d {
	case DifficultyEasy:
		return AlgorithmLazyGreedy
	case DifficultyMedium:
		return AlgorithmGreedy
	case DifficultyExtreme:
		return AlgorithmOptimizedBFS
	default:
		return AlgorithmBFS
	}
}

// ParseDifficulty normalizes a difficulty label (named aliases or integer
// levels "1"–"4", case-insensitive) to a tier. Unknown input defaults to
// hard.
func ParseDifficulty(input string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "easy", "beginner", "1":
		return DifficultyEasy
	case "medium", "normal", "2":
		return DifficultyMedium
	case "hard", "3":
		return DifficultyHard
	case "extreme", "insane", "4":
		return DifficultyExtreme
	default:
		return DifficultyHard
	}
}

// Resolve maps a difficulty label straight to its algorithm.
func Resolve(input string) Algorithm {
	return ParseDifficulty(input).Algorithm()
}
