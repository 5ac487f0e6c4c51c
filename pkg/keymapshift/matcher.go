package keymapshift

import "unicode"

const (
	coverageHit  = 2
	coverageMiss = -1

	rtlBonus         = 5
	ltrBonus         = 3
	directionPenalty = -2
)

type Score struct {
	Value   int
	Matches int
}

func (s Score) beats(other Score) bool {
	return s.Value > other.Value || (s.Value == other.Value && s.Matches > other.Matches)
}

// Coverage scores how well inverse explains text: +2 for every character the
// layout can produce, -1 for every other non-control character.
func Coverage(text string, inverse InverseMap) Score {
	var s Score
	for _, r := range text {
		if unicode.IsControl(r) {
			continue
		}
		if inverse.Has(r) {
			s.Value += coverageHit
			s.Matches++
		} else {
			s.Value += coverageMiss
		}
	}
	return s
}

func DirectionBonus(hint Direction, hinted bool, layout Direction) int {
	if !hinted {
		return 0
	}
	switch {
	case hint == RightToLeft && layout == RightToLeft:
		return rtlBonus
	case hint == LeftToRight && layout == LeftToRight:
		return ltrBonus
	default:
		return directionPenalty
	}
}

// ScoreLayout is the full matching score of text against lm.
func ScoreLayout(text string, lm LayoutMap) Score {
	hint, hinted := DirectionHint(text)
	return scoreLayout(text, lm, hint, hinted)
}

func scoreLayout(text string, lm LayoutMap, hint Direction, hinted bool) Score {
	s := Coverage(text, Invert(lm))
	s.Value += DirectionBonus(hint, hinted, lm.Layout.Direction)
	return s
}

// MatchLayout returns the index of the layout in snapshot that best explains text.
// Ties go to the layout with more matching characters, then to the earliest one.
// ok is false when the winner recognises none of the characters.
func MatchLayout(text string, snapshot Snapshot) (idx int, ok bool) {
	idx, score := matchLayout(text, snapshot)
	if idx < 0 || score.Matches == 0 {
		return -1, false
	}
	return idx, true
}

func matchLayout(text string, snapshot Snapshot) (int, Score) {
	hint, hinted := DirectionHint(text)

	best := -1
	var bestScore Score
	for i, lm := range snapshot {
		s := scoreLayout(text, lm, hint, hinted)
		if best < 0 || s.beats(bestScore) {
			best = i
			bestScore = s
		}
	}

	return best, bestScore
}
