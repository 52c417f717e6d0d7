package matching

import (
	"math"
	"strconv"
	"strings"

	"github.com/jordan/studymatch/internal/types"
)

// neutralScore is assigned when a factor cannot be evaluated because data is
// missing on either side. Unknown data is never penalized.
const neutralScore = 0.5

// Subject scoring constants: each shared subject beyond the first earns a
// bonus step, capped so stacked bonuses cannot dominate the ratio.
const (
	subjectBonusStep = 0.1
	subjectBonusCap  = 1.5
)

// Availability blends day overlap with hour-block overlap.
const (
	availabilityDayWeight  = 0.6
	availabilityHourWeight = 0.4
	hourMismatchScore      = 0.3
)

// styleMismatchScore applies when both styles are known and neither identical
// nor adjacent. Incompatible styles are workable, not disqualifying.
const styleMismatchScore = 0.3

// ScoreCompatibility computes the weighted compatibility score between two
// profiles using the scorer's weight profile. It never mutates its inputs and
// is total: empty or malformed profiles produce a valid (likely low) score.
func (s *Scorer) ScoreCompatibility(a, b *types.Profile) types.MatchScore {
	subjectScore, sharedSubjects := scoreSubjects(a, b)
	timezoneScore, timezoneOK := scoreTimezone(a, b)
	skillScore, skillGap := scoreSkillLevel(a, b)
	availabilityScore, sharedDays, sharedHours := scoreAvailability(a, b)
	styleScore, styleOK := scoreStudyStyle(a, b)

	weighted := s.weights.Subjects*clampUnit(subjectScore) +
		s.weights.Timezone*clampUnit(timezoneScore) +
		s.weights.SkillLevel*clampUnit(skillScore) +
		s.weights.Availability*clampUnit(availabilityScore) +
		s.weights.StudyStyle*clampUnit(styleScore)

	return types.MatchScore{
		TotalScore: roundPercent(weighted),
		Breakdown: types.MatchBreakdown{
			Subjects:     roundPercent(clampUnit(subjectScore)),
			Timezone:     roundPercent(clampUnit(timezoneScore)),
			SkillLevel:   roundPercent(clampUnit(skillScore)),
			Availability: roundPercent(clampUnit(availabilityScore)),
			StudyStyle:   roundPercent(clampUnit(styleScore)),
		},
		Details: types.MatchDetails{
			SharedSubjects:     sharedSubjects,
			TimezoneCompatible: timezoneOK,
			SkillLevelGap:      skillGap,
			SharedDays:         sharedDays,
			SharedHours:        sharedHours,
			StyleCompatible:    styleOK,
		},
	}
}

// ScoreCompatibility computes the compatibility score between two profiles
// using the default weight profile.
func ScoreCompatibility(a, b *types.Profile) types.MatchScore {
	return defaultScorer.ScoreCompatibility(a, b)
}

// scoreSubjects scores case-insensitive subject overlap. An empty subject
// list on either side scores 0, not neutral: subject match is the primary
// search key, so absence of data is absence of signal. Multiple shared
// subjects earn a capped bonus multiplier.
// Returns the score (0-1) and the shared subjects in profile a's casing.
func scoreSubjects(a, b *types.Profile) (float64, []string) {
	if len(a.Subjects) == 0 || len(b.Subjects) == 0 {
		return 0.0, nil
	}

	shared := sharedValues(a.Subjects, b.Subjects)
	if len(shared) == 0 {
		return 0.0, nil
	}

	larger := max(distinctCount(a.Subjects), distinctCount(b.Subjects))
	ratio := float64(len(shared)) / float64(larger)

	bonus := 1.0 + subjectBonusStep*float64(len(shared)-1)
	if bonus > subjectBonusCap {
		bonus = subjectBonusCap
	}

	score := ratio * bonus
	if score > 1.0 {
		score = 1.0
	}

	return score, shared
}

// scoreTimezone scores hour-offset proximity between two "UTC±N" timezones.
// Unparseable or missing values on either side yield the neutral score with
// compatible=true (no penalty for unknown data). Known offsets decay
// piecewise with the absolute hour difference; beyond eight hours the pair is
// flagged incompatible for real-time sessions.
func scoreTimezone(a, b *types.Profile) (float64, bool) {
	offsetA, okA := parseUTCOffset(a.Timezone)
	offsetB, okB := parseUTCOffset(b.Timezone)
	if !okA || !okB {
		return neutralScore, true
	}

	diff := offsetA - offsetB
	if diff < 0 {
		diff = -diff
	}

	var score float64
	switch {
	case diff == 0:
		score = 1.0
	case diff <= 2:
		score = 1.0 - 0.05*float64(diff)
	case diff <= 5:
		score = 0.85 - 0.05*float64(diff-2)
	case diff <= 8:
		score = 0.70 - 0.06*float64(diff-5)
	default:
		score = math.Max(0.30-0.02*float64(diff-8), 0.0)
	}

	return score, diff <= 8
}

// parseUTCOffset extracts the integer hour offset from a "UTC±N" string.
// Fractional offsets like "UTC+5:30" do not parse and fall back to neutral
// scoring; see the known-gaps note in DESIGN.md.
func parseUTCOffset(tz string) (int, bool) {
	tz = strings.TrimSpace(tz)
	if !strings.HasPrefix(strings.ToUpper(tz), "UTC") {
		return 0, false
	}

	rest := tz[3:]
	if rest == "" || (rest[0] != '+' && rest[0] != '-') {
		return 0, false
	}

	offset, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return offset, true
}

// skillRank orders the known skill levels for distance computation.
var skillRank = map[string]int{
	types.SkillBeginner:     0,
	types.SkillIntermediate: 1,
	types.SkillAdvanced:     2,
	types.SkillExpert:       3,
}

// scoreSkillLevel scores ordinal skill-level distance. A missing or
// unrecognized level on either side yields the neutral score with gap 0.
// One level apart scores nearly as well as identical: a small gap has
// peer-teaching value, a large gap reduces mutual benefit.
func scoreSkillLevel(a, b *types.Profile) (float64, int) {
	rankA, okA := skillRank[strings.ToUpper(strings.TrimSpace(a.SkillLevel))]
	rankB, okB := skillRank[strings.ToUpper(strings.TrimSpace(b.SkillLevel))]
	if !okA || !okB {
		return neutralScore, 0
	}

	gap := rankA - rankB
	if gap < 0 {
		gap = -gap
	}

	var score float64
	switch gap {
	case 0:
		score = 1.0
	case 1:
		score = 0.9
	case 2:
		score = 0.7
	case 3:
		score = 0.5
	default:
		score = 0.3
	}

	return score, gap
}

// scoreAvailability blends day overlap with hour-block overlap. Missing day
// data on either side is neutral, but non-empty disjoint day sets are a hard
// 0: no shared days means no shared study time, unlike timezone distance
// which degrades gradually. Hour blocks refine the day score when both sides
// provide them.
func scoreAvailability(a, b *types.Profile) (float64, []string, []string) {
	if len(a.AvailableDays) == 0 || len(b.AvailableDays) == 0 {
		return neutralScore, nil, nil
	}

	sharedDays := sharedValues(a.AvailableDays, b.AvailableDays)
	if len(sharedDays) == 0 {
		return 0.0, nil, nil
	}

	larger := max(distinctCount(a.AvailableDays), distinctCount(b.AvailableDays))
	dayRatio := float64(len(sharedDays)) / float64(larger)

	hourScore := neutralScore
	var sharedHours []string
	if len(a.AvailableHours) > 0 && len(b.AvailableHours) > 0 {
		sharedHours = sharedValues(a.AvailableHours, b.AvailableHours)
		if len(sharedHours) > 0 {
			hourScore = 1.0
		} else {
			// Day overlap without a common hour block still has some value.
			hourScore = hourMismatchScore
		}
	}

	score := availabilityDayWeight*dayRatio + availabilityHourWeight*hourScore
	return score, sharedDays, sharedHours
}

// styleAdjacency lists, per style, the distinct styles it still pairs well
// with. Checked in both directions, so entries need not be mirrored.
var styleAdjacency = map[string][]string{
	types.StyleCollaborative:  {types.StyleMixed, types.StyleAuditory},
	types.StyleIndependent:    {types.StyleMixed, types.StyleSolo, types.StyleReadingWriting},
	types.StyleMixed:          {types.StyleVisual, types.StyleAuditory, types.StyleKinesthetic, types.StyleReadingWriting},
	types.StyleVisual:         {types.StyleKinesthetic},
	types.StyleSolo:           {types.StyleReadingWriting},
	types.StyleReadingWriting: {},
	types.StyleAuditory:       {},
	types.StyleKinesthetic:    {},
}

// scoreStudyStyle scores study-style preference. Missing on either side is
// neutral and compatible; identical styles score full; adjacent styles score
// 0.8; everything else is a workable mismatch at 0.3.
func scoreStudyStyle(a, b *types.Profile) (float64, bool) {
	styleA := strings.ToUpper(strings.TrimSpace(a.StudyStyle))
	styleB := strings.ToUpper(strings.TrimSpace(b.StudyStyle))
	if styleA == "" || styleB == "" {
		return neutralScore, true
	}

	if styleA == styleB {
		return 1.0, true
	}

	if stylesAdjacent(styleA, styleB) || stylesAdjacent(styleB, styleA) {
		return 0.8, true
	}

	return styleMismatchScore, false
}

func stylesAdjacent(style, other string) bool {
	for _, candidate := range styleAdjacency[style] {
		if candidate == other {
			return true
		}
	}
	return false
}

// sharedValues returns the elements of a that also appear in b, compared
// case-insensitively. Casing and order follow a; duplicates are collapsed.
func sharedValues(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	inB := make(map[string]bool, len(b))
	for _, v := range b {
		inB[normalizeValue(v)] = true
	}

	seen := make(map[string]bool, len(a))
	shared := make([]string, 0)
	for _, v := range a {
		key := normalizeValue(v)
		if inB[key] && !seen[key] {
			seen[key] = true
			shared = append(shared, v)
		}
	}

	if len(shared) == 0 {
		return nil
	}
	return shared
}

// distinctCount returns the number of case-insensitively distinct values.
func distinctCount(values []string) int {
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		seen[normalizeValue(v)] = true
	}
	return len(seen)
}

func normalizeValue(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// clampUnit bounds a sub-score to [0, 1] before weighting so no factor can
// contribute a negative or oversized share.
func clampUnit(score float64) float64 {
	if score < 0.0 {
		return 0.0
	}
	if score > 1.0 {
		return 1.0
	}
	return score
}

// roundPercent scales a unit score to the 0-100 integer scale.
func roundPercent(score float64) int {
	return int(math.Round(score * 100))
}
