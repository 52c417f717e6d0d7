package matching

// ScoreLabel maps a total score to the match-quality label shown to users.
func ScoreLabel(total int) string {
	switch {
	case total >= 80:
		return "Excellent Match"
	case total >= 70:
		return "Great Match"
	case total >= 60:
		return "Good Match"
	case total >= 50:
		return "Fair Match"
	case total >= 40:
		return "Possible Match"
	default:
		return "Low Match"
	}
}

// ScoreColor returns the UI color tag for a total score, using the same
// breakpoints as ScoreLabel.
func ScoreColor(total int) string {
	switch {
	case total >= 80:
		return "green"
	case total >= 70:
		return "teal"
	case total >= 60:
		return "blue"
	case total >= 50:
		return "yellow"
	case total >= 40:
		return "orange"
	default:
		return "gray"
	}
}
