package scheduler

var focusTips = []string{
	"Focus on problem solving",
	"Review weak topics first",
	"Practice previous questions",
	"Do a short self-quiz",
	"Summarize key formulas",
	"Teach this topic to an imaginary friend",
}

// FocusNote picks a study tip from the subject name alone: the sum of its
// code points modulo the tip count.
func FocusNote(subjectName string) string {
	sum := 0
	for _, r := range subjectName {
		sum += int(r)
	}
	return focusTips[sum%len(focusTips)]
}
