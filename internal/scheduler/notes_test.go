package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFocusNote_Deterministic(t *testing.T) {
	for _, name := range []string{"Math", "History", "Computer Science", "", "Ünïcode"} {
		assert.Equal(t, FocusNote(name), FocusNote(name), "tip for %q must be stable", name)
	}
}

func TestFocusNote_CodePointSum(t *testing.T) {
	// M+a+t+h = 77+97+116+104 = 394, 394 % 6 = 4
	assert.Equal(t, "Summarize key formulas", FocusNote("Math"))
	assert.Equal(t, "Focus on problem solving", FocusNote(""))
}

func TestFocusNote_OrderIndependentOfCalls(t *testing.T) {
	first := FocusNote("Chemistry")
	_ = FocusNote("Physics")
	_ = FocusNote("Biology")
	assert.Equal(t, first, FocusNote("Chemistry"))
}
