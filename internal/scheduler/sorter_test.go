package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortTargets_DescendingHours(t *testing.T) {
	targets := []target{{"A", 1}, {"B", 3}, {"C", 2}}
	sortTargets(targets)
	assert.Equal(t, []target{{"B", 3}, {"C", 2}, {"A", 1}}, targets)
}

func TestSortTargets_TiesKeepInputOrder(t *testing.T) {
	targets := []target{{"Z", 2}, {"A", 2}, {"M", 2}, {"B", 5}}
	sortTargets(targets)
	assert.Equal(t, []string{"B", "Z", "A", "M"}, []string{targets[0].Name, targets[1].Name, targets[2].Name, targets[3].Name})
}
