package scheduler

import "sort"

// target is a subject's total hour allocation for the whole horizon.
type target struct {
	Name  string
	Hours float64
}

// sortTargets orders targets by hours descending. Ties keep input order.
func sortTargets(targets []target) {
	sort.SliceStable(targets, func(i, j int) bool {
		return targets[i].Hours > targets[j].Hours
	})
}
