// SPDX-License-Identifier: MIT

package classifier

import "sort"

// labelSet is the sorted set of class labels and its reverse index.
type labelSet struct {
	classes []string
	index   map[string]int
}

func newLabelSet(y []string) labelSet {
	index := make(map[string]int)
	for _, l := range y {
		index[l] = 0
	}
	classes := make([]string, 0, len(index))
	for l := range index {
		classes = append(classes, l)
	}
	sort.Strings(classes)
	for i, l := range classes {
		index[l] = i
	}

	return labelSet{classes: classes, index: index}
}

func (s labelSet) len() int { return len(s.classes) }

func (s labelSet) lookup(label string) (int, bool) {
	i, ok := s.index[label]

	return i, ok
}
