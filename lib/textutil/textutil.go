package textutil

import (
	"strings"
)

func HasTag(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(strings.TrimSpace(t), want) {
			return true
		}
	}
	return false
}

func HasAnyTag(tags []string, want ...string) bool {
	for _, w := range want {
		if HasTag(tags, w) {
			return true
		}
	}
	return false
}

func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
