package summary

import "strings"

const firstAssetsLimit = 5

// ParseQueryHints picks a category filter and row limit out of a chat
// message. Only the smartphone category and the "first ... assets" phrasing
// are recognised.
func ParseQueryHints(message string) Options {
	var opts Options
	lower := strings.ToLower(message)
	if strings.Contains(lower, "smartphone") {
		opts.Category = "Smartphone"
	}
	if strings.Contains(lower, "first") && strings.Contains(lower, "assets") {
		opts.Limit = firstAssetsLimit
	}
	return opts
}
