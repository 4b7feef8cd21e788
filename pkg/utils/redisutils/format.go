package redisutils

import (
	"strconv"
)

// FormatRank formats a pagerank value into a string ready to be stored in Redis.
func FormatRank(rank float64) string {
	return strconv.FormatFloat(rank, 'f', -1, 64)
}

// ParseRank parses a string back to a pagerank value.
func ParseRank(strRank string) (float64, error) {
	return strconv.ParseFloat(strRank, 64)
}
