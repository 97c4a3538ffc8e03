package quantum

import (
	"sort"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

// Counts maps a measured bitstring to the number of shots that produced it.
type Counts map[string]int

// Total returns the number of shots recorded.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Keys returns the observed bitstrings in ascending order.
func (c Counts) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Top returns the most frequent bitstring; ties go to the smallest bitstring.
func (c Counts) Top() (string, int) {
	best, bestN := "", -1
	for _, k := range c.Keys() {
		if c[k] > bestN {
			best, bestN = k, c[k]
		}
	}
	if bestN < 0 {
		return "", 0
	}
	return best, bestN
}

// Probability returns the observed frequency of bits.
func (c Counts) Probability(bits string) float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(c[bits]) / float64(total)
}

func (c Counts) String() string {
	st, err := jsonIter.Marshal(c)
	if err != nil {
		zap.L().Error("failed to marshal counts", zap.Error(err))
		return ""
	}
	return string(st)
}
