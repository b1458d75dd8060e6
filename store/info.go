package store

import (
	"bufio"
	"math"
	"strconv"
	"strings"
)

// ParseInfo turns a raw INFO reply into a flat mapping. Section headers are
// dropped. Any value made of k=v pairs, such as "db0:keys=1,expires=0" or
// "errorstat_ERR:count=5", becomes a nested mapping.
func ParseInfo(raw string) Info {
	info := Info{}
	sc := bufio.NewScanner(strings.NewReader(raw))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if strings.Contains(value, "=") {
			info[key] = parseInfoDict(value)
			continue
		}
		info[key] = parseInfoValue(value)
	}
	return info
}

func parseInfoDict(value string) Info {
	sub := Info{}
	for _, pair := range strings.Split(value, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		sub[k] = parseInfoValue(v)
	}
	return sub
}

func parseInfoValue(v string) any {
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n
	}
	// version strings like 7.2.4 stay strings, and so do nan and inf,
	// which JSON cannot carry
	if strings.Count(v, ".") <= 1 {
		if f, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
	}
	return v
}
