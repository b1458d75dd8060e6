package engine

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
)

func storeErrors(op string) *metrics.Counter {
	return metrics.GetOrCreateCounter(fmt.Sprintf(`hexkv_store_errors_total{op=%q}`, op))
}

var deleteMismatches = metrics.NewCounter("hexkv_delete_mismatch_total")
