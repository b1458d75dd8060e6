package engine

import (
	"context"
	"math"
	"strconv"

	"github.com/himakhaitan/hexkv/store"
	"go.uber.org/zap"
)

// MemoryStats is the memory section of INFO reduced to a fixed field set.
// Fields the store does not report are nil.
type MemoryStats struct {
	UsedMemory          any   `json:"used_memory"`
	UsedMemoryHuman     any   `json:"used_memory_human"`
	UsedMemoryPeak      any   `json:"used_memory_peak"`
	UsedMemoryPeakHuman any   `json:"used_memory_peak_human"`
	UsedMemoryRSS       any   `json:"used_memory_rss"`
	UsedMemoryRSSHuman  any   `json:"used_memory_rss_human"`
	MaxMemory           any   `json:"maxmemory"`
	MaxMemoryHuman      any   `json:"maxmemory_human"`
	MaxMemoryPolicy     any   `json:"maxmemory_policy"`
	TotalKeys           int64 `json:"total_keys"`
}

// OperationStats is the stats section of INFO reduced to a fixed field set.
type OperationStats struct {
	TotalConnectionsReceived any     `json:"total_connections_received"`
	TotalCommandsProcessed   any     `json:"total_commands_processed"`
	InstantaneousOpsPerSec   any     `json:"instantaneous_ops_per_sec"`
	TotalNetInputBytes       any     `json:"total_net_input_bytes"`
	TotalNetOutputBytes      any     `json:"total_net_output_bytes"`
	KeyspaceHits             any     `json:"keyspace_hits"`
	KeyspaceMisses           any     `json:"keyspace_misses"`
	HitRate                  float64 `json:"hit_rate"`
}

type ServerStats struct {
	RedisVersion     any `json:"redis_version"`
	RedisMode        any `json:"redis_mode"`
	OS               any `json:"os"`
	UptimeInSeconds  any `json:"uptime_in_seconds"`
	UptimeInDays     any `json:"uptime_in_days"`
	ConnectedClients any `json:"connected_clients"`
}

type KeyStats struct {
	TotalKeys   int64 `json:"total_keys"`
	ScannedKeys int64 `json:"scanned_keys"`
}

// Snapshot is the combined statistics document.
type Snapshot struct {
	Server     ServerStats    `json:"server"`
	Memory     MemoryStats    `json:"memory"`
	Keys       KeyStats       `json:"keys"`
	Operations OperationStats `json:"operations"`
	// Timestamp is the store clock in microseconds, or its uptime in
	// seconds when the store does not report a clock.
	Timestamp any `json:"timestamp"`
}

// KeyCount returns the number of keys in the selected database.
func (g *Gateway) KeyCount(ctx context.Context) (int64, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	n, err := g.client.DBSize(ctx)
	if err != nil {
		return 0, g.unavailable("dbsize", err)
	}
	return n, nil
}

// PatternCount counts keys matching a glob pattern with a cursor scan.
// An empty pattern matches everything.
func (g *Gateway) PatternCount(ctx context.Context, pattern string) (int64, error) {
	n, err := g.scanCount(ctx, pattern)
	if err != nil {
		return 0, g.unavailable("scan", err)
	}
	return n, nil
}

// scanCount consumes the scan without holding the keys. SCAN pages are
// bounded by the client socket timeout, not by a single deadline.
func (g *Gateway) scanCount(ctx context.Context, pattern string) (int64, error) {
	if pattern == "" {
		pattern = "*"
	}
	var n int64
	for _, err := range g.client.Scan(ctx, pattern) {
		if err != nil {
			return 0, err
		}
		n++
	}
	return n, nil
}

// ServerInfo passes the store diagnostics through, optionally for a single section.
func (g *Gateway) ServerInfo(ctx context.Context, section string) (store.Info, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	info, err := g.client.Info(ctx, section)
	if err != nil {
		return nil, g.unavailable("info", err)
	}
	return info, nil
}

func (g *Gateway) MemoryStats(ctx context.Context) (MemoryStats, error) {
	info, err := g.ServerInfo(ctx, "memory")
	if err != nil {
		return MemoryStats{}, err
	}
	total, err := g.KeyCount(ctx)
	if err != nil {
		return MemoryStats{}, err
	}
	return memoryStats(info, total), nil
}

func (g *Gateway) OperationStats(ctx context.Context) (OperationStats, error) {
	info, err := g.ServerInfo(ctx, "stats")
	if err != nil {
		return OperationStats{}, err
	}
	return operationStats(info), nil
}

// AllStats gathers server, memory, key and operation statistics in a few
// sequential round trips. Only the scan-based key count may degrade: when
// it fails, it falls back to DBSIZE.
func (g *Gateway) AllStats(ctx context.Context) (Snapshot, error) {
	server, err := g.ServerInfo(ctx, "")
	if err != nil {
		return Snapshot{}, err
	}
	mem, err := g.ServerInfo(ctx, "memory")
	if err != nil {
		return Snapshot{}, err
	}
	ops, err := g.ServerInfo(ctx, "stats")
	if err != nil {
		return Snapshot{}, err
	}
	total, err := g.KeyCount(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	scanned, err := g.scanCount(ctx, "*")
	if err != nil {
		g.logger.Warn("Key scan failed, using dbsize", zap.Int64("total_keys", total), zap.Error(err))
		scanned = total
	}

	timestamp, ok := server["server_time_usec"]
	if !ok {
		timestamp = server["uptime_in_seconds"]
	}

	return Snapshot{
		Server: ServerStats{
			RedisVersion:     server["redis_version"],
			RedisMode:        server["redis_mode"],
			OS:               server["os"],
			UptimeInSeconds:  server["uptime_in_seconds"],
			UptimeInDays:     server["uptime_in_days"],
			ConnectedClients: server["connected_clients"],
		},
		Memory:     memoryStats(mem, total),
		Keys:       KeyStats{TotalKeys: total, ScannedKeys: scanned},
		Operations: operationStats(ops),
		Timestamp:  timestamp,
	}, nil
}

func memoryStats(info store.Info, total int64) MemoryStats {
	return MemoryStats{
		UsedMemory:          info["used_memory"],
		UsedMemoryHuman:     info["used_memory_human"],
		UsedMemoryPeak:      info["used_memory_peak"],
		UsedMemoryPeakHuman: info["used_memory_peak_human"],
		UsedMemoryRSS:       info["used_memory_rss"],
		UsedMemoryRSSHuman:  info["used_memory_rss_human"],
		MaxMemory:           info["maxmemory"],
		MaxMemoryHuman:      info["maxmemory_human"],
		MaxMemoryPolicy:     info["maxmemory_policy"],
		TotalKeys:           total,
	}
}

func operationStats(info store.Info) OperationStats {
	return OperationStats{
		TotalConnectionsReceived: info["total_connections_received"],
		TotalCommandsProcessed:   info["total_commands_processed"],
		InstantaneousOpsPerSec:   info["instantaneous_ops_per_sec"],
		TotalNetInputBytes:       info["total_net_input_bytes"],
		TotalNetOutputBytes:      info["total_net_output_bytes"],
		KeyspaceHits:             info["keyspace_hits"],
		KeyspaceMisses:           info["keyspace_misses"],
		HitRate:                  HitRate(asInt64(info["keyspace_hits"]), asInt64(info["keyspace_misses"])),
	}
}

// HitRate is hits as a percentage of all lookups, rounded to two decimals.
// With no lookups at all it is 0.
func HitRate(hits, misses int64) float64 {
	lookups := max(1, hits+misses)
	return math.Round(float64(hits)/float64(lookups)*100*100) / 100
}

func asInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	case string:
		i, _ := strconv.ParseInt(n, 10, 64)
		return i
	default:
		return 0
	}
}
