package store

import (
	"context"
	"iter"
	"os"
	"path"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/puzpuzpuz/xsync/v3"
)

// Memory is an in-process Client for local development and tests. It
// answers the same commands as Redis but persists nothing.
type Memory struct {
	data    *xsync.MapOf[string, string]
	started time.Time

	commands atomic.Int64
	hits     atomic.Int64
	misses   atomic.Int64
	peak     atomic.Int64
	closed   atomic.Bool
}

var _ Client = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		data:    xsync.NewMapOf[string, string](),
		started: time.Now(),
	}
}

// begin counts a command and fails it once the client is closed.
func (m *Memory) begin(op string) error {
	if m.closed.Load() {
		return wrap(op, ErrClosed)
	}
	m.commands.Add(1)
	return nil
}

func (m *Memory) Ping(_ context.Context) error {
	return m.begin("ping")
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	if err := m.begin("get"); err != nil {
		return "", err
	}
	v, ok := m.data.Load(key)
	if !ok {
		m.misses.Add(1)
		return "", ErrKeyNotFound
	}
	m.hits.Add(1)
	return v, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	if err := m.begin("set"); err != nil {
		return err
	}
	m.data.Store(key, value)
	m.trackPeak()
	return nil
}

func (m *Memory) Exists(_ context.Context, key string) (bool, error) {
	if err := m.begin("exists"); err != nil {
		return false, err
	}
	_, ok := m.data.Load(key)
	return ok, nil
}

func (m *Memory) Delete(_ context.Context, key string) (int64, error) {
	if err := m.begin("del"); err != nil {
		return 0, err
	}
	if _, ok := m.data.LoadAndDelete(key); ok {
		return 1, nil
	}
	return 0, nil
}

func (m *Memory) DBSize(_ context.Context) (int64, error) {
	if err := m.begin("dbsize"); err != nil {
		return 0, err
	}
	return int64(m.data.Size()), nil
}

// Scan matches keys with path.Match, which covers the *, ? and [...] forms
// of Redis glob patterns.
func (m *Memory) Scan(ctx context.Context, pattern string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if err := m.begin("scan"); err != nil {
			yield("", err)
			return
		}
		if _, err := path.Match(pattern, ""); err != nil {
			yield("", wrap("scan", err))
			return
		}
		m.data.Range(func(key, _ string) bool {
			if ctx.Err() != nil {
				return false
			}
			if ok, _ := path.Match(pattern, key); !ok {
				return true
			}
			return yield(key, nil)
		})
		if err := ctx.Err(); err != nil {
			yield("", wrap("scan", err))
		}
	}
}

func (m *Memory) Info(_ context.Context, section string) (Info, error) {
	if err := m.begin("info"); err != nil {
		return nil, err
	}

	sections := map[string]func() Info{
		"server":   m.serverInfo,
		"clients":  func() Info { return Info{"connected_clients": int64(1)} },
		"memory":   m.memoryInfo,
		"stats":    m.statsInfo,
		"keyspace": m.keyspaceInfo,
	}

	section = strings.ToLower(section)
	switch section {
	case "", "default", "all", "everything":
		info := Info{}
		for _, build := range sections {
			for k, v := range build() {
				info[k] = v
			}
		}
		return info, nil
	}
	if build, ok := sections[section]; ok {
		return build(), nil
	}
	return Info{}, nil
}

func (m *Memory) SetMany(_ context.Context, entries map[string]string) error {
	if err := m.begin("pipeline"); err != nil {
		return err
	}
	for k, v := range entries {
		m.data.Store(k, v)
	}
	m.trackPeak()
	return nil
}

func (m *Memory) Close() error {
	m.closed.Store(true)
	return nil
}

func (m *Memory) usedMemory() int64 {
	var used int64
	m.data.Range(func(k, v string) bool {
		used += int64(len(k) + len(v))
		return true
	})
	return used
}

func (m *Memory) trackPeak() {
	used := m.usedMemory()
	for {
		cur := m.peak.Load()
		if used <= cur || m.peak.CompareAndSwap(cur, used) {
			return
		}
	}
}

func (m *Memory) serverInfo() Info {
	uptime := int64(time.Since(m.started).Seconds())
	return Info{
		"redis_version":     "hexkv-memory",
		"redis_mode":        "standalone",
		"process_id":        int64(os.Getpid()),
		"uptime_in_seconds": uptime,
		"uptime_in_days":    uptime / 86400,
		"server_time_usec":  time.Now().UnixMicro(),
	}
}

func (m *Memory) memoryInfo() Info {
	used := m.usedMemory()
	peak := max(m.peak.Load(), used)
	return Info{
		"used_memory":            used,
		"used_memory_human":      humanize.IBytes(uint64(used)),
		"used_memory_peak":       peak,
		"used_memory_peak_human": humanize.IBytes(uint64(peak)),
		"maxmemory":              int64(0),
		"maxmemory_human":        humanize.IBytes(0),
		"maxmemory_policy":       "noeviction",
	}
}

func (m *Memory) statsInfo() Info {
	return Info{
		"total_connections_received": int64(1),
		"total_commands_processed":   m.commands.Load(),
		"keyspace_hits":              m.hits.Load(),
		"keyspace_misses":            m.misses.Load(),
	}
}

func (m *Memory) keyspaceInfo() Info {
	n := m.data.Size()
	if n == 0 {
		return Info{}
	}
	return Info{"db0": Info{"keys": int64(n), "expires": int64(0), "avg_ttl": int64(0)}}
}
