package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleInfo = "# Server\r\n" +
	"redis_version:7.2.4\r\n" +
	"redis_mode:standalone\r\n" +
	"uptime_in_seconds:3600\r\n" +
	"server_time_usec:1700000000123456\r\n" +
	"\r\n" +
	"# Memory\r\n" +
	"used_memory:1048576\r\n" +
	"used_memory_human:1.00M\r\n" +
	"mem_fragmentation_ratio:1.25\r\n" +
	"maxmemory_policy:noeviction\r\n" +
	"\r\n" +
	"# Commandstats\r\n" +
	"cmdstat_get:calls=12,usec=40,usec_per_call=3.33\r\n" +
	"\r\n" +
	"# Errorstats\r\n" +
	"errorstat_ERR:count=5\r\n" +
	"\r\n" +
	"# Keyspace\r\n" +
	"db0:keys=3,expires=0,avg_ttl=0\r\n"

func TestParseInfo(t *testing.T) {
	info := ParseInfo(sampleInfo)

	assert.Equal(t, "7.2.4", info["redis_version"])
	assert.Equal(t, "standalone", info["redis_mode"])
	assert.Equal(t, int64(3600), info["uptime_in_seconds"])
	assert.Equal(t, int64(1700000000123456), info["server_time_usec"])
	assert.Equal(t, int64(1048576), info["used_memory"])
	assert.Equal(t, "1.00M", info["used_memory_human"])
	assert.Equal(t, 1.25, info["mem_fragmentation_ratio"])
	assert.Equal(t, "noeviction", info["maxmemory_policy"])

	assert.Equal(t, Info{"calls": int64(12), "usec": int64(40), "usec_per_call": 3.33}, info["cmdstat_get"])
	assert.Equal(t, Info{"keys": int64(3), "expires": int64(0), "avg_ttl": int64(0)}, info["db0"])

	assert.Equal(t, Info{"count": int64(5)}, info["errorstat_ERR"])

	_, hasHeader := info["# Server"]
	assert.False(t, hasHeader)
}

func TestParseInfo_Empty(t *testing.T) {
	assert.Empty(t, ParseInfo(""))
	assert.Empty(t, ParseInfo("# Keyspace\r\n"))
}

func TestParseInfo_NonFiniteFloats(t *testing.T) {
	info := ParseInfo("# Memory\r\n" +
		"allocator_frag_ratio:nan\r\n" +
		"allocator_rss_ratio:inf\r\n" +
		"rss_overhead_ratio:-inf\r\n" +
		"mem_fragmentation_ratio:1.50\r\n")

	assert.Equal(t, "nan", info["allocator_frag_ratio"])
	assert.Equal(t, "inf", info["allocator_rss_ratio"])
	assert.Equal(t, "-inf", info["rss_overhead_ratio"])
	assert.Equal(t, 1.5, info["mem_fragmentation_ratio"])
}
