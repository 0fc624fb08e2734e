// Package bench measures latency and throughput of the echo service.
//
// Each call shape is benchmarked in turn: the runner opens a configurable
// number of concurrent streams, drives each with a fixed number of messages
// of a fixed payload size, and records the duration of every stream. The
// aggregated result reports request and response throughput alongside an
// avg/min/max/p95 latency summary.
package bench
