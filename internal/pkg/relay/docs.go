// Package relay implements the bounded hand-off queues joining the goroutines
// of an asynchronous stream pipeline.
//
// Each queue has exactly one producer and one consumer. The producer signals
// end-of-stream by closing the queue; the consumer signals that it has gone
// away by abandoning it. Both signals are one-way and idempotent, so a
// pipeline stage that dies never leaves its counterpart blocked forever.
package relay
