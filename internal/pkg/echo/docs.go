// Package echo implements the four streaming shapes of the echo service.
//
// ClientStream folds every inbound request into a single summarising
// response. ServerStream fans one request out into a fixed number of
// responses. BidiSync pairs each request with exactly one response, in
// order. BidiAsync is the interesting one: it decouples receiving,
// processing and sending onto independent goroutines joined by two bounded
// relay queues, so each side of the stream can progress at its own pace
// while a full queue pushes back on the faster side.
//
// All four shapes share the session lifecycle: a call reaches exactly one of
// the Closed, Cancelled or Errored terminal states, and the peer never
// observes a silently hung stream.
package echo
