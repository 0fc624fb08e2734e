// Package server implements the gRPC surface of the echo service.
//
// The server exposes the four streaming endpoints of EchoService:
//
//  1. EchoClientStream receives a stream of requests and answers with a
//     single response summarising the count and content of what arrived.
//  2. EchoServerStream receives one request and answers with a fixed number
//     of numbered responses, stopping early if the client goes away.
//  3. EchoBidirectionalStreamSync answers each request with exactly one
//     response before reading the next, in strict order.
//  4. EchoBidirectionalStreamAsync decouples receiving, processing and
//     sending onto independent goroutines joined by bounded queues, so the
//     client can keep sending while earlier messages are still being
//     processed.
//
// Each call gets its own session tracked in a session store for the lifetime
// of the call. The store could be adapted to a persistent backend to observe
// in-flight calls across instances; in this demo it is in-memory only.
package server
