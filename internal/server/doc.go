// Package server runs the portal's transports side by side.
//
// The HTTP server carries the portal and owner API; the optional gRPC server
// only answers health checks. A failure of either transport, or a
// termination signal, stops both. The gRPC health status is flipped to
// NOT_SERVING before connections are drained.
package server
