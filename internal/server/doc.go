// Package server runs the poster API transports: the chi HTTP router and the
// gRPC PosterApp service. Both stop gracefully on SIGINT, SIGTERM or SIGQUIT.
package server
