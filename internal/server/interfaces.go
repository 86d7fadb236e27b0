package server

// Server is the lifecycle of the poster API process.
type Server interface {
	// RunServer serves HTTP and/or gRPC until a termination signal arrives.
	RunServer()

	// Shutdown stops every enabled transport, letting in-flight requests
	// finish.
	Shutdown()
}
