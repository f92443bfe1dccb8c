package server

// Server is one runnable transport, or the group of them.
type Server interface {
	// RunServer blocks until the transport fails or is shut down.
	RunServer() error
	Shutdown()
}
