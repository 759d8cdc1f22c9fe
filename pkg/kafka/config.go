package kafka

// Config holds Kafka connection parameters.
type Config struct {
	Brokers []string

	// BatchTimeoutMillis bounds how long the writer buffers before flushing.
	// Zero selects the package default.
	BatchTimeoutMillis int
}
