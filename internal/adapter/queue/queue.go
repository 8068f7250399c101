package queue

// MessageQueue abstracts the broker used for interpretation events.
// Subjects map to NATS subjects or RabbitMQ fanout exchanges depending
// on the configured driver.
type MessageQueue interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, handler func(data []byte) error) error
	Close() error
}
