package events

// Envelope pairs an event payload with the partition key it is published under.
type Envelope struct {
	Key     string
	Payload any
}
