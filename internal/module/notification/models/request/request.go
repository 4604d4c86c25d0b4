package request

// PoisonedQueue is what lands on the poisoned_queue topic when a message cannot be handled.
type PoisonedQueue struct {
	TopicTarget string `json:"topic_target"`
	ErrorMsg    string `json:"error_msg"`
	Payload     []byte `json:"payload"`
}
