package dto

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	EventID   string      `json:"event_id"`
	Data      interface{} `json:"data"`
}
