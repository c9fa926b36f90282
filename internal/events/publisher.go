package events

import (
	"encoding/json"
	"fmt"
	"time"

	"social-service/internal/models"

	"github.com/IBM/sarama"
)

// Event kinds published to the activity topic.
const (
	EventPostCreated = "post.created"
	EventChatMessage = "group_chat.message"
)

// Envelope is the wire shape of every activity event.
type Envelope struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Publisher fans activity out to downstream consumers. Publishing is
// best effort: services log failures and carry on.
type Publisher interface {
	PostCreated(post *models.Post) error
	ChatMessageSent(msg *models.GroupChatMessage) error
	Close() error
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaPublisher connects a synchronous producer for the activity topic.
func NewKafkaPublisher(brokers []string, topic string) (Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Partitioner = sarama.NewHashPartitioner
	config.Version = sarama.V2_0_0_0
	config.ClientID = "social-service"

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}

	return &kafkaPublisher{producer: producer, topic: topic}, nil
}

func (p *kafkaPublisher) publish(key string, event Envelope) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	return err
}

func (p *kafkaPublisher) PostCreated(post *models.Post) error {
	// Keyed by group so one group's activity stays ordered.
	return p.publish(fmt.Sprintf("group-%d", post.GroupID), Envelope{
		Type:      EventPostCreated,
		Timestamp: time.Now(),
		Payload:   post,
	})
}

func (p *kafkaPublisher) ChatMessageSent(msg *models.GroupChatMessage) error {
	return p.publish(fmt.Sprintf("group-%d", msg.GroupID), Envelope{
		Type:      EventChatMessage,
		Timestamp: time.Now(),
		Payload:   msg,
	})
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PostCreated(*models.Post) error                 { return nil }
func (NoopPublisher) ChatMessageSent(*models.GroupChatMessage) error { return nil }
func (NoopPublisher) Close() error                                   { return nil }
