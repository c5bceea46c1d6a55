package events

import (
	"encoding/json"
	"log"
	"time"

	"github.com/IBM/sarama"

	"github.com/221FA04614/AuraShop-main/model"
)

type KafkaPublisher struct {
	producer sarama.SyncProducer
}

func NewKafkaPublisher(broker string) (*KafkaPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	var producer sarama.SyncProducer
	var err error
	for i := 1; i <= 5; i++ {
		producer, err = sarama.NewSyncProducer([]string{broker}, config)
		if err == nil {
			log.Println("Kafka producer initialized")
			return &KafkaPublisher{producer: producer}, nil
		}
		log.Printf("Waiting for Kafka... (%d/5) Error: %v", i, err)
		time.Sleep(3 * time.Second)
	}
	return nil, err
}

func (p *KafkaPublisher) OrderCreated(o *model.Order) {
	p.publish("order.created", map[string]interface{}{
		"order_id":       o.ID,
		"user_id":        o.UserID,
		"total_amount":   o.TotalAmount,
		"payment_status": o.PaymentStatus,
		"session_id":     o.StripeSessionID,
		"created_at":     o.CreatedAt,
	})
}

func (p *KafkaPublisher) ProductCreated(prod *model.Product) {
	p.publish("product.created", prod)
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

func (p *KafkaPublisher) publish(topic string, event interface{}) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal event: %v", err)
		return
	}

	msg := &sarama.ProducerMessage{
		Topic:     topic,
		Value:     sarama.ByteEncoder(data),
		Timestamp: time.Now(),
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		log.Printf("Failed to send Kafka message: %v", err)
		return
	}
	log.Printf("Published %s: %s", topic, string(data))
}
