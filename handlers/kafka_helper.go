package handlers

import (
	"fmt"

	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/avro/schema"
	"github.com/companieshouse/chs.go/kafka/producer"
	"github.com/nordlead/refunds.api.nordlead.dk/config"
)

// ProducerTopic is the topic to which the refund processed kafka message is sent
const ProducerTopic = "refund-processed"

// ProducerSchemaName is the schema which will be used to send the refund processed kafka message with
const ProducerSchemaName = "refund-processed"

// refundProcessed represents the avro schema for the refund processed message
type refundProcessed struct {
	RefundID string `avro:"refund_id"`
}

// produceRefundMessage handles creating a producer, marshalling the refund id into the correct avro schema and sending
// the message to the topic defined in ProducerTopic
func produceRefundMessage(refundID string) error {
	cfg, err := config.Get()
	if err != nil {
		err = fmt.Errorf("error getting config for kafka message production: [%v]", err)
		return err
	}

	// Get a producer
	kafkaProducer, err := producer.New(&producer.Config{Acks: &producer.WaitForAll, BrokerAddrs: cfg.BrokerAddr})
	if err != nil {
		err = fmt.Errorf("error creating kafka producer: [%v]", err)
		return err
	}
	refundProcessedSchema, err := schema.Get(cfg.SchemaRegistryURL, ProducerSchemaName)
	if err != nil {
		err = fmt.Errorf("error getting schema from schema registry: [%v]", err)
		return err
	}
	producerSchema := &avro.Schema{
		Definition: refundProcessedSchema,
	}

	// Prepare a message with the avro schema
	message, err := prepareKafkaMessage(refundID, *producerSchema)
	if err != nil {
		err = fmt.Errorf("error preparing kafka message with schema: [%v]", err)
		return err
	}

	// Send the message
	partition, offset, err := kafkaProducer.Send(message)
	if err != nil {
		err = fmt.Errorf("failed to send message in partition: %d at offset %d", partition, offset)
		return err
	}
	return nil
}

// prepareKafkaMessage is pulled out of produceRefundMessage() to allow unit testing of non-kafka portion of code
func prepareKafkaMessage(refundID string, refundProcessedSchema avro.Schema) (*producer.Message, error) {
	refundProcessedMessage := refundProcessed{RefundID: refundID}

	messageBytes, err := refundProcessedSchema.Marshal(refundProcessedMessage)
	if err != nil {
		err = fmt.Errorf("error marshalling refund processed message: [%v]", err)
		return nil, err
	}

	producerMessage := &producer.Message{
		Value: messageBytes,
		Topic: ProducerTopic,
	}
	return producerMessage, nil
}
