package pkg

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"
)

// ReportEvent is published to the moderation topic whenever a report is
// filed, keyed by post id so reports against one post stay ordered.
type ReportEvent struct {
	ReportID   uint64 `json:"report_id"`
	PostID     uint64 `json:"post_id"`
	ReporterID uint64 `json:"reporter_id"`
	Reason     string `json:"reason"`
	Type       string `json:"type"`
	FiledAt    string `json:"filed_at"`
}

type ReportProducer struct {
	writer *kafka.Writer
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func NewReportProducer(cfg KafkaConfig) *ReportProducer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}
	return &ReportProducer{writer: w}
}

func (p *ReportProducer) Publish(ctx context.Context, ev ReportEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(ev.PostID, 10)),
		Value: value,
	})
}

func (p *ReportProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
