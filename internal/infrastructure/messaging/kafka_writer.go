package messaging

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

const defaultRunsTopic = "warehouse.runs"

var ErrMissingKafkaBrokers = errors.New("missing KAFKA_BROKERS")

// NewRunsKafkaWriter builds the writer for the run-completion topic from
// environment variables:
//   - KAFKA_BROKERS (comma separated; required)
//   - WAREHOUSE_RUNS_TOPIC (default: warehouse.runs)
//
// The notifier is optional wiring; callers treat ErrMissingKafkaBrokers as
// "not configured", not as a startup failure.
func NewRunsKafkaWriter() (*kafka.Writer, error) {
	brokers := parseCSV(getenvDefault("KAFKA_BROKERS", ""))
	if len(brokers) == 0 {
		return nil, ErrMissingKafkaBrokers
	}
	topic := getenvDefault("WAREHOUSE_RUNS_TOPIC", defaultRunsTopic)

	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
	}, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
