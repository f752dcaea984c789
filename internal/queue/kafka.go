package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"
)

// KafkaEnqueuer produces task records to a kafka topic. Production is
// asynchronous and the caller never learns the outcome beyond the log.
type KafkaEnqueuer struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

func NewKafkaEnqueuer(brokers []string, topic string, logger *slog.Logger) (*KafkaEnqueuer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &KafkaEnqueuer{client: client, topic: topic, logger: logger}, nil
}

func (e *KafkaEnqueuer) Enqueue(ctx context.Context, task Task) error {
	value, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal task: %w", err)
	}
	record := &kgo.Record{
		Topic: e.topic,
		Key:   []byte(task.Name),
		Value: value,
	}
	e.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			e.logger.Error("task produce failed", "task", task.Name, "job", task.JobName, "error", err)
		}
	})
	return nil
}

func (e *KafkaEnqueuer) Close() {
	e.client.Close()
}

// KafkaWorker consumes the task topic and dispatches tasks to registered
// handlers. Failed tasks are logged and not retried.
type KafkaWorker struct {
	client   *kgo.Client
	handlers map[string]Handler
	logger   *slog.Logger
}

func NewKafkaWorker(brokers []string, topic, group string, logger *slog.Logger) (*KafkaWorker, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ConsumeTopics(topic),
		kgo.ConsumerGroup(group),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka consumer: %w", err)
	}
	return &KafkaWorker{
		client:   client,
		handlers: make(map[string]Handler),
		logger:   logger,
	}, nil
}

// Register binds a handler to a task name. Not safe to call after Run starts.
func (w *KafkaWorker) Register(name string, handler Handler) {
	w.handlers[name] = handler
}

func (w *KafkaWorker) Run(ctx context.Context) error {
	defer w.client.Close()
	for {
		fetches := w.client.PollFetches(ctx)
		if fetches.IsClientClosed() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		fetches.EachError(func(topic string, partition int32, err error) {
			w.logger.Error("task fetch error", "topic", topic, "partition", partition, "error", err)
		})
		fetches.EachRecord(func(record *kgo.Record) {
			var task Task
			if err := json.Unmarshal(record.Value, &task); err != nil {
				w.logger.Error("malformed task record", "error", err)
				return
			}
			handler, ok := w.handlers[task.Name]
			if !ok {
				w.logger.Warn("no handler for task", "task", task.Name, "job", task.JobName)
				return
			}
			if err := handler(ctx, task); err != nil {
				w.logger.Error("task failed", "task", task.Name, "job", task.JobName, "error", err)
			}
		})
	}
}
