package sqs

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"weather-api/pkg/log"
)

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, msg types.Message) error

// HandleMessage implements the Handler interface for HandlerFunc
func (f HandlerFunc) HandleMessage(ctx context.Context, msg types.Message) error {
	return f(ctx, msg)
}

// Handler processes one message. A nil error deletes the message from the queue;
// any error leaves it for redelivery.
type Handler interface {
	HandleMessage(ctx context.Context, msg types.Message) error
}

// HealthStatus is the state reported by Worker.HealthCheck.
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// WorkerHealth is a snapshot of a worker.
type WorkerHealth struct {
	Status  HealthStatus
	Details map[string]string
}

// WorkerConfig defines the configuration options for a Worker
type WorkerConfig struct {
	MaxNumberOfMessages int32
	WaitTimeSeconds     int32
	PoolSize            int
	// ErrorBackoff is the pause after a failed receive.
	ErrorBackoff time.Duration
}

// Worker polls and processes messages from a SQS queue
type Worker struct {
	sqsClient           SQSClient
	queueName           string
	queueURL            string
	maxNumberOfMessages int32
	waitTimeSeconds     int32
	poolSize            int
	errorBackoff        time.Duration
	handler             Handler

	running   atomic.Bool
	processed atomic.Int64
	failed    atomic.Int64
	mu        sync.Mutex
	lastError string
}

// NewWorker creates and returns a new Worker.
//
// Zero config fields default to 10 messages, 20 s long polling, one poller and
// a 5 s pause after a failed receive.
func NewWorker(ctx context.Context, sqsClient SQSClient, queueName string, handler Handler, config *WorkerConfig) (*Worker, error) {
	cfg := WorkerConfig{MaxNumberOfMessages: 10, WaitTimeSeconds: 20, PoolSize: 1, ErrorBackoff: 5 * time.Second}
	if config != nil {
		if config.MaxNumberOfMessages != 0 {
			cfg.MaxNumberOfMessages = config.MaxNumberOfMessages
		}
		if config.WaitTimeSeconds != 0 {
			cfg.WaitTimeSeconds = config.WaitTimeSeconds
		}
		if config.PoolSize != 0 {
			cfg.PoolSize = config.PoolSize
		}
		if config.ErrorBackoff != 0 {
			cfg.ErrorBackoff = config.ErrorBackoff
		}
	}

	if cfg.MaxNumberOfMessages < 1 || cfg.MaxNumberOfMessages > 10 {
		return nil, errors.New("maxNumberOfMessages must be between 1 and 10")
	}
	if cfg.WaitTimeSeconds < 1 || cfg.WaitTimeSeconds > 20 {
		return nil, errors.New("waitTimeSeconds must be between 1 and 20")
	}
	if cfg.PoolSize < 1 {
		return nil, errors.New("poolSize must be greater than 0")
	}

	url, err := queueURL(ctx, sqsClient, queueName)
	if err != nil {
		return nil, fmt.Errorf("unable to get queue URL: %w", err)
	}

	return &Worker{
		sqsClient:           sqsClient,
		queueName:           queueName,
		queueURL:            url,
		maxNumberOfMessages: cfg.MaxNumberOfMessages,
		waitTimeSeconds:     cfg.WaitTimeSeconds,
		poolSize:            cfg.PoolSize,
		errorBackoff:        cfg.ErrorBackoff,
		handler:             handler,
	}, nil
}

// Start polls with PoolSize goroutines until ctx is cancelled, then returns.
func (w *Worker) Start(ctx context.Context) {
	w.running.Store(true)
	defer w.running.Store(false)

	var wg sync.WaitGroup
	for i := 0; i < w.poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.pollMessages(ctx)
		}()
	}
	wg.Wait()
}

func (w *Worker) pollMessages(ctx context.Context) {
	for ctx.Err() == nil {
		output, err := w.sqsClient.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            &w.queueURL,
			MaxNumberOfMessages: w.maxNumberOfMessages,
			WaitTimeSeconds:     w.waitTimeSeconds,
		})
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.recordError(err)
			log.Errorw("failed to receive messages", "queue", w.queueName, "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(w.errorBackoff):
			}
			continue
		}

		var wg sync.WaitGroup
		for _, msg := range output.Messages {
			wg.Add(1)
			go func(msg types.Message) {
				defer wg.Done()
				w.handleMessage(ctx, msg)
			}(msg)
		}
		wg.Wait()
	}
}

func (w *Worker) handleMessage(ctx context.Context, msg types.Message) {
	if err := w.handler.HandleMessage(ctx, msg); err != nil {
		w.failed.Add(1)
		w.recordError(err)
		log.Errorw("error processing message", "queue", w.queueName, "message_id", safeMessageID(msg), "error", err)
		return
	}
	w.processed.Add(1)

	if _, err := w.sqsClient.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      &w.queueURL,
		ReceiptHandle: msg.ReceiptHandle,
	}); err != nil {
		w.recordError(err)
		log.Errorw("failed to delete message", "queue", w.queueName, "message_id", safeMessageID(msg), "error", err)
		return
	}
	log.Debugw("deleted message", "queue", w.queueName, "message_id", safeMessageID(msg))
}

func (w *Worker) recordError(err error) {
	w.mu.Lock()
	w.lastError = err.Error()
	w.mu.Unlock()
}

// HealthCheck reports UP while Start is running.
func (w *Worker) HealthCheck() WorkerHealth {
	w.mu.Lock()
	lastError := w.lastError
	w.mu.Unlock()

	health := WorkerHealth{
		Status: StatusDown,
		Details: map[string]string{
			"queue":     w.queueName,
			"processed": strconv.FormatInt(w.processed.Load(), 10),
			"failed":    strconv.FormatInt(w.failed.Load(), 10),
		},
	}
	if lastError != "" {
		health.Details["last_error"] = lastError
	}
	if w.running.Load() {
		health.Status = StatusUp
	}
	return health
}

func safeMessageID(msg types.Message) string {
	if msg.MessageId == nil {
		return ""
	}
	return *msg.MessageId
}
