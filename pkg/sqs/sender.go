package sqs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// maxBatchSize is the SQS limit for SendMessageBatch entries.
const maxBatchSize = 10

// BatchMessage represents a message to be sent in batch
type BatchMessage struct {
	MessageID string `json:"messageId"`
	Body      any    `json:"body"`
}

// BatchResult lists message ids by outcome.
type BatchResult struct {
	Successful []string `json:"successful"`
	Failed     []string `json:"failed"`
}

// Sender serializes bodies to JSON and sends them to SQS queues.
type Sender struct {
	sqsClient SQSClient
	urls      sync.Map
}

// NewSender creates and returns a new Sender
func NewSender(sqsClient SQSClient) *Sender {
	return &Sender{
		sqsClient: sqsClient,
	}
}

// SendMessage serializes body to JSON and sends it to queueName.
func (s *Sender) SendMessage(ctx context.Context, queueName string, body any) error {
	url, err := s.resolve(ctx, queueName)
	if err != nil {
		return err
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to serialize message body to JSON: %w", err)
	}

	messageBody := string(jsonBody)
	if _, err = s.sqsClient.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    &url,
		MessageBody: &messageBody,
	}); err != nil {
		return fmt.Errorf("failed to send message to queue %s: %w", queueName, err)
	}
	return nil
}

// SendMessageBatch sends messages in groups of ten, in parallel.
// A group that fails as a whole marks every one of its ids as failed.
func (s *Sender) SendMessageBatch(ctx context.Context, queueName string, messages []BatchMessage) (*BatchResult, error) {
	final := &BatchResult{Successful: []string{}, Failed: []string{}}
	if len(messages) == 0 {
		return final, nil
	}

	url, err := s.resolve(ctx, queueName)
	if err != nil {
		return nil, err
	}

	var batches [][]BatchMessage
	for i := 0; i < len(messages); i += maxBatchSize {
		batches = append(batches, messages[i:min(i+maxBatchSize, len(messages))])
	}

	results := make(chan *BatchResult, len(batches))
	var wg sync.WaitGroup
	for _, batch := range batches {
		wg.Add(1)
		go func(batch []BatchMessage) {
			defer wg.Done()
			result, err := s.sendBatch(ctx, url, batch)
			if err != nil {
				result = &BatchResult{Failed: extractMessageIDs(batch)}
			}
			results <- result
		}(batch)
	}
	wg.Wait()
	close(results)

	for result := range results {
		final.Successful = append(final.Successful, result.Successful...)
		final.Failed = append(final.Failed, result.Failed...)
	}
	return final, nil
}

func (s *Sender) sendBatch(ctx context.Context, url string, messages []BatchMessage) (*BatchResult, error) {
	result := &BatchResult{}
	entries := make([]types.SendMessageBatchRequestEntry, 0, len(messages))

	for _, msg := range messages {
		jsonBody, err := json.Marshal(msg.Body)
		if err != nil {
			result.Failed = append(result.Failed, msg.MessageID)
			continue
		}
		id, body := msg.MessageID, string(jsonBody)
		entries = append(entries, types.SendMessageBatchRequestEntry{
			Id:          &id,
			MessageBody: &body,
		})
	}

	if len(entries) == 0 {
		return result, nil
	}

	output, err := s.sqsClient.SendMessageBatch(ctx, &sqs.SendMessageBatchInput{
		QueueUrl: &url,
		Entries:  entries,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send message batch: %w", err)
	}

	for _, success := range output.Successful {
		if success.Id != nil {
			result.Successful = append(result.Successful, *success.Id)
		}
	}
	for _, failed := range output.Failed {
		if failed.Id != nil {
			result.Failed = append(result.Failed, *failed.Id)
		}
	}
	return result, nil
}

func (s *Sender) resolve(ctx context.Context, queueName string) (string, error) {
	if cached, ok := s.urls.Load(queueName); ok {
		return cached.(string), nil
	}
	url, err := queueURL(ctx, s.sqsClient, queueName)
	if err != nil {
		return "", fmt.Errorf("failed to get queue URL for %s: %w", queueName, err)
	}
	s.urls.Store(queueName, url)
	return url, nil
}

func extractMessageIDs(messages []BatchMessage) []string {
	ids := make([]string, len(messages))
	for i, msg := range messages {
		ids[i] = msg.MessageID
	}
	return ids
}
