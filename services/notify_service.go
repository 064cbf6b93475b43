package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"docuvault/utils"
)

// FilePayload is one entry of the wire format both pipelines accept:
// {"files": [{"FILE_ID": 1, "FILE_TYPE": "pdf"}]}.
type FilePayload struct {
	FileID   int64  `json:"FILE_ID"`
	FileType string `json:"FILE_TYPE"`
}

type notifyPayload struct {
	Files []FilePayload `json:"files"`
}

// NotifyService talks to the external transform and classification
// pipelines. New-file notifications run on a bounded worker pool and
// never surface failures; classification submissions are synchronous
// because the user asked for them.
type NotifyService struct {
	extractorURL  string
	classifierURL string
	client        *http.Client

	jobs chan notifyPayload
	wg   sync.WaitGroup

	closeOnce sync.Once
}

func NewNotifyService(extractorURL, classifierURL string, timeout time.Duration, workers int) *NotifyService {
	if workers <= 0 {
		workers = 1
	}
	s := &NotifyService{
		extractorURL:  extractorURL,
		classifierURL: classifierURL,
		client:        &http.Client{Timeout: timeout},
		jobs:          make(chan notifyPayload, 64),
	}
	for i := 0; i < workers; i++ {
		s.wg.Add(1)
		go s.worker()
	}
	return s
}

// NotifyNewFile queues a best-effort extractor notification. It never
// blocks the caller: when the queue is full the notification is dropped
// with a warning, matching the single best-effort delivery contract.
func (s *NotifyService) NotifyNewFile(fileID int64, fileType string) {
	payload := notifyPayload{Files: []FilePayload{{FileID: fileID, FileType: fileType}}}
	select {
	case s.jobs <- payload:
	default:
		utils.LogWarning("extractor notify queue full, dropping file_id=%d", fileID)
	}
}

func (s *NotifyService) worker() {
	defer s.wg.Done()
	for payload := range s.jobs {
		if _, err := s.post(context.Background(), s.extractorURL, payload); err != nil {
			utils.LogError("extractor notification failed", err)
		}
	}
}

// errPipelineUnreachable marks a transport-level failure: the request
// never produced an HTTP response.
var errPipelineUnreachable = errors.New("pipeline unreachable")

// SubmitClassification posts the eligible file list to the classifier
// and returns the downstream response body. A connection failure maps
// to ServiceUnavailable; a non-2xx downstream answer is a plain error.
func (s *NotifyService) SubmitClassification(ctx context.Context, files []FilePayload) (string, error) {
	body, err := s.post(ctx, s.classifierURL, notifyPayload{Files: files})
	if errors.Is(err, errPipelineUnreachable) {
		return "", utils.ServiceUnavailableError("classification service unreachable", err)
	}
	if err != nil {
		return "", err
	}
	return body, nil
}

func (s *NotifyService) post(ctx context.Context, url string, payload notifyPayload) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal notify payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create notify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errPipelineUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read notify response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("pipeline responded with status %s", resp.Status)
	}
	return string(body), nil
}

// Close drains the pool. Pending new-file notifications are delivered
// before shutdown completes.
func (s *NotifyService) Close() {
	s.closeOnce.Do(func() {
		close(s.jobs)
		s.wg.Wait()
	})
}
