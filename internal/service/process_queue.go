package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/subha-ilamathy/kyc-document-extraction/internal/metrics"
)

// ProcessQueueConfig holds settings for the processing queue.
type ProcessQueueConfig struct {
	Concurrency int
	BufferSize  int
	TaskTimeout time.Duration
}

// ProcessQueue is a bounded work queue consumed by a fixed pool of workers.
// It replaces per-request fire-and-forget goroutines with an explicit
// scheduling point whose failures stay inside the worker.
type ProcessQueue struct {
	tasks chan ProcessTask
	cfg   ProcessQueueConfig
	wg    sync.WaitGroup
}

// NewProcessQueue creates a ProcessQueue. Zero or negative config values
// fall back to safe defaults.
func NewProcessQueue(cfg ProcessQueueConfig) *ProcessQueue {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 64
	}
	if cfg.TaskTimeout <= 0 {
		cfg.TaskTimeout = 5 * time.Minute
	}
	return &ProcessQueue{
		tasks: make(chan ProcessTask, cfg.BufferSize),
		cfg:   cfg,
	}
}

// Enqueue schedules a task for asynchronous processing. It blocks only when
// the buffer is full.
func (q *ProcessQueue) Enqueue(task ProcessTask) {
	metrics.IncrementQueueDepth()
	q.tasks <- task
}

// Start launches the worker pool and blocks until ctx is canceled and all
// in-flight tasks have finished.
func (q *ProcessQueue) Start(ctx context.Context, processor DocumentService) {
	log.Printf("processQueue: started (concurrency=%d, buffer=%d, taskTimeout=%s)",
		q.cfg.Concurrency, q.cfg.BufferSize, q.cfg.TaskTimeout)

	for i := 0; i < q.cfg.Concurrency; i++ {
		q.wg.Add(1)
		go q.worker(ctx, processor)
	}

	<-ctx.Done()
	log.Printf("processQueue: shutting down, waiting for in-flight tasks...")
	q.wg.Wait()
	log.Printf("processQueue: shutdown complete")
}

func (q *ProcessQueue) worker(ctx context.Context, processor DocumentService) {
	defer q.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case task := <-q.tasks:
			metrics.DecrementQueueDepth()
			q.run(task, processor)
		}
	}
}

func (q *ProcessQueue) run(task ProcessTask, processor DocumentService) {
	// Guard the worker itself: the processor converts its own failures to
	// status updates, but nothing it does may take the pool down.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("processQueue: recovered panic for document %s: %v", task.DocumentID, r)
		}
	}()

	// Use a fresh context independent of the queue context so in-flight
	// tasks complete even during shutdown.
	taskCtx, cancel := context.WithTimeout(context.Background(), q.cfg.TaskTimeout)
	defer cancel()

	log.Printf("processQueue: dispatching document %s", task.DocumentID)
	processor.ProcessDocument(taskCtx, task)
}
