package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/subha-ilamathy/kyc-document-extraction/internal/service"
	"github.com/subha-ilamathy/kyc-document-extraction/mocks"
)

func TestProcessQueue_DispatchesEnqueuedTasks(t *testing.T) {
	processor := new(mocks.MockDocumentService)

	var mu sync.Mutex
	seen := make(map[uuid.UUID]bool)
	done := make(chan struct{})
	processor.On("ProcessDocument", mock.Anything, mock.AnythingOfType("service.ProcessTask")).
		Run(func(args mock.Arguments) {
			task := args.Get(1).(service.ProcessTask)
			mu.Lock()
			seen[task.DocumentID] = true
			if len(seen) == 3 {
				close(done)
			}
			mu.Unlock()
		}).Return()

	queue := service.NewProcessQueue(service.ProcessQueueConfig{Concurrency: 2, BufferSize: 8})
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		queue.Start(ctx, processor)
		close(stopped)
	}()

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, id := range ids {
		queue.Enqueue(service.ProcessTask{DocumentID: id, ScratchName: id.String() + ".png"})
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("tasks were not dispatched in time")
	}

	cancel()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("queue did not stop after cancel")
	}

	mu.Lock()
	defer mu.Unlock()
	for _, id := range ids {
		assert.True(t, seen[id])
	}
}

func TestProcessQueue_StopWaitsForInFlightTask(t *testing.T) {
	processor := new(mocks.MockDocumentService)

	started := make(chan struct{})
	release := make(chan struct{})
	var finished bool
	var mu sync.Mutex
	processor.On("ProcessDocument", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			close(started)
			<-release
			mu.Lock()
			finished = true
			mu.Unlock()
		}).Return()

	queue := service.NewProcessQueue(service.ProcessQueueConfig{Concurrency: 1, BufferSize: 1})
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		queue.Start(ctx, processor)
		close(stopped)
	}()

	queue.Enqueue(service.ProcessTask{DocumentID: uuid.New()})
	<-started
	cancel()

	select {
	case <-stopped:
		t.Fatal("queue stopped while a task was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("queue did not stop after the task finished")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, finished)
}

func TestProcessQueue_SurvivesProcessorPanic(t *testing.T) {
	processor := new(mocks.MockDocumentService)

	var callCount int
	calls := make(chan uuid.UUID, 2)
	processor.On("ProcessDocument", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			task := args.Get(1).(service.ProcessTask)
			callCount++
			calls <- task.DocumentID
			if callCount == 1 {
				panic("first task explodes")
			}
		}).Return()

	queue := service.NewProcessQueue(service.ProcessQueueConfig{Concurrency: 1, BufferSize: 4})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go queue.Start(ctx, processor)

	first, second := uuid.New(), uuid.New()
	queue.Enqueue(service.ProcessTask{DocumentID: first})
	queue.Enqueue(service.ProcessTask{DocumentID: second})

	deadline := time.After(2 * time.Second)
	got := make([]uuid.UUID, 0, 2)
	for len(got) < 2 {
		select {
		case id := <-calls:
			got = append(got, id)
		case <-deadline:
			t.Fatalf("worker did not survive the panic, processed %d tasks", len(got))
		}
	}
	assert.Equal(t, []uuid.UUID{first, second}, got)
}
