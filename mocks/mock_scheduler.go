package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/subha-ilamathy/kyc-document-extraction/internal/service"
)

// MockScheduler is a mock implementation of service.Scheduler.
type MockScheduler struct {
	mock.Mock
}

func (m *MockScheduler) Enqueue(task service.ProcessTask) {
	m.Called(task)
}
