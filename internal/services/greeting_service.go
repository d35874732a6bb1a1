package services

import (
	"time"

	"github.com/learning-platform/api-backend/internal/timestamp"
)

// Response literals. These are part of the public contract and must stay byte-for-byte.
const (
	// HelloPrefix precedes the formatted request time in the hello response
	HelloPrefix = "Hello from Spring Boot! 当前时间: "

	// TestMessage is the fixed body of the test endpoint
	TestMessage = "这是一个测试接口 - Spring Boot热更新功能正常工作！"
)

// Clock abstracts time.Now() so responses can be checked against a fixed instant
type Clock interface {
	Now() time.Time
}

// SystemClock reads the host wall clock in the local time zone
type SystemClock struct{}

// Now returns the current local time
func (SystemClock) Now() time.Time {
	return time.Now()
}

// GreetingService builds the greeting payloads
type GreetingService struct {
	clock Clock
}

// NewGreetingService creates a greeting service.
// A nil clock falls back to the system clock.
func NewGreetingService(clock Clock) *GreetingService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &GreetingService{
		clock: clock,
	}
}

// Hello returns the greeting with the current local date-time appended.
// The clock is read once per call.
func (s *GreetingService) Hello() string {
	return HelloPrefix + timestamp.FormatLocal(s.clock.Now())
}

// Test returns the fixed diagnostic message
func (s *GreetingService) Test() string {
	return TestMessage
}
