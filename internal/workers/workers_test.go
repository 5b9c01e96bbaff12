package workers

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingWorker struct {
	mu   sync.Mutex
	runs int
	done chan struct{}
}

func (w *countingWorker) Run() {
	w.mu.Lock()
	w.runs++
	w.mu.Unlock()
	close(w.done)
}

func (w *countingWorker) wait(t *testing.T) {
	t.Helper()
	select {
	case <-w.done:
	case <-time.After(time.Second):
		t.Fatal("worker was not started")
	}
}

func TestWorkers_RunStartsEveryWorker(t *testing.T) {
	first := &countingWorker{done: make(chan struct{})}
	second := &countingWorker{done: make(chan struct{})}

	NewWorkers(first, second).Run()

	first.wait(t)
	second.wait(t)

	assert.Equal(t, 1, first.runs)
	assert.Equal(t, 1, second.runs)
}

func TestWorkers_RunWithNoWorkers(t *testing.T) {
	assert.NotPanics(t, func() {
		NewWorkers().Run()
	})
}
