package workers

// Workers runs a set of workers as one unit.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in registration order. Each worker is launched in
// its own goroutine so one blocking listener does not starve the others.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		go worker.Run()
	}
}
