package workerpool

// Job is a unit of work executed exactly once by exactly one worker.
type Job interface {
	Run()
}

// JobFunc adapts a plain closure to Job.
type JobFunc func()

func (f JobFunc) Run() { f() }
