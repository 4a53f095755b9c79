package crawl

import "github.com/mrTr1cky/spyder"

// Frontier is the explicit stack of pending tasks for one traversal.
// Tasks are popped last-in first-out, which walks a site depth-first
// without growing the call stack.
// It is not safe for concurrent use; every traversal owns its own Frontier.
type Frontier struct {
	tasks []spyder.CrawlTask
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{}
}

// Push schedules a task.
func (f *Frontier) Push(task spyder.CrawlTask) {
	f.tasks = append(f.tasks, task)
}

// Pop returns the most recently pushed task.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (spyder.CrawlTask, bool) {
	n := len(f.tasks)
	if n == 0 {
		return spyder.CrawlTask{}, false
	}
	task := f.tasks[n-1]
	f.tasks[n-1] = spyder.CrawlTask{}
	f.tasks = f.tasks[:n-1]
	return task, true
}

// Len returns the number of pending tasks.
func (f *Frontier) Len() int {
	return len(f.tasks)
}
