package query

import (
	"sort"
	"sync"
)

// fanout runs every page member concurrently and waits for all of them to
// settle. A failed member records its source name and the page renders with
// that member's zero value; failures never cancel or hide the siblings.
type fanout struct {
	wg     sync.WaitGroup
	mu     sync.Mutex
	failed []string
}

func (f *fanout) run(source string, fn func() error) {
	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		if err := fn(); err != nil {
			f.mu.Lock()
			f.failed = append(f.failed, source)
			f.mu.Unlock()
		}
	}()
}

// wait blocks until every member has settled and returns the failed source
// names in stable order. The slice is never nil so views serialize as [].
func (f *fanout) wait() []string {
	f.wg.Wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	sort.Strings(f.failed)
	if f.failed == nil {
		return []string{}
	}
	return f.failed
}

// series truncates two parallel sequences to their overlapping prefix so a
// ragged upstream payload can't misalign a chart.
func series(labels []string, values []int) ([]string, []int) {
	n := len(labels)
	if len(values) < n {
		n = len(values)
	}
	if n == 0 {
		return []string{}, []int{}
	}
	return labels[:n], values[:n]
}
