package timing

import "sort"

// Task 一个延迟执行的任务
//
// 由 Scheduler 创建，到期后在帧循环中执行一次。
// 取消后的任务永远不会执行。
type Task struct {
	id        uint64
	key       string
	due       float64
	fn        func()
	cancelled bool
	done      bool
}

// Cancel 取消任务；已执行或已取消时为空操作
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
}

// Pending 任务是否仍在等待执行
func (t *Task) Pending() bool {
	return t != nil && !t.cancelled && !t.done
}

// Due 返回任务的到期时间
func (t *Task) Due() float64 {
	return t.due
}

// Step 序列中的一步：距上一步 Delay 毫秒后执行 Fn
type Step struct {
	Delay float64
	Fn    func()
}

// Scheduler 由帧循环驱动的延迟任务调度器
//
// 不创建 goroutine，也不阻塞调用方：任务只在 Update(now) 时检查并执行，
// 因此所有回调都与游戏逻辑运行在同一个 goroutine 中。
//
// 带 key 的任务可以被同 key 的新任务取代，用于“重新触发效果时覆盖旧序列”。
type Scheduler struct {
	now    float64
	nextID uint64
	tasks  []*Task
	keyed  map[string][]*Task
}

// NewScheduler 创建调度器，now 为初始时间（毫秒）
func NewScheduler(now float64) *Scheduler {
	return &Scheduler{
		now:   now,
		keyed: make(map[string][]*Task),
	}
}

// Now 返回最近一次 Update 的时间
func (s *Scheduler) Now() float64 {
	return s.now
}

// After 在 delay 毫秒后执行 fn
func (s *Scheduler) After(delay float64, fn func()) *Task {
	return s.schedule("", s.now+delay, fn)
}

// At 在绝对时间 due 执行 fn
func (s *Scheduler) At(due float64, fn func()) *Task {
	return s.schedule("", due, fn)
}

// AfterKeyed 在 delay 毫秒后执行 fn，并取消同 key 下所有尚未执行的任务
func (s *Scheduler) AfterKeyed(key string, delay float64, fn func()) *Task {
	s.Cancel(key)
	return s.schedule(key, s.now+delay, fn)
}

// Sequence 以 key 登记一串按顺序执行的步骤
// 每一步的 Delay 相对于上一步；同 key 的旧任务全部取消
func (s *Scheduler) Sequence(key string, steps []Step) []*Task {
	s.Cancel(key)

	tasks := make([]*Task, 0, len(steps))
	due := s.now
	for _, step := range steps {
		due += step.Delay
		tasks = append(tasks, s.schedule(key, due, step.Fn))
	}
	return tasks
}

// Cancel 取消 key 下所有尚未执行的任务
func (s *Scheduler) Cancel(key string) {
	if key == "" {
		return
	}
	for _, t := range s.keyed[key] {
		t.Cancel()
	}
	delete(s.keyed, key)
}

// CancelAll 取消所有任务
func (s *Scheduler) CancelAll() {
	for _, t := range s.tasks {
		t.Cancel()
	}
	s.tasks = nil
	s.keyed = make(map[string][]*Task)
}

// HasPending 返回 key 下是否还有等待执行的任务
func (s *Scheduler) HasPending(key string) bool {
	for _, t := range s.keyed[key] {
		if t.Pending() {
			return true
		}
	}
	return false
}

// Pending 返回等待执行的任务数
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if t.Pending() {
			n++
		}
	}
	return n
}

// Update 推进到 now，按到期时间（相同时按创建顺序）执行所有到期任务
// 执行期间新登记的任务最早在下一次 Update 时执行
func (s *Scheduler) Update(now float64) {
	if now > s.now {
		s.now = now
	}

	var due []*Task
	remaining := s.tasks[:0]
	for _, t := range s.tasks {
		switch {
		case !t.Pending():
		case t.due <= s.now:
			due = append(due, t)
		default:
			remaining = append(remaining, t)
		}
	}
	s.tasks = remaining

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].id < due[j].id
	})

	// 先从 tasks 中摘除再执行，回调里新登记的任务只会追加到 tasks
	for _, t := range due {
		if !t.Pending() {
			continue
		}
		t.done = true
		s.forget(t)
		t.fn()
	}
}

func (s *Scheduler) schedule(key string, due float64, fn func()) *Task {
	s.nextID++
	t := &Task{
		id:  s.nextID,
		key: key,
		due: due,
		fn:  fn,
	}
	if fn == nil {
		t.done = true
		return t
	}
	s.tasks = append(s.tasks, t)
	if key != "" {
		s.keyed[key] = append(s.keyed[key], t)
	}
	return t
}

func (s *Scheduler) forget(t *Task) {
	if t.key == "" {
		return
	}
	list := s.keyed[t.key]
	for i, other := range list {
		if other == t {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(s.keyed, t.key)
		return
	}
	s.keyed[t.key] = list
}
