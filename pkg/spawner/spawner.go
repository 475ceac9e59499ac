package spawner

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/decker502/skyraid/pkg/clock"
)

// SpawnAction 在 At 毫秒（相对生成器启动时间）激活 Group
type SpawnAction struct {
	At    float64
	Group SpawnGroup
}

// Schedule 生成器的时间表来源
type Schedule interface {
	// Init 在 Start 时调用一次，通过 AddSpawnGroup 填充初始时间表
	Init(s *Spawner) error
}

// Recurring 在每次 Update 之后追加新的生成动作
type Recurring interface {
	Schedule
	Refill(s *Spawner)
}

// Spawner 按时间顺序触发编队
//
// 待执行动作按 At 升序排列；Update 在一次调用中弹出所有到期的动作，
// 同一帧到期的多个动作都会被执行。
type Spawner struct {
	clock    clock.Source
	schedule Schedule
	actions  []SpawnAction

	startTime float64
	started   bool
	spawned   int
	verbose   bool
}

// New 创建生成器
func New(c clock.Source, schedule Schedule) *Spawner {
	return &Spawner{
		clock:    c,
		schedule: schedule,
		actions:  make([]SpawnAction, 0, 16),
	}
}

// SetVerbose 打开逐次生成日志
func (s *Spawner) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// AddSpawnGroup 在时间表中加入一个动作
// 启动前加入的动作在 Start 时统一排序；启动后加入的动作按时间插入，保持升序（同时刻的按加入顺序）
func (s *Spawner) AddSpawnGroup(at float64, group SpawnGroup) {
	action := SpawnAction{At: at, Group: group}
	if !s.started {
		s.actions = append(s.actions, action)
		return
	}
	i := sort.Search(len(s.actions), func(i int) bool { return s.actions[i].At > at })
	s.actions = append(s.actions, SpawnAction{})
	copy(s.actions[i+1:], s.actions[i:])
	s.actions[i] = action
}

// Start 调用 Init 建立时间表、排序并记录启动时间
// 首次启动保留之前用 AddSpawnGroup 加入的动作，Init 的动作追加在其后；
// 再次启动视为重开，先清空上一轮的队列
func (s *Spawner) Start() error {
	if s.started {
		clear(s.actions)
		s.actions = s.actions[:0]
		s.spawned = 0
		s.started = false
	}
	queued := len(s.actions)
	if s.schedule != nil {
		if err := s.schedule.Init(s); err != nil {
			clear(s.actions[queued:])
			s.actions = s.actions[:queued]
			return fmt.Errorf("failed to init spawn schedule: %w", err)
		}
	}
	sort.SliceStable(s.actions, func(i, j int) bool { return s.actions[i].At < s.actions[j].At })
	s.startTime = s.clock.Now()
	s.started = true
	log.Printf("[Spawner] started with %d spawn actions at t=%.0f", len(s.actions), s.startTime)
	return nil
}

// Update 执行所有到期的动作
// 单个编队的配置错误不会阻止后续动作，所有错误合并后返回
func (s *Spawner) Update() error {
	if !s.started {
		return nil
	}
	elapsed := s.Elapsed()

	var errs []error
	due := 0
	for due < len(s.actions) && s.actions[due].At <= elapsed {
		action := s.actions[due]
		due++
		if s.verbose {
			log.Printf("[Spawner] t=%.0f spawning %s (scheduled %.0f)", elapsed, action.Group.Name(), action.At)
		}
		if err := action.Group.Spawn(); err != nil {
			errs = append(errs, fmt.Errorf("spawn %s at %.0f: %w", action.Group.Name(), action.At, err))
		}
		s.spawned++
	}
	if due > 0 {
		n := copy(s.actions, s.actions[due:])
		clear(s.actions[n:])
		s.actions = s.actions[:n]
	}

	if rec, ok := s.schedule.(Recurring); ok {
		rec.Refill(s)
	}
	return errors.Join(errs...)
}

// Pending 剩余的动作数
func (s *Spawner) Pending() int {
	return len(s.actions)
}

// Actions 返回剩余动作（只读）
func (s *Spawner) Actions() []SpawnAction {
	return s.actions
}

// Elapsed 启动以来经过的时间（毫秒）
func (s *Spawner) Elapsed() float64 {
	if !s.started {
		return 0
	}
	return s.clock.Now() - s.startTime
}

// Spawned 已执行的动作数
func (s *Spawner) Spawned() int {
	return s.spawned
}

// Started 是否已启动
func (s *Spawner) Started() bool {
	return s.started
}
