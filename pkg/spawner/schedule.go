package spawner

import (
	"fmt"
	"log"

	"github.com/decker502/skyraid/pkg/config"
)

// Entry 时间表中的一行
type Entry struct {
	At    float64
	Group string
	Mode  Mode
}

// FixedSchedule 显式的时间表
type FixedSchedule struct {
	ctx     *Context
	Entries []Entry
}

// NewFixedSchedule 创建固定时间表
func NewFixedSchedule(ctx *Context, entries []Entry) *FixedSchedule {
	return &FixedSchedule{ctx: ctx, Entries: entries}
}

// Init 实现 Schedule 接口
func (f *FixedSchedule) Init(s *Spawner) error {
	return addEntries(f.ctx, s, f.Entries)
}

func addEntries(ctx *Context, s *Spawner, entries []Entry) error {
	for i, entry := range entries {
		group, err := NewGroup(ctx, entry.Group, entry.Mode)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		s.AddSpawnGroup(entry.At, group)
	}
	return nil
}

// RandomSchedule 先执行初始时间表，之后每当队列清空就在
// 当前时间 + Interval 追加一组随机方向的三机编队
type RandomSchedule struct {
	ctx      *Context
	Initial  []Entry
	Interval float64
}

// NewRandomSchedule 创建随机时间表
func NewRandomSchedule(ctx *Context, initial []Entry, interval float64) *RandomSchedule {
	return &RandomSchedule{ctx: ctx, Initial: initial, Interval: interval}
}

// Init 实现 Schedule 接口
func (r *RandomSchedule) Init(s *Spawner) error {
	if r.Interval <= 0 {
		return fmt.Errorf("%w: random spawn interval must be positive", ErrInvalidSchedule)
	}
	return addEntries(r.ctx, s, r.Initial)
}

// Refill 实现 Recurring 接口
func (r *RandomSchedule) Refill(s *Spawner) {
	if s.Pending() > 0 {
		return
	}
	mode := ModeStartLeft
	if r.ctx.float64() < 0.5 {
		mode = ModeStartRight
	}
	at := s.Elapsed() + r.Interval
	s.AddSpawnGroup(at, NewThreeShips(r.ctx, mode))
	if r.ctx.Verbose {
		log.Printf("[RandomSchedule] queued three_ships mode=%s at %.0f", mode, at)
	}
}

// NewSchedule 按关卡配置创建时间表
func NewSchedule(ctx *Context, cfg *config.LevelConfig) (Schedule, error) {
	entries, err := EntriesFromWaves(cfg.Waves)
	if err != nil {
		return nil, err
	}

	switch cfg.Spawner.Type {
	case config.SpawnerFixed:
		return NewFixedSchedule(ctx, entries), nil
	case config.SpawnerRandom:
		return NewRandomSchedule(ctx, entries, cfg.Spawner.Interval), nil
	case config.SpawnerScript:
		return NewScriptSchedule(ctx, cfg.ID, cfg.Spawner.Script), nil
	default:
		return nil, fmt.Errorf("%w: unknown spawner type %q", ErrInvalidSchedule, cfg.Spawner.Type)
	}
}

// EntriesFromWaves 把配置中的波次转换为时间表
func EntriesFromWaves(waves []config.WaveConfig) ([]Entry, error) {
	entries := make([]Entry, 0, len(waves))
	for i, w := range waves {
		mode, err := ParseMode(w.Mode)
		if err != nil {
			return nil, fmt.Errorf("wave %d: %w", i, err)
		}
		entries = append(entries, Entry{At: w.At, Group: w.Group, Mode: mode})
	}
	return entries, nil
}
