package spawner

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/d5/tengo/v2"

	"github.com/decker502/skyraid/pkg/behavior"
	"github.com/decker502/skyraid/pkg/clock"
	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/config"
	"github.com/decker502/skyraid/pkg/enemy"
	"github.com/decker502/skyraid/pkg/state"
	"github.com/decker502/skyraid/pkg/tween"
	"github.com/decker502/skyraid/pkg/weapon"
)

type nopEffects struct{}

func (nopEffects) Explode(x, y, w, h float64) {}

type nopWeapon struct{}

func (nopWeapon) Fire(x, y, angleDeg float64) int { return 1 }
func (nopWeapon) Reset()                          {}

// recordingGroup 记录 Spawn 调用
type recordingGroup struct {
	name  string
	calls *[]string
	err   error
}

func (g *recordingGroup) Spawn() error {
	*g.calls = append(*g.calls, g.name)
	return g.err
}
func (g *recordingGroup) IsFinished() bool { return true }
func (g *recordingGroup) Name() string     { return g.name }

type testWorld struct {
	clock  *clock.Clock
	tweens *tween.Manager
	pool   *enemy.Pool
	ctx    *Context
}

func newTestWorld(poolSize int) *testWorld {
	clk := clock.New(0)
	tweens := tween.NewManager(clk)
	bounds := components.Rect{W: 240, H: 320}
	pool := enemy.NewPool(poolSize, enemy.Deps{
		Clock:   clk,
		Tweens:  tweens,
		Effects: nopEffects{},
		Bounds:  bounds,
		Tuning:  enemy.DefaultTuning(),
	})
	player := &components.Actor{Width: 32, Height: 32}
	player.Reset(120, 300)

	var weapons [16]weapon.Weapon
	for i := range weapons {
		weapons[i] = nopWeapon{}
	}
	return &testWorld{
		clock:  clk,
		tweens: tweens,
		pool:   pool,
		ctx: &Context{
			Enemies: pool,
			Target:  player,
			Bounds:  bounds,
			Weapons: func(slot int) weapon.Weapon { return weapons[slot] },
			Rand:    rand.New(rand.NewSource(1)),
		},
	}
}

func (w *testWorld) enemies() []*enemy.Enemy {
	var out []*enemy.Enemy
	w.pool.Each(func(e *enemy.Enemy) { out = append(out, e) })
	return out
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestSpawnerFiresAllDueActions(t *testing.T) {
	clk := clock.New(0)
	var calls []string
	s := New(clk, nil)
	s.AddSpawnGroup(5, &recordingGroup{name: "c", calls: &calls})
	s.AddSpawnGroup(0, &recordingGroup{name: "a", calls: &calls})
	s.AddSpawnGroup(0, &recordingGroup{name: "b", calls: &calls})
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	clk.Advance(10)
	if err := s.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	want := []string{"a", "b", "c"}
	if len(calls) != len(want) {
		t.Fatalf("expected %d spawns, got %v", len(want), calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("spawn %d = %s, want %s", i, calls[i], want[i])
		}
	}
	if s.Pending() != 0 {
		t.Errorf("queue should be empty, got %d", s.Pending())
	}
	if s.Spawned() != 3 {
		t.Errorf("Spawned() = %d, want 3", s.Spawned())
	}
}

func TestSpawnerTimeline(t *testing.T) {
	clk := clock.New(1000)
	var calls []string
	s := New(clk, nil)
	s.AddSpawnGroup(200, &recordingGroup{name: "late", calls: &calls})
	s.AddSpawnGroup(100, &recordingGroup{name: "early", calls: &calls})
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	tests := []struct {
		name    string
		advance float64
		want    int
	}{
		{"未到时间", 99, 0},
		{"第一组到期", 1, 1},
		{"第二组未到", 50, 1},
		{"第二组到期", 50, 2},
		{"队列已空", 1000, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk.Advance(tt.advance)
			if err := s.Update(); err != nil {
				t.Fatalf("Update failed: %v", err)
			}
			if len(calls) != tt.want {
				t.Errorf("expected %d spawns, got %v", tt.want, calls)
			}
		})
	}
	if len(calls) == 0 || calls[0] != "early" {
		t.Errorf("early group should spawn first, got %v", calls)
	}
}

// listSchedule 在 Init 时加入固定的一组动作
type listSchedule struct {
	at    []float64
	names []string
	calls *[]string
	err   error
}

func (l *listSchedule) Init(s *Spawner) error {
	for i, at := range l.at {
		s.AddSpawnGroup(at, &recordingGroup{name: l.names[i], calls: l.calls})
	}
	return l.err
}

func TestSpawnerInitAppendsToQueued(t *testing.T) {
	clk := clock.New(0)
	var calls []string
	s := New(clk, &listSchedule{
		at:    []float64{0, 20},
		names: []string{"init0", "init20"},
		calls: &calls,
	})
	s.AddSpawnGroup(10, &recordingGroup{name: "queued10", calls: &calls})
	s.AddSpawnGroup(0, &recordingGroup{name: "queued0", calls: &calls})
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if s.Pending() != 4 {
		t.Fatalf("expected 4 pending actions, got %d", s.Pending())
	}

	clk.Advance(20)
	if err := s.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	// 同一时刻的动作保持加入顺序：启动前加入的在 Init 加入的之前
	want := []string{"queued0", "init0", "queued10", "init20"}
	if len(calls) != len(want) {
		t.Fatalf("expected %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("spawn %d = %s, want %s", i, calls[i], want[i])
		}
	}
}

func TestSpawnerRestartClearsQueue(t *testing.T) {
	clk := clock.New(0)
	var calls []string
	s := New(clk, &listSchedule{at: []float64{100}, names: []string{"wave"}, calls: &calls})
	s.AddSpawnGroup(50, &recordingGroup{name: "extra", calls: &calls})
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	clk.Advance(60)
	_ = s.Update()

	if err := s.Start(); err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	if s.Pending() != 1 || s.Actions()[0].At != 100 {
		t.Errorf("restart should keep only the schedule's actions, got %+v", s.Actions())
	}
	if s.Spawned() != 0 || s.Elapsed() != 0 {
		t.Errorf("restart should reset counters, spawned=%d elapsed=%v", s.Spawned(), s.Elapsed())
	}
}

func TestSpawnerInitFailureKeepsQueued(t *testing.T) {
	clk := clock.New(0)
	var calls []string
	errBroken := errors.New("broken schedule")
	s := New(clk, &listSchedule{
		at:    []float64{0},
		names: []string{"partial"},
		calls: &calls,
		err:   errBroken,
	})
	s.AddSpawnGroup(0, &recordingGroup{name: "queued", calls: &calls})

	if err := s.Start(); !errors.Is(err, errBroken) {
		t.Fatalf("expected schedule error, got %v", err)
	}
	if s.Started() {
		t.Error("spawner must not start with a broken schedule")
	}
	if s.Pending() != 1 || s.Actions()[0].Group.Name() != "queued" {
		t.Errorf("failed Init must not leave partial actions, got %+v", s.Actions())
	}
}

func TestSpawnerBeforeStart(t *testing.T) {
	var calls []string
	s := New(clock.New(0), nil)
	s.AddSpawnGroup(0, &recordingGroup{name: "a", calls: &calls})
	if err := s.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(calls) != 0 {
		t.Errorf("nothing should spawn before Start, got %v", calls)
	}
}

func TestSpawnerAddAfterStartKeepsOrder(t *testing.T) {
	clk := clock.New(0)
	var calls []string
	s := New(clk, nil)
	s.AddSpawnGroup(100, &recordingGroup{name: "a", calls: &calls})
	s.AddSpawnGroup(300, &recordingGroup{name: "c", calls: &calls})
	_ = s.Start()

	s.AddSpawnGroup(200, &recordingGroup{name: "b", calls: &calls})
	actions := s.Actions()
	for i := 1; i < len(actions); i++ {
		if actions[i-1].At > actions[i].At {
			t.Fatalf("actions out of order at %d: %v > %v", i, actions[i-1].At, actions[i].At)
		}
	}

	clk.Advance(300)
	_ = s.Update()
	if len(calls) != 3 || calls[1] != "b" {
		t.Errorf("expected [a b c], got %v", calls)
	}
}

func TestSpawnerJoinsGroupErrors(t *testing.T) {
	clk := clock.New(0)
	var calls []string
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	s := New(clk, nil)
	s.AddSpawnGroup(0, &recordingGroup{name: "a", calls: &calls, err: errA})
	s.AddSpawnGroup(0, &recordingGroup{name: "b", calls: &calls, err: errB})
	s.AddSpawnGroup(0, &recordingGroup{name: "ok", calls: &calls})
	_ = s.Start()

	err := s.Update()
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("expected both errors joined, got %v", err)
	}
	if len(calls) != 3 {
		t.Errorf("a failing group must not block later groups, got %v", calls)
	}
}

func TestThreeShipsFormation(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		wantX []float64
	}{
		{"从左开始", ModeStartLeft, []float64{140, 180, 220}},
		{"从右开始", ModeStartRight, []float64{100, 60, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(5)
			g := NewThreeShips(w.ctx, tt.mode)
			if err := g.Spawn(); err != nil {
				t.Fatalf("Spawn failed: %v", err)
			}
			if w.pool.Active() != 3 {
				t.Fatalf("expected 3 active enemies, got %d", w.pool.Active())
			}

			wantDelay := []float64{500, 1000, 1500}
			wantFinalY := []float64{320.0 * 2 / 12, 320.0 * 3 / 12, 320.0 * 4 / 12}
			for i, h := range g.TrackedEnemies() {
				e, ok := w.pool.Get(h)
				if !ok {
					t.Fatalf("ship %d not live", i)
				}
				if !almostEqual(e.X, tt.wantX[i]) {
					t.Errorf("ship %d x = %v, want %v", i, e.X, tt.wantX[i])
				}
				if !almostEqual(e.Y, -2*e.Height) {
					t.Errorf("ship %d should enter above the playfield, got y=%v", i, e.Y)
				}
				st := e.Starting()
				if st.Delay != wantDelay[i] {
					t.Errorf("ship %d delay = %v, want %v", i, st.Delay, wantDelay[i])
				}
				if !almostEqual(st.TargetPos.Y, wantFinalY[i]) {
					t.Errorf("ship %d final y = %v, want %v", i, st.TargetPos.Y, wantFinalY[i])
				}
				if !almostEqual(e.Leaving().Delay, 2*(2000-wantDelay[i])) {
					t.Errorf("ship %d leave delay = %v", i, e.Leaving().Delay)
				}
				if e.Current() != state.Starting || !e.IsAlive() {
					t.Errorf("ship %d should be alive in Starting, got %s alive=%v", i, e.Current(), e.IsAlive())
				}
			}
		})
	}
}

func TestThreeShipsExhaustedPool(t *testing.T) {
	w := newTestWorld(2)
	g := NewThreeShips(w.ctx, ModeStartLeft)
	if err := g.Spawn(); err != nil {
		t.Fatalf("partial spawn is not an error: %v", err)
	}
	if len(g.TrackedEnemies()) != 2 {
		t.Errorf("expected 2 ships from a pool of 2, got %d", len(g.TrackedEnemies()))
	}

	next := NewThreeShips(w.ctx, ModeStartRight)
	if err := next.Spawn(); err != nil {
		t.Fatalf("spawn on empty pool is not an error: %v", err)
	}
	if len(next.TrackedEnemies()) != 0 {
		t.Errorf("expected no ships from an empty pool, got %d", len(next.TrackedEnemies()))
	}
}

func TestThreeShipsInvalidMode(t *testing.T) {
	w := newTestWorld(5)
	g := NewThreeShips(w.ctx, Mode(7))
	err := g.Spawn()
	if !errors.Is(err, ErrInvalidMode) || !errors.Is(err, behavior.ErrConfiguration) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
	if w.pool.Active() != 0 {
		t.Errorf("invalid mode must not take enemies from the pool, active=%d", w.pool.Active())
	}
}

func TestThreeShipsIsFinished(t *testing.T) {
	w := newTestWorld(5)
	g := NewThreeShips(w.ctx, ModeStartLeft)
	if !g.IsFinished() {
		t.Error("a group that never spawned is finished")
	}

	_ = g.Spawn()
	if g.IsFinished() {
		t.Error("group with live ships is not finished")
	}

	for _, e := range w.enemies() {
		e.Kill()
	}
	if !g.IsFinished() {
		t.Error("group should be finished after all ships are killed")
	}

	// 槽位被其他编队复用后不影响本编队
	other := NewThreeShips(w.ctx, ModeStartRight)
	_ = other.Spawn()
	if !g.IsFinished() {
		t.Error("reused slots must not revive a finished group")
	}
}

func TestThreeShipsFlyToFormation(t *testing.T) {
	w := newTestWorld(5)
	g := NewThreeShips(w.ctx, ModeStartLeft)
	_ = g.Spawn()

	// 最后一架延迟 1500，补间 2000
	for i := 0; i < 220; i++ {
		w.clock.Advance(16)
		w.tweens.Update()
		if err := w.pool.UpdateAll(); err != nil {
			t.Fatalf("UpdateAll failed: %v", err)
		}
	}
	for i, h := range g.TrackedEnemies() {
		e, ok := w.pool.Get(h)
		if !ok {
			t.Fatalf("ship %d should still be on screen", i)
		}
		if e.Current() == state.Starting {
			t.Errorf("ship %d should have left Starting, got %s", i, e.Current())
		}
	}
}

func TestSoloPartitions(t *testing.T) {
	w := newTestWorld(5)
	g := NewSolo(w.ctx)

	for i := 0; i < 3; i++ {
		if err := g.Spawn(); err != nil {
			t.Fatalf("Spawn %d failed: %v", i, err)
		}
	}
	if w.pool.Active() != 3 {
		t.Fatalf("expected 3 solo ships, got %d", w.pool.Active())
	}

	partWidth := (240.0 - 2*soloMargin) * soloPartShare
	seen := map[int]bool{}
	for _, e := range w.enemies() {
		if e.X < soloMargin || e.X > soloMargin+soloPartitions*partWidth {
			t.Errorf("x %v outside the spawn partitions", e.X)
		}
		part := min(int((e.X-soloMargin)/partWidth), soloPartitions-1)
		seen[part] = true
		if e.Starting().TargetPos.Y < soloMargin || e.Starting().TargetPos.Y > 0.3*320 {
			t.Errorf("final y %v out of range", e.Starting().TargetPos.Y)
		}
	}
	if len(seen) != 3 {
		t.Errorf("expected one ship per partition, got %v", seen)
	}

	// 三个分区都被占用
	if err := g.Spawn(); err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	if w.pool.Active() != 3 {
		t.Errorf("no partition is free, expected 3 ships, got %d", w.pool.Active())
	}
}

func TestNewGroup(t *testing.T) {
	w := newTestWorld(5)
	tests := []struct {
		name    string
		group   string
		wantErr error
	}{
		{"三机编队", GroupThreeShips, nil},
		{"单机", GroupSolo, nil},
		{"未知编队", "mothership", ErrUnknownGroup},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGroup(w.ctx, tt.group, ModeStartLeft)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if g.Name() != tt.group {
				t.Errorf("Name() = %s, want %s", g.Name(), tt.group)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"", ModeStartLeft, false},
		{"left", ModeStartLeft, false},
		{"right", ModeStartRight, false},
		{"up", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFixedScheduleEndToEnd(t *testing.T) {
	w := newTestWorld(5)
	s := New(w.clock, NewFixedSchedule(w.ctx, []Entry{
		{At: 0, Group: GroupThreeShips, Mode: ModeStartLeft},
	}))
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := s.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	xs := map[float64]bool{}
	for _, e := range w.enemies() {
		xs[e.X] = true
	}
	for _, x := range []float64{140, 180, 220} {
		if !xs[x] {
			t.Errorf("missing ship at x=%v, got %v", x, xs)
		}
	}
	if w.pool.Active() != 3 || w.pool.Free() != 2 {
		t.Errorf("expected 3 active 2 free, got %d/%d", w.pool.Active(), w.pool.Free())
	}
}

func TestFixedScheduleUnknownGroup(t *testing.T) {
	w := newTestWorld(5)
	s := New(w.clock, NewFixedSchedule(w.ctx, []Entry{{Group: "boss"}}))
	if err := s.Start(); !errors.Is(err, ErrUnknownGroup) {
		t.Errorf("expected ErrUnknownGroup, got %v", err)
	}
	if s.Started() {
		t.Error("spawner must not start with a broken schedule")
	}
}

func TestRandomScheduleRefill(t *testing.T) {
	w := newTestWorld(5)
	s := New(w.clock, NewRandomSchedule(w.ctx, nil, 3000))
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	_ = s.Update()
	if s.Pending() != 1 || s.Actions()[0].At != 3000 {
		t.Fatalf("expected one refill at 3000, got %+v", s.Actions())
	}

	w.clock.Advance(3000)
	if err := s.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if s.Spawned() != 1 {
		t.Errorf("expected 1 spawn, got %d", s.Spawned())
	}
	if w.pool.Active() != 3 {
		t.Errorf("expected a three ship group, got %d", w.pool.Active())
	}
	if s.Pending() != 1 || s.Actions()[0].At != 6000 {
		t.Errorf("expected next refill at 6000, got %+v", s.Actions())
	}
}

func TestRandomScheduleInvalidInterval(t *testing.T) {
	w := newTestWorld(5)
	s := New(w.clock, NewRandomSchedule(w.ctx, nil, 0))
	if err := s.Start(); !errors.Is(err, ErrInvalidSchedule) {
		t.Errorf("expected ErrInvalidSchedule, got %v", err)
	}
}

func TestScriptSchedule(t *testing.T) {
	w := newTestWorld(5)
	src := `
schedule := []
for i := 0; i < 3; i++ {
	mode := "left"
	if i % 2 == 1 { mode = "right" }
	schedule = append(schedule, {at: i * 1000, group: "three_ships", mode: mode})
}
if width > 200 {
	schedule = append(schedule, {at: 4500.5, group: "solo"})
}
`
	entries, err := NewScriptSchedule(w.ctx, "test", src).Entries()
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %+v", entries)
	}
	if entries[1].At != 1000 || entries[1].Mode != ModeStartRight {
		t.Errorf("unexpected entry 1: %+v", entries[1])
	}
	if entries[3].At != 4500.5 || entries[3].Group != GroupSolo || entries[3].Mode != ModeStartLeft {
		t.Errorf("unexpected entry 3: %+v", entries[3])
	}
}

func TestScriptScheduleEmpty(t *testing.T) {
	w := newTestWorld(5)
	entries, err := NewScriptSchedule(w.ctx, "empty", "schedule := []").Entries()
	if err != nil {
		t.Fatalf("empty schedule is valid, got %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %+v", entries)
	}

	s := New(w.clock, NewScriptSchedule(w.ctx, "empty", "schedule := []"))
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if s.Pending() != 0 {
		t.Errorf("expected empty queue, got %d", s.Pending())
	}
}

func TestAddScriptVars(t *testing.T) {
	tests := []struct {
		name    string
		vars    []scriptVar
		wantErr bool
	}{
		{"数值变量", []scriptVar{{"width", 240.0}, {"pool_size", 5}}, false},
		{"无法转换的变量", []scriptVar{{"width", 240.0}, {"events", make(chan int)}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := tengo.NewScript([]byte("x := 1"))
			err := addScriptVars(script, tt.vars)
			if (err != nil) != tt.wantErr {
				t.Errorf("addScriptVars() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestScriptScheduleErrors(t *testing.T) {
	w := newTestWorld(5)
	tests := []struct {
		name string
		src  string
	}{
		{"空脚本", "  "},
		{"语法错误", "schedule := ["},
		{"没有 schedule", "x := 1"},
		{"schedule 不是数组", "schedule := 5"},
		{"schedule 是不可变数组", "schedule := immutable([{at: 0, group: \"solo\"}])"},
		{"缺少 group", `schedule := [{at: 0}]`},
		{"方向无效", `schedule := [{at: 0, group: "solo", mode: "up"}]`},
		{"时间为负", `schedule := [{at: -1, group: "solo"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(w.clock, NewScriptSchedule(w.ctx, "bad", tt.src))
			err := s.Start()
			if !errors.Is(err, ErrInvalidSchedule) {
				t.Errorf("expected ErrInvalidSchedule, got %v", err)
			}
		})
	}
}

func TestNewScheduleFromConfig(t *testing.T) {
	w := newTestWorld(5)
	tests := []struct {
		name    string
		cfg     config.LevelConfig
		wantErr error
	}{
		{
			name: "固定",
			cfg: config.LevelConfig{
				Spawner: config.SpawnerConfig{Type: config.SpawnerFixed},
				Waves:   []config.WaveConfig{{At: 0, Group: GroupThreeShips, Mode: "right"}},
			},
		},
		{
			name: "随机",
			cfg:  config.LevelConfig{Spawner: config.SpawnerConfig{Type: config.SpawnerRandom, Interval: 5000}},
		},
		{
			name: "脚本",
			cfg: config.LevelConfig{Spawner: config.SpawnerConfig{
				Type:   config.SpawnerScript,
				Script: `schedule := [{at: 0, group: "three_ships"}]`,
			}},
		},
		{
			name:    "未知类型",
			cfg:     config.LevelConfig{Spawner: config.SpawnerConfig{Type: "chaos"}},
			wantErr: ErrInvalidSchedule,
		},
		{
			name: "波次方向无效",
			cfg: config.LevelConfig{
				Spawner: config.SpawnerConfig{Type: config.SpawnerFixed},
				Waves:   []config.WaveConfig{{Group: GroupThreeShips, Mode: "down"}},
			},
			wantErr: ErrInvalidMode,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched, err := NewSchedule(w.ctx, &tt.cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSchedule failed: %v", err)
			}
			s := New(w.clock, sched)
			if err := s.Start(); err != nil {
				t.Errorf("Start failed: %v", err)
			}
		})
	}
}
