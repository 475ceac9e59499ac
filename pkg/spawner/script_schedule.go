package spawner

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ScriptSchedule 由 tengo 脚本生成时间表
//
// 脚本可以读取 width、height、pool_size 三个变量，必须定义 schedule 数组：
//
//	schedule := [
//		{at: 1500, group: "three_ships", mode: "left"},
//		{at: 6000, group: "three_ships", mode: "right"}
//	]
//
// 可以使用 tengo 标准库（如 rand、math）生成时间表。
type ScriptSchedule struct {
	ctx    *Context
	Name   string
	Source string
}

// NewScriptSchedule 创建脚本时间表，name 仅用于错误信息
func NewScriptSchedule(ctx *Context, name, source string) *ScriptSchedule {
	return &ScriptSchedule{ctx: ctx, Name: name, Source: source}
}

// Init 实现 Schedule 接口
func (sc *ScriptSchedule) Init(s *Spawner) error {
	entries, err := sc.Entries()
	if err != nil {
		return err
	}
	return addEntries(sc.ctx, s, entries)
}

// Entries 运行脚本并解析 schedule
func (sc *ScriptSchedule) Entries() ([]Entry, error) {
	if strings.TrimSpace(sc.Source) == "" {
		return nil, fmt.Errorf("%w: script %s is empty", ErrInvalidSchedule, sc.Name)
	}

	poolSize := 0
	if sc.ctx.Enemies != nil {
		poolSize = sc.ctx.Enemies.Cap()
	}
	script := tengo.NewScript([]byte(sc.Source))
	if err := addScriptVars(script, []scriptVar{
		{"width", sc.ctx.Bounds.W},
		{"height", sc.ctx.Bounds.H},
		{"pool_size", poolSize},
	}); err != nil {
		return nil, fmt.Errorf("%w: script %s: %v", ErrInvalidSchedule, sc.Name, err)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Run()
	if err != nil {
		return nil, fmt.Errorf("%w: script %s: %v", ErrInvalidSchedule, sc.Name, err)
	}
	if !compiled.IsDefined("schedule") {
		return nil, fmt.Errorf("%w: script %s does not define schedule", ErrInvalidSchedule, sc.Name)
	}

	// 空数组的 Array() 也是 nil，只能按类型名判断
	schedule := compiled.Get("schedule")
	if schedule.ValueType() != "array" {
		return nil, fmt.Errorf("%w: script %s: schedule must be an array, got %s",
			ErrInvalidSchedule, sc.Name, schedule.ValueType())
	}
	items := schedule.Array()

	entries := make([]Entry, 0, len(items))
	for i, item := range items {
		entry, err := parseScriptEntry(item)
		if err != nil {
			return nil, fmt.Errorf("%w: script %s: schedule[%d]: %v", ErrInvalidSchedule, sc.Name, i, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// scriptVar 注入脚本的全局变量
type scriptVar struct {
	name  string
	value interface{}
}

func addScriptVars(script *tengo.Script, vars []scriptVar) error {
	for _, v := range vars {
		if err := script.Add(v.name, v.value); err != nil {
			return fmt.Errorf("add %s: %w", v.name, err)
		}
	}
	return nil
}

func parseScriptEntry(item interface{}) (Entry, error) {
	m, ok := item.(map[string]interface{})
	if !ok {
		return Entry{}, fmt.Errorf("expected map, got %T", item)
	}

	var entry Entry
	switch at := m["at"].(type) {
	case int64:
		entry.At = float64(at)
	case float64:
		entry.At = at
	case nil:
	default:
		return Entry{}, fmt.Errorf("at must be a number, got %T", at)
	}
	if entry.At < 0 {
		return Entry{}, fmt.Errorf("at cannot be negative, got %v", entry.At)
	}

	group, ok := m["group"].(string)
	if !ok || group == "" {
		return Entry{}, fmt.Errorf("group is required")
	}
	entry.Group = group

	modeName, _ := m["mode"].(string)
	mode, err := ParseMode(modeName)
	if err != nil {
		return Entry{}, err
	}
	entry.Mode = mode
	return entry, nil
}
