package dialogue

import (
	"fmt"
	"log"

	"github.com/decker502/vnovel/pkg/script"
)

// Engine 对话引擎
// 持有对话表、当前场景与游标，按固定的场景顺序表切换场景
//
// 职责：
//   - SetScene: 进入场景并立即显示第一句台词
//   - Advance: 推进一句；场景结束时切换到后继场景或进入 Finished
//   - 向 UI 层报告场景切换事件（每个场景结束最多一次）
//
// 注意事项：
//   - 每次运行只创建一个实例，由 App 持有并传递给各个画面
//   - 不包含锁，所有调用必须来自同一个输入处理上下文
type Engine struct {
	table *script.Table
	order *SceneOrder

	sceneID string
	cursor  int
	state   State

	// terminal Finished 状态下重复返回的结束事件
	terminal *Transition

	transitionHandlers []TransitionHandler
	lineHandlers       []LineHandler
}

// NewEngine 创建对话引擎
// 参数：
//   - order: 场景顺序表，可为 nil（任何场景播放完毕即结束）
//
// 返回的引擎处于 Uninitialized 状态，需要先 SetTable / SupplyScriptText
func NewEngine(order *SceneOrder) *Engine {
	return &Engine{
		order: order,
		state: StateUninitialized,
	}
}

// SetTable 设置对话表并重置到 Uninitialized 状态
func (e *Engine) SetTable(table *script.Table) {
	e.table = table
	e.Reset()
}

// SupplyScriptText 解析剧本文本并安装为当前对话表
//
// 返回：
//   - []script.Notice: 宽容解析提示
//   - error: 解析失败时返回，此时原对话表保持不变
func (e *Engine) SupplyScriptText(text string) ([]script.Notice, error) {
	table, notices, err := script.ParseString(text)
	if err != nil {
		return notices, fmt.Errorf("failed to parse script text: %w", err)
	}
	for _, n := range notices {
		log.Printf("[DialogueEngine] Script notice: %s", n)
	}
	e.SetTable(table)
	return notices, nil
}

// Reset 回到 Uninitialized 状态（对话表与回调保持不变）
func (e *Engine) Reset() {
	e.sceneID = ""
	e.cursor = 0
	e.state = StateUninitialized
	e.terminal = nil
}

// OnSceneTransition 注册场景切换回调
// 回调在 Advance 内同步调用，每个场景结束最多触发一次
func (e *Engine) OnSceneTransition(handler TransitionHandler) {
	e.transitionHandlers = append(e.transitionHandlers, handler)
}

// OnLine 注册新台词显示回调
func (e *Engine) OnLine(handler LineHandler) {
	e.lineHandlers = append(e.lineHandlers, handler)
}

// SetScene 进入指定场景，游标归零并立即显示第一句台词
//
// 返回：
//   - Result: 第一句台词；空场景时 Exhausted 为 true
//   - error: 场景不存在时返回 *UnknownSceneError，引擎状态保持不变
func (e *Engine) SetScene(sceneID string) (Result, error) {
	if e.table == nil || !e.table.Has(sceneID) {
		log.Printf("[DialogueEngine] 错误: 场景 %q 不在对话表中 (当前: %q, %s)", sceneID, e.sceneID, e.state)
		return Result{State: e.state}, &UnknownSceneError{SceneID: sceneID}
	}

	e.sceneID = sceneID
	e.cursor = 0
	e.terminal = nil

	lines, _ := e.table.Lines(sceneID)
	if len(lines) == 0 {
		e.state = StateSceneExhausted
		log.Printf("[DialogueEngine] 进入空场景: %s", sceneID)
		return Result{Exhausted: true, State: e.state}, nil
	}

	e.state = StatePlaying
	log.Printf("[DialogueEngine] 进入场景: %s (%d 句台词)", sceneID, len(lines))
	e.emitLine(lines[0])
	return Result{Line: lines[0], HasLine: true, State: e.state}, nil
}

// CurrentLine 返回当前台词
//
// 返回：
//   - ErrNoActiveScene: 尚未进入任何场景
//   - ErrNoMoreDialogue: 当前场景没有更多台词或对话已结束
func (e *Engine) CurrentLine() (script.Line, error) {
	switch e.state {
	case StateUninitialized:
		return script.Line{}, ErrNoActiveScene
	case StateFinished:
		return script.Line{}, ErrNoMoreDialogue
	}

	lines, _ := e.table.Lines(e.sceneID)
	if e.cursor >= len(lines) {
		return script.Line{}, ErrNoMoreDialogue
	}
	return lines[e.cursor], nil
}

// Advance 推进对话（唯一由外部触发的状态转换）
//
// 行为：
//   - 场景内还有台词：游标加一，返回新台词
//   - 场景结束：按顺序表切换到后继场景并返回切换事件；
//     没有后继时返回结束事件并进入 Finished
//   - Finished 状态下重复调用返回同一个结束事件，不会再次通知回调
//
// 返回：
//   - ErrNoActiveScene: 尚未进入任何场景
//   - ErrUnknownScene: 后继场景不在对话表中，引擎停留在当前位置
func (e *Engine) Advance() (Result, error) {
	switch e.state {
	case StateUninitialized:
		return Result{State: e.state}, ErrNoActiveScene
	case StateFinished:
		tr := *e.terminal
		return Result{Exhausted: true, Transition: &tr, State: e.state}, nil
	}

	lines, _ := e.table.Lines(e.sceneID)
	if e.cursor+1 < len(lines) {
		e.cursor++
		e.emitLine(lines[e.cursor])
		return Result{Line: lines[e.cursor], HasLine: true, State: e.state}, nil
	}

	// 场景结束：查询顺序表
	from := e.sceneID
	next, ok := e.successor(from)
	if !ok {
		tr := Transition{From: from, Terminal: true}
		e.terminal = &tr
		e.state = StateFinished
		log.Printf("[DialogueEngine] 场景切换: %s, 对话结束", tr)
		e.emitTransition(tr)

		out := tr
		return Result{Exhausted: true, Transition: &out, State: e.state}, nil
	}

	res, err := e.SetScene(next)
	if err != nil {
		res = e.currentResult()
		return res, fmt.Errorf("transition %s → %s: %w", from, next, err)
	}

	tr := Transition{From: from, To: next}
	log.Printf("[DialogueEngine] 场景切换: %s", tr)
	e.emitTransition(tr)
	res.Transition = &tr
	return res, nil
}

// State 返回当前状态
func (e *Engine) State() State {
	return e.state
}

// SceneID 返回当前场景ID（Uninitialized 时为空）
// Finished 状态下返回最后播放的场景
func (e *Engine) SceneID() string {
	return e.sceneID
}

// Cursor 返回当前场景内的游标
func (e *Engine) Cursor() int {
	return e.cursor
}

// Table 返回当前对话表（可能为 nil）
func (e *Engine) Table() *script.Table {
	return e.table
}

// Order 返回场景顺序表（可能为 nil）
func (e *Engine) Order() *SceneOrder {
	return e.order
}

// successor 查询后继场景
func (e *Engine) successor(sceneID string) (string, bool) {
	if e.order == nil {
		return "", false
	}
	return e.order.Successor(sceneID)
}

// currentResult 构造描述当前位置的 Result（不改变状态）
func (e *Engine) currentResult() Result {
	line, err := e.CurrentLine()
	if err != nil {
		return Result{Exhausted: true, State: e.state}
	}
	return Result{Line: line, HasLine: true, State: e.state}
}

func (e *Engine) emitLine(line script.Line) {
	for _, h := range e.lineHandlers {
		h(line)
	}
}

func (e *Engine) emitTransition(tr Transition) {
	for _, h := range e.transitionHandlers {
		h(tr)
	}
}
