package trui

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stubRoot Id = 1000

// stubView answers every message with a fixed result and records the
// paths it was asked to route.
type stubView struct {
	mu     *sync.Mutex
	paths  *[]IdPath
	result MessageResult[string]
}

func (v stubView) Build(cx *Cx) (Id, any, Widget) { return stubRoot, nil, nil }
func (v stubView) Rebuild(cx *Cx, prev View[appData, string], id *Id, state *any, w Widget) ChangeFlags {
	return ChangeNone
}

func (v stubView) Message(path IdPath, state any, msg any, data *appData) MessageResult[string] {
	v.mu.Lock()
	defer v.mu.Unlock()
	*v.paths = append(*v.paths, path)
	return v.result
}

type taskHarness struct {
	t         *testing.T
	requests  chan taskRequest
	responses chan renderResponse[appData, string]
	returns   chan renderReturn[appData, string]
	events    chan Event
	actions   chan string

	mu      sync.Mutex
	paths   []IdPath
	renders int
	result  MessageResult[string]
}

func startTask(t *testing.T, debounce time.Duration) *taskHarness {
	t.Helper()
	h := &taskHarness{
		t:         t,
		requests:  make(chan taskRequest, 16),
		responses: make(chan renderResponse[appData, string], 1),
		returns:   make(chan renderReturn[appData, string], 1),
		events:    make(chan Event, 16),
		actions:   make(chan string, 16),
		result:    RequestRebuild[string](),
	}
	task := &logicTask[appData, string]{
		requests:  h.requests,
		responses: h.responses,
		returns:   h.returns,
		events:    h.events,
		data:      &appData{},
		logic:     h.logic,
		onAction:  func(a string) { h.actions <- a },
		debounce:  debounce,
		pending:   idSet{},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- task.run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Error("task did not stop")
		}
	})
	return h
}

func (h *taskHarness) logic(*appData) View[appData, string] {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.renders++
	return stubView{mu: &h.mu, paths: &h.paths, result: h.result}
}

func (h *taskHarness) setResult(r MessageResult[string]) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.result = r
}

func (h *taskHarness) routed() []IdPath {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]IdPath(nil), h.paths...)
}

func (h *taskHarness) requestRender(delay bool) {
	h.requests <- taskRequest{kind: reqRender, delay: delay}
}

func (h *taskHarness) wake(ids ...Id) {
	path := append(IdPath{stubRoot}, ids...)
	h.requests <- taskRequest{kind: reqWake, path: path}
}

// awaitResponse waits for a render and lends the view back with pending
// still outstanding.
func (h *taskHarness) awaitResponse(within time.Duration, pending ...Id) renderResponse[appData, string] {
	h.t.Helper()
	select {
	case resp := <-h.responses:
		set := idSet{}
		for _, id := range pending {
			set.add(id)
		}
		h.returns <- renderReturn[appData, string]{view: resp.view, state: resp.state, id: stubRoot, pending: set}
		return resp
	case <-time.After(within):
		h.t.Fatalf("no render within %s", within)
		return renderResponse[appData, string]{}
	}
}

func (h *taskHarness) expectNoResponse(wait time.Duration) {
	h.t.Helper()
	select {
	case <-h.responses:
		h.t.Fatal("unexpected render")
	case <-time.After(wait):
	}
}

func TestLogicTask_RenderWithoutDelay(t *testing.T) {
	h := startTask(t, time.Hour)

	h.requestRender(false)
	resp := h.awaitResponse(time.Second)
	assert.Nil(t, resp.prev, "first render has no previous view")
	assert.NotNil(t, resp.view)

	h.requestRender(false)
	resp = h.awaitResponse(time.Second)
	assert.NotNil(t, resp.prev)
}

func TestLogicTask_DelayWithNothingPending(t *testing.T) {
	h := startTask(t, time.Hour)
	h.requestRender(false)
	h.awaitResponse(time.Second)

	h.requestRender(true)
	h.awaitResponse(time.Second)
}

func TestLogicTask_DelayedRenderWaitsForAllPending(t *testing.T) {
	h := startTask(t, time.Hour)

	h.requestRender(false)
	h.awaitResponse(time.Second, 7, 8)

	h.requestRender(true)
	h.expectNoResponse(20 * time.Millisecond)

	h.wake(7)
	h.expectNoResponse(20 * time.Millisecond)

	h.wake(8)
	h.awaitResponse(time.Second)

	assert.Equal(t, []IdPath{{7}, {8}}, h.routed())
	assert.Empty(t, h.events, "a debouncing render is not woken again")
}

func TestLogicTask_DebounceTimeout(t *testing.T) {
	h := startTask(t, 30*time.Millisecond)

	h.requestRender(false)
	h.awaitResponse(time.Second, 7)

	start := time.Now()
	h.requestRender(true)
	h.awaitResponse(time.Second)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestLogicTask_WakeWhenIdle(t *testing.T) {
	h := startTask(t, time.Hour)
	h.requestRender(false)
	h.awaitResponse(time.Second, 7, 8)

	h.wake(7)
	h.wake(8)

	select {
	case ev := <-h.events:
		assert.Equal(t, WakeEvent{}, ev)
	case <-time.After(time.Second):
		t.Fatal("no wake event")
	}

	// Only one wake event until the next render.
	h.expectNoResponse(20 * time.Millisecond)
	assert.Empty(t, h.events)

	h.requestRender(false)
	h.awaitResponse(time.Second)
	h.wake(9)
	select {
	case <-h.events:
	case <-time.After(time.Second):
		t.Fatal("no wake event after the next render")
	}
}

func TestLogicTask_WakeWithoutRebuild(t *testing.T) {
	h := startTask(t, time.Hour)
	h.setResult(Nop[string]())
	h.requestRender(false)
	h.awaitResponse(time.Second, 7)

	h.wake(7)
	h.expectNoResponse(20 * time.Millisecond)
	assert.Empty(t, h.events)
	assert.Equal(t, []IdPath{{7}}, h.routed())
}

func TestLogicTask_Messages(t *testing.T) {
	h := startTask(t, time.Hour)
	h.setResult(ActionResult("saved"))
	h.requestRender(false)
	h.awaitResponse(time.Second)

	h.requests <- taskRequest{kind: reqMessages, messages: []Message{
		{Path: IdPath{stubRoot, 3, 4}, Body: ClickMsg{}},
		{Path: IdPath{999, 3}, Body: ClickMsg{}},
		{Path: nil, Body: ClickMsg{}},
	}}

	select {
	case a := <-h.actions:
		assert.Equal(t, "saved", a)
	case <-time.After(time.Second):
		t.Fatal("no action")
	}
	require.Eventually(t, func() bool { return len(h.routed()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []IdPath{{3, 4}}, h.routed(), "messages for another root are dropped")
}

func TestLogicTask_MessagesBeforeFirstRender(t *testing.T) {
	h := startTask(t, time.Hour)
	h.requests <- taskRequest{kind: reqMessages, messages: []Message{{Path: IdPath{stubRoot}, Body: ClickMsg{}}}}
	h.requestRender(false)
	h.awaitResponse(time.Second)
	assert.Empty(t, h.routed())
}
