package window

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/star-dodge/internal/config"
	"github.com/vovakirdan/star-dodge/internal/core"
	"github.com/vovakirdan/star-dodge/internal/games/stardodge"
)

// scriptedGame replays fixed step results and counts renders.
type scriptedGame struct {
	results []core.StepResult
	steps   int
	renders int
	inputs  []core.InputFrame
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) {}
func (g *scriptedGame) Render(core.Canvas) { g.renders++ }
func (g *scriptedGame) State() core.GameState { return g.results[len(g.results)-1].State }
func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in)
	r := g.results[core.Min(g.steps, len(g.results)-1)]
	g.steps++
	return r
}

// newTestRunner builds a running runner with Ebiten hooks replaced.
func newTestRunner(game core.Game, out io.Writer) (*runner, *time.Time, *int) {
	r := newRunner(game, Options{Width: 800, Height: 600, ExitDelay: time.Second}, log.New(out))

	now := time.Unix(1000, 0)
	overlays := 0
	r.now = func() time.Time { return now }
	r.read = func() core.InputFrame { return core.NewInputFrame() }
	r.overlay = func(*ebiten.Image) { overlays++ }
	r.phase = phaseRunning
	return r, &now, &overlays
}

func TestNewOptions(t *testing.T) {
	cfg := config.Default()
	opts := NewOptions(cfg, "/opt/stardodge")

	if opts.Width != 800 || opts.Height != 600 {
		t.Errorf("size = %dx%d, expected 800x600", opts.Width, opts.Height)
	}
	if opts.Runtime.ScreenW != 800 || opts.Runtime.ScreenH != 600 {
		t.Errorf("runtime size = %dx%d, expected 800x600", opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	}
	if opts.Runtime.TickRate != 60 {
		t.Errorf("tick rate = %d, expected 60", opts.Runtime.TickRate)
	}
	if opts.ExitDelay != time.Second {
		t.Errorf("exit delay = %v, expected 1s", opts.ExitDelay)
	}
	if opts.ColorKey.R != 0xFF || opts.ColorKey.G != 0xFF || opts.ColorKey.B != 0xFF || opts.ColorKey.A != 0xFF {
		t.Errorf("color key = %+v, expected opaque white", opts.ColorKey)
	}

	expected := []Sprite{
		{Sheet: stardodge.SheetStar, Path: filepath.Join("/opt/stardodge", "imgs/star.png")},
		{Sheet: stardodge.SheetMan, Path: filepath.Join("/opt/stardodge", "imgs/man.png")},
	}
	if len(opts.Sprites) != len(expected) {
		t.Fatalf("got %d sprites, expected %d", len(opts.Sprites), len(expected))
	}
	for i := range expected {
		if opts.Sprites[i] != expected[i] {
			t.Errorf("sprite %d = %+v, expected %+v", i, opts.Sprites[i], expected[i])
		}
	}
}

func TestNewOptionsKeepsPaths(t *testing.T) {
	cfg := config.Default()
	cfg.Assets.Star = "/abs/star.png"

	opts := NewOptions(cfg, "assets")
	if opts.Sprites[0].Path != "/abs/star.png" {
		t.Errorf("absolute path rewritten: %s", opts.Sprites[0].Path)
	}

	opts = NewOptions(cfg, "")
	if opts.Sprites[1].Path != "imgs/man.png" {
		t.Errorf("relative path without assets dir = %s", opts.Sprites[1].Path)
	}
}

func TestTicksPerSecond(t *testing.T) {
	tests := []struct {
		name     string
		vsync    bool
		tickRate int
		expected int
	}{
		{"vsync follows the display", true, 30, ebiten.SyncWithFPS},
		{"no vsync uses tick rate", false, 30, 30},
		{"no vsync without tick rate", false, 0, 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := Options{VSync: tc.vsync, Runtime: core.RuntimeConfig{TickRate: tc.tickRate}}
			if got := ticksPerSecond(opts); got != tc.expected {
				t.Errorf("ticksPerSecond() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestRunnerIdleBeforeStart(t *testing.T) {
	game := stardodge.New(config.Default())
	r := newRunner(game, Options{Width: 800, Height: 600}, log.New(io.Discard))

	if err := r.Update(); err != nil {
		t.Errorf("Update = %v, expected nil", err)
	}
	if w, h := r.Layout(1920, 1080); w != 800 || h != 600 {
		t.Errorf("Layout = %dx%d, expected 800x600", w, h)
	}
	if got := game.State(); got.Ticks != 0 {
		t.Errorf("game stepped before start: %+v", got)
	}
}

func TestRunnerRunsUntilGameOver(t *testing.T) {
	contacts := []core.Contact{{Index: 2, Side: core.SideLeft}, {Index: 7, Side: core.SideTop}}
	game := &scriptedGame{results: []core.StepResult{
		{State: core.GameState{Ticks: 1}},
		{State: core.GameState{GameOver: true, Reason: core.EndCollision, Ticks: 2}, Contacts: contacts},
	}}
	var out bytes.Buffer
	r, _, overlays := newTestRunner(game, &out)

	if err := r.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if r.phase != phaseRunning {
		t.Fatalf("phase = %v after a running step, expected running", r.phase)
	}
	r.Draw(nil)
	if game.renders != 1 || *overlays != 0 {
		t.Errorf("renders=%d overlays=%d, expected 1 and 0", game.renders, *overlays)
	}

	if err := r.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if r.phase != phaseTerminated {
		t.Fatalf("phase = %v after game over, expected terminated", r.phase)
	}
	if r.last.State.Reason != core.EndCollision || len(r.last.Contacts) != 2 {
		t.Errorf("last result = %+v, expected collision with 2 contacts", r.last)
	}
	if got := strings.Count(out.String(), "game over"); got != len(contacts) {
		t.Errorf("logged %d game over lines, expected %d:\n%s", got, len(contacts), out.String())
	}
	if !strings.Contains(out.String(), "side=left") || !strings.Contains(out.String(), "side=top") {
		t.Errorf("log should name each side:\n%s", out.String())
	}

	if err := r.Update(); err != nil {
		t.Fatalf("Update before the final frame = %v, expected nil", err)
	}
	if game.steps != 2 {
		t.Errorf("game stepped %d times, expected 2", game.steps)
	}
}

func TestRunnerDrawsOneFinalFrame(t *testing.T) {
	game := &scriptedGame{results: []core.StepResult{
		{State: core.GameState{GameOver: true, Reason: core.EndEscape, Ticks: 1}},
	}}
	r, now, overlays := newTestRunner(game, io.Discard)

	if err := r.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	r.Draw(nil)
	if !r.finalDrawn {
		t.Fatal("final frame should be marked drawn")
	}
	if expected := now.Add(time.Second); !r.deadline.Equal(expected) {
		t.Errorf("deadline = %v, expected %v", r.deadline, expected)
	}

	r.Draw(nil)
	r.Draw(nil)
	if game.renders != 1 {
		t.Errorf("renders = %d, expected exactly 1 final frame", game.renders)
	}
	if *overlays != 1 {
		t.Errorf("overlays = %d, expected 1", *overlays)
	}
}

func TestRunnerHoldsFinalFrame(t *testing.T) {
	game := &scriptedGame{results: []core.StepResult{
		{State: core.GameState{GameOver: true, Reason: core.EndQuit, Ticks: 1}},
	}}
	r, now, _ := newTestRunner(game, io.Discard)

	if err := r.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	r.Draw(nil)

	*now = now.Add(999 * time.Millisecond)
	if err := r.Update(); err != nil {
		t.Fatalf("Update before deadline = %v, expected nil", err)
	}

	*now = now.Add(time.Millisecond)
	if err := r.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Update at deadline = %v, expected ebiten.Termination", err)
	}
	if game.steps != 1 {
		t.Errorf("game stepped %d times while holding, expected 1", game.steps)
	}
}

func TestRunnerPassesInputToGame(t *testing.T) {
	game := &scriptedGame{results: []core.StepResult{{}}}
	r, _, _ := newTestRunner(game, io.Discard)
	r.read = func() core.InputFrame {
		in := core.NewInputFrame()
		in.Set(core.ActionUp)
		in.KeyDown(core.ActionUp)
		return in
	}

	if err := r.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(game.inputs) != 1 || !game.inputs[0].Has(core.ActionUp) || len(game.inputs[0].Events) != 1 {
		t.Errorf("inputs = %+v, expected one frame with up held and pressed", game.inputs)
	}
}

func TestRunnerReleasesInReverseOrder(t *testing.T) {
	r, _, _ := newTestRunner(&scriptedGame{results: []core.StepResult{{}}}, io.Discard)

	star, man := new(ebiten.Image), new(ebiten.Image)
	r.canvas.add(stardodge.SheetStar, star)
	r.canvas.add("missing", nil)
	r.canvas.add(stardodge.SheetMan, man)

	var freed []*ebiten.Image
	r.free = func(img *ebiten.Image) { freed = append(freed, img) }
	r.release()

	if len(freed) != 2 {
		t.Fatalf("freed %d textures, expected 2 (nil skipped)", len(freed))
	}
	if freed[0] != man || freed[1] != star {
		t.Error("textures should be released man first, then star")
	}
	if len(r.canvas.order) != 0 || len(r.canvas.textures) != 0 {
		t.Error("canvas should be empty after release")
	}
}

var _ core.Canvas = (*canvas)(nil)
