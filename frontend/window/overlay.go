package window

import (
	"fmt"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
)

const historyFrames = 120

// Item is one Dear ImGui window drawn by the overlay each frame.
type Item struct {
	Render func()
}

// Overlay draws debug windows over the game. It owns the Dear ImGui backend.
type Overlay struct {
	backend         *ebitenbackend.EbitenBackend
	items           []Item
	history         *loop.FrameHistory
	visible         bool
	captureKeyboard bool
}

// NewOverlay creates the overlay with the session and scheduler windows and
// registers the system that renders it.
func NewOverlay(session *loop.Session) *Overlay {
	o := &Overlay{
		backend: ebitenbackend.NewEbitenBackend(),
		history: loop.NewFrameHistory(historyFrames),
		visible: true,
	}
	o.Add(
		Item{Render: func() { renderSession(session.View()) }},
		Item{Render: func() { o.renderScheduler(session.Scheduler().GetStats()) }},
	)
	session.Scheduler().Register(&overlaySystem{overlay: o})
	return o
}

func (o *Overlay) Add(items ...Item) {
	o.items = append(o.items, items...)
}

func (o *Overlay) Toggle() {
	o.visible = !o.visible
}

// CapturesKeyboard reports whether an overlay widget had keyboard focus
// during the last frame.
func (o *Overlay) CapturesKeyboard() bool {
	return o.visible && o.captureKeyboard
}

// CreateWindow opens the ebiten window through the backend.
func (o *Overlay) CreateWindow(title string, width, height int) {
	o.backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
}

func (o *Overlay) BeginFrame(dt float64) {
	o.history.Add(dt)
	o.backend.BeginFrame()
}

func (o *Overlay) EndFrame() {
	o.backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(width, height int) {
	o.backend.Layout(width, height)
}

// overlaySystem defers every item so the windows reflect the state after the
// frame's tick.
type overlaySystem struct {
	overlay *Overlay
}

func (s *overlaySystem) Execute(frame *loop.Frame) {
	s.overlay.captureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()
	if !s.overlay.visible {
		return
	}
	for _, item := range s.overlay.items {
		frame.Commands.Defer(item.Render)
	}
}

func renderSession(view loop.View) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 220), imgui.CondOnce)
	if !imgui.BeginV("Game", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	f := view.Field
	imgui.Text(fmt.Sprintf("State: %s", view.State))
	imgui.Text(fmt.Sprintf("Field: %dx%d", f.SizeX(), f.SizeY()))
	if active, ok := f.ActivePiece(); ok {
		imgui.Text(fmt.Sprintf("Active: %s %s", active.Type, active.Color))
		for _, p := range active.Points {
			imgui.BulletText(p.String())
		}
	} else {
		imgui.Text("Active: none")
	}

	imgui.Separator()
	renderStats(view.Stats)

	imgui.End()
}

func renderStats(stats game.Stats) {
	imgui.Text(fmt.Sprintf("Ticks: %d", stats.Ticks))
	imgui.Text(fmt.Sprintf("Pieces: %d spawned, %d frozen", stats.PiecesSpawned, stats.PiecesFrozen))
	imgui.Text(fmt.Sprintf("Rows cleared: %d", stats.RowsCleared))
}

func (o *Overlay) renderScheduler(stats *loop.SchedulerStats) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 240), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 300), imgui.CondOnce)
	if !imgui.BeginV("Loop", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", o.history.Average(), o.history.FPS()))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	samples := o.history.Samples()
	imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))

	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, s := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(s.Name)
				imgui.TableNextColumn()
				imgui.Text(s.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(s.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(s.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
