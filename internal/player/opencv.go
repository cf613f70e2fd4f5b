package player

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"gocv.io/x/gocv"

	"github.com/KirkDiggler/bowcinema/internal/common/clock"
)

// VideoPicker chooses the video file for a game.
type VideoPicker interface {
	PickVideo(game string) (string, error)
}

// OpenCVConfig holds what the window player needs.
type OpenCVConfig struct {
	Picker     VideoPicker
	Clock      clock.Clock
	WindowName string
	Fullscreen bool
	Logger     *slog.Logger
}

// OpenCVPlayer decodes the video with OpenCV and draws it into a HighGUI
// window. All calls must come from the thread that owns the window.
type OpenCVPlayer struct {
	picker     VideoPicker
	clock      clock.Clock
	logger     *slog.Logger
	windowName string
	fullscreen bool

	window  *gocv.Window
	video   *gocv.VideoCapture
	frame   gocv.Mat
	shooter string

	fps        float64
	frameCount float64
	position   float64

	started   bool
	paused    bool
	finished  bool
	startedAt time.Time
	pausedAt  time.Time
	pausedFor time.Duration
}

// NewOpenCV creates a window player.
func NewOpenCV(cfg *OpenCVConfig) (*OpenCVPlayer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("player config cannot be nil")
	}
	if cfg.Picker == nil {
		return nil, fmt.Errorf("video picker cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, fmt.Errorf("clock cannot be nil")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	name := cfg.WindowName
	if name == "" {
		name = "Bow Cinema"
	}

	return &OpenCVPlayer{
		picker:     cfg.Picker,
		clock:      cfg.Clock,
		logger:     logger,
		windowName: name,
		fullscreen: cfg.Fullscreen,
		frame:      gocv.NewMat(),
	}, nil
}

// Play opens a random video of game and starts the playback clock.
func (p *OpenCVPlayer) Play(shooter, game string) error {
	p.closeVideo()

	path, err := p.picker.PickVideo(game)
	if err != nil {
		return err
	}

	video, err := gocv.VideoCaptureFile(path)
	if err != nil || !video.IsOpened() {
		if video != nil {
			video.Close()
		}
		return fmt.Errorf("%w: %s", ErrOpenFailed, path)
	}

	if p.window == nil {
		p.window = gocv.NewWindow(p.windowName)
		if p.fullscreen {
			p.window.SetWindowProperty(gocv.WindowPropertyFullscreen, gocv.WindowFullscreen)
		}
	}

	p.video = video
	p.shooter = shooter
	p.fps = video.Get(gocv.VideoCaptureFPS)
	if p.fps <= 0 {
		p.fps = 25
	}
	p.frameCount = video.Get(gocv.VideoCaptureFrameCount)
	p.position = 0
	p.started = true
	p.paused = false
	p.finished = false
	p.startedAt = p.clock.Now()
	p.pausedFor = 0

	p.logger.Info("round video started",
		slog.String("shooter", shooter),
		slog.String("game", game),
		slog.String("video", path),
	)
	return nil
}

// Pause freezes the current frame.
func (p *OpenCVPlayer) Pause() {
	if !p.started || p.paused {
		return
	}
	p.paused = true
	p.pausedAt = p.clock.Now()
}

// Resume continues after Pause.
func (p *OpenCVPlayer) Resume() {
	if !p.started || !p.paused {
		return
	}
	p.paused = false
	p.pausedFor += p.clock.Now().Sub(p.pausedAt)
}

// Stop ends playback and closes the window.
func (p *OpenCVPlayer) Stop() {
	p.closeVideo()
	if p.window != nil {
		p.window.Close()
		p.window = nil
	}
}

// IsFinished is only true for a started video that reached its end.
func (p *OpenCVPlayer) IsFinished() bool {
	return p.started && p.finished
}

// RemainingTime estimates the time left from the frame position.
func (p *OpenCVPlayer) RemainingTime() time.Duration {
	if !p.started {
		return 0
	}
	return remaining(p.frameCount, p.position, p.fps)
}

// Render decodes frames up to the wall-clock position and shows the
// latest one.
func (p *OpenCVPlayer) Render() {
	if !p.started || p.finished || p.window == nil {
		return
	}
	if !p.paused {
		elapsed := p.clock.Now().Sub(p.startedAt) - p.pausedFor
		target := elapsed.Seconds() * p.fps
		for p.position < target {
			if ok := p.video.Read(&p.frame); !ok || p.frame.Empty() {
				p.finished = true
				p.logger.Debug("round video finished", slog.String("shooter", p.shooter))
				return
			}
			p.position++
		}
	}
	if p.frame.Empty() {
		return
	}

	overlay := p.frame.Clone()
	defer overlay.Close()
	gocv.PutText(&overlay, p.shooter, image.Pt(20, 40), gocv.FontHersheySimplex, 1.2, color.RGBA{R: 255, G: 255, B: 255, A: 255}, 2)
	gocv.PutText(&overlay, formatClock(p.RemainingTime()), image.Pt(20, 80), gocv.FontHersheySimplex, 1.0, color.RGBA{R: 255, G: 255, A: 255}, 2)

	p.window.IMShow(overlay)
	p.window.WaitKey(1)
}

// Close releases the window and decoder.
func (p *OpenCVPlayer) Close() error {
	p.Stop()
	return p.frame.Close()
}

func (p *OpenCVPlayer) closeVideo() {
	if p.video != nil {
		p.video.Close()
		p.video = nil
	}
	p.started = false
	p.paused = false
	p.finished = false
}

func remaining(frameCount, position, fps float64) time.Duration {
	if fps <= 0 || frameCount <= position {
		return 0
	}
	return time.Duration((frameCount - position) / fps * float64(time.Second))
}

// formatClock renders a duration as MM:SS.
func formatClock(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
