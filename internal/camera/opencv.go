package camera

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"sync"

	"gocv.io/x/gocv"
)

// OpenCVConfig holds the device settings.
type OpenCVConfig struct {
	DeviceIndex int
	Width       int
	Height      int
	Logger      *slog.Logger
}

// OpenCVCamera reads frames from a local capture device.
type OpenCVCamera struct {
	mu     sync.Mutex
	cfg    OpenCVConfig
	logger *slog.Logger
	device *gocv.VideoCapture
	frame  gocv.Mat
}

// OpenCV opens the configured capture device.
func OpenCV(cfg *OpenCVConfig) (*OpenCVCamera, error) {
	if cfg == nil {
		return nil, fmt.Errorf("camera config cannot be nil")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &OpenCVCamera{
		cfg:    *cfg,
		logger: logger,
		frame:  gocv.NewMat(),
	}
	if err := c.open(cfg.DeviceIndex); err != nil {
		c.frame.Close()
		return nil, err
	}
	return c, nil
}

func (c *OpenCVCamera) open(index int) error {
	device, err := gocv.OpenVideoCapture(index)
	if err != nil {
		return fmt.Errorf("%w: device %d: %v", ErrDeviceUnavailable, index, err)
	}
	if !device.IsOpened() {
		device.Close()
		return fmt.Errorf("%w: device %d", ErrDeviceUnavailable, index)
	}

	if c.cfg.Width > 0 && c.cfg.Height > 0 {
		device.Set(gocv.VideoCaptureFrameWidth, float64(c.cfg.Width))
		device.Set(gocv.VideoCaptureFrameHeight, float64(c.cfg.Height))
	}

	c.device = device
	c.cfg.DeviceIndex = index
	c.logger.Info("camera opened",
		slog.Int("device", index),
		slog.Float64("width", device.Get(gocv.VideoCaptureFrameWidth)),
		slog.Float64("height", device.Get(gocv.VideoCaptureFrameHeight)),
	)
	return nil
}

// Switch closes the current device and opens index instead.
func (c *OpenCVCamera) Switch(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.device != nil {
		c.device.Close()
		c.device = nil
	}
	return c.open(index)
}

// GrabFrame reads one frame. The read runs on its own goroutine so a hung
// device cannot outlive ctx; a late read still holds the lock until it
// returns.
func (c *OpenCVCamera) GrabFrame(ctx context.Context) (image.Image, error) {
	type result struct {
		img image.Image
		err error
	}
	done := make(chan result, 1)

	go func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		img, err := c.read()
		done <- result{img: img, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.img, r.err
	}
}

func (c *OpenCVCamera) read() (image.Image, error) {
	if c.device == nil {
		return nil, ErrClosed
	}
	if ok := c.device.Read(&c.frame); !ok || c.frame.Empty() {
		return nil, ErrEmptyFrame
	}
	img, err := c.frame.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert frame: %w", err)
	}
	return img, nil
}

// Close releases the device and the frame buffer.
func (c *OpenCVCamera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var err error
	if c.device != nil {
		err = c.device.Close()
		c.device = nil
	}
	c.frame.Close()
	return err
}
