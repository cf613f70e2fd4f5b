package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gordonklaus/portaudio"
)

// InputDevice describes a capture-capable audio device.
type InputDevice struct {
	Index      int
	Name       string
	Channels   int
	SampleRate float64
}

// PortAudioSource reads blocking blocks from a PortAudio input stream.
type PortAudioSource struct {
	mu        sync.Mutex
	blockTime time.Duration
	logger    *slog.Logger

	stream *portaudio.Stream
	buffer []int16
	device InputDevice
}

// PortAudioConfig holds settings for opening the input stream.
type PortAudioConfig struct {
	DeviceIndex int
	BlockTime   time.Duration
	Logger      *slog.Logger
}

// OpenPortAudio initializes PortAudio and opens the configured input device.
func OpenPortAudio(cfg *PortAudioConfig) (*PortAudioSource, error) {
	if cfg == nil {
		return nil, fmt.Errorf("portaudio config cannot be nil")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize portaudio: %w", err)
	}

	src := &PortAudioSource{
		blockTime: cfg.BlockTime,
		logger:    logger,
	}
	if err := src.Reopen(cfg.DeviceIndex); err != nil {
		portaudio.Terminate()
		return nil, err
	}
	return src, nil
}

// InputDevices lists every device with at least one input channel.
// PortAudio must be initialized.
func InputDevices() ([]InputDevice, error) {
	devices, err := listDevices()
	if err != nil {
		return nil, fmt.Errorf("failed to list audio devices: %w", err)
	}

	var inputs []InputDevice
	for i, d := range devices {
		if d.MaxInputChannels <= 0 {
			continue
		}
		inputs = append(inputs, InputDevice{
			Index:      i,
			Name:       d.Name,
			Channels:   d.MaxInputChannels,
			SampleRate: d.DefaultSampleRate,
		})
	}
	return inputs, nil
}

// listDevices is replaced in tests
var listDevices = portaudio.Devices

// Reopen moves the source to deviceIndex, opened with the channel count and
// sample rate the device reports. An invalid index leaves the current stream
// running. If the new stream cannot be opened the previous device is
// reopened.
func (s *PortAudioSource) Reopen(deviceIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	devices, err := listDevices()
	if err != nil {
		return fmt.Errorf("failed to list audio devices: %w", err)
	}
	info, err := inputDevice(devices, deviceIndex)
	if err != nil {
		return err
	}

	previous, hadStream := s.device, s.stream != nil
	s.closeStream()

	if err := s.open(deviceIndex, info); err != nil {
		if hadStream {
			s.restore(devices, previous.Index)
		}
		return err
	}
	return nil
}

// inputDevice returns the device at index if it can record.
func inputDevice(devices []*portaudio.DeviceInfo, index int) (*portaudio.DeviceInfo, error) {
	if index < 0 || index >= len(devices) || devices[index] == nil || devices[index].MaxInputChannels <= 0 {
		return nil, fmt.Errorf("%w: index %d", ErrNoInputDevice, index)
	}
	return devices[index], nil
}

func (s *PortAudioSource) restore(devices []*portaudio.DeviceInfo, index int) {
	info, err := inputDevice(devices, index)
	if err == nil {
		err = s.open(index, info)
	}
	if err != nil {
		s.logger.Error("previous audio input not restored", slog.Int("device", index), slog.Any("error", err))
	}
}

func (s *PortAudioSource) open(deviceIndex int, info *portaudio.DeviceInfo) error {
	framesPerBlock := int(info.DefaultSampleRate * s.blockTime.Seconds())
	channels := info.MaxInputChannels

	params := portaudio.LowLatencyParameters(info, nil)
	params.Input.Channels = channels
	params.SampleRate = info.DefaultSampleRate
	params.FramesPerBuffer = framesPerBlock

	buffer := make([]int16, framesPerBlock*channels)
	stream, err := portaudio.OpenStream(params, buffer)
	if err != nil {
		return fmt.Errorf("failed to open audio stream on %q: %w", info.Name, err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		return fmt.Errorf("failed to start audio stream on %q: %w", info.Name, err)
	}

	s.stream = stream
	s.buffer = buffer
	s.device = InputDevice{
		Index:      deviceIndex,
		Name:       info.Name,
		Channels:   channels,
		SampleRate: info.DefaultSampleRate,
	}

	s.logger.Info("audio input opened",
		slog.String("device", info.Name),
		slog.Int("channels", channels),
		slog.Float64("sample_rate", info.DefaultSampleRate),
		slog.Int("frames_per_block", framesPerBlock),
	)
	return nil
}

// BlockTime returns the effective duration of one block on the open device.
// Integer frame rounding makes it differ slightly from the requested value.
func (s *PortAudioSource) BlockTime() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.device.SampleRate <= 0 || s.device.Channels == 0 {
		return s.blockTime
	}
	frames := len(s.buffer) / s.device.Channels
	return time.Duration(float64(frames) / s.device.SampleRate * float64(time.Second))
}

// Device returns the currently opened device.
func (s *PortAudioSource) Device() InputDevice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.device
}

// ReadBlock blocks for up to one block duration and returns the samples.
// The returned slice is reused by the next call.
func (s *PortAudioSource) ReadBlock() ([]int16, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stream == nil {
		return nil, ErrStreamNotOpen
	}
	if err := s.stream.Read(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceReadError, err)
	}
	return s.buffer, nil
}

// Close stops the stream and releases PortAudio.
func (s *PortAudioSource) Close() error {
	s.mu.Lock()
	s.closeStream()
	s.mu.Unlock()
	return portaudio.Terminate()
}

func (s *PortAudioSource) closeStream() {
	if s.stream == nil {
		return
	}
	if err := s.stream.Stop(); err != nil {
		s.logger.Warn("failed to stop audio stream", slog.Any("error", err))
	}
	if err := s.stream.Close(); err != nil {
		s.logger.Warn("failed to close audio stream", slog.Any("error", err))
	}
	s.stream = nil
}
