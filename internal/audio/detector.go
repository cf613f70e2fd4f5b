// Package audio turns a stream of microphone blocks into discrete "bang"
// events: a short burst of loud blocks followed by a quiet block.
package audio

import (
	"log/slog"
	"math"
	"time"
)

const (
	// shortNormalize scales signed 16-bit samples into [-1, 1]
	shortNormalize = 1.0 / 32768.0

	// thresholdRaise is applied after a long run of loud blocks
	thresholdRaise = 1.1

	// thresholdLower is applied after a long run of quiet blocks
	thresholdLower = 2.0

	// maxThreshold is the RMS of a full-scale block; no block can exceed it
	maxThreshold = 1.0
)

// BlockSource delivers fixed-size blocks of signed 16-bit samples.
type BlockSource interface {
	ReadBlock() ([]int16, error)
}

// TuningConfig expresses the detector bounds as durations.
type TuningConfig struct {
	InitialThreshold float64
	Oversensitive    time.Duration
	Undersensitive   time.Duration
	MaxTapLength     time.Duration
}

// DefaultTuningConfig returns the bounds used at the venue.
func DefaultTuningConfig() TuningConfig {
	return TuningConfig{
		InitialThreshold: 0.025,
		Oversensitive:    15 * time.Second,
		Undersensitive:   120 * time.Second,
		MaxTapLength:     150 * time.Millisecond,
	}
}

// Tuning holds the bounds expressed in blocks for one block duration.
type Tuning struct {
	BlockTime        time.Duration
	InitialThreshold float64

	// Oversensitive is the loud-block run after which the threshold is raised
	Oversensitive float64

	// Undersensitive is the quiet-block run after which the threshold is lowered
	Undersensitive float64

	// MaxTapBlocks is the longest loud run still counted as a tap
	MaxTapBlocks float64
}

// NewTuning derives block-count bounds from the block duration. It must be
// recomputed whenever a device with a different block duration is opened.
func NewTuning(blockTime time.Duration, cfg TuningConfig) Tuning {
	block := blockTime.Seconds()
	return Tuning{
		BlockTime:        blockTime,
		InitialThreshold: cfg.InitialThreshold,
		Oversensitive:    cfg.Oversensitive.Seconds() / block,
		Undersensitive:   cfg.Undersensitive.Seconds() / block,
		MaxTapBlocks:     cfg.MaxTapLength.Seconds() / block,
	}
}

// Detector classifies blocks from a BlockSource. It is not safe for
// concurrent use; the tick loop is its only caller.
type Detector struct {
	source BlockSource
	tuning Tuning
	logger *slog.Logger

	threshold  float64
	noisyCount int
	quietCount int
	errorCount int
}

// NewDetector creates a detector reading from source.
func NewDetector(source BlockSource, tuning Tuning, logger *slog.Logger) (*Detector, error) {
	if source == nil {
		return nil, ErrNilSource
	}
	if tuning.BlockTime <= 0 || tuning.InitialThreshold <= 0 {
		return nil, ErrInvalidTuning
	}
	if logger == nil {
		logger = slog.Default()
	}

	d := &Detector{
		source: source,
		tuning: tuning,
		logger: logger,
	}
	d.Reset()
	return d, nil
}

// Reset restores the initial threshold and counters.
func (d *Detector) Reset() {
	d.threshold = d.tuning.InitialThreshold
	d.armGuard()
	d.quietCount = 0
}

// armGuard puts the loud-run counter above the tap bound so the next quiet
// block cannot fire.
func (d *Detector) armGuard() {
	d.noisyCount = int(math.Floor(d.tuning.MaxTapBlocks)) + 1
}

// Retune swaps bounds after the source was reopened with a new block
// duration. The adapted threshold is kept.
func (d *Detector) Retune(tuning Tuning) {
	d.tuning = tuning
}

// Reopener is a BlockSource that can move to another input device.
type Reopener interface {
	BlockSource
	Reopen(deviceIndex int) error
	BlockTime() time.Duration
}

// SwitchDevice reopens the source on deviceIndex, derives the bounds from
// the new block duration and starts over from the initial threshold.
func (d *Detector) SwitchDevice(deviceIndex int, cfg TuningConfig) error {
	src, ok := d.source.(Reopener)
	if !ok {
		return ErrNotReopenable
	}
	if err := src.Reopen(deviceIndex); err != nil {
		return err
	}
	d.tuning = NewTuning(src.BlockTime(), cfg)
	d.Reset()
	d.logger.Info("detector retuned",
		slog.Int("device", deviceIndex),
		slog.Duration("block", d.tuning.BlockTime),
		slog.Float64("max_tap_blocks", d.tuning.MaxTapBlocks),
	)
	return nil
}

// Poll reads one block and returns true exactly once per detected tap.
// Read errors are absorbed: they are counted and the next quiet block is
// prevented from firing, so a tap cut by an overflow is dropped.
func (d *Detector) Poll() bool {
	block, err := d.source.ReadBlock()
	if err != nil {
		d.errorCount++
		d.armGuard()
		d.logger.Warn("audio block read failed",
			slog.Int("error_count", d.errorCount),
			slog.Any("error", err),
		)
		return false
	}
	return d.classify(RMS(block))
}

func (d *Detector) classify(amplitude float64) bool {
	if amplitude > d.threshold {
		d.quietCount = 0
		d.noisyCount++
		if float64(d.noisyCount) > d.tuning.Oversensitive {
			d.threshold = math.Min(d.threshold*thresholdRaise, maxThreshold)
		}
		return false
	}

	detected := d.noisyCount >= 1 && float64(d.noisyCount) <= d.tuning.MaxTapBlocks

	d.noisyCount = 0
	d.quietCount++
	if float64(d.quietCount) > d.tuning.Undersensitive {
		d.threshold = math.Min(d.threshold*thresholdLower, maxThreshold)
	}
	return detected
}

// Threshold returns the current adaptive threshold.
func (d *Detector) Threshold() float64 {
	return d.threshold
}

// ErrorCount returns the number of failed block reads so far.
func (d *Detector) ErrorCount() int {
	return d.errorCount
}

// RMS returns the root mean square of the normalized samples.
func RMS(block []int16) float64 {
	if len(block) == 0 {
		return 0
	}
	var sumSquares float64
	for _, sample := range block {
		n := float64(sample) * shortNormalize
		sumSquares += n * n
	}
	return math.Sqrt(sumSquares / float64(len(block)))
}
