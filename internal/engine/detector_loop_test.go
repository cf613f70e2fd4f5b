package engine

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/bowcinema/internal/audio"
	"github.com/KirkDiggler/bowcinema/internal/models"
	"github.com/KirkDiggler/bowcinema/internal/services/game"
	gameMocks "github.com/KirkDiggler/bowcinema/internal/services/game/mocks"
	ledgerMocks "github.com/KirkDiggler/bowcinema/internal/services/ledger/mocks"
)

// scriptedSource replays RMS levels as blocks. NaN is a read error and
// silence follows the end of the script.
type scriptedSource struct {
	levels []float64
	reads  int
}

func (f *scriptedSource) ReadBlock() ([]int16, error) {
	level := 0.0
	if f.reads < len(f.levels) {
		level = f.levels[f.reads]
	}
	f.reads++
	if math.IsNaN(level) {
		return nil, errors.New("input overflowed")
	}
	v := int16(math.Round(level * 32767))
	block := make([]int16, 64)
	for i := range block {
		block[i] = v
	}
	return block, nil
}

type DetectorLoopTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockSequencer *gameMocks.MockService
	mockLedger    *ledgerMocks.MockService
	source        *scriptedSource
	detector      *audio.Detector
	tuning        audio.Tuning
	engine        *Engine
	ctx           context.Context

	state models.SequenceState
	bangs int
}

func (s *DetectorLoopTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSequencer = gameMocks.NewMockService(s.mockCtrl)
	s.mockLedger = ledgerMocks.NewMockService(s.mockCtrl)
	s.ctx = context.Background()
	s.state = models.SequenceStateAwaitingStart
	s.bangs = 0

	s.source = &scriptedSource{}
	s.tuning = audio.NewTuning(35*time.Millisecond, audio.DefaultTuningConfig())
	d, err := audio.NewDetector(s.source, s.tuning, nil)
	s.Require().NoError(err)
	s.detector = d

	e, err := New(&Config{
		Sequencer:    s.mockSequencer,
		Ledger:       s.mockLedger,
		Detector:     s.detector,
		TickInterval: 100 * time.Millisecond,
	})
	s.Require().NoError(err)
	s.engine = e

	s.mockSequencer.EXPECT().Status(gomock.Any()).DoAndReturn(func(context.Context) *game.StatusOutput {
		return &game.StatusOutput{State: s.state}
	}).AnyTimes()
	s.mockSequencer.EXPECT().HandleBang(gomock.Any()).DoAndReturn(func(context.Context) (*game.BangOutput, error) {
		s.bangs++
		return &game.BangOutput{Outcome: game.BangOutcomeRecorded, ArrowNumber: s.bangs}, nil
	}).AnyTimes()
}

func (s *DetectorLoopTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDetectorLoopTestSuite(t *testing.T) {
	suite.Run(t, new(DetectorLoopTestSuite))
}

func (s *DetectorLoopTestSuite) start() {
	input := &game.StartInput{Shooters: []string{"Hawkeye"}, Games: []string{"deer"}}
	s.mockSequencer.EXPECT().Start(gomock.Any(), input).DoAndReturn(func(context.Context, *game.StartInput) (*game.StartOutput, error) {
		s.state = models.SequenceStateRoundActive
		return &game.StartOutput{SessionID: "BogenKino_2025-06-14_18-00"}, nil
	})

	res := s.engine.dispatch(s.ctx, &Command{Kind: CommandStart, Start: input})
	s.Require().NoError(res.Err)
}

// ticks stays below the round check interval
func (s *DetectorLoopTestSuite) tickN(n int) {
	for range n {
		s.engine.tick(s.ctx)
	}
}

func (s *DetectorLoopTestSuite) TestIdleBeforeStart_TapInFirstRoundHandled() {
	idle := int(s.tuning.Undersensitive) + 100
	s.tickN(idle)
	s.Equal(0, s.source.reads, "nothing is read while waiting for start")

	s.source.levels = []float64{0.01, 0.9, 0.9, 0.01}
	s.start()
	s.tickN(4)

	s.Equal(1, s.bangs)
	s.Equal(s.tuning.InitialThreshold, s.detector.Threshold())
}

func (s *DetectorLoopTestSuite) TestRoundStart_RestoresDriftedThreshold() {
	quiet := int(s.tuning.Undersensitive) + 100
	for range quiet {
		s.detector.Poll()
	}
	s.Require().Greater(s.detector.Threshold(), 0.9)

	s.source.levels = make([]float64, quiet+4)
	copy(s.source.levels[quiet:], []float64{0.01, 0.9, 0.9, 0.01})
	s.start()
	s.tickN(4)

	s.Equal(1, s.bangs)
}

func (s *DetectorLoopTestSuite) TestOverflowAfterCaptureStall_NoPhantomBang() {
	// tap, then the read after the stalled capture overflows, then silence
	s.source.levels = []float64{0.01, 0.9, 0.01, math.NaN(), 0.01, 0.01, 0.01}
	s.start()
	s.tickN(7)

	s.Equal(1, s.bangs)
	s.Equal(1, s.detector.ErrorCount())
}
