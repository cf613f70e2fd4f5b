package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	engineMocks "github.com/KirkDiggler/bowcinema/internal/engine/mocks"
	"github.com/KirkDiggler/bowcinema/internal/metrics"
	"github.com/KirkDiggler/bowcinema/internal/models"
	sessionRepo "github.com/KirkDiggler/bowcinema/internal/repositories/session"
	repoMocks "github.com/KirkDiggler/bowcinema/internal/repositories/session/mocks"
	"github.com/KirkDiggler/bowcinema/internal/services/game"
	gameMocks "github.com/KirkDiggler/bowcinema/internal/services/game/mocks"
	"github.com/KirkDiggler/bowcinema/internal/services/ledger"
	ledgerMocks "github.com/KirkDiggler/bowcinema/internal/services/ledger/mocks"
)

type EngineTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockSequencer *gameMocks.MockService
	mockLedger    *ledgerMocks.MockService
	mockDetector  *engineMocks.MockBangDetector
	mockRepo      *repoMocks.MockRepository
	mockPublisher *engineMocks.MockPublisher
	mockDevices   *engineMocks.MockDeviceSwitcher
	registry      *prometheus.Registry
	engine        *Engine
	ctx           context.Context

	testSession *models.SessionRecord
}

func (s *EngineTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSequencer = gameMocks.NewMockService(s.mockCtrl)
	s.mockLedger = ledgerMocks.NewMockService(s.mockCtrl)
	s.mockDetector = engineMocks.NewMockBangDetector(s.mockCtrl)
	s.mockRepo = repoMocks.NewMockRepository(s.mockCtrl)
	s.mockPublisher = engineMocks.NewMockPublisher(s.mockCtrl)
	s.mockDevices = engineMocks.NewMockDeviceSwitcher(s.mockCtrl)
	s.registry = prometheus.NewRegistry()
	s.ctx = context.Background()

	m, err := metrics.New(s.registry)
	s.Require().NoError(err)

	s.testSession = &models.SessionRecord{
		ID:              "BogenKino_2025-06-14_18-00",
		ResultDir:       s.T().TempDir(),
		ArrowsPerPlayer: 1,
		TotalArrows:     1,
		Shooters: []*models.ShooterRecord{
			{Name: "Hawkeye", TotalPoints: 5, Games: []*models.GameRecord{
				{Name: "deer", TotalPoints: 5, Arrows: []*models.ArrowRecord{{FinalPoints: 5}}},
			}},
		},
	}

	// A long debounce keeps the limiter deterministic within one test
	e, err := New(&Config{
		Sequencer:      s.mockSequencer,
		Ledger:         s.mockLedger,
		Detector:       s.mockDetector,
		Repository:     s.mockRepo,
		Publisher:      s.mockPublisher,
		Devices:        s.mockDevices,
		Metrics:        m,
		TickInterval:   100 * time.Millisecond,
		ManualDebounce: time.Minute,
	})
	s.Require().NoError(err)
	s.engine = e

	s.mockDetector.EXPECT().Threshold().Return(0.025).AnyTimes()
	s.mockDetector.EXPECT().ErrorCount().Return(0).AnyTimes()
}

func (s *EngineTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) expectState(state models.SequenceState) {
	s.mockSequencer.EXPECT().Status(gomock.Any()).Return(&game.StatusOutput{State: state}).AnyTimes()
}

func (s *EngineTestSuite) countOf(name string) int {
	n, err := testutil.GatherAndCount(s.registry, name)
	s.Require().NoError(err)
	return n
}

func (s *EngineTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Ledger: s.mockLedger, TickInterval: time.Millisecond})
	s.ErrorIs(err, ErrNilSequencer)

	_, err = New(&Config{Sequencer: s.mockSequencer, TickInterval: time.Millisecond})
	s.ErrorIs(err, ErrNilLedger)

	_, err = New(&Config{Sequencer: s.mockSequencer, Ledger: s.mockLedger})
	s.ErrorIs(err, ErrInvalidInterval)
}

func (s *EngineTestSuite) TestRoundCheckEvery() {
	s.Equal(9, roundCheckEvery(100*time.Millisecond))
	s.Equal(1, roundCheckEvery(time.Second))
	s.Equal(1, roundCheckEvery(2*time.Second))
}

func (s *EngineTestSuite) TestTick_DetectorNotPolledWhenIdle() {
	s.expectState(models.SequenceStateAwaitingStart)
	s.mockDetector.EXPECT().Poll().Times(0)

	s.engine.tick(s.ctx)
}

func (s *EngineTestSuite) TestTick_AudioBangHandled() {
	s.expectState(models.SequenceStateRoundActive)
	s.mockDetector.EXPECT().Poll().Return(true)
	s.mockSequencer.EXPECT().HandleBang(gomock.Any()).Return(&game.BangOutput{
		Outcome:     game.BangOutcomeRecorded,
		Shooter:     "Hawkeye",
		Game:        "deer",
		ArrowNumber: 1,
		Duration:    2 * time.Second,
	}, nil)

	s.engine.tick(s.ctx)

	s.Equal(1, s.countOf("bowcinema_bangs_total"))
	s.Equal(1, s.countOf("bowcinema_bang_outcomes_total"))
}

func (s *EngineTestSuite) TestTick_ManualBangTakesPriority() {
	s.expectState(models.SequenceStateRoundActive)

	res := s.engine.dispatch(s.ctx, &Command{Kind: CommandManualBang})
	s.NoError(res.Err)
	s.True(res.Accepted)

	// Debounced while the first one is pending
	res = s.engine.dispatch(s.ctx, &Command{Kind: CommandManualBang})
	s.NoError(res.Err)
	s.False(res.Accepted)

	s.mockDetector.EXPECT().Poll().Return(true).Times(2)
	s.mockSequencer.EXPECT().HandleBang(gomock.Any()).Return(&game.BangOutput{Outcome: game.BangOutcomeRecorded}, nil).Times(2)

	// One bang per tick: manual first, audio on the next tick
	s.engine.tick(s.ctx)
	s.False(s.engine.pendingManual)
	s.engine.tick(s.ctx)
}

func (s *EngineTestSuite) TestManualBang_RequiresActiveRound() {
	s.expectState(models.SequenceStateRoundBetween)

	res := s.engine.dispatch(s.ctx, &Command{Kind: CommandManualBang})
	s.ErrorIs(res.Err, game.ErrInvalidState)
	s.False(res.Accepted)
}

func (s *EngineTestSuite) TestTick_ChecksRoundAndCompletes() {
	s.expectState(models.SequenceStateRoundActive)
	// the completing tick no longer listens
	s.mockDetector.EXPECT().Poll().Return(false).Times(8)

	gomock.InOrder(
		s.mockSequencer.EXPECT().CheckRound(gomock.Any()).Return(&game.RoundOutput{
			Advanced: true,
			State:    models.SequenceStateComplete,
		}, nil),
		s.mockLedger.EXPECT().Snapshot(gomock.Any()).Return(s.testSession, nil),
		s.mockRepo.EXPECT().SaveSession(gomock.Any(), &sessionRepo.SaveSessionInput{Session: s.testSession}).Return(nil),
	)

	for range 9 {
		s.engine.tick(s.ctx)
	}

	_, err := os.Stat(filepath.Join(s.testSession.ResultDir, s.testSession.ID+"_totals.png"))
	s.NoError(err)
	s.Equal(1, s.countOf("bowcinema_sessions_completed_total"))
}

func (s *EngineTestSuite) TestTick_CheckRoundNotAdvanced() {
	s.expectState(models.SequenceStateRoundActive)
	s.mockDetector.EXPECT().Poll().Return(false).Times(9)
	s.mockSequencer.EXPECT().CheckRound(gomock.Any()).Return(&game.RoundOutput{
		State: models.SequenceStateRoundActive,
	}, nil)

	for range 9 {
		s.engine.tick(s.ctx)
	}
	s.Equal(0, s.engine.ticks)
}

func (s *EngineTestSuite) TestStart_ResetsCounters() {
	s.expectState(models.SequenceStateAwaitingStart)
	input := &game.StartInput{Shooters: []string{"Hawkeye"}, Games: []string{"deer"}}
	gomock.InOrder(
		s.mockSequencer.EXPECT().Start(gomock.Any(), input).Return(&game.StartOutput{SessionID: "BogenKino_2025-06-14_18-00"}, nil),
		s.mockDetector.EXPECT().Reset(),
	)

	s.engine.ticks = 5
	res := s.engine.dispatch(s.ctx, &Command{Kind: CommandStart, Start: input})
	s.Require().NoError(res.Err)
	s.Equal("BogenKino_2025-06-14_18-00", res.Started.SessionID)
	s.Equal(0, s.engine.ticks)
}

func (s *EngineTestSuite) TestStart_ClosesFinishedSession() {
	s.expectState(models.SequenceStateComplete)
	input := &game.StartInput{Shooters: []string{"Hawkeye"}, Games: []string{"deer"}}

	gomock.InOrder(
		s.mockLedger.EXPECT().CloseSession(gomock.Any()).Return(&ledger.CloseSessionOutput{
			ReportPath: "results/report.txt",
			Session:    s.testSession,
		}, nil),
		s.mockRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil),
		s.mockPublisher.EXPECT().PublishSession(gomock.Any(), s.testSession, gomock.Not(gomock.Nil())).Return(nil),
		s.mockSequencer.EXPECT().Start(gomock.Any(), input).Return(&game.StartOutput{SessionID: "next"}, nil),
		s.mockDetector.EXPECT().Reset(),
	)

	res := s.engine.dispatch(s.ctx, &Command{Kind: CommandStart, Start: input})
	s.Require().NoError(res.Err)
	s.Equal("next", res.Started.SessionID)
}

func (s *EngineTestSuite) TestCloseSession_WhileRunning() {
	s.expectState(models.SequenceStateRoundActive)

	res := s.engine.dispatch(s.ctx, &Command{Kind: CommandCloseSession})
	s.ErrorIs(res.Err, ErrSessionRunning)
}

func (s *EngineTestSuite) TestCloseSession_NoSession() {
	s.expectState(models.SequenceStateAwaitingStart)
	s.mockLedger.EXPECT().CloseSession(gomock.Any()).Return(nil, ledger.ErrNoSession)

	res := s.engine.dispatch(s.ctx, &Command{Kind: CommandCloseSession})
	s.ErrorIs(res.Err, ledger.ErrNoSession)
}

func (s *EngineTestSuite) TestAbort_FinalizesSession() {
	gomock.InOrder(
		s.mockSequencer.EXPECT().Abort(gomock.Any()).Return(&game.RoundOutput{
			Advanced: true,
			State:    models.SequenceStateComplete,
		}, nil),
		s.mockLedger.EXPECT().Snapshot(gomock.Any()).Return(s.testSession, nil),
		s.mockRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil),
	)

	s.engine.pendingManual = true
	res := s.engine.dispatch(s.ctx, &Command{Kind: CommandAbort})
	s.Require().NoError(res.Err)
	s.Equal(models.SequenceStateComplete, res.Round.State)
	s.False(s.engine.pendingManual)
}

func (s *EngineTestSuite) TestSetOverride_PersistsCompletedSession() {
	s.expectState(models.SequenceStateComplete)
	input := &ledger.SetManualOverrideInput{Shooter: "Hawkeye", Game: "deer", ArrowIndex: 0, Points: 8}

	gomock.InOrder(
		s.mockLedger.EXPECT().SetManualOverride(gomock.Any(), input).Return(&ledger.SetManualOverrideOutput{
			FinalPoints:  8,
			GameTotal:    8,
			ShooterTotal: 8,
		}, nil),
		s.mockLedger.EXPECT().Snapshot(gomock.Any()).Return(s.testSession, nil),
		s.mockRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil),
	)

	res := s.engine.dispatch(s.ctx, &Command{Kind: CommandSetOverride, Override: input})
	s.Require().NoError(res.Err)
	s.Equal(8, res.Override.ShooterTotal)
}

func (s *EngineTestSuite) TestSetOverride_RunningSessionNotPersisted() {
	s.expectState(models.SequenceStateRoundActive)
	input := &ledger.SetManualOverrideInput{Shooter: "Hawkeye", Game: "deer", ArrowIndex: 0, Points: 8}
	s.mockLedger.EXPECT().SetManualOverride(gomock.Any(), input).Return(&ledger.SetManualOverrideOutput{FinalPoints: 8}, nil)

	res := s.engine.dispatch(s.ctx, &Command{Kind: CommandSetOverride, Override: input})
	s.NoError(res.Err)
}

func (s *EngineTestSuite) TestSnapshot_NoSession() {
	s.expectState(models.SequenceStateAwaitingStart)
	s.mockLedger.EXPECT().Snapshot(gomock.Any()).Return(nil, ledger.ErrNoSession)

	res := s.engine.dispatch(s.ctx, &Command{Kind: CommandSnapshot})
	s.NoError(res.Err)
	s.Nil(res.Session)
	s.Equal(models.SequenceStateAwaitingStart, res.Status.State)
}

func (s *EngineTestSuite) TestDispatch_UnknownCommand() {
	res := s.engine.dispatch(s.ctx, &Command{Kind: "rewind"})
	s.ErrorIs(res.Err, ErrUnknownCommand)
}

func (s *EngineTestSuite) TestSwitchDevices() {
	s.mockDevices.EXPECT().SwitchCamera(2).Return(nil)
	s.mockDevices.EXPECT().SwitchMicrophone(4).Return(errors.New("no such audio input device"))

	res := s.engine.dispatch(s.ctx, &Command{Kind: CommandSwitchCamera, Device: 2})
	s.NoError(res.Err)

	res = s.engine.dispatch(s.ctx, &Command{Kind: CommandSwitchMicrophone, Device: 4})
	s.EqualError(res.Err, "no such audio input device")
}

func (s *EngineTestSuite) TestSwitchDevices_NotConfigured() {
	e, err := New(&Config{
		Sequencer:    s.mockSequencer,
		Ledger:       s.mockLedger,
		TickInterval: time.Second,
	})
	s.Require().NoError(err)

	res := e.dispatch(s.ctx, &Command{Kind: CommandSwitchCamera, Device: 1})
	s.ErrorIs(res.Err, ErrNoDevices)
}

func (s *EngineTestSuite) TestRun_ServesCommands() {
	e, err := New(&Config{
		Sequencer:    s.mockSequencer,
		Ledger:       s.mockLedger,
		TickInterval: time.Hour,
	})
	s.Require().NoError(err)

	s.expectState(models.SequenceStateRoundBetween)
	s.mockLedger.EXPECT().Snapshot(gomock.Any()).Return(s.testSession, nil)

	ctx, cancel := context.WithCancel(s.ctx)
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	status, session, err := e.Snapshot(ctx)
	s.Require().NoError(err)
	s.Equal(models.SequenceStateRoundBetween, status.State)
	s.Equal(s.testSession.ID, session.ID)

	cancel()
	s.ErrorIs(<-done, context.Canceled)

	_, err = e.SkipRound(ctx)
	s.ErrorIs(err, context.Canceled)
}
