package capture

import (
	"context"
	"errors"
	"image"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	cameraMocks "github.com/KirkDiggler/bowcinema/internal/camera/mocks"
	clockMocks "github.com/KirkDiggler/bowcinema/internal/common/clock/mocks"
	imagingMocks "github.com/KirkDiggler/bowcinema/internal/imaging/mocks"
	playerMocks "github.com/KirkDiggler/bowcinema/internal/player/mocks"
)

type CaptureServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockCamera *cameraMocks.MockCamera
	mockPlayer *playerMocks.MockPlayer
	mockStore  *imagingMocks.MockFrameStore
	mockClock  *clockMocks.MockClock
	service    Service
	ctx        context.Context

	testTime   time.Time
	testRoot   string
	testFrame  image.Image
	testInput  *CaptureInput
	testPath   string
	testSettle time.Duration
}

func (s *CaptureServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCamera = cameraMocks.NewMockCamera(s.mockCtrl)
	s.mockPlayer = playerMocks.NewMockPlayer(s.mockCtrl)
	s.mockStore = imagingMocks.NewMockFrameStore(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 6, 14, 18, 7, 9, 0, time.UTC)
	s.testRoot = "/venue/cam_shots"
	s.testFrame = image.NewRGBA(image.Rect(0, 0, 4, 4))
	s.testSettle = time.Second
	s.testInput = &CaptureInput{
		SessionID:  "BogenKino_2025-06-14_18-00",
		GameName:   "deer",
		PlayerName: "Hawkeye",
	}
	s.testPath = filepath.Join(s.testRoot, "BogenKino_2025-06-14_18-00", "18-07-09_deer_Hawkeye.png")

	svc, err := New(&Config{
		Camera:      s.mockCamera,
		Player:      s.mockPlayer,
		Store:       s.mockStore,
		Clock:       s.mockClock,
		Root:        s.testRoot,
		Format:      "png",
		SettleDelay: s.testSettle,
		GrabTimeout: 5 * time.Second,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *CaptureServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCaptureServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CaptureServiceTestSuite))
}

func (s *CaptureServiceTestSuite) TestCapture_Success() {
	gomock.InOrder(
		s.mockPlayer.EXPECT().Pause(),
		s.mockClock.EXPECT().Sleep(s.testSettle),
		s.mockClock.EXPECT().Now().Return(s.testTime),
		s.mockCamera.EXPECT().GrabFrame(gomock.Any()).Return(s.testFrame, nil),
		s.mockStore.EXPECT().Save(s.testPath, s.testFrame).Return(nil),
		s.mockClock.EXPECT().Sleep(s.testSettle),
		s.mockPlayer.EXPECT().Resume(),
	)

	out, err := s.service.Capture(s.ctx, s.testInput)
	s.Require().NoError(err)
	s.Equal("18-07-09_deer_Hawkeye.png", out.FileName)
	s.Equal(s.testPath, out.FramePath)
	s.Equal(s.testTime, out.CapturedAt)
}

func (s *CaptureServiceTestSuite) TestCapture_GrabFailureStillResumes() {
	grabErr := errors.New("device busy")
	gomock.InOrder(
		s.mockPlayer.EXPECT().Pause(),
		s.mockClock.EXPECT().Sleep(s.testSettle),
		s.mockClock.EXPECT().Now().Return(s.testTime),
		s.mockCamera.EXPECT().GrabFrame(gomock.Any()).Return(nil, grabErr),
		s.mockClock.EXPECT().Sleep(s.testSettle),
		s.mockPlayer.EXPECT().Resume(),
	)

	out, err := s.service.Capture(s.ctx, s.testInput)
	s.Nil(out)
	s.ErrorIs(err, ErrCaptureFailed)
	s.ErrorIs(err, grabErr)
}

func (s *CaptureServiceTestSuite) TestCapture_SaveFailure() {
	saveErr := errors.New("disk full")
	s.mockPlayer.EXPECT().Pause()
	s.mockClock.EXPECT().Sleep(s.testSettle).Times(2)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockCamera.EXPECT().GrabFrame(gomock.Any()).Return(s.testFrame, nil)
	s.mockStore.EXPECT().Save(s.testPath, s.testFrame).Return(saveErr)
	s.mockPlayer.EXPECT().Resume()

	_, err := s.service.Capture(s.ctx, s.testInput)
	s.ErrorIs(err, ErrCaptureFailed)
	s.ErrorIs(err, saveErr)
}

func (s *CaptureServiceTestSuite) TestCapture_GrabHasDeadline() {
	s.mockPlayer.EXPECT().Pause()
	s.mockClock.EXPECT().Sleep(s.testSettle).Times(2)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockCamera.EXPECT().GrabFrame(gomock.Any()).DoAndReturn(func(ctx context.Context) (image.Image, error) {
		_, ok := ctx.Deadline()
		s.True(ok)
		return nil, context.DeadlineExceeded
	})
	s.mockPlayer.EXPECT().Resume()

	_, err := s.service.Capture(s.ctx, s.testInput)
	s.ErrorIs(err, context.DeadlineExceeded)
}

func (s *CaptureServiceTestSuite) TestCapture_InvalidInput() {
	_, err := s.service.Capture(s.ctx, &CaptureInput{SessionID: "x", GameName: "deer"})
	s.ErrorIs(err, ErrInvalidInput)

	_, err = s.service.Capture(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *CaptureServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Player: s.mockPlayer, Store: s.mockStore, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilCamera)

	_, err = New(&Config{Camera: s.mockCamera, Store: s.mockStore, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilPlayer)

	_, err = New(&Config{Camera: s.mockCamera, Player: s.mockPlayer, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilStore)

	_, err = New(&Config{Camera: s.mockCamera, Player: s.mockPlayer, Store: s.mockStore})
	s.ErrorIs(err, ErrNilClock)
}
