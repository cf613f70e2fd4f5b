package imaging

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"gocv.io/x/gocv"
)

type ExtractorTestSuite struct {
	suite.Suite
	dir          string
	sourcePath   string
	templatePath string
	offset       image.Point
	templateSize image.Point
	store        *DiskStore
}

func (s *ExtractorTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.store = NewDiskStore()
	s.offset = image.Pt(57, 41)
	s.templateSize = image.Pt(40, 30)

	src := noiseImage(200, 150, 7)
	s.sourcePath = filepath.Join(s.dir, "frame.png")
	s.Require().NoError(s.store.Save(s.sourcePath, src))

	patch := image.NewRGBA(image.Rectangle{Max: s.templateSize})
	draw.Draw(patch, patch.Bounds(), src, s.offset, draw.Src)
	s.templatePath = filepath.Join(s.dir, "template.png")
	s.Require().NoError(s.store.Save(s.templatePath, patch))
}

func TestExtractorTestSuite(t *testing.T) {
	suite.Run(t, new(ExtractorTestSuite))
}

// noiseImage fills an image with seeded noise so any patch is unique.
func noiseImage(width, height int, seed int64) *image.RGBA {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
				A: 255,
			})
		}
	}
	return img
}

func (s *ExtractorTestSuite) newExtractor(method string) *TemplateExtractor {
	e, err := NewTemplateExtractor(&TemplateExtractorConfig{
		TemplatePath: s.templatePath,
		Method:       method,
	})
	s.Require().NoError(err)
	s.T().Cleanup(func() { e.Close() })
	return e
}

func (s *ExtractorTestSuite) TestExtract_FindsTemplateAtOffset() {
	for _, method := range []string{MethodCcorrNormed, MethodCcoeffNormed, MethodSqdiff, MethodSqdiffNormed} {
		s.Run(method, func() {
			s.SetupTest()
			e := s.newExtractor(method)
			cropPath := filepath.Join(s.dir, "results", "frame.png")

			out, err := e.Extract(context.Background(), &ExtractInput{
				SourcePath: s.sourcePath,
				CropPath:   cropPath,
			})
			s.Require().NoError(err)

			s.Equal(s.offset, out.Region.Min)
			s.Equal(s.templateSize, out.Region.Size())

			crop := gocv.IMRead(cropPath, gocv.IMReadColor)
			defer crop.Close()
			s.Require().False(crop.Empty())
			s.Equal(s.templateSize.X, crop.Cols())
			s.Equal(s.templateSize.Y, crop.Rows())
		})
	}
}

func (s *ExtractorTestSuite) TestExtract_AnnotatesSourceInPlace() {
	e := s.newExtractor(MethodCcorrNormed)

	_, err := e.Extract(context.Background(), &ExtractInput{
		SourcePath: s.sourcePath,
		CropPath:   filepath.Join(s.dir, "crop.png"),
	})
	s.Require().NoError(err)

	annotated, err := Load(s.sourcePath)
	s.Require().NoError(err)

	r, g, b, _ := annotated.At(s.offset.X, s.offset.Y).RGBA()
	s.Zero(r + g + b)
}

func (s *ExtractorTestSuite) TestExtract_UndecodableSource() {
	e := s.newExtractor(MethodCcorrNormed)
	bad := filepath.Join(s.dir, "bad.png")
	s.Require().NoError(os.WriteFile(bad, []byte("not an image"), 0o644))

	_, err := e.Extract(context.Background(), &ExtractInput{
		SourcePath: bad,
		CropPath:   filepath.Join(s.dir, "crop.png"),
	})
	s.ErrorIs(err, ErrDecodeFailed)
}

func (s *ExtractorTestSuite) TestExtract_CancelledContext() {
	e := s.newExtractor(MethodCcorrNormed)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Extract(ctx, &ExtractInput{SourcePath: s.sourcePath, CropPath: filepath.Join(s.dir, "crop.png")})
	s.ErrorIs(err, context.Canceled)
}

func (s *ExtractorTestSuite) TestNewTemplateExtractor_Errors() {
	_, err := NewTemplateExtractor(&TemplateExtractorConfig{TemplatePath: filepath.Join(s.dir, "missing.png")})
	s.ErrorIs(err, ErrTemplateMissing)

	_, err = NewTemplateExtractor(&TemplateExtractorConfig{TemplatePath: s.templatePath, Method: "nearest"})
	s.ErrorIs(err, ErrUnknownMethod)

	_, err = NewTemplateExtractor(&TemplateExtractorConfig{TemplatePath: s.templatePath, MaskPath: s.sourcePath})
	s.ErrorIs(err, ErrMaskMismatch)
}

func (s *ExtractorTestSuite) TestLocate_TemplateLargerThanSource() {
	e := s.newExtractor(MethodCcorrNormed)
	small := gocv.NewMatWithSize(10, 10, gocv.MatTypeCV8UC3)
	defer small.Close()

	_, _, err := e.Locate(small)
	s.ErrorIs(err, ErrTemplateTooLarge)
}

func (s *ExtractorTestSuite) TestThumbnail() {
	img := noiseImage(100, 60, 1)

	thumb, err := Thumbnail(img, 0.5)
	s.Require().NoError(err)
	s.Equal(image.Pt(50, 30), thumb.Bounds().Size())

	_, err = Thumbnail(img, 0)
	s.ErrorIs(err, ErrInvalidThumbScale)
}
