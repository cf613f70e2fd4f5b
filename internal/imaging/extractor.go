// Package imaging locates the target inside captured frames and handles
// frame and crop files on disk.
package imaging

//go:generate mockgen -package=mocks -destination=mocks/mock_extractor.go github.com/KirkDiggler/bowcinema/internal/imaging Extractor,FrameStore

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	"gocv.io/x/gocv"
)

// Extractor crops the target region out of a stored frame.
type Extractor interface {
	Extract(ctx context.Context, input *ExtractInput) (*ExtractOutput, error)
}

// ExtractInput names the stored frame and where its crop goes.
type ExtractInput struct {
	SourcePath string
	CropPath   string
}

// ExtractOutput describes the matched region.
type ExtractOutput struct {
	Region image.Rectangle

	// Score is the raw best match value before normalization
	Score float32
}

// Match methods accepted in configuration.
const (
	MethodSqdiff       = "sqdiff"
	MethodSqdiffNormed = "sqdiff_normed"
	MethodCcorr        = "ccorr"
	MethodCcorrNormed  = "ccorr_normed"
	MethodCcoeff       = "ccoeff"
	MethodCcoeffNormed = "ccoeff_normed"
)

var matchModes = map[string]gocv.TemplateMatchMode{
	MethodSqdiff:       gocv.TmSqdiff,
	MethodSqdiffNormed: gocv.TmSqdiffNormed,
	MethodCcorr:        gocv.TmCcorr,
	MethodCcorrNormed:  gocv.TmCcorrNormed,
	MethodCcoeff:       gocv.TmCcoeff,
	MethodCcoeffNormed: gocv.TmCcoeffNormed,
}

var annotationColor = color.RGBA{A: 255}

const annotationThickness = 2

// TemplateExtractorConfig holds the reference images and match method.
type TemplateExtractorConfig struct {
	TemplatePath string

	// MaskPath may be empty to match without a mask
	MaskPath string

	Method string
	Logger *slog.Logger
}

// TemplateExtractor matches a fixed template against frames. The template
// and mask are loaded once and only read afterwards, so one instance can
// serve concurrent calls.
type TemplateExtractor struct {
	template gocv.Mat
	mask     gocv.Mat
	mode     gocv.TemplateMatchMode
	logger   *slog.Logger
}

// NewTemplateExtractor loads the template and mask.
func NewTemplateExtractor(cfg *TemplateExtractorConfig) (*TemplateExtractor, error) {
	if cfg == nil {
		return nil, fmt.Errorf("extractor config cannot be nil")
	}

	method := cfg.Method
	if method == "" {
		method = MethodCcorrNormed
	}
	mode, ok := matchModes[method]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	template := gocv.IMRead(cfg.TemplatePath, gocv.IMReadColor)
	if template.Empty() {
		template.Close()
		return nil, fmt.Errorf("%w: %s", ErrTemplateMissing, cfg.TemplatePath)
	}

	mask := gocv.NewMat()
	if cfg.MaskPath != "" {
		mask.Close()
		mask = gocv.IMRead(cfg.MaskPath, gocv.IMReadColor)
		if mask.Empty() {
			template.Close()
			mask.Close()
			return nil, fmt.Errorf("%w: mask %s", ErrTemplateMissing, cfg.MaskPath)
		}
		if mask.Rows() != template.Rows() || mask.Cols() != template.Cols() {
			template.Close()
			mask.Close()
			return nil, ErrMaskMismatch
		}
	}

	logger.Info("target template loaded",
		slog.String("template", cfg.TemplatePath),
		slog.Int("width", template.Cols()),
		slog.Int("height", template.Rows()),
		slog.String("method", method),
	)

	return &TemplateExtractor{
		template: template,
		mask:     mask,
		mode:     mode,
		logger:   logger,
	}, nil
}

// TemplateSize returns the template dimensions.
func (e *TemplateExtractor) TemplateSize() image.Point {
	return image.Pt(e.template.Cols(), e.template.Rows())
}

// Locate returns the best matching template-sized region in src.
func (e *TemplateExtractor) Locate(src gocv.Mat) (image.Rectangle, float32, error) {
	if src.Cols() < e.template.Cols() || src.Rows() < e.template.Rows() {
		return image.Rectangle{}, 0, ErrTemplateTooLarge
	}

	result := gocv.NewMat()
	defer result.Close()

	gocv.MatchTemplate(src, e.template, &result, e.mode, e.mask)

	minVal, maxVal, _, _ := gocv.MinMaxLoc(result)
	gocv.Normalize(result, &result, 0, 1, gocv.NormMinMax)
	_, _, minLoc, maxLoc := gocv.MinMaxLoc(result)

	loc, score := maxLoc, maxVal
	if e.lowerIsBetter() {
		loc, score = minLoc, minVal
	}

	region := image.Rectangle{
		Min: loc,
		Max: loc.Add(e.TemplateSize()),
	}
	return region, score, nil
}

func (e *TemplateExtractor) lowerIsBetter() bool {
	return e.mode == gocv.TmSqdiff || e.mode == gocv.TmSqdiffNormed
}

// Extract annotates the source frame in place and writes the crop.
func (e *TemplateExtractor) Extract(ctx context.Context, input *ExtractInput) (*ExtractOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("extract input cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src := gocv.IMRead(input.SourcePath, gocv.IMReadColor)
	defer src.Close()
	if src.Empty() {
		return nil, fmt.Errorf("%w: %s", ErrDecodeFailed, input.SourcePath)
	}

	region, score, err := e.Locate(src)
	if err != nil {
		return nil, err
	}

	gocv.Rectangle(&src, region, annotationColor, annotationThickness)
	if !gocv.IMWrite(input.SourcePath, src) {
		return nil, fmt.Errorf("%w: %s", ErrWriteFailed, input.SourcePath)
	}

	if err := os.MkdirAll(filepath.Dir(input.CropPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create crop directory: %w", err)
	}

	crop := src.Region(region)
	defer crop.Close()
	if !gocv.IMWrite(input.CropPath, crop) {
		return nil, fmt.Errorf("%w: %s", ErrWriteFailed, input.CropPath)
	}

	e.logger.Debug("target extracted",
		slog.String("source", input.SourcePath),
		slog.String("crop", input.CropPath),
		slog.Int("x", region.Min.X),
		slog.Int("y", region.Min.Y),
		slog.Float64("score", float64(score)),
	)

	return &ExtractOutput{
		Region: region,
		Score:  score,
	}, nil
}

// Close releases the template and mask.
func (e *TemplateExtractor) Close() error {
	if err := e.template.Close(); err != nil {
		return err
	}
	return e.mask.Close()
}
