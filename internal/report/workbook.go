package report

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/KirkDiggler/bowcinema/internal/imaging"
	"github.com/KirkDiggler/bowcinema/internal/models"
)

const (
	arrowsSheet    = "Arrows"
	totalsSheet    = "Totals"
	thumbnailScale = 0.5
	thumbRowHeight = 80
)

var arrowHeaders = []string{"Shooter", "Game", "Arrow", "Camera image", "Crop image", "Automatic points", "Manually set points", "Final points", "Crop"}

// ImageLoader decodes an image file for thumbnailing
type ImageLoader func(path string) (image.Image, error)

// WorkbookConfig holds optional workbook settings
type WorkbookConfig struct {
	// Loader defaults to imaging.Load
	Loader ImageLoader
	Logger *slog.Logger
}

// WorkbookPath returns {resultDir}/{sessionId}.xlsx
func WorkbookPath(session *models.SessionRecord) string {
	return filepath.Join(session.ResultDir, session.ID+".xlsx")
}

// WriteWorkbook exports one row per arrow with a crop thumbnail, plus a
// totals sheet. Crops that cannot be loaded leave the thumbnail cell empty.
func WriteWorkbook(session *models.SessionRecord, cfg *WorkbookConfig) (string, error) {
	if session == nil {
		return "", ErrNilSession
	}
	loader := imaging.Load
	logger := slog.Default()
	if cfg != nil {
		if cfg.Loader != nil {
			loader = cfg.Loader
		}
		if cfg.Logger != nil {
			logger = cfg.Logger
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", arrowsSheet); err != nil {
		return "", fmt.Errorf("failed to name arrows sheet: %w", err)
	}
	if err := writeRow(f, arrowsSheet, 1, toAny(arrowHeaders)...); err != nil {
		return "", err
	}

	row := 2
	for _, shooter := range session.Shooters {
		for _, game := range shooter.Games {
			for i, arrow := range game.Arrows {
				err := writeRow(f, arrowsSheet, row,
					shooter.Name, game.Name, i+1,
					arrow.CamImage, arrow.CropImage,
					arrow.AutoPoints, arrow.ManualOrZero(), arrow.FinalPoints,
				)
				if err != nil {
					return "", err
				}
				if err := addThumbnail(f, row, arrow.CropImage, loader); err != nil {
					logger.Debug("crop thumbnail skipped",
						slog.String("crop", arrow.CropImage),
						slog.Any("error", err),
					)
				}
				row++
			}
		}
	}

	if _, err := f.NewSheet(totalsSheet); err != nil {
		return "", fmt.Errorf("failed to add totals sheet: %w", err)
	}
	if err := writeRow(f, totalsSheet, 1, "Shooter", "Game", "Points"); err != nil {
		return "", err
	}
	row = 2
	for _, shooter := range session.Shooters {
		for _, game := range shooter.Games {
			if err := writeRow(f, totalsSheet, row, shooter.Name, game.Name, game.TotalPoints); err != nil {
				return "", err
			}
			row++
		}
		if err := writeRow(f, totalsSheet, row, shooter.Name, "Total", shooter.TotalPoints); err != nil {
			return "", err
		}
		row++
	}

	path := WorkbookPath(session)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create result directory: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}
	return path, nil
}

func writeRow(f *excelize.File, sheet string, row int, values ...any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to set %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func addThumbnail(f *excelize.File, row int, cropPath string, loader ImageLoader) error {
	img, err := loader(cropPath)
	if err != nil {
		return err
	}
	thumb, err := imaging.Thumbnail(img, thumbnailScale)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, thumb); err != nil {
		return err
	}

	cell, err := excelize.CoordinatesToCellName(len(arrowHeaders), row)
	if err != nil {
		return err
	}
	if err := f.SetRowHeight(arrowsSheet, row, thumbRowHeight); err != nil {
		return err
	}
	return f.AddPictureFromBytes(arrowsSheet, cell, &excelize.Picture{
		Extension: ".png",
		File:      buf.Bytes(),
		Format: &excelize.GraphicOptions{
			LockAspectRatio: true,
			AutoFit:         true,
		},
	})
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
