// Package report renders closed sessions as a text record, a totals chart
// and a spreadsheet.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/bowcinema/internal/models"
)

const textHeader = "BOGEN KINO - SESSION RESULTS DATA RECORD"

// TextPath returns {resultDir}/{sessionId}.txt
func TextPath(session *models.SessionRecord) string {
	return filepath.Join(session.ResultDir, session.ID+".txt")
}

// Format writes the nested text record. Downstream parsers depend on the
// field order and indentation.
func Format(w io.Writer, session *models.SessionRecord) error {
	if session == nil {
		return ErrNilSession
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, textHeader)
	fmt.Fprintf(bw, " | Session ID             = [%s]\n", session.ID)
	fmt.Fprintf(bw, " | Camera image directory = [%s]\n", session.ImageDir)
	fmt.Fprintf(bw, " | Result directory       = [%s]\n", session.ResultDir)
	fmt.Fprintf(bw, " | Session total arrows   = [%d]\n", session.TotalArrows)

	for _, shooter := range session.Shooters {
		fmt.Fprintf(bw, " # Shooter: [%s]\n", shooter.Name)
		fmt.Fprintf(bw, "   |> shooter total points = [%d]\n", shooter.TotalPoints)

		for _, game := range shooter.Games {
			fmt.Fprintf(bw, "   #> Game name = [%s]\n", game.Name)
			fmt.Fprintf(bw, "      |> Game total points = [%d]\n", game.TotalPoints)

			for i, arrow := range game.Arrows {
				fmt.Fprintf(bw, "      #> Arrow %d:\n", i+1)
				fmt.Fprintf(bw, "         |> Camera image        = [%s]\n", arrow.CamImage)
				fmt.Fprintf(bw, "         |> Crop image          = [%s]\n", arrow.CropImage)
				fmt.Fprintf(bw, "         |> Automatic points    = [%d]\n", arrow.AutoPoints)
				fmt.Fprintf(bw, "         |> Manually set points = [%d]\n", arrow.ManualOrZero())
				fmt.Fprintf(bw, "         |> Final points        = [%d]\n", arrow.FinalPoints)
			}
		}
	}
	return bw.Flush()
}

// FormatString renders the text record into a string
func FormatString(session *models.SessionRecord) (string, error) {
	var sb strings.Builder
	if err := Format(&sb, session); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteText writes the text record to TextPath and returns the path
func WriteText(session *models.SessionRecord) (string, error) {
	if session == nil {
		return "", ErrNilSession
	}
	path := TextPath(session)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create result directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	if err := Format(f, session); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}
