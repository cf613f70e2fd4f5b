package report

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/KirkDiggler/bowcinema/internal/models"
)

func intPtr(v int) *int { return &v }

func testSession(resultDir string) *models.SessionRecord {
	return &models.SessionRecord{
		ID:              "BogenKino_2025-06-14_18-00",
		ImageDir:        "cam_shots/BogenKino_2025-06-14_18-00",
		ResultDir:       resultDir,
		ArrowsPerPlayer: 2,
		TotalArrows:     2,
		CreatedAt:       time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC),
		Shooters: []*models.ShooterRecord{
			{
				Name:        "Hawkeye",
				TotalPoints: 8,
				Games: []*models.GameRecord{
					{
						Name:        "deer",
						TotalPoints: 8,
						Arrows: []*models.ArrowRecord{
							{
								CamImage:     "cam/18-07-09_deer_Hawkeye.png",
								CropImage:    "res/18-07-09_deer_Hawkeye.png",
								AutoPoints:   0,
								ManualPoints: intPtr(5),
								FinalPoints:  5,
							},
							{
								CamImage:    "cam/18-07-30_deer_Hawkeye.png",
								CropImage:   "res/18-07-30_deer_Hawkeye.png",
								AutoPoints:  3,
								FinalPoints: 3,
							},
						},
					},
				},
			},
		},
	}
}

func TestFormat_Layout(t *testing.T) {
	got, err := FormatString(testSession("results/BogenKino_2025-06-14_18-00"))
	require.NoError(t, err)

	want := `BOGEN KINO - SESSION RESULTS DATA RECORD
 | Session ID             = [BogenKino_2025-06-14_18-00]
 | Camera image directory = [cam_shots/BogenKino_2025-06-14_18-00]
 | Result directory       = [results/BogenKino_2025-06-14_18-00]
 | Session total arrows   = [2]
 # Shooter: [Hawkeye]
   |> shooter total points = [8]
   #> Game name = [deer]
      |> Game total points = [8]
      #> Arrow 1:
         |> Camera image        = [cam/18-07-09_deer_Hawkeye.png]
         |> Crop image          = [res/18-07-09_deer_Hawkeye.png]
         |> Automatic points    = [0]
         |> Manually set points = [5]
         |> Final points        = [5]
      #> Arrow 2:
         |> Camera image        = [cam/18-07-30_deer_Hawkeye.png]
         |> Crop image          = [res/18-07-30_deer_Hawkeye.png]
         |> Automatic points    = [3]
         |> Manually set points = [0]
         |> Final points        = [3]
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("text record mismatch (-want +got):\n%s", diff)
	}
}

func TestFormat_NilSession(t *testing.T) {
	_, err := FormatString(nil)
	assert.ErrorIs(t, err, ErrNilSession)
}

func TestWriteText(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results", "s1")
	session := testSession(dir)

	path, err := WriteText(session)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "BogenKino_2025-06-14_18-00.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want, err := FormatString(session)
	require.NoError(t, err)
	assert.Equal(t, want, string(data))
}

func TestWriteChart(t *testing.T) {
	dir := t.TempDir()
	session := testSession(dir)

	png, path, err := WriteChart(session)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "BogenKino_2025-06-14_18-00_totals.png"), path)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

func TestTotalsChart_AllZeroTotals(t *testing.T) {
	session := testSession(t.TempDir())
	session.Shooters[0].TotalPoints = 0
	session.Shooters = append(session.Shooters, &models.ShooterRecord{Name: "???-02"})

	png, err := TotalsChart(session)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestTotalsChart_NoShooters(t *testing.T) {
	_, err := TotalsChart(&models.SessionRecord{ID: "x"})
	assert.ErrorIs(t, err, ErrNoShooters)
}

func TestWriteWorkbook(t *testing.T) {
	dir := t.TempDir()
	session := testSession(dir)

	loader := func(path string) (image.Image, error) {
		if path == "res/18-07-09_deer_Hawkeye.png" {
			return image.NewRGBA(image.Rect(0, 0, 40, 30)), nil
		}
		return nil, errors.New("missing")
	}

	path, err := WriteWorkbook(session, &WorkbookConfig{Loader: loader})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "BogenKino_2025-06-14_18-00.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(arrowsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Hawkeye", "deer", "1", "cam/18-07-09_deer_Hawkeye.png", "res/18-07-09_deer_Hawkeye.png", "0", "5", "5"}, rows[1])
	assert.Equal(t, "3", rows[2][7])

	pics, err := f.GetPictures(arrowsSheet, "I2")
	require.NoError(t, err)
	assert.Len(t, pics, 1)

	pics, err = f.GetPictures(arrowsSheet, "I3")
	require.NoError(t, err)
	assert.Empty(t, pics)

	totals, err := f.GetRows(totalsSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Shooter", "Game", "Points"},
		{"Hawkeye", "deer", "8"},
		{"Hawkeye", "Total", "8"},
	}, totals)
}
