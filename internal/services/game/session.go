package game

import (
	"path/filepath"
	"time"
)

const sessionTimeLayout = "2006-01-02_15-04"

// sessionID derives the id from the start time, to the minute
func sessionID(prefix string, now time.Time) string {
	return prefix + "_" + now.Format(sessionTimeLayout)
}

// sessionDirs returns the camera image and result directories of a session
func (s *service) sessionDirs(id string) (imageDir, resultDir string) {
	return filepath.Join(s.camShotsDir, id), filepath.Join(s.resultsDir, id)
}
