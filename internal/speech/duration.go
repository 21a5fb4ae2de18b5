package speech

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
)

// AudioDuration asks ffprobe for the length of the file in seconds.
// Honors ctx cancellation. Callers treat an error as "duration unknown",
// not as a failed synthesis.
func AudioDuration(ctx context.Context, path string) (float64, error) {
	out, err := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	).Output()
	if err != nil {
		return 0, err
	}

	return strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
}
