//go:build !darwin && !linux && !windows

package sound

// candidates is empty on unsupported platforms so only the terminal bell rings
func candidates(eventType string) []command {
	return nil
}
