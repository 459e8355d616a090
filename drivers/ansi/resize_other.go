//go:build !unix

package ansidriver

// Platforms without SIGWINCH get no asynchronous resize notification; the
// application keeps its initial geometry until restarted.
func (d *Driver) notifyResize() {}

func (d *Driver) stopResize() {}

func winsize(fd int) (cols, rows int, ok bool) {
	return 0, 0, false
}
