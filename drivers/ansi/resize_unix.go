//go:build unix

package ansidriver

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// notifyResize forwards SIGWINCH into the resize channel WaitEvents
// drains.
func (d *Driver) notifyResize() {
	d.sigCh = make(chan os.Signal, 1)
	signal.Notify(d.sigCh, syscall.SIGWINCH)
	go func() {
		for {
			select {
			case <-d.sigCh:
				select {
				case d.resize <- struct{}{}:
				default:
				}
			case <-d.quit:
				return
			}
		}
	}()
}

func (d *Driver) stopResize() {
	if d.sigCh != nil {
		signal.Stop(d.sigCh)
		d.sigCh = nil
	}
}

// winsize queries the kernel directly; used when the out stream is a tty
// whose size x/term cannot determine.
func winsize(fd int) (cols, rows int, ok bool) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, false
	}
	return int(ws.Col), int(ws.Row), true
}
