package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	mu   sync.Mutex
	file *os.File
	once sync.Once
)

func open() {
	path := os.Getenv("VISTA_DEBUG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	file = f
}

// Log appends a formatted message to the debug file. No-op unless
// VISTA_DEBUG points at a writable path.
func Log(format string, args ...any) {
	once.Do(open)
	if file == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(file, "%s %s\n", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
}
