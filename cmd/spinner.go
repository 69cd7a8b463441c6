package cmd

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

const spinnerFrames = `|/-\`

// spinner animates a message on one terminal line while a slow step runs.
type spinner struct {
	out     io.Writer
	message string
	quit    chan struct{}
	stopped chan struct{}
	once    sync.Once
	mu      sync.Mutex
	running bool
}

func newSpinner(out io.Writer, message string) (s *spinner) {
	s = &spinner{
		out:     out,
		message: message,
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	return s
}

// start is a no-op on an already started spinner.
func (s *spinner) start() {
	s.once.Do(func() {
		s.mu.Lock()
		s.running = true
		s.mu.Unlock()
		go s.spin()
	})
}

func (s *spinner) spin() {
	defer close(s.stopped)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	fmt.Fprintf(s.out, "%s ", s.message)
	for frame := 0; ; frame++ {
		select {
		case <-s.quit:
			fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", len(s.message)+2))
			return
		case <-ticker.C:
			fmt.Fprintf(s.out, "\r%s %c", s.message, spinnerFrames[frame%len(spinnerFrames)])
		}
	}
}

// stopSpinner clears the line and returns once the animation has exited.
func (s *spinner) stopSpinner() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.quit)
	<-s.stopped
}
