package clipboard

import (
	"fmt"
	"io"
	"os"
	"strings"

	system "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/charmbracelet/x/term"

	"evtxview/internal/app/errors"
	"evtxview/internal/config/logger"
)

// Method names how text reached the clipboard
type Method string

// Copy methods
const (
	MethodNative Method = "native"
	MethodOSC52  Method = "osc52"
)

// Clipboard copies text to the system clipboard
type Clipboard interface {
	Copy(text string) (Method, error)
}

type copier struct {
	native    func(string) error
	hasNative bool
	out       io.Writer
	terminal  bool
	log       logger.Logger
}

// NewClipboard creates a clipboard that prefers the platform clipboard and falls back
// to an OSC52 escape sequence on stdout
func NewClipboard(log logger.Logger) Clipboard {
	return &copier{
		native:    system.WriteAll,
		hasNative: !system.Unsupported,
		out:       os.Stdout,
		terminal:  term.IsTerminal(os.Stdout.Fd()) && osc52Term(os.Getenv("TERM")),
		log:       log.WithComponent("CLIPBOARD"),
	}
}

// Copy writes text to the clipboard and reports which method worked
func (c *copier) Copy(text string) (Method, error) {
	if c.hasNative {
		err := c.native(text)
		if err == nil {
			c.log.Debug().Msgf("Copied %d bytes to the native clipboard", len(text))
			return MethodNative, nil
		}

		c.log.Debug().Err(err).Msg("Native clipboard failed, trying OSC52")
	}

	if !c.terminal {
		return "", fmt.Errorf("%w: no native clipboard and stdout is not an OSC52 terminal", errors.ErrClipboardUnavailable)
	}

	if _, err := osc52.New(text).WriteTo(c.out); err != nil {
		return "", fmt.Errorf("%w: %w", errors.ErrClipboardUnavailable, err)
	}

	c.log.Debug().Msgf("Copied %d bytes via OSC52", len(text))

	return MethodOSC52, nil
}

func osc52Term(name string) bool {
	return name != "" && !strings.EqualFold(name, "dumb")
}
