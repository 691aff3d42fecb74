package clipboard

import (
	"errors"
	"os"

	"github.com/atotto/clipboard"

	"github.com/andareed/siftly-crossfilter/logging"
)

// ErrUnavailable is returned when neither the system clipboard nor the
// terminal can take the text.
var ErrUnavailable = errors.New("clipboard unavailable")

// Copy puts text on the system clipboard (pbcopy, xclip/xsel/wl-copy or the
// Windows clipboard). When none is reachable, as over ssh, it asks the
// terminal to do it with an OSC 52 sequence.
func Copy(text string) error {
	if !clipboard.Unsupported {
		err := clipboard.WriteAll(text)
		if err == nil {
			logging.Infof("Clipboard: copied %d bytes", len(text))
			return nil
		}
		logging.Warnf("Clipboard: system clipboard failed: %v", err)
	}
	return copyOSC52(os.Stdout, text)
}
