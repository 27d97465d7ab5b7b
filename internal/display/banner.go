package display

import (
	"fmt"
	"os"

	"github.com/backmassage/migforge/internal/term"
)

// PrintBanner prints the ASCII art banner.
func PrintBanner() {
	fmt.Fprintln(os.Stdout, term.Banner.Render(` __  __ _       _____
|  \/  (_) __ _|  ___|__  _ __ __ _  ___
| |\/| | |/ _`+"`"+` | |_ / _ \| '__/ _`+"`"+` |/ _ \
| |  | | | (_| |  _| (_) | | | (_| |  __/
|_|  |_|_|\__, |_|  \___/|_|  \__, |\___|
          |___/               |___/`))
}
