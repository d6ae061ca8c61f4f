package interactive

import (
	"os"
	"os/exec"
	"strings"
)

// FzfPicker picks a preset name by running fzf with the candidate names on
// stdin. fzf draws its UI on the tty, so stderr is passed through.
type FzfPicker struct {
	// Command overrides the fzf executable, mainly for tests.
	Command string
}

// Pick runs the fuzzy finder. A cancelled or failed run reports ok=false;
// there is no error to surface since cancellation is a normal outcome.
func (f FzfPicker) Pick(candidates []string) (string, bool) {
	command := f.Command
	if command == "" {
		command = "fzf"
	}
	cmd := exec.Command(command)
	cmd.Stdin = strings.NewReader(strings.Join(candidates, "\n"))
	cmd.Stderr = os.Stderr
	out, err := cmd.Output()
	if err != nil {
		return "", false
	}
	choice := strings.TrimSpace(string(out))
	if choice == "" {
		return "", false
	}
	return choice, true
}
