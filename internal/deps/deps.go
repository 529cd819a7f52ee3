package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external binary labelstrip relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// PrinterRequirement describes the configured print utility. Printing is
// optional: label generation works without it, only --print needs it.
func PrinterRequirement(command string) Requirement {
	return Requirement{
		Name:        "Print utility",
		Command:     command,
		Description: "sends the strip image to the label printer (--print)",
		Optional:    true,
	}
}

// Check evaluates a single requirement against the host PATH.
func Check(req Requirement) Status {
	command := strings.TrimSpace(req.Command)
	status := Status{
		Name:        req.Name,
		Command:     command,
		Description: strings.TrimSpace(req.Description),
		Optional:    req.Optional,
	}
	if command == "" {
		status.Detail = "command not configured"
		return status
	}
	if _, err := exec.LookPath(command); err != nil {
		status.Detail = fmt.Sprintf("binary %q not found", command)
		return status
	}
	status.Available = true
	return status
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		results = append(results, Check(req))
	}
	return results
}
