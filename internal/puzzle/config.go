package puzzle

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SolverOptions configures the behavior of the Dancing Links solver from
// the outside, loadable from a YAML config file rather than constructed
// in code only.
type SolverOptions struct {
	// TimeLimit bounds how long SolveWithOptions waits for a result
	// before returning ErrTimeout. Zero means no limit. SolveWithOptions
	// enforces it with a timer and does not stop the search itself; the
	// internal/dlx core never measures time.
	TimeLimit time.Duration `yaml:"time_limit"`

	// MaxSolutions bounds how many solutions the uniqueness check run by
	// SolveWithOptions (when VerifyUnique is set) looks for before
	// stopping early. Values below 2 are raised to 2.
	MaxSolutions int `yaml:"max_solutions"`

	// VerifyUnique makes SolveWithOptions additionally confirm that the
	// puzzle's encoding has exactly one solution before applying it.
	VerifyUnique bool `yaml:"verify_unique"`
}

// DefaultSolverOptions returns the options used when no config file is
// given.
func DefaultSolverOptions() *SolverOptions {
	return &SolverOptions{
		TimeLimit:    10 * time.Second,
		MaxSolutions: 2, // only need to know if there's more than one
		VerifyUnique: false,
	}
}

// LoadSolverOptions reads solver options from a YAML file at path,
// applying DefaultSolverOptions for any field the file leaves unset.
func LoadSolverOptions(path string) (*SolverOptions, error) {
	opts := DefaultSolverOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, err
	}
	return opts, nil
}
