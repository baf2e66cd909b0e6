package conformance

// TestSuite represents a complete YAML test file
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase represents a single program run within a suite
type TestCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Skip        interface{} `yaml:"skip,omitempty"` // bool or string
	Program     string      `yaml:"program"`
	Input       string      `yaml:"input,omitempty"`
	// OutputLimit makes the output sink fail after accepting this many bytes.
	OutputLimit *int        `yaml:"output_limit,omitempty"`
	Expect      Expectation `yaml:"expect"`
}

// Expectation defines what a run must produce
type Expectation struct {
	Output      *string     `yaml:"output,omitempty"`       // exact output text
	OutputBytes []int       `yaml:"output_bytes,omitempty"` // exact output as byte values
	Error       string      `yaml:"error,omitempty"`        // bracket | output
	Cells       map[int]int `yaml:"cells,omitempty"`        // cell index -> value after the run
	Cursor      *int        `yaml:"cursor,omitempty"`
}

// IsSkipped returns true if this test should be skipped
func (tc *TestCase) IsSkipped() (bool, string) {
	if tc.Skip == nil {
		return false, ""
	}

	switch v := tc.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}
