package conformance

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultDir holds the suites shipped with the repository, relative to this package.
const DefaultDir = "testdata"

// LoadedTest represents a test with its source file path
type LoadedTest struct {
	File  string
	Suite TestSuite
	Test  TestCase
}

// LoadSuites walks dir and loads every test case from its .yaml files.
// Files are visited in lexical order so results are stable.
func LoadSuites(dir string) ([]LoadedTest, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve suite directory: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("access suite directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("suite path %q is not a directory", abs)
	}

	var paths []string
	err = filepath.Walk(abs, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || (filepath.Ext(path) != ".yaml" && filepath.Ext(path) != ".yml") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	var loaded []LoadedTest
	for _, path := range paths {
		tests, err := loadTestFile(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		relPath, _ := filepath.Rel(abs, path)
		for _, test := range tests {
			test.File = relPath
			loaded = append(loaded, test)
		}
	}
	return loaded, nil
}

// loadTestFile parses a single YAML file and returns all test cases
func loadTestFile(path string) ([]LoadedTest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseSuite(data)
}

func parseSuite(data []byte) ([]LoadedTest, error) {
	var suite TestSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, err
	}
	if suite.Name == "" {
		return nil, fmt.Errorf("suite name is required")
	}

	tests := make([]LoadedTest, 0, len(suite.Tests))
	for i, test := range suite.Tests {
		if test.Name == "" {
			return nil, fmt.Errorf("test %d in suite %q has no name", i, suite.Name)
		}
		tests = append(tests, LoadedTest{
			Suite: suite,
			Test:  test,
		})
	}
	return tests, nil
}
