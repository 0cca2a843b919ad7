// Package clitest runs command line programs in process against cases
// described in YAML files. Unlike .ct scripts a case may set environment
// variables, which makes it the place to test configuration read from the
// environment.
//
// A file holds a list of cases, either at the top level or under "tests":
//
//	tests:
//	  - name: json from environment
//	    cmd: intervals
//	    args: [valid, --start=-1d]
//	    env:
//	      INTERVALS_FORMAT: json
//	    expect:
//	      stdout: |
//	        {"result":true}
//	      exitCode: 0
package clitest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Case is a single invocation and the output it should produce.
type Case struct {
	Name   string            `yaml:"name"`
	Cmd    string            `yaml:"cmd"`
	Args   []string          `yaml:"args"`
	Env    map[string]string `yaml:"env"`
	Expect Expect            `yaml:"expect"`
}

type Expect struct {
	Stdout   string `yaml:"stdout"`
	Stderr   string `yaml:"stderr"`
	ExitCode int    `yaml:"exitCode"`
}

// file keeps the parsed node tree next to the decoded cases so that updated
// expectations can be written back without losing comments or layout.
type file struct {
	path  string
	root  yaml.Node
	nodes []*yaml.Node
	cases []Case
}

type Suite struct {
	files    []*file
	programs map[string]func() int
}

// Read loads every .yaml and .yml file under dir.
func Read(dir string) (*Suite, error) {
	s := &Suite{programs: make(map[string]func() int)}
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		ext := strings.ToLower(filepath.Ext(path))
		if d.IsDir() || (ext != ".yaml" && ext != ".yml") {
			return nil
		}
		f, err := readFile(path)
		if err != nil {
			return err
		}
		s.files = append(s.files, f)
		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return s, nil
}

func readFile(path string) (*file, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	f := &file{path: path}
	if err := yaml.Unmarshal(content, &f.root); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	if len(f.root.Content) == 0 {
		return nil, errors.Errorf("%s: empty yaml", path)
	}
	list, err := casesNode(f.root.Content[0])
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	if err := list.Decode(&f.cases); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	f.nodes = list.Content
	return f, nil
}

func casesNode(doc *yaml.Node) (*yaml.Node, error) {
	switch doc.Kind {
	case yaml.SequenceNode:
		return doc, nil
	case yaml.MappingNode:
		tests := mapValue(doc, "tests")
		if tests == nil {
			return nil, errors.New("missing 'tests' key")
		}
		if tests.Kind != yaml.SequenceNode {
			return nil, errors.New("tests must be a sequence")
		}
		return tests, nil
	default:
		return nil, errors.Errorf("unsupported top-level yaml kind %v", doc.Kind)
	}
}

// Register makes main runnable as the cmd of a case. main reads its
// arguments from os.Args and returns the exit code.
func (s *Suite) Register(cmd string, main func() int) {
	s.programs[cmd] = main
}

// Run runs every case as a subtest. With update set, mismatching
// expectations are written back to their file instead of failing.
func (s *Suite) Run(t *testing.T, update bool) {
	for _, f := range s.files {
		t.Run(filepath.Base(f.path), func(t *testing.T) {
			changed := false
			for i := range f.cases {
				name := f.cases[i].Name
				if name == "" {
					name = fmt.Sprintf("case-%d", i)
				}
				t.Run(name, func(t *testing.T) {
					if s.runCase(t, f, i, update) {
						changed = true
					}
				})
			}
			if changed {
				if err := f.write(); err != nil {
					t.Fatalf("update %s: %v", f.path, err)
				}
				t.Logf("updated %s", f.path)
			}
		})
	}
}

func (s *Suite) runCase(t *testing.T, f *file, i int, update bool) bool {
	c := &f.cases[i]
	main, ok := s.programs[c.Cmd]
	if !ok {
		t.Fatalf("command %q is not registered", c.Cmd)
	}
	for k, v := range c.Env {
		t.Setenv(k, v)
	}

	stdout, stderr, code := capture(t, append([]string{c.Cmd}, c.Args...), main)

	expect := ensureValue(f.nodes[i], "expect")
	changed := false
	check := func(field, want, got string, set func(*yaml.Node)) {
		if want == got {
			return
		}
		if update {
			set(ensureValue(expect, field))
			changed = true
			return
		}
		t.Errorf("%s mismatch\nwant:\n%s\ngot:\n%s", field, want, got)
	}
	check("exitCode", strconv.Itoa(c.Expect.ExitCode), strconv.Itoa(code), func(n *yaml.Node) {
		setScalar(n, "!!int", strconv.Itoa(code))
	})
	check("stdout", c.Expect.Stdout, stdout, func(n *yaml.Node) { setScalar(n, "!!str", stdout) })
	check("stderr", c.Expect.Stderr, stderr, func(n *yaml.Node) { setScalar(n, "!!str", stderr) })
	return changed
}

// capture runs main with os.Args set to args, collecting what it writes to
// the standard streams.
func capture(t *testing.T, args []string, main func() int) (string, string, int) {
	t.Helper()

	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}

	oldArgs, oldStdout, oldStderr := os.Args, os.Stdout, os.Stderr
	os.Args, os.Stdout, os.Stderr = args, wOut, wErr

	outc := drain(rOut)
	errc := drain(rErr)

	code := func() (code int) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("panic: %v", r)
				code = -1
			}
		}()
		return main()
	}()

	os.Args, os.Stdout, os.Stderr = oldArgs, oldStdout, oldStderr
	_ = wOut.Close()
	_ = wErr.Close()
	return <-outc, <-errc, code
}

func drain(r *os.File) <-chan string {
	c := make(chan string, 1)
	go func() {
		defer r.Close()
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		c <- buf.String()
	}()
	return c
}

func (f *file) write() error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&f.root); err != nil {
		return errors.WithStack(err)
	}
	if err := enc.Close(); err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(os.WriteFile(f.path, buf.Bytes(), 0o644))
}

func mapValue(m *yaml.Node, key string) *yaml.Node {
	if m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func ensureValue(m *yaml.Node, key string) *yaml.Node {
	if m.Kind != yaml.MappingNode {
		m.Kind = yaml.MappingNode
		m.Tag = ""
		m.Content = nil
	}
	if v := mapValue(m, key); v != nil {
		return v
	}
	k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	v := &yaml.Node{Kind: yaml.MappingNode}
	m.Content = append(m.Content, k, v)
	return v
}

func setScalar(n *yaml.Node, tag, value string) {
	n.Kind = yaml.ScalarNode
	n.Tag = tag
	n.Content = nil
	n.Style = 0
	// a lone newline would otherwise be written as an empty literal block
	if value == "\n" || value == "\r\n" {
		n.Style = yaml.DoubleQuotedStyle
	}
	n.Value = value
}
