package script

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuning888/dlist-tiny/logger"
	"github.com/xuning888/dlist-tiny/pkg/datastruct/list"
)

func TestRunner_Default(t *testing.T) {
	out := bytes.Buffer{}
	l := list.New[int]()
	r := NewRunner(&out)
	assert.Nil(t, r.Run(l, Default()))
	assert.Equal(t, 0, r.Failures)
	want := "1\n2\n3\n4\npopping values:\n4\n3\nwhats next: \n1\n9999\n2222\n"
	assert.Equal(t, want, out.String())
	assert.Equal(t, []int{1, 9999, 2222}, l.Values())
}

func TestRunner_Failures(t *testing.T) {
	logs := bytes.Buffer{}
	logger.SetOutput(&logs)
	defer logger.SetOutput(os.Stderr)

	testCases := []struct {
		name     string
		steps    []Step
		want     []int
		failures int
	}{
		{
			name:     "pop empty list",
			steps:    []Step{{Op: OpPopBack}, {Op: OpPopFront}},
			want:     []int{},
			failures: 2,
		},
		{
			name: "replace out of range",
			steps: []Step{
				{Op: OpPushBack, Value: 1},
				{Op: OpReplace, Index: 1, Value: 2},
			},
			want:     []int{1},
			failures: 1,
		},
		{
			name: "insert out of range then in range",
			steps: []Step{
				{Op: OpPushBack, Value: 1},
				{Op: OpInsert, Index: 5, Value: 2},
				{Op: OpInsert, Index: 0, Value: 3},
			},
			want:     []int{1, 3},
			failures: 1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := list.New[int]()
			r := NewRunner(&bytes.Buffer{})
			assert.Nil(t, r.Run(l, &Script{Steps: tc.steps}))
			assert.Equal(t, tc.failures, r.Failures)
			assert.Equal(t, tc.want, l.Values())
		})
	}
	assert.Contains(t, logs.String(), "out of index")
}

func TestParse(t *testing.T) {
	src := `
steps:
  - op: push_back
    value: 7
  - op: push_front
    value: 5
  - op: insert
    index: 0
    value: 6
  - op: pop_front
  - op: echo
    text: done
  - op: print
`
	s, err := Parse(strings.NewReader(src))
	require.Nil(t, err)
	require.Len(t, s.Steps, 6)
	assert.Equal(t, Step{Op: OpInsert, Index: 0, Value: 6}, s.Steps[2])

	out := bytes.Buffer{}
	l := list.New[int]()
	assert.Nil(t, NewRunner(&out).Run(l, s))
	assert.Equal(t, "5\ndone\n6\n7\n", out.String())
}

func TestParse_Invalid(t *testing.T) {
	testCases := []struct {
		name   string
		src    string
		wantOp bool
	}{
		{name: "unknown op", src: "steps:\n  - op: sort\n", wantOp: true},
		{name: "malformed yaml", src: "steps: [", wantOp: false},
		{name: "misspelled step field", src: "steps:\n  - op: replace\n    idx: 1\n    value: 9\n", wantOp: false},
		{name: "unknown top level field", src: "step:\n  - op: print\n", wantOp: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.src))
			assert.NotNil(t, err)
			if tc.wantOp {
				assert.ErrorIs(t, err, ErrUnknownOp)
			}
		})
	}

	s, err := Parse(strings.NewReader(""))
	assert.Nil(t, err)
	assert.Empty(t, s.Steps)
}

func TestLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "ops.yaml")
	require.Nil(t, os.WriteFile(filename, []byte("steps:\n  - op: push_back\n    value: 1\n"), 0o644))
	s, err := Load(filename)
	require.Nil(t, err)
	assert.Equal(t, []Step{{Op: OpPushBack, Value: 1}}, s.Steps)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)
}
