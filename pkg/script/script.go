package script

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Op string

const (
	OpPushBack  Op = "push_back"
	OpPushFront Op = "push_front"
	OpPopBack   Op = "pop_back"
	OpPopFront  Op = "pop_front"
	OpReplace   Op = "replace"
	OpInsert    Op = "insert"
	OpPrint     Op = "print"
	// OpEcho 原样输出 Text
	OpEcho Op = "echo"
)

var ErrUnknownOp = errors.New("unknown op")

// Step 脚本中的一步操作, Index 只对 replace/insert 有意义
type Step struct {
	Op    Op     `yaml:"op"`
	Index int    `yaml:"index,omitempty"`
	Value int    `yaml:"value,omitempty"`
	Text  string `yaml:"text,omitempty"`
}

type Script struct {
	Steps []Step `yaml:"steps"`
}

func (s *Script) validate() error {
	for i, step := range s.Steps {
		switch step.Op {
		case OpPushBack, OpPushFront, OpPopBack, OpPopFront, OpReplace, OpInsert, OpPrint, OpEcho:
		default:
			return errors.Wrapf(ErrUnknownOp, "step %d: %q", i, step.Op)
		}
	}
	return nil
}

func Parse(src io.Reader) (*Script, error) {
	s := &Script{}
	dec := yaml.NewDecoder(src)
	// 拼错的字段直接报错, 不要悄悄用零值
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode script")
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func Load(filename string) (*Script, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "open script %s", filename)
	}
	defer file.Close()
	s, err := Parse(file)
	if err != nil {
		return nil, errors.Wrapf(err, "load script %s", filename)
	}
	return s, nil
}

// Default builds a list, prints it, pops twice, then replaces and inserts.
func Default() *Script {
	return &Script{Steps: []Step{
		{Op: OpPushBack, Value: 2},
		{Op: OpPushBack, Value: 3},
		{Op: OpPushFront, Value: 1},
		{Op: OpPushBack, Value: 4},
		{Op: OpPrint},
		{Op: OpEcho, Text: "popping values:"},
		{Op: OpPopBack},
		{Op: OpPopBack},
		{Op: OpReplace, Index: 1, Value: 9999},
		{Op: OpInsert, Index: 1, Value: 2222},
		{Op: OpEcho, Text: "whats next: "},
		{Op: OpPrint},
	}}
}
