package script

import (
	"fmt"
	"io"

	"github.com/xuning888/dlist-tiny/logger"
	"github.com/xuning888/dlist-tiny/pkg/datastruct/list"
)

// Runner 把脚本应用到链表上, print/pop/echo 的结果写到 out.
// 越界和空链表不会中断脚本, 只记一条 warn 并计数
type Runner struct {
	out      io.Writer
	Failures int
}

func NewRunner(out io.Writer) *Runner {
	return &Runner{out: out}
}

// Run returns an error only when writing to out fails.
func (r *Runner) Run(l *list.LinkedList[int], s *Script) error {
	for i, step := range s.Steps {
		if logger.IsEnabledDebug() {
			logger.DebugF("step %d: %s index=%d value=%d, list=%s", i, step.Op, step.Index, step.Value, l)
		}
		if err := r.apply(l, step); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) apply(l *list.LinkedList[int], step Step) error {
	var err error
	switch step.Op {
	case OpPushBack:
		l.PushBack(step.Value)
	case OpPushFront:
		l.PushFront(step.Value)
	case OpPopBack, OpPopFront:
		pop := l.PopBack
		if step.Op == OpPopFront {
			pop = l.PopFront
		}
		var value int
		if value, err = pop(); err != nil {
			r.fail(step, err)
			return nil
		}
		_, err = fmt.Fprintln(r.out, value)
	case OpReplace:
		if _, err = l.Replace(step.Index, step.Value); err != nil {
			r.fail(step, err)
			return nil
		}
	case OpInsert:
		if _, err = l.Insert(step.Index, step.Value); err != nil {
			r.fail(step, err)
			return nil
		}
	case OpPrint:
		err = l.Print(r.out)
	case OpEcho:
		_, err = fmt.Fprintln(r.out, step.Text)
	default:
		r.fail(step, ErrUnknownOp)
	}
	return err
}

func (r *Runner) fail(step Step, err error) {
	r.Failures++
	logger.WarnF("%s index=%d value=%d: %v", step.Op, step.Index, step.Value, err)
}
