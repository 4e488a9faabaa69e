package pool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type WorkStealingDequeTestSuite struct {
	suite.Suite
}

func TestWorkStealingDequeTestSuite(t *testing.T) {
	suite.Run(t, new(WorkStealingDequeTestSuite))
}

func (ts *WorkStealingDequeTestSuite) TestEmptyOnCreation() {
	d := newWorkStealingDeque(0)
	ts.True(d.empty())

	_, ok := d.tryPop()
	ts.False(ok)

	_, ok = d.trySteal()
	ts.False(ok)
}

func (ts *WorkStealingDequeTestSuite) TestOwnerPopIsLIFO() {
	d := newWorkStealingDeque(0)

	var order []int
	for i := 0; i < 3; i++ {
		i := i
		d.push(func(ctx context.Context) { order = append(order, i) })
	}

	for i := 0; i < 3; i++ {
		t, ok := d.tryPop()
		ts.True(ok)
		t(context.Background())
	}
	ts.Equal([]int{2, 1, 0}, order)
}

func (ts *WorkStealingDequeTestSuite) TestThiefStealIsFIFO() {
	d := newWorkStealingDeque(0)

	var order []int
	for i := 0; i < 3; i++ {
		i := i
		d.push(func(ctx context.Context) { order = append(order, i) })
	}

	for i := 0; i < 3; i++ {
		t, ok := d.trySteal()
		ts.True(ok)
		t(context.Background())
	}
	ts.Equal([]int{0, 1, 2}, order)
}

func (ts *WorkStealingDequeTestSuite) TestOwnerAndThiefDoNotDuplicate() {
	d := newWorkStealingDeque(0)

	const n = 100
	for i := 0; i < n; i++ {
		d.push(func(ctx context.Context) {})
	}

	popped := 0
	for {
		if _, ok := d.tryPop(); ok {
			popped++
			continue
		}
		break
	}
	ts.Equal(n, popped)
	ts.True(d.empty())

	_, ok := d.trySteal()
	ts.False(ok)
}
