package pool

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type FutureTestSuite struct {
	suite.Suite
}

func TestFutureTestSuite(t *testing.T) {
	suite.Run(t, new(FutureTestSuite))
}

func (ts *FutureTestSuite) TestDeliverThenGet() {
	pr, fut := newFuture[int]()
	pr.deliver(42, nil)

	value, err := fut.Get(context.Background())
	ts.NoError(err)
	ts.Equal(42, value)
}

func (ts *FutureTestSuite) TestGetBlocksUntilDelivered() {
	pr, fut := newFuture[string]()

	go func() {
		time.Sleep(10 * time.Millisecond)
		pr.deliver("done", nil)
	}()

	value, err := fut.Get(context.Background())
	ts.NoError(err)
	ts.Equal("done", value)
}

func (ts *FutureTestSuite) TestGetHonoursContextCancellation() {
	_, fut := newFuture[int]()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	_, err := fut.Get(ctx)
	ts.ErrorIs(err, context.DeadlineExceeded)
}

func (ts *FutureTestSuite) TestSecondReadFails() {
	pr, fut := newFuture[int]()
	pr.deliver(7, nil)

	_, err := fut.Get(context.Background())
	ts.NoError(err)

	_, err = fut.Get(context.Background())
	ts.ErrorIs(err, ErrFutureAlreadyRead)
}

func (ts *FutureTestSuite) TestPollNotReady() {
	_, fut := newFuture[int]()

	_, _, ready := fut.Poll()
	ts.False(ready)
}

func (ts *FutureTestSuite) TestPollReadyThenAlreadyRead() {
	pr, fut := newFuture[int]()
	pr.deliver(9, nil)

	value, err, ready := fut.Poll()
	ts.True(ready)
	ts.NoError(err)
	ts.Equal(9, value)

	_, err, ready = fut.Poll()
	ts.True(ready)
	ts.ErrorIs(err, ErrFutureAlreadyRead)
}

func (ts *FutureTestSuite) TestDeliveryNeverBlocksProducer() {
	pr, _ := newFuture[int]()

	done := make(chan struct{})
	go func() {
		pr.deliver(1, nil)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(100 * time.Millisecond):
		ts.Fail("deliver blocked with no reader present")
	}
}
