package util_test

import (
	"sync"
	"testing"

	"github.com/robgonnella/sockchat/internal/util"
	"github.com/stretchr/testify/assert"
)

func TestQueue(t *testing.T) {
	t.Run("drains items in insertion order", func(st *testing.T) {
		q := util.NewQueue[int]()

		q.Push(1)
		q.Push(2)
		q.Push(3)

		<-q.Ready()

		assert.Equal(st, []int{1, 2, 3}, q.Drain())
		assert.Equal(st, 0, q.Len())
	})

	t.Run("push never blocks without a consumer", func(st *testing.T) {
		q := util.NewQueue[string]()

		for i := 0; i < 1000; i++ {
			q.Push("x")
		}

		assert.Equal(st, 1000, q.Len())
	})

	t.Run("handles concurrent producers", func(st *testing.T) {
		q := util.NewQueue[int]()
		wg := sync.WaitGroup{}

		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					q.Push(j)
				}
			}()
		}

		wg.Wait()

		assert.Equal(st, 1000, len(q.Drain()))
	})
}
