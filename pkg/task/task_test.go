package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wscript-lang/runtime/pkg/value"
	"github.com/wscript-lang/runtime/pkg/werr"
)

func TestAwaitBlocksUntilResolved(t *testing.T) {
	start := make(chan struct{})
	tk := Spawn(func() (value.Value, *werr.Error) {
		<-start
		return value.String("done"), nil
	})
	assert.False(t, tk.Done())
	close(start)

	v, err := tk.Await()
	assert.Nil(t, err)
	assert.Equal(t, "done", v.Display())
	assert.True(t, tk.Done())
}

func TestMultipleAwaitersSeeSameResult(t *testing.T) {
	tk := Spawn(func() (value.Value, *werr.Error) { return value.Num(7), nil })

	results := make(chan value.Value, 2)
	for i := 0; i < 2; i++ {
		go func() {
			v, _ := tk.Await()
			results <- v
		}()
	}
	v1 := <-results
	v2 := <-results
	assert.Equal(t, v1.Display(), v2.Display())
}

func TestDisplayReflectsState(t *testing.T) {
	start := make(chan struct{})
	tk := Spawn(func() (value.Value, *werr.Error) {
		<-start
		return value.Empty, nil
	})
	assert.Contains(t, tk.Display(), "running")
	close(start)
	tk.Await()
	assert.Contains(t, tk.Display(), "resolved")
}

func TestAwaitWaitsForDelayedResult(t *testing.T) {
	tk := Spawn(func() (value.Value, *werr.Error) {
		time.Sleep(10 * time.Millisecond)
		return value.Bool(true), nil
	})
	v, _ := tk.Await()
	assert.Equal(t, "True", v.Display())
}

func TestAwaitPropagatesError(t *testing.T) {
	wantErr := werr.New(werr.KindTask, werr.Plain("boom", "boom"))
	tk := Spawn(func() (value.Value, *werr.Error) { return value.Empty, wantErr })
	_, err := tk.Await()
	assert.Same(t, wantErr, err)
}
