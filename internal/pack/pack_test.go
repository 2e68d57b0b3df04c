package pack_test

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/hofkit/hof/internal/pack"

	"github.com/stretchr/testify/assert"
)

func TestPairAccessors(t *testing.T) {
	p := pack.MakePair("left", 42)

	assert.Equal(t, "left", p.First())
	assert.Equal(t, 42, p.Second())
}

func TestPairZeroSizeMembersAreFree(t *testing.T) {
	type marker struct{}

	both := pack.MakePair(marker{}, marker{})
	assert.Equal(t, uintptr(0), unsafe.Sizeof(both))

	leading := pack.MakePair(marker{}, uint64(7))
	assert.Equal(t, unsafe.Sizeof(uint64(7)), unsafe.Sizeof(leading))
}

func TestPackIsolation(t *testing.T) {
	src := []any{1, 2, 3}
	p := pack.New(src...)
	src[0] = 99

	assert.Equal(t, 3, p.Len())
	assert.Equal(t, 1, p.At(0))
}

func TestPackMap(t *testing.T) {
	p := pack.New(1, 2, 3)

	out, err := p.Map(func(i int, item any) (any, error) {
		return item.(int) * 10, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []any{10, 20, 30}, out)
}

func TestPackMapShortCircuits(t *testing.T) {
	p := pack.New(1, 2, 3)
	visited := 0

	_, err := p.Map(func(i int, item any) (any, error) {
		visited++
		if i == 1 {
			return nil, fmt.Errorf("stop at %d", i)
		}
		return item, nil
	})
	assert.Error(t, err)
	assert.Equal(t, 2, visited)
}
