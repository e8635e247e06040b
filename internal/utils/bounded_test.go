// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundedLog_PushNewestFirst(t *testing.T) {
	l := NewBoundedLog[int](3)
	l.Push(1)
	l.Push(2)

	assert.Equal(t, []int{2, 1}, l.Items())
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, 3, l.Cap())
}

func TestBoundedLog_InsertThenTrim(t *testing.T) {
	l := NewBoundedLog[string](50)
	for i := range 51 {
		l.Push(fmt.Sprintf("r%d", i))
	}

	items := l.Items()
	require.Len(t, items, 50)
	assert.Equal(t, "r50", items[0])
	assert.Equal(t, "r1", items[49])
	assert.NotContains(t, items, "r0")
}

func TestBoundedLog_ItemsIsCopy(t *testing.T) {
	l := NewBoundedLog[int](2)
	l.Push(1)

	items := l.Items()
	items[0] = 42

	assert.Equal(t, []int{1}, l.Items())
}

func TestBoundedLog_EmptyItemsNotNil(t *testing.T) {
	l := NewBoundedLog[int](2)
	assert.NotNil(t, l.Items())
	assert.Empty(t, l.Items())
}

func TestBoundedLog_Reset(t *testing.T) {
	l := NewBoundedLog[int](2)
	l.Push(1)
	l.Push(2)
	l.Reset()

	assert.Equal(t, 0, l.Len())
	l.Push(3)
	assert.Equal(t, []int{3}, l.Items())
}

func TestNewBoundedLogFrom_TrimsToCapacity(t *testing.T) {
	l := NewBoundedLogFrom(2, []int{5, 4, 3})
	assert.Equal(t, []int{5, 4}, l.Items())

	l = NewBoundedLogFrom[int](2, nil)
	assert.Equal(t, 0, l.Len())
}

func TestNewBoundedLog_MinCapacity(t *testing.T) {
	l := NewBoundedLog[int](0)
	l.Push(1)
	l.Push(2)
	assert.Equal(t, []int{2}, l.Items())
}
