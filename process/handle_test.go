package process

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle_ZeroValueIsEmpty(t *testing.T) {
	var h Handle

	assert.False(t, h.Valid())
	assert.Equal(t, HandleValue(0), h.NativeHandle())
}

func TestHandle_GetProcessID(t *testing.T) {
	k := newFakeKernel()
	k.pids[0x40] = 1234
	withKernel(t, k)

	h := NewHandle(0x40)
	pid, ok := h.GetProcessID()

	require.True(t, ok)
	assert.Equal(t, ProcessID(1234), pid)
}

func TestHandle_GetProcessID_EmptyOwnerIsAbsent(t *testing.T) {
	withKernel(t, newFakeKernel())

	var h Handle
	_, ok := h.GetProcessID()

	assert.False(t, ok)
}

func TestHandle_IsRunning(t *testing.T) {
	k := newFakeKernel()
	k.pids[0x40] = 1234
	withKernel(t, k)

	h := NewHandle(0x40)

	assert.True(t, h.IsRunning())

	k.exited[0x40] = true

	assert.False(t, h.IsRunning())
}

func TestHandle_IsRunning_EmptyOwnerIsFalse(t *testing.T) {
	withKernel(t, newFakeKernel())

	var h Handle

	assert.False(t, h.IsRunning())
}

func TestHandle_IsRunning_WaitFailureIsFalse(t *testing.T) {
	k := newFakeKernel()
	k.waitErr = errors.New("wait failed")
	withKernel(t, k)

	h := NewHandle(0x40)

	assert.False(t, h.IsRunning())
}

func TestHandle_WaitForExitTimeout(t *testing.T) {
	k := newFakeKernel()
	withKernel(t, k)

	h := NewHandle(0x40)

	assert.False(t, h.WaitForExitTimeout(10*time.Millisecond))

	k.exited[0x40] = true

	assert.True(t, h.WaitForExitTimeout(10*time.Millisecond))
}

func TestHandle_WaitForExitTimeout_EmptyOwnerCompletesImmediately(t *testing.T) {
	withKernel(t, newFakeKernel())

	var h Handle

	assert.True(t, h.WaitForExitTimeout(10*time.Millisecond))
}

func TestHandle_ExitCode(t *testing.T) {
	k := newFakeKernel()
	k.exited[0x40] = true
	k.exitCode[0x40] = 7
	withKernel(t, k)

	h := NewHandle(0x40)
	code, ok := h.ExitCode()

	require.True(t, ok)
	assert.Equal(t, uint32(7), code)
}

func TestHandle_ExitCode_RunningProcessIsAbsent(t *testing.T) {
	k := newFakeKernel()
	k.pids[0x40] = 1234
	withKernel(t, k)

	h := NewHandle(0x40)
	_, ok := h.ExitCode()

	assert.False(t, ok)
}

func TestHandle_ExitCode_EmptyOwnerIsAbsent(t *testing.T) {
	withKernel(t, newFakeKernel())

	var h Handle
	_, ok := h.ExitCode()

	assert.False(t, ok)
}

func TestHandle_ClearReleasesThroughKernel(t *testing.T) {
	k := newFakeKernel()
	withKernel(t, k)

	h := NewHandle(0x40)
	h.Clear()
	h.Clear()

	assert.False(t, h.Valid())
	assert.Equal(t, []HandleValue{0x40}, k.closed)
}

func TestHandle_ReleaseDoesNotClose(t *testing.T) {
	k := newFakeKernel()
	withKernel(t, k)

	h := NewHandle(0x40)
	raw := h.Release()

	assert.Equal(t, HandleValue(0x40), raw)
	assert.False(t, h.Valid())
	assert.Empty(t, k.closed)
}

func TestHandle_EqualComparesRawValues(t *testing.T) {
	a := NewHandle(0x40)
	b := NewHandle(0x40)
	c := NewHandle(0x41)

	assert.True(t, a.Equal(&b))
	assert.False(t, a.Equal(&c))

	// Adopted raw values are intentionally never closed here; the fake
	// kernel in other tests asserts the close path.
	_ = a.Release()
	_ = b.Release()
	_ = c.Release()
}

func TestOpen_ResolvesPID(t *testing.T) {
	k := newFakeKernel()
	k.pids[0x40] = 1234
	withKernel(t, k)

	h, err := Open(1234)

	require.NoError(t, err)
	assert.Equal(t, HandleValue(0x40), h.NativeHandle())
}

func TestOpen_UnknownPIDFails(t *testing.T) {
	withKernel(t, newFakeKernel())

	_, err := Open(9999)

	assert.Error(t, err)
}
