package fserr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(KindNotFound, "no such file")

	require.Equal(t, KindNotFound, err.Kind())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Equal(t, "no such file", err.Message())
	require.Empty(t, err.Op())
	require.Empty(t, err.Path())
	require.NoError(t, err.Unwrap())
	require.Equal(t, "[NOT_FOUND]: no such file", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(KindInvalidInput, "seek offset %d before start", -3)

	require.Equal(t, KindInvalidInput, err.Kind())
	require.Equal(t, "seek offset -3 before start", err.Message())
}

func TestPathError(t *testing.T) {
	err := PathError(KindNotFound, "open", "etc/config")

	require.Equal(t, KindNotFound, err.Kind())
	require.Equal(t, "open", err.Op())
	require.Equal(t, "etc/config", err.Path())
	require.Empty(t, err.Message())
	require.Equal(t, "[NOT_FOUND] open etc/config", err.Error())
}

func TestWrap(t *testing.T) {
	cause := errors.New("device fell over")
	err := Wrap(cause, KindIO, "block read failed")

	require.Equal(t, KindIO, err.Kind())
	require.Equal(t, ClassificationRetryable, err.Classification())
	require.ErrorIs(t, err, cause)
	require.Equal(t, "[IO_ERROR]: block read failed: device fell over", err.Error())
}

func TestWrapNil(t *testing.T) {
	require.Nil(t, Wrap(nil, KindIO, "nothing"))
	require.Nil(t, Wrapf(nil, KindIO, "nothing %d", 1))
	require.Nil(t, WrapPath(nil, KindIO, "read", "f"))
}

func TestWrapPreservesClassification(t *testing.T) {
	// An IO error rewrapped under a permanent kind keeps its retryable
	// classification, so retry loops still see the transient fault.
	inner := New(KindIO, "transient fault")
	err := Wrap(inner, KindUnknown, "operation failed")

	require.Equal(t, KindUnknown, err.Kind())
	require.Equal(t, ClassificationRetryable, err.Classification())
}

func TestWrapPath(t *testing.T) {
	cause := New(KindNotFound, "missing")
	err := WrapPath(cause, KindNotFound, "rename", "a/b")

	require.Equal(t, "rename", err.Op())
	require.Equal(t, "a/b", err.Path())
	require.ErrorIs(t, err, cause)
	require.Equal(t, "[NOT_FOUND] rename a/b: [NOT_FOUND]: missing", err.Error())
}

func TestWrapfFormatsMessage(t *testing.T) {
	cause := errors.New("boom")
	err := Wrapf(cause, KindIO, "attempt %d failed", 3)

	require.Equal(t, "attempt 3 failed", err.Message())
	require.ErrorIs(t, err, cause)
}

func TestKindOf(t *testing.T) {
	require.Equal(t, KindNotFound, KindOf(New(KindNotFound, "x")))
	require.Equal(t, KindUnknown, KindOf(nil))
	require.Equal(t, KindUnknown, KindOf(errors.New("plain")))
}

func TestKindOfThroughChain(t *testing.T) {
	err := fmt.Errorf("outer: %w", PathError(KindClosed, "read", "f"))
	require.Equal(t, KindClosed, KindOf(err))
	require.True(t, IsClosed(err))
}

// customKinded is a foreign error type participating via the Kinder hook.
type customKinded struct{ kind Kind }

func (e customKinded) Error() string { return "custom" }
func (e customKinded) Kind() Kind    { return e.kind }

func TestKindOfForeignKinder(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", customKinded{kind: KindUnsupported})
	require.Equal(t, KindUnsupported, KindOf(err))
	require.True(t, IsUnsupported(err))
}

func TestClassificationOf(t *testing.T) {
	require.Equal(t, ClassificationRetryable, ClassificationOf(New(KindIO, "x")))
	require.Equal(t, ClassificationPermanent, ClassificationOf(New(KindNotFound, "x")))
	require.Equal(t, ClassificationPermanent, ClassificationOf(nil))
	require.Equal(t, ClassificationPermanent, ClassificationOf(errors.New("plain")))
}

func TestIsRetryable(t *testing.T) {
	require.True(t, IsRetryable(New(KindIO, "flaky")))
	require.False(t, IsRetryable(New(KindPermissionDenied, "nope")))
	require.False(t, IsRetryable(nil))
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		kind Kind
		pred func(error) bool
	}{
		{KindNotFound, IsNotFound},
		{KindPermissionDenied, IsPermissionDenied},
		{KindAlreadyExists, IsAlreadyExists},
		{KindNotADirectory, IsNotADirectory},
		{KindIsADirectory, IsADirectory},
		{KindDirectoryNotEmpty, IsDirectoryNotEmpty},
		{KindCrossesDevices, IsCrossesDevices},
		{KindInvalidInput, IsInvalidInput},
		{KindClosed, IsClosed},
		{KindUnsupported, IsUnsupported},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			require.True(t, tt.pred(New(tt.kind, "x")))
			require.False(t, tt.pred(New(KindUnknown, "x")))
			require.False(t, tt.pred(nil))
		})
	}
}

func TestAs(t *testing.T) {
	var fsErr Error
	require.True(t, As(New(KindIO, "x"), &fsErr))
	require.Equal(t, KindIO, fsErr.Kind())

	require.False(t, As(errors.New("plain"), &fsErr))
}

func TestDefaultClassificationUnknownKind(t *testing.T) {
	require.Equal(t, ClassificationPermanent, defaultClassification(Kind("MADE_UP")))
}
