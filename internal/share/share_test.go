package share

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mindcheck/internal/scoring"
)

type fakeSharer struct {
	err  error
	got  string
	hits int
}

func (f *fakeSharer) Share(_ context.Context, text string) error {
	f.hits++
	f.got = text
	return f.err
}

type fakeClipboard struct {
	err error
	got string
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.got = text
	return f.err
}

func TestSummary(t *testing.T) {
	r := &scoring.Result{ScorePercentage: 84}
	assert.Equal(t,
		"My self-assessment result: 84% - check your own wellbeing at https://example.com/test",
		Summary(r, "https://example.com/test"))

	r.ScorePercentage = 83.5
	assert.Contains(t, Summary(r, ""), "84% - check your own wellbeing at "+DefaultURL)
}

func TestShare_Native(t *testing.T) {
	native := &fakeSharer{}
	clip := &fakeClipboard{}
	svc := NewService(WithSharer(native), WithClipboard(clip))

	ch, err := svc.Share(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, ChannelNative, ch)
	assert.Equal(t, "hello", native.got)
	assert.Empty(t, clip.got)
}

func TestShare_FallsBackWhenUnsupported(t *testing.T) {
	native := &fakeSharer{err: ErrUnsupported}
	clip := &fakeClipboard{}
	svc := NewService(WithSharer(native), WithClipboard(clip))

	ch, err := svc.Share(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, ChannelClipboard, ch)
	assert.Equal(t, 1, native.hits)
	assert.Equal(t, "hello", clip.got)
}

func TestShare_NoNativeUsesClipboard(t *testing.T) {
	clip := &fakeClipboard{}
	ch, err := NewService(WithClipboard(clip)).Share(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, ChannelClipboard, ch)
}

func TestShare_NativeFailureIsReported(t *testing.T) {
	native := &fakeSharer{err: errors.New("cancelled by user")}
	clip := &fakeClipboard{}
	svc := NewService(WithSharer(native), WithClipboard(clip))

	_, err := svc.Share(context.Background(), "hello")
	require.Error(t, err)
	assert.Empty(t, clip.got, "clipboard must not be used for other failures")
}

func TestShare_ClipboardFailure(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no display")}
	_, err := NewService(WithClipboard(clip)).Share(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copy to clipboard")
}
