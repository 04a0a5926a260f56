// Package share publishes a one-line summary of a result through the
// best channel available.
package share

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/abhisek/mindcheck/internal/scoring"
)

// DefaultURL is linked from the summary when no share.url is configured.
const DefaultURL = "https://github.com/abhisek/mindcheck"

// ErrUnsupported is returned by a Sharer that cannot run on this system.
var ErrUnsupported = errors.New("native sharing is not supported")

// Channel names the mechanism that delivered a share.
type Channel string

const (
	ChannelNative    Channel = "native"
	ChannelClipboard Channel = "clipboard"
)

// Summary renders the share text for a result.
func Summary(r *scoring.Result, url string) string {
	if url == "" {
		url = DefaultURL
	}
	return fmt.Sprintf("My self-assessment result: %d%% - check your own wellbeing at %s", r.RoundedPercentage(), url)
}

// Sharer hands text to a platform share facility.
type Sharer interface {
	Share(ctx context.Context, text string) error
}

// ClipboardWriter writes text to the clipboard.
type ClipboardWriter interface {
	WriteAll(text string) error
}

// systemClipboard is the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard: %w", ErrUnsupported)
	}
	return clipboard.WriteAll(text)
}

// Service tries the native sharer first and falls back to the clipboard.
type Service struct {
	native    Sharer
	clipboard ClipboardWriter
}

// Option configures a Service.
type Option func(*Service)

// WithSharer sets the native share facility.
func WithSharer(s Sharer) Option {
	return func(svc *Service) { svc.native = s }
}

// WithClipboard replaces the OS clipboard.
func WithClipboard(c ClipboardWriter) Option {
	return func(svc *Service) { svc.clipboard = c }
}

// NewService creates a Service. Without options it has no native sharer
// and uses the OS clipboard.
func NewService(opts ...Option) *Service {
	s := &Service{clipboard: systemClipboard{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Share delivers text and reports which channel was used. The clipboard is
// tried only when the native sharer is absent or reports ErrUnsupported.
func (s *Service) Share(ctx context.Context, text string) (Channel, error) {
	if s.native != nil {
		err := s.native.Share(ctx, text)
		if err == nil {
			return ChannelNative, nil
		}
		if !errors.Is(err, ErrUnsupported) {
			return "", fmt.Errorf("share: %w", err)
		}
	}

	if err := s.clipboard.WriteAll(text); err != nil {
		return "", fmt.Errorf("copy to clipboard: %w", err)
	}
	return ChannelClipboard, nil
}
