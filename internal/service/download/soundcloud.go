package download

import (
	"context"
	"errors"

	"github.com/phasegym/tunegrab/internal/logger"
)

// errSoundCloudNotImplemented marks the deliberately stubbed SoundCloud path.
// SoundCloud links are recognized so users get a clean failure instead of
// an "unsupported platform" message, but no download is attempted.
var errSoundCloudNotImplemented = errors.New("soundcloud downloads are not implemented")

// acquireSoundCloud never succeeds.
// The platform is advertised but downloads cannot currently complete,
// which is a known limitation rather than a bug.
func (s *ServiceImpl) acquireSoundCloud(ctx context.Context, rawURL string) (*Result, error) {
	logger.Infof(ctx, "Rejecting SoundCloud URL, downloads are not implemented: %s", rawURL)

	return nil, errSoundCloudNotImplemented
}
