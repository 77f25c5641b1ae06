package session

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/f3rmion/cpzkp/group"
)

type config struct {
	rand io.Reader
	log  zerolog.Logger
	grp  group.Group
}

// Option configures a Session created by [New] or [Restore].
type Option func(*config)

// WithRandom sets the source of secrets, nonces and challenges.
// The default is crypto/rand.Reader.
func WithRandom(r io.Reader) Option {
	return func(c *config) {
		c.rand = r
	}
}

// WithLogger sets the logger that receives session events. The default
// discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.log = l
	}
}

// WithGroup runs the session in grp instead of the deployment group of its
// kind, for example a [modp.New] group with custom parameters. The group
// must be of the kind passed to [New].
func WithGroup(grp group.Group) Option {
	return func(c *config) {
		c.grp = grp
	}
}
