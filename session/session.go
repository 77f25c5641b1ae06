package session

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/f3rmion/cpzkp/group"
	"github.com/f3rmion/cpzkp/sample"
	"github.com/f3rmion/cpzkp/zkp"
)

// State is the lifecycle state of a Session.
type State uint8

const (
	// Initial is the state of a new session with no rounds.
	Initial State = iota
	// Active is the state once at least one round has started.
	Active
	// Finalized is terminal: no rounds can start and no responses can be
	// recorded.
	Finalized
)

func (s State) String() string {
	switch s {
	case Initial:
		return "initial"
	case Active:
		return "active"
	case Finalized:
		return "finalized"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Session sequences repeated Chaum-Pedersen rounds for one secret x. The
// secret is drawn when the session is created and used for every response.
//
// A Session is safe for concurrent use.
type Session struct {
	mu     sync.Mutex
	id     uuid.UUID
	grp    group.Group
	state  State
	secret *big.Int
	y1, y2 group.Element
	rounds []*round
	cfg    config
	log    zerolog.Logger
}

func newConfig(opts []Option) config {
	cfg := config{
		rand: rand.Reader,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func resolveGroup(kind group.Kind, grp group.Group) (group.Group, error) {
	if grp == nil {
		return zkp.Lookup(kind)
	}
	if grp.Kind() != kind {
		return nil, fmt.Errorf("%w: %s group for a %s session", group.ErrInvalidGroupType, grp.Kind(), kind)
	}
	return grp, nil
}

// New creates a session of the given kind with a freshly drawn secret x
// and its public values y1 = g^x, y2 = h^x.
func New(kind group.Kind, opts ...Option) (*Session, error) {
	cfg := newConfig(opts)
	grp, err := resolveGroup(kind, cfg.grp)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	key, err := zkp.GenerateKey(grp, cfg.rand)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	id, err := sample.ID(cfg.rand)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s := &Session{
		id:     id,
		grp:    grp,
		state:  Initial,
		secret: key.Secret,
		y1:     key.Y1,
		y2:     key.Y2,
		cfg:    cfg,
	}
	s.initLogger()
	s.log.Info().Msg("session created")
	return s, nil
}

func (s *Session) initLogger() {
	s.log = s.cfg.log.With().
		Str("session", s.id.String()).
		Str("kind", s.grp.Kind().String()).
		Logger()
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Kind returns the kind of the session's group.
func (s *Session) Kind() group.Kind {
	return s.grp.Kind()
}

// Group returns the group the session runs in.
func (s *Session) Group() group.Group {
	return s.grp
}

// Params returns the session's group parameters (p, q, g, h).
func (s *Session) Params() *group.Params {
	return group.ParamsOf(s.grp)
}

// PublicValues returns y1 = g^x and y2 = h^x.
func (s *Session) PublicValues() (y1, y2 group.Element) {
	return s.y1, s.y2
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// RoundCount returns the number of rounds started so far.
func (s *Session) RoundCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rounds)
}

// Round returns a snapshot of round i.
func (s *Session) Round(i int) (Round, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, err := s.round(i)
	if err != nil {
		return Round{}, err
	}
	return r.snapshot(), nil
}

func (s *Session) round(i int) (*round, error) {
	if i < 0 || i >= len(s.rounds) {
		return nil, fmt.Errorf("%w: %d of %d", ErrUnknownRound, i, len(s.rounds))
	}
	return s.rounds[i], nil
}

// StartRound draws a fresh nonce k, commits (r1, r2) = (g^k, h^k) and
// stores the round under the next index. It fails once the session is
// finalized.
func (s *Session) StartRound() (*Commitment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Finalized {
		return nil, ErrFinalized
	}
	k, err := sample.NonZeroModN(s.cfg.rand, s.grp.Order())
	if err != nil {
		return nil, fmt.Errorf("start round: %w", err)
	}
	r1, r2, err := zkp.Commit(s.grp, k, s.grp.Generator(), s.grp.SecondGenerator())
	if err != nil {
		k.SetUint64(0)
		return nil, fmt.Errorf("start round: %w", err)
	}
	r := &round{
		Round: Round{Index: len(s.rounds), R1: r1, R2: r2},
		k:     k,
	}
	s.rounds = append(s.rounds, r)
	s.state = Active
	s.log.Debug().Int("round", r.Index).Msg("round started")
	return &Commitment{Round: r.Index, R1: r1, R2: r2}, nil
}

// GenerateChallenge draws a verifier challenge uniformly from [0, q).
// The session's random source is read under the session lock.
func (s *Session) GenerateChallenge() (*big.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grp.GenerateChallenge(s.cfg.rand)
}

// RecordResponse computes s = (k - c·x) mod q for round i with the
// externally supplied challenge c and stores both. The round's nonce is
// erased afterwards, so each round answers exactly one challenge.
func (s *Session) RecordResponse(i int, c *big.Int) (*big.Int, error) {
	if c == nil || c.Sign() < 0 {
		return nil, fmt.Errorf("%w: challenge must be non-negative", group.ErrInvalidArguments)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Finalized {
		return nil, ErrFinalized
	}
	r, err := s.round(i)
	if err != nil {
		return nil, err
	}
	if r.Answered() {
		return nil, fmt.Errorf("%w: round %d", ErrResponseRecorded, i)
	}
	defer r.zeroNonce()

	resp, err := zkp.SolveChallenge(s.secret, r.k, c, s.grp.Order())
	if err != nil {
		return nil, fmt.Errorf("record response: %w", err)
	}
	r.C = copyInt(c)
	r.S = resp
	s.log.Debug().Int("round", i).Msg("response recorded")
	return copyInt(resp), nil
}

// VerificationParams returns the complete verification input of an
// answered round, bound to the challenge its response was computed for.
func (s *Session) VerificationParams(i int) (*group.VerificationParams, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.verificationParams(i, nil)
}

func (s *Session) verificationParams(i int, c *big.Int) (*group.VerificationParams, error) {
	r, err := s.round(i)
	if err != nil {
		return nil, err
	}
	if !r.Answered() {
		return nil, fmt.Errorf("%w: round %d", ErrNoResponse, i)
	}
	if c == nil {
		c = r.C
	}
	return &group.VerificationParams{
		Kind: s.grp.Kind(),
		R1:   r.R1,
		R2:   r.R2,
		Y1:   s.y1,
		Y2:   s.y2,
		G:    s.grp.Generator(),
		H:    s.grp.SecondGenerator(),
		C:    copyInt(c),
		S:    copyInt(r.S),
		P:    s.grp.Prime(),
	}, nil
}

// VerifyRound checks round i with the challenge recorded for it.
func (s *Session) VerifyRound(i int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	params, err := s.verificationParams(i, nil)
	if err != nil {
		return false, err
	}
	ok, err := zkp.VerifyIn(s.grp, params)
	if err != nil {
		return false, err
	}
	s.log.Debug().Int("round", i).Bool("valid", ok).Msg("round verified")
	return ok, nil
}

// VerifyRoundWith checks round i against challenge c instead of the
// recorded one. Any c other than the one the response answered fails.
func (s *Session) VerifyRoundWith(i int, c *big.Int) (bool, error) {
	if c == nil || c.Sign() < 0 {
		return false, fmt.Errorf("%w: challenge must be non-negative", group.ErrInvalidArguments)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	params, err := s.verificationParams(i, c)
	if err != nil {
		return false, err
	}
	return zkp.VerifyIn(s.grp, params)
}

// VerifyAll verifies every round concurrently and returns the results in
// round order. Every round must have a recorded response.
func (s *Session) VerifyAll(ctx context.Context) ([]bool, error) {
	s.mu.Lock()
	params := make([]*group.VerificationParams, len(s.rounds))
	for i := range s.rounds {
		p, err := s.verificationParams(i, nil)
		if err != nil {
			s.mu.Unlock()
			return nil, err
		}
		params[i] = p
	}
	s.mu.Unlock()

	results, err := zkp.VerifyBatchIn(ctx, s.grp, params)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Int("rounds", len(results)).Msg("rounds verified")
	return results, nil
}

// Finalize moves the session to Finalized and erases the secret and any
// outstanding nonces. Finalizing twice is a no-op.
func (s *Session) Finalize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Finalized {
		return
	}
	s.state = Finalized
	if s.secret != nil {
		s.secret.SetUint64(0)
		s.secret = nil
	}
	for _, r := range s.rounds {
		r.zeroNonce()
	}
	s.log.Info().Int("rounds", len(s.rounds)).Msg("session finalized")
}
