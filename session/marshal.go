package session

import (
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/f3rmion/cpzkp/group"
	"github.com/f3rmion/cpzkp/modp"
	"github.com/f3rmion/cpzkp/zkp"
)

type sessionMarshal struct {
	ID     []byte
	State  State
	Kind   group.Kind
	P, Q   []byte
	G, H   []byte
	Y1, Y2 []byte
	Rounds []roundMarshal
}

type roundMarshal struct {
	R1, R2   []byte
	Answered bool
	C, S     []byte
}

// MarshalBinary encodes a finalized session: its identifier, state, group
// parameters, public values and every round's (r1, r2, c, s). The secret
// and nonces are never part of the encoding. An unfinalized session fails
// with [ErrNotFinalized].
func (s *Session) MarshalBinary() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Finalized {
		return nil, ErrNotFinalized
	}
	id, err := s.id.MarshalBinary()
	if err != nil {
		return nil, err
	}
	rs := make([]roundMarshal, 0, len(s.rounds))
	for _, r := range s.rounds {
		rm := roundMarshal{
			R1: r.R1.Bytes(),
			R2: r.R2.Bytes(),
		}
		if r.Answered() {
			rm.Answered = true
			rm.C = r.C.Bytes()
			rm.S = r.S.Bytes()
		}
		rs = append(rs, rm)
	}
	return cbor.Marshal(&sessionMarshal{
		ID:     id,
		State:  s.state,
		Kind:   s.grp.Kind(),
		P:      s.grp.Prime().Bytes(),
		Q:      s.grp.Order().Bytes(),
		G:      s.grp.Generator().Bytes(),
		H:      s.grp.SecondGenerator().Bytes(),
		Y1:     s.y1.Bytes(),
		Y2:     s.y2.Bytes(),
		Rounds: rs,
	})
}

// restoreGroup rebuilds the group described by a stored session. Curve
// kinds have fixed parameters and must match them exactly; Scalar groups
// may carry custom parameters, which are validated by [modp.New].
func restoreGroup(sm *sessionMarshal) (group.Group, error) {
	g, err := group.Decode(sm.G, sm.Kind)
	if err != nil {
		return nil, err
	}
	h, err := group.Decode(sm.H, sm.Kind)
	if err != nil {
		return nil, err
	}
	stored := &group.Params{
		Kind: sm.Kind,
		P:    new(big.Int).SetBytes(sm.P),
		Q:    new(big.Int).SetBytes(sm.Q),
		G:    g,
		H:    h,
	}
	grp, err := zkp.Lookup(sm.Kind)
	if err != nil {
		return nil, err
	}
	if group.ParamsOf(grp).Equal(stored) {
		return grp, nil
	}
	if sm.Kind != group.Scalar {
		return nil, fmt.Errorf("%w: %s parameters do not match the deployment", group.ErrInvalidSerialization, sm.Kind)
	}
	custom, err := modp.New(stored.P, stored.Q, g.Value(), h.Value())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", group.ErrInvalidSerialization, err)
	}
	return custom, nil
}

// Restore decodes a session produced by [Session.MarshalBinary]. The
// restored session is Finalized and holds no secret: it can report and
// verify its rounds but not start new ones. Only WithRandom and WithLogger
// apply; the group comes from the encoding.
func Restore(data []byte, opts ...Option) (*Session, error) {
	var sm sessionMarshal
	if err := cbor.Unmarshal(data, &sm); err != nil {
		return nil, fmt.Errorf("%w: session: %v", group.ErrInvalidSerialization, err)
	}
	if sm.State != Finalized {
		return nil, ErrNotFinalized
	}
	id, err := uuid.FromBytes(sm.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: session id: %v", group.ErrInvalidSerialization, err)
	}
	grp, err := restoreGroup(&sm)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	y1, err := group.Decode(sm.Y1, sm.Kind)
	if err != nil {
		return nil, fmt.Errorf("restore session: y1: %w", err)
	}
	y2, err := group.Decode(sm.Y2, sm.Kind)
	if err != nil {
		return nil, fmt.Errorf("restore session: y2: %w", err)
	}
	rounds := make([]*round, 0, len(sm.Rounds))
	for i, rm := range sm.Rounds {
		r1, err := group.Decode(rm.R1, sm.Kind)
		if err != nil {
			return nil, fmt.Errorf("restore session: round %d: r1: %w", i, err)
		}
		r2, err := group.Decode(rm.R2, sm.Kind)
		if err != nil {
			return nil, fmt.Errorf("restore session: round %d: r2: %w", i, err)
		}
		r := &round{Round: Round{Index: i, R1: r1, R2: r2}}
		if rm.Answered {
			r.C = new(big.Int).SetBytes(rm.C)
			r.S = new(big.Int).SetBytes(rm.S)
		}
		rounds = append(rounds, r)
	}

	cfg := newConfig(opts)
	cfg.grp = grp
	s := &Session{
		id:     id,
		grp:    grp,
		state:  Finalized,
		y1:     y1,
		y2:     y2,
		rounds: rounds,
		cfg:    cfg,
	}
	s.initLogger()
	s.log.Info().Int("rounds", len(rounds)).Msg("session restored")
	return s, nil
}
