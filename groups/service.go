// SPDX-License-Identifier: MIT

package groups

import (
	"context"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/drawsim/config"
	"github.com/katalvlaran/drawsim/core"
	"github.com/katalvlaran/drawsim/predicate"
)

// Request asks which groups a drawn team may still go into.
type Request struct {
	MessageID   uuid.UUID
	Competition config.Competition
	Stage       config.Stage
	Season      int
	Draw        Draw
	Selected    core.Team
}

// NewRequest returns a Request with a fresh message id.
func NewRequest(c config.Competition, s config.Stage, season int, d Draw, selected core.Team) Request {
	return Request{
		MessageID:   uuid.New(),
		Competition: c,
		Stage:       s,
		Season:      season,
		Draw:        d,
		Selected:    selected,
	}
}

// Response answers the Request carrying the same MessageID.
type Response struct {
	MessageID uuid.UUID
	Groups    []int
	Err       error
}

// Service answers draw-ceremony legality queries with season predicates
// resolved through a shared Registry.
type Service struct {
	registry *predicate.Registry
	log      zerolog.Logger
	opts     []Option
}

// NewService returns a Service. opts apply to every query.
func NewService(registry *predicate.Registry, log zerolog.Logger, opts ...Option) (*Service, error) {
	if registry == nil {
		return nil, eris.Wrap(core.ErrInvalidInput, "registry is nil")
	}

	return &Service{
		registry: registry,
		log:      log.With().Str("component", "groups").Logger(),
		opts:     opts,
	}, nil
}

// PossibleGroups resolves the predicate of (c, s, season) and runs the
// legality search for selected.
func (s *Service) PossibleGroups(ctx context.Context, c config.Competition, st config.Stage, season int, d Draw, selected core.Team) ([]int, error) {
	pred, err := s.registry.Get(c, st, season)
	if err != nil {
		return nil, err
	}
	opts := s.opts
	if t, perr := config.Preset(c, st); perr == nil && t.GroupSize() > 0 {
		opts = append([]Option{WithCapacity(t.GroupSize())}, opts...)
	}

	return PossibleGroups(ctx, d, selected, pred, opts...)
}

// Handle answers a single request.
func (s *Service) Handle(ctx context.Context, req Request) Response {
	groups, err := s.PossibleGroups(ctx, req.Competition, req.Stage, req.Season, req.Draw, req.Selected)
	if err != nil {
		s.log.Warn().Err(err).
			Str("message_id", req.MessageID.String()).
			Str("team", req.Selected.ID).
			Msg("legality query failed")
	}

	return Response{MessageID: req.MessageID, Groups: groups, Err: err}
}

// Serve answers requests from in until in is closed or ctx is done. It does
// not close out.
func (s *Service) Serve(ctx context.Context, in <-chan Request, out chan<- Response) error {
	for {
		select {
		case <-ctx.Done():
			return eris.Wrap(core.ErrCancelled, ctx.Err().Error())
		case req, ok := <-in:
			if !ok {
				return nil
			}
			resp := s.Handle(ctx, req)
			select {
			case out <- resp:
			case <-ctx.Done():
				return eris.Wrap(core.ErrCancelled, ctx.Err().Error())
			}
		}
	}
}
