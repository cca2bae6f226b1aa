package tickets

import (
	"context"
	"errors"
)

var ErrTicketNotFound = errors.New("ticket not found")

// Source looks up the ticket data behind a folio. The booking package
// provides the implementation; the indirection keeps this package free
// of storage concerns.
type Source interface {
	TicketByFolio(ctx context.Context, userID, folio string) (*TicketData, error)
}

type Service interface {
	RenderTicket(ctx context.Context, userID, folio string) ([]byte, string, error)
}

type service struct {
	source Source
}

func NewService(source Source) Service {
	return &service{source: source}
}

func (s *service) RenderTicket(ctx context.Context, userID, folio string) ([]byte, string, error) {
	if !IsValidFolio(folio) {
		return nil, "", ErrTicketNotFound
	}

	data, err := s.source.TicketByFolio(ctx, userID, folio)
	if err != nil {
		return nil, "", err
	}

	return BuildTicketPDF(*data)
}
