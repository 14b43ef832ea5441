package economy

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/event"
	"github.com/osse101/CaseForge_Go/internal/logger"
	"github.com/osse101/CaseForge_Go/internal/session"
)

// Buy charges the player for one unit of the listing and delivers it: a case
// is added to holdings, an item arrives as a new instance with a sampled quality.
// Stock check, payment and stock decrement happen together or not at all.
func (s *service) Buy(ctx context.Context, st *session.State, listingID string) (*Purchase, error) {
	log := logger.FromContext(ctx)

	l, ok := s.listings[listingID]
	if !ok {
		return nil, fmt.Errorf(ErrMsgListingNotFoundFmt, domain.ErrListingNotFound, listingID)
	}
	price, err := s.catalog.ListingPrice(l)
	if err != nil {
		return nil, err
	}

	remaining, err := s.reserve(st, l, price)
	if err != nil {
		log.Warn(LogMsgPurchaseFailed, LogFieldListing, listingID, LogFieldPrice, price, LogFieldError, err)
		return nil, err
	}

	p := &Purchase{ListingID: l.ID, Type: l.Type, Price: price, Remaining: remaining}
	if err := s.deliver(st, l, p); err != nil {
		log.Error(LogMsgGrantRollback, LogFieldListing, listingID, LogFieldError, err)
		s.release(st, l, price)
		return nil, err
	}
	p.Balance = st.Wallet.Balance()

	log.Info(LogMsgPurchased, LogFieldListing, l.ID, LogFieldType, l.Type, LogFieldPrice, price, LogFieldBalance, p.Balance)
	event.Publish(ctx, s.bus, event.NewShopPurchasedEvent(st.PlayerID, l.ID, string(l.Type), price))
	return p, nil
}

// reserve takes one unit of stock and the payment under the shop lock.
func (s *service) reserve(st *session.State, l domain.ShopListing, price int) (*int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n, limited := s.stock[l.ID]; limited && n <= 0 {
		return nil, fmt.Errorf(ErrMsgOutOfStockFmt, domain.ErrOutOfStock, l.ID)
	}
	if err := st.Wallet.TryDeduct(price); err != nil {
		return nil, fmt.Errorf(ErrMsgBuyFundsFmt, l.ID, price, err)
	}
	if _, limited := s.stock[l.ID]; limited {
		s.stock[l.ID]--
	}
	return s.remainingLocked(l.ID), nil
}

// release undoes reserve after a failed delivery.
func (s *service) release(st *session.State, l domain.ShopListing, price int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if price > 0 {
		_ = st.Wallet.Credit(price)
	}
	if _, limited := s.stock[l.ID]; limited {
		s.stock[l.ID]++
	}
}

func (s *service) deliver(st *session.State, l domain.ShopListing, p *Purchase) error {
	switch l.Type {
	case domain.ListingTypeCase:
		return st.Holdings.AddCases(l.ID, 1)
	case domain.ListingTypeItem:
		inst := domain.ItemInstance{
			ID:         uuid.NewString(),
			TemplateID: l.ID,
			Quality:    s.sampler.Sample(),
			AcquiredAt: time.Now(),
		}
		if err := st.Holdings.AddInstance(inst); err != nil {
			return err
		}
		p.InstanceID = inst.ID
		p.Quality = inst.Quality
		return nil
	default:
		return fmt.Errorf("%w: listing type %q", domain.ErrInvalidInput, l.Type)
	}
}
