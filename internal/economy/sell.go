package economy

import (
	"context"
	"fmt"

	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/event"
	"github.com/osse101/CaseForge_Go/internal/logger"
	"github.com/osse101/CaseForge_Go/internal/pricing"
	"github.com/osse101/CaseForge_Go/internal/session"
)

// Sell liquidates an owned instance at its liquidation value.
func (s *service) Sell(ctx context.Context, st *session.State, instanceID string) (*SaleResult, error) {
	inst, ok := st.Holdings.Instance(instanceID)
	if !ok {
		return nil, fmt.Errorf(ErrMsgNotOwnedFmt, domain.ErrInsufficientStock, instanceID)
	}
	tmpl, ok := st.LookupTemplate(s.catalog, inst.TemplateID)
	if !ok {
		return nil, fmt.Errorf(ErrMsgUnknownTemplateFmt, domain.ErrItemNotFound, inst.TemplateID, instanceID)
	}

	adjusted := pricing.AdjustedPrice(tmpl.BasePrice, inst.Quality)
	credited := pricing.LiquidationValue(adjusted)

	if _, err := st.Holdings.RemoveInstance(instanceID); err != nil {
		return nil, err
	}
	if credited > 0 {
		if err := st.Wallet.Credit(credited); err != nil {
			_ = st.Holdings.AddInstance(inst)
			return nil, err
		}
	}

	res := &SaleResult{
		InstanceID:    instanceID,
		TemplateID:    inst.TemplateID,
		Quality:       inst.Quality,
		AdjustedPrice: adjusted,
		Credited:      credited,
		Balance:       st.Wallet.Balance(),
	}

	logger.FromContext(ctx).Info(LogMsgSold,
		LogFieldInstance, instanceID,
		LogFieldTemplate, inst.TemplateID,
		LogFieldAmount, credited)
	event.Publish(ctx, s.bus, event.NewItemSoldEvent(st.PlayerID, inst.TemplateID, credited))
	return res, nil
}

// Deposit tops up the wallet and returns the new balance.
func (s *service) Deposit(ctx context.Context, st *session.State, amount int) (int, error) {
	if err := st.Wallet.Credit(amount); err != nil {
		return 0, fmt.Errorf(ErrMsgDepositFmt, amount, err)
	}
	balance := st.Wallet.Balance()

	logger.FromContext(ctx).Info(LogMsgDeposited, LogFieldAmount, amount, LogFieldBalance, balance)
	event.Publish(ctx, s.bus, event.NewFundsDepositedEvent(st.PlayerID, amount))
	return balance, nil
}
