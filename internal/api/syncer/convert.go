package syncer

import (
	"sellerops/internal/api/domain/billing"
	"sellerops/internal/api/domain/item"
	"sellerops/internal/api/domain/order"
	"sellerops/internal/api/domain/question"
	"sellerops/internal/api/domain/shipment"
	"sellerops/internal/api/external/marketplace"
	"sellerops/pkg/pointers"

	"github.com/google/uuid"
)

func toItem(accountID uuid.UUID, in marketplace.Item) item.Item {
	return item.Item{
		AccountID:         accountID,
		ID:                in.ID,
		Title:             in.Title,
		Price:             in.Price,
		CurrencyID:        in.CurrencyID,
		AvailableQuantity: in.AvailableQuantity,
		SoldQuantity:      in.SoldQuantity,
		Status:            in.Status,
		Permalink:         in.Permalink,
		Thumbnail:         in.Thumbnail,
		ListingType:       in.ListingTypeID,
		LastUpdated:       in.LastUpdated.Ptr(),
	}
}

func toOrder(accountID uuid.UUID, in marketplace.Order) order.Order {
	o := order.Order{
		AccountID:     accountID,
		ID:            in.ID,
		Status:        in.Status,
		TotalAmount:   in.TotalAmount,
		PaidAmount:    in.PaidAmount,
		CurrencyID:    in.CurrencyID,
		BuyerID:       in.Buyer.ID,
		BuyerNickname: in.Buyer.Nickname,
		DateCreated:   in.DateCreated.Time,
		DateClosed:    in.DateClosed.Ptr(),
		LastUpdated:   in.LastUpdated.Ptr(),
	}
	if in.Shipping.ID != 0 {
		o.ShipmentID = pointers.Ptr(in.Shipping.ID)
	}
	return o
}

// toShipment merges the shipment with its SLA. sla may be nil when the
// marketplace has no dispatch commitment for the shipment.
func toShipment(accountID uuid.UUID, in marketplace.Shipment, sla *marketplace.SLA) shipment.Shipment {
	s := shipment.Shipment{
		AccountID:     accountID,
		ID:            in.ID,
		OrderID:       in.OrderID,
		Status:        in.Status,
		Substatus:     in.Substatus,
		LogisticType:  in.Logistic.Type,
		HandlingLimit: in.LeadTime.EstimatedHandlingLimit.Date.Ptr(),
		DeliveryLimit: in.LeadTime.EstimatedDeliveryLimit.Date.Ptr(),
		DateCreated:   in.DateCreated.Ptr(),
		LastUpdated:   in.LastUpdated.Ptr(),
	}
	if sla != nil {
		s.ExpectedDate = sla.ExpectedDate.Ptr()
	}
	return s
}

func toQuestion(accountID uuid.UUID, in marketplace.Question) question.Question {
	q := question.Question{
		AccountID:   accountID,
		ID:          in.ID,
		ItemID:      in.ItemID,
		Text:        in.Text,
		Status:      in.Status,
		FromID:      in.From.ID,
		DateCreated: in.DateCreated.Time,
	}
	if in.Answer != nil {
		q.AnswerText = pointers.Ptr(in.Answer.Text)
		q.AnswerDate = in.Answer.DateCreated.Ptr()
	}
	return q
}

func toPeriod(accountID uuid.UUID, in marketplace.BillingPeriod) billing.Period {
	return billing.Period{
		AccountID:      accountID,
		Key:            in.Key,
		DateFrom:       in.Period.DateFrom.Time,
		DateTo:         in.Period.DateTo.Time,
		ExpirationDate: in.ExpirationDate.Ptr(),
		Amount:         in.Amount,
		UnpaidAmount:   in.UnpaidAmount,
		Status:         in.PeriodStatus,
	}
}

// toStatement splits billing details into taxes and expenses.
func toStatement(period billing.Period, details []marketplace.BillingDetail) billing.Statement {
	st := billing.Statement{Period: period}
	for _, d := range details {
		ci := d.ChargeInfo
		if d.IsTax() {
			st.Taxes = append(st.Taxes, billing.Tax{
				AccountID:   period.AccountID,
				ID:          ci.DetailID,
				PeriodKey:   period.Key,
				Type:        ci.DetailSubType,
				Description: ci.TransactionDetail,
				Amount:      ci.DetailAmount,
				Date:        ci.CreationDateTime.Time,
			})
			continue
		}

		e := billing.Expense{
			AccountID:   period.AccountID,
			ID:          ci.DetailID,
			PeriodKey:   period.Key,
			Type:        ci.DetailSubType,
			Description: ci.TransactionDetail,
			Amount:      ci.DetailAmount,
			Date:        ci.CreationDateTime.Time,
		}
		if len(d.SalesInfo) > 0 && d.SalesInfo[0].OrderID != 0 {
			e.OrderID = pointers.Ptr(d.SalesInfo[0].OrderID)
		}
		st.Expenses = append(st.Expenses, e)
	}
	return st
}
