package marketplace

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MultigetLimit is the largest id batch the items endpoint accepts.
const MultigetLimit = 20

type pageParams struct {
	Offset int `url:"offset"`
	Limit  int `url:"limit"`
}

func (c *Client) Me(ctx context.Context, accessToken string) (User, error) {
	var u User
	err := c.get(ctx, accessToken, "users_me", "/users/me", nil, &u)
	return u, err
}

// SearchItemIDs returns one page of the seller's listing ids.
func (c *Client) SearchItemIDs(ctx context.Context, accessToken string, sellerID int64, offset, limit int) ([]string, Paging, error) {
	var res itemSearch
	path := fmt.Sprintf("/users/%d/items/search", sellerID)
	err := c.get(ctx, accessToken, "items_search", path, pageParams{Offset: offset, Limit: limit}, &res)
	return res.Results, res.Paging, err
}

// GetItems fetches up to MultigetLimit items in one call. Ids the marketplace
// answers with a non-200 code are skipped.
func (c *Client) GetItems(ctx context.Context, accessToken string, ids []string) ([]Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > MultigetLimit {
		return nil, fmt.Errorf("%w: at most %d ids per multiget, got %d", ErrBadRequest, MultigetLimit, len(ids))
	}

	params := struct {
		IDs string `url:"ids"`
	}{IDs: strings.Join(ids, ",")}

	var entries []multigetEntry
	if err := c.get(ctx, accessToken, "items_multiget", "/items", params, &entries); err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		if e.Code == 200 {
			items = append(items, e.Body)
		}
	}
	return items, nil
}

func (c *Client) GetItem(ctx context.Context, accessToken, itemID string) (Item, error) {
	var it Item
	err := c.get(ctx, accessToken, "item", "/items/"+escape(itemID), nil, &it)
	return it, err
}

type orderSearchParams struct {
	Seller   int64  `url:"seller"`
	DateFrom string `url:"order.date_created.from,omitempty"`
	Sort     string `url:"sort"`
	Offset   int    `url:"offset"`
	Limit    int    `url:"limit"`
}

// SearchOrders pages through the seller's orders created since `since`, newest first.
func (c *Client) SearchOrders(ctx context.Context, accessToken string, sellerID int64, since time.Time, offset, limit int) ([]Order, Paging, error) {
	params := orderSearchParams{Seller: sellerID, Sort: "date_desc", Offset: offset, Limit: limit}
	if !since.IsZero() {
		params.DateFrom = since.UTC().Format("2006-01-02T15:04:05.000Z")
	}

	var res orderSearch
	err := c.get(ctx, accessToken, "orders_search", "/orders/search", params, &res)
	return res.Results, res.Paging, err
}

func (c *Client) GetOrder(ctx context.Context, accessToken string, orderID int64) (Order, error) {
	var o Order
	err := c.get(ctx, accessToken, "order", "/orders/"+strconv.FormatInt(orderID, 10), nil, &o)
	return o, err
}

func (c *Client) GetShipment(ctx context.Context, accessToken string, shipmentID int64) (Shipment, error) {
	var s Shipment
	err := c.get(ctx, accessToken, "shipment", "/shipments/"+strconv.FormatInt(shipmentID, 10), nil, &s)
	return s, err
}

// GetShipmentSLA returns the dispatch deadline. Shipments without an SLA answer 404,
// which callers treat as "no deadline".
func (c *Client) GetShipmentSLA(ctx context.Context, accessToken string, shipmentID int64) (SLA, error) {
	var sla SLA
	err := c.get(ctx, accessToken, "shipment_sla", fmt.Sprintf("/shipments/%d/sla", shipmentID), nil, &sla)
	return sla, err
}

type questionSearchParams struct {
	SellerID   int64  `url:"seller_id"`
	APIVersion int    `url:"api_version"`
	Status     string `url:"status,omitempty"`
	Offset     int    `url:"offset"`
	Limit      int    `url:"limit"`
}

func (c *Client) SearchQuestions(ctx context.Context, accessToken string, sellerID int64, offset, limit int) ([]Question, int, error) {
	params := questionSearchParams{SellerID: sellerID, APIVersion: 4, Offset: offset, Limit: limit}

	var res questionSearch
	err := c.get(ctx, accessToken, "questions_search", "/questions/search", params, &res)
	return res.Questions, res.Total, err
}

func (c *Client) GetQuestion(ctx context.Context, accessToken string, questionID int64) (Question, error) {
	var q Question
	params := struct {
		APIVersion int `url:"api_version"`
	}{APIVersion: 4}
	err := c.get(ctx, accessToken, "question", "/questions/"+strconv.FormatInt(questionID, 10), params, &q)
	return q, err
}

type billingParams struct {
	Group        string `url:"group,omitempty"`
	DocumentType string `url:"document_type"`
	Offset       int    `url:"offset"`
	Limit        int    `url:"limit"`
}

func (c *Client) BillingPeriods(ctx context.Context, accessToken string, offset, limit int) ([]BillingPeriod, int, error) {
	params := billingParams{Group: "ML", DocumentType: "BILL", Offset: offset, Limit: limit}

	var res billingPeriodSearch
	err := c.get(ctx, accessToken, "billing_periods", "/billing/integration/monthly/periods", params, &res)
	return res.Results, res.Total, err
}

func (c *Client) BillingDetails(ctx context.Context, accessToken, periodKey string, offset, limit int) ([]BillingDetail, int, error) {
	params := billingParams{DocumentType: "BILL", Offset: offset, Limit: limit}
	path := "/billing/integration/periods/key/" + escape(periodKey) + "/group/ML/details"

	var res billingDetailSearch
	err := c.get(ctx, accessToken, "billing_details", path, params, &res)
	return res.Results, res.Total, err
}
