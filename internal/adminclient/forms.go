package adminclient

import (
	"context"

	"github.com/georgemunganga/storefront-admin/internal/modules/landing"
	"github.com/georgemunganga/storefront-admin/internal/modules/order"
	"github.com/georgemunganga/storefront-admin/internal/modules/store"
	"github.com/georgemunganga/storefront-admin/internal/modules/theme"
)

// Notification texts shown after a form action.
const (
	MsgFailure        = "Something went wrong."
	MsgStoreUpdated   = "Store updated."
	MsgStoreDeleted   = "Store deleted."
	MsgStoreInUse     = "Make sure you remove all products and categories first."
	MsgColorCreated   = "Color created."
	MsgColorUpdated   = "Color updated."
	MsgThemeDeleted   = "Theme deleted."
	MsgThemeInUse     = "Make sure you removed all products using this color first."
	MsgLandingUpdated = "Landing billboard updated."
	MsgOrdersDeleted  = "Orders deleted."
)

// Notice is the transient notification a form action produces. Err holds
// the cause of a failed action and is not shown to the user.
type Notice struct {
	OK      bool
	Message string
	Err     error
}

func success(msg string) Notice { return Notice{OK: true, Message: msg} }

func failure(msg string, err error) Notice { return Notice{Message: msg, Err: err} }

// StoreForm is the store settings form.
type StoreForm struct {
	client  *Client
	storeID string
	Initial *store.Store
}

// LoadStoreForm fetches the store the form is seeded with.
func LoadStoreForm(ctx context.Context, c *Client, storeID string) (*StoreForm, error) {
	st, err := c.GetStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return &StoreForm{client: c, storeID: storeID, Initial: st}, nil
}

// Submit renames the store. Invalid values are returned as an error and nothing is sent.
func (f *StoreForm) Submit(ctx context.Context, values store.StoreRequest) (Notice, error) {
	if err := values.Validate(); err != nil {
		return Notice{}, err
	}
	if _, err := f.client.UpdateStore(ctx, f.storeID, values); err != nil {
		return failure(MsgFailure, err), nil
	}
	if err := f.refresh(ctx); err != nil {
		return failure(MsgFailure, err), nil
	}
	return success(MsgStoreUpdated), nil
}

func (f *StoreForm) Delete(ctx context.Context) Notice {
	if err := f.client.DeleteStore(ctx, f.storeID); err != nil {
		return failure(MsgStoreInUse, err)
	}
	f.Initial = nil
	return success(MsgStoreDeleted)
}

func (f *StoreForm) refresh(ctx context.Context) error {
	st, err := f.client.GetStore(ctx, f.storeID)
	if err != nil {
		return err
	}
	f.Initial = st
	return nil
}

// ThemeForm creates the store's theme when it has none and updates it otherwise.
type ThemeForm struct {
	client  *Client
	storeID string
	Initial *theme.ThemeColors
}

// LoadThemeForm fetches the current theme, if any, to seed the form.
func LoadThemeForm(ctx context.Context, c *Client, storeID string) (*ThemeForm, error) {
	t, err := c.GetTheme(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return &ThemeForm{client: c, storeID: storeID, Initial: t}, nil
}

// Defaults returns the values the form shows: the seeded theme or all white.
func (f *ThemeForm) Defaults() theme.ColorsRequest {
	if f.Initial != nil {
		return f.Initial.Colors()
	}
	return theme.DefaultColors()
}

// Submit sends PATCH when the form was seeded with a theme and POST otherwise.
// Colors without a leading "#" are prefixed before validation.
func (f *ThemeForm) Submit(ctx context.Context, values theme.ColorsRequest) (Notice, error) {
	if err := values.Validate(); err != nil {
		return Notice{}, err
	}
	msg := MsgColorCreated
	var err error
	if f.Initial != nil {
		msg = MsgColorUpdated
		_, err = f.client.UpdateTheme(ctx, f.storeID, values)
	} else {
		_, err = f.client.CreateTheme(ctx, f.storeID, values)
	}
	if err != nil {
		return failure(MsgFailure, err), nil
	}
	if err := f.refresh(ctx); err != nil {
		return failure(MsgFailure, err), nil
	}
	return success(msg), nil
}

func (f *ThemeForm) Delete(ctx context.Context) Notice {
	if err := f.client.DeleteTheme(ctx, f.storeID); err != nil {
		return failure(MsgThemeInUse, err)
	}
	if err := f.refresh(ctx); err != nil {
		return failure(MsgFailure, err)
	}
	return success(MsgThemeDeleted)
}

func (f *ThemeForm) refresh(ctx context.Context) error {
	t, err := f.client.GetTheme(ctx, f.storeID)
	if err != nil {
		return err
	}
	f.Initial = t
	return nil
}

// LandingForm edits the landing titles. The landing always exists, so it only updates.
type LandingForm struct {
	client  *Client
	storeID string
	Initial *landing.Landing
}

func LoadLandingForm(ctx context.Context, c *Client, storeID string) (*LandingForm, error) {
	l, err := c.GetLanding(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return &LandingForm{client: c, storeID: storeID, Initial: l}, nil
}

func (f *LandingForm) Submit(ctx context.Context, values landing.UpdateRequest) (Notice, error) {
	if err := values.Validate(); err != nil {
		return Notice{}, err
	}
	if _, err := f.client.UpdateLanding(ctx, f.storeID, values); err != nil {
		return failure(MsgFailure, err), nil
	}
	l, err := f.client.GetLanding(ctx, f.storeID)
	if err != nil {
		return failure(MsgFailure, err), nil
	}
	f.Initial = l
	return success(MsgLandingUpdated), nil
}

// OrdersView lists a store's orders and clears them.
type OrdersView struct {
	client  *Client
	storeID string
	Orders  []*order.Order
}

func LoadOrdersView(ctx context.Context, c *Client, storeID string) (*OrdersView, error) {
	orders, err := c.ListOrders(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return &OrdersView{client: c, storeID: storeID, Orders: orders}, nil
}

func (v *OrdersView) DeleteAll(ctx context.Context) Notice {
	if _, err := v.client.DeleteOrders(ctx, v.storeID); err != nil {
		return failure(MsgFailure, err)
	}
	orders, err := v.client.ListOrders(ctx, v.storeID)
	if err != nil {
		return failure(MsgFailure, err)
	}
	v.Orders = orders
	return success(MsgOrdersDeleted)
}
