package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/photocatalog/internal/domain/errors"
	"github.com/polkiloo/photocatalog/internal/domain/model"
	"github.com/polkiloo/photocatalog/internal/domain/repository"
)

// IDGenerator issues order identifiers.
type IDGenerator interface {
	NewID() uuid.UUID
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// CheckoutRecorder observes checkout outcomes.
type CheckoutRecorder interface {
	OrderPlaced(size model.PrintSize)
	OrderRejected()
}

type discardRecorder struct{}

func (discardRecorder) OrderPlaced(model.PrintSize) {}
func (discardRecorder) OrderRejected()              {}

type uuidGenerator struct{}

func (uuidGenerator) NewID() uuid.UUID { return uuid.New() }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// CheckoutUseCase validates and records print orders.
type CheckoutUseCase struct {
	catalog  repository.CatalogRepository
	prints   repository.PrintOptionRepository
	orders   repository.OrderRepository
	recorder CheckoutRecorder
	ids      IDGenerator
	clock    Clock
}

// NewCheckoutUseCase constructs CheckoutUseCase. A nil recorder discards
// checkout outcomes.
func NewCheckoutUseCase(
	catalog repository.CatalogRepository,
	prints repository.PrintOptionRepository,
	orders repository.OrderRepository,
	recorder CheckoutRecorder,
) *CheckoutUseCase {
	if recorder == nil {
		recorder = discardRecorder{}
	}
	return &CheckoutUseCase{
		catalog:  catalog,
		prints:   prints,
		orders:   orders,
		recorder: recorder,
		ids:      uuidGenerator{},
		clock:    systemClock{},
	}
}

// ListPrintOptions returns the print price list.
func (u *CheckoutUseCase) ListPrintOptions(ctx context.Context) ([]model.PrintOption, error) {
	return u.prints.List(ctx)
}

// RemovePrintOption deletes a price list entry unless an order references it.
func (u *CheckoutUseCase) RemovePrintOption(ctx context.Context, id int64) error {
	return u.prints.Delete(ctx, id)
}

// ProcessOrder validates the form, stores exactly one order on success and
// returns its summary. Validation failures are reported as
// *errors.ValidationError and leave the store untouched.
func (u *CheckoutUseCase) ProcessOrder(ctx context.Context, form model.OrderForm) (*model.OrderDetails, error) {
	order, verr := ValidateOrderForm(form)
	if verr != nil {
		u.recorder.OrderRejected()
		return nil, verr
	}

	printOpt, photo, err := u.resolveReferences(ctx, order)
	if err != nil {
		var refErr *domainErrors.ValidationError
		if errors.As(err, &refErr) {
			u.recorder.OrderRejected()
		}
		return nil, err
	}

	order.ID = u.ids.NewID()
	order.TimePlaced = u.clock.Now().UTC()
	order.Status = model.OrderStatusCreated

	if err := u.orders.Create(ctx, &order); err != nil {
		if errors.Is(err, domainErrors.ErrInvalidReference) {
			u.recorder.OrderRejected()
			return nil, domainErrors.NewValidationError(domainErrors.NonFieldKey, "Selected print or photo is no longer available.")
		}
		return nil, err
	}

	details, err := buildOrderDetails(order, printOpt, photo)
	if err != nil {
		return nil, err
	}
	u.recorder.OrderPlaced(printOpt.Size)
	return details, nil
}

func (u *CheckoutUseCase) resolveReferences(ctx context.Context, order model.Order) (*model.PrintOption, *model.CatalogItem, error) {
	verr := &domainErrors.ValidationError{}

	printOpt, err := u.prints.GetByID(ctx, order.PrintID)
	if err != nil {
		if !errors.Is(err, domainErrors.ErrNotFound) {
			return nil, nil, err
		}
		verr.Add("print_id", msgInvalidChoice)
	}

	photo, err := u.catalog.GetByID(ctx, order.PhotoID)
	if err != nil {
		if !errors.Is(err, domainErrors.ErrNotFound) {
			return nil, nil, err
		}
		verr.Add("photo_id", msgInvalidChoice)
	}

	if !verr.Empty() {
		return nil, nil, verr
	}
	return printOpt, photo, nil
}

func buildOrderDetails(order model.Order, printOpt *model.PrintOption, photo *model.CatalogItem) (*model.OrderDetails, error) {
	address, err := FormatAddress(order.AddressLineOne, order.AddressLineTwo)
	if err != nil {
		return nil, domainErrors.NewValidationError("address_line_one", err.Error())
	}

	return &model.OrderDetails{
		ID:       order.ID,
		Status:   order.Status,
		PlacedOn: order.TimePlaced.Format(model.PlacedOnLayout),
		ItemsOrdered: []model.OrderedItem{
			{Title: photo.Title, Size: printOpt.Size},
		},
		ShippingSummary: model.ShippingSummary{
			ShipTo:        order.FirstName + " " + order.LastName,
			Email:         order.Email,
			Phone:         order.PrimaryPhone,
			Address:       address,
			City:          order.City,
			StateOrRegion: order.StateOrRegion,
			PostalCode:    order.PostalCode,
			Country:       order.Country,
		},
		BillingSummary: model.BillingSummary{
			OrderTotal:    printOpt.TotalCost().InexactFloat64(),
			ShippingTotal: printOpt.ShippingCost.InexactFloat64(),
			ItemTotal:     printOpt.PrintCost.InexactFloat64(),
		},
	}, nil
}
