package main

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
)

// demoNamespace keeps demo ids stable so seeding twice is harmless.
var demoNamespace = uuid.MustParse("6f1d8a52-3c0e-4b8e-9a57-1d2f0c7e4b11")

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "insert reference or sample data",
		Subcommands: []*cli.Command{
			{
				Name:  "roles",
				Usage: "create or reset the default roles",
				Action: func(c *cli.Context) error {
					e, err := start(c, true)
					if err != nil {
						return err
					}
					defer e.stop()

					return seedRoles(c.Context, e.stores.Roles, e.logger)
				},
			},
			{
				Name:  "demo",
				Usage: "insert demo users and orders for local testing",
				Action: func(c *cli.Context) error {
					e, err := start(c, true)
					if err != nil {
						return err
					}
					defer e.stop()

					if err := seedRoles(c.Context, e.stores.Roles, e.logger); err != nil {
						return err
					}

					return seedDemo(c.Context, e.stores, e.logger, time.Now().UTC())
				},
			},
		},
	}
}

func seedRoles(ctx context.Context, roles repository.RoleRepository, logger *slog.Logger) error {
	for _, role := range entity.DefaultRoles() {
		if err := roles.UpsertRole(ctx, role); err != nil {
			return errors.Wrapf(err, "upsert role %s", role.Name)
		}
		logger.Info("Role seeded", slog.String("role", role.Name), slog.Int("permissions", len(role.Permissions.Granted())))
	}

	return nil
}

func demoUsers(now time.Time) []*entity.User {
	user := func(name, email, role string) *entity.User {
		return &entity.User{
			ID:         uuid.NewSHA1(demoNamespace, []byte(email)),
			Name:       name,
			Email:      email,
			Role:       role,
			IsVerified: true,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
	}

	customer := user("Ada Customer", "ada@example.com", entity.RoleNameCustomer)
	customer.Phone = "555-0100"
	customer.Addresses = []entity.Address{{
		Label: "Home", FullName: "Ada Customer", Phone: "555-0100",
		Line1: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "US", IsDefault: true,
	}}

	return []*entity.User{
		user("Alice Admin", "admin@example.com", entity.RoleNameAdmin),
		user("Max Manager", "manager@example.com", entity.RoleNameManager),
		user("Sam Support", "support@example.com", entity.RoleNameSupport),
		customer,
	}
}

// demoOrders gives the customer one order per status, plus a delivered order still inside the return window.
func demoOrders(customer *entity.User, now time.Time) []*entity.Order {
	address, _ := customer.DefaultAddress()
	items := []entity.OrderItem{
		{ProductID: uuid.NewSHA1(demoNamespace, []byte("tee")), Name: "Cotton tee", Price: decimal.RequireFromString("19.90"), Quantity: 2, Size: "M", Color: "white"},
		{ProductID: uuid.NewSHA1(demoNamespace, []byte("cap")), Name: "Canvas cap", Price: decimal.RequireFromString("12.50"), Quantity: 1, Color: "navy"},
	}

	order := func(key string, status entity.OrderStatus, age time.Duration) *entity.Order {
		created := now.Add(-age)
		o := &entity.Order{
			ID:              uuid.NewSHA1(demoNamespace, []byte("order-"+key)),
			OrderNumber:     entity.NewOrderNumber(created),
			UserID:          customer.ID,
			Items:           items,
			ShippingCost:    decimal.RequireFromString("4.99"),
			Discount:        decimal.Zero,
			PaymentMethod:   "cod",
			PaymentStatus:   entity.PaymentStatusPending,
			ShippingAddress: address.ToShippingAddress(),
			Status:          status,
			Version:         1,
			CreatedAt:       created,
			UpdatedAt:       created,
		}
		o.RecalculateTotals()

		return o
	}

	orders := make([]*entity.Order, 0, len(entity.OrderStatuses())+1)
	for i, status := range entity.OrderStatuses() {
		o := order(string(status), status, time.Duration(72-i)*time.Hour)
		switch status {
		case entity.OrderStatusDelivered:
			deliveredAt := now.Add(-48 * time.Hour)
			o.DeliveredAt = &deliveredAt
			o.UpdatedAt = deliveredAt
			o.PaymentStatus = entity.PaymentStatusPaid
		case entity.OrderStatusCancelled:
			cancelledAt := o.CreatedAt.Add(time.Hour)
			o.CancelledAt = &cancelledAt
			o.CancelledBy = entity.ActorKindCustomer
			o.CancellationReason = "ordered by mistake"
			o.UpdatedAt = cancelledAt
		case entity.OrderStatusShipped:
			o.TrackingNumber = "1Z999AA10123456784"
			o.Carrier = "UPS"
		}
		orders = append(orders, o)
	}

	recent := order("delivered-recent", entity.OrderStatusDelivered, 30*time.Hour)
	deliveredAt := now.Add(-2 * time.Hour)
	recent.DeliveredAt = &deliveredAt
	recent.UpdatedAt = deliveredAt
	recent.PaymentStatus = entity.PaymentStatusPaid

	return append(orders, recent)
}

func seedDemo(ctx context.Context, s stores, logger *slog.Logger, now time.Time) error {
	users := demoUsers(now)
	for _, user := range users {
		if err := s.Users.UpsertUser(ctx, user); err != nil {
			return errors.Wrapf(err, "upsert user %s", user.Email)
		}
		logger.Info("User seeded", slog.String("email", user.Email), slog.String("id", user.ID.String()), slog.String("role", user.Role))
	}

	customer := users[len(users)-1]
	for _, order := range demoOrders(customer, now) {
		_, err := s.Orders.FindOrderByID(ctx, order.ID)
		if err == nil {
			logger.Info("Order already seeded", slog.String("id", order.ID.String()))

			continue
		}
		if !errors.Is(err, repository.ErrOrderNotFound) {
			return errors.Wrap(err, "lookup demo order")
		}

		if err := s.Orders.CreateOrder(ctx, order); err != nil {
			return errors.Wrapf(err, "create order %s", order.OrderNumber)
		}
		logger.Info("Order seeded",
			slog.String("order_number", order.OrderNumber),
			slog.String("status", order.Status.String()),
		)
	}

	return nil
}
