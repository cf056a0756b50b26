package cmd

import (
	"freightflow/internal/adapters/out/kafka"
	"freightflow/internal/adapters/out/postgres"
	"freightflow/internal/core/application/usecases/commands"
	"freightflow/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateRequestShipmentCommandHandler() commands.RequestShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateRejectShipmentCommandHandler() commands.RejectShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateOfferShipmentCommandHandler() commands.OfferShipmentCommandHandler {
	var f commands.OfferUoWFactory = FuncOfferUoWFactory(func() commands.OfferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOfferShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOfferCommandHandler() commands.UpdateOfferCommandHandler {
	var f commands.OfferUoWFactory = FuncOfferUoWFactory(func() commands.OfferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOfferCommandHandler(f)
}

func (c *CompositionRoot) CreateRespondToOfferCommandHandler() commands.RespondToOfferCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRespondToOfferCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestModificationCommandHandler() commands.RequestModificationCommandHandler {
	var f commands.ModificationUoWFactory = FuncModificationUoWFactory(func() commands.ModificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestModificationCommandHandler(f)
}

func (c *CompositionRoot) CreateReviewModificationCommandHandler() commands.ReviewModificationCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewModificationCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePaymentCommandHandler() commands.CreatePaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateUploadPaymentProofCommandHandler() commands.UploadPaymentProofCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUploadPaymentProofCommandHandler(f)
}

func (c *CompositionRoot) CreateVerifyPaymentCommandHandler() commands.VerifyPaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyPaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.ProgressUoWFactory = FuncProgressUoWFactory(func() commands.ProgressUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f)
}

func (c *CompositionRoot) CreatePushProgressUpdateCommandHandler() commands.PushProgressUpdateCommandHandler {
	var f commands.ProgressUoWFactory = FuncProgressUoWFactory(func() commands.ProgressUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPushProgressUpdateCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceShipmentCommandHandler() commands.AdvanceShipmentCommandHandler {
	var f commands.ProgressUoWFactory = FuncProgressUoWFactory(func() commands.ProgressUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchNotificationsCommandHandler() commands.DispatchNotificationsCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	notifier := kafka.NewNotifier(c.config.KafkaHost, c.config.KafkaNotificationsTopic)
	return commands.NewDispatchNotificationsCommandHandler(f, notifier)
}

func (c *CompositionRoot) CreateGetShipmentsQueryHandler() queries.GetShipmentsQueryHandler {
	return queries.NewGetShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOffersQueryHandler() queries.GetOffersQueryHandler {
	return queries.NewGetOffersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetModificationsQueryHandler() queries.GetModificationsQueryHandler {
	return queries.NewGetModificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentProgressQueryHandler() queries.GetShipmentProgressQueryHandler {
	return queries.NewGetShipmentProgressQueryHandler(c.gormDB)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncOfferUoWFactory func() commands.OfferUoW

func (f FuncOfferUoWFactory) Create() commands.OfferUoW {
	return f()
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncModificationUoWFactory func() commands.ModificationUoW

func (f FuncModificationUoWFactory) Create() commands.ModificationUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncProgressUoWFactory func() commands.ProgressUoW

func (f FuncProgressUoWFactory) Create() commands.ProgressUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
