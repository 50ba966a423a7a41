// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. The order aggregate spans two tables: the order
// row itself and its line-item snapshots.
package orderrepo

import (
	"time"

	"faithcafe/internal/core/domain/model/cart"
	"faithcafe/internal/core/domain/model/kernel"
	"faithcafe/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Status timestamps get one nullable column each, mirroring the
// order's lifecycle; the rider snapshot is embedded as two nullable
// columns.
type OrderDTO struct {
	ID              string         `gorm:"type:varchar(32);primaryKey"`
	Customer        string         `gorm:"type:varchar(255);not null;index"`
	Items           []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Subtotal        float64        `gorm:"type:numeric(10,2);not null"`
	ShippingFee     float64        `gorm:"type:numeric(10,2);not null"`
	Total           float64        `gorm:"type:numeric(10,2);not null"`
	Status          string         `gorm:"type:varchar(16);not null;index"`
	OrderTime       time.Time      `gorm:"not null"`
	PlacedTime      *time.Time
	PreparingTime   *time.Time
	ReadyTime       *time.Time
	PickedUpTime    *time.Time
	DeliveredTime   *time.Time
	CancelledTime   *time.Time
	DeliveryAddress string  `gorm:"type:varchar(255)"`
	ContactNumber   string  `gorm:"type:varchar(64)"`
	PaymentMethod   string  `gorm:"type:varchar(16);not null"`
	RiderName       *string `gorm:"type:varchar(255)"`
	RiderContact    *string `gorm:"type:varchar(64)"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a line-item snapshot within an order. Snapshots
// are immutable once the order is placed.
type OrderItemDTO struct {
	ID       uint    `gorm:"primaryKey;autoIncrement"`
	OrderID  string  `gorm:"type:varchar(32);not null;index"`
	Name     string  `gorm:"type:varchar(255);not null"`
	Price    float64 `gorm:"type:numeric(10,2);not null"`
	Quantity int     `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database
// representation, including line items and status timestamps.
func fromDomain(aggregate *order.Order) OrderDTO {
	id := aggregate.ID().String()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, line := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:  id,
			Name:     line.Name(),
			Price:    line.Price().Amount(),
			Quantity: line.Quantity(),
		})
	}

	dto := OrderDTO{
		ID:              id,
		Customer:        aggregate.Customer(),
		Items:           items,
		Subtotal:        aggregate.Subtotal().Amount(),
		ShippingFee:     aggregate.ShippingFee().Amount(),
		Total:           aggregate.Total().Amount(),
		Status:          aggregate.Status().String(),
		OrderTime:       aggregate.OrderTime(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		ContactNumber:   aggregate.ContactNumber(),
		PaymentMethod:   aggregate.PaymentMethod().String(),
	}

	stamp := func(s order.Status, column **time.Time) {
		if ts, ok := aggregate.StatusTime(s); ok {
			value := ts
			*column = &value
		}
	}
	stamp(order.StatusPlaced, &dto.PlacedTime)
	stamp(order.StatusPreparing, &dto.PreparingTime)
	stamp(order.StatusReady, &dto.ReadyTime)
	stamp(order.StatusPickedUp, &dto.PickedUpTime)
	stamp(order.StatusDelivered, &dto.DeliveredTime)
	stamp(order.StatusCancelled, &dto.CancelledTime)

	if r := aggregate.Rider(); r != nil {
		name := r.Name()
		contact := r.Contact()
		dto.RiderName = &name
		dto.RiderContact = &contact
	}

	return dto
}

// toDomain converts database rows to an order domain aggregate.
// Reconstructs the complete aggregate including status timestamps and the
// rider snapshot using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	items := make([]cart.Line, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		price, lineErr := kernel.NewMoney(itemDTO.Price)
		if lineErr != nil {
			return nil, lineErr
		}
		line, lineErr := cart.NewLine(itemDTO.Name, price, itemDTO.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		items = append(items, line)
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	shippingFee, err := kernel.NewMoney(dto.ShippingFee)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	payment, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	statusTimes := make(map[order.Status]time.Time)
	for s, column := range map[order.Status]*time.Time{
		order.StatusPlaced:    dto.PlacedTime,
		order.StatusPreparing: dto.PreparingTime,
		order.StatusReady:     dto.ReadyTime,
		order.StatusPickedUp:  dto.PickedUpTime,
		order.StatusDelivered: dto.DeliveredTime,
		order.StatusCancelled: dto.CancelledTime,
	} {
		if column != nil {
			statusTimes[s] = *column
		}
	}

	var snapshot *order.RiderSnapshot
	if dto.RiderName != nil {
		contact := ""
		if dto.RiderContact != nil {
			contact = *dto.RiderContact
		}
		s, snapErr := order.NewRiderSnapshot(*dto.RiderName, contact)
		if snapErr != nil {
			return nil, snapErr
		}
		snapshot = &s
	}

	return order.RestoreOrder(id, dto.Customer, items, subtotal, shippingFee,
		total, status, dto.OrderTime, statusTimes, dto.DeliveryAddress,
		dto.ContactNumber, payment, snapshot)
}
