package localstore

import (
	"fmt"
	"time"

	"faithcafe/internal/core/domain/model/cart"
	"faithcafe/internal/core/domain/model/kernel"
	"faithcafe/internal/core/domain/model/menu"
	"faithcafe/internal/core/domain/model/order"
	"faithcafe/internal/core/domain/model/user"
	"faithcafe/internal/pkg/errs"
)

// DTOs mirror the JSON stored under the cache keys. Field names match the
// fixture files, so a fixture loads byte for byte into these shapes.

type userDTO struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	Address       string `json:"address,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
}

func userToDTO(aggregate *user.User) userDTO {
	return userDTO{
		Username:      aggregate.Username(),
		Password:      aggregate.Password(),
		Email:         aggregate.Email(),
		Role:          aggregate.Role().String(),
		Address:       aggregate.Address(),
		ContactNumber: aggregate.ContactNumber(),
	}
}

func (dto userDTO) toDomain() (*user.User, error) {
	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}
	return user.RestoreUser(dto.Username, dto.Password, dto.Email, role,
		dto.Address, dto.ContactNumber)
}

type menuItemDTO struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Image       string  `json:"image,omitempty"`
}

func menuItemToDTO(item *menu.Item) menuItemDTO {
	return menuItemDTO{
		Name:        item.Name(),
		Price:       item.Price().Amount(),
		Description: item.Description(),
		Category:    item.Category(),
		Image:       item.Image(),
	}
}

func (dto menuItemDTO) toDomain() (*menu.Item, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return menu.NewItem(dto.Name, price, dto.Description, dto.Category, dto.Image)
}

type cartLineDTO struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func cartLineToDTO(line cart.Line) cartLineDTO {
	return cartLineDTO{
		Name:     line.Name(),
		Price:    line.Price().Amount(),
		Quantity: line.Quantity(),
	}
}

func (dto cartLineDTO) toDomain() (cart.Line, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return cart.Line{}, err
	}
	return cart.NewLine(dto.Name, price, dto.Quantity)
}

func cartLinesToDTO(lines []cart.Line) []cartLineDTO {
	dtos := make([]cartLineDTO, 0, len(lines))
	for _, line := range lines {
		dtos = append(dtos, cartLineToDTO(line))
	}
	return dtos
}

func cartLinesToDomain(dtos []cartLineDTO) ([]cart.Line, error) {
	lines := make([]cart.Line, 0, len(dtos))
	for _, dto := range dtos {
		line, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

type riderDTO struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

type orderDTO struct {
	ID              string        `json:"id"`
	Customer        string        `json:"customer"`
	Items           []cartLineDTO `json:"items"`
	Subtotal        float64       `json:"subtotal"`
	ShippingFee     float64       `json:"shippingFee"`
	Total           float64       `json:"total"`
	Status          string        `json:"status"`
	OrderTime       string        `json:"orderTime"`
	PlacedTime      string        `json:"placedTime,omitempty"`
	PreparingTime   string        `json:"preparingTime,omitempty"`
	ReadyTime       string        `json:"readyTime,omitempty"`
	PickedUpTime    string        `json:"pickedupTime,omitempty"`
	DeliveredTime   string        `json:"deliveredTime,omitempty"`
	CancelledTime   string        `json:"cancelledTime,omitempty"`
	DeliveryAddress string        `json:"deliveryAddress,omitempty"`
	ContactNumber   string        `json:"contactNumber,omitempty"`
	PaymentMethod   string        `json:"paymentMethod"`
	Rider           *riderDTO     `json:"rider,omitempty"`
}

func orderToDTO(aggregate *order.Order) orderDTO {
	dto := orderDTO{
		ID:              aggregate.ID().String(),
		Customer:        aggregate.Customer(),
		Items:           cartLinesToDTO(aggregate.Items()),
		Subtotal:        aggregate.Subtotal().Amount(),
		ShippingFee:     aggregate.ShippingFee().Amount(),
		Total:           aggregate.Total().Amount(),
		Status:          aggregate.Status().String(),
		OrderTime:       aggregate.OrderTime().Format(time.RFC3339),
		DeliveryAddress: aggregate.DeliveryAddress(),
		ContactNumber:   aggregate.ContactNumber(),
		PaymentMethod:   aggregate.PaymentMethod().String(),
	}

	stamp := func(s order.Status, field *string) {
		if ts, ok := aggregate.StatusTime(s); ok {
			*field = ts.Format(time.RFC3339)
		}
	}
	stamp(order.StatusPlaced, &dto.PlacedTime)
	stamp(order.StatusPreparing, &dto.PreparingTime)
	stamp(order.StatusReady, &dto.ReadyTime)
	stamp(order.StatusPickedUp, &dto.PickedUpTime)
	stamp(order.StatusDelivered, &dto.DeliveredTime)
	stamp(order.StatusCancelled, &dto.CancelledTime)

	if r := aggregate.Rider(); r != nil {
		dto.Rider = &riderDTO{Name: r.Name(), Contact: r.Contact()}
	}
	return dto
}

func (dto orderDTO) toDomain() (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	items, err := cartLinesToDomain(dto.Items)
	if err != nil {
		return nil, err
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

	orderTime, err := parseTime("orderTime", dto.OrderTime)
	if err != nil {
		return nil, err
	}

	statusTimes := make(map[order.Status]time.Time)
	unstamp := func(s order.Status, value string) error {
		if value == "" {
			return nil
		}
		ts, parseErr := parseTime(s.String()+"Time", value)
		if parseErr != nil {
			return parseErr
		}
		statusTimes[s] = ts
		return nil
	}
	for s, value := range map[order.Status]string{
		order.StatusPlaced:    dto.PlacedTime,
		order.StatusPreparing: dto.PreparingTime,
		order.StatusReady:     dto.ReadyTime,
		order.StatusPickedUp:  dto.PickedUpTime,
		order.StatusDelivered: dto.DeliveredTime,
		order.StatusCancelled: dto.CancelledTime,
	} {
		if err = unstamp(s, value); err != nil {
			return nil, err
		}
	}

	var snapshot *order.RiderSnapshot
	if dto.Rider != nil {
		s, snapErr := order.NewRiderSnapshot(dto.Rider.Name, dto.Rider.Contact)
		if snapErr != nil {
			return nil, snapErr
		}
		snapshot = &s
	}

	return order.RestoreOrder(id, dto.Customer, items, subtotal, shippingFee,
		total, status, orderTime, statusTimes, dto.DeliveryAddress,
		dto.ContactNumber, payment, snapshot)
}

func parseTime(field, value string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(field,
			fmt.Errorf("%q is not an RFC 3339 timestamp", value))
	}
	return ts, nil
}
