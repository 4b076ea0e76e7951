package serializers

import "catalog/internal/models"

// Image is the wire form of an album image.
type Image struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Album uint   `json:"album"`
	Image string `json:"image"`
}

// Image renders img with its public URL.
func (s *Serializer) Image(img *models.Image) Image {
	return Image{ID: img.ID, Name: img.Name, Album: img.AlbumID, Image: s.URL(img.Path)}
}

// Images renders a list of images; the result is never nil.
func (s *Serializer) Images(images []models.Image) []Image {
	out := make([]Image, 0, len(images))
	for i := range images {
		out = append(out, s.Image(&images[i]))
	}
	return out
}

// ShippingAddress is the wire form of a shipping address.
type ShippingAddress struct {
	ID uint `json:"id"`
	ShippingAddressInput
}

// ShippingAddressInput is the accepted body for a shipping address. All fields are required.
type ShippingAddressInput struct {
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"required,max=100"`
	Country    string `json:"country" validate:"required,max=100"`
	State      string `json:"state" validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=100"`
	AddressOne string `json:"address_one" validate:"required,max=100"`
	AddressTwo string `json:"address_two" validate:"required,max=100"`
}

// Apply copies the input onto a.
func (in *ShippingAddressInput) Apply(a *models.ShippingAddress) {
	a.FirstName = in.FirstName
	a.LastName = in.LastName
	a.Country = in.Country
	a.State = in.State
	a.PostalCode = in.PostalCode
	a.AddressOne = in.AddressOne
	a.AddressTwo = in.AddressTwo
}

// ShippingAddress renders a.
func (s *Serializer) ShippingAddress(a *models.ShippingAddress) ShippingAddress {
	return ShippingAddress{
		ID: a.ID,
		ShippingAddressInput: ShippingAddressInput{
			FirstName:  a.FirstName,
			LastName:   a.LastName,
			Country:    a.Country,
			State:      a.State,
			PostalCode: a.PostalCode,
			AddressOne: a.AddressOne,
			AddressTwo: a.AddressTwo,
		},
	}
}

// ShippingAddresses renders a list of addresses; the result is never nil.
func (s *Serializer) ShippingAddresses(addresses []models.ShippingAddress) []ShippingAddress {
	out := make([]ShippingAddress, 0, len(addresses))
	for i := range addresses {
		out = append(out, s.ShippingAddress(&addresses[i]))
	}
	return out
}

// Order is the wire form of an order.
type Order struct {
	ID              uint    `json:"id"`
	Product         uint    `json:"product"`
	ProductDetails  Summary `json:"product_details"`
	Quantity        int     `json:"quantity"`
	Customer        uint    `json:"customer"`
	CustomerDetails Summary `json:"customer_details"`
}

// OrderInput is the accepted body for creating or replacing an order.
type OrderInput struct {
	Product  *uint `json:"product" validate:"required"`
	Customer *uint `json:"customer" validate:"required"`
	Quantity int   `json:"quantity" validate:"required,min=1"`
}

// Apply copies the input onto o. Call only after validation.
func (in *OrderInput) Apply(o *models.Order) {
	o.ProductID = *in.Product
	o.CustomerID = *in.Customer
	o.Quantity = in.Quantity
}

// Order renders o with product and customer summaries.
func (s *Serializer) Order(o *models.Order) Order {
	out := Order{
		ID:              o.ID,
		Product:         o.ProductID,
		ProductDetails:  Summary{ID: o.ProductID},
		Quantity:        o.Quantity,
		Customer:        o.CustomerID,
		CustomerDetails: Summary{ID: o.CustomerID},
	}
	if o.Product != nil {
		out.ProductDetails.Name = o.Product.Name
	}
	if o.Customer != nil {
		out.CustomerDetails.Name = o.Customer.FullName()
	}
	return out
}

// Orders renders a list of orders; the result is never nil.
func (s *Serializer) Orders(orders []models.Order) []Order {
	out := make([]Order, 0, len(orders))
	for i := range orders {
		out = append(out, s.Order(&orders[i]))
	}
	return out
}

// NewsLetter is the wire form of a newsletter subscription.
type NewsLetter struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// NewsLetterInput is the accepted body for a subscription.
type NewsLetterInput struct {
	Email string `json:"email" validate:"required,email,max=100"`
}

// NewsLetters renders a list of subscriptions; the result is never nil.
func (s *Serializer) NewsLetters(subscriptions []models.NewsLetter) []NewsLetter {
	out := make([]NewsLetter, 0, len(subscriptions))
	for _, n := range subscriptions {
		out = append(out, NewsLetter{ID: n.ID, Email: n.Email})
	}
	return out
}
