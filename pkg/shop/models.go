package shop

import (
	"bytes"
	"time"

	"github.com/goccy/go-json"
)

// Review is a customer review of a product.
type Review struct {
	Product            string `json:"product"`
	User               string `json:"user"`
	IsVerifiedPurchase bool   `json:"isVerifiedPurchase"`
	Title              string `json:"title"`
	Comment            string `json:"comment"`
	Rating             int    `json:"rating"`
}

// RatingBucket counts the reviews with one rating value.
type RatingBucket struct {
	Rating float64 `json:"rating"`
	Count  float64 `json:"count"`
}

// ProductInput is a catalog product as created by the admin or the seed loader.
type ProductInput struct {
	Name               string         `json:"name"`
	Slug               string         `json:"slug"`
	Category           string         `json:"category"`
	Images             []string       `json:"images"`
	Brand              string         `json:"brand"`
	Description        string         `json:"description"`
	IsPublished        bool           `json:"isPublished"`
	Price              float64        `json:"price"`
	ListPrice          float64        `json:"listPrice"`
	CountInStock       int            `json:"countInStock"`
	Tags               []string       `json:"tags"`
	Sizes              []string       `json:"sizes"`
	Colors             []string       `json:"colors"`
	AvgRating          float64        `json:"avgRating"`
	NumReviews         int            `json:"numReviews"`
	RatingDistribution []RatingBucket `json:"ratingDistribution"`
	Reviews            []Review       `json:"reviews"`
	NumSales           int            `json:"numSales"`
}

// ProductUpdate is a ProductInput addressed by its identifier.
type ProductUpdate struct {
	ID string `json:"_id"`
	ProductInput
}

// OrderItem is one line of a cart or an order.
type OrderItem struct {
	ClientID     string  `json:"clientId"`
	Product      string  `json:"product"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Category     string  `json:"category"`
	Quantity     int     `json:"quantity"`
	CountInStock int     `json:"countInStock"`
	Image        string  `json:"image"`
	Price        float64 `json:"price"`
	Size         string  `json:"size,omitempty"`
	Color        string  `json:"color,omitempty"`
}

// ShippingAddress is where an order is delivered.
type ShippingAddress struct {
	FullName   string `json:"fullName"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Province   string `json:"province"`
	Phone      string `json:"phone"`
	Country    string `json:"country"`
}

// PaymentResult is the payment provider's receipt, kept as reported.
type PaymentResult struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	EmailAddress string `json:"email_address"`
	PricePaid    string `json:"pricePaid"`
}

// OrderUser references a registered user by ID, or describes a guest inline.
type OrderUser struct {
	ID    string
	Name  string
	Email string
}

// IsRef reports whether the user is a reference to a registered account.
func (u OrderUser) IsRef() bool {
	return u.ID != ""
}

func (u OrderUser) MarshalJSON() ([]byte, error) {
	if u.IsRef() {
		return json.Marshal(u.ID)
	}
	return json.Marshal(struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}{u.Name, u.Email})
}

func (u *OrderUser) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		*u = OrderUser{}
		return json.Unmarshal(data, &u.ID)
	}
	var inline struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(data, &inline); err != nil {
		return err
	}
	*u = OrderUser{Name: inline.Name, Email: inline.Email}
	return nil
}

// OrderInput is an order as placed at checkout.
type OrderInput struct {
	User                 OrderUser       `json:"user"`
	Items                []OrderItem     `json:"items"`
	ShippingAddress      ShippingAddress `json:"shippingAddress"`
	PaymentMethod        string          `json:"paymentMethod"`
	PaymentResult        *PaymentResult  `json:"paymentResult,omitempty"`
	ItemsPrice           float64         `json:"itemsPrice"`
	ShippingPrice        float64         `json:"shippingPrice"`
	TaxPrice             float64         `json:"taxPrice"`
	TotalPrice           float64         `json:"totalPrice"`
	ExpectedDeliveryDate time.Time       `json:"expectedDeliveryDate"`
	IsDelivered          bool            `json:"isDelivered"`
	DeliveredAt          *time.Time      `json:"deliveredAt,omitempty"`
	IsPaid               bool            `json:"isPaid"`
	PaidAt               *time.Time      `json:"paidAt,omitempty"`
}

// Cart is the shopper's cart before checkout.
type Cart struct {
	Items                []OrderItem      `json:"items"`
	ItemsPrice           float64          `json:"itemsPrice"`
	TaxPrice             *float64         `json:"taxPrice,omitempty"`
	ShippingPrice        *float64         `json:"shippingPrice,omitempty"`
	TotalPrice           *float64         `json:"totalPrice,omitempty"`
	PaymentMethod        string           `json:"paymentMethod,omitempty"`
	ShippingAddress      *ShippingAddress `json:"shippingAddress,omitempty"`
	DeliveryDateIndex    *int             `json:"deliveryDateIndex,omitempty"`
	ExpectedDeliveryDate *time.Time       `json:"expectedDeliveryDate,omitempty"`
}

// UserInput is a user account as created by the admin.
type UserInput struct {
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Image         string          `json:"image,omitempty"`
	EmailVerified bool            `json:"emailVerified"`
	Role          string          `json:"role"`
	Password      string          `json:"password"`
	PaymentMethod string          `json:"paymentMethod"`
	Address       ShippingAddress `json:"address"`
}

// UserUpdate is the admin's edit of an existing user.
type UserUpdate struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserSignIn holds sign-in credentials.
type UserSignIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserSignUp holds the registration form.
type UserSignUp struct {
	UserSignIn
	Name            string `json:"name"`
	ConfirmPassword string `json:"confirmPassword"`
}

// UserName holds a display name change.
type UserName struct {
	Name string `json:"name"`
}

// WebPageInput is a static content page.
type WebPageInput struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Content     string `json:"content"`
	IsPublished bool   `json:"isPublished"`
}

// WebPageUpdate is a WebPageInput addressed by its identifier.
type WebPageUpdate struct {
	ID string `json:"_id"`
	WebPageInput
}

type SiteLanguage struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type Carousel struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Image         string `json:"image"`
	ButtonCaption string `json:"buttonCaption"`
}

type SiteCurrency struct {
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	ConvertRate float64 `json:"convertRate"`
	Symbol      string  `json:"symbol"`
}

type PaymentMethod struct {
	Name       string  `json:"name"`
	Commission float64 `json:"commission"`
}

type DeliveryDate struct {
	Name                 string  `json:"name"`
	DaysToDeliver        float64 `json:"daysToDeliver"`
	ShippingPrice        float64 `json:"shippingPrice"`
	FreeShippingMinPrice float64 `json:"freeShippingMinPrice"`
}

// CommonSetting holds the storefront-wide switches; every field has a default.
type CommonSetting struct {
	PageSize             int     `json:"pageSize"`
	IsMaintenanceMode    bool    `json:"isMaintenanceMode"`
	FreeShippingMinPrice float64 `json:"freeShippingMinPrice"`
	DefaultTheme         string  `json:"defaultTheme"`
	DefaultColor         string  `json:"defaultColor"`
}

// SiteSetting describes the storefront itself.
type SiteSetting struct {
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	Slogan      string `json:"slogan"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	URL         string `json:"url"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Author      string `json:"author"`
	Copyright   string `json:"copyright"`
	Address     string `json:"address"`
}

// Setting is the storefront configuration document.
type Setting struct {
	Common                  CommonSetting   `json:"common"`
	Site                    SiteSetting     `json:"site"`
	AvailableLanguages      []SiteLanguage  `json:"availableLanguages"`
	Carousels               []Carousel      `json:"carousels"`
	DefaultLanguage         string          `json:"defaultLanguage"`
	AvailableCurrencies     []SiteCurrency  `json:"availableCurrencies"`
	DefaultCurrency         string          `json:"defaultCurrency"`
	AvailablePaymentMethods []PaymentMethod `json:"availablePaymentMethods"`
	DefaultPaymentMethod    string          `json:"defaultPaymentMethod"`
	AvailableDeliveryDates  []DeliveryDate  `json:"availableDeliveryDates"`
	DefaultDeliveryDate     string          `json:"defaultDeliveryDate"`
}
