package shop

import "github.com/dmitrymomot/storefront/pkg/schema"

// Registered schema names.
const (
	SchemaReview            = "Review"
	SchemaProductInput      = "ProductInput"
	SchemaProductUpdate     = "ProductUpdate"
	SchemaOrderItem         = "OrderItem"
	SchemaShippingAddress   = "ShippingAddress"
	SchemaOrderInput        = "OrderInput"
	SchemaCart              = "Cart"
	SchemaUserInput         = "UserInput"
	SchemaUserUpdate        = "UserUpdate"
	SchemaUserSignIn        = "UserSignIn"
	SchemaUserSignUp        = "UserSignUp"
	SchemaUserName          = "UserName"
	SchemaWebPageInput      = "WebPageInput"
	SchemaWebPageUpdate     = "WebPageUpdate"
	SchemaSettingInput      = "SettingInput"
	SchemaSettingConsistent = "SettingConsistent"
	SchemaSiteLanguage      = "SiteLanguage"
	SchemaCarousel          = "Carousel"
	SchemaSiteCurrency      = "SiteCurrency"
	SchemaPaymentMethod     = "PaymentMethod"
	SchemaDeliveryDate      = "DeliveryDate"
)

// Common

func mongoID() *schema.StringSchema {
	return schema.String().ObjectID("Invalid MongoDB ID")
}

func price(label string) *schema.NumberSchema {
	return schema.Coerce().Monetary(label + " must have exactly two decimal places (e.g., 49.99)")
}

func required(label string) *schema.StringSchema {
	return schema.String().Min(1, label+" is required")
}

func counter(msg string) *schema.NumberSchema {
	return schema.Coerce().Int("").NonNegative(msg)
}

func emptyList(elem schema.Schema) *schema.DefaultSchema {
	return schema.Default(schema.Array(elem), []any{})
}

// Review

var reviewInput = schema.Object(
	schema.Field("product", mongoID()),
	schema.Field("user", mongoID()),
	schema.Field("isVerifiedPurchase", schema.Bool()),
	schema.Field("title", required("Title")),
	schema.Field("comment", required("Comment")),
	schema.Field("rating", schema.Coerce().Int("").
		Min(1, "Rating must be at least 1").
		Max(5, "Rating must be at most 5")),
)

// Product

var productInput = schema.Object(
	schema.Field("name", schema.String().Min(3, "Name must be at least 3 characters")),
	schema.Field("slug", schema.String().Min(3, "Slug must be at least 3 characters")),
	schema.Field("category", required("Category")),
	schema.Field("images", schema.Array(schema.String()).Min(1, "Product must have at least one image")),
	schema.Field("brand", required("Brand")),
	schema.Field("description", required("Description")),
	schema.Field("isPublished", schema.Bool()),
	schema.Field("price", price("Price")),
	schema.Field("listPrice", price("List price")),
	schema.Field("countInStock", counter("count in stock must be a non-negative number")),
	schema.Field("tags", emptyList(schema.String())),
	schema.Field("sizes", emptyList(schema.String())),
	schema.Field("colors", emptyList(schema.String())),
	schema.Field("avgRating", schema.Coerce().
		Min(0, "Average rating must be at least 0").
		Max(5, "Average rating must be at most 5")),
	schema.Field("numReviews", counter("Number of reviews must be a non-negative number")),
	schema.Field("ratingDistribution", schema.Array(schema.Object(
		schema.Field("rating", schema.Number()),
		schema.Field("count", schema.Number()),
	)).Max(5, "Rating distribution must have at most 5 entries")),
	schema.Field("reviews", emptyList(reviewInput)),
	schema.Field("numSales", counter("Number of sales must be a non-negative number")),
)

var productUpdate = productInput.Extend(
	schema.Field("_id", mongoID()),
)

// Order item

var orderItem = schema.Object(
	schema.Field("clientId", required("clientId")),
	schema.Field("product", required("Product").ObjectID("Invalid MongoDB ID")),
	schema.Field("name", required("Name")),
	schema.Field("slug", required("Slug")),
	schema.Field("category", required("Category")),
	schema.Field("quantity", schema.Number().Int("").NonNegative("Quantity must be a non-negative number")),
	schema.Field("countInStock", schema.Number().Int("").NonNegative("Count in stock must be a non-negative number")),
	schema.Field("image", required("Image")),
	schema.Field("price", price("Price")),
	schema.Field("size", schema.Optional(schema.String())),
	schema.Field("color", schema.Optional(schema.String())),
)

// Shipping address

var shippingAddress = schema.Object(
	schema.Field("fullName", required("Full name")),
	schema.Field("street", required("Address")),
	schema.Field("city", required("City")),
	schema.Field("postalCode", required("Postal code")),
	schema.Field("province", required("Province")),
	schema.Field("phone", required("Phone number")),
	schema.Field("country", required("Country")),
)

// Order

var orderInput = schema.Object(
	schema.Field("user", schema.Union(
		mongoID(),
		schema.Object(
			schema.Field("name", schema.String()),
			schema.Field("email", schema.String().Email("")),
		),
	)),
	schema.Field("items", schema.Array(orderItem).Min(1, "Order must contain at least one item")),
	schema.Field("shippingAddress", shippingAddress),
	schema.Field("paymentMethod", required("Payment method")),
	schema.Field("paymentResult", schema.Optional(schema.Object(
		schema.Field("id", schema.String()),
		schema.Field("status", schema.String()),
		schema.Field("email_address", schema.String()),
		schema.Field("pricePaid", schema.String()),
	))),
	schema.Field("itemsPrice", price("Items price")),
	schema.Field("shippingPrice", price("Shipping price")),
	schema.Field("taxPrice", price("Tax price")),
	schema.Field("totalPrice", price("Total price")),
	schema.Field("expectedDeliveryDate", schema.Date().Future("Expected delivery date must be in the future")),
	schema.Field("isDelivered", schema.Default(schema.Bool(), false)),
	schema.Field("deliveredAt", schema.Optional(schema.Date())),
	schema.Field("isPaid", schema.Default(schema.Bool(), false)),
	schema.Field("paidAt", schema.Optional(schema.Date())),
)

// Cart

var cart = schema.Object(
	schema.Field("items", schema.Array(orderItem).Min(1, "Order must contain at least one item")),
	schema.Field("itemsPrice", schema.Number()),
	schema.Field("taxPrice", schema.Optional(schema.Number())),
	schema.Field("shippingPrice", schema.Optional(schema.Number())),
	schema.Field("totalPrice", schema.Optional(schema.Number())),
	schema.Field("paymentMethod", schema.Optional(schema.String())),
	schema.Field("shippingAddress", schema.Optional(shippingAddress)),
	schema.Field("deliveryDateIndex", schema.Optional(schema.Number().Int("").NonNegative("Delivery date index must be a non-negative number"))),
	schema.Field("expectedDeliveryDate", schema.Optional(schema.Date())),
)

// User

var (
	userName = schema.String().
			Min(2, "Username must be at least 2 characters").
			Max(50, "Username must be at most 50 characters")
	userEmail    = required("Email").Email("Email is invalid")
	userPassword = schema.String().Min(3, "Password must be at least 3 characters")
	userRole     = required("role")
)

var userUpdate = schema.Object(
	schema.Field("_id", mongoID()),
	schema.Field("name", userName),
	schema.Field("email", userEmail),
	schema.Field("role", userRole),
)

var userInput = schema.Object(
	schema.Field("name", userName),
	schema.Field("email", userEmail),
	schema.Field("image", schema.Optional(schema.String())),
	schema.Field("emailVerified", schema.Bool()),
	schema.Field("role", userRole),
	schema.Field("password", userPassword),
	schema.Field("paymentMethod", required("Payment method")),
	schema.Field("address", shippingAddress.Extend(
		schema.Field("street", required("Street")),
	)),
)

var userSignIn = schema.Object(
	schema.Field("email", userEmail),
	schema.Field("password", userPassword),
)

var userSignUp = userSignIn.Extend(
	schema.Field("name", userName),
	schema.Field("confirmPassword", userPassword),
).Refine(
	schema.FieldsMatch("password", "confirmPassword", "Passwords don't match"),
)

var userNameOnly = userUpdate.Pick("name")

// Web page

var webPageInput = schema.Object(
	schema.Field("title", schema.String().Min(3, "Title must be at least 3 characters")),
	schema.Field("slug", schema.String().Min(3, "Slug must be at least 3 characters")),
	schema.Field("content", required("Content")),
	schema.Field("isPublished", schema.Bool()),
)

var webPageUpdate = webPageInput.Extend(
	schema.Field("_id", mongoID()),
)

// Setting

var siteLanguage = schema.Object(
	schema.Field("name", required("Name")),
	schema.Field("code", required("Code")),
)

var carousel = schema.Object(
	schema.Field("title", required("title")),
	schema.Field("url", required("url")),
	schema.Field("image", required("image")),
	schema.Field("buttonCaption", required("buttonCaption")),
)

var siteCurrency = schema.Object(
	schema.Field("name", required("Name")),
	schema.Field("code", required("Code")),
	schema.Field("convertRate", schema.Coerce().Min(0, "Convert rate must be at least 0")),
	schema.Field("symbol", required("Symbol")),
)

var paymentMethod = schema.Object(
	schema.Field("name", required("Name")),
	schema.Field("commission", schema.Coerce().Min(0, "Commission must be at least 0")),
)

var deliveryDate = schema.Object(
	schema.Field("name", required("Name")),
	schema.Field("daysToDeliver", schema.Number().Min(0, "Days to deliver must be at least 0")),
	schema.Field("shippingPrice", schema.Coerce().Min(0, "Shipping price must be at least 0")),
	schema.Field("freeShippingMinPrice", schema.Coerce().Min(0, "Free shipping min amount must be at least 0")),
)

var settingInput = schema.Object(
	schema.Field("common", schema.Object(
		schema.Field("pageSize", schema.Default(
			schema.Coerce().Min(1, "Page size must be at least 1"), 9)),
		schema.Field("isMaintenanceMode", schema.Default(schema.Bool(), false)),
		schema.Field("freeShippingMinPrice", schema.Default(
			schema.Coerce().Min(0, "Free shipping min price must be at least 0"), 0)),
		schema.Field("defaultTheme", schema.Default(required("Default theme"), "light")),
		schema.Field("defaultColor", schema.Default(required("Default color"), "gold")),
	)),
	schema.Field("site", schema.Object(
		schema.Field("name", required("Name")),
		schema.Field("logo", required("logo")),
		schema.Field("slogan", required("Slogan")),
		schema.Field("description", required("Description")),
		schema.Field("keywords", required("Keywords")),
		schema.Field("url", required("Url")),
		schema.Field("email", required("Email")),
		schema.Field("phone", required("Phone")),
		schema.Field("author", required("Author")),
		schema.Field("copyright", required("Copyright")),
		schema.Field("address", required("Address")),
	)),
	schema.Field("availableLanguages", schema.Array(siteLanguage).Min(1, "At least one language is required")),
	schema.Field("carousels", schema.Array(carousel).Min(1, "At least one carousel is required")),
	schema.Field("defaultLanguage", required("Language")),
	schema.Field("availableCurrencies", schema.Array(siteCurrency).Min(1, "At least one currency is required")),
	schema.Field("defaultCurrency", required("Currency")),
	schema.Field("availablePaymentMethods", schema.Array(paymentMethod).Min(1, "At least one payment method is required")),
	schema.Field("defaultPaymentMethod", required("Payment method")),
	schema.Field("availableDeliveryDates", schema.Array(deliveryDate).Min(1, "At least one delivery date is required")),
	schema.Field("defaultDeliveryDate", required("Delivery date")),
)

// settingConsistent additionally requires every default* to name a member of
// its available* list. SettingInput does not check these references.
var settingConsistent = settingInput.Refine(
	schema.OneOfField("defaultLanguage", "availableLanguages", "code",
		"Default language must be one of the available languages"),
	schema.OneOfField("defaultCurrency", "availableCurrencies", "code",
		"Default currency must be one of the available currencies"),
	schema.OneOfField("defaultPaymentMethod", "availablePaymentMethods", "name",
		"Default payment method must be one of the available payment methods"),
	schema.OneOfField("defaultDeliveryDate", "availableDeliveryDates", "name",
		"Default delivery date must be one of the available delivery dates"),
)

func buildRegistry() *schema.Registry {
	return schema.NewRegistry(map[string]schema.Schema{
		SchemaReview:            reviewInput,
		SchemaProductInput:      productInput,
		SchemaProductUpdate:     productUpdate,
		SchemaOrderItem:         orderItem,
		SchemaShippingAddress:   shippingAddress,
		SchemaOrderInput:        orderInput,
		SchemaCart:              cart,
		SchemaUserInput:         userInput,
		SchemaUserUpdate:        userUpdate,
		SchemaUserSignIn:        userSignIn,
		SchemaUserSignUp:        userSignUp,
		SchemaUserName:          userNameOnly,
		SchemaWebPageInput:      webPageInput,
		SchemaWebPageUpdate:     webPageUpdate,
		SchemaSettingInput:      settingInput,
		SchemaSettingConsistent: settingConsistent,
		SchemaSiteLanguage:      siteLanguage,
		SchemaCarousel:          carousel,
		SchemaSiteCurrency:      siteCurrency,
		SchemaPaymentMethod:     paymentMethod,
		SchemaDeliveryDate:      deliveryDate,
	})
}
