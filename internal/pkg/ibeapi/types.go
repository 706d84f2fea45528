package ibeapi

// Wire types for the IBE backend. The backend owns these shapes; everything
// here mirrors its JSON contracts and carries no behavior.

// FilterOption is a single selectable value inside a filter group.
type FilterOption struct {
	Title  string `json:"title"`
	Active bool   `json:"active"`
}

// FilterGroup is one filter category (bed type, room type, price, ...).
type FilterGroup struct {
	Name   string         `json:"name"`
	Values []FilterOption `json:"values"`
	Active bool           `json:"active"`
}

// PropertyConfig holds the per-property settings served by the config
// endpoint: capacity policy, filter/sort lists and the pricing rates.
type PropertyConfig struct {
	PropertyID          int            `json:"property_id"`
	Filters             []FilterGroup  `json:"filters"`
	Sort                []FilterOption `json:"sort"`
	AllowedGuests       []GuestOption  `json:"allowed_guests"`
	MaximumRoomsAllowed int            `json:"maximum_rooms_allowed"`
	MaximumGuestsInRoom int            `json:"maximum_guests_in_a_room"`
	MaximumBedsInRoom   int            `json:"maximum_beds_in_a_room"`
	MaximumLengthOfStay int            `json:"maximum_length_of_stay"`
	PageSize            int            `json:"page_size"`
	TaxPercentage       float64        `json:"tax_percentage"`
	VATPercentage       float64        `json:"vat_percentage"`
	DueNowPercentage    float64        `json:"due_now_percentage"`
	LastNameRequired    bool           `json:"last_name_required"`
}

// GuestOption describes one guest type offered by a property.
type GuestOption struct {
	Title  string `json:"title"`
	Age    string `json:"age"`
	Active bool   `json:"active"`
}

// TenantConfig is the root document of the config endpoint.
type TenantConfig struct {
	TenantID   int                       `json:"tenant_id"`
	TenantName string                    `json:"tenant_name"`
	Properties map[string]PropertyConfig `json:"properties"`
}

// RoomSearchRequest is the body of the paged room-search call.
type RoomSearchRequest struct {
	StartDate          string `json:"startDate"`
	EndDate            string `json:"endDate"`
	PropertyID         int    `json:"propertyId"`
	RoomTypeName       string `json:"roomTypeName"`
	SingleBed          int    `json:"singleBed"`
	DoubleBed          int    `json:"doubleBed"`
	Area               int    `json:"area"`
	MinCapacity        int    `json:"minCapacity"`
	MaxPrice           int    `json:"maxPrice"`
	Sort               string `json:"sort"`
	TotalCounts        int    `json:"totalCounts"`
	TotalRoomsSelected int    `json:"totalRoomsSelected"`
	TotalBedsSelected  int    `json:"totalBedsSelected"`
}

// RoomOffer is an immutable room-type snapshot from the search response.
type RoomOffer struct {
	RoomTypeID       int     `json:"roomTypeId"`
	RoomTypeName     string  `json:"roomTypeName"`
	Price            float64 `json:"price"`
	MaxCapacity      int     `json:"maxCapacity"`
	AreaInSquareFeet int     `json:"areaInSquareFeet"`
	SingleBed        int     `json:"singleBed"`
	DoubleBed        int     `json:"doubleBed"`
	AvailableRooms   int     `json:"availableRooms"`
}

// RoomSearchResponse is one page of search results.
type RoomSearchResponse struct {
	ListRooms    []RoomOffer `json:"listRooms"`
	TotalRecords int         `json:"totalRecords"`
}

// RateBreakdownRequest asks for the nightly rate schedule of a stay.
type RateBreakdownRequest struct {
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	PropertyID int    `json:"propertyId"`
	RoomTypeID int    `json:"roomTypeId"`
}

// DateRate is a single night's rate.
type DateRate struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

type rateBreakdownResponse struct {
	RoomRateList []DateRate `json:"roomRateList"`
}

// Promotion as served by the promotion endpoints. PriceFactor multiplies the
// nightly rate, so 0.8 means a 20% discount.
type Promotion struct {
	PromotionID          int     `json:"promotionId"`
	PromotionTitle       string  `json:"promotionTitle"`
	PromotionDescription string  `json:"promotionDescription"`
	PriceFactor          float64 `json:"priceFactor"`
	MinimumDaysOfStay    int     `json:"minimumDaysOfStay,omitempty"`
	IsDeactivated        bool    `json:"isDeactivated,omitempty"`
}

// PromotionQuery filters applicable promotions for a stay.
type PromotionQuery struct {
	StartDate           string `json:"startDate"`
	EndDate             string `json:"endDate"`
	IsMilitaryPersonnel bool   `json:"isMilitaryPersonnel"`
	IsSeniorCitizen     bool   `json:"isSeniorCitizen"`
}

// CostInfo carries the computed price breakdown into the booking payload.
type CostInfo struct {
	TotalCost         float64 `json:"totalCost"`
	AmountDueAtResort float64 `json:"amountDueAtResort"`
	NightlyRate       float64 `json:"nightlyRate"`
	Taxes             float64 `json:"taxes"`
	VAT               float64 `json:"vat"`
}

// GuestInfo is the traveler section of the booking payload.
type GuestInfo struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Phone         string `json:"phone"`
	EmailID       string `json:"emailId"`
	HasSubscribed bool   `json:"hasSubscribed"`
}

// BillingInfo is the billing section of the booking payload.
type BillingInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	Zipcode   string `json:"zipcode"`
	State     string `json:"state"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
	EmailID   string `json:"emailId"`
}

// PaymentInfo is the card section of the booking payload. Format checks only;
// the backend is the one talking to the payment processor.
type PaymentInfo struct {
	CardNumber  string `json:"cardNumber"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
}

// PromotionInfo is the promotion section of the booking payload.
type PromotionInfo struct {
	PromotionID          int     `json:"promotionId"`
	PromotionTitle       string  `json:"promotionTitle"`
	PriceFactor          float64 `json:"priceFactor"`
	PromotionDescription string  `json:"promotionDescription"`
}

// BookingRequest is the full booking submission body.
type BookingRequest struct {
	StartDate     string         `json:"startDate"`
	EndDate       string         `json:"endDate"`
	RoomCount     int            `json:"roomCount"`
	AdultCount    int            `json:"adultCount"`
	TeenCount     int            `json:"teenCount,omitempty"`
	KidCount      int            `json:"kidCount,omitempty"`
	SeniorCount   int            `json:"seniorCount,omitempty"`
	TenantID      int            `json:"tenantId"`
	PropertyID    int            `json:"propertyId"`
	RoomTypeID    int            `json:"roomTypeId"`
	RoomName      string         `json:"roomName"`
	RoomImageURL  string         `json:"roomImageUrl"`
	CostInfo      CostInfo       `json:"costInfo"`
	PromotionInfo *PromotionInfo `json:"promotionInfo,omitempty"`
	GuestInfo     GuestInfo      `json:"guestInfo"`
	BillingInfo   BillingInfo    `json:"billingInfo"`
	PaymentInfo   PaymentInfo    `json:"paymentInfo"`
}

type bookingResponse struct {
	BookingID int64 `json:"bookingId"`
}

// BookingSummary is one row of the my-bookings listing.
type BookingSummary struct {
	BookingID    int64   `json:"bookingId"`
	RoomName     string  `json:"roomName"`
	RoomImageURL string  `json:"roomImageUrl"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	RoomCount    int     `json:"roomCount"`
	TotalCost    float64 `json:"totalCost"`
	Status       string  `json:"status"`
}

// Review is one room review.
type Review struct {
	Username string  `json:"username"`
	Rating   float64 `json:"rating"`
	Comment  string  `json:"comment"`
	Date     string  `json:"date"`
}

// ReviewRequest submits a review for a room type.
type ReviewRequest struct {
	TenantID   int     `json:"tenantId"`
	RoomTypeID int     `json:"roomTypeId"`
	Username   string  `json:"username"`
	Rating     float64 `json:"rating"`
	Comment    string  `json:"comment"`
}
