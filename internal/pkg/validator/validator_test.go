package validator

import "testing"

type paymentFields struct {
	CardNumber  string `json:"cardNumber" validate:"required,card_number"`
	ExpiryMonth string `json:"expiryMonth" validate:"required,expiry_month"`
	ExpiryYear  string `json:"expiryYear" validate:"required,expiry_year"`
	Zipcode     string `json:"zipcode" validate:"required,zipcode"`
}

func validFields() paymentFields {
	return paymentFields{
		CardNumber:  "4111111111111111",
		ExpiryMonth: "09",
		ExpiryYear:  "2027",
		Zipcode:     "12345",
	}
}

func TestValidatePaymentFieldsAccepted(t *testing.T) {
	v := New()
	if errs := v.Validate(validFields()); errs != nil {
		t.Fatalf("expected valid fields, got %v", errs)
	}
}

func TestValidateRejectsBadFormats(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*paymentFields)
		field  string
	}{
		{"short card", func(f *paymentFields) { f.CardNumber = "411111" }, "cardNumber"},
		{"card with letters", func(f *paymentFields) { f.CardNumber = "411111111111111x" }, "cardNumber"},
		{"month 13", func(f *paymentFields) { f.ExpiryMonth = "13" }, "expiryMonth"},
		{"month without zero", func(f *paymentFields) { f.ExpiryMonth = "9" }, "expiryMonth"},
		{"two digit year", func(f *paymentFields) { f.ExpiryYear = "27" }, "expiryYear"},
		{"short zip", func(f *paymentFields) { f.Zipcode = "123" }, "zipcode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			f := validFields()
			tt.mutate(&f)
			errs := v.Validate(f)
			if errs == nil {
				t.Fatal("expected validation errors")
			}
			if _, ok := errs[tt.field]; !ok {
				t.Errorf("expected error on %s, got %v", tt.field, errs)
			}
		})
	}
}

func TestValidateUsesJSONFieldNames(t *testing.T) {
	v := New()
	f := validFields()
	f.CardNumber = ""
	errs := v.Validate(f)
	if _, ok := errs["cardNumber"]; !ok {
		t.Fatalf("expected json tag name in errors, got %v", errs)
	}
}
