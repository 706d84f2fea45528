package itinerary

import "errors"

var (
	ErrNotFound          = errors.New("no itinerary for this session")
	ErrExpired           = errors.New("itinerary hold expired")
	ErrInvalidTransition = errors.New("operation not allowed in current itinerary state")
	ErrFormsIncomplete   = errors.New("traveler and billing details are required before booking")
	ErrAlreadyBooked     = errors.New("itinerary is already booked")
)
