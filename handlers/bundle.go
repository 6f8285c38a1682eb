package handlers

import (
	recordsRepo "gymrat/database/repository/records"
)

// HandlerBundle aggregates every handler the router needs, plus the
// repository the auth middleware resolves members against.
type HandlerBundle struct {
	Repo recordsRepo.RecordRepository

	Auth     *AuthHandler
	User     *UserHandler
	Booking  *BookingHandler
	Checkout *CheckoutHandler
	Contact  *ContactHandler
	Admin    *AdminHandler
}
