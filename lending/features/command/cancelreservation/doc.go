// Package cancelreservation implements withdrawing a reservation, journaled and logged like reserveresource.
package cancelreservation
