package profile

import (
	"fmt"

	"github.com/lox/bridgedeal/deck"
)

// Tag marks the bidding role a hand profile was authored to exercise.
type Tag string

const (
	TagOpener     Tag = "Opener"
	TagOvercaller Tag = "Overcaller"
)

// CouplingMode controls whether a partnership's subprofile index selection
// is driven by one seat and copied to its partner (see selector.SelectBoard
// for NS/EW coupling).
type CouplingMode int

const (
	// CouplingDisabled: each seat in the partnership picks its own index
	// independently.
	CouplingDisabled CouplingMode = iota
	// CouplingNorthDrives / CouplingSouthDrives: the named seat's chosen
	// index is copied onto its partner whenever both seats have the same
	// subprofile count. Used for NSRoleMode; EW coupling's driver is
	// always derived from DealingOrder instead (see selector.SelectBoard).
	CouplingNorthDrives
	CouplingSouthDrives
)

// ProfileError reports a problem found while validating a HandProfile.
type ProfileError struct {
	Msg string
}

func (e *ProfileError) Error() string {
	return e.Msg
}

func profileErrorf(format string, args ...any) *ProfileError {
	return &ProfileError{Msg: fmt.Sprintf(format, args...)}
}

// HandProfile is the complete, immutable declarative constraint set for one
// deal-set run.
type HandProfile struct {
	ProfileName     string
	Dealer          deck.Seat
	DealingOrder    [4]deck.Seat
	Tag             Tag
	Author          string
	Version         string
	RotateByDefault bool

	NSRoleMode CouplingMode
	EWRoleMode CouplingMode

	IsInvariantsSafetyProfile bool
	UseRSWOnlyPath            bool

	SeatProfiles         map[deck.Seat]*SeatProfile
	SubprofileExclusions []SubprofileExclusion
}

// Validate checks every seat profile, every exclusion, the dealing order
// permutation, and that every PC/OC reference names a seat with a Random
// Suit subprofile (dealing order is not checked against those references).
// It mutates SeatProfiles in place to normalise near-miss
// weight sums (see SeatProfile.Validate).
func (p *HandProfile) Validate() error {
	if p.ProfileName == "" {
		return profileErrorf("profile_name must not be empty")
	}
	if err := validateDealingOrder(p.DealingOrder); err != nil {
		return err
	}

	for _, seat := range deck.Seats {
		sp, ok := p.SeatProfiles[seat]
		if !ok || sp == nil {
			continue // unconstrained seat: any hand is acceptable
		}
		if err := sp.Validate(); err != nil {
			return profileErrorf("seat %s: %v", seat, err)
		}
	}

	for i, exc := range p.SubprofileExclusions {
		if err := exc.Validate(); err != nil {
			return profileErrorf("subprofile_exclusions[%d]: %v", i, err)
		}
	}

	if err := p.validateContingentReferences(); err != nil {
		return err
	}

	return nil
}

func validateDealingOrder(order [4]deck.Seat) error {
	seen := make(map[deck.Seat]bool, 4)
	for _, s := range order {
		if seen[s] {
			return profileErrorf("dealing_order has duplicate seat %s", s)
		}
		seen[s] = true
	}
	if len(seen) != 4 {
		return profileErrorf("dealing_order must be a permutation of all 4 seats")
	}
	return nil
}

// validateContingentReferences checks that every PC/OC reference names a
// seat that actually carries a Random Suit subprofile somewhere, since a PC
// or OC constraint against a seat with no RS choice can never match.
func (p *HandProfile) validateContingentReferences() error {
	hasRS := make(map[deck.Seat]bool, 4)
	for seat, sp := range p.SeatProfiles {
		if sp == nil {
			continue
		}
		for _, sub := range sp.Subprofiles {
			if _, ok := sub.RandomSuit(); ok {
				hasRS[seat] = true
			}
		}
	}

	for seat, sp := range p.SeatProfiles {
		if sp == nil {
			continue
		}
		for i, sub := range sp.Subprofiles {
			if pc, ok := sub.Partner(); ok {
				if !hasRS[pc.PartnerSeat] {
					return profileErrorf("seat %s subprofile[%d]: partner_contingent references %s, which has no Random Suit subprofile", seat, i, pc.PartnerSeat)
				}
			}
			if oc, ok := sub.Opponent(); ok {
				if !hasRS[oc.OpponentSeat] {
					return profileErrorf("seat %s subprofile[%d]: opponent_contingent references %s, which has no Random Suit subprofile", seat, i, oc.OpponentSeat)
				}
			}
		}
	}
	return nil
}

// ConstrainedSeats returns the seats that carry a non-nil SeatProfile, in
// deck.Seats order.
func (p *HandProfile) ConstrainedSeats() []deck.Seat {
	var seats []deck.Seat
	for _, s := range deck.Seats {
		if sp, ok := p.SeatProfiles[s]; ok && sp != nil {
			seats = append(seats, s)
		}
	}
	return seats
}
