package game

import (
	"errors"
	"fmt"
)

var (
	ErrPlayerNotFound        = errors.New("player not found")
	ErrPositionTaken         = errors.New("position already taken")
	ErrNoFreeGnome           = errors.New("no free gnome")
	ErrNoEligiblePlayer      = errors.New("no player with a free gnome")
	ErrInsufficientResources = errors.New("insufficient resources")
	ErrUniqueRoom            = errors.New("unique room already built")
)

// Status is the phase of the game state machine.
type Status int

const (
	PlayerMove         Status = iota // Players place gnomes
	NextTurnPending                  // Every gnome placed, round finish pending
	FeedingAndBreeding               // Harvest between rounds
)

var statusNames = []string{"player_move", "next_turn_pending", "feeding_and_breeding"}

func (s Status) String() string {
	return enumName(statusNames, int(s), "status")
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	i, err := enumIndex(statusNames, string(text), "status")
	*s = Status(i)
	return err
}

// FeedingStatus parameterizes the harvest sub-phase.
type FeedingStatus int

const (
	NoFeeding FeedingStatus = iota
	Normal
	NoBreeding
	FeedByOne
	FeedingOrBreeding
)

var feedingNames = []string{"no_feeding", "normal", "no_breeding", "feed_by_one", "feeding_or_breeding"}

func (s FeedingStatus) String() string {
	return enumName(feedingNames, int(s), "feeding")
}

func (s FeedingStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *FeedingStatus) UnmarshalText(text []byte) error {
	i, err := enumIndex(feedingNames, string(text), "feeding status")
	*s = FeedingStatus(i)
	return err
}

// Feeds reports whether gnomes eat during this harvest.
func (s FeedingStatus) Feeds() bool {
	return s != NoFeeding
}

// Breeds reports whether tribal animals breed during this harvest.
func (s FeedingStatus) Breeds() bool {
	return s == Normal || s == FeedingOrBreeding
}

func enumName(names []string, i int, kind string) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("%s(%d)", kind, i)
	}
	return names[i]
}

func enumIndex(names []string, name, kind string) (int, error) {
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", kind, name)
}
