package player

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Position represents the NFL position groups tracked by the draft pool.
type Position string

const (
	PositionQuarterback  Position = "QB"
	PositionRunningBack  Position = "RB"
	PositionWideReceiver Position = "WR"
	PositionTightEnd     Position = "TE"
	PositionKicker       Position = "K"
	PositionDefense      Position = "DST"
)

var AllPositions = map[Position]struct{}{
	PositionQuarterback:  {},
	PositionRunningBack:  {},
	PositionWideReceiver: {},
	PositionTightEnd:     {},
	PositionKicker:       {},
	PositionDefense:      {},
}

// PositionOrder is the stable iteration order used for per-position output.
var PositionOrder = []Position{
	PositionQuarterback,
	PositionRunningBack,
	PositionWideReceiver,
	PositionTightEnd,
	PositionKicker,
	PositionDefense,
}

// Player is one draftable entry in the projection pool. DST entries carry the
// franchise name in Name and the team abbreviation in Team, which keys the
// defense profile page.
type Player struct {
	Name       string
	Team       string
	Position   Position
	ByeWeek    *int
	ADP        *float64
	Projection *float64
}

func (p Player) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}

	return nil
}

// Key is the synthetic identity used to join picks against the projection
// pool. Name strings drift between projection and ADP sources, so the key is
// a hash over the normalized name, position, and team instead of the raw name.
func (p Player) Key() string {
	return SyntheticKey(p.Name, p.Position, p.Team)
}

func SyntheticKey(name string, position Position, team string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(NormalizeName(name)))
	_, _ = h.Write([]byte{'|'})
	_, _ = h.Write([]byte(position))
	_, _ = h.Write([]byte{'|'})
	_, _ = h.Write([]byte(strings.ToUpper(strings.TrimSpace(team))))
	return fmt.Sprintf("%016x", h.Sum64())
}

// NormalizeName lowercases and collapses whitespace so formatting drift
// between data sources maps to the same identity.
func NormalizeName(name string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(name)), " ")
	normalized = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ', r == '-', r == '\'':
			return r
		default:
			return -1
		}
	}, normalized)
	return strings.TrimSpace(normalized)
}
