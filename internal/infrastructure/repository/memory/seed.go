package memory

import (
	"github.com/riskibarqy/draft-assistant/internal/domain/player"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// SeedProjections returns a small but realistic projection pool covering
// every position, useful for local runs and service tests.
func SeedProjections() []player.Player {
	return []player.Player{
		{Name: "Josh Allen", Team: "BUF", Position: player.PositionQuarterback, ByeWeek: intPtr(7), ADP: floatPtr(22.4), Projection: floatPtr(388.2)},
		{Name: "Jalen Hurts", Team: "PHI", Position: player.PositionQuarterback, ByeWeek: intPtr(9), ADP: floatPtr(28.1), Projection: floatPtr(366.5)},
		{Name: "Lamar Jackson", Team: "BAL", Position: player.PositionQuarterback, ByeWeek: intPtr(7), ADP: floatPtr(31.7), Projection: floatPtr(360.9)},
		{Name: "Joe Burrow", Team: "CIN", Position: player.PositionQuarterback, ByeWeek: intPtr(10), ADP: floatPtr(44.3), Projection: floatPtr(341.0)},
		{Name: "Christian McCaffrey", Team: "SF", Position: player.PositionRunningBack, ByeWeek: intPtr(14), ADP: floatPtr(1.2), Projection: floatPtr(322.6)},
		{Name: "Bijan Robinson", Team: "ATL", Position: player.PositionRunningBack, ByeWeek: intPtr(5), ADP: floatPtr(2.8), Projection: floatPtr(301.4)},
		{Name: "Breece Hall", Team: "NYJ", Position: player.PositionRunningBack, ByeWeek: intPtr(12), ADP: floatPtr(4.5), Projection: floatPtr(289.7)},
		{Name: "Saquon Barkley", Team: "PHI", Position: player.PositionRunningBack, ByeWeek: intPtr(9), ADP: floatPtr(6.9), Projection: floatPtr(281.3)},
		{Name: "Jahmyr Gibbs", Team: "DET", Position: player.PositionRunningBack, ByeWeek: intPtr(8), ADP: floatPtr(8.4), Projection: floatPtr(274.8)},
		{Name: "CeeDee Lamb", Team: "DAL", Position: player.PositionWideReceiver, ByeWeek: intPtr(10), ADP: floatPtr(3.1), Projection: floatPtr(296.0)},
		{Name: "Tyreek Hill", Team: "MIA", Position: player.PositionWideReceiver, ByeWeek: intPtr(12), ADP: floatPtr(3.9), Projection: floatPtr(292.2)},
		{Name: "Ja'Marr Chase", Team: "CIN", Position: player.PositionWideReceiver, ByeWeek: intPtr(10), ADP: floatPtr(5.2), Projection: floatPtr(286.9)},
		{Name: "Amon-Ra St. Brown", Team: "DET", Position: player.PositionWideReceiver, ByeWeek: intPtr(8), ADP: floatPtr(7.6), Projection: floatPtr(271.5)},
		{Name: "Justin Jefferson", Team: "MIN", Position: player.PositionWideReceiver, ByeWeek: intPtr(13), ADP: floatPtr(9.0), Projection: floatPtr(269.8)},
		{Name: "Sam LaPorta", Team: "DET", Position: player.PositionTightEnd, ByeWeek: intPtr(8), ADP: floatPtr(33.5), Projection: floatPtr(198.4)},
		{Name: "Travis Kelce", Team: "KC", Position: player.PositionTightEnd, ByeWeek: intPtr(6), ADP: floatPtr(35.2), Projection: floatPtr(192.6)},
		{Name: "Mark Andrews", Team: "BAL", Position: player.PositionTightEnd, ByeWeek: intPtr(7), ADP: floatPtr(58.8), Projection: floatPtr(171.3)},
		{Name: "Justin Tucker", Team: "BAL", Position: player.PositionKicker, ByeWeek: intPtr(7), ADP: floatPtr(140.6), Projection: floatPtr(152.0)},
		{Name: "Harrison Butker", Team: "KC", Position: player.PositionKicker, ByeWeek: intPtr(6), ADP: floatPtr(145.9), Projection: floatPtr(149.5)},
		{Name: "San Francisco 49ers", Team: "SF", Position: player.PositionDefense, ByeWeek: intPtr(14), ADP: floatPtr(130.2), Projection: floatPtr(128.0)},
		{Name: "Dallas Cowboys", Team: "DAL", Position: player.PositionDefense, ByeWeek: intPtr(10), ADP: floatPtr(134.7), Projection: floatPtr(124.4)},
	}
}
