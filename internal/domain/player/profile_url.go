package player

import "strings"

// dstTeamSlugs maps team abbreviations to FantasyPros defense page slugs.
var dstTeamSlugs = map[string]string{
	"ARI": "arizona", "ATL": "atlanta", "BAL": "baltimore", "BUF": "buffalo",
	"CAR": "carolina", "CHI": "chicago", "CIN": "cincinnati", "CLE": "cleveland",
	"DAL": "dallas", "DEN": "denver", "DET": "detroit", "GB": "green-bay",
	"HOU": "houston", "IND": "indianapolis", "JAC": "jacksonville", "KC": "kansas-city",
	"LV": "las-vegas", "LAC": "los-angeles-chargers", "LAR": "los-angeles-rams",
	"MIA": "miami", "MIN": "minnesota", "NE": "new-england", "NO": "new-orleans",
	"NYG": "new-york-giants", "NYJ": "new-york-jets", "PHI": "philadelphia",
	"PIT": "pittsburgh", "SF": "san-francisco", "SEA": "seattle", "TB": "tampa-bay",
	"TEN": "tennessee", "WAS": "washington",
}

// positionSuffixSlugs lists name slugs that collide with another NFL player
// and need a position suffix on their profile page.
var positionSuffixSlugs = map[string]string{
	"josh-allen": "qb",
}

// ProfileURL builds the FantasyPros profile URL for a player. Defenses link
// to the team defense page keyed by team abbreviation.
func (p Player) ProfileURL() string {
	if p.Position == PositionDefense {
		slug, ok := dstTeamSlugs[strings.ToUpper(strings.TrimSpace(p.Team))]
		if !ok {
			slug = strings.ToLower(strings.TrimSpace(p.Team))
			if slug == "" {
				slug = "unknown"
			}
		}
		return "https://www.fantasypros.com/nfl/teams/" + slug + "-defense.php"
	}

	slug := nameSlug(p.Name)
	if suffix, ok := positionSuffixSlugs[slug]; ok {
		slug += "-" + suffix
	}
	return "https://www.fantasypros.com/nfl/players/" + slug + ".php"
}

func nameSlug(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	lastHyphen := false
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '-':
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
