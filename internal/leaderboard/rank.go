package leaderboard

import (
	"fmt"
	"sort"

	"github.com/agnikas07/HustleBot/internal/domain/entity"
)

// Rank orders the board descending by score and keeps the top n entries.
// Zero scores are dropped before ranking, so only people with recorded
// activity this week appear. The sort is stable: equal scores keep their
// first-seen order from aggregation, so whoever showed up in the sheet
// first ranks higher on a tie.
func Rank(board *Board, topN int) []entity.RankedEntry {
	if board == nil || topN <= 0 {
		return nil
	}

	scores := board.Scores()
	eligible := make([]PersonScore, 0, len(scores))
	for _, s := range scores {
		if s.Score > 0 {
			eligible = append(eligible, s)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Score > eligible[j].Score
	})

	if len(eligible) > topN {
		eligible = eligible[:topN]
	}

	ranked := make([]entity.RankedEntry, 0, len(eligible))
	for i, s := range eligible {
		ranked = append(ranked, entity.RankedEntry{
			Rank:       i + 1,
			Person:     s.Person,
			Score:      s.Score,
			Decoration: decoration(i + 1),
		})
	}
	return ranked
}

func decoration(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("%d.", rank)
	}
}
