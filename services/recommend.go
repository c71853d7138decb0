package services

import (
	"sort"
	"strings"

	"restaurant-order-api/models"

	"github.com/shopspring/decimal"
)

const defaultMaxResults = 5

// keywordFamilies pairs a preference keyword with the menu-text words that
// satisfy it. A family scores +2 when the keyword appears in the preference
// and any of its words appear in the dish name/description.
var keywordFamilies = []struct {
	pref  string
	words []string
}{
	{"spicy", []string{"spicy"}},
	{"vegan", []string{"vegan"}},
	{"fish", []string{"fish"}},
	{"meat", []string{"beef", "chicken", "meat"}},
	{"rice", []string{"rice"}},
}

// RecommendedDish is a dish plus its ranking score.
type RecommendedDish struct {
	models.Dish
	Score int `json:"score"`
}

// Recommend ranks dishes for a user. Pure and deterministic: VIP-only
// dishes are dropped for non-VIP roles, dishes above maxPrice (when given)
// are dropped, the rest are scored on preference keywords plus a bonus for
// cheaper dishes, then sorted by score descending with ties broken by
// ascending price.
func Recommend(dishes []models.Dish, role models.UserRole, maxPrice *decimal.Decimal, preference string, maxResults int) []RecommendedDish {
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	preference = strings.ToLower(preference)

	five := decimal.NewFromInt(5)
	var scored []RecommendedDish

	for _, d := range dishes {
		if d.IsVipOnly && role != models.RoleVIP {
			continue
		}
		if maxPrice != nil && d.Price.GreaterThan(*maxPrice) {
			continue
		}

		score := 0
		text := strings.ToLower(d.Name + " " + d.Description)
		for _, family := range keywordFamilies {
			if !strings.Contains(preference, family.pref) {
				continue
			}
			for _, w := range family.words {
				if strings.Contains(text, w) {
					score += 2
					break
				}
			}
		}

		// Slight preference for cheaper dishes
		if bonus := 5 - d.Price.Div(five).IntPart(); bonus > 0 {
			score += int(bonus)
		}

		scored = append(scored, RecommendedDish{Dish: d, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Price.LessThan(scored[j].Price)
	})

	if len(scored) > maxResults {
		scored = scored[:maxResults]
	}
	return scored
}
